// Package players provides the player catalog bounded context: public
// browsing, filtering, the search pipeline, and admin CRUD.
package players

import (
	apphttp "pitchside_backend/internal/http"
	"pitchside_backend/internal/players/handler"
	"pitchside_backend/internal/players/repository"
	"pitchside_backend/internal/players/service"
	"pitchside_backend/platform/logger"
	"pitchside_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the players bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the players module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)

	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "players"
}

// RegisterRoutes mounts players routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	players := ctx.API.Group("/players")
	players.GET("", m.handler.List)
	players.GET("/getTop5", m.handler.Top5)
	players.GET("/filter", m.handler.Filter)
	players.GET("/search-sort", m.handler.SearchSort)
	players.GET("/sub-position/:sub_position", m.handler.BySubPosition)
	players.GET("/playerId/:player_id", m.handler.LookupInternalID)
	players.GET("/:id", m.handler.GetByID)

	ctx.API.GET("/search", m.handler.Search)

	// Admin CRUD keyed by external player_id.
	manage := ctx.API.Group("/handlePlayer", ctx.Auth)
	manage.POST("/create", ctx.RequireAdmin, m.handler.Create)
	manage.GET("/all", m.handler.All)
	manage.GET("/:id", m.handler.GetByPlayerID)
	manage.PUT("/update/:id", ctx.RequireAdmin, m.handler.Update)
	manage.DELETE("/delete/:id", ctx.RequireAdmin, m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
