// Package squads provides the fantasy squad bounded context. All routes are
// owner-scoped behind authentication.
package squads

import (
	apphttp "pitchside_backend/internal/http"
	"pitchside_backend/internal/squads/handler"
	"pitchside_backend/internal/squads/repository"
	"pitchside_backend/internal/squads/service"
	"pitchside_backend/platform/logger"
	"pitchside_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the squads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the squads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)

	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "squads"
}

// RegisterRoutes mounts squads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	squads := ctx.API.Group("/squads", ctx.Auth)
	squads.POST("/save", m.handler.Save)
	squads.GET("/my-squads", m.handler.MySquads)
	squads.DELETE("/delete/:squadId", m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
