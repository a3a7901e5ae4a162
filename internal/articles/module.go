// Package articles provides the news article bounded context.
package articles

import (
	"pitchside_backend/internal/adapters/storage"
	"pitchside_backend/internal/articles/handler"
	"pitchside_backend/internal/articles/repository"
	"pitchside_backend/internal/articles/service"
	apphttp "pitchside_backend/internal/http"
	"pitchside_backend/platform/logger"
	"pitchside_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the articles bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the articles module with all its dependencies.
// store may be nil when photo storage is disabled; file uploads then fail
// while URL photos keep working.
func NewModule(pool *pgxpool.Pool, store storage.StorageService, photoBucket string, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, store, photoBucket, log)

	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "articles"
}

// RegisterRoutes mounts articles routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	articles := ctx.API.Group("/articles")
	articles.GET("", m.handler.List)
	articles.GET("/:id", m.handler.Get)
	articles.POST("/create", ctx.Auth, ctx.RequireAdmin, m.handler.Create)
	articles.PUT("/update/:id", ctx.Auth, m.handler.Update)
	articles.DELETE("/delete/:id", ctx.Auth, ctx.RequireAdmin, m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
