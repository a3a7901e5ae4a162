// Package users provides the account and authentication bounded context.
// This file defines the module that encapsulates all users setup and route registration.
package users

import (
	"pitchside_backend/internal/email"
	apphttp "pitchside_backend/internal/http"
	"pitchside_backend/internal/users/handler"
	"pitchside_backend/internal/users/repository"
	"pitchside_backend/internal/users/service"
	"pitchside_backend/platform/config"
	"pitchside_backend/platform/logger"
	"pitchside_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the users bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the users module with all its dependencies.
func NewModule(pool *pgxpool.Pool, cfg config.AuthServiceConfig, mail email.Sender, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, mail, log)

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "users"
}

// RegisterRoutes mounts users routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	authLimit := ctx.AuthRateLimiter.RateLimit()

	user := ctx.API.Group("/user")
	user.POST("", authLimit, m.handler.Register)
	user.POST("/login", authLimit, m.handler.Login)
	user.GET("", m.handler.List)
	user.GET("/protected", ctx.Auth, m.handler.Protected)
	user.GET("/:id", ctx.Auth, m.handler.GetByID)
	user.PUT("/:id", ctx.Auth, m.handler.Update)
	user.DELETE("/:id", ctx.Auth, m.handler.Delete)

	ctx.API.GET("/fetchuser/me", ctx.Auth, m.handler.Me)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
