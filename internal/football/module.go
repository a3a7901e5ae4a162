// Package football provides the stateless gateway to football-data.org.
package football

import (
	"pitchside_backend/internal/football/client"
	"pitchside_backend/internal/football/handler"
	apphttp "pitchside_backend/internal/http"
	"pitchside_backend/platform/config"
	"pitchside_backend/platform/logger"
)

// Module is the football gateway module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the gateway against the production API.
func NewModule(cfg config.FootballConfig, log *logger.Logger) *Module {
	return NewModuleWithBaseURL(client.DefaultBaseURL, cfg, log)
}

// NewModuleWithBaseURL allows pointing the gateway at a different upstream.
func NewModuleWithBaseURL(baseURL string, cfg config.FootballConfig, log *logger.Logger) *Module {
	api := client.New(baseURL, cfg.GetFootballAPIKey())
	return &Module{handler: handler.New(api, log)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "football"
}

// RegisterRoutes mounts the gateway routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	football := ctx.API.Group("/football")
	football.GET("/top-scorers/:leagueCode", m.handler.TopScorers)
	football.GET("/matches/today", m.handler.MatchesToday)
	football.GET("/matches/:competitionCode", m.handler.CompetitionMatches)
	football.GET("/teams/:competitionCode", m.handler.CompetitionTeams)
	football.GET("/team/:teamId", m.handler.Team)
	football.GET("/upcoming-matches/:teamId", m.handler.UpcomingMatches)

	ctx.API.GET("/table/:leagueCode", m.handler.Standings)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
