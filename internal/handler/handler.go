package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/mghl-recap-service/internal/service"
)

// Services bundles the use cases the HTTP layer exposes.
type Services struct {
	Teams   service.TeamService
	Players service.PlayerService
	Matches service.MatchService
	Stats   service.StatsService
	Recaps  service.RecapService
}

// Register mounts all public routes on the given engine.
// recapLimit guards recap generation; nil disables throttling.
func Register(r *gin.Engine, repo Pinger, svcs Services, recapLimit gin.HandlerFunc) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewTeamHandler(svcs.Teams).Register(api)
		NewPlayerHandler(svcs.Players).Register(api)
		NewMatchHandler(svcs.Matches).Register(api)
		NewStatsHandler(svcs.Stats).Register(api)
		NewRecapHandler(svcs.Recaps, recapLimit).Register(api)
	}
}
