package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/service"
	"github.com/maxviazov/mghl-recap-service/pkg/response"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

func (h *StatsHandler) Register(r *gin.RouterGroup) {
	// Upsert endpoint
	r.Group("/stats").POST("", h.upsert)
	// Listing by match id: /api/v1/matches/:id/stats
	r.Group("/matches").GET("/:id/stats", h.listByMatch)
}

type upsertStatRequest struct {
	MatchID      int64  `json:"match_id"`
	TeamID       int64  `json:"team_id"`
	PlayerID     *int64 `json:"player_id"`
	PlayerName   string `json:"player_name"`
	Position     string `json:"position"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
	Shots        int    `json:"shots"`
	Hits         int    `json:"hits"`
	PIM          int    `json:"pim"`
	PlusMinus    int    `json:"plus_minus"`
	Blocks       int    `json:"blocks"`
	Giveaways    int    `json:"giveaways"`
	Takeaways    int    `json:"takeaways"`
	Saves        int    `json:"saves"`
	GoalsAgainst int    `json:"goals_against"`
}

func (h *StatsHandler) upsert(c *gin.Context) {
	var req upsertStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	line, err := h.svc.UpsertStatLine(c.Request.Context(), model.PlayerStatLine{
		MatchID:      req.MatchID,
		TeamID:       req.TeamID,
		PlayerID:     req.PlayerID,
		PlayerName:   req.PlayerName,
		Position:     req.Position,
		Goals:        req.Goals,
		Assists:      req.Assists,
		Shots:        req.Shots,
		Hits:         req.Hits,
		PIM:          req.PIM,
		PlusMinus:    req.PlusMinus,
		Blocks:       req.Blocks,
		Giveaways:    req.Giveaways,
		Takeaways:    req.Takeaways,
		Saves:        req.Saves,
		GoalsAgainst: req.GoalsAgainst,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, line)
}

func (h *StatsHandler) listByMatch(c *gin.Context) {
	matchID, ok := pathID(c, "id")
	if !ok {
		return
	}
	lines, err := h.svc.ListStatsByMatch(c.Request.Context(), matchID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, lines)
}
