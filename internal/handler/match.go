package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/mghl-recap-service/internal/service"
	"github.com/maxviazov/mghl-recap-service/pkg/response"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches")
	{
		g.POST("", h.create)
		g.GET("/:id", h.getByID)
		g.GET("", h.list)
		g.PUT("/:id/result", h.recordResult)
	}
}

type createMatchRequest struct {
	HomeTeam  int64  `json:"home_team_id"`
	AwayTeam  int64  `json:"away_team_id"`
	MatchDate string `json:"match_date"` // RFC3339
}

type recordResultRequest struct {
	HomeScore  int  `json:"home_score"`
	AwayScore  int  `json:"away_score"`
	IsOvertime bool `json:"is_overtime"`
}

func (h *MatchHandler) create(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	date, err := time.Parse(time.RFC3339, req.MatchDate)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "match_date", Message: "must be RFC3339"}}))
		return
	}
	m, err := h.svc.CreateMatch(c.Request.Context(), req.HomeTeam, req.AwayTeam, date)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, m)
}

func (h *MatchHandler) getByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	m, err := h.svc.GetMatch(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}

func (h *MatchHandler) list(c *gin.Context) {
	res, err := h.svc.ListMatches(c.Request.Context(), pageQuery(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *MatchHandler) recordResult(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req recordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	m, err := h.svc.RecordResult(c.Request.Context(), id, req.HomeScore, req.AwayScore, req.IsOvertime)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}
