package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/recap"
	"github.com/maxviazov/mghl-recap-service/internal/service"
	"github.com/maxviazov/mghl-recap-service/pkg/response"
)

// RecapHandler serves the daily recap and its archive. Every route answers with the
// {success, data} / {success:false, error} envelope.
type RecapHandler struct {
	svc   service.RecapService
	limit gin.HandlerFunc
}

func NewRecapHandler(svc service.RecapService, limit gin.HandlerFunc) *RecapHandler {
	return &RecapHandler{svc: svc, limit: limit}
}

func (h *RecapHandler) Register(r *gin.RouterGroup) {
	g := r.Group(RecapPath)
	{
		generate := []gin.HandlerFunc{h.generate}
		if h.limit != nil {
			generate = append([]gin.HandlerFunc{h.limit}, generate...)
		}
		g.GET("", generate...)
		g.POST("/save", h.save)
		g.GET("/latest", h.latest)
		g.GET("/:date", h.getByDate)
	}
}

// generate computes the recap for the trailing window. ?team= narrows team_recaps to the best name match.
func (h *RecapHandler) generate(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), serviceTimeout)
	defer cancel()

	data, err := h.svc.Generate(ctx)
	if err != nil {
		response.WriteFailure(c, err)
		return
	}
	if q := strings.TrimSpace(c.Query("team")); q != "" {
		data = recap.FilterByTeam(data, q)
	}
	response.WriteSuccess(c, http.StatusOK, data)
}

func (h *RecapHandler) save(c *gin.Context) {
	var data model.RecapData
	if err := c.ShouldBindJSON(&data); err != nil {
		response.WriteFailure(c, service.NewInvalidInputError([]service.FieldError{{Field: "body", Message: "must be a recap object"}}))
		return
	}
	saved, err := h.svc.Save(c.Request.Context(), data)
	if err != nil {
		response.WriteFailure(c, err)
		return
	}
	response.WriteSuccess(c, http.StatusOK, saved)
}

func (h *RecapHandler) latest(c *gin.Context) {
	saved, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		response.WriteFailure(c, err)
		return
	}
	response.WriteSuccess(c, http.StatusOK, saved)
}

func (h *RecapHandler) getByDate(c *gin.Context) {
	saved, err := h.svc.GetByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.WriteFailure(c, err)
		return
	}
	response.WriteSuccess(c, http.StatusOK, saved)
}
