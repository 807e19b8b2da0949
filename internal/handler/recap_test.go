package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/mghl-recap-service/internal/handler"
	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
	"github.com/maxviazov/mghl-recap-service/internal/service"
)

const recapURL = handler.APIV1Prefix + handler.RecapPath

type recapEnvelope struct {
	Success bool            `json:"success"`
	Data    model.RecapData `json:"data"`
	Error   string          `json:"error"`
}

func sampleRecap() model.RecapData {
	hawks := model.TeamRecap{TeamID: 1, TeamName: "Ice Hawks", Record: model.Record{Wins: 1}, Summary: "Hawks won."}
	bears := model.TeamRecap{TeamID: 2, TeamName: "Polar Bears", Record: model.Record{Losses: 1}, Summary: "Bears lost."}
	return model.RecapData{
		Date:         "2026-10-19",
		TeamRecaps:   []model.TeamRecap{hawks, bears},
		BestTeam:     &hawks,
		WorstTeam:    &bears,
		TotalMatches: 1,
	}
}

func getRecap(t *testing.T, h http.Handler, url string) (*httptest.ResponseRecorder, recapEnvelope) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	var env recapEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestRecapHandler_Generate(t *testing.T) {
	stub := &stubRecapService{data: sampleRecap()}
	r := newRouter(handler.Services{Recaps: stub})

	w, env := getRecap(t, r, recapURL)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "2026-10-19", env.Data.Date)
	assert.Len(t, env.Data.TeamRecaps, 2)
	require.NotNil(t, env.Data.BestTeam)
	assert.Equal(t, "Ice Hawks", env.Data.BestTeam.TeamName)
}

func TestRecapHandler_Generate_EmptyWindow(t *testing.T) {
	stub := &stubRecapService{data: model.RecapData{Date: "2026-10-19", TeamRecaps: []model.TeamRecap{}}}
	r := newRouter(handler.Services{Recaps: stub})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, recapURL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"data":{"date":"2026-10-19","team_recaps":[],"best_team":null,"worst_team":null,"total_matches":0}}`,
		w.Body.String())
}

func TestRecapHandler_Generate_TeamFilter(t *testing.T) {
	stub := &stubRecapService{data: sampleRecap()}
	r := newRouter(handler.Services{Recaps: stub})

	_, env := getRecap(t, r, recapURL+"?team=bears")
	require.Len(t, env.Data.TeamRecaps, 1)
	assert.Equal(t, "Polar Bears", env.Data.TeamRecaps[0].TeamName)
	assert.Equal(t, 1, env.Data.TotalMatches)
	require.NotNil(t, env.Data.BestTeam)
	assert.Equal(t, "Ice Hawks", env.Data.BestTeam.TeamName, "league-wide ranking is kept")

	_, env = getRecap(t, r, recapURL+"?team=zzzz")
	assert.Empty(t, env.Data.TeamRecaps)
}

func TestRecapHandler_Generate_FetchFailure(t *testing.T) {
	stub := &stubRecapService{genErr: fmt.Errorf("%w: matches: %w", service.ErrRecapFetch, errors.New("connection refused"))}
	r := newRouter(handler.Services{Recaps: stub})

	w, env := getRecap(t, r, recapURL)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "connection refused")
}

func TestRecapHandler_Save(t *testing.T) {
	stub := &stubRecapService{saved: model.SavedRecap{ID: 5, Date: "2026-10-19"}}
	r := newRouter(handler.Services{Recaps: stub})

	payload, _ := json.Marshal(sampleRecap())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, recapURL+"/save", strings.NewReader(string(payload))))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "2026-10-19", stub.lastSaved.Date)
	assert.Len(t, stub.lastSaved.TeamRecaps, 2)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, recapURL+"/save", strings.NewReader(`[1,2]`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRecapHandler_Archive(t *testing.T) {
	stub := &stubRecapService{saved: model.SavedRecap{ID: 5, Date: "2026-10-18", Data: sampleRecap()}}
	r := newRouter(handler.Services{Recaps: stub})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, recapURL+"/latest", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"date":"2026-10-18"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, recapURL+"/2026-10-18", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2026-10-18", stub.lastDate)

	stub.saveErr = repository.ErrNotFound
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, recapURL+"/latest", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
