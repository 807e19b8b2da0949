package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/mghl-recap-service/internal/handler"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
)

func TestMatchHandler_Create(t *testing.T) {
	stub := &stubMatchService{}
	r := newRouter(handler.Services{Matches: stub})

	w := httptest.NewRecorder()
	body := `{"home_team_id":1,"away_team_id":2,"match_date":"2026-10-18T19:00:00Z"}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/matches", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, stub.lastDate.Equal(time.Date(2026, 10, 18, 19, 0, 0, 0, time.UTC)))
	assert.Contains(t, w.Body.String(), `"status":"Scheduled"`)

	w = httptest.NewRecorder()
	body = `{"home_team_id":1,"away_team_id":2,"match_date":"yesterday"}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/matches", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "match_date")
}

func TestMatchHandler_RecordResult(t *testing.T) {
	stub := &stubMatchService{}
	r := newRouter(handler.Services{Matches: stub})

	w := httptest.NewRecorder()
	body := `{"home_score":2,"away_score":3,"is_overtime":true}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/matches/9/result", bytes.NewReader([]byte(body))))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, [2]int{2, 3}, stub.lastResult)
	assert.True(t, stub.overtime)
	assert.Contains(t, w.Body.String(), `"status":"Completed"`)

	stub.err = repository.ErrNotFound
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/matches/9/result", strings.NewReader(body)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatsHandler_Upsert(t *testing.T) {
	stub := &stubStatsService{}
	r := newRouter(handler.Services{Stats: stub})

	w := httptest.NewRecorder()
	body := `{"match_id":9,"team_id":1,"player_id":4,"player_name":"Sam Reed","position":"C","goals":2,"plus_minus":-1,"saves":0}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/stats", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NotNil(t, stub.last.PlayerID)
	assert.Equal(t, int64(4), *stub.last.PlayerID)
	assert.Equal(t, "Sam Reed", stub.last.PlayerName)
	assert.Equal(t, -1, stub.last.PlusMinus)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/matches/9/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"match_id":9`)
}

func TestPlayerHandler(t *testing.T) {
	stub := &stubPlayerService{}
	r := newRouter(handler.Services{Players: stub})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/players", strings.NewReader(`{"team_id":2,"name":"Kit Moss","position":"G"}`)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"name":"Kit Moss"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/teams/2/players", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), stub.lastTeam)
}
