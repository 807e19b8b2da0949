package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/recap"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
	"github.com/maxviazov/mghl-recap-service/internal/service"
)

var recapNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

type recapFixture struct {
	svc     service.RecapService
	matches *fakeMatchRepo
	teams   *fakeTeamRepo
	stats   *fakeStatsRepo
	archive *fakeRecapRepo
}

func newRecapFixture() recapFixture {
	logger := zerolog.New(io.Discard)
	f := recapFixture{
		matches: newFakeMatchRepo(),
		teams:   newFakeTeamRepo(),
		stats:   newFakeStatsRepo(),
		archive: newFakeRecapRepo(),
	}
	repos := service.RecapRepos{Matches: f.matches, Teams: f.teams, Stats: f.stats, Archive: f.archive, Tx: &fakeTx{}}
	engine := recap.NewEngine(recap.DefaultOptions(), logger)
	f.svc = service.NewRecapService(repos, engine, clockwork.NewFakeClockAt(recapNow), 48*time.Hour, logger)
	return f
}

func (f recapFixture) seedGame() {
	ctx := context.Background()
	hawks, _ := f.teams.Create(ctx, model.Team{Name: "Ice Hawks"})
	bears, _ := f.teams.Create(ctx, model.Team{Name: "Polar Bears"})
	f.matches.completed = []model.Match{{
		ID: 7, HomeTeamID: hawks.ID, AwayTeamID: bears.ID,
		HomeTeamName: hawks.Name, AwayTeamName: bears.Name,
		HomeScore: 4, AwayScore: 2, Status: model.MatchStatusCompleted,
	}}
	for _, l := range []model.PlayerStatLine{
		{MatchID: 7, TeamID: hawks.ID, PlayerName: "Sam Reed", Position: "C", Goals: 2, Assists: 1, Shots: 6},
		{MatchID: 7, TeamID: hawks.ID, PlayerName: "Kit Moss", Position: "G", Saves: 28, GoalsAgainst: 2},
		{MatchID: 7, TeamID: bears.ID, PlayerName: "Ola Berg", Position: "LD", Assists: 1, Hits: 4},
	} {
		_, _ = f.stats.UpsertStatLine(ctx, l)
	}
}

func TestRecapService_Generate_NoMatches(t *testing.T) {
	f := newRecapFixture()

	data, err := f.svc.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2026-10-19", data.Date)
	assert.NotNil(t, data.TeamRecaps)
	assert.Empty(t, data.TeamRecaps)
	assert.Nil(t, data.BestTeam)
	assert.Nil(t, data.WorstTeam)
	assert.Zero(t, data.TotalMatches)
	assert.Equal(t, recapNow.Add(-48*time.Hour), f.matches.lastSince)
	assert.Nil(t, f.stats.lastBatch, "stats must not be fetched without matches")
}

func TestRecapService_Generate_BuildsFromWindow(t *testing.T) {
	f := newRecapFixture()
	f.seedGame()

	data, err := f.svc.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{7}, f.stats.lastBatch)
	assert.Equal(t, 1, data.TotalMatches)
	require.Len(t, data.TeamRecaps, 2)
	require.NotNil(t, data.BestTeam)
	require.NotNil(t, data.WorstTeam)
	assert.Equal(t, "Ice Hawks", data.BestTeam.TeamName)
	assert.Equal(t, "Polar Bears", data.WorstTeam.TeamName)
	for _, tr := range data.TeamRecaps {
		assert.NotEmpty(t, tr.Summary)
	}
}

func TestRecapService_Generate_FetchErrors(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("matches", func(t *testing.T) {
		f := newRecapFixture()
		f.matches.sinceErr = boom
		_, err := f.svc.Generate(context.Background())
		assert.ErrorIs(t, err, service.ErrRecapFetch)
		assert.ErrorIs(t, err, boom)
	})
	t.Run("teams", func(t *testing.T) {
		f := newRecapFixture()
		f.seedGame()
		f.teams.listErr = boom
		_, err := f.svc.Generate(context.Background())
		assert.ErrorIs(t, err, service.ErrRecapFetch)
		assert.Contains(t, err.Error(), "teams")
	})
	t.Run("stats", func(t *testing.T) {
		f := newRecapFixture()
		f.seedGame()
		f.stats.listErr = boom
		_, err := f.svc.Generate(context.Background())
		assert.ErrorIs(t, err, service.ErrRecapFetch)
		assert.Contains(t, err.Error(), "player stats")
	})
}

func TestRecapService_SaveAndRead(t *testing.T) {
	f := newRecapFixture()
	f.seedGame()
	ctx := context.Background()

	data, err := f.svc.Generate(ctx)
	require.NoError(t, err)

	first, err := f.svc.Save(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", first.Date)

	again, err := f.svc.Save(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID, "saving the same date replaces the stored recap")

	latest, err := f.svc.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.TotalMatches, latest.Data.TotalMatches)

	byDate, err := f.svc.GetByDate(ctx, " 2026-10-19 ")
	require.NoError(t, err)
	assert.Equal(t, first.ID, byDate.ID)

	_, err = f.svc.GetByDate(ctx, "2026-10-18")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecapService_SaveValidation(t *testing.T) {
	f := newRecapFixture()
	ctx := context.Background()

	_, err := f.svc.Save(ctx, model.RecapData{Date: "19.10.2026", TotalMatches: -1})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.True(t, hasField(err, "date"))
	assert.True(t, hasField(err, "total_matches"))

	_, err = f.svc.Save(ctx, model.RecapData{Date: "2026-10-19", TeamRecaps: []model.TeamRecap{{TeamID: 0}}})
	assert.True(t, hasField(err, "team_recaps[0].team_id"))

	_, err = f.svc.GetByDate(ctx, "yesterday")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = f.svc.Latest(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
