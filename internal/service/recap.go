package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/recap"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
	"github.com/rs/zerolog"
)

// RecapRepos groups the stores a recap reads from and the archive it writes to.
type RecapRepos struct {
	Matches repository.MatchRepository
	Teams   repository.TeamRepository
	Stats   repository.StatsRepository
	Archive repository.RecapRepository
	Tx      repository.TxManager
}

type recapService struct {
	repos  RecapRepos
	engine *recap.Engine
	clock  clockwork.Clock
	window time.Duration
	log    zerolog.Logger
}

// NewRecapService wires the recap engine to storage. window is how far back completed matches count.
func NewRecapService(repos RecapRepos, engine *recap.Engine, clock clockwork.Clock, window time.Duration, logger zerolog.Logger) RecapService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	l := logger.With().Str("module", "service").Str("component", "recap").Logger()
	return &recapService{repos: repos, engine: engine, clock: clock, window: window, log: l}
}

// Generate snapshots the last window of completed matches and runs the recap pipeline over them.
func (s *recapService) Generate(ctx context.Context) (model.RecapData, error) {
	start := time.Now()
	now := s.clock.Now()
	since := now.Add(-s.window)

	matches, err := s.repos.Matches.ListCompletedSince(ctx, since)
	if err != nil {
		s.log.Error().Err(err).Time("since", since).Msg("fetch completed matches failed")
		return model.RecapData{}, fmt.Errorf("%w: matches: %w", ErrRecapFetch, err)
	}
	if len(matches) == 0 {
		s.log.Info().Time("since", since).Msg("no completed matches in window")
		return recap.Finalize(now, nil, 0), nil
	}

	teams, err := s.repos.Teams.ListAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("fetch teams failed")
		return model.RecapData{}, fmt.Errorf("%w: teams: %w", ErrRecapFetch, err)
	}

	ids := make([]int64, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	rows, err := s.repos.Stats.ListByMatches(ctx, ids)
	if err != nil {
		s.log.Error().Err(err).Int("matches", len(ids)).Msg("fetch stat lines failed")
		return model.RecapData{}, fmt.Errorf("%w: player stats: %w", ErrRecapFetch, err)
	}

	data := s.engine.Build(now, matches, teams, rows)
	s.log.Info().Dur("took", time.Since(start)).
		Int("matches", len(matches)).Int("stat_rows", len(rows)).Int("teams", len(data.TeamRecaps)).
		Str("date", data.Date).Msg("recap generated")
	return data, nil
}

// Save archives a recap under its date, replacing any recap already stored for that day.
func (s *recapService) Save(ctx context.Context, data model.RecapData) (model.SavedRecap, error) {
	data.Date = strings.TrimSpace(data.Date)

	var ferrs []FieldError
	if !IsValidRecapDate(data.Date) {
		ferrs = append(ferrs, FieldError{Field: "date", Message: "invalid format, expected YYYY-MM-DD"})
	}
	ferrs = requireNonNegative("total_matches", data.TotalMatches, ferrs)
	for i, tr := range data.TeamRecaps {
		if tr.TeamID <= 0 {
			ferrs = append(ferrs, FieldError{Field: fmt.Sprintf("team_recaps[%d].team_id", i), Message: "must be > 0"})
		}
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("recap validation failed")
		return model.SavedRecap{}, err
	}
	if data.TeamRecaps == nil {
		data.TeamRecaps = []model.TeamRecap{}
	}

	var out model.SavedRecap
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		saved, err := s.repos.Archive.Save(ctx, data)
		if err != nil {
			return err
		}
		out = saved
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("date", data.Date).Msg("save recap failed")
		return model.SavedRecap{}, err
	}
	s.log.Info().Str("date", out.Date).Int64("recap_id", out.ID).Msg("recap saved")
	return out, nil
}

func (s *recapService) Latest(ctx context.Context) (model.SavedRecap, error) {
	return s.repos.Archive.Latest(ctx)
}

func (s *recapService) GetByDate(ctx context.Context, date string) (model.SavedRecap, error) {
	date = strings.TrimSpace(date)
	if !IsValidRecapDate(date) {
		return model.SavedRecap{}, newInvalidInput([]FieldError{{Field: "date", Message: "invalid format, expected YYYY-MM-DD"}})
	}
	return s.repos.Archive.GetByDate(ctx, date)
}
