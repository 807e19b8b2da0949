package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
	"github.com/rs/zerolog"
)

type matchService struct {
	matches repository.MatchRepository
	teams   repository.TeamRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewMatchService(matches repository.MatchRepository, teams repository.TeamRepository, tx repository.TxManager, logger zerolog.Logger) MatchService {
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	return &matchService{matches: matches, teams: teams, tx: tx, log: l}
}

func (s *matchService) CreateMatch(ctx context.Context, homeID, awayID int64, date time.Time) (model.Match, error) {
	start := time.Now()

	var ferrs []FieldError
	ferrs = requirePositiveID("home_team_id", homeID, ferrs)
	ferrs = requirePositiveID("away_team_id", awayID, ferrs)
	if homeID > 0 && awayID > 0 && homeID == awayID {
		ferrs = append(ferrs, FieldError{Field: "teams", Message: "home and away must differ"})
	}
	if date.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "match_date", Message: "must be set"})
	}
	// Early exit if basic structure is invalid; do not touch the database.
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("match validation failed (structure)")
		return model.Match{}, err
	}

	var existenceErrs []FieldError
	for _, side := range []struct {
		field string
		id    int64
	}{{"home_team_id", homeID}, {"away_team_id", awayID}} {
		if _, err := s.teams.GetByID(ctx, side.id); err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return model.Match{}, err
			}
			existenceErrs = append(existenceErrs, FieldError{Field: side.field, Message: "team does not exist"})
		}
	}
	if err := newInvalidInput(existenceErrs); err != nil {
		s.log.Debug().Interface("field_errors", existenceErrs).Msg("match validation failed (existence)")
		return model.Match{}, err
	}

	var out model.Match
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.matches.Create(ctx, model.Match{
			HomeTeamID: homeID,
			AwayTeamID: awayID,
			Status:     model.MatchStatusScheduled,
			MatchDate:  date.UTC(),
		})
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int64("home_team_id", homeID).Int64("away_team_id", awayID).Msg("create match failed")
		return model.Match{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("match_id", out.ID).Msg("match created")
	return out, nil
}

func (s *matchService) GetMatch(ctx context.Context, id int64) (model.Match, error) {
	if id <= 0 {
		return model.Match{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.matches.GetByID(ctx, id)
}

func (s *matchService) ListMatches(ctx context.Context, page repository.Page) (repository.PageResult[model.Match], error) {
	p := normalizePage(page)
	res, err := s.matches.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list matches failed")
		return repository.PageResult[model.Match]{}, err
	}
	return res, nil
}

// RecordResult enters the final score. League games never end level, so equal scores are rejected;
// an overtime result must be decided by a single goal.
func (s *matchService) RecordResult(ctx context.Context, id int64, homeScore, awayScore int, overtime bool) (model.Match, error) {
	start := time.Now()

	var ferrs []FieldError
	ferrs = requirePositiveID("id", id, ferrs)
	ferrs = requireNonNegative("home_score", homeScore, ferrs)
	ferrs = requireNonNegative("away_score", awayScore, ferrs)
	if homeScore > maxScore || awayScore > maxScore {
		ferrs = append(ferrs, FieldError{Field: "score", Message: "must be <= 99"})
	}
	if homeScore == awayScore {
		ferrs = append(ferrs, FieldError{Field: "score", Message: "a match cannot end tied"})
	} else if overtime && abs(homeScore-awayScore) != 1 {
		ferrs = append(ferrs, FieldError{Field: "is_overtime", Message: "overtime results are decided by one goal"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Int64("match_id", id).Msg("result validation failed")
		return model.Match{}, err
	}

	out, err := s.matches.RecordResult(ctx, id, homeScore, awayScore, overtime)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Int64("match_id", id).Msg("record result failed")
		}
		return model.Match{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("match_id", id).
		Int("home_score", homeScore).Int("away_score", awayScore).Bool("overtime", overtime).Msg("match result recorded")
	return out, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
