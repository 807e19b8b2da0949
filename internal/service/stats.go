package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
	"github.com/rs/zerolog"
)

type statsService struct {
	stats   repository.StatsRepository
	players repository.PlayerRepository
	matches repository.MatchRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewStatsService(stats repository.StatsRepository, players repository.PlayerRepository, matches repository.MatchRepository, tx repository.TxManager, logger zerolog.Logger) StatsService {
	l := logger.With().Str("module", "service").Str("component", "stats").Logger()
	return &statsService{stats: stats, players: players, matches: matches, tx: tx, log: l}
}

func (s *statsService) UpsertStatLine(ctx context.Context, line model.PlayerStatLine) (model.PlayerStatLine, error) {
	start := time.Now()

	var ferrs []FieldError
	ferrs = requirePositiveID("match_id", line.MatchID, ferrs)
	ferrs = requirePositiveID("team_id", line.TeamID, ferrs)
	if line.PlayerID != nil {
		ferrs = requirePositiveID("player_id", *line.PlayerID, ferrs)
	}
	line.PlayerName, ferrs = validateName("player_name", line.PlayerName, ferrs)
	line.Position = NormalizePosition(line.Position)
	if !IsValidPosition(line.Position) {
		ferrs = append(ferrs, FieldError{Field: "position", Message: "must be one of C, LW, RW, LD, RD, G"})
	}
	// plus_minus is the only counter allowed to go negative.
	for _, c := range []struct {
		field string
		v     int
	}{
		{"goals", line.Goals},
		{"assists", line.Assists},
		{"shots", line.Shots},
		{"hits", line.Hits},
		{"pim", line.PIM},
		{"blocks", line.Blocks},
		{"giveaways", line.Giveaways},
		{"takeaways", line.Takeaways},
		{"saves", line.Saves},
		{"goals_against", line.GoalsAgainst},
	} {
		ferrs = requireNonNegative(c.field, c.v, ferrs)
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Int64("match_id", line.MatchID).Msg("stat line validation failed")
		return model.PlayerStatLine{}, err
	}

	var (
		out           model.PlayerStatLine
		existenceErrs []FieldError
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		m, err := s.matches.GetByID(ctx, line.MatchID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			existenceErrs = append(existenceErrs, FieldError{Field: "match_id", Message: "match does not exist"})
		case err != nil:
			return err
		case line.TeamID != m.HomeTeamID && line.TeamID != m.AwayTeamID:
			existenceErrs = append(existenceErrs, FieldError{Field: "team_id", Message: "team did not play in this match"})
		}
		if line.PlayerID != nil {
			p, err := s.players.GetByID(ctx, *line.PlayerID)
			switch {
			case errors.Is(err, repository.ErrNotFound):
				existenceErrs = append(existenceErrs, FieldError{Field: "player_id", Message: "player does not exist"})
			case err != nil:
				return err
			case p.TeamID != line.TeamID:
				existenceErrs = append(existenceErrs, FieldError{Field: "player_id", Message: "player is not on this team"})
			}
		}
		if len(existenceErrs) > 0 {
			return nil
		}
		saved, err := s.stats.UpsertStatLine(ctx, line)
		if err != nil {
			return err
		}
		out = saved
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int64("match_id", line.MatchID).Str("player", line.PlayerName).Msg("upsert stat line failed")
		return model.PlayerStatLine{}, err
	}
	if err := NewInvalidInputError(existenceErrs); err != nil {
		s.log.Debug().Interface("field_errors", existenceErrs).Int64("match_id", line.MatchID).Msg("stat line validation failed (existence)")
		return model.PlayerStatLine{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("match_id", out.MatchID).Int64("stat_id", out.ID).Msg("stat line upserted")
	return out, nil
}

func (s *statsService) ListStatsByMatch(ctx context.Context, matchID int64) ([]model.PlayerStatLine, error) {
	if matchID <= 0 {
		return nil, NewInvalidInputError([]FieldError{{Field: "match_id", Message: "must be > 0"}})
	}
	return s.stats.ListByMatch(ctx, matchID)
}
