// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrRecapFetch marks a failure to load the data a recap is computed from.
var ErrRecapFetch = errors.New("recap data fetch failed")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error, or nil when there are no field errors.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

func newInvalidInput(fe []FieldError) error { return NewInvalidInputError(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// TeamService defines team-oriented use cases.
type TeamService interface {
	CreateTeam(ctx context.Context, name string) (model.Team, error)
	GetTeam(ctx context.Context, id int64) (model.Team, error)
	ListTeams(ctx context.Context, page repository.Page) (repository.PageResult[model.Team], error)
}

// PlayerService defines player registry use cases.
type PlayerService interface {
	CreatePlayer(ctx context.Context, teamID int64, name, position string) (model.Player, error)
	GetPlayer(ctx context.Context, id int64) (model.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID int64, page repository.Page) (repository.PageResult[model.Player], error)
}

// MatchService defines match scheduling and result entry.
type MatchService interface {
	CreateMatch(ctx context.Context, homeID, awayID int64, date time.Time) (model.Match, error)
	GetMatch(ctx context.Context, id int64) (model.Match, error)
	ListMatches(ctx context.Context, page repository.Page) (repository.PageResult[model.Match], error)
	RecordResult(ctx context.Context, id int64, homeScore, awayScore int, overtime bool) (model.Match, error)
}

// StatsService defines stat line use cases.
type StatsService interface {
	UpsertStatLine(ctx context.Context, line model.PlayerStatLine) (model.PlayerStatLine, error)
	ListStatsByMatch(ctx context.Context, matchID int64) ([]model.PlayerStatLine, error)
}

// RecapService generates the daily recap and manages the archive of published recaps.
type RecapService interface {
	Generate(ctx context.Context) (model.RecapData, error)
	Save(ctx context.Context, data model.RecapData) (model.SavedRecap, error)
	Latest(ctx context.Context) (model.SavedRecap, error)
	GetByDate(ctx context.Context, date string) (model.SavedRecap, error)
}
