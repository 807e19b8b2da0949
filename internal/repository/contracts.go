package repository

import (
	"context"
	"time"

	"github.com/maxviazov/mghl-recap-service/internal/model"
)

// Pinger is the readiness check the health handler runs against storage.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// Repositories called with its ctx join the open transaction.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// TeamRepository declares persistence operations for teams.
// Implementations map driver errors to the sentinels in errors.go.
type TeamRepository interface {
	Create(ctx context.Context, t model.Team) (model.Team, error)
	GetByID(ctx context.Context, id int64) (model.Team, error)
	List(ctx context.Context, p Page) (PageResult[model.Team], error)
	// ListAll returns every team ordered by name; the recap resolves opponents against it.
	ListAll(ctx context.Context) ([]model.Team, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// PlayerRepository declares persistence operations for the optional player registry.
type PlayerRepository interface {
	Create(ctx context.Context, p model.Player) (model.Player, error)
	GetByID(ctx context.Context, id int64) (model.Player, error)
	ListByTeam(ctx context.Context, teamID int64, p Page) (PageResult[model.Player], error)
}

// MatchRepository declares persistence operations for matches.
type MatchRepository interface {
	Create(ctx context.Context, m model.Match) (model.Match, error)
	GetByID(ctx context.Context, id int64) (model.Match, error)
	List(ctx context.Context, p Page) (PageResult[model.Match], error)
	// RecordResult stores the final score and marks the match Completed.
	RecordResult(ctx context.Context, id int64, homeScore, awayScore int, overtime bool) (model.Match, error)
	// ListCompletedSince returns Completed matches updated at or after since, most recently updated first,
	// with both team names joined in.
	ListCompletedSince(ctx context.Context, since time.Time) ([]model.Match, error)
}

// StatsRepository declares operations for player stat lines per match.
type StatsRepository interface {
	UpsertStatLine(ctx context.Context, s model.PlayerStatLine) (model.PlayerStatLine, error)
	ListByMatch(ctx context.Context, matchID int64) ([]model.PlayerStatLine, error)
	// ListByMatches returns every stat line of the given matches ordered by match then id.
	ListByMatches(ctx context.Context, matchIDs []int64) ([]model.PlayerStatLine, error)
}

// RecapRepository archives generated recaps, one per calendar date.
type RecapRepository interface {
	// Save inserts or replaces the recap stored for rec.Date.
	Save(ctx context.Context, rec model.RecapData) (model.SavedRecap, error)
	GetByDate(ctx context.Context, date string) (model.SavedRecap, error)
	Latest(ctx context.Context) (model.SavedRecap, error)
}
