package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
)

type statsRepository struct{ pool *pgxpool.Pool }

func NewStatsRepository(pool *pgxpool.Pool) repository.StatsRepository {
	return &statsRepository{pool: pool}
}

const statColumns = `id, match_id, team_id, player_id, player_name, position,
	goals, assists, shots, hits, pim, plus_minus, blocks, giveaways, takeaways, saves, goals_against,
	created_at, updated_at`

func scanStatLine(row pgx.Row) (model.PlayerStatLine, error) {
	var s model.PlayerStatLine
	err := row.Scan(
		&s.ID, &s.MatchID, &s.TeamID, &s.PlayerID, &s.PlayerName, &s.Position,
		&s.Goals, &s.Assists, &s.Shots, &s.Hits, &s.PIM, &s.PlusMinus, &s.Blocks, &s.Giveaways, &s.Takeaways,
		&s.Saves, &s.GoalsAgainst, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// UpsertStatLine keys a line by (match, team, player name); re-entering a player's line replaces it.
func (r *statsRepository) UpsertStatLine(ctx context.Context, s model.PlayerStatLine) (model.PlayerStatLine, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.PlayerStatLine{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanStatLine(exec.QueryRow(ctx,
		`INSERT INTO player_stats (
			match_id, team_id, player_id, player_name, position,
			goals, assists, shots, hits, pim, plus_minus, blocks, giveaways, takeaways, saves, goals_against
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (match_id, team_id, player_name)
		DO UPDATE SET
			player_id = EXCLUDED.player_id,
			position = EXCLUDED.position,
			goals = EXCLUDED.goals,
			assists = EXCLUDED.assists,
			shots = EXCLUDED.shots,
			hits = EXCLUDED.hits,
			pim = EXCLUDED.pim,
			plus_minus = EXCLUDED.plus_minus,
			blocks = EXCLUDED.blocks,
			giveaways = EXCLUDED.giveaways,
			takeaways = EXCLUDED.takeaways,
			saves = EXCLUDED.saves,
			goals_against = EXCLUDED.goals_against,
			updated_at = NOW()
		RETURNING `+statColumns,
		s.MatchID, s.TeamID, s.PlayerID, s.PlayerName, s.Position,
		s.Goals, s.Assists, s.Shots, s.Hits, s.PIM, s.PlusMinus, s.Blocks, s.Giveaways, s.Takeaways, s.Saves, s.GoalsAgainst,
	))
	if err != nil {
		return model.PlayerStatLine{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *statsRepository) ListByMatch(ctx context.Context, matchID int64) ([]model.PlayerStatLine, error) {
	return r.ListByMatches(ctx, []int64{matchID})
}

func (r *statsRepository) ListByMatches(ctx context.Context, matchIDs []int64) ([]model.PlayerStatLine, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	res := make([]model.PlayerStatLine, 0, 8*len(matchIDs))
	if len(matchIDs) == 0 {
		return res, nil
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+statColumns+` FROM player_stats WHERE match_id = ANY($1) ORDER BY match_id, id`, matchIDs,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	for rows.Next() {
		it, err := scanStatLine(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, it)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

var _ repository.StatsRepository = (*statsRepository)(nil)
