package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
)

type matchRepository struct{ pool *pgxpool.Pool }

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &matchRepository{pool: pool}
}

const matchColumns = `m.id, m.home_team_id, m.away_team_id, ht.name, aw.name,
	m.home_score, m.away_score, m.is_overtime, m.status, m.match_date, m.created_at, m.updated_at`

const matchFrom = ` FROM matches m
	JOIN teams ht ON ht.id = m.home_team_id
	JOIN teams aw ON aw.id = m.away_team_id`

func scanMatch(row pgx.Row, extra ...any) (model.Match, error) {
	var m model.Match
	dest := append([]any{
		&m.ID, &m.HomeTeamID, &m.AwayTeamID, &m.HomeTeamName, &m.AwayTeamName,
		&m.HomeScore, &m.AwayScore, &m.IsOvertime, &m.Status, &m.MatchDate, &m.CreatedAt, &m.UpdatedAt,
	}, extra...)
	err := row.Scan(dest...)
	return m, err
}

func (r *matchRepository) Create(ctx context.Context, m model.Match) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	var id int64
	err := exec.QueryRow(ctx,
		`INSERT INTO matches (home_team_id, away_team_id, home_score, away_score, is_overtime, status, match_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		m.HomeTeamID, m.AwayTeamID, m.HomeScore, m.AwayScore, m.IsOvertime, m.Status, m.MatchDate,
	).Scan(&id)
	if err != nil {
		return model.Match{}, repository.MapPgError(err)
	}
	return r.GetByID(ctx, id)
}

func (r *matchRepository) GetByID(ctx context.Context, id int64) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanMatch(exec.QueryRow(ctx, `SELECT `+matchColumns+matchFrom+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, repository.ErrNotFound
		}
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Match], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Match]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+matchColumns+`, COUNT(*) OVER() AS total`+matchFrom+`
		 ORDER BY m.match_date DESC, m.id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Match]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Match]{Items: make([]model.Match, 0, limit)}
	for rows.Next() {
		var total int
		it, err := scanMatch(rows, &total)
		if err != nil {
			return repository.PageResult[model.Match]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, it)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Match]{}, repository.MapPgError(err)
	}
	return res, nil
}

func (r *matchRepository) RecordResult(ctx context.Context, id int64, homeScore, awayScore int, overtime bool) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx,
		`UPDATE matches
		 SET home_score = $2, away_score = $3, is_overtime = $4, status = $5, updated_at = NOW()
		 WHERE id = $1`,
		id, homeScore, awayScore, overtime, model.MatchStatusCompleted,
	)
	if err != nil {
		return model.Match{}, repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.Match{}, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *matchRepository) ListCompletedSince(ctx context.Context, since time.Time) ([]model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+matchColumns+matchFrom+`
		 WHERE m.status = $1 AND m.updated_at >= $2
		 ORDER BY m.updated_at DESC, m.id DESC`,
		model.MatchStatusCompleted, since,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	out := make([]model.Match, 0, 16)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.MatchRepository = (*matchRepository)(nil)
