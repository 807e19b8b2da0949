package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
)

type recapRepository struct{ pool *pgxpool.Pool }

// NewRecapRepository stores recaps as JSONB; pgx's json codec handles both directions.
func NewRecapRepository(pool *pgxpool.Pool) repository.RecapRepository {
	return &recapRepository{pool: pool}
}

const recapColumns = `id, to_char(recap_date, 'YYYY-MM-DD'), payload, created_at, updated_at`

func scanRecap(row pgx.Row) (model.SavedRecap, error) {
	var out model.SavedRecap
	err := row.Scan(&out.ID, &out.Date, &out.Data, &out.CreatedAt, &out.UpdatedAt)
	return out, err
}

func (r *recapRepository) Save(ctx context.Context, rec model.RecapData) (model.SavedRecap, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.SavedRecap{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanRecap(exec.QueryRow(ctx,
		`INSERT INTO daily_recaps (recap_date, payload)
		 VALUES ($1::date, $2)
		 ON CONFLICT (recap_date)
		 DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
		 RETURNING `+recapColumns,
		rec.Date, rec,
	))
	if err != nil {
		return model.SavedRecap{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *recapRepository) GetByDate(ctx context.Context, date string) (model.SavedRecap, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.SavedRecap{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanRecap(exec.QueryRow(ctx,
		`SELECT `+recapColumns+` FROM daily_recaps WHERE recap_date = $1::date`, date,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SavedRecap{}, repository.ErrNotFound
		}
		return model.SavedRecap{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *recapRepository) Latest(ctx context.Context) (model.SavedRecap, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.SavedRecap{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanRecap(exec.QueryRow(ctx,
		`SELECT `+recapColumns+` FROM daily_recaps ORDER BY recap_date DESC LIMIT 1`,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SavedRecap{}, repository.ErrNotFound
		}
		return model.SavedRecap{}, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.RecapRepository = (*recapRepository)(nil)
