package postgres

import (
	"context"

	"drawcast/domain/core"
	"drawcast/models"
	"drawcast/ports"

	"github.com/jmoiron/sqlx"
)

// DrawRepositoryImpl implements DrawRepository for PostgreSQL
type DrawRepositoryImpl struct {
	db *sqlx.DB
}

// NewDrawRepository creates a new PostgreSQL draw repository
func NewDrawRepository(db *sqlx.DB) ports.DrawRepository {
	return &DrawRepositoryImpl{db: db}
}

// SaveDraw upserts a confirmed historical draw keyed by date
func (r *DrawRepositoryImpl) SaveDraw(ctx context.Context, d *models.HistoricalDraw) error {
	if d.ID.IsEmpty() {
		d.ID = core.NewDrawID()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO historical_draws (id, draw_date, numbers, stars, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (draw_date) DO UPDATE SET
			numbers = EXCLUDED.numbers,
			stars = EXCLUDED.stars`,
		d.ID, d.Date, d.Numbers, d.Stars)
	return err
}

// ListDraws returns all historical draws ordered by date
func (r *DrawRepositoryImpl) ListDraws(ctx context.Context) ([]models.HistoricalDraw, error) {
	var draws []models.HistoricalDraw
	err := r.db.SelectContext(ctx, &draws, `
		SELECT id, draw_date, numbers, stars, created_at
		FROM historical_draws
		ORDER BY draw_date ASC`)
	if err != nil {
		return nil, err
	}
	return draws, nil
}
