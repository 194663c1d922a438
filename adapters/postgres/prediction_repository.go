package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"drawcast/domain/core"
	"drawcast/models"
	"drawcast/ports"

	"github.com/jmoiron/sqlx"
)

// PredictionRepositoryImpl implements PredictionRepository for PostgreSQL
type PredictionRepositoryImpl struct {
	db *sqlx.DB
}

// NewPredictionRepository creates a new PostgreSQL prediction repository
func NewPredictionRepository(db *sqlx.DB) ports.PredictionRepository {
	return &PredictionRepositoryImpl{db: db}
}

// SavePrediction upserts a prediction keyed by date
func (r *PredictionRepositoryImpl) SavePrediction(ctx context.Context, p *models.Prediction) error {
	if p.ID.IsEmpty() {
		p.ID = core.NewPredictionID()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO predictions (id, draw_date, predicted_numbers, predicted_stars, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (draw_date) DO UPDATE SET
			predicted_numbers = EXCLUDED.predicted_numbers,
			predicted_stars = EXCLUDED.predicted_stars`,
		p.ID, p.Date, p.PredictedNumbers, p.PredictedStars)
	return err
}

// GetPredictionByDate retrieves the prediction stored for a draw date
func (r *PredictionRepositoryImpl) GetPredictionByDate(ctx context.Context, date time.Time) (*models.Prediction, error) {
	var p models.Prediction
	err := r.db.GetContext(ctx, &p, `
		SELECT id, draw_date, predicted_numbers, predicted_stars,
			   actual_numbers, actual_stars, score, created_at, scored_at
		FROM predictions
		WHERE draw_date = $1`, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrPredictionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPredictions returns all predictions ordered by date
func (r *PredictionRepositoryImpl) ListPredictions(ctx context.Context) ([]models.Prediction, error) {
	var preds []models.Prediction
	err := r.db.SelectContext(ctx, &preds, `
		SELECT id, draw_date, predicted_numbers, predicted_stars,
			   actual_numbers, actual_stars, score, created_at, scored_at
		FROM predictions
		ORDER BY draw_date ASC`)
	if err != nil {
		return nil, err
	}
	return preds, nil
}

// UpdateResult stores the actual outcome and score for a prediction
func (r *PredictionRepositoryImpl) UpdateResult(ctx context.Context, p *models.Prediction) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE predictions SET
			actual_numbers = $2,
			actual_stars = $3,
			score = $4,
			scored_at = NOW()
		WHERE id = $1`,
		p.ID, p.ActualNumbers, p.ActualStars, p.Score)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrPredictionNotFound
	}
	return nil
}
