package ports

import (
	"context"
	"time"

	"drawcast/models"
)

// DrawRepository persists confirmed historical draws.
type DrawRepository interface {
	SaveDraw(ctx context.Context, d *models.HistoricalDraw) error
	ListDraws(ctx context.Context) ([]models.HistoricalDraw, error)
}

// PredictionRepository persists generated predictions and their outcomes.
type PredictionRepository interface {
	SavePrediction(ctx context.Context, p *models.Prediction) error
	GetPredictionByDate(ctx context.Context, date time.Time) (*models.Prediction, error)
	ListPredictions(ctx context.Context) ([]models.Prediction, error)
	UpdateResult(ctx context.Context, p *models.Prediction) error
}
