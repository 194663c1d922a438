package migration

import (
	"context"

	"drawcast/internal/errors"

	"github.com/jmoiron/sqlx"
)

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createHistoricalDrawsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create historical_draws table")
	}

	if err := r.createPredictionsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create predictions table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createHistoricalDrawsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS historical_draws (
			id UUID PRIMARY KEY,
			draw_date DATE NOT NULL UNIQUE,
			numbers TEXT NOT NULL,
			stars TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

func (r *MigrationRunner) createPredictionsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS predictions (
			id UUID PRIMARY KEY,
			draw_date DATE NOT NULL UNIQUE,
			predicted_numbers TEXT NOT NULL,
			predicted_stars TEXT NOT NULL,
			actual_numbers TEXT,
			actual_stars TEXT,
			score TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			scored_at TIMESTAMPTZ
		)`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_historical_draws_date ON historical_draws(draw_date)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_date ON predictions(draw_date)`,
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
