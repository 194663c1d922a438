package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"drawcast/domain/draw"
	"drawcast/internal"
	"drawcast/internal/errors"
	"drawcast/models"
	"drawcast/ports"
)

// maxConcurrentPredictions bounds batch generation. Each prediction is a
// full rebuild over the record collection, so the bound is deliberately
// modest.
const maxConcurrentPredictions = 4

// PredictionService orchestrates prediction generation: it assembles the
// record collection from both stores, runs the engine, and persists the
// outcome. The engine itself stays pure; all I/O lives here.
type PredictionService struct {
	draws       ports.DrawRepository
	predictions ports.PredictionRepository
	predictor   ports.PredictorPort
	rngPort     ports.RNGPort
	baseSeed    int64
	logger      *internal.Logger
}

// NewPredictionService creates a prediction service
func NewPredictionService(
	draws ports.DrawRepository,
	predictions ports.PredictionRepository,
	predictor ports.PredictorPort,
	rngPort ports.RNGPort,
	baseSeed int64,
) *PredictionService {
	return &PredictionService{
		draws:       draws,
		predictions: predictions,
		predictor:   predictor,
		rngPort:     rngPort,
		baseSeed:    baseSeed,
		logger:      internal.DefaultLogger,
	}
}

// AddHistorical validates and stores one confirmed past draw.
func (s *PredictionService) AddHistorical(ctx context.Context, date time.Time, numbers, stars string) (*models.HistoricalDraw, error) {
	set, err := draw.ParseDrawSet(numbers + ";" + stars)
	if err != nil {
		return nil, errors.Wrap(err, "invalid draw")
	}

	encNumbers, encStars := set.EncodeParts()
	d := &models.HistoricalDraw{Date: date, Numbers: encNumbers, Stars: encStars}
	if err := s.draws.SaveDraw(ctx, d); err != nil {
		return nil, errors.Wrap(err, "failed to save draw")
	}
	return d, nil
}

// GeneratePrediction runs the engine over the full record history and
// stores the resulting guess for the given draw date.
func (s *PredictionService) GeneratePrediction(ctx context.Context, date time.Time) (*models.Prediction, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	rng, err := s.rngPort.Stream(ctx, date.Format("2006-01-02"), "predict", s.baseSeed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rng stream")
	}

	result, err := s.predictor.Predict(ctx, records, rng)
	if err != nil {
		return nil, errors.Wrap(err, "prediction failed")
	}

	encNumbers, encStars := result.DrawSet().EncodeParts()
	p := &models.Prediction{
		Date:             date,
		PredictedNumbers: encNumbers,
		PredictedStars:   encStars,
	}
	if err := s.predictions.SavePrediction(ctx, p); err != nil {
		return nil, errors.Wrap(err, "failed to save prediction")
	}

	s.logger.Info("prediction for %s: %s;%s (history: %d records)",
		date.Format("2006-01-02"), encNumbers, encStars, len(records))
	return p, nil
}

// GenerateBatch produces one prediction per date with bounded concurrency.
// The engine holds no shared state, so parallel calls are safe; the
// semaphore only caps the rebuild cost.
func (s *PredictionService) GenerateBatch(ctx context.Context, dates []time.Time) ([]models.Prediction, error) {
	sem := semaphore.NewWeighted(maxConcurrentPredictions)
	var wg sync.WaitGroup
	var mu sync.Mutex

	results := make([]models.Prediction, 0, len(dates))
	var firstErr error

	for _, date := range dates {
		if err := sem.Acquire(ctx, 1); err != nil {
			// In-flight goroutines still append to results; let them
			// drain before handing the slice back.
			wg.Wait()
			return results, err
		}
		wg.Add(1)
		go func(d time.Time) {
			defer wg.Done()
			defer sem.Release(1)

			p, err := s.GeneratePrediction(ctx, d)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results = append(results, *p)
		}(date)
	}

	wg.Wait()
	return results, firstErr
}

// RecordResult stores the actual outcome on the prediction for that date
// and computes the match score.
func (s *PredictionService) RecordResult(ctx context.Context, date time.Time, numbers, stars string) (*models.Prediction, error) {
	actual, err := draw.ParseDrawSet(numbers + ";" + stars)
	if err != nil {
		return nil, errors.Wrap(err, "invalid result")
	}

	p, err := s.predictions.GetPredictionByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	predicted, err := draw.ParseDrawSet(p.PredictedNumbers + ";" + p.PredictedStars)
	if err != nil {
		return nil, errors.Wrap(err, "stored prediction is undecodable")
	}

	score := draw.ScoreAgainst(predicted, actual).String()
	encNumbers, encStars := actual.EncodeParts()
	p.ActualNumbers = &encNumbers
	p.ActualStars = &encStars
	p.Score = &score

	if err := s.predictions.UpdateResult(ctx, p); err != nil {
		return nil, errors.Wrap(err, "failed to update result")
	}

	s.logger.Info("result for %s scored: %s", date.Format("2006-01-02"), score)
	return p, nil
}

// ListPredictions returns all stored predictions.
func (s *PredictionService) ListPredictions(ctx context.Context) ([]models.Prediction, error) {
	return s.predictions.ListPredictions(ctx)
}

// BuildStats aggregates the full record history for diagnostics.
func (s *PredictionService) BuildStats(ctx context.Context) (ports.DrawStats, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return ports.DrawStats{}, err
	}
	return s.predictor.BuildStats(records), nil
}

// ImportHistory bulk-stores externally ingested records that carry a
// confirmed draw. Returns the number stored.
func (s *PredictionService) ImportHistory(ctx context.Context, records []draw.DrawRecord) (int, error) {
	stored := 0
	for _, rec := range records {
		if rec.Actual == nil {
			continue
		}
		encNumbers, encStars := rec.Actual.EncodeParts()
		d := &models.HistoricalDraw{Date: rec.Date, Numbers: encNumbers, Stars: encStars}
		if err := s.draws.SaveDraw(ctx, d); err != nil {
			return stored, errors.Wrapf(err, "failed to import draw for %s", rec.Date.Format("2006-01-02"))
		}
		stored++
	}
	return stored, nil
}

// loadRecords assembles the engine input from both stores: confirmed
// draws plus stored predictions (which may themselves carry actuals).
// Undecodable stored rows are skipped here; the engine's aggregator
// re-checks validity anyway.
func (s *PredictionService) loadRecords(ctx context.Context) ([]draw.DrawRecord, error) {
	stored, err := s.draws.ListDraws(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load draws")
	}
	preds, err := s.predictions.ListPredictions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load predictions")
	}

	records := make([]draw.DrawRecord, 0, len(stored)+len(preds))
	for _, d := range stored {
		rec, err := d.ToRecord()
		if err != nil {
			s.logger.Warn("skipping undecodable draw %s: %v", d.Date.Format("2006-01-02"), err)
			continue
		}
		records = append(records, rec)
	}
	for _, p := range preds {
		records = append(records, p.ToRecord())
	}
	return records, nil
}
