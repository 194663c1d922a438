package testkit

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"drawcast/domain/core"
	"drawcast/domain/draw"
	"drawcast/models"
	"drawcast/ports"
)

// TestKit provides testing utilities and fixtures
type TestKit struct {
	draws       *InMemoryDrawRepository
	predictions *InMemoryPredictionRepository
}

// NewTestKit creates a new test kit instance with empty in-memory stores
func NewTestKit() *TestKit {
	return &TestKit{
		draws:       NewInMemoryDrawRepository(),
		predictions: NewInMemoryPredictionRepository(),
	}
}

// DrawRepository returns the in-memory draw repository
func (t *TestKit) DrawRepository() ports.DrawRepository {
	return t.draws
}

// PredictionRepository returns the in-memory prediction repository
func (t *TestKit) PredictionRepository() ports.PredictionRepository {
	return t.predictions
}

// RNGAdapter returns a deterministic RNG adapter
func (t *TestKit) RNGAdapter() ports.RNGPort {
	return &RNGAdapter{}
}

// Record builds a draw record from canonical encodings; empty strings
// leave the corresponding pair absent. Bad fixtures panic: a test that
// cannot build its own input is broken.
func Record(date string, actual, predicted string) draw.DrawRecord {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	rec := draw.DrawRecord{Date: d}
	if actual != "" {
		set, err := draw.ParseDrawSet(actual)
		if err != nil {
			panic(err)
		}
		rec.Actual = &set
	}
	if predicted != "" {
		set, err := draw.ParseDrawSet(predicted)
		if err != nil {
			panic(err)
		}
		rec.Predicted = &set
	}
	return rec
}

// RNGAdapter implements the RNGPort interface with fixed seeds for
// reproducible tests
type RNGAdapter struct{}

// SeededStream creates a deterministic random number generator for a named operation
func (r *RNGAdapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(seed)), nil
}

// Stream creates a deterministic RNG stream for a prediction run
func (r *RNGAdapter) Stream(ctx context.Context, runID, stage string, baseSeed int64) (*rand.Rand, error) {
	seed := baseSeed
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed)), nil
}

// InMemoryDrawRepository implements ports.DrawRepository in memory
type InMemoryDrawRepository struct {
	mu    sync.RWMutex
	byDay map[string]models.HistoricalDraw
}

// NewInMemoryDrawRepository creates an empty in-memory draw repository
func NewInMemoryDrawRepository() *InMemoryDrawRepository {
	return &InMemoryDrawRepository{byDay: make(map[string]models.HistoricalDraw)}
}

func (r *InMemoryDrawRepository) SaveDraw(ctx context.Context, d *models.HistoricalDraw) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID.IsEmpty() {
		d.ID = core.NewDrawID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	r.byDay[d.Date.Format("2006-01-02")] = *d
	return nil
}

func (r *InMemoryDrawRepository) ListDraws(ctx context.Context) ([]models.HistoricalDraw, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	draws := make([]models.HistoricalDraw, 0, len(r.byDay))
	for _, d := range r.byDay {
		draws = append(draws, d)
	}
	sort.Slice(draws, func(i, j int) bool { return draws[i].Date.Before(draws[j].Date) })
	return draws, nil
}

// InMemoryPredictionRepository implements ports.PredictionRepository in memory
type InMemoryPredictionRepository struct {
	mu    sync.RWMutex
	byDay map[string]models.Prediction
}

// NewInMemoryPredictionRepository creates an empty in-memory prediction repository
func NewInMemoryPredictionRepository() *InMemoryPredictionRepository {
	return &InMemoryPredictionRepository{byDay: make(map[string]models.Prediction)}
}

func (r *InMemoryPredictionRepository) SavePrediction(ctx context.Context, p *models.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID.IsEmpty() {
		p.ID = core.NewPredictionID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.byDay[p.Date.Format("2006-01-02")] = *p
	return nil
}

func (r *InMemoryPredictionRepository) GetPredictionByDate(ctx context.Context, date time.Time) (*models.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byDay[date.Format("2006-01-02")]
	if !ok {
		return nil, core.ErrPredictionNotFound
	}
	out := p
	return &out, nil
}

func (r *InMemoryPredictionRepository) ListPredictions(ctx context.Context) ([]models.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	preds := make([]models.Prediction, 0, len(r.byDay))
	for _, p := range r.byDay {
		preds = append(preds, p)
	}
	sort.Slice(preds, func(i, j int) bool { return preds[i].Date.Before(preds[j].Date) })
	return preds, nil
}

func (r *InMemoryPredictionRepository) UpdateResult(ctx context.Context, p *models.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := p.Date.Format("2006-01-02")
	if _, ok := r.byDay[key]; !ok {
		return core.ErrPredictionNotFound
	}
	r.byDay[key] = *p
	return nil
}
