package engine

import (
	"context"
	"math/rand"
	"sort"

	"drawcast/domain/core"
	"drawcast/domain/draw"
	"drawcast/domain/stats"
	"drawcast/ports"
)

// Config tunes the prediction engine. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Alpha is the Laplace smoothing strength. Must be > 0 so every
	// domain value keeps positive sampling mass.
	Alpha float64

	// Beta scales the co-occurrence bonus during sequential number
	// selection. Zero disables the bias entirely.
	Beta float64

	// ActualWeight and PredictedWeight grade the two evidence classes
	// during frequency aggregation.
	ActualWeight    float64
	PredictedWeight float64

	// PredictedCoOccurrence lets stored guesses feed the pair matrix.
	// Off by default: only confirmed draws establish joint structure.
	PredictedCoOccurrence bool
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Alpha:           1.0,
		Beta:            0.05,
		ActualWeight:    2,
		PredictedWeight: 1,
	}
}

// Validate rejects tunings that would break the positivity invariant.
// This is the engine's only hard failure; everything past construction
// always produces a structurally valid result.
func (c Config) Validate() error {
	if c.Alpha <= 0 {
		return core.ErrNonPositiveAlpha
	}
	if c.Beta < 0 {
		return core.ErrNegativeBeta
	}
	if c.ActualWeight < 0 || c.PredictedWeight < 0 {
		return core.ErrNegativeWeight
	}
	return nil
}

// Engine is the probability-weighted draw predictor. It holds only its
// configuration: every Predict call rebuilds stats from the supplied
// records, so concurrent calls are safe without locking.
type Engine struct {
	cfg        Config
	aggregator *Aggregator
}

// NewEngine creates an engine after validating the configuration.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:        cfg,
		aggregator: NewAggregator(cfg.ActualWeight, cfg.PredictedWeight, cfg.PredictedCoOccurrence),
	}, nil
}

// BuildStats exposes the aggregation step for diagnostics and tests.
func (e *Engine) BuildStats(records []draw.DrawRecord) ports.DrawStats {
	return e.aggregator.Aggregate(records)
}

// Predict samples one full draw: 5 numbers picked sequentially with a
// co-occurrence bonus toward numbers that historically appeared alongside
// the ones already chosen, then 2 stars on plain base weights. Both
// groups come back sorted ascending. Under empty history everything
// degenerates to uniform sampling; the call cannot fail.
func (e *Engine) Predict(ctx context.Context, records []draw.DrawRecord, rng *rand.Rand) (draw.PredictionResult, error) {
	agg := e.aggregator.Aggregate(records)

	numberWeights := Normalize(agg.NumberFreq, e.cfg.Alpha)
	starWeights := Normalize(agg.StarFreq, e.cfg.Alpha)

	numbers := e.pickNumbers(rng, numberWeights, agg.CoOccurrence)
	stars := SampleWithoutReplacement(rng, domainValues(draw.StarDomainSize), starWeights, draw.StarsPerDraw)

	sort.Ints(numbers)
	sort.Ints(stars)
	return draw.PredictionResult{Numbers: numbers, Stars: stars}, nil
}

// pickNumbers runs the sequential, co-occurrence-biased selection. The
// first pick uses the base weights unmodified; each later pick recomputes
// an effective weight base(c) + beta*joint(c, picked) over the shrinking
// remaining domain, floored at zero.
func (e *Engine) pickNumbers(rng *rand.Rand, base stats.Distribution, co stats.CoOccurrenceMatrix) []int {
	remaining := domainValues(draw.NumberDomainSize)
	picked := make([]int, 0, draw.NumbersPerDraw)

	for len(picked) < draw.NumbersPerDraw && len(remaining) > 0 {
		weights := effectiveWeights(base, co, remaining, picked, e.cfg.Beta)
		next := SampleWithoutReplacement(rng, remaining, weights, 1)
		if len(next) == 0 {
			break
		}
		picked = append(picked, next[0])
		remaining = removeValue(remaining, next[0])
	}
	return picked
}

// effectiveWeights computes the biased weight of every remaining
// candidate: base(c) + beta*joint(c, picked), floored at zero. With beta
// of zero or nothing picked yet this is exactly the base weight vector
// restricted to the remaining domain.
func effectiveWeights(base stats.Distribution, co stats.CoOccurrenceMatrix, remaining, picked []int, beta float64) []float64 {
	weights := make([]float64, len(remaining))
	for i, c := range remaining {
		w := base.Weight(c)
		if len(picked) > 0 && beta > 0 {
			w += beta * float64(co.JointTotal(c, picked))
		}
		if w < 0 {
			w = 0
		}
		weights[i] = w
	}
	return weights
}

func domainValues(size int) []int {
	values := make([]int, size)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

func removeValue(values []int, v int) []int {
	for i, x := range values {
		if x == v {
			return append(values[:i], values[i+1:]...)
		}
	}
	return values
}
