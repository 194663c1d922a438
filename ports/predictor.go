package ports

import (
	"context"
	"math/rand"

	"drawcast/domain/draw"
	"drawcast/domain/stats"
)

// DrawStats is the aggregate view of a record collection: per-domain
// frequency tables plus the number-pair co-occurrence matrix.
type DrawStats struct {
	NumberFreq   stats.FrequencyTable
	StarFreq     stats.FrequencyTable
	CoOccurrence stats.CoOccurrenceMatrix

	// SkippedSets counts pairs discarded by the skip-and-continue policy.
	SkippedSets int
}

// PredictorPort generates a plausible future draw from historical records.
// Implementations hold no state across calls; concurrent calls are safe.
type PredictorPort interface {
	// Predict samples a full 5+2 draw. It cannot fail on well-typed input:
	// under empty history it degenerates to uniform sampling.
	Predict(ctx context.Context, records []draw.DrawRecord, rng *rand.Rand) (draw.PredictionResult, error)

	// BuildStats exposes the aggregation step for diagnostics and tests.
	BuildStats(records []draw.DrawRecord) DrawStats
}
