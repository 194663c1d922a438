package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic operations
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// Stream creates a deterministic RNG stream scoped to one prediction run.
	// The same (runID, stage, baseSeed) triple always yields an identical stream,
	// so a seeded prediction replays exactly.
	Stream(ctx context.Context, runID, stage string, baseSeed int64) (*rand.Rand, error)
}
