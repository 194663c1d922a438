package engine

import (
	"math/rand"
)

// SampleWithoutReplacement draws up to k distinct items from domain with
// probability proportional to the parallel weights, removing each picked
// item from the pool before the next draw. The inputs are never mutated.
//
// The weights are relative magnitudes, never renormalized between picks.
// If the remaining pool's total weight drops to zero or below, the pick
// degenerates to a uniform choice among the remaining items. That keeps
// the draw total and terminating instead of surfacing an error: a fully
// unweighted pool is a valid, if uninformative, sampling regime.
//
// Fewer than k items come back only when the pool is exhausted first.
func SampleWithoutReplacement[T any](rng *rand.Rand, domain []T, weights []float64, k int) []T {
	pool := make([]T, len(domain))
	copy(pool, domain)
	poolWeights := make([]float64, len(weights))
	copy(poolWeights, weights)

	if k > len(pool) {
		k = len(pool)
	}

	picked := make([]T, 0, k)
	for len(picked) < k && len(pool) > 0 {
		idx := weightedIndex(rng, poolWeights)
		picked = append(picked, pool[idx])

		// Swap-delete keeps removal O(1); pool order is irrelevant to the draw.
		last := len(pool) - 1
		pool[idx], pool[last] = pool[last], pool[idx]
		poolWeights[idx], poolWeights[last] = poolWeights[last], poolWeights[idx]
		pool = pool[:last]
		poolWeights = poolWeights[:last]
	}
	return picked
}

// weightedIndex picks an index with probability proportional to weight,
// falling back to a uniform pick when no positive mass remains.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	target := rng.Float64() * total
	cum := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		if target < cum {
			return i
		}
	}
	// Float accumulation can land target a hair past the last positive
	// weight; that pick belongs to the final positive entry.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return len(weights) - 1
}
