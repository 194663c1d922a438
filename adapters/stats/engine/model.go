package engine

import (
	"drawcast/domain/stats"
)

// Normalize converts raw frequency counts into a smoothed probability
// distribution using additive (Laplace) smoothing:
//
//	weight(i) = (count(i) + alpha) / (total + alpha*N)
//
// Every domain value receives strictly positive mass for alpha > 0, so a
// downstream sampler can never stall on an all-zero vector. With no
// history at all the distribution is exactly uniform. The default
// alpha of 1 means a single observation roughly doubles a value's
// relative weight.
func Normalize(freq stats.FrequencyTable, alpha float64) stats.Distribution {
	n := freq.DomainSize()
	denom := freq.Total() + alpha*float64(n)

	dist := make(stats.Distribution, n)
	for i := 0; i < n; i++ {
		dist[i] = (freq.Count(i+1) + alpha) / denom
	}
	return dist
}
