package engine

import (
	"sort"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"drawcast/domain/stats"
)

// FrequencySummary describes one frequency table for diagnostics output.
type FrequencySummary struct {
	DomainSize int     `json:"domain_size"`
	Total      float64 `json:"total"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`

	// ChiSquare tests the counts against a uniform null. PValue is 1
	// under empty history (nothing to test).
	ChiSquare float64 `json:"chi_square"`
	PValue    float64 `json:"p_value"`
}

// PairCount is one co-occurrence matrix entry for reporting.
type PairCount struct {
	A     int `json:"a"`
	B     int `json:"b"`
	Count int `json:"count"`
}

// SummarizeFrequency computes distribution statistics over a frequency
// table plus a chi-square goodness-of-fit against the uniform null.
// The p-value answers the only honest question this system can: whether
// the observed history even deviates from uniform (it usually does not).
func SummarizeFrequency(freq stats.FrequencyTable) FrequencySummary {
	counts := freq.Counts()
	summary := FrequencySummary{
		DomainSize: freq.DomainSize(),
		Total:      freq.Total(),
		PValue:     1,
	}

	mean, _ := mstats.Mean(counts)
	sd, _ := mstats.StandardDeviation(counts)
	min, _ := mstats.Min(counts)
	max, _ := mstats.Max(counts)
	summary.Mean = mean
	summary.StdDev = sd
	summary.Min = min
	summary.Max = max

	if summary.Total <= 0 || summary.DomainSize < 2 {
		return summary
	}

	expected := summary.Total / float64(summary.DomainSize)
	chi := 0.0
	for _, c := range counts {
		diff := c - expected
		chi += diff * diff / expected
	}
	summary.ChiSquare = chi

	null := distuv.ChiSquared{K: float64(summary.DomainSize - 1)}
	summary.PValue = null.Survival(chi)
	return summary
}

// TopPairs returns the n most frequent co-occurring number pairs in
// descending count order, ties broken by canonical pair order.
func TopPairs(m stats.CoOccurrenceMatrix, n int) []PairCount {
	pairs := make([]PairCount, 0, m.Len())
	for key, count := range m.Pairs() {
		pairs = append(pairs, PairCount{A: key.Low, B: key.High, Count: count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	if n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}
