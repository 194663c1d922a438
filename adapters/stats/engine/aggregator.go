package engine

import (
	"drawcast/domain/draw"
	"drawcast/domain/stats"
	"drawcast/ports"
)

// Aggregator scans historical records into frequency tables and the
// number-pair co-occurrence matrix. Confirmed draws carry more weight
// than stored guesses, and only confirmed draws feed the matrix unless
// predicted co-occurrence is explicitly enabled.
type Aggregator struct {
	actualWeight    float64
	predictedWeight float64
	predictedPairs  bool
}

// NewAggregator creates an aggregator with the given evidence weights.
func NewAggregator(actualWeight, predictedWeight float64, predictedPairs bool) *Aggregator {
	return &Aggregator{
		actualWeight:    actualWeight,
		predictedWeight: predictedWeight,
		predictedPairs:  predictedPairs,
	}
}

// Aggregate walks the records once and accumulates counts. A pair that
// fails validation is skipped and counted, never fatal: one bad record
// must not abort aggregation over the whole collection. The output tables
// always cover the full domain, zero where unseen.
func (a *Aggregator) Aggregate(records []draw.DrawRecord) ports.DrawStats {
	out := ports.DrawStats{
		NumberFreq:   stats.NewFrequencyTable(draw.NumberDomainSize),
		StarFreq:     stats.NewFrequencyTable(draw.StarDomainSize),
		CoOccurrence: stats.NewCoOccurrenceMatrix(),
	}

	for _, rec := range records {
		if rec.Actual != nil {
			if err := rec.Actual.Validate(); err != nil {
				out.SkippedSets++
			} else {
				a.accumulate(&out, *rec.Actual, a.actualWeight, true)
			}
		}
		if rec.Predicted != nil {
			if err := rec.Predicted.Validate(); err != nil {
				out.SkippedSets++
			} else {
				a.accumulate(&out, *rec.Predicted, a.predictedWeight, a.predictedPairs)
			}
		}
	}
	return out
}

func (a *Aggregator) accumulate(out *ports.DrawStats, set draw.DrawSet, weight float64, pairs bool) {
	for _, n := range set.Numbers {
		out.NumberFreq.Add(n, weight)
	}
	for _, s := range set.Stars {
		out.StarFreq.Add(s, weight)
	}
	if !pairs {
		return
	}
	for i := 0; i < len(set.Numbers); i++ {
		for j := i + 1; j < len(set.Numbers); j++ {
			out.CoOccurrence.Increment(set.Numbers[i], set.Numbers[j])
		}
	}
}
