package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"drawcast/domain/stats"
)

func TestSummarizeFrequencyEmpty(t *testing.T) {
	s := SummarizeFrequency(stats.NewFrequencyTable(50))

	assert.Equal(t, 50, s.DomainSize)
	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, 0.0, s.ChiSquare)
	// Nothing observed: no evidence against uniformity
	assert.Equal(t, 1.0, s.PValue)
}

func TestSummarizeFrequencyUniformCountsScoreZeroChi(t *testing.T) {
	freq := stats.NewFrequencyTable(12)
	for v := 1; v <= 12; v++ {
		freq.Add(v, 3)
	}

	s := SummarizeFrequency(freq)
	assert.InDelta(t, 0.0, s.ChiSquare, 1e-9)
	assert.InDelta(t, 1.0, s.PValue, 1e-9)
	assert.InDelta(t, 3.0, s.Mean, 1e-9)
	assert.InDelta(t, 0.0, s.StdDev, 1e-9)
}

func TestSummarizeFrequencySkewedCountsLowerPValue(t *testing.T) {
	freq := stats.NewFrequencyTable(12)
	freq.Add(1, 120)

	s := SummarizeFrequency(freq)
	assert.Greater(t, s.ChiSquare, 100.0)
	assert.Less(t, s.PValue, 0.001)
	assert.Equal(t, 120.0, s.Max)
	assert.Equal(t, 0.0, s.Min)
}

func TestTopPairsOrdering(t *testing.T) {
	m := stats.NewCoOccurrenceMatrix()
	m.Increment(1, 2)
	m.Increment(1, 2)
	m.Increment(1, 2)
	m.Increment(3, 4)
	m.Increment(5, 6)
	m.Increment(5, 6)

	pairs := TopPairs(m, 2)
	assert.Len(t, pairs, 2)
	assert.Equal(t, PairCount{A: 1, B: 2, Count: 3}, pairs[0])
	assert.Equal(t, PairCount{A: 5, B: 6, Count: 2}, pairs[1])

	all := TopPairs(m, 100)
	assert.Len(t, all, 3)
}
