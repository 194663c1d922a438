package engine

import (
	"math"
	"testing"

	"drawcast/domain/stats"
)

func TestNormalizeSumsToOne(t *testing.T) {
	freq := stats.NewFrequencyTable(50)
	freq.Add(7, 10)
	freq.Add(23, 4)

	dist := Normalize(freq, 1.0)
	if len(dist) != 50 {
		t.Fatalf("expected 50 weights, got %d", len(dist))
	}
	if math.Abs(dist.Sum()-1.0) > 1e-9 {
		t.Fatalf("weights sum to %f, expected 1", dist.Sum())
	}
	for i, w := range dist {
		if w <= 0 {
			t.Fatalf("weight for value %d not strictly positive: %f", i+1, w)
		}
	}
}

func TestNormalizeEmptyIsUniform(t *testing.T) {
	freq := stats.NewFrequencyTable(12)
	dist := Normalize(freq, 1.0)

	expected := 1.0 / 12.0
	for i, w := range dist {
		if math.Abs(w-expected) > 1e-12 {
			t.Fatalf("value %d: expected uniform %f, got %f", i+1, expected, w)
		}
	}
}

func TestNormalizeObservationRoughlyDoublesWeight(t *testing.T) {
	freq := stats.NewFrequencyTable(50)
	freq.Add(1, 1)

	dist := Normalize(freq, 1.0)
	ratio := dist.Weight(1) / dist.Weight(2)
	if math.Abs(ratio-2.0) > 1e-9 {
		t.Fatalf("single observation should double relative weight, ratio %f", ratio)
	}
}

func TestNormalizeSmallAlphaSharpens(t *testing.T) {
	freq := stats.NewFrequencyTable(10)
	freq.Add(1, 5)

	mild := Normalize(freq, 1.0)
	sharp := Normalize(freq, 0.1)

	if sharp.Weight(1)/sharp.Weight(2) <= mild.Weight(1)/mild.Weight(2) {
		t.Fatal("smaller alpha should sharpen the observed value's advantage")
	}
}
