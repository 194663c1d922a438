package engine

import (
	"testing"

	"drawcast/domain/draw"
	"drawcast/internal/testkit"
)

func TestAggregateSingleActualDraw(t *testing.T) {
	agg := NewAggregator(2, 1, false)
	records := []draw.DrawRecord{
		testkit.Record("2024-01-01", "1,2,3,4,5;1,2", ""),
	}

	out := agg.Aggregate(records)

	for n := 1; n <= 5; n++ {
		if got := out.NumberFreq.Count(n); got != 2 {
			t.Fatalf("number %d: expected weight 2, got %f", n, got)
		}
	}
	for n := 6; n <= draw.NumberDomainSize; n++ {
		if got := out.NumberFreq.Count(n); got != 0 {
			t.Fatalf("number %d: expected 0, got %f", n, got)
		}
	}
	if out.StarFreq.Count(1) != 2 || out.StarFreq.Count(2) != 2 {
		t.Fatal("star weights wrong")
	}
	for s := 3; s <= draw.StarDomainSize; s++ {
		if out.StarFreq.Count(s) != 0 {
			t.Fatalf("star %d: expected 0", s)
		}
	}

	// Every pair among {1..5} appears exactly once, symmetrically
	for a := 1; a <= 5; a++ {
		for b := a + 1; b <= 5; b++ {
			if out.CoOccurrence.Count(a, b) != 1 {
				t.Fatalf("pair (%d,%d): expected 1, got %d", a, b, out.CoOccurrence.Count(a, b))
			}
			if out.CoOccurrence.Count(b, a) != 1 {
				t.Fatalf("pair (%d,%d) not symmetric", b, a)
			}
		}
	}
	if out.CoOccurrence.Count(6, 1) != 0 {
		t.Fatal("unseen number has nonzero co-occurrence")
	}
	if out.CoOccurrence.Len() != 10 {
		t.Fatalf("expected 10 pairs, got %d", out.CoOccurrence.Len())
	}
}

func TestAggregateCoOccurrenceAccumulates(t *testing.T) {
	agg := NewAggregator(2, 1, false)
	records := []draw.DrawRecord{
		testkit.Record("2024-01-01", "1,2,10,20,30;1,2", ""),
		testkit.Record("2024-01-08", "1,2,40,41,42;3,4", ""),
	}

	out := agg.Aggregate(records)
	if out.CoOccurrence.Count(1, 2) != 2 {
		t.Fatalf("pair (1,2): expected 2, got %d", out.CoOccurrence.Count(1, 2))
	}
}

func TestAggregatePredictedWeightsOnly(t *testing.T) {
	agg := NewAggregator(2, 1, false)
	records := []draw.DrawRecord{
		testkit.Record("2024-01-01", "", "1,2,3,4,5;1,2"),
	}

	out := agg.Aggregate(records)
	if got := out.NumberFreq.Count(1); got != 1 {
		t.Fatalf("predicted weight: expected 1, got %f", got)
	}
	// Unconfirmed guesses never feed the pair matrix by default
	if out.CoOccurrence.Len() != 0 {
		t.Fatalf("predicted set leaked into co-occurrence: %d pairs", out.CoOccurrence.Len())
	}
}

func TestAggregatePredictedCoOccurrenceOptIn(t *testing.T) {
	agg := NewAggregator(2, 1, true)
	records := []draw.DrawRecord{
		testkit.Record("2024-01-01", "", "1,2,3,4,5;1,2"),
	}

	out := agg.Aggregate(records)
	if out.CoOccurrence.Count(1, 2) != 1 {
		t.Fatal("opt-in predicted co-occurrence not applied")
	}
}

func TestAggregateSkipsInvalidSets(t *testing.T) {
	bad := &draw.DrawSet{Numbers: []int{1, 2, 3, 4, 99}, Stars: []int{1, 2}}
	records := []draw.DrawRecord{
		{Actual: bad},
		{Actual: bad, Predicted: bad},
		testkit.Record("2024-01-01", "1,2,3,4,5;1,2", ""),
	}

	agg := NewAggregator(2, 1, false)
	out := agg.Aggregate(records)

	if out.SkippedSets != 3 {
		t.Fatalf("expected 3 skipped sets, got %d", out.SkippedSets)
	}
	// The good record still contributed in full
	if out.NumberFreq.Count(1) != 2 {
		t.Fatalf("good record lost: %f", out.NumberFreq.Count(1))
	}
	// The bad set contributed nothing, not even its valid values
	if out.NumberFreq.Count(99) != 0 {
		t.Fatal("invalid value leaked into counts")
	}
}

func TestAggregateEmptyHistory(t *testing.T) {
	agg := NewAggregator(2, 1, false)
	out := agg.Aggregate(nil)

	if out.NumberFreq.Total() != 0 || out.StarFreq.Total() != 0 {
		t.Fatal("empty history must produce all-zero tables")
	}
	if out.CoOccurrence.Len() != 0 {
		t.Fatal("empty history must produce an empty matrix")
	}
	if out.NumberFreq.DomainSize() != draw.NumberDomainSize {
		t.Fatal("tables must still cover the full domain")
	}
}
