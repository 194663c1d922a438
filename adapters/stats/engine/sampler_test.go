package engine

import (
	"math/rand"
	"testing"
)

func intDomain(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

func TestSampleWithoutReplacementNoDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	domain := intDomain(50)
	weights := make([]float64, 50)
	for i := range weights {
		weights[i] = float64(i + 1)
	}

	for trial := 0; trial < 100; trial++ {
		picked := SampleWithoutReplacement(rng, domain, weights, 5)
		if len(picked) != 5 {
			t.Fatalf("expected 5 items, got %d", len(picked))
		}
		seen := make(map[int]bool)
		for _, v := range picked {
			if seen[v] {
				t.Fatalf("duplicate item %d in trial %d", v, trial)
			}
			seen[v] = true
		}
	}
}

func TestSampleWithoutReplacementExhaustsPool(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	picked := SampleWithoutReplacement(rng, []int{1, 2, 3}, []float64{1, 1, 1}, 10)
	if len(picked) != 3 {
		t.Fatalf("expected all 3 pool items, got %d", len(picked))
	}
}

func TestSampleWithoutReplacementZeroWeightsFallsBackToUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	domain := intDomain(10)
	weights := make([]float64, 10)

	picked := SampleWithoutReplacement(rng, domain, weights, 4)
	if len(picked) != 4 {
		t.Fatalf("degenerate pool must still yield k items, got %d", len(picked))
	}
}

func TestSampleWithoutReplacementNeverPicksZeroWeightWhileMassRemains(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	domain := []int{1, 2, 3, 4}
	weights := []float64{0, 1, 1, 0}

	for trial := 0; trial < 200; trial++ {
		picked := SampleWithoutReplacement(rng, domain, weights, 2)
		for _, v := range picked {
			if v == 1 || v == 4 {
				t.Fatalf("picked zero-weight item %d", v)
			}
		}
	}
}

func TestSampleWithoutReplacementDeterministicUnderSeed(t *testing.T) {
	domain := intDomain(50)
	weights := make([]float64, 50)
	for i := range weights {
		weights[i] = 1 + float64(i%7)
	}

	a := SampleWithoutReplacement(rand.New(rand.NewSource(99)), domain, weights, 5)
	b := SampleWithoutReplacement(rand.New(rand.NewSource(99)), domain, weights, 5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different draws: %v vs %v", a, b)
		}
	}
}

func TestSampleWithoutReplacementDoesNotMutateInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	domain := []int{1, 2, 3, 4, 5}
	weights := []float64{1, 2, 3, 4, 5}

	SampleWithoutReplacement(rng, domain, weights, 3)

	for i, v := range domain {
		if v != i+1 {
			t.Fatalf("domain mutated: %v", domain)
		}
		if weights[i] != float64(i+1) {
			t.Fatalf("weights mutated: %v", weights)
		}
	}
}

func TestSampleWithoutReplacementHeavyWeightDominates(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	domain := []int{1, 2}
	weights := []float64{1000000, 1}

	hits := 0
	for trial := 0; trial < 100; trial++ {
		picked := SampleWithoutReplacement(rng, domain, weights, 1)
		if picked[0] == 1 {
			hits++
		}
	}
	if hits < 99 {
		t.Fatalf("heavy weight picked only %d/100 times", hits)
	}
}
