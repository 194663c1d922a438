package stats

// FrequencyTable holds a weighted observation count for every value of a
// fixed 1..N domain. Every value always has an entry; unseen values sit at
// zero. Counts are weights, not raw tallies, so they are float64.
type FrequencyTable struct {
	counts []float64
}

// NewFrequencyTable creates a zeroed table over the 1..domainSize domain.
func NewFrequencyTable(domainSize int) FrequencyTable {
	return FrequencyTable{counts: make([]float64, domainSize)}
}

// DomainSize returns the size of the underlying domain.
func (t FrequencyTable) DomainSize() int {
	return len(t.counts)
}

// Add accumulates weight for a value. Out-of-domain values are ignored;
// range policing happens upstream in record validation.
func (t FrequencyTable) Add(value int, weight float64) {
	if value < 1 || value > len(t.counts) {
		return
	}
	t.counts[value-1] += weight
}

// Count returns the accumulated weight for a value, zero when out of domain.
func (t FrequencyTable) Count(value int) float64 {
	if value < 1 || value > len(t.counts) {
		return 0
	}
	return t.counts[value-1]
}

// Total returns the sum of all accumulated weights.
func (t FrequencyTable) Total() float64 {
	sum := 0.0
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

// Counts returns a copy of the raw count vector indexed by value-1.
func (t FrequencyTable) Counts() []float64 {
	out := make([]float64, len(t.counts))
	copy(out, t.counts)
	return out
}
