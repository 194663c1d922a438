package stats

// Distribution is an ordered vector of relative sampling weights, one per
// domain value (index i holds the weight of value i+1). Weights are not
// required to sum to 1; only relative magnitude matters to the sampler.
// A smoothed distribution has every entry strictly positive.
type Distribution []float64

// Sum returns the total weight mass.
func (d Distribution) Sum() float64 {
	sum := 0.0
	for _, w := range d {
		sum += w
	}
	return sum
}

// Weight returns the weight of a domain value, zero when out of domain.
func (d Distribution) Weight(value int) float64 {
	if value < 1 || value > len(d) {
		return 0
	}
	return d[value-1]
}
