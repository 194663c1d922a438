package draw

import "fmt"

// Score counts how many values a prediction shares with a confirmed draw.
type Score struct {
	Numbers int `json:"numbers"`
	Stars   int `json:"stars"`
}

// ScoreAgainst compares a predicted set with an actual set by group
// intersection. Order within a group never matters.
func ScoreAgainst(predicted, actual DrawSet) Score {
	return Score{
		Numbers: intersect(predicted.Numbers, actual.Numbers),
		Stars:   intersect(predicted.Stars, actual.Stars),
	}
}

func intersect(a, b []int) int {
	set := make(map[int]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	n := 0
	for _, v := range b {
		if set[v] {
			n++
		}
	}
	return n
}

// String renders the stored score format, e.g. "3 numbers, 1 stars".
func (s Score) String() string {
	return fmt.Sprintf("%d numbers, %d stars", s.Numbers, s.Stars)
}
