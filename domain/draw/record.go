package draw

import (
	"time"

	"drawcast/domain/core"
)

// Domain geometry for a EuroMillions-style draw. Fixed for the lifetime of
// the engine; everything downstream (frequency tables, samplers) sizes
// itself from these.
const (
	NumberDomainSize = 50
	StarDomainSize   = 12
	NumbersPerDraw   = 5
	StarsPerDraw     = 2
)

// DrawSet is one decoded draw: 5 distinct numbers in [1,50] and 2 distinct
// stars in [1,12]. Order is not significant.
type DrawSet struct {
	Numbers []int `json:"numbers"`
	Stars   []int `json:"stars"`
}

// Validate checks cardinality, range and uniqueness of both groups.
// Returns the first violation found as a core sentinel error.
func (s DrawSet) Validate() error {
	if err := validateGroup(s.Numbers, NumbersPerDraw, NumberDomainSize); err != nil {
		return err
	}
	return validateGroup(s.Stars, StarsPerDraw, StarDomainSize)
}

func validateGroup(values []int, want, domainSize int) error {
	if len(values) != want {
		return core.ErrWrongCardinality
	}
	seen := make(map[int]bool, want)
	for _, v := range values {
		if v < 1 || v > domainSize {
			return core.NewDomainError(v, 1, domainSize)
		}
		if seen[v] {
			return core.ErrDuplicateValue
		}
		seen[v] = true
	}
	return nil
}

// DrawRecord is one dated entry of history. Either pair may be absent:
// a confirmed past draw has Actual, a stored guess has Predicted, and a
// scored prediction has both. Records are immutable inputs owned by the
// caller; the engine never mutates them.
type DrawRecord struct {
	Date      time.Time
	Actual    *DrawSet
	Predicted *DrawSet
}

// PredictionResult is the engine output: both sequences sorted ascending,
// distinct, in-domain. Structurally valid even under empty history.
type PredictionResult struct {
	Numbers []int `json:"numbers"`
	Stars   []int `json:"stars"`
}
