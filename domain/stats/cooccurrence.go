package stats

// PairKey identifies an unordered pair of distinct domain values in
// canonical (Low < High) form.
type PairKey struct {
	Low  int
	High int
}

// NewPairKey canonicalizes an unordered pair. The second return is false
// for a self pair, which has no place in the matrix (zero diagonal).
func NewPairKey(a, b int) (PairKey, bool) {
	if a == b {
		return PairKey{}, false
	}
	if a > b {
		a, b = b, a
	}
	return PairKey{Low: a, High: b}, true
}

// CoOccurrenceMatrix counts joint appearances of distinct number pairs
// within the same draw. Stored sparse and symmetric: one entry per
// canonical pair, diagonal always zero by construction.
type CoOccurrenceMatrix struct {
	pairs map[PairKey]int
}

// NewCoOccurrenceMatrix creates an empty matrix.
func NewCoOccurrenceMatrix() CoOccurrenceMatrix {
	return CoOccurrenceMatrix{pairs: make(map[PairKey]int)}
}

// Increment adds one joint appearance for the pair (a, b). Self pairs are
// ignored.
func (m CoOccurrenceMatrix) Increment(a, b int) {
	key, ok := NewPairKey(a, b)
	if !ok {
		return
	}
	m.pairs[key]++
}

// Count returns the joint appearance count for (a, b) in either order.
// Self pairs and unseen pairs report zero.
func (m CoOccurrenceMatrix) Count(a, b int) int {
	key, ok := NewPairKey(a, b)
	if !ok {
		return 0
	}
	return m.pairs[key]
}

// Len returns the number of distinct pairs with a nonzero count.
func (m CoOccurrenceMatrix) Len() int {
	return len(m.pairs)
}

// Pairs returns a copy of the nonzero entries keyed by canonical pair.
func (m CoOccurrenceMatrix) Pairs() map[PairKey]int {
	out := make(map[PairKey]int, len(m.pairs))
	for k, v := range m.pairs {
		out[k] = v
	}
	return out
}

// JointTotal sums the counts of candidate against every member of picked.
// This is the co-occurrence mass used for selection bias.
func (m CoOccurrenceMatrix) JointTotal(candidate int, picked []int) int {
	total := 0
	for _, p := range picked {
		total += m.Count(candidate, p)
	}
	return total
}
