package draw

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"drawcast/domain/core"
)

// Canonical wire encoding for a draw set: "n1,n2,n3,n4,n5;s1,s2".
// Commas separate values within a group, a single semicolon separates the
// number group from the star group.

// ParseDrawSet decodes the canonical encoding into a validated DrawSet.
// Any decode or validation failure is reported as a core record error so
// callers can apply the skip-and-continue policy.
func ParseDrawSet(encoded string) (DrawSet, error) {
	groups := strings.Split(strings.TrimSpace(encoded), ";")
	if len(groups) != 2 {
		return DrawSet{}, core.NewEncodingError(encoded, fmt.Errorf("expected 2 groups, got %d", len(groups)))
	}

	numbers, err := parseGroup(groups[0])
	if err != nil {
		return DrawSet{}, core.NewEncodingError(encoded, err)
	}
	stars, err := parseGroup(groups[1])
	if err != nil {
		return DrawSet{}, core.NewEncodingError(encoded, err)
	}

	set := DrawSet{Numbers: numbers, Stars: stars}
	if err := set.Validate(); err != nil {
		return DrawSet{}, err
	}
	return set, nil
}

func parseGroup(group string) ([]int, error) {
	tokens := strings.Split(group, ",")
	values := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("unparsable token %q", tok)
		}
		values = append(values, v)
	}
	return values, nil
}

// Encode renders the canonical encoding with both groups sorted ascending.
func (s DrawSet) Encode() string {
	return encodeGroup(s.Numbers) + ";" + encodeGroup(s.Stars)
}

// EncodeParts renders the two groups separately, for storage layouts that
// keep numbers and stars in distinct columns.
func (s DrawSet) EncodeParts() (numbers, stars string) {
	return encodeGroup(s.Numbers), encodeGroup(s.Stars)
}

// DrawSet converts a prediction result into a draw set for encoding and
// scoring.
func (r PredictionResult) DrawSet() DrawSet {
	return DrawSet{Numbers: r.Numbers, Stars: r.Stars}
}

func encodeGroup(values []int) string {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
