package search

import (
	"math"
	"strings"
)

// ClosestMatch returns the candidate nearest to term by edit distance,
// ignoring case. Candidates farther than half the term's length are
// rejected, so a suggestion never differs from the input by more than 50%.
//
// When several candidates sit at the same lowest distance, the winner
// depends on map iteration order, which Go leaves undefined; ties are
// therefore resolved arbitrarily.
func ClosestMatch(term string, candidates map[string]struct{}) (string, bool) {
	termLower := strings.ToLower(term)
	maxDistance := len(term) / 2

	closest := ""
	minDistance := math.MaxInt
	found := false

	for candidate := range candidates {
		d := Distance(termLower, strings.ToLower(candidate))
		if d < minDistance && d <= maxDistance {
			minDistance = d
			closest = candidate
			found = true
		}
	}

	return closest, found
}
