package match

import (
	"cmp"
	"slices"
)

const (
	// DefaultThreshold is the minimum Similarity for a candidate to be suggested.
	DefaultThreshold = 0.6
	// DefaultLimit caps the number of suggestions.
	DefaultLimit = 3
)

type scored struct {
	name  string
	score float64
}

// Suggest returns the candidates most similar to name, best first, using
// DefaultThreshold and DefaultLimit. Exact matches are never suggested.
func Suggest(name string, candidates []string) []string {
	return SuggestN(name, candidates, DefaultThreshold, DefaultLimit)
}

// SuggestN is Suggest with an explicit threshold and limit. Ties are broken
// by candidate name so the result is deterministic.
func SuggestN(name string, candidates []string, threshold float64, limit int) []string {
	var found []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= threshold {
			found = append(found, scored{name: c, score: s})
		}
	}

	slices.SortFunc(found, func(x, y scored) int {
		if c := cmp.Compare(y.score, x.score); c != 0 {
			return c
		}

		return cmp.Compare(x.name, y.name)
	})

	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	out := make([]string, 0, len(found))
	for _, f := range found {
		out = append(out, f.name)
	}

	return out
}
