package match

// Levenshtein computes the edit distance between two strings, counting
// runes rather than bytes.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns 1 - distance/maxLen over the normalized identifiers,
// so 1.0 means the names only differ in case or separators.
func Similarity(a, b string) float64 {
	na, nb := []rune(NormalizeIdent(a)), []rune(NormalizeIdent(b))

	maxLen := max(len(na), len(nb))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(string(na), string(nb)))/float64(maxLen)
}
