package search

// Distance computes the Levenshtein edit distance between a and b with
// unit insert, delete, and substitute costs. Comparison is rune-wise and
// case-sensitive; callers wanting case-insensitive distances lower-case
// both arguments first.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	dp := make([][]int, len(ra)+1)
	for i := range dp {
		dp[i] = make([]int, len(rb)+1)
	}

	for i := 0; i <= len(ra); i++ {
		for j := 0; j <= len(rb); j++ {
			switch {
			case i == 0:
				dp[i][j] = j
			case j == 0:
				dp[i][j] = i
			default:
				cost := 1
				if ra[i-1] == rb[j-1] {
					cost = 0
				}
				dp[i][j] = min(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
			}
		}
	}

	return dp[len(ra)][len(rb)]
}
