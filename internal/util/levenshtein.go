package util

// Levenshtein returns the rune-level edit distance between a and b.
// Two rolling rows, no full matrix.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			cur[j] = min(prev[j-1], prev[j], cur[j-1]) + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
