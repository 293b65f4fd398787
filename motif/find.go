package motif

import "github.com/vertgenlab/gonomics/dna"

// failure computes the Knuth-Morris-Pratt failure function of pattern.
// failure[i] is the length of the longest proper prefix of pattern[:i+1]
// that is also a suffix of it.
func failure(pattern []dna.Base) []int {
	ans := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		switch {
		case pattern[i] == pattern[length]:
			length++
			ans[i] = length
			i++
		case length > 0:
			// do not advance i, fall back to the next shorter prefix-suffix
			length = ans[length-1]
		default:
			i++
		}
	}
	return ans
}

// Find returns the start of every exact, possibly overlapping, occurrence
// of pattern in seq. Bases are compared as is, so both should share a case.
func Find(seq, pattern []dna.Base) []int {
	if len(pattern) == 0 || len(pattern) > len(seq) {
		return nil
	}
	f := failure(pattern)
	var ans []int
	var matched int
	for i := range seq {
		for matched > 0 && seq[i] != pattern[matched] {
			matched = f[matched-1]
		}
		if seq[i] == pattern[matched] {
			matched++
		}
		if matched == len(pattern) {
			ans = append(ans, i-len(pattern)+1)
			matched = f[matched-1]
		}
	}
	return ans
}
