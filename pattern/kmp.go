package pattern

// buildKmpFailure calculates the Knuth-Morris-Pratt failure function for pattern.
// failure[i] = length of the longest proper prefix of pattern[0:i+1] which is also a suffix of it.
func buildKmpFailure(pattern string) []int {
	failure := make([]int, len(pattern))

	// Length of the previous longest prefix-suffix
	length := 0
	i := 1

	for i < len(pattern) {
		if pattern[i] == pattern[length] {
			failure[i] = length + 1
			length++
			i++
		} else {
			if length > 0 {
				// do not increment i, retry with the next shorter prefix-suffix
				length = failure[length-1]
			} else {
				failure[i] = 0
				i++
			}
		}
	}

	return failure
}

// kmpPositions returns the start of every (possibly overlapping) occurrence of
// pattern in seq, in ascending order. pattern must not be empty.
func kmpPositions(seq, pattern string, failure []int) []int {
	var ans []int
	var length int
	for i := 0; i < len(seq); i++ {
		for length > 0 && seq[i] != pattern[length] {
			length = failure[length-1]
		}
		if seq[i] == pattern[length] {
			length++
		}
		if length == len(pattern) {
			ans = append(ans, i-length+1)
			length = failure[length-1]
		}
	}
	return ans
}
