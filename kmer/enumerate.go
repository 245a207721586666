package kmer

// AllCanonical returns every possible canonical k-mer over A, C, G, T in
// lexicographic order. There are 4^k/2 for odd k and (4^k + 4^(k/2))/2 for even k,
// so this is only practical for small k.
func AllCanonical(k int) []string {
	if k < 1 {
		return nil
	}
	var all []string
	permute("ACGT", "", k, &all)

	ans := all[:0]
	for i := range all {
		if isCanonical(all[i]) {
			ans = append(ans, all[i])
		}
	}
	return ans
}

// permute generates all possible permutations of characters present in b of length k and stores them in ans.
func permute(b string, s string, k int, ans *[]string) {
	if k == 0 {
		*ans = append(*ans, s)
		return
	}

	for i := 0; i < len(b); i++ {
		permute(b, s+string(b[i]), k-1, ans)
	}
}
