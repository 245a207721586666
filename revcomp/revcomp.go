package revcomp

// complement maps each byte to its Watson-Crick partner. Anything outside
// A, C, G, T has no partner and maps to 'N'.
var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// Complement returns the complement of a single nucleotide, or 'N' for any
// symbol that is not A, C, G, or T.
func Complement(b byte) byte {
	return complement[b]
}

// ReverseComplement returns the reverse complement of s. The output always has
// the same length as the input; unrecognized symbols become 'N' in place.
func ReverseComplement(s string) string {
	n := len(s)
	if n == 0 {
		return ""
	}
	ans := make([]byte, n)
	for i := 0; i < n; i++ {
		ans[i] = complement[s[n-1-i]]
	}
	return string(ans)
}

// IsPalindrome reports whether s is its own reverse complement (e.g. GAATTC).
func IsPalindrome(s string) bool {
	n := len(s)
	for i := 0; i < n; i++ {
		if s[i] != complement[s[n-1-i]] {
			return false
		}
	}
	return true
}
