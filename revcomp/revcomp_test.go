package revcomp

import (
	"github.com/vertgenlab/gonomics/dna"
	"math/rand"
	"testing"
)

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"A", "T"},
		{"GATTACA", "TGTAATC"},
		{"ACGT", "ACGT"},
		{"AAAACCC", "GGGTTTT"},
		{"ACGX", "NCGT"},
		{"acgt", "NNNN"},
		{"NNA", "TNN"},
	}
	for _, test := range tests {
		if got := ReverseComplement(test.in); got != test.want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		s := randomSeq(r, r.Intn(50))
		if got := ReverseComplement(ReverseComplement(s)); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}

// gonomics complements in place on []dna.Base, so it makes a handy oracle.
func TestReverseComplementMatchesGonomics(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		s := randomSeq(r, 1+r.Intn(40))
		b := dna.StringToBases(s)
		dna.ReverseComplement(b)
		if want, got := dna.BasesToString(b), ReverseComplement(s); got != want {
			t.Errorf("ReverseComplement(%q) = %q, gonomics says %q", s, got, want)
		}
	}
}

func TestInvalidSymbolsBecomeN(t *testing.T) {
	in := "AXC-G.T*"
	got := ReverseComplement(in)
	if len(got) != len(in) {
		t.Fatalf("length changed: %d -> %d", len(in), len(got))
	}
	for i := 0; i < len(in); i++ {
		c := in[len(in)-1-i]
		switch c {
		case 'A', 'C', 'G', 'T':
			continue
		}
		if got[i] != 'N' {
			t.Errorf("position %d: %q should map to N, got %q", i, c, got[i])
		}
	}
}

func TestComplement(t *testing.T) {
	pairs := map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N', 'a': 'N', 'U': 'N'}
	for in, want := range pairs {
		if got := Complement(in); got != want {
			t.Errorf("Complement(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsPalindrome(t *testing.T) {
	yes := []string{"", "AT", "GAATTC", "ACGT", "CG"}
	no := []string{"A", "AA", "GATTACA", "ACGA"}
	for _, s := range yes {
		if !IsPalindrome(s) {
			t.Errorf("%q should be a reverse complement palindrome", s)
		}
	}
	for _, s := range no {
		if IsPalindrome(s) {
			t.Errorf("%q should not be a reverse complement palindrome", s)
		}
	}
}

func randomSeq(r *rand.Rand, n int) string {
	const bases = "ACGT"
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[r.Intn(4)]
	}
	return string(b)
}
