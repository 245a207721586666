package kmer

import (
	"errors"
	"github.com/dasnellings/kmerTools/alphabet"
	"github.com/dasnellings/kmerTools/revcomp"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"A", "A"},
		{"T", "A"},
		{"G", "C"},
		{"ACGT", "ACGT"},
		{"TACG", "CGTA"},
		{"CGTA", "CGTA"},
		{"TTTT", "AAAA"},
		{"GATTACA", "GATTACA"},
		{"TGTAATC", "GATTACA"},
	}
	for _, test := range tests {
		if got := Canonical(test.in); got != test.want {
			t.Errorf("Canonical(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestCanonicalIsMinAndIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for i := 0; i < 500; i++ {
		s := randomSeq(r, 1+r.Intn(12))
		c := Canonical(s)
		rc := revcomp.ReverseComplement(s)
		want := s
		if rc < s {
			want = rc
		}
		if c != want {
			t.Fatalf("Canonical(%q) = %q, want %q", s, c, want)
		}
		if Canonical(c) != c {
			t.Fatalf("Canonical(%q) = %q is not a fixed point", c, Canonical(c))
		}
	}
}

func TestMostFrequent(t *testing.T) {
	tests := []struct {
		genome string
		k      int
		want   []string
	}{
		{"ACGTACGT", 4, []string{"ACGT", "CGTA"}},
		{"AAAA", 2, []string{"AA"}},
		{"TTT", 3, []string{"AAA"}},
		{"GATTACA", 1, []string{"A"}},
		{"CCAA", 2, []string{"CC", "CA", "AA"}}, // all tied, first-occurrence order
		{"ACGT", 5, nil},
		{"ACGT", 0, nil},
		{"", 1, nil},
	}
	for _, test := range tests {
		if got := MostFrequent(test.genome, test.k); !reflect.DeepEqual(got, test.want) {
			t.Errorf("MostFrequent(%q, %d) = %v, want %v", test.genome, test.k, got, test.want)
		}
	}
}

// bruteForce tallies with no shared code beyond ReverseComplement.
func bruteForce(genome string, k int) (map[string]int, int) {
	m := make(map[string]int)
	for i := 0; i <= len(genome)-k; i++ {
		w := genome[i : i+k]
		rc := revcomp.ReverseComplement(w)
		if rc < w {
			w = rc
		}
		m[w]++
	}
	var maxCount int
	for _, v := range m {
		if v > maxCount {
			maxCount = v
		}
	}
	return m, maxCount
}

func TestMostFrequentAgainstBruteForce(t *testing.T) {
	check := func(genome string, k int) {
		got := MostFrequent(genome, k)
		if len(got) == 0 {
			t.Fatalf("MostFrequent(%q, %d) returned nothing", genome, k)
		}
		m, maxCount := bruteForce(genome, k)
		var want []string
		for key, v := range m {
			if v == maxCount {
				want = append(want, key)
			}
		}
		for _, kmer := range got {
			if len(kmer) != k {
				t.Errorf("%q has length %d, want %d", kmer, len(kmer), k)
			}
			if Canonical(kmer) != kmer {
				t.Errorf("%q is not canonical", kmer)
			}
			if m[kmer] != maxCount {
				t.Errorf("%q has count %d, max is %d", kmer, m[kmer], maxCount)
			}
		}
		sorted := append([]string(nil), got...)
		sort.Strings(sorted)
		sort.Strings(want)
		if !reflect.DeepEqual(sorted, want) {
			t.Errorf("MostFrequent(%q, %d) = %v, brute force says %v", genome, k, got, want)
		}
	}

	check("ACGTACGT", 4)
	r := rand.New(rand.NewSource(23))
	for i := 0; i < 300; i++ {
		genome := randomSeq(r, 1+r.Intn(150))
		check(genome, 1+r.Intn(len(genome)))
	}
}

func TestFindMostFrequent(t *testing.T) {
	if got, err := FindMostFrequent("ACGTACGT", 4); err != nil || !reflect.DeepEqual(got, []string{"ACGT", "CGTA"}) {
		t.Errorf("FindMostFrequent = %v, %v", got, err)
	}
	if _, err := FindMostFrequent("ACGT", 5); !errors.Is(err, ErrKOutOfRange) {
		t.Errorf("k > len: expected ErrKOutOfRange, got %v", err)
	}
	if _, err := FindMostFrequent("ACGT", 0); !errors.Is(err, ErrKOutOfRange) {
		t.Errorf("k = 0: expected ErrKOutOfRange, got %v", err)
	}
	if _, err := FindMostFrequent("ACGN", 2); !errors.Is(err, alphabet.ErrInvalidAlphabet) {
		t.Errorf("expected ErrInvalidAlphabet, got %v", err)
	}
	if _, err := FindMostFrequent("", 1); !errors.Is(err, alphabet.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestAllCanonical(t *testing.T) {
	if got := AllCanonical(1); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Errorf("AllCanonical(1) = %v", got)
	}
	want2 := []string{"AA", "AC", "AG", "AT", "CA", "CC", "CG", "GA", "GC", "TA"}
	if got := AllCanonical(2); !reflect.DeepEqual(got, want2) {
		t.Errorf("AllCanonical(2) = %v, want %v", got, want2)
	}
	sizes := map[int]int{3: 32, 4: 136, 5: 512, 6: 2080}
	for k, n := range sizes {
		got := AllCanonical(k)
		if len(got) != n {
			t.Errorf("len(AllCanonical(%d)) = %d, want %d", k, len(got), n)
		}
		if !sort.StringsAreSorted(got) {
			t.Errorf("AllCanonical(%d) is not sorted", k)
		}
	}
	if AllCanonical(0) != nil {
		t.Error("AllCanonical(0) should be nil")
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
