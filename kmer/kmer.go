// Package kmer tallies canonical k-mers across a sequence and reports the most
// frequent ones. A canonical k-mer is the lexicographically smaller of a k-mer
// and its reverse complement, so a k-mer and its reverse complement share one count.
package kmer

import (
	"errors"
	"fmt"
	"github.com/dasnellings/kmerTools/alphabet"
	"github.com/dasnellings/kmerTools/revcomp"
)

// ErrKOutOfRange is returned when k is not in [1, len(genome)].
var ErrKOutOfRange = errors.New("k out of range")

// Canonical returns the lexicographically smaller of kmer and its reverse
// complement (byte order, so A < C < G < T). A reverse-complement palindrome is
// returned unchanged.
func Canonical(kmer string) string {
	if isCanonical(kmer) {
		return kmer
	}
	return revcomp.ReverseComplement(kmer)
}

// isCanonical reports whether s <= ReverseComplement(s) without building the
// reverse complement.
func isCanonical(s string) bool {
	n := len(s)
	var c byte
	for i := 0; i < n; i++ {
		c = revcomp.Complement(s[n-1-i])
		switch {
		case s[i] < c:
			return true
		case s[i] > c:
			return false
		}
	}
	return true
}

// MostFrequent returns every canonical k-mer of genome whose count equals the
// maximum count. Results are in order of first occurrence scanning genome left
// to right. Returns nil if k < 1 or k > len(genome).
func MostFrequent(genome string, k int) []string {
	if k < 1 || k > len(genome) {
		return nil
	}
	return Tally(genome, k).MostFrequent()
}

// FindMostFrequent is MostFrequent for unvalidated input. It returns an error
// wrapping alphabet.ErrEmpty, alphabet.ErrInvalidAlphabet, or ErrKOutOfRange
// instead of silently returning nothing.
func FindMostFrequent(genome string, k int) ([]string, error) {
	if err := alphabet.CheckNonEmpty(genome); err != nil {
		return nil, fmt.Errorf("genome: %w", err)
	}
	if k < 1 || k > len(genome) {
		return nil, fmt.Errorf("%w: k=%d, must be between 1 and %d", ErrKOutOfRange, k, len(genome))
	}
	return MostFrequent(genome, k), nil
}
