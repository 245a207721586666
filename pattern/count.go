// Package pattern counts the occurrences of a pattern, on either strand, within
// a larger sequence.
package pattern

import (
	"errors"
	"fmt"
	"github.com/dasnellings/kmerTools/alphabet"
	"github.com/dasnellings/kmerTools/revcomp"
)

// ErrPatternTooLong is returned by CountChecked when the pattern is longer than the genome.
var ErrPatternTooLong = errors.New("pattern is longer than genome")

// Match is a window of the genome equal to the pattern (Strand '+') or to its
// reverse complement (Strand '-'). Windows of a reverse-complement palindrome
// match both and are reported once on '+'.
type Match struct {
	Pos    int // 0-based start of the window
	Strand byte
}

// String method for Match enables easy writing with the fmt package.
func (m Match) String() string {
	return fmt.Sprintf("%d\t%c", m.Pos, m.Strand)
}

// Count returns the number of overlapping windows of genome that equal pattern or
// its reverse complement. A window matching both is counted once. Returns 0 if
// pattern is empty or longer than genome.
func Count(genome, pattern string) int {
	if len(pattern) == 0 || len(pattern) > len(genome) {
		return 0
	}
	fwd := kmpPositions(genome, pattern, buildKmpFailure(pattern))
	if revcomp.IsPalindrome(pattern) {
		return len(fwd)
	}
	rc := revcomp.ReverseComplement(pattern)
	rev := kmpPositions(genome, rc, buildKmpFailure(rc))
	return len(fwd) + len(rev)
}

// Find returns every window counted by Count in ascending position order.
func Find(genome, pattern string) []Match {
	if len(pattern) == 0 || len(pattern) > len(genome) {
		return nil
	}
	fwd := kmpPositions(genome, pattern, buildKmpFailure(pattern))
	if revcomp.IsPalindrome(pattern) {
		return toMatches(fwd, '+')
	}
	rc := revcomp.ReverseComplement(pattern)
	rev := kmpPositions(genome, rc, buildKmpFailure(rc))

	// a non-palindromic pattern and its reverse complement are different strings
	// of equal length, so the two position lists are disjoint.
	ans := make([]Match, 0, len(fwd)+len(rev))
	var i, j int
	for i < len(fwd) && j < len(rev) {
		if fwd[i] < rev[j] {
			ans = append(ans, Match{Pos: fwd[i], Strand: '+'})
			i++
		} else {
			ans = append(ans, Match{Pos: rev[j], Strand: '-'})
			j++
		}
	}
	for ; i < len(fwd); i++ {
		ans = append(ans, Match{Pos: fwd[i], Strand: '+'})
	}
	for ; j < len(rev); j++ {
		ans = append(ans, Match{Pos: rev[j], Strand: '-'})
	}
	return ans
}

// CountChecked validates its inputs before calling Count.
func CountChecked(genome, pattern string) (int, error) {
	if err := alphabet.CheckNonEmpty(pattern); err != nil {
		return 0, fmt.Errorf("pattern: %w", err)
	}
	if err := alphabet.CheckNonEmpty(genome); err != nil {
		return 0, fmt.Errorf("genome: %w", err)
	}
	if len(pattern) > len(genome) {
		return 0, fmt.Errorf("%w (%d > %d)", ErrPatternTooLong, len(pattern), len(genome))
	}
	return Count(genome, pattern), nil
}

func toMatches(pos []int, strand byte) []Match {
	if len(pos) == 0 {
		return nil
	}
	ans := make([]Match, len(pos))
	for i := range pos {
		ans[i] = Match{Pos: pos[i], Strand: strand}
	}
	return ans
}
