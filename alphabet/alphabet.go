// Package alphabet checks and normalizes nucleotide strings against the
// unambiguous DNA alphabet {A, C, G, T}.
package alphabet

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidAlphabet is returned when a sequence holds a symbol other than A, C, G, or T.
	ErrInvalidAlphabet = errors.New("invalid nucleotide")
	// ErrEmpty is returned when a sequence is required but none was given.
	ErrEmpty = errors.New("empty sequence")
)

// IsValid reports whether every byte of s is one of A, C, G, T.
// The empty string is valid. Lowercase bases are not accepted.
func IsValid(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// Check is IsValid with a reason. The returned error wraps ErrInvalidAlphabet and
// names the first offending symbol and its 1-based position.
func Check(s string) error {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return fmt.Errorf("%w %q at position %d; allowed: A C G T", ErrInvalidAlphabet, s[i], i+1)
		}
	}
	return nil
}

// CheckNonEmpty is Check that also rejects the empty string.
func CheckNonEmpty(s string) error {
	if s == "" {
		return ErrEmpty
	}
	return Check(s)
}

// Normalize removes all whitespace from raw and uppercases what is left.
func Normalize(raw string) string {
	ans := new(strings.Builder)
	ans.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		ans.WriteRune(unicode.ToUpper(r))
	}
	return ans.String()
}
