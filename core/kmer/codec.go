// core/kmer/codec.go
package kmer

import (
	"strings"

	"github.com/pkg/errors"
)

// Key is a 2-bit packed k-mer: A=00 C=01 G=10 T=11, first base in the most
// significant used bits. Zero is a real key (all A); validity is reported
// separately, never through the key value.
type Key uint32

const (
	MinK = 1
	MaxK = 16 // 2 bits per base in 32 bits
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidAlphabet  = errors.New("invalid alphabet")
)

// ValidateK rejects k outside [MinK, MaxK].
func ValidateK(k int) error {
	if k < MinK || k > MaxK {
		return errors.Wrapf(ErrInvalidParameter, "k must be between %d and %d, got %d", MinK, MaxK, k)
	}
	return nil
}

// code maps a base to its 2-bit value, case-insensitively; -1 for anything else.
func code(b byte) int {
	switch b {
	case 'A', 'a':
		return 0
	case 'C', 'c':
		return 1
	case 'G', 'g':
		return 2
	case 'T', 't':
		return 3
	default:
		return -1
	}
}

// IsBase reports whether b is one of A, C, G, T (any case).
func IsBase(b byte) bool { return code(b) >= 0 }

// Encode packs s, whose length must be a valid k.
func Encode(s string) (Key, error) {
	if err := ValidateK(len(s)); err != nil {
		return 0, err
	}
	var key Key
	for i := 0; i < len(s); i++ {
		c := code(s[i])
		if c < 0 {
			return 0, errors.Wrapf(ErrInvalidAlphabet, "%q at offset %d", s[i], i)
		}
		key = key<<2 | Key(c)
	}
	return key, nil
}

// EncodeAt packs s[pos:pos+k]. ok is false when the window runs off either
// end of s or holds a byte outside the alphabet. k is assumed valid.
func EncodeAt(s string, pos, k int) (key Key, ok bool) {
	if pos < 0 || pos+k > len(s) {
		return 0, false
	}
	for i := pos; i < pos+k; i++ {
		c := code(s[i])
		if c < 0 {
			return 0, false
		}
		key = key<<2 | Key(c)
	}
	return key, true
}

const bases = "ACGT"

// Decode unpacks key into its k uppercase bases.
func Decode(key Key, k int) string {
	var sb strings.Builder
	sb.Grow(k)
	for i := k - 1; i >= 0; i-- {
		sb.WriteByte(bases[(key>>(2*uint(i)))&3])
	}
	return sb.String()
}
