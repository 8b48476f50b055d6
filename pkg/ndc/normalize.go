package ndc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCharacter reports a non-digit, non-separator character.
	ErrInvalidCharacter = errors.New("ndc: invalid character")
	// ErrInvalidLength reports a digit count other than 10 or 11.
	ErrInvalidLength = errors.New("ndc: invalid length")
	// ErrUnconvertible reports a code whose segmentation could not be
	// determined and was not forced by the caller.
	ErrUnconvertible = errors.New("ndc: cannot determine segmentation")
)

// isSeparator reports whether r is a formatting character that may be
// stripped before classification.
func isSeparator(r rune) bool {
	switch r {
	case '-', ' ', '\t', '.', '_':
		return true
	}
	return false
}

// Normalize strips separator characters from raw and validates that a
// 10- or 11-digit string remains. It is pure and idempotent.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteByte(byte(r))
		case isSeparator(r):
			// dropped
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
		}
	}
	code := b.String()
	if len(code) != 10 && len(code) != 11 {
		return "", fmt.Errorf("%w: got %d digits, want 10 or 11", ErrInvalidLength, len(code))
	}
	return code, nil
}
