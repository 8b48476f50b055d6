package ndc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify11Digit(t *testing.T) {
	cases := []struct {
		code       string
		variant    Variant
		confidence Confidence
	}{
		{"00091234567", FourFourTwo, Certain},  // zero at position 1
		{"54868012345", FiveThreeTwo, Certain}, // zero at position 6
		{"67544123408", FiveFourOne, Certain},  // zero at position 10
		{"12345678911", Unknown, Ambiguous},    // no qualifying zero
	}
	for _, c := range cases {
		variant, confidence := Classify(c.code)
		assert.Equal(t, c.variant, variant, c.code)
		assert.Equal(t, c.confidence, confidence, c.code)
	}
}

// Position 1 outranks the later positions when several qualify.
func TestClassify11DigitPriority(t *testing.T) {
	variant, confidence := Classify("00000012340")
	assert.Equal(t, FourFourTwo, variant)
	assert.Equal(t, Certain, confidence)

	variant, confidence = Classify("12345012340")
	assert.Equal(t, FiveThreeTwo, variant)
	assert.Equal(t, Certain, confidence)
}

func TestClassify10Digit(t *testing.T) {
	cases := []struct {
		code       string
		variant    Variant
		confidence Confidence
	}{
		{"0091234567", FourFourTwo, Heuristic}, // low leading digit
		{"3333444422", FourFourTwo, Heuristic},
		{"5486812345", FiveThreeTwo, Heuristic}, // high leading digit, no pad marker
		{"9999999999", FiveThreeTwo, Heuristic},
		{"6754401234", FiveFourOne, Heuristic}, // zero-padded product segment
		{"1234506789", Unknown, Ambiguous},     // 4-4-2 and 5-4-1 tie
	}
	for _, c := range cases {
		variant, confidence := Classify(c.code)
		assert.Equal(t, c.variant, variant, c.code)
		assert.Equal(t, c.confidence, confidence, c.code)
	}
}

// Classify is total: anything it cannot place comes back Unknown.
func TestClassifyTotality(t *testing.T) {
	for _, code := range []string{"", "123", "123456789012", "short"} {
		variant, confidence := Classify(code)
		assert.Equal(t, Unknown, variant, code)
		assert.Equal(t, Ambiguous, confidence, code)
	}
}

// A 10-digit code carries no self-describing padding marker, so the
// forward path can never be Certain.
func TestClassify10DigitNeverCertain(t *testing.T) {
	codes := []string{"0091234567", "5486812345", "6754401234", "1234506789"}
	for _, code := range codes {
		_, confidence := Classify(code)
		assert.NotEqual(t, Certain, confidence, code)
	}
}
