package ndc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertTo11(t *testing.T) {
	res, err := Convert("9999999999", FourFourTwo, To11Digit)
	assert.NoError(t, err)
	assert.Equal(t, "09999999999", res.Code)
	assert.Equal(t, FourFourTwo, res.Variant)

	res, err = Convert("5486812345", FiveThreeTwo, To11Digit)
	assert.NoError(t, err)
	assert.Equal(t, "54868012345", res.Code)

	res, err = Convert("6754412348", FiveFourOne, To11Digit)
	assert.NoError(t, err)
	assert.Equal(t, "67544123408", res.Code)
}

func TestConvertTo10(t *testing.T) {
	res, err := Convert("00091234567", FourFourTwo, To10Digit)
	assert.NoError(t, err)
	assert.Equal(t, "0091234567", res.Code)
	assert.Equal(t, FourFourTwo, res.Variant)

	res, err = Convert("54868012345", FiveThreeTwo, To10Digit)
	assert.NoError(t, err)
	assert.Equal(t, "5486812345", res.Code)

	res, err = Convert("67544123408", FiveFourOne, To10Digit)
	assert.NoError(t, err)
	assert.Equal(t, "6754412348", res.Code)
}

// For a known variant the transform pair is lossless in both orders.
func TestConvertRoundTrip(t *testing.T) {
	codes := map[Variant]string{
		FourFourTwo:  "9999999999",
		FiveThreeTwo: "5486812345",
		FiveFourOne:  "6754412348",
	}
	for variant, code := range codes {
		up, err := Convert(code, variant, To11Digit)
		assert.NoError(t, err)
		assert.Len(t, up.Code, 11)

		down, err := Convert(up.Code, variant, To10Digit)
		assert.NoError(t, err)
		assert.Equal(t, code, down.Code, variant)
	}
}

func TestConvertUnknownVariant(t *testing.T) {
	_, err := Convert("1234567891", Unknown, To11Digit)
	assert.ErrorIs(t, err, ErrUnconvertible)
}

func TestConvertLengthMismatch(t *testing.T) {
	_, err := Convert("12345678901", FourFourTwo, To11Digit)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Convert("1234567890", FourFourTwo, To10Digit)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestTo11(t *testing.T) {
	res, err := To11("5486-812-345")
	assert.NoError(t, err)
	assert.Equal(t, "54868012345", res.Code)
	assert.Equal(t, FiveThreeTwo, res.Variant)
	assert.Equal(t, Heuristic, res.Confidence)

	// Already 11 digits: passes through as the standardized layout.
	res, err = To11("54868-0123-45")
	assert.NoError(t, err)
	assert.Equal(t, "54868012345", res.Code)
	assert.Equal(t, FiveFourTwo, res.Variant)
	assert.Equal(t, Certain, res.Confidence)

	// Ambiguous 10-digit layout cannot be converted without a forced variant.
	_, err = To11("1234506789")
	assert.ErrorIs(t, err, ErrUnconvertible)
}

func TestTo10(t *testing.T) {
	res, err := To10("00091234567")
	assert.NoError(t, err)
	assert.Equal(t, "0091234567", res.Code)
	assert.Equal(t, FourFourTwo, res.Variant)
	assert.Equal(t, Certain, res.Confidence)

	// No qualifying zero: the origin cannot be traced.
	_, err = To10("12345678911")
	assert.ErrorIs(t, err, ErrUnconvertible)

	// Already 10 digits: passes through, tagged with its classification.
	res, err = To10("5486812345")
	assert.NoError(t, err)
	assert.Equal(t, "5486812345", res.Code)
	assert.Equal(t, FiveThreeTwo, res.Variant)
	assert.Equal(t, Heuristic, res.Confidence)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("10to11")
	assert.NoError(t, err)
	assert.Equal(t, To11Digit, d)

	d, err = ParseDirection("11to10")
	assert.NoError(t, err)
	assert.Equal(t, To10Digit, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestVariantSegments(t *testing.T) {
	for _, v := range []Variant{FourFourTwo, FiveThreeTwo, FiveFourOne, FiveFourTwo} {
		s := v.Segments()
		assert.Equal(t, v.Length(), s[0]+s[1]+s[2], v)
	}
	assert.Equal(t, 0, Unknown.Length())
}
