package ndc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	code, err := Normalize("0009-0010-01")
	assert.NoError(t, err)
	assert.Equal(t, "0009001001", code)

	code, err = Normalize("54868 0123 45")
	assert.NoError(t, err)
	assert.Equal(t, "54868012345", code)

	code, err = Normalize("9999999999")
	assert.NoError(t, err)
	assert.Equal(t, "9999999999", code)
}

func TestNormalizeIdempotent(t *testing.T) {
	once, err := Normalize("0009-0010-01")
	assert.NoError(t, err)

	twice, err := Normalize(once)
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizeInvalidCharacter(t *testing.T) {
	_, err := Normalize("12A4-5678-90")
	assert.ErrorIs(t, err, ErrInvalidCharacter)

	_, err = Normalize("1234+567890")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestNormalizeInvalidLength(t *testing.T) {
	_, err := Normalize("123-456-789")
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Normalize("")
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Normalize("123456789012")
	assert.ErrorIs(t, err, ErrInvalidLength)
}
