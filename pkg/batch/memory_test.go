package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmdata/ndc-api/pkg/ndc"
)

func TestConvertAll(t *testing.T) {
	codes := []string{
		"0009-1234-56", // heuristic 4-4-2
		"5486812345",   // heuristic 5-3-2
		"12A4567890",   // invalid character
	}

	items, report := ConvertAll(context.Background(), codes, ndc.To11Digit, 2)
	require.Len(t, items, 3)

	assert.Equal(t, "00009123456", items[0].Output)
	assert.Equal(t, ndc.FourFourTwo, items[0].Variant)
	assert.Equal(t, ndc.Heuristic, items[0].Confidence)

	assert.Equal(t, "54868012345", items[1].Output)
	assert.Equal(t, ndc.FiveThreeTwo, items[1].Variant)

	assert.Empty(t, items[2].Output)
	assert.Contains(t, items[2].Error, "invalid character")

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Heuristic)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, report.Warnings, 1)
}

func TestConvertAllDown(t *testing.T) {
	items, report := ConvertAll(context.Background(), []string{"00091234567"}, ndc.To10Digit, 0)
	require.Len(t, items, 1)
	assert.Equal(t, "0091234567", items[0].Output)
	assert.Equal(t, ndc.Certain, items[0].Confidence)
	assert.Equal(t, 1, report.Certain)
}
