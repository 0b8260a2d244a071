package extract_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountExtraction(t *testing.T) {
	t.Parallel()

	t.Run("selects the largest candidate", func(t *testing.T) {
		t.Parallel()

		f := newTestEngine().Extract(context.Background(), ocrLines(
			"Total Rp 1.000.000",
			"Diskon Rp 50.000",
			"2 lembar",
		))

		if assert.NotNil(t, f.Amount) {
			assert.True(t, f.Amount.Equal(decimal.NewFromInt(1000000)),
				"got %s", f.Amount.String())
		}
	})

	t.Run("normalizes Indonesian separators with cents", func(t *testing.T) {
		t.Parallel()

		f := newTestEngine().Extract(context.Background(), ocrLines("Rp 1.234,56"))

		if assert.NotNil(t, f.Amount) {
			assert.True(t, f.Amount.Equal(decimal.RequireFromString("1234.56")),
				"got %s", f.Amount.String())
		}
	})

	t.Run("currency marker is optional", func(t *testing.T) {
		t.Parallel()

		f := newTestEngine().Extract(context.Background(), ocrLines("Jumlah 750.000"))

		if assert.NotNil(t, f.Amount) {
			assert.True(t, f.Amount.Equal(decimal.NewFromInt(750000)))
		}
	})

	t.Run("no numeric candidate leaves the amount absent", func(t *testing.T) {
		t.Parallel()

		f := newTestEngine().Extract(context.Background(), ocrLines("tidak ada angka"))

		assert.Nil(t, f.Amount)
	})
}
