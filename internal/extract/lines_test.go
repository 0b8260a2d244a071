package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/extract"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/ocr"
)

func TestSanitizeLines(t *testing.T) {
	t.Parallel()

	t.Run("strips a leading separator artifact", func(t *testing.T) {
		t.Parallel()

		lines := extract.SanitizeLines([]ocr.Line{
			{Text: ": Invoice No", Confidence: 0.9},
			{Text: "  ： Tanggal", Confidence: 0.9},
			{Text: "  PT Maju Jaya  ", Confidence: 0.9},
		})

		assert.Equal(t, extract.Lines{"Invoice No", "Tanggal", "PT Maju Jaya"}, lines)
	})

	t.Run("drops lines that become empty and preserves order", func(t *testing.T) {
		t.Parallel()

		lines := extract.SanitizeLines([]ocr.Line{
			{Text: "first"},
			{Text: "   "},
			{Text: " : "},
			{Text: ""},
			{Text: "second"},
		})

		assert.Equal(t, extract.Lines{"first", "second"}, lines)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract.SanitizeLines(nil))
	})
}

func TestLines(t *testing.T) {
	t.Parallel()

	t.Run("Joined concatenates with single spaces", func(t *testing.T) {
		t.Parallel()

		l := extract.Lines{"a  b", "c"}

		assert.Equal(t, "a b c", l.Joined())
	})

	t.Run("Header is capped at the line count", func(t *testing.T) {
		t.Parallel()

		l := extract.Lines{"a", "b"}

		assert.Equal(t, extract.Lines{"a", "b"}, l.Header(8))
		assert.Equal(t, extract.Lines{"a"}, l.Header(1))
	})
}
