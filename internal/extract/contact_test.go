package extract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactExtraction(t *testing.T) {
	t.Parallel()

	t.Run("first email-shaped token wins", func(t *testing.T) {
		t.Parallel()

		f := newTestEngine().Extract(context.Background(), ocrLines(
			"Hubungi kami lewat info@contoh.co.id",
			"atau admin@contoh.co.id",
		))

		assert.Equal(t, "info@contoh.co.id", f.Email)
	})

	t.Run("labeled phone is normalized to the pre-slash segment", func(t *testing.T) {
		t.Parallel()

		f := newTestEngine().Extract(context.Background(), ocrLines(
			"Telp: (021) 555-1234 / ext 99",
		))

		assert.Equal(t, "021 555 1234", f.Phone)
	})

	t.Run("labeled phone with fewer than 7 digits is rejected", func(t *testing.T) {
		t.Parallel()

		f := newTestEngine().Extract(context.Background(), ocrLines("Tel: 123-456"))

		assert.Empty(t, f.Phone)
	})

	t.Run("generic digit-group fallback when no label is present", func(t *testing.T) {
		t.Parallel()

		f := newTestEngine().Extract(context.Background(), ocrLines(
			"Kantor 0812 3456 7890",
		))

		assert.Equal(t, "0812 3456 7890", f.Phone)
	})

	t.Run("address from the indicator vocabulary", func(t *testing.T) {
		t.Parallel()

		f := newTestEngine().Extract(context.Background(), ocrLines(
			"CV Berkah",
			"Jl. Sudirman Kav. 52, Jakarta",
		))

		assert.Equal(t, "Jl. Sudirman Kav. 52, Jakarta", f.Address)
	})

	t.Run("street-number shape fallback", func(t *testing.T) {
		t.Parallel()

		f := newTestEngine().Extract(context.Background(), ocrLines(
			"Gedung Utama",
			"456 Lantai dua",
		))

		assert.Equal(t, "456 Lantai dua", f.Address)
	})
}
