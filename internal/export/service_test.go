package export_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/muhtegaralfikri/bosowa-smart-ocr/constants"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/export"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/extract"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/pipeline"
)

func TestDocumentsXLSX(t *testing.T) {
	t.Parallel()

	amount := decimal.NewFromInt(2500000)
	docID := uuid.New()
	results := []pipeline.Result{
		{
			DocumentID: docID,
			Fields: extract.Fields{
				InvoiceNo: "INV-2024/001",
				Sender:    "PT Maju Jaya",
				Subject:   "Penagihan Jasa",
				Amount:    &amount,
				Type:      constants.DocTypeInvoice,
			},
			Display:    extract.DisplayFields{DocDate: "12 Januari 2024"},
			Confidence: 0.88,
		},
		{
			DocumentID: uuid.New(),
			Fields: extract.Fields{
				LetterNo: "123/SK/2024",
				Type:     constants.DocTypeOfficialLetter,
			},
			Confidence:  0.40,
			NeedsReview: true,
		},
	}

	svc := export.NewService("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	b, err := svc.DocumentsXLSX(results)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue("Documents", ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Document ID", cell("A1"))
	assert.Equal(t, "Needs Review", cell("L1"))

	assert.Equal(t, docID.String(), cell("A2"))
	assert.Equal(t, "INV-2024/001", cell("B2"))
	assert.Equal(t, "INVOICE", cell("C2"))
	assert.Equal(t, "12 Januari 2024", cell("D2"))
	assert.Equal(t, "PT Maju Jaya", cell("E2"))
	assert.Equal(t, "2500000", cell("G2"))
	assert.Equal(t, "0.88", cell("K2"))

	assert.Equal(t, "123/SK/2024", cell("B3"))
	assert.Equal(t, "OFFICIAL_LETTER", cell("C3"))
	assert.Empty(t, cell("G3"))
	assert.Equal(t, "TRUE", cell("L3"))
}

func TestDocumentsXLSXEmptyBatch(t *testing.T) {
	t.Parallel()

	svc := export.NewService("Documents", slog.New(slog.NewTextHandler(io.Discard, nil)))
	b, err := svc.DocumentsXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Documents", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Document ID", v)
}
