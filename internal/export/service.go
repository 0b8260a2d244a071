package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/common"
	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/pipeline"
)

// Service produces XLSX bytes for batches of extraction results.
type Service struct {
	sheet  string
	logger *slog.Logger
}

func NewService(sheetName string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if sheetName == "" {
		sheetName = "Documents"
	}
	return &Service{sheet: sheetName, logger: logger}
}

// DocumentsXLSX returns an XLSX workbook (as bytes) with one row per
// processed document.
func (s *Service) DocumentsXLSX(results []pipeline.Result) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(s.sheet); index == -1 {
		if _, err := f.NewSheet(s.sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(s.sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document ID",
		"Reference No",
		"Type",
		"Date",
		"Sender",
		"Subject",
		"Amount",
		"Email",
		"Phone",
		"Address",
		"Confidence",
		"Needs Review",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(s.sheet, cell, h)
	}

	row := 2
	for _, r := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(s.sheet, cell, v)
		}

		amount := ""
		if r.Fields.Amount != nil {
			amount = r.Fields.Amount.String()
		}

		write(1, r.DocumentID.String())
		write(2, r.Fields.Reference())
		write(3, string(r.Fields.Type))
		write(4, r.Display.DocDate)
		write(5, r.Fields.Sender)
		write(6, truncate(r.Fields.Subject, 140))
		write(7, amount)
		write(8, r.Fields.Email)
		write(9, r.Fields.Phone)
		write(10, r.Fields.Address)
		write(11, fmt.Sprintf("%.2f", r.Confidence))
		write(12, r.NeedsReview)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(s.sheet, "A", "A", 38) // document id
	_ = f.SetColWidth(s.sheet, "B", "B", 22) // reference
	_ = f.SetColWidth(s.sheet, "C", "C", 16) // type
	_ = f.SetColWidth(s.sheet, "D", "D", 18) // date
	_ = f.SetColWidth(s.sheet, "E", "F", 32) // sender, subject
	_ = f.SetColWidth(s.sheet, "G", "G", 14) // amount
	_ = f.SetColWidth(s.sheet, "H", "J", 28) // contact columns

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, common.WrapError(err, "xlsx write")
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(results),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
