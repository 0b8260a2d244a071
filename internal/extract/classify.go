package extract

import (
	"strings"

	"github.com/muhtegaralfikri/bosowa-smart-ocr/constants"
)

// classify assigns the coarse document type. An invoice-number candidate
// always wins, even when the text also reads like a letter.
func classify(invoiceFound bool, joined string) constants.DocType {
	switch {
	case invoiceFound:
		return constants.DocTypeInvoice
	case strings.Contains(strings.ToLower(joined), "surat"):
		return constants.DocTypeOfficialLetter
	default:
		return constants.DocTypeOther
	}
}
