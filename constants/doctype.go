package constants

import (
	"strings"
)

// DocType is the coarse classification assigned to a scanned document.
type DocType string

// Stable values (these exact strings are what downstream consumers see).
const (
	DocTypeInvoice        DocType = "INVOICE"
	DocTypeOfficialLetter DocType = "OFFICIAL_LETTER"
	DocTypeOther          DocType = "OTHER"
)

var allDocTypes = []DocType{
	DocTypeInvoice,
	DocTypeOfficialLetter,
	DocTypeOther,
}

func AsStringSlice() []string {
	result := make([]string, len(allDocTypes))
	for i, dt := range allDocTypes {
		result[i] = string(dt)
	}
	return result
}

// Canonicalize maps free-form labels (including the legacy Indonesian
// values) onto a DocType.
func Canonicalize(input string) (DocType, bool) {
	if input == "" {
		return DocTypeOther, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]DocType{
		"invoice":     DocTypeInvoice,
		"faktur":      DocTypeInvoice,
		"tagihan":     DocTypeInvoice,
		"surat":       DocTypeOfficialLetter,
		"surat resmi": DocTypeOfficialLetter,
		"surat_resmi": DocTypeOfficialLetter,
		"letter":      DocTypeOfficialLetter,
		"lainnya":     DocTypeOther,
	}

	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocTypes {
		if normalized == strings.ToLower(string(dt)) {
			return dt, true
		}
	}

	return DocTypeOther, false
}
