package extract

import (
	"regexp"
	"strings"
)

var (
	reInvoiceLabeled = regexp.MustCompile(`(?i)invoice\s*(?:no|number|#)?\s*[:-]?\s*([A-Z0-9/-]{5,})`)
	reInvoicePrefix  = regexp.MustCompile(`(?i)^inv[-\s]`)
	reInvoiceToken   = regexp.MustCompile(`(?i)(inv[-\s]?[A-Z0-9/-]+)`)

	// labeled letter/reference patterns, tried in order
	letterPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:nomor|no\.?|no\s*surat|no\s*dok(?:umen)?|no\s*ref(?:erensi)?|reference|reff|ref|no\.?\s*sj|sj)[:\s.=~-]*([A-Z0-9./-]{2,})`),
		regexp.MustCompile(`(?i)(?:surat|letter)\s*(?:no|number|#)?\s*[:.=-]?\s*([A-Z0-9./-]{2,})`),
		regexp.MustCompile(`(?i)^(?:nomor|no\.?)[:.\s-]*([A-Z0-9./-]{2,})`),
	}

	// generic alphanumeric code shape: slash or dash separated, tried
	// against every line when no labeled pattern fires
	reRefShape = regexp.MustCompile(`(?i)([A-Z0-9]{2,}[/-][A-Z0-9./-]{2,})`)

	reHeaderNoLine  = regexp.MustCompile(`(?i)^no\b`)
	rePageNumbering = regexp.MustCompile(`(?i)pages?`)
	reHeaderNoStrip = regexp.MustCompile(`(?i)^no\b[:\s.-]*`)
	reNomorLoose    = regexp.MustCompile(`(?i)(?:nomor|no\.?)\s*[:.-]?\s*([A-Z0-9./-]{3,})`)

	reInvToken    = regexp.MustCompile(`(?i)^inv`)
	reAnyDigit    = regexp.MustCompile(`[0-9]`)
	reSlashOrDash = regexp.MustCompile(`[/-]`)
)

type referenceResult struct {
	invoiceNo string
	letterNo  string
}

// extractReference finds the invoice number and the letter/reference
// number. An invoice-looking token never populates the letter slot.
func extractReference(doc document) referenceResult {
	return referenceResult{
		invoiceNo: extractInvoiceNo(doc),
		letterNo:  extractLetterNo(doc),
	}
}

func extractInvoiceNo(doc document) string {
	if m := reInvoiceLabeled.FindStringSubmatch(doc.joined); m != nil {
		return m[1]
	}
	// fall back to the first line that starts with an INV prefix
	for _, line := range doc.lines {
		if reInvoicePrefix.MatchString(line) {
			if m := reInvoiceToken.FindStringSubmatch(line); m != nil {
				return m[1]
			}
			break
		}
	}
	return ""
}

func extractLetterNo(doc document) string {
	isInvoiceToken := func(s string) bool { return reInvToken.MatchString(s) }

	if v, ok := matchLinesThenJoined(letterPatterns, doc, isInvoiceToken); ok {
		return v
	}

	// generic code shape anywhere in the document
	for _, line := range doc.lines {
		m := reRefShape.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		c := m[1]
		if len(c) >= 5 && reAnyDigit.MatchString(c) && !isInvoiceToken(c) {
			return c
		}
	}

	// header lines that start with "No" even if formatting is irregular
	for _, line := range doc.header {
		if reHeaderNoLine.MatchString(line) &&
			!rePageNumbering.MatchString(line) &&
			reAnyDigit.MatchString(line) &&
			reSlashOrDash.MatchString(line) {
			cleaned := strings.TrimSpace(reHeaderNoStrip.ReplaceAllString(line, ""))
			if cleaned != "" && !isInvoiceToken(cleaned) {
				return cleaned
			}
			break
		}
	}

	// loosest nomor/no pattern, last resort
	for _, line := range doc.lines {
		if m := reNomorLoose.FindStringSubmatch(line); m != nil {
			if !isInvoiceToken(m[1]) {
				return m[1]
			}
			break
		}
	}
	return ""
}
