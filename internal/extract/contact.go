package extract

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`(?i)([A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,})`)

	// telp/HP/fax numbers with common Indonesian formatting
	rePhoneLabeled = regexp.MustCompile(`(?i)(?:telp|tel|tlp|hp|mobile|phone|telepon|fax|facsimile)[:.\s-]*([+0(]?\d[\d\s()./-]{5,})`)
	rePhoneGeneric = regexp.MustCompile(`([+0]?\d{2,4}[\s().-]?\d{3,4}[\s().-]?\d{3,5}(?:[\s().-]?\d{2,5})?)`)

	rePhoneSegment  = regexp.MustCompile(`[/|;]`)
	rePhoneNonDigit = regexp.MustCompile(`[^+\d]`)
	rePhoneSpaceRun = regexp.MustCompile(`\s+`)
	reDigitsOnly    = regexp.MustCompile(`\D`)

	reAddressKeyword = regexp.MustCompile(`(?i)(jl\.|jalan|street|road|ave|serpong|city|rt|rw)`)
	reStreetNumber   = regexp.MustCompile(`\d{3,} [A-Za-z]`)
)

// extractEmail returns the first email-shaped token in the joined text.
func extractEmail(doc document) string {
	if m := reEmail.FindStringSubmatch(doc.joined); m != nil {
		return m[1]
	}
	return ""
}

// extractPhone prefers a labeled match, searched per line first and then
// against the joined text, before falling back to a generic digit-group
// pattern. The raw match is normalized; too-short results are noise and
// leave the field absent.
func extractPhone(doc document) string {
	raw, ok := matchLinesThenJoined([]*regexp.Regexp{rePhoneLabeled}, doc, nil)
	if !ok {
		if m := rePhoneGeneric.FindStringSubmatch(doc.joined); m != nil {
			raw = m[1]
			ok = true
		}
	}
	if !ok {
		return ""
	}
	normalized, ok := normalizePhone(raw)
	if !ok {
		return ""
	}
	return normalized
}

// normalizePhone keeps only the first /-, |- or ;-delimited segment,
// collapses everything but digits and a leading + to single spaces, and
// rejects results with fewer than 7 digits.
func normalizePhone(raw string) (string, bool) {
	segment := rePhoneSegment.Split(raw, 2)[0]
	if segment == "" {
		segment = raw
	}
	normalized := strings.TrimSpace(
		rePhoneSpaceRun.ReplaceAllString(rePhoneNonDigit.ReplaceAllString(segment, " "), " "),
	)
	if len(reDigitsOnly.ReplaceAllString(normalized, "")) < 7 {
		return "", false
	}
	return normalized, true
}

// extractAddress returns the first line matching the address-indicator
// vocabulary or the street-number shape.
func extractAddress(doc document) string {
	for _, line := range doc.lines {
		if reAddressKeyword.MatchString(line) || reStreetNumber.MatchString(line) {
			return line
		}
	}
	return ""
}
