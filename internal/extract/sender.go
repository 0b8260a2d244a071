package extract

import (
	"regexp"
	"strings"
)

var (
	// legal-entity abbreviations followed by a name-shaped run
	reCompanyPrefix = regexp.MustCompile(`(?i)(?:pt|cv|ud|yayasan)\.?\s+[a-z0-9 .,&-]+`)
	reFromLabel     = regexp.MustCompile(`(?i)(?:from|dari)[:\s]+([A-Za-z0-9 .,&-]{3,50})`)
	reHotelKeyword  = regexp.MustCompile(`(?i)\bhotel\b`)
	reCompanyLine   = regexp.MustCompile(`(?i)^(?:pt|cv|ud|yayasan)\b`)

	reSubjectLabel = regexp.MustCompile(`(?i)(?:perihal|perkara|subject|hal|regarding)`)
	reSubjectStrip = regexp.MustCompile(`(?i)^(?:perihal|perkara|subject|hal|regarding)[:.\s-]*`)
)

// extractSender determines the originating party from the header window.
// A document mentioning the organization itself is always attributed to
// the canonical internal label.
func (e *Engine) extractSender(doc document) string {
	if e.reInternal.MatchString(doc.headerJoined) {
		return e.cfg.InternalSender
	}
	if m := reCompanyPrefix.FindString(doc.headerJoined); m != "" {
		return m
	}
	if m := reFromLabel.FindStringSubmatch(doc.headerJoined); m != nil {
		return m[1]
	}
	for _, line := range doc.header {
		if reHotelKeyword.MatchString(line) {
			return line
		}
	}
	for _, line := range doc.lines {
		if reCompanyLine.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractSubject returns the first line carrying a subject label, with
// the label prefix stripped.
func extractSubject(doc document) string {
	for _, line := range doc.lines {
		if reSubjectLabel.MatchString(line) {
			return strings.TrimSpace(reSubjectStrip.ReplaceAllString(line, ""))
		}
	}
	return ""
}
