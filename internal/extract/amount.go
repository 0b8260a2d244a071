package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// optional currency marker followed by grouped digits, optionally with a
// two-digit cents suffix
var reAmountCandidate = regexp.MustCompile(`(?i)(?:rp\.?\s*)?(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?)`)

// extractAmount scans the joined text for currency-shaped numerals and
// selects the numerically largest candidate. OCR noise produces many
// small fragments (page numbers, item counts) while the true total is
// typically the largest figure present; a large non-monetary number can
// still win, which is a known limitation of this heuristic.
func extractAmount(doc document) *decimal.Decimal {
	matches := reAmountCandidate.FindAllStringSubmatch(doc.joined, -1)
	var best *decimal.Decimal
	for _, m := range matches {
		d, err := decimal.NewFromString(normalizeAmount(m[1]))
		if err != nil {
			continue
		}
		if best == nil || d.GreaterThan(*best) {
			v := d
			best = &v
		}
	}
	return best
}

// normalizeAmount strips thousands separators and converts the
// Indonesian decimal comma to a decimal point.
func normalizeAmount(raw string) string {
	s := strings.ReplaceAll(raw, ".", "")
	return strings.ReplaceAll(s, ",", ".")
}
