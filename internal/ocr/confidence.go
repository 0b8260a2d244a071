package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish   = regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}[./-]\d{2,4}\b|\b20\d{2}\b`)
	reCurrency  = regexp.MustCompile(`\b(rp|idr|usd|eur)\b|[$€]`)
	reAmountish = regexp.MustCompile(`\b\d{1,3}([.,]\d{3})+\b|\b\d+[.,]\d{2}\b`)
)

func hasDatePattern(s string) bool     { return reDateish.MatchString(s) }
func hasCurrencyPattern(s string) bool { return reCurrency.MatchString(s) }
func hasAmountPattern(s string) bool   { return reAmountish.MatchString(s) }

// AggregateConfidence scores a decoded line set in [0,1]. When the engine
// reported per-line confidences the mean is used; otherwise a naive
// content heuristic stands in.
func AggregateConfidence(lines []Line) float32 {
	if len(lines) == 0 {
		return 0
	}

	var sum float64
	var scored int
	var b strings.Builder
	for _, ln := range lines {
		if ln.Confidence > 0 {
			sum += ln.Confidence
			scored++
		}
		b.WriteString(ln.Text)
		b.WriteByte(' ')
	}
	if scored > 0 {
		return float32(sum / float64(scored))
	}
	return heuristicConfidence(b.String())
}

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// boost if we see common document artifacts
	// (date-ish, currency-ish, amount-ish). Each adds a fixed bump.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasDatePattern(txtL) {
		score += 0.2
	}
	if hasCurrencyPattern(txtL) {
		score += 0.15
	}
	if hasAmountPattern(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
