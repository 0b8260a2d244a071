package extract

import (
	"regexp"
	"strings"

	"github.com/muhtegaralfikri/bosowa-smart-ocr/internal/ocr"
)

var (
	// leading label-separator artifact left behind by the OCR engine,
	// including the full-width colon variant
	reLeadingSeparator = regexp.MustCompile(`^\s*[:：]\s*`)
	reWhitespaceRun    = regexp.MustCompile(`\s+`)
)

// Lines is the sanitized, non-empty line set for one document.
type Lines []string

// SanitizeLines strips one leading separator artifact from each OCR line,
// trims surrounding whitespace and drops lines that become empty. Order
// is preserved.
func SanitizeLines(items []ocr.Line) Lines {
	out := make(Lines, 0, len(items))
	for _, item := range items {
		s := strings.TrimSpace(reLeadingSeparator.ReplaceAllString(item.Text, ""))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Header returns the first n lines. Structured documents place their
// identifying metadata near the top, so position-sensitive heuristics
// prefer this window.
func (l Lines) Header(n int) Lines {
	if n > len(l) {
		n = len(l)
	}
	return l[:n]
}

// Joined concatenates all lines with single spaces.
func (l Lines) Joined() string {
	return reWhitespaceRun.ReplaceAllString(strings.Join(l, " "), " ")
}

// document is the pre-processed view every field extractor reads.
type document struct {
	lines        Lines
	joined       string
	header       Lines
	headerJoined string
}

func newDocument(lines Lines, headerSize int) document {
	header := lines.Header(headerSize)
	return document{
		lines:        lines,
		joined:       lines.Joined(),
		header:       header,
		headerJoined: strings.Join(header, " "),
	}
}
