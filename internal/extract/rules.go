package extract

import (
	"regexp"
)

// matchFirst tries patterns in order against one text and returns the
// first submatch captured by group 1.
func matchFirst(patterns []*regexp.Regexp, text string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

// matchLinesThenJoined evaluates the pattern chain per individual line in
// reading order first, then against the joined text. The first line that
// yields any candidate wins; the reject filter skips candidates that
// belong to another field family without aborting the scan.
func matchLinesThenJoined(patterns []*regexp.Regexp, doc document, reject func(string) bool) (string, bool) {
	for _, line := range doc.lines {
		if v, ok := matchFirst(patterns, line); ok {
			if reject != nil && reject(v) {
				continue
			}
			return v, true
		}
	}
	if v, ok := matchFirst(patterns, doc.joined); ok {
		if reject == nil || !reject(v) {
			return v, true
		}
	}
	return "", false
}
