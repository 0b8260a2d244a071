package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// date candidate patterns, tried in order per line then against the
// joined text; first match wins
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:tanggal|tgl|date|issued on|issue date|printed|terbit|diterbitkan)[:.,\s-]*([A-Za-z0-9,./-]{6,})`),
	regexp.MustCompile(`(?i)(\d{1,2}\s+[A-Za-z]{3,}\s+\d{2,4})`),   // 12 Januari 2024
	regexp.MustCompile(`(?i)([A-Za-z]{3,}\s+\d{1,2},?\s+\d{2,4})`), // Januari 12, 2024
	regexp.MustCompile(`(\d{4}[./-]\d{1,2}[./-]\d{1,2})`),          // 2024-01-05
	regexp.MustCompile(`(\d{1,2}[./-]\d{1,2}[./-]\d{2,4})`),        // 05/01/24 or 05/01/2024
}

var (
	reMonthName = regexp.MustCompile(`(?i)(Jan(?:uary|uari)?|Feb(?:ruary|ruari)?|Mar(?:ch|et)?|Apr(?:il)?|May|Mei|Jun(?:e|i)?|Jul(?:y|i)?|Agustus|Ags|Aug(?:ust)?|Sep(?:t)?(?:ember)?|Oct(?:ober)?|Okt(?:ober)?|Nov(?:ember)?|Dec(?:ember)?|Des(?:ember)?)`)
	reDayToken  = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?`)
	reFullYear  = regexp.MustCompile(`\d{4}`)
	reYearToken = regexp.MustCompile(`\d{2,4}`)
)

// English and Indonesian month names, full and abbreviated
var monthsByName = map[string]int{
	"jan": 1, "january": 1, "januari": 1,
	"feb": 2, "february": 2, "februari": 2,
	"mar": 3, "march": 3, "maret": 3,
	"apr": 4, "april": 4,
	"may": 5, "mei": 5,
	"jun": 6, "june": 6, "juni": 6,
	"jul": 7, "july": 7, "juli": 7,
	"aug": 8, "august": 8, "ags": 8, "agustus": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10, "okt": 10, "oktober": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12, "des": 12, "desember": 12,
}

// extractDate locates one date-like substring and parses it into a UTC
// calendar date. No candidate, or an impossible calendar date, yields nil.
func extractDate(doc document) *time.Time {
	candidate, ok := matchLinesThenJoined(datePatterns, doc, nil)
	if !ok {
		return nil
	}
	if t, ok := parseDate(candidate); ok {
		return &t
	}
	return nil
}

// parseDate handles both month-name forms (English or Indonesian) and
// purely numeric forms. Numeric forms are year-first when the first part
// has 4 digits, day-first otherwise; a 2-digit year is shifted to 2000+.
func parseDate(input string) (time.Time, bool) {
	if m := reMonthName.FindStringSubmatch(input); m != nil {
		month, ok := monthsByName[strings.ToLower(m[1])]
		if !ok {
			return time.Time{}, false
		}
		dayMatch := reDayToken.FindStringSubmatch(input)
		if dayMatch == nil {
			return time.Time{}, false
		}
		day, _ := strconv.Atoi(dayMatch[1])

		var year int
		if y := reFullYear.FindString(input); y != "" {
			year, _ = strconv.Atoi(y)
		} else {
			tokens := reYearToken.FindAllString(input, -1)
			if len(tokens) == 0 {
				return time.Time{}, false
			}
			year, _ = strconv.Atoi(tokens[len(tokens)-1])
		}
		if year < 100 {
			year += 2000
		}
		return makeUTCDate(year, month, day)
	}

	normalized := strings.NewReplacer("-", "/", ".", "/").Replace(input)
	parts := strings.Split(normalized, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	var year, month, day int
	if len(parts[0]) == 4 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		day, month, year = nums[0], nums[1], nums[2]
	}
	if year < 100 {
		year += 2000
	}
	return makeUTCDate(year, month, day)
}

// makeUTCDate builds a timezone-neutral calendar date and rejects values
// that would roll over (month 13, day 32).
func makeUTCDate(year, month, day int) (time.Time, bool) {
	if year <= 0 || month <= 0 || day <= 0 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
