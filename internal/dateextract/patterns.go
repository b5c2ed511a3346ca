package dateextract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date notations seen in receipt OCR output. Compiled once; the extractor
// runs them both per-line and across the full text.
var (
	reNumericYYYY = regexp.MustCompile(`(\d{1,2})[.\-/](\d{1,2})[.\-/](\d{4})`)
	reNumericYY   = regexp.MustCompile(`(\d{1,2})[.\-/](\d{1,2})[.\-/](\d{2})\b`)
	reISO         = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	// Some point-of-sale terminals print 2025.12.17 instead of 17.12.2025.
	reDotYMD      = regexp.MustCompile(`(\d{4})\.(\d{2})\.(\d{2})`)
	reWrittenDMY  = regexp.MustCompile(`(?i)(\d{1,2})[.\s]+([a-zäöü]+)[.\s,]+(\d{4})`)
	reWrittenMDY  = regexp.MustCompile(`(?i)([a-zäöü]+)[.\s]+(\d{1,2})[,.\s]+(\d{4})`)
	reCompact     = regexp.MustCompile(`\b(\d{8})\b`)
)

func makeDate(year, month, day int) (time.Time, bool) {
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1990 || year > 2100 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// parseNumericDate handles D.M.YYYY and D.M.YY with any of [.-/] as
// separator. Day/month order is disambiguated by magnitude: a number above
// 12 must be the day; otherwise European day-first order is assumed. This is
// a fixed heuristic, not locale detection.
func parseNumericDate(text string, re *regexp.Regexp) (time.Time, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	num1, err1 := strconv.Atoi(m[1])
	num2, err2 := strconv.Atoi(m[2])
	year, err3 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}

	// Two-digit years split at 50: 49 -> 2049, 50 -> 1950.
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}

	var day, month int
	switch {
	case num1 > 12:
		day, month = num1, num2
	case num2 > 12:
		// US order: second number is the day.
		day, month = num2, num1
	default:
		day, month = num1, num2
	}

	return makeDate(year, month, day)
}

func parseYMD(text string, re *regexp.Regexp) (time.Time, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return makeDate(year, month, day)
}

func parseWritten(text string, re *regexp.Regexp, dayGroup, monthGroup, yearGroup int) (time.Time, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	day, err1 := strconv.Atoi(m[dayGroup])
	year, err2 := strconv.Atoi(m[yearGroup])
	if err1 != nil || err2 != nil {
		return time.Time{}, false
	}

	month, ok := monthNames[strings.TrimSpace(strings.ToLower(m[monthGroup]))]
	if !ok {
		return time.Time{}, false
	}

	return makeDate(year, month, day)
}

// parseWrittenDate tries day-month-year ("12. September 2024") before
// month-day-year ("September 12, 2024").
func parseWrittenDate(text string) (time.Time, bool) {
	lower := strings.ToLower(text)
	if d, ok := parseWritten(lower, reWrittenDMY, 1, 2, 3); ok {
		return d, true
	}
	return parseWritten(lower, reWrittenMDY, 2, 1, 3)
}

// parseCompactDate reads 8-digit tokens, first as YYYYMMDD, then as
// DDMMYYYY. Compact dates are bounded to years 2000-2100.
func parseCompactDate(text string) (time.Time, bool) {
	m := reCompact.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	digits := m[1]

	year, _ := strconv.Atoi(digits[:4])
	month, _ := strconv.Atoi(digits[4:6])
	day, _ := strconv.Atoi(digits[6:8])
	if year >= 2000 && year <= 2100 {
		if d, ok := makeDate(year, month, day); ok {
			return d, true
		}
	}

	day, _ = strconv.Atoi(digits[:2])
	month, _ = strconv.Atoi(digits[2:4])
	year, _ = strconv.Atoi(digits[4:8])
	if year >= 2000 && year <= 2100 {
		return makeDate(year, month, day)
	}
	return time.Time{}, false
}

// findDateInLine tries every supported notation against one line and
// returns the first parse, plausible or not; the caller applies the
// plausibility filter.
func findDateInLine(line string) (time.Time, bool) {
	if d, ok := parseNumericDate(line, reNumericYYYY); ok {
		return d, true
	}
	if d, ok := parseNumericDate(line, reNumericYY); ok {
		return d, true
	}
	if d, ok := parseYMD(line, reISO); ok {
		return d, true
	}
	if d, ok := parseYMD(line, reDotYMD); ok {
		return d, true
	}
	if d, ok := parseWrittenDate(line); ok {
		return d, true
	}
	return parseCompactDate(line)
}
