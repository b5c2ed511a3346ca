// Package dateextract finds the document date in noisy receipt/invoice OCR
// text. Extraction is a priority cascade of tiers; the first tier that
// yields a plausible date wins. A date is plausible when it lies within
// [now-2y, now+1y] — anything else is discarded, not deprioritized.
package dateextract

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Keywords labeling the actual document date. A hit on one of these lines
// outranks every other date in the document, including email headers.
var invoiceDateKeywords = []string{
	"rechnungsdatum", "invoice date", "belegdatum", "ausstellungsdatum",
	"zahlungsdatum", "payment date", "buchungsdatum", "transaktionsdatum",
	"bestelldatum", "order date", "kaufdatum", "purchase date",
}

// Secondary labels; weaker because "vom"/"am"/"den" also appear in prose.
var secondaryDateKeywords = []string{
	"datum:", "date:", "dated:", "erstellt am", "created on", "issued on",
	"gültig ab", "valid from", "vom", "am", "den",
}

// Extract scans text for the document date. The boolean is false when no
// plausible date was found anywhere.
func Extract(text string) (time.Time, bool) {
	return extract(text, time.Now())
}

// tier is one stage of the cascade; tiers run in order and the first one
// returning a date ends extraction.
type tier func(doc document) (time.Time, bool)

type document struct {
	now   time.Time
	text  string
	lines []string
}

var tiers = []tier{
	tierInvoiceKeyword,
	tierAfterInvoiceHeader,
	tierSecondaryKeyword,
	tierHeaderArea,
	tierFullTextSearch,
	tierEmailHeader,
	tierRemainingLines,
}

func extract(text string, now time.Time) (time.Time, bool) {
	doc := document{
		text:  text,
		lines: strings.Split(text, "\n"),
		now:   now,
	}
	for _, t := range tiers {
		if d, ok := t(doc); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func (d document) plausible(date time.Time) bool {
	earliest := d.now.AddDate(-2, 0, 0)
	latest := d.now.AddDate(1, 0, 0)
	return !date.Before(earliest) && !date.After(latest)
}

// Tier 1: lines carrying an explicit document-date label.
func tierInvoiceKeyword(doc document) (time.Time, bool) {
	for _, line := range doc.lines {
		lower := strings.ToLower(line)
		for _, kw := range invoiceDateKeywords {
			if strings.Contains(lower, kw) {
				if d, ok := findDateInLine(line); ok && doc.plausible(d) {
					return d, true
				}
			}
		}
	}
	return time.Time{}, false
}

// Tier 2: templates that put the date directly under a bare
// "Rechnung"/"Invoice" section header (Apple invoices do this).
func tierAfterInvoiceHeader(doc document) (time.Time, bool) {
	for i, line := range doc.lines {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if trimmed != "rechnung" && trimmed != "invoice" {
			continue
		}
		for j := i + 1; j < i+4 && j < len(doc.lines); j++ {
			if d, ok := findDateInLine(doc.lines[j]); ok && doc.plausible(d) {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

// Tier 3: secondary date labels, skipping email headers so that a
// forwarded mail's "Datum:" line cannot pose as the document date.
func tierSecondaryKeyword(doc document) (time.Time, bool) {
	for _, line := range doc.lines {
		lower := strings.ToLower(line)
		for _, kw := range secondaryDateKeywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			if isEmailHeaderLine(lower) {
				continue
			}
			if d, ok := findDateInLine(line); ok && doc.plausible(d) {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

// Tier 4: the header area — first 15 lines, email headers excluded.
func tierHeaderArea(doc document) (time.Time, bool) {
	for i, line := range doc.lines {
		if i >= 15 {
			break
		}
		if isEmailHeaderLine(strings.ToLower(line)) {
			continue
		}
		if d, ok := findDateInLine(line); ok && doc.plausible(d) {
			return d, true
		}
	}
	return time.Time{}, false
}

// Tier 6: email transmission dates, only when nothing else matched.
func tierEmailHeader(doc document) (time.Time, bool) {
	for _, line := range doc.lines {
		if !isEmailHeaderLine(strings.ToLower(line)) {
			continue
		}
		if d, ok := findDateInLine(line); ok && doc.plausible(d) {
			return d, true
		}
	}
	return time.Time{}, false
}

// Tier 7: everything past the header area.
func tierRemainingLines(doc document) (time.Time, bool) {
	for i := 15; i < len(doc.lines); i++ {
		if d, ok := findDateInLine(doc.lines[i]); ok && doc.plausible(d) {
			return d, true
		}
	}
	return time.Time{}, false
}

func isEmailHeaderLine(lower string) bool {
	return strings.HasPrefix(lower, "von:") ||
		strings.HasPrefix(lower, "from:") ||
		(strings.HasPrefix(lower, "datum:") && strings.Contains(lower, "@")) ||
		(strings.HasPrefix(lower, "date:") && strings.Contains(lower, "@")) ||
		strings.HasPrefix(lower, "an:") ||
		strings.HasPrefix(lower, "to:") ||
		strings.HasPrefix(lower, "betreff:") ||
		strings.HasPrefix(lower, "subject:") ||
		strings.Contains(lower, "gesendet:") ||
		strings.Contains(lower, "sent:")
}

// Tier 5: cross-pattern full-text search. Every match of every pattern is
// collected with its byte offset; candidates in the first 500 characters
// beat later ones, then the chronologically more recent date wins. The
// tie-break is arbitrary but frozen: downstream naming depends on it.
var searchPatterns = []struct {
	re    *regexp.Regexp
	parse func(string) (time.Time, bool)
}{
	{reNumericYYYY, func(s string) (time.Time, bool) { return parseNumericDate(s, reNumericYYYY) }},
	{reNumericYYLoose, func(s string) (time.Time, bool) { return parseNumericDate(s, reNumericYY) }},
	{reISO, func(s string) (time.Time, bool) { return parseYMD(s, reISO) }},
	{reDotYMD, func(s string) (time.Time, bool) { return parseYMD(s, reDotYMD) }},
	{reWrittenDMY, func(s string) (time.Time, bool) { return parseWritten(strings.ToLower(s), reWrittenDMY, 1, 2, 3) }},
	{reWrittenMDY, func(s string) (time.Time, bool) { return parseWritten(strings.ToLower(s), reWrittenMDY, 2, 1, 3) }},
}

// The collection pass matches two-digit years without the trailing boundary
// check; the per-candidate parse re-applies the strict pattern.
var reNumericYYLoose = regexp.MustCompile(`(\d{1,2})[.\-/](\d{1,2})[.\-/](\d{2})`)

func tierFullTextSearch(doc document) (time.Time, bool) {
	type candidate struct {
		date   time.Time
		offset int
	}
	var found []candidate

	for _, p := range searchPatterns {
		for _, loc := range p.re.FindAllStringIndex(doc.text, -1) {
			if d, ok := p.parse(doc.text[loc[0]:loc[1]]); ok && doc.plausible(d) {
				found = append(found, candidate{date: d, offset: loc[0]})
			}
		}
	}
	if len(found) == 0 {
		return time.Time{}, false
	}

	sort.SliceStable(found, func(i, j int) bool {
		iEarly := found[i].offset < 500
		jEarly := found[j].offset < 500
		if iEarly != jEarly {
			return iEarly
		}
		return found[i].date.After(found[j].date)
	})

	return found[0].date, true
}
