// Package classify determines which company issued a receipt and what kind
// of receipt it is. All matching is deterministic substring/regex logic over
// the document text; there is no scoring and no learning beyond the
// user-maintained company overlay.
package classify

import (
	"strings"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/catalog"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

// Classify runs the detection cascade over one document's text.
//
// Order of methods, each tried only when the previous found nothing:
//
//  1. learned overlay (short-circuits every other company method)
//  2. static catalog against the first 5 non-empty lines
//  3. static catalog against the full text
//  4. email sender extraction
//  5. frequency analysis of capitalized words
//  6. header/footer line scan
//  7. domain extraction from URLs
//  8. generic business-noun fallback
//
// The header-window pass (2) exists so that a vendor whose own brand sits at
// the top of the receipt beats an unrelated processor named further down.
// If no company fixed the type, generic type detection scores the receipt
// type keywords. The APCOA/PayLife corrections run last on every path.
func Classify(text string, learned []model.Company) model.Classification {
	lowerText := strings.ToLower(text)
	in := input{
		text:      text,
		lowerText: lowerText,
		lines:     nonEmptyLines(text),
	}

	var result model.Classification

	// Method 1: learned companies outrank everything.
	for _, c := range learned {
		if _, ok := c.Matches(lowerText); ok {
			result.Company = c.Name
			if c.DefaultType != nil {
				result.Type = c.DefaultType
			} else {
				result.Type = DetectType(lowerText)
			}
			applyCorrections(&result, lowerText)
			return result
		}
	}

	// Methods 2 and 3: static catalog, header window first.
	headerWindow := strings.ToLower(strings.Join(headLines(in.lines, 5), " "))
	if c, ok := catalog.Lookup(catalog.Companies(), headerWindow); ok {
		result.Company = c.Name
		result.Type = c.DefaultType
	} else if c, ok := catalog.Lookup(catalog.Companies(), lowerText); ok {
		result.Company = c.Name
		result.Type = c.DefaultType
	}

	// Methods 4-8.
	if result.Company == "" {
		for _, d := range fallbackDetectors {
			if name, ok := d.fn(in); ok {
				result.Company = name
				break
			}
		}
	}

	if result.Type == nil {
		result.Type = DetectType(lowerText)
	}

	applyCorrections(&result, lowerText)
	return result
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func headLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
