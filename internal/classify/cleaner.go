package classify

import (
	"strings"
	"unicode"
)

// Legal-entity suffixes stripped from candidate company names. Matched
// case-insensitively at the end of the string, in this order.
var legalSuffixes = []string{
	" GmbH", " AG", " Inc.", " Inc", " Ltd.", " Ltd", " LLC",
	" Corp.", " Corp", " Limited", " KG", " OHG", " e.U.", " UG",
}

const trimPunctuation = ".,;:-–—|/\\\"'<>()[]{}"

// CleanCompanyName normalizes a raw candidate into a file-name-friendly
// company token: punctuation and legal suffixes stripped, characters outside
// letters/digits/space/hyphen removed, multi-word names merged CamelCase.
// Returns false when the cleaned result is not usable as a company name.
// Cleaning is idempotent: applying it twice yields the same output.
func CleanCompanyName(name string) (string, bool) {
	cleaned := strings.TrimSpace(name)
	cleaned = strings.Trim(cleaned, trimPunctuation)
	cleaned = strings.TrimSpace(cleaned)

	lower := strings.ToLower(cleaned)
	for _, suffix := range legalSuffixes {
		if strings.HasSuffix(lower, strings.ToLower(suffix)) {
			cleaned = cleaned[:len(cleaned)-len(suffix)]
			lower = strings.ToLower(cleaned)
		}
	}
	cleaned = strings.TrimSpace(cleaned)

	runes := []rune(cleaned)
	if len(runes) < 2 || len(runes) > 50 {
		return "", false
	}
	if !unicode.IsLetter(runes[0]) {
		return "", false
	}

	var b strings.Builder
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned = b.String()

	for strings.Contains(cleaned, "  ") {
		cleaned = strings.ReplaceAll(cleaned, "  ", " ")
	}
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", false
	}

	words := strings.Split(cleaned, " ")
	if len(words) > 1 {
		for i, w := range words {
			words[i] = capitalizeWord(w)
		}
		return strings.Join(words, ""), true
	}
	return cleaned, true
}

// capitalizeWord uppercases the first rune and lowercases the rest.
func capitalizeWord(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	out := make([]rune, len(runes))
	out[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		out[i] = unicode.ToLower(runes[i])
	}
	return string(out)
}
