package product

import (
	"strings"
	"unicode"
)

// Marketing suffixes stripped from candidate app names, in this order. Each
// suffix is first cut off the end, then removed case-insensitively anywhere
// in the remainder.
var marketingSuffixes = []string{
	"(Familienfreigabe)",
	"(Family Sharing)",
	"- Abo",
	"- Subscription",
	"Subscription",
	"Premium",
	"Pro",
	"Plus",
	"(In-App)",
}

const fileNameInvalidChars = `/\:*?"<>|`

// cleanAppName normalizes a raw candidate into a file-name-friendly product
// token: marketing suffixes stripped, file-name-hostile characters removed,
// multi-word names merged CamelCase.
func cleanAppName(name string) string {
	cleaned := name

	for _, suffix := range marketingSuffixes {
		if strings.HasSuffix(strings.ToLower(cleaned), strings.ToLower(suffix)) {
			cleaned = cleaned[:len(cleaned)-len(suffix)]
		}
		cleaned = removeAllFold(cleaned, suffix)
	}

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.Trim(cleaned, ":-–—")
	cleaned = strings.TrimSpace(cleaned)

	var b strings.Builder
	for _, r := range cleaned {
		if !strings.ContainsRune(fileNameInvalidChars, r) {
			b.WriteRune(r)
		}
	}
	cleaned = b.String()

	words := strings.Fields(cleaned)
	if len(words) > 1 {
		for i, w := range words {
			words[i] = capitalize(w)
		}
		cleaned = strings.Join(words, "")
	}
	return strings.TrimSpace(cleaned)
}

// Candidate lines that are invoice boilerplate or bare platform names, never
// products.
var invalidAppNames = map[string]bool{
	"total": true, "summe": true, "gesamt": true, "subtotal": true,
	"mwst": true, "vat": true, "tax": true, "steuer": true,
	"datum": true, "date": true, "invoice": true, "rechnung": true,
	"apple": true, "google": true, "microsoft": true,
}

// isValidAppName reports whether name is plausible as a product name.
func isValidAppName(name string) bool {
	n := len([]rune(name))
	if n < 2 || n > 50 {
		return false
	}
	allDigits := true
	for _, r := range name {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return false
	}
	return !invalidAppNames[strings.ToLower(name)]
}

// removeAllFold removes every case-insensitive occurrence of sub from s.
// sub is ASCII.
func removeAllFold(s, sub string) string {
	for {
		idx := indexFold(s, sub)
		if idx < 0 {
			return s
		}
		s = s[:idx] + s[idx+len(sub):]
	}
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(w string) string {
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
