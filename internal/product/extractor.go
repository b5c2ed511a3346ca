// Package product resolves the specific purchased product or app on
// receipts from multi-product vendors. Extraction is gated: for companies
// that sell exactly one thing the extractor returns nothing, so a stray
// brand keyword in the text can never produce a bogus product suffix.
package product

import (
	"strings"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

// productCompanies are the vendors whose receipts bundle many sub-products.
var productCompanies = map[string]bool{
	"Apple":        true,
	"Google":       true,
	"Microsoft365": true,
	"Amazon":       true,
	"AmazonPrime":  true,
}

// heuristic is one product-extraction strategy. Heuristics run in a fixed
// order; the first hit wins.
type heuristic struct {
	fn   func(text string) (string, bool)
	name string
}

var heuristics = []heuristic{
	{name: "known-products", fn: matchKnownProduct},
	{name: "storefront-item", fn: extractStorefrontItem},
	{name: "order-line", fn: extractOrderLine},
	{name: "marketplace-details", fn: extractMarketplaceDetails},
	{name: "app-label", fn: extractAppLabel},
}

// Extract returns the product or app name named in the receipt text, or
// false when extraction is not applicable or nothing was found. company and
// receiptType are the classifier's results for the same document.
func Extract(text, company string, receiptType *model.ReceiptType) (string, bool) {
	if !shouldExtract(company, receiptType) {
		return "", false
	}
	for _, h := range heuristics {
		if name, ok := h.fn(text); ok {
			return name, true
		}
	}
	return "", false
}

func shouldExtract(company string, receiptType *model.ReceiptType) bool {
	if productCompanies[company] {
		return true
	}
	if receiptType != nil {
		return *receiptType == model.TypeAppAbo || *receiptType == model.TypeAbo
	}
	return false
}

// --- Heuristic 1: known-product table ---

func matchKnownProduct(text string) (string, bool) {
	lowerText := strings.ToLower(text)
	for _, p := range knownProducts {
		for _, kw := range p.keywords {
			if strings.Contains(lowerText, kw) {
				return p.name, true
			}
		}
	}
	return "", false
}

// --- Heuristic 2: storefront item anchor ---

// App Store invoices name the app below an "Artikel"/"Item"/"Beschreibung"
// column header; the first non-boilerplate line after the header is the
// candidate.
func extractStorefrontItem(text string) (string, bool) {
	foundItemSection := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if strings.Contains(lower, "artikel") || strings.Contains(lower, "item") ||
			strings.Contains(lower, "beschreibung") || strings.Contains(lower, "description") {
			foundItemSection = true
			continue
		}
		if !foundItemSection {
			continue
		}

		if lower == "" ||
			strings.Contains(lower, "preis") ||
			strings.Contains(lower, "price") ||
			strings.Contains(lower, "eur") ||
			strings.Contains(lower, "€") ||
			strings.Contains(lower, "mwst") ||
			strings.Contains(lower, "steuer") ||
			strings.HasPrefix(lower, "ab ") ||
			len([]rune(trimmed)) < 3 {
			continue
		}

		cleaned := cleanAppName(trimmed)
		if isValidAppName(cleaned) {
			return cleaned, true
		}
	}
	return "", false
}

// --- Heuristic 3: order line ---

// Play Store invoices put the app name on the line after "Bestellung:" /
// "Order:".
func extractOrderLine(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "bestellung") && !strings.Contains(lower, "order") {
			continue
		}
		if i+1 >= len(lines) {
			continue
		}
		cleaned := cleanAppName(strings.TrimSpace(lines[i+1]))
		if isValidAppName(cleaned) {
			return cleaned, true
		}
	}
	return "", false
}

// --- Heuristic 4: marketplace details table ---

// Amazon invoices carry a "Rechnungsdetails" section whose "Beschreibung"
// column holds the product name, e.g. "Zattoo PREMIUM Trial - 1 month".
// Quantity/price/tax rows and ASIN lines are skipped; a trailing "ASIN:"
// fragment on the candidate line itself is cut off.
func extractMarketplaceDetails(text string) (string, bool) {
	inDetailsSection := false
	foundDescriptionHeader := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if strings.Contains(lower, "rechnungsdetails") || strings.Contains(lower, "invoice details") {
			inDetailsSection = true
			continue
		}
		if inDetailsSection &&
			(strings.Contains(lower, "beschreibung") || strings.Contains(lower, "description")) {
			foundDescriptionHeader = true
			continue
		}
		if !foundDescriptionHeader {
			continue
		}

		if lower == "" ||
			strings.Contains(lower, "menge") ||
			strings.Contains(lower, "stückpreis") ||
			strings.Contains(lower, "ust.") ||
			strings.Contains(lower, "zwischen") ||
			strings.HasPrefix(lower, "eur") ||
			strings.HasPrefix(lower, "€") ||
			strings.Contains(lower, "asin:") ||
			len([]rune(trimmed)) < 3 {
			continue
		}

		candidate := trimmed
		if idx := indexFold(candidate, "ASIN:"); idx >= 0 {
			candidate = candidate[:idx]
		}
		cleaned := cleanAppName(candidate)
		if isValidAppName(cleaned) && len([]rune(cleaned)) > 2 {
			return cleaned, true
		}
	}
	return "", false
}

// --- Heuristic 5: bare "App" label ---

// Apple subscription confirmations label the app either inline
// ("App  DirEqual", "App: DirEqual") or on the line after a bare "App".
func extractAppLabel(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if strings.HasPrefix(lower, "app ") || strings.HasPrefix(lower, "app:") ||
			strings.HasPrefix(lower, "app\t") {
			appPart := strings.TrimSpace(trimmed[3:])
			appPart = strings.TrimSpace(strings.Trim(appPart, ":"))
			if appPart != "" && isValidAppName(appPart) {
				return cleanAppName(appPart), true
			}
		}

		if lower == "app" && i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" && isValidAppName(next) {
				return cleanAppName(next), true
			}
		}
	}
	return "", false
}

// indexFold is a case-insensitive strings.Index for ASCII needles.
func indexFold(s, sub string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(sub))
}
