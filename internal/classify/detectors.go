package classify

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// input carries the pre-computed views of one document that the fallback
// detectors share.
type input struct {
	text      string
	lowerText string
	lines     []string // trimmed, non-empty
}

// detector is one company-detection heuristic. Detectors run in a fixed
// order and the first hit wins; each is independently testable.
type detector struct {
	fn   func(input) (string, bool)
	name string
}

// fallbackDetectors run only when neither the learned overlay nor the
// static catalog matched. Order is part of the contract.
var fallbackDetectors = []detector{
	{name: "email-sender", fn: detectEmailSender},
	{name: "frequency", fn: detectFrequentName},
	{name: "header-footer", fn: detectFromHeaderFooter},
	{name: "domains", fn: detectFromDomains},
	{name: "generic", fn: detectGenericCompany},
}

// --- Method 4: email sender ---

// Sender-line patterns tried in order; only the first letter varies in case,
// matching how mail clients render these headers.
var senderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[Vv]on:\s*(.+?)(?:\s*<|$)`),
	regexp.MustCompile(`[Ff]rom:\s*(.+?)(?:\s*<|$)`),
	regexp.MustCompile(`[Aa]bsender:\s*(.+?)(?:\s*<|$)`),
	regexp.MustCompile(`[Ss]ender:\s*(.+?)(?:\s*<|$)`),
}

var reEmailAddress = regexp.MustCompile(`[\w.-]+@([\w-]+)\.([\w.-]+)`)

// genericMailProviders are domains that identify the mailbox host, not the
// issuing company.
var genericMailProviders = map[string]bool{
	"gmail": true, "yahoo": true, "hotmail": true, "outlook": true,
	"icloud": true, "mail": true, "email": true,
}

func detectEmailSender(in input) (string, bool) {
	for _, line := range strings.Split(in.text, "\n") {
		for _, re := range senderPatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			sender := strings.TrimSpace(m[1])
			if cleaned, ok := CleanCompanyName(sender); ok {
				return cleaned, true
			}
		}
	}

	// noreply@company.com style addresses: the domain label is the company
	// unless it is a generic mail provider.
	for _, m := range reEmailAddress.FindAllStringSubmatch(in.text, -1) {
		domain := m[1]
		if !genericMailProviders[strings.ToLower(domain)] {
			return capitalizeWord(domain), true
		}
	}

	return "", false
}

// --- Method 5: frequency analysis ---

// Bilingual boilerplate excluded from frequency analysis: articles, months,
// currency and invoice vocabulary, legal-entity suffixes.
var stopWords = map[string]bool{
	"der": true, "die": true, "das": true, "und": true, "oder": true, "für": true,
	"von": true, "mit": true, "auf": true, "aus": true, "bei": true, "nach": true,
	"the": true, "and": true, "for": true, "from": true, "with": true, "your": true,
	"you": true, "our": true, "this": true, "that": true, "are": true, "was": true,
	"rechnung": true, "invoice": true, "beleg": true, "receipt": true, "datum": true,
	"date": true, "betrag": true, "amount": true, "total": true, "summe": true,
	"netto": true, "brutto": true, "mwst": true, "ust": true, "tax": true,
	"eur": true, "euro": true, "usd": true, "preis": true, "price": true,
	"zahlung": true, "payment": true, "konto": true, "account": true,
	"kunde": true, "customer": true, "nummer": true, "number": true,
	"januar": true, "februar": true, "märz": true, "april": true, "mai": true,
	"juni": true, "juli": true, "august": true, "september": true,
	"oktober": true, "november": true, "dezember": true, "january": true,
	"february": true, "march": true, "may": true, "june": true, "july": true,
	"october": true, "december": true,
	"gmbh": true, "ag": true, "inc": true, "ltd": true, "llc": true,
	"corp": true, "limited": true, "company": true, "kg": true, "ohg": true,
}

// Common German words that pass the shape checks but are never companies.
var commonWords = map[string]bool{
	"Sie": true, "Ihr": true, "Ihre": true, "Der": true, "Die": true,
	"Das": true, "Ein": true, "Eine": true, "Bei": true, "Nach": true,
}

func detectFrequentName(in input) (string, bool) {
	frequency := make(map[string]int)
	var order []string

	for _, line := range strings.Split(in.text, "\n") {
		for _, word := range strings.Fields(line) {
			word = strings.TrimFunc(word, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
			n := len([]rune(word))
			if n < 3 || n > 25 {
				continue
			}
			if stopWords[strings.ToLower(word)] {
				continue
			}
			if !startsUpper(word) {
				continue
			}
			if _, seen := frequency[word]; !seen {
				order = append(order, word)
			}
			frequency[word]++
		}
	}

	var candidates []string
	for _, word := range order {
		if frequency[word] >= 2 {
			candidates = append(candidates, word)
		}
	}
	// Count-descending; lexicographic on ties to keep the result stable.
	sort.SliceStable(candidates, func(i, j int) bool {
		if frequency[candidates[i]] != frequency[candidates[j]] {
			return frequency[candidates[i]] > frequency[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})

	if len(candidates) > 5 {
		candidates = candidates[:5]
	}
	for _, word := range candidates {
		if isLikelyCompanyName(word) {
			return word, true
		}
	}
	return "", false
}

func isLikelyCompanyName(word string) bool {
	runes := []rune(word)
	if len(runes) < 3 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	allDigits := true
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return false
	}
	return !commonWords[word]
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

// --- Method 6: header/footer scan ---

// Legal-entity suffixes searched as substrings in header/footer lines.
var lineSuffixes = []string{
	"gmbh", "ag", "inc", "ltd", "llc", "corp", "limited", "kg", "ohg", "e.u.", "ug",
}

func detectFromHeaderFooter(in input) (string, bool) {
	header := in.lines
	if len(header) > 5 {
		header = header[:5]
	}
	for _, line := range header {
		if c, ok := companyFromLine(line); ok {
			return c, true
		}
	}

	footer := in.lines
	if len(footer) > 10 {
		footer = footer[len(footer)-10:]
	}
	for _, line := range footer {
		if c, ok := companyFromLine(line); ok {
			return c, true
		}
	}
	return "", false
}

func companyFromLine(line string) (string, bool) {
	lower := strings.ToLower(line)

	// Lines that are definitely not company names.
	if strings.Contains(lower, "rechnung") && strings.Contains(lower, "nr") {
		return "", false
	}
	if strings.Contains(lower, "datum") {
		return "", false
	}
	if strings.Contains(lower, "seite") || strings.Contains(lower, "page") {
		return "", false
	}
	if strings.HasPrefix(lower, "tel") || strings.HasPrefix(lower, "fax") {
		return "", false
	}
	if strings.Contains(lower, "@") && !strings.Contains(lower, "von:") {
		return "", false
	}

	for _, suffix := range lineSuffixes {
		idx := strings.Index(lower, suffix)
		if idx < 0 {
			continue
		}
		if cleaned, ok := CleanCompanyName(line[:idx]); ok {
			return cleaned, true
		}
	}

	// A short capitalized line may be a standalone company name.
	words := strings.Fields(line)
	if len(words) >= 1 && len(words) <= 4 {
		first := words[0]
		if startsUpper(first) && len([]rune(first)) >= 3 {
			if cleaned, ok := CleanCompanyName(line); ok {
				return cleaned, true
			}
		}
	}
	return "", false
}

// --- Method 7: domain extraction ---

var reURLDomain = regexp.MustCompile(`(?i)(?:www\.|https?://)([\w-]+)\.`)

// Infrastructure labels that never identify the issuing company.
var genericDomains = map[string]bool{
	"www": true, "http": true, "https": true, "mail": true,
	"email": true, "support": true, "help": true, "info": true,
}

func detectFromDomains(in input) (string, bool) {
	counts := make(map[string]int)
	var order []string

	for _, m := range reURLDomain.FindAllStringSubmatch(in.text, -1) {
		domain := strings.ToLower(m[1])
		if genericDomains[domain] || len(domain) < 3 {
			continue
		}
		if _, seen := counts[domain]; !seen {
			order = append(order, domain)
		}
		counts[domain]++
	}
	if len(order) == 0 {
		return "", false
	}

	// Most frequent domain; first appearance in the text breaks ties.
	top := order[0]
	for _, domain := range order[1:] {
		if counts[domain] > counts[top] {
			top = domain
		}
	}
	return capitalizeWord(top), true
}

// --- Method 8: generic category fallback ---

// genericBusinesses maps everyday business nouns to a capitalized label
// used as the company when nothing else matched.
var genericBusinesses = []struct {
	keyword string
	label   string
}{
	{"hotel", "Hotel"},
	{"restaurant", "Restaurant"},
	{"tankstelle", "Tankstelle"},
	{"apotheke", "Apotheke"},
	{"supermarkt", "Supermarkt"},
	{"bäckerei", "Bäckerei"},
	{"café", "Cafe"},
	{"pizzeria", "Pizzeria"},
	{"metzgerei", "Metzgerei"},
	{"drogerie", "Drogerie"},
	{"buchhandlung", "Buchhandlung"},
	{"optiker", "Optiker"},
	{"friseur", "Friseur"},
	{"werkstatt", "Werkstatt"},
	{"arzt", "Arzt"},
	{"zahnarzt", "Zahnarzt"},
	{"parkhaus", "Parkhaus"},
	{"garage", "Garage"},
	{"kfz", "KFZ"},
}

func detectGenericCompany(in input) (string, bool) {
	for _, g := range genericBusinesses {
		if strings.Contains(in.lowerText, g.keyword) {
			return g.label, true
		}
	}
	return "", false
}
