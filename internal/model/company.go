package model

import (
	"fmt"
	"strings"
)

// Company is a known issuer of receipts. Keywords are lowercase substrings
// matched against document text; their order defines match priority within
// the record. A company with no keywords never matches.
type Company struct {
	DefaultType *ReceiptType `json:"defaultType,omitempty"`
	Name        string       `json:"name"`
	Keywords    []string     `json:"keywords"`
	IsLearned   bool         `json:"isLearned"`
}

// NewCompany builds a company record, lowercasing all keywords.
func NewCompany(name string, keywords []string, defaultType *ReceiptType, learned bool) Company {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return Company{
		Name:        name,
		Keywords:    lowered,
		DefaultType: defaultType,
		IsLearned:   learned,
	}
}

// Matches reports whether any of the company's keywords occurs in the
// given lowercased text, returning the first matching keyword.
func (c Company) Matches(lowerText string) (string, bool) {
	for _, kw := range c.Keywords {
		if kw != "" && strings.Contains(lowerText, kw) {
			return kw, true
		}
	}
	return "", false
}

// Validate ensures the record is usable as a learned overlay entry.
func (c Company) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("company name is required")
	}
	if len(c.Keywords) == 0 {
		return fmt.Errorf("company %q needs at least one keyword", c.Name)
	}
	for _, kw := range c.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("company %q has an empty keyword", c.Name)
		}
		if kw != strings.ToLower(kw) {
			return fmt.Errorf("company %q keyword %q must be lowercase", c.Name, kw)
		}
	}
	if c.DefaultType != nil {
		if _, ok := ParseReceiptType(string(*c.DefaultType)); !ok {
			return fmt.Errorf("company %q has unknown receipt type %q", c.Name, *c.DefaultType)
		}
	}
	return nil
}

// TypePtr is a convenience helper for building catalog literals.
func TypePtr(t ReceiptType) *ReceiptType {
	return &t
}
