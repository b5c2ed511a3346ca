// Package storage provides the data persistence layer for learned companies.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrInvalidCompany = errors.New("invalid company")
	ErrInvalidImport  = errors.New("invalid import data")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCompany validates a learned company record.
func validateCompany(c model.Company) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCompany)
	}
	if len(c.Keywords) == 0 {
		return fmt.Errorf("%w: missing keywords", ErrInvalidCompany)
	}
	for _, kw := range c.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("%w: empty keyword", ErrInvalidCompany)
		}
	}
	if c.DefaultType != nil {
		if _, ok := model.ParseReceiptType(string(*c.DefaultType)); !ok {
			return fmt.Errorf("%w: unknown receipt type %q", ErrInvalidCompany, *c.DefaultType)
		}
	}
	return nil
}
