// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

// Storage defines the contract for the learned-company persistence layer.
// Learned companies form an ordered overlay over the static catalog: list
// order is insertion order, and saving an existing name moves it to the end.
type Storage interface {
	// Learned company operations
	ListLearnedCompanies(ctx context.Context) ([]model.Company, error)
	SaveLearnedCompany(ctx context.Context, company model.Company) error
	DeleteLearnedCompany(ctx context.Context, name string) error

	// Bulk transfer
	ExportLearnedCompanies(ctx context.Context) ([]byte, error)
	ImportLearnedCompanies(ctx context.Context, data []byte) (int, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// TextSource extracts the raw text of a receipt document.
type TextSource interface {
	// ExtractText returns the document text for path. Implementations
	// return common.ErrUnsupportedFile for file types they cannot read and
	// common.ErrNoText for documents without a text layer.
	ExtractText(ctx context.Context, path string) (string, error)
}
