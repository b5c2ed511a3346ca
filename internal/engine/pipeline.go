// Package engine wires the extraction stages into a pipeline and applies
// the resulting names to files.
package engine

import (
	"context"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/classify"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/dateextract"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/product"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/service"
)

// Pipeline runs one document through text extraction, date extraction,
// classification and product extraction, and synthesizes the canonical
// file name. It is stateless; the learned overlay is passed per call so a
// batch shares one consistent snapshot.
type Pipeline struct {
	texts service.TextSource
}

// NewPipeline creates a pipeline over the given text source.
func NewPipeline(texts service.TextSource) *Pipeline {
	return &Pipeline{texts: texts}
}

// Process classifies the document at path. A missing date, company, type or
// product is not an error: the canonical name falls back to the literal
// placeholder tokens. Only a text-source failure fails the document, and it
// is recorded on the returned receipt as well.
func (p *Pipeline) Process(ctx context.Context, path string, learned []model.Company) (model.Receipt, error) {
	receipt := model.Receipt{
		Path:   path,
		Status: model.StatusProcessing,
	}

	text, err := p.texts.ExtractText(ctx, path)
	if err != nil {
		receipt.Status = model.StatusError
		receipt.Error = err.Error()
		return receipt, err
	}
	receipt.ExtractedText = text

	if date, ok := dateextract.Extract(text); ok {
		receipt.Date = &date
	}

	result := classify.Classify(text, learned)
	receipt.Company = result.Company
	receipt.Type = result.Type

	if name, ok := product.Extract(text, result.Company, result.Type); ok {
		receipt.Product = name
	}

	receipt.SuggestedName = receipt.GenerateFileName()
	receipt.Status = model.StatusCompleted
	return receipt, nil
}
