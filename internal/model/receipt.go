package model

import (
	"path/filepath"
	"strings"
	"time"
)

// ProcessingStatus tracks a receipt through the rename pipeline.
type ProcessingStatus string

const (
	// StatusPending means the receipt has not been processed yet.
	StatusPending ProcessingStatus = "pending"
	// StatusProcessing means the pipeline is currently working on it.
	StatusProcessing ProcessingStatus = "processing"
	// StatusCompleted means classification (and rename, if requested) succeeded.
	StatusCompleted ProcessingStatus = "completed"
	// StatusError means this document failed; siblings are unaffected.
	StatusError ProcessingStatus = "error"
)

// Receipt is one document moving through the pipeline.
type Receipt struct {
	Date          *time.Time
	Type          *ReceiptType
	Path          string
	ExtractedText string
	Company       string
	Product       string
	SuggestedName string
	Error         string
	Status        ProcessingStatus
}

// OriginalFileName returns the file name without its directory.
func (r Receipt) OriginalFileName() string {
	return filepath.Base(r.Path)
}

// FileExtension returns the lowercased extension without the leading dot.
func (r Receipt) FileExtension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(r.Path), "."))
}

// IsPDF reports whether the document is a PDF.
func (r Receipt) IsPDF() bool {
	return r.FileExtension() == "pdf"
}

// IsImage reports whether the document is a scanned image.
func (r Receipt) IsImage() bool {
	switch r.FileExtension() {
	case "jpg", "jpeg", "png", "heic", "heif", "tiff", "tif":
		return true
	}
	return false
}

// GenerateFileName derives the canonical name from the detected fields.
// Missing values become fixed fallback literals, never errors:
// "00.00.0000" for the date, "Unbekannt" for the company and "beleg" for
// the type. A detected product is appended as a fourth segment.
func (r Receipt) GenerateFileName() string {
	date := "00.00.0000"
	if r.Date != nil {
		date = r.Date.Format("02.01.2006")
	}

	company := r.Company
	if company == "" {
		company = "Unbekannt"
	}

	tag := "beleg"
	if r.Type != nil {
		tag = string(*r.Type)
	}

	name := date + "-" + company + "-" + tag
	if r.Product != "" {
		name += "-" + r.Product
	}
	return name
}
