// Package textsource reads the raw text of receipt documents. PDFs are read
// through MuPDF (go-fitz); plain-text files pass through unchanged. Image
// files have no text layer and are rejected, the pipeline reports them as
// unreadable rather than silently producing the all-fallback name.
package textsource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/common"
)

// maxPDFPages bounds how many pages are read per document. Receipts are
// short; the cap keeps pathological PDFs from stalling a batch.
const maxPDFPages = 10

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".heic": true,
	".tiff": true, ".gif": true,
}

// FileSource extracts document text from files on disk.
type FileSource struct{}

// NewFileSource creates a file-backed text source.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// ExtractText returns the text of the document at path.
func (f *FileSource) ExtractText(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case ext == ".pdf":
		return f.extractPDF(ctx, path)
	case ext == ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", fmt.Errorf("%s: %w", path, common.ErrNoText)
		}
		return string(data), nil
	case imageExtensions[ext]:
		return "", fmt.Errorf("%s: image files need OCR: %w", path, common.ErrUnsupportedFile)
	default:
		return "", fmt.Errorf("%s: %w", path, common.ErrUnsupportedFile)
	}
}

func (f *FileSource) extractPDF(ctx context.Context, path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() { _ = doc.Close() }()

	pages := doc.NumPage()
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var b strings.Builder
	for i := 0; i < pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i+1, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("%s: %w", path, common.ErrNoText)
	}
	return b.String(), nil
}
