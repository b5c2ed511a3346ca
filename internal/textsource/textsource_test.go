package textsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/common"
)

func TestExtractText_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beleg.txt")
	require.NoError(t, os.WriteFile(path, []byte("Rechnung\nNetflix\n12,99 EUR"), 0600))

	got, err := NewFileSource().ExtractText(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, got, "Netflix")
}

func TestExtractText_EmptyTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leer.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0600))

	_, err := NewFileSource().ExtractText(context.Background(), path)
	assert.ErrorIs(t, err, common.ErrNoText)
}

func TestExtractText_ImageRejected(t *testing.T) {
	_, err := NewFileSource().ExtractText(context.Background(), "scan.jpg")
	assert.ErrorIs(t, err, common.ErrUnsupportedFile)
}

func TestExtractText_UnknownExtension(t *testing.T) {
	_, err := NewFileSource().ExtractText(context.Background(), "beleg.docx")
	assert.ErrorIs(t, err, common.ErrUnsupportedFile)
}

func TestExtractText_MissingTextFile(t *testing.T) {
	_, err := NewFileSource().ExtractText(context.Background(), filepath.Join(t.TempDir(), "fehlt.txt"))
	assert.Error(t, err)
}
