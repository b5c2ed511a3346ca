package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

// fakeTextSource serves canned text per path.
type fakeTextSource struct {
	texts map[string]string
}

func (f *fakeTextSource) ExtractText(_ context.Context, path string) (string, error) {
	text, ok := f.texts[path]
	if !ok {
		return "", fmt.Errorf("no text for %s", path)
	}
	return text, nil
}

// fakeStorage is an in-memory learned-company overlay.
type fakeStorage struct {
	learned []model.Company
}

func (f *fakeStorage) ListLearnedCompanies(_ context.Context) ([]model.Company, error) {
	return f.learned, nil
}

func (f *fakeStorage) SaveLearnedCompany(_ context.Context, c model.Company) error {
	f.learned = append(f.learned, c)
	return nil
}

func (f *fakeStorage) DeleteLearnedCompany(_ context.Context, _ string) error { return nil }

func (f *fakeStorage) ExportLearnedCompanies(_ context.Context) ([]byte, error) { return nil, nil }

func (f *fakeStorage) ImportLearnedCompanies(_ context.Context, _ []byte) (int, error) {
	return 0, nil
}

func (f *fakeStorage) Migrate(_ context.Context) error { return nil }

func (f *fakeStorage) Close() error { return nil }

// recentDate returns a date inside the plausibility window, formatted as it
// would appear on a receipt.
func recentDate() (time.Time, string) {
	d := time.Now().AddDate(0, -1, 0)
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
	return d, d.Format("02.01.2006")
}

func TestPipeline_ProcessFullResult(t *testing.T) {
	want, dateStr := recentDate()
	text := "Rechnungsdatum: " + dateStr + "\nIhre Rechnung von Apple\napple.com/bill\nApp  DirEqual\nGesamt 2,99"

	p := NewPipeline(&fakeTextSource{texts: map[string]string{"beleg.pdf": text}})
	receipt, err := p.Process(context.Background(), "beleg.pdf", nil)
	require.NoError(t, err)

	require.NotNil(t, receipt.Date)
	assert.True(t, want.Equal(*receipt.Date))
	assert.Equal(t, "Apple", receipt.Company)
	require.NotNil(t, receipt.Type)
	assert.Equal(t, model.TypeAppAbo, *receipt.Type)
	assert.Equal(t, "DirEqual", receipt.Product)
	assert.Equal(t, dateStr+"-Apple-app-abo-DirEqual", receipt.SuggestedName)
	assert.Equal(t, model.StatusCompleted, receipt.Status)
}

func TestPipeline_ProcessAllFallbacks(t *testing.T) {
	p := NewPipeline(&fakeTextSource{texts: map[string]string{"x.pdf": "zzz qqq 123"}})
	receipt, err := p.Process(context.Background(), "x.pdf", nil)
	require.NoError(t, err)

	assert.Nil(t, receipt.Date)
	assert.Empty(t, receipt.Company)
	assert.Nil(t, receipt.Type)
	assert.Empty(t, receipt.Product)
	assert.Equal(t, "00.00.0000-Unbekannt-beleg", receipt.SuggestedName)
}

func TestPipeline_ProcessTextSourceFailure(t *testing.T) {
	p := NewPipeline(&fakeTextSource{})
	receipt, err := p.Process(context.Background(), "fehlt.pdf", nil)
	require.Error(t, err)
	assert.Equal(t, model.StatusError, receipt.Status)
	assert.NotEmpty(t, receipt.Error)
}

func TestEngine_ClassifyUsesLearnedOverlay(t *testing.T) {
	storage := &fakeStorage{learned: []model.Company{
		model.NewCompany("Stammcafe", []string{"kaffeehaus huber"}, model.TypePtr(model.TypeBewirtungsbeleg), true),
	}}
	texts := &fakeTextSource{texts: map[string]string{
		"bon.pdf": "Kaffeehaus Huber\nDanke für Ihren Besuch",
	}}

	e := New(storage, texts, 1)
	receipt, err := e.Classify(context.Background(), "bon.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Stammcafe", receipt.Company)
	require.NotNil(t, receipt.Type)
	assert.Equal(t, model.TypeBewirtungsbeleg, *receipt.Type)
}

func TestEngine_RenameFiles(t *testing.T) {
	dir := t.TempDir()
	_, dateStr := recentDate()

	texts := &fakeTextSource{texts: map[string]string{}}
	var paths []string
	for i := 1; i <= 3; i++ {
		path := filepath.Join(dir, fmt.Sprintf("scan-%d.txt", i))
		require.NoError(t, os.WriteFile(path, []byte("original content"), 0600))
		texts.texts[path] = "Rechnungsdatum: " + dateStr + "\nNetflix Mitgliedschaft"
		paths = append(paths, path)
	}

	e := New(&fakeStorage{}, texts, 2)

	var progressed int
	results, err := e.RenameFiles(context.Background(), paths, func(Result) { progressed++ })
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 3, progressed)

	// The product extractor is gated on for subscriptions and re-finds the
	// brand, so the name carries it twice; the original behaves the same.
	wantName := dateStr + "-Netflix-abo-Netflix"
	assert.FileExists(t, filepath.Join(dir, wantName+".txt"))
	assert.FileExists(t, filepath.Join(dir, wantName+" (2).txt"))
	assert.FileExists(t, filepath.Join(dir, wantName+" (3).txt"))

	// Originals survive in the backup directory.
	for i := 1; i <= 3; i++ {
		assert.FileExists(t, filepath.Join(dir, BackupDirName, fmt.Sprintf("scan-%d.txt", i)))
	}

	// Results keep input order.
	for i, res := range results {
		require.NoError(t, res.Err)
		assert.Equal(t, paths[i], res.Receipt.Path)
		assert.NotEmpty(t, res.NewPath)
	}
}

func TestEngine_RenameFilesIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	_, dateStr := recentDate()

	good := filepath.Join(dir, "gut.txt")
	require.NoError(t, os.WriteFile(good, []byte("x"), 0600))

	texts := &fakeTextSource{texts: map[string]string{
		good: "Rechnungsdatum: " + dateStr + "\nNetflix Mitgliedschaft",
	}}

	e := New(&fakeStorage{}, texts, 2)
	results, err := e.RenameFiles(context.Background(), []string{filepath.Join(dir, "kaputt.txt"), good}, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.FileExists(t, filepath.Join(dir, dateStr+"-Netflix-abo-Netflix.txt"))
}
