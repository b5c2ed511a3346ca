package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/common"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func learnedCompany(name string, t *model.ReceiptType, keywords ...string) model.Company {
	return model.NewCompany(name, keywords, t, true)
}

func TestSaveAndListLearnedCompanies(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveLearnedCompany(ctx, learnedCompany("Stammcafe", model.TypePtr(model.TypeBewirtungsbeleg), "stammcafe")))
	require.NoError(t, s.SaveLearnedCompany(ctx, learnedCompany("Weinhof", nil, "weinhof", "Weingut Huber")))

	companies, err := s.ListLearnedCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 2)

	assert.Equal(t, "Stammcafe", companies[0].Name)
	require.NotNil(t, companies[0].DefaultType)
	assert.Equal(t, model.TypeBewirtungsbeleg, *companies[0].DefaultType)
	assert.True(t, companies[0].IsLearned)

	assert.Equal(t, "Weinhof", companies[1].Name)
	assert.Nil(t, companies[1].DefaultType)
	assert.Equal(t, []string{"weinhof", "weingut huber"}, companies[1].Keywords, "keywords are stored lowercased")
}

func TestSaveLearnedCompany_UpdateMovesToEnd(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveLearnedCompany(ctx, learnedCompany("Alpha", nil, "alpha")))
	require.NoError(t, s.SaveLearnedCompany(ctx, learnedCompany("Beta", nil, "beta")))
	require.NoError(t, s.SaveLearnedCompany(ctx, learnedCompany("Alpha", nil, "alpha", "alpha neu")))

	companies, err := s.ListLearnedCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Beta", companies[0].Name)
	assert.Equal(t, "Alpha", companies[1].Name)
	assert.Equal(t, []string{"alpha", "alpha neu"}, companies[1].Keywords)
}

func TestSaveLearnedCompany_Invalid(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.SaveLearnedCompany(ctx, learnedCompany("", nil, "kw"))
	assert.ErrorIs(t, err, ErrInvalidCompany)

	err = s.SaveLearnedCompany(ctx, learnedCompany("NoKeywords", nil))
	assert.ErrorIs(t, err, ErrInvalidCompany)
}

func TestDeleteLearnedCompany(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveLearnedCompany(ctx, learnedCompany("Alpha", nil, "alpha")))
	require.NoError(t, s.DeleteLearnedCompany(ctx, "Alpha"))

	companies, err := s.ListLearnedCompanies(ctx)
	require.NoError(t, err)
	assert.Empty(t, companies)

	err = s.DeleteLearnedCompany(ctx, "Alpha")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveLearnedCompany(ctx, learnedCompany("Stammcafe", model.TypePtr(model.TypeBewirtungsbeleg), "stammcafe")))
	require.NoError(t, s.SaveLearnedCompany(ctx, learnedCompany("Weinhof", nil, "weinhof")))

	data, err := s.ExportLearnedCompanies(ctx)
	require.NoError(t, err)

	other := newTestStorage(t)
	imported, err := other.ImportLearnedCompanies(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	got, err := other.ListLearnedCompanies(ctx)
	require.NoError(t, err)
	want, err := s.ListLearnedCompanies(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImportLearnedCompanies_LastWinsOnDuplicateNames(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	data := []byte(`[
		{"name": "Alpha", "keywords": ["alt"], "defaultType": null, "isLearned": true},
		{"name": "Alpha", "keywords": ["neu"], "defaultType": "abo", "isLearned": true}
	]`)

	imported, err := s.ImportLearnedCompanies(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	companies, err := s.ListLearnedCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, []string{"neu"}, companies[0].Keywords)
	require.NotNil(t, companies[0].DefaultType)
	assert.Equal(t, model.TypeAbo, *companies[0].DefaultType)
}

func TestImportLearnedCompanies_RejectsGarbage(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.ImportLearnedCompanies(context.Background(), []byte("not json"))
	assert.ErrorIs(t, err, ErrInvalidImport)
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Migrate(context.Background()))
}
