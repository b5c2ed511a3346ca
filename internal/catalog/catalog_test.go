package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

func indexOf(t *testing.T, name string) int {
	t.Helper()
	for i, c := range Companies() {
		if c.Name == name {
			return i
		}
	}
	t.Fatalf("company %q not in catalog", name)
	return -1
}

// The catalog order is a documented invariant, not an accident of the
// literal: records whose receipts quote another company's legal name must
// come before that company.
func TestCatalogOrdering(t *testing.T) {
	assert.Less(t, indexOf(t, "Avanti"), indexOf(t, "OMV"),
		"Avanti receipts contain 'OMV Downstream GmbH' and must match first")
	assert.Less(t, indexOf(t, "PayLife-VISA"), indexOf(t, "PayLife"))
	assert.Less(t, indexOf(t, "PayLife-Mastercard"), indexOf(t, "PayLife"))
}

func TestCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Companies() {
		require.NotEmpty(t, c.Name)
		assert.False(t, seen[c.Name], "duplicate catalog name %q", c.Name)
		seen[c.Name] = true

		assert.False(t, c.IsLearned, "catalog record %q flagged as learned", c.Name)
		require.NotEmpty(t, c.Keywords, "catalog record %q has no keywords", c.Name)
		for _, kw := range c.Keywords {
			assert.Equal(t, strings.ToLower(kw), kw,
				"keyword %q of %q is not lowercase", kw, c.Name)
		}
		if c.DefaultType != nil {
			_, ok := model.ParseReceiptType(string(*c.DefaultType))
			assert.True(t, ok, "record %q has unknown type", c.Name)
		}
	}
}

func TestLookup_FirstMatchWins(t *testing.T) {
	got, ok := Lookup(Companies(), "avanti station 123\nomv downstream gmbh")
	require.True(t, ok)
	assert.Equal(t, "Avanti", got.Name)

	got, ok = Lookup(Companies(), "ihre paylife mastercard abrechnung")
	require.True(t, ok)
	assert.Equal(t, "PayLife-Mastercard", got.Name)

	_, ok = Lookup(Companies(), "völlig unbekannter händler")
	assert.False(t, ok)
}

func TestLookup_EmptyKeywordNeverMatches(t *testing.T) {
	records := []model.Company{
		{Name: "Broken", Keywords: []string{""}},
		model.NewCompany("Billa", []string{"billa"}, model.TypePtr(model.TypeKassenbon), false),
	}
	got, ok := Lookup(records, "billa filiale wien")
	require.True(t, ok)
	assert.Equal(t, "Billa", got.Name)
}
