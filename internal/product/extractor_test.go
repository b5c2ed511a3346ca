package product

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

func TestExtract_GatedOffForOtherVendors(t *testing.T) {
	// The text names a known product, but a fuel receipt never gets one.
	text := "Shell Tankstelle\nNetflix Gutscheinkarte 25 EUR"
	_, ok := Extract(text, "Shell", model.TypePtr(model.TypeTankbeleg))
	assert.False(t, ok)

	_, ok = Extract(text, "", nil)
	assert.False(t, ok)
}

func TestExtract_GatedOnByCompany(t *testing.T) {
	got, ok := Extract("Ihre Apple-Rechnung\nNetflix Standard Abo", "Apple", nil)
	assert.True(t, ok)
	assert.Equal(t, "Netflix", got)
}

func TestExtract_GatedOnBySubscriptionType(t *testing.T) {
	got, ok := Extract("Monatsbeitrag Spotify", "Irgendwer", model.TypePtr(model.TypeAbo))
	assert.True(t, ok)
	assert.Equal(t, "Spotify", got)
}

func TestMatchKnownProduct_FirstEntryWins(t *testing.T) {
	// "zattoo premium" sits before the bare "zattoo" entry.
	got, ok := matchKnownProduct("Ihr Kauf: Zattoo Premium Jahresabo")
	assert.True(t, ok)
	assert.Equal(t, "ZattooPremium", got)

	got, ok = matchKnownProduct("Zattoo Monatsabo")
	assert.True(t, ok)
	assert.Equal(t, "Zattoo", got)
}

func TestMatchKnownProduct_NoMatch(t *testing.T) {
	_, ok := matchKnownProduct("völlig unbekanntes produkt")
	assert.False(t, ok)
}

func TestExtractStorefrontItem(t *testing.T) {
	text := "Ihre Rechnung\nArtikel\nPreis: 4,99 EUR\nab 01.05.2024\nSuper Notizblock (Familienfreigabe)\nMwSt enthalten"
	got, ok := extractStorefrontItem(text)
	assert.True(t, ok)
	assert.Equal(t, "SuperNotizblock", got)
}

func TestExtractStorefrontItem_NoAnchor(t *testing.T) {
	_, ok := extractStorefrontItem("Super Notizblock\n4,99")
	assert.False(t, ok)
}

func TestExtractOrderLine(t *testing.T) {
	text := "Google Play\nBestellung: GPA.1234-5678\nWanderkarten-App Premium\nGesamt: 2,99"
	got, ok := extractOrderLine(text)
	assert.True(t, ok)
	assert.Equal(t, "Wanderkarten-App", got)
}

func TestExtractMarketplaceDetails(t *testing.T) {
	text := "Rechnungsdetails\nBeschreibung Menge Stückpreis\nMenge: 1\nZattoo PREMIUM Trial - 1 month\nEUR 9,99"
	got, ok := extractMarketplaceDetails(text)
	assert.True(t, ok)
	assert.Equal(t, "ZattooTrial-1Month", got)
}

func TestExtractMarketplaceDetails_AsinLinesSkipped(t *testing.T) {
	text := "Rechnungsdetails\nBeschreibung\nASIN: B0ABC12345\nEUR 9,99"
	_, ok := extractMarketplaceDetails(text)
	assert.False(t, ok)
}

func TestExtractAppLabel(t *testing.T) {
	got, ok := extractAppLabel("Abo-Bestätigung\nApp  DirEqual\nVerlängert am 01.06.2024")
	assert.True(t, ok)
	assert.Equal(t, "DirEqual", got)

	got, ok = extractAppLabel("App: DirEqual")
	assert.True(t, ok)
	assert.Equal(t, "DirEqual", got)

	got, ok = extractAppLabel("App\nDirEqual")
	assert.True(t, ok)
	assert.Equal(t, "DirEqual", got)

	_, ok = extractAppLabel("Appartement Wien")
	assert.False(t, ok)
}
