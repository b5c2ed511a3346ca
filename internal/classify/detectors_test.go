package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newInput(text string) input {
	return input{
		text:      text,
		lowerText: strings.ToLower(text),
		lines:     nonEmptyLines(text),
	}
}

func TestDetectEmailSender_FromSenderLine(t *testing.T) {
	in := newInput("Von: Bergbahnen Kitz GmbH <info@bergbahnen.example>\nIhre Buchung ist bestätigt")
	got, ok := detectEmailSender(in)
	assert.True(t, ok)
	assert.Equal(t, "BergbahnenKitz", got)
}

func TestDetectEmailSender_FromAddressDomain(t *testing.T) {
	in := newInput("Kontakt: noreply@buchbinderei.at")
	got, ok := detectEmailSender(in)
	assert.True(t, ok)
	assert.Equal(t, "Buchbinderei", got)
}

func TestDetectEmailSender_GenericProviderSkipped(t *testing.T) {
	in := newInput("Kontakt: service@gmail.com")
	_, ok := detectEmailSender(in)
	assert.False(t, ok)
}

func TestDetectFrequentName_RepeatedCapitalizedWord(t *testing.T) {
	in := newInput("Holzmann Zimmerei\nQualität seit 1950\nHolzmann dankt für Ihren Auftrag")
	got, ok := detectFrequentName(in)
	assert.True(t, ok)
	assert.Equal(t, "Holzmann", got)
}

func TestDetectFrequentName_TieBreaksLexicographically(t *testing.T) {
	in := newInput("Beta Beta Alpha Alpha")
	got, ok := detectFrequentName(in)
	assert.True(t, ok)
	assert.Equal(t, "Alpha", got)
}

func TestDetectFrequentName_CommonWordsExcluded(t *testing.T) {
	in := newInput("Ihre Ihre Rechnung Rechnung")
	_, ok := detectFrequentName(in)
	assert.False(t, ok)
}

func TestDetectFromHeaderFooter_LegalSuffixLine(t *testing.T) {
	in := newInput("Rechnung Nr. 123\nMusterfirma GmbH\nPosten 1")
	got, ok := detectFromHeaderFooter(in)
	assert.True(t, ok)
	assert.Equal(t, "Musterfirma", got)
}

func TestDetectFromHeaderFooter_StandaloneCapitalizedLine(t *testing.T) {
	in := newInput("ihre rechnung\nSonnenblume Floristik\ndanke")
	got, ok := detectFromHeaderFooter(in)
	assert.True(t, ok)
	assert.Equal(t, "SonnenblumeFloristik", got)
}

func TestCompanyFromLine_Rejections(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "invoice number line", line: "Rechnung Nr. 2024-001"},
		{name: "date line", line: "Datum: 01.01.2024"},
		{name: "page line", line: "Seite 1 von 2"},
		{name: "phone line", line: "Tel: +43 1 234567"},
		{name: "bare email line", line: "office@firma.at"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := companyFromLine(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestDetectFromDomains_MostFrequentWins(t *testing.T) {
	in := newInput("besuchen sie www.schneiderei.at\nmehr unter www.schneiderei.at\nhttps://info.at/kontakt")
	got, ok := detectFromDomains(in)
	assert.True(t, ok)
	assert.Equal(t, "Schneiderei", got)
}

func TestDetectFromDomains_TieKeepsFirstSeen(t *testing.T) {
	in := newInput("www.zuerst.at und www.danach.at")
	got, ok := detectFromDomains(in)
	assert.True(t, ok)
	assert.Equal(t, "Zuerst", got)
}

func TestDetectGenericCompany(t *testing.T) {
	got, ok := detectGenericCompany(newInput("übernachtung im hotel zentral"))
	assert.True(t, ok)
	assert.Equal(t, "Hotel", got)

	_, ok = detectGenericCompany(newInput("unauffälliger text"))
	assert.False(t, ok)
}
