package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCompanyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "plain name", input: "Musterfirma", want: "Musterfirma", ok: true},
		{name: "legal suffix stripped", input: "Musterfirma GmbH", want: "Musterfirma", ok: true},
		{name: "punctuation then suffix", input: "ACME Corp.", want: "ACME", ok: true},
		{name: "multi word merges camel case", input: "Bergbahnen Kitz GmbH", want: "BergbahnenKitz", ok: true},
		{name: "umlauts survive", input: "Café Müller", want: "CaféMüller", ok: true},
		{name: "surrounding whitespace and brackets", input: "  <Firma>  ", want: "Firma", ok: true},
		{name: "single word keeps its casing", input: "eBay", want: "eBay", ok: true},
		{name: "too short", input: "X", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "starts with digit", input: "24h Service", ok: false},
		{name: "only punctuation", input: "---", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CleanCompanyName(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCleanCompanyName_TooLong(t *testing.T) {
	long := "A"
	for len(long) <= 50 {
		long += "b"
	}
	_, ok := CleanCompanyName(long)
	assert.False(t, ok)
}

func TestCleanCompanyName_Idempotent(t *testing.T) {
	inputs := []string{
		"Musterfirma GmbH",
		"Bergbahnen Kitz GmbH",
		"ACME Corp.",
		"Café Müller",
		"Wiener Zuckerbäckerei",
		"eBay",
	}
	for _, in := range inputs {
		once, ok := CleanCompanyName(in)
		assert.True(t, ok, in)
		twice, ok := CleanCompanyName(once)
		assert.True(t, ok, once)
		assert.Equal(t, once, twice, "cleaning %q a second time changed the result", in)
	}
}
