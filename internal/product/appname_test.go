package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAppName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "family sharing suffix", input: "Super Notizblock (Familienfreigabe)", want: "SuperNotizblock"},
		{name: "abo suffix", input: "Calm - Abo", want: "Calm"},
		{name: "premium stripped anywhere", input: "Zattoo PREMIUM Trial", want: "ZattooTrial"},
		{name: "plain name untouched", input: "DirEqual", want: "DirEqual"},
		{name: "file name hostile chars removed", input: `Wander/Karte`, want: "WanderKarte"},
		{name: "multi word camel case", input: "monument valley 2", want: "MonumentValley2"},
		{name: "trailing dash trimmed", input: "Feedly -", want: "Feedly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanAppName(tt.input))
		})
	}
}

func TestIsValidAppName(t *testing.T) {
	assert.True(t, isValidAppName("DirEqual"))
	assert.True(t, isValidAppName("OK"))
	assert.False(t, isValidAppName("X"), "too short")
	assert.False(t, isValidAppName("12345"), "all digits")
	assert.False(t, isValidAppName("Apple"), "platform name")
	assert.False(t, isValidAppName("Summe"), "invoice boilerplate")
	assert.False(t, isValidAppName(""))
}
