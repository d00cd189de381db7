package talkgroup

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"plain", "Worldwide", 16, "Worldwide"},
		{"accents", "Québec", 16, "Quebec"},
		{"umlaut", "Österreich", 16, "Osterreich"},
		{"punctuation stripped", "UK Call! (QSY)", 16, "UK Call QSY"},
		{"spaces collapsed", "North   America", 16, "North America"},
		{"truncated", "Northeast Regional Wide Area", 16, "Northeast Region"},
		{"keeps hyphen underscore", "TX-OK_Regional", 16, "TX-OK_Regional"},
		{"short limit", "Worldwide", 5, "World"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeName(tc.in, tc.max))
		})
	}
}

func TestSanitizeNameAlwaysASCII(t *testing.T) {
	inputs := []string{"日本 Japan", "Россия", "België", "ham – radio", "Ægir"}
	for _, in := range inputs {
		out := SanitizeName(in, DefaultMaxNameLength)
		assert.LessOrEqual(t, len(out), DefaultMaxNameLength)
		for _, r := range out {
			assert.True(t, r <= unicode.MaxASCII, "non-ASCII rune %q in %q", r, out)
		}
	}
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"North America", "N Ameri"},
		{"South America", "S Ameri"},
		{"North Dakota", "N Dakota"},
		{"United Kingdom", "U K"},
		{"Dominican Republic", "Dom Rep"},
		{"New Zealand", "NZ"},
		{"Rock and Roll", "Rock & Roll"},
		{"Worldwide", "Worldwide"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Abbreviate(tc.in))
	}
}
