package talkgroup

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// DefaultMaxNameLength is the DM-32 contact name field width.
const DefaultMaxNameLength = 16

var (
	disallowedChars = regexp.MustCompile(`[^A-Za-z0-9 _-]`)
	multiSpace      = regexp.MustCompile(`\s+`)
)

// SanitizeName transliterates a talkgroup name to its closest ASCII
// representation, strips anything outside letters, digits, space, hyphen
// and underscore, collapses runs of whitespace, and truncates the result
// to maxLen characters. The output is always safe for the DM-32 name field.
func SanitizeName(name string, maxLen int) string {
	s := unidecode.Unidecode(name)
	s = disallowedChars.ReplaceAllString(s, "")
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if maxLen > 0 && len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}
