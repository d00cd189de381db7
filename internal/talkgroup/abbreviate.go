package talkgroup

import (
	"regexp"
	"strings"
)

// abbreviations shorten common words in talkgroup names so that a name plus
// its numeric ID still fits the 16-character channel field. Compound phrases
// come first so "North America" is not mangled by the bare "North" rule.
var abbreviations = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)\bNorth\s+America\b`), "N Ameri"},
	{regexp.MustCompile(`(?i)\bSouth\s+America\b`), "S Ameri"},
	{regexp.MustCompile(`(?i)\bNorth\b`), "N"},
	{regexp.MustCompile(`(?i)\bSouth\b`), "S"},
	{regexp.MustCompile(`(?i)\bAmerica\b`), "Amer"},
	{regexp.MustCompile(`(?i)\bAustralia\b`), "Aust"},
	{regexp.MustCompile(`(?i)\bNew Zealand\b`), "NZ"},
	{regexp.MustCompile(`(?i)\bUnited\b`), "U"},
	{regexp.MustCompile(`(?i)\bKingdom\b`), "K"},
	{regexp.MustCompile(`(?i)\bRepublic\b`), "Rep"},
	{regexp.MustCompile(`(?i)\bDominican\b`), "Dom"},
	{regexp.MustCompile(`(?i)\bAnd\b`), "&"},
}

// Abbreviate shortens a talkgroup name using the substitution table and
// collapses any whitespace runs the replacements leave behind.
func Abbreviate(name string) string {
	result := name
	for _, sub := range abbreviations {
		result = sub.pattern.ReplaceAllString(result, sub.repl)
	}
	return strings.TrimSpace(multiSpace.ReplaceAllString(result, " "))
}
