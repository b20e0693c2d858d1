package query

import (
	"regexp"
	"strings"
)

var (
	quotedKeyword = regexp.MustCompile(`["'].*["']`)
	quoteChars    = regexp.MustCompile(`["']`)
)

// Keyword is a normalized search term.
// Quoted keywords ("run") search English definitions instead of Igbo words.
type Keyword struct {
	Term   string
	Quoted bool
}

// ParseKeyword strips quotes and the English infinitive prefix "to ".
func ParseKeyword(raw string) Keyword {
	k := Keyword{Term: raw}

	if quotedKeyword.MatchString(raw) {
		k.Quoted = true
		k.Term = quoteChars.ReplaceAllString(raw, "")
	}

	k.Term = RemovePrefix(strings.TrimSpace(k.Term))
	return k
}

// RemovePrefix drops a leading "to " so "to eat" searches for "eat".
func RemovePrefix(term string) string {
	if len(term) >= 3 && strings.EqualFold(term[:3], "to ") {
		return strings.TrimSpace(term[3:])
	}
	return term
}
