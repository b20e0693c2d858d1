package query

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Patterns only use syntax understood by RE2, PCRE and PostgreSQL ARE:
// literal characters, bracket classes, ^, $, |, * and groups. Every
// combining mark is written literally inside a bracket class.

// igboMarks are the tone marks, dot-below and dot-above used in Igbo
// orthography, plus the tilde of ñ.
const igboMarks = "\u0323\u0300\u0301\u0304\u0307\u0303"

// optionalMarks follows every expanded letter so decomposed spellings match.
const optionalMarks = "[" + igboMarks + "]*"

// letterVariants maps a base letter onto its precomposed tone and dot forms.
var letterVariants = map[rune]string{
	'a': "aàáā",
	'e': "eèéē",
	'i': "iìíīị",
	'o': "oòóōọ",
	'u': "uùúūụ",
	'm': "mḿ",
	'n': "nǹńṅñ",
}

// tokenStart anchors a match at the start of a value or after a space or
// hyphen.
const tokenStart = `(^|[\s-])`

// Regexps holds the patterns derived from one keyword.
type Regexps struct {
	Keyword     string
	Word        string
	Definitions string
	Example     string
	Strict      string
}

// NewRegexps builds diacritic-insensitive patterns for keyword.
//
// "akwa" yields patterns matching "akwa", "ákwà" and "àkwá"; the Strict
// pattern matches the whole value only.
func NewRegexps(keyword string) Regexps {
	body := expand(keyword)
	loose := tokenStart + body

	return Regexps{
		Keyword:     keyword,
		Word:        loose,
		Definitions: loose,
		Example:     loose,
		Strict:      "^" + body + "$",
	}
}

// Compile returns the Go form of a pattern built by NewRegexps.
func Compile(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + pattern)
}

func expand(keyword string) string {
	var b strings.Builder
	prevExpanded := false

	for _, r := range norm.NFC.String(keyword) {
		if isIgboMark(r) && prevExpanded {
			continue
		}

		if class, ok := variantClass(r); ok {
			b.WriteString(class)
			b.WriteString(optionalMarks)
			prevExpanded = true
			continue
		}

		b.WriteString(regexp.QuoteMeta(string(r)))
		prevExpanded = false
	}

	return b.String()
}

// variantClass returns the bracket class for r when r is an Igbo base letter
// or one of its listed tone/dot forms.
func variantClass(r rune) (string, bool) {
	lower := unicode.ToLower(r)
	base := []rune(norm.NFD.String(string(lower)))[0]

	variants, ok := letterVariants[base]
	if !ok || !strings.ContainsRune(variants, lower) {
		return "", false
	}

	return "[" + variants + "]", true
}

func isIgboMark(r rune) bool {
	return strings.ContainsRune(igboMarks, r)
}
