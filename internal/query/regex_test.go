package query

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegexps_MatchesToneVariants(t *testing.T) {
	rx := NewRegexps("akwa")

	word, err := Compile(rx.Word)
	require.NoError(t, err)

	for _, value := range []string{"akwa", "ákwà", "àkwá", "AKWA", "ákwà ńrí", "ihe-akwa"} {
		assert.True(t, word.MatchString(value), "expected %q to match", value)
	}
	assert.False(t, word.MatchString("nkwa"), "must start at a token boundary")
	assert.False(t, word.MatchString("ekwa"))
}

func TestNewRegexps_MatchesDecomposedValues(t *testing.T) {
	word, err := Compile(NewRegexps("ulo").Word)
	require.NoError(t, err)

	assert.True(t, word.MatchString("ụlọ"))
	assert.True(t, word.MatchString("u\u0323lo\u0323\u0300"))
}

func TestNewRegexps_StrictAnchorsWholeValue(t *testing.T) {
	strict, err := Compile(NewRegexps("bia").Strict)
	require.NoError(t, err)

	assert.True(t, strict.MatchString("bịa"))
	assert.True(t, strict.MatchString("BÌA"))
	assert.False(t, strict.MatchString("bịa ọsọ"))
	assert.False(t, strict.MatchString("abia"))
}

func TestNewRegexps_KeywordWithMarks(t *testing.T) {
	rx := NewRegexps("ńdị")
	word, err := Compile(rx.Word)
	require.NoError(t, err)

	assert.True(t, word.MatchString("ndi"))
	assert.True(t, word.MatchString("ndị"))
	assert.Equal(t, "ńdị", rx.Keyword)
}

func TestNewRegexps_EscapesMetacharacters(t *testing.T) {
	rx := NewRegexps("a.b(c)")
	assert.True(t, strings.Contains(rx.Word, `\.`))
	assert.True(t, strings.Contains(rx.Word, `\(`))

	word, err := Compile(rx.Word)
	require.NoError(t, err)
	assert.True(t, word.MatchString("a.b(c)"))
	assert.False(t, word.MatchString("axb(c)"))
}

func TestNewRegexps_PortableSyntax(t *testing.T) {
	rx := NewRegexps("ọkụkọ")
	for _, pattern := range []string{rx.Word, rx.Strict} {
		assert.NotContains(t, pattern, `\x`)
		assert.NotContains(t, pattern, `\p`)
		assert.NotContains(t, pattern, "(?")
	}
}

// igboAlphabet mixes plain, toned and dotted letters with separators.
var igboAlphabet = []string{
	"a", "b", "ch", "d", "e", "f", "g", "gb", "gh", "gw", "h", "i", "ị", "j", "k",
	"kp", "kw", "l", "m", "n", "ṅ", "nw", "ny", "o", "ọ", "p", "r", "s", "sh",
	"t", "u", "ụ", "v", "w", "y", "z", "á", "à", "é", "è", "í", "ì", "ó", "ò",
	"ú", "ù", "ń", "ǹ", "ḿ", "m̀", " ", "-", "'",
}

func TestNewRegexps_KeywordMatchesItselfProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("keyword matches its own word and strict patterns", prop.ForAll(
		func(idx []int) bool {
			var b strings.Builder
			for _, i := range idx {
				b.WriteString(igboAlphabet[i])
			}
			keyword := b.String()
			if keyword == "" {
				return true
			}

			rx := NewRegexps(keyword)
			word, err := Compile(rx.Word)
			if err != nil {
				return false
			}
			strict, err := Compile(rx.Strict)
			if err != nil {
				return false
			}

			return word.MatchString(keyword) &&
				strict.MatchString(keyword) &&
				strict.MatchString(strings.ToUpper(keyword))
		},
		gen.SliceOf(gen.IntRange(0, len(igboAlphabet)-1)),
	))

	properties.Property("patterns are deterministic", prop.ForAll(
		func(keyword string) bool {
			return NewRegexps(keyword) == NewRegexps(keyword)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
