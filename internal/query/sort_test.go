package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/dictionary-api/internal/model"
)

func words(values ...string) []model.Word {
	out := make([]model.Word, len(values))
	for i, v := range values {
		out[i] = model.Word{Word: v, Definitions: []string{v + " definition"}}
	}
	return out
}

func headwords(ws []model.Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Word
	}
	return out
}

func TestSortWordsBy_Word(t *testing.T) {
	got := SortWordsBy("bia", words("biara", "bịa", "bia", "abia"), KeyWord)
	assert.Equal(t, []string{"bia", "bịa", "abia", "biara"}, headwords(got))
}

func TestSortWordsBy_Definition(t *testing.T) {
	in := []model.Word{
		{Word: "gba ọsọ", Definitions: []string{"to run quickly"}},
		{Word: "ọsọ", Definitions: []string{"run"}},
		{Word: "empty"},
	}

	got := SortWordsBy("run", in, KeyDefinition)
	assert.Equal(t, []string{"ọsọ", "empty", "gba ọsọ"}, headwords(got))
}

func TestSortWordsBy_StableForTies(t *testing.T) {
	got := SortWordsBy("xx", words("ab", "cd", "ef"), KeyWord)
	assert.Equal(t, []string{"ab", "cd", "ef"}, headwords(got))
}

func TestSortWordsBy_CaseInsensitive(t *testing.T) {
	got := SortWordsBy("BIA", words("bianu", "bia"), KeyWord)
	assert.Equal(t, []string{"bia", "bianu"}, headwords(got))
}
