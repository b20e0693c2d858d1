package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilteringParams(t *testing.T) {
	assert.Empty(t, FilteringParams(WordFields{}))

	filters := FilteringParams(WordFields{IsStandardIgbo: true, Nsibidi: true, Pronunciation: true})
	assert.Equal(t, []Filter{
		Eq{Field: FieldIsStandardIgbo, Value: true},
		NotEmpty{Field: FieldNsibidi},
		MinLength{Field: FieldPronunciation, Length: PronunciationMinLength},
	}, filters)

	only := FilteringParams(WordFields{Nsibidi: true})
	assert.Equal(t, []Filter{NotEmpty{Field: FieldNsibidi}}, only)
}

func TestSearchIgboTextSearch(t *testing.T) {
	rx := NewRegexps("bia")

	t.Run("keyword without filters", func(t *testing.T) {
		got := SearchIgboTextSearch(IgboSearch{Keyword: "bia", Regex: rx})
		assert.Equal(t, Or{
			Text{Search: "bia"},
			Regex{Field: FieldWord, Pattern: rx.Word},
			Regex{Field: FieldVariations, Pattern: rx.Word},
		}, got)
	})

	t.Run("keyword with filters", func(t *testing.T) {
		filters := FilteringParams(WordFields{IsStandardIgbo: true})
		got := SearchIgboTextSearch(IgboSearch{Keyword: "bia", Regex: rx, Filters: filters})

		and, ok := got.(And)
		require.True(t, ok)
		require.Len(t, and, 2)
		assert.IsType(t, Or{}, and[0])
		assert.Equal(t, Eq{Field: FieldIsStandardIgbo, Value: true}, and[1])
	})

	t.Run("empty keyword without main key matches nothing", func(t *testing.T) {
		got := SearchIgboTextSearch(IgboSearch{Regex: NewRegexps("")})
		assert.True(t, IsNothing(got))
	})

	t.Run("empty keyword with main key lists everything", func(t *testing.T) {
		got := SearchIgboTextSearch(IgboSearch{Regex: NewRegexps(""), IsUsingMainKey: true})
		assert.Equal(t, And{}, got)

		filtered := SearchIgboTextSearch(IgboSearch{
			Regex:          NewRegexps(""),
			IsUsingMainKey: true,
			Filters:        FilteringParams(WordFields{Nsibidi: true}),
		})
		assert.Equal(t, NotEmpty{Field: FieldNsibidi}, filtered)
	})

	t.Run("identical inputs give identical filters", func(t *testing.T) {
		in := IgboSearch{Keyword: "bia", Regex: rx, Filters: FilteringParams(WordFields{Pronunciation: true})}
		assert.Equal(t, SearchIgboTextSearch(in), SearchIgboTextSearch(in))
	})
}

func TestStrictSearchIgbo(t *testing.T) {
	rx := NewRegexps("bia")

	assert.Equal(t, Regex{Field: FieldWord, Pattern: rx.Strict}, StrictSearchIgbo(rx, nil))

	got := StrictSearchIgbo(rx, FilteringParams(WordFields{Nsibidi: true}))
	assert.Equal(t, And{Regex{Field: FieldWord, Pattern: rx.Strict}, NotEmpty{Field: FieldNsibidi}}, got)

	assert.True(t, IsNothing(StrictSearchIgbo(NewRegexps(""), nil)))
}

func TestSearchEnglishRegex(t *testing.T) {
	rx := NewRegexps("run")
	assert.Equal(t, Regex{Field: FieldDefinitions, Pattern: rx.Definitions}, SearchEnglishRegex(rx, nil))
	assert.True(t, IsNothing(SearchEnglishRegex(NewRegexps(""), nil)))
}

func TestSearchExamplesRegex(t *testing.T) {
	rx := NewRegexps("ụlọ")
	assert.Equal(t, Or{
		Regex{Field: FieldIgbo, Pattern: rx.Example},
		Regex{Field: FieldEnglish, Pattern: rx.Example},
	}, SearchExamplesRegex(rx))

	assert.Equal(t, All(), SearchExamplesRegex(NewRegexps("")))
}

func TestCombine_FlattensNestedAnd(t *testing.T) {
	got := Combine(And{Text{Search: "a"}, Text{Search: "b"}}, And{NotEmpty{Field: "x"}}, Eq{Field: "y", Value: 1})
	assert.Equal(t, And{
		Text{Search: "a"},
		Text{Search: "b"},
		NotEmpty{Field: "x"},
		Eq{Field: "y", Value: 1},
	}, got)

	assert.True(t, IsNothing(Combine(Nothing{}, NotEmpty{Field: "x"})))
}
