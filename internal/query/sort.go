package query

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/deppfellow/dictionary-api/internal/model"
)

// SortKey selects what a word is compared against.
type SortKey int

const (
	KeyWord SortKey = iota
	KeyDefinition
)

// SortWordsBy orders words by edit distance between keyword and the sort key,
// closest first. Ties keep their original order.
func SortWordsBy(keyword string, words []model.Word, key SortKey) []model.Word {
	if len(words) < 2 {
		return words
	}

	needle := strings.ToLower(keyword)

	type ranked struct {
		word     model.Word
		distance int
	}
	ranks := make([]ranked, len(words))
	for i, w := range words {
		value := w.Word
		if key == KeyDefinition {
			value = w.FirstDefinition()
		}
		ranks[i] = ranked{word: w, distance: levenshtein.ComputeDistance(needle, strings.ToLower(value))}
	}

	slices.SortStableFunc(ranks, func(a, b ranked) int {
		return a.distance - b.distance
	})

	out := make([]model.Word, len(ranks))
	for i, r := range ranks {
		out[i] = r.word
	}
	return out
}
