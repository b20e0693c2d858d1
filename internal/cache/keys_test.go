package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/dictionary-api/internal/query"
)

func TestWordKey_String(t *testing.T) {
	page := query.Page{Skip: 0, Limit: 10}

	tests := []struct {
		name string
		key  WordKey
		want string
	}{
		{
			name: "igbo search",
			key:  WordKey{Term: "bia", Page: page},
			want: "bia-0-10-false-false",
		},
		{
			name: "english search is quoted",
			key:  WordKey{Term: "run", Quoted: true, Page: query.Page{Skip: 10, Limit: 5}, Dialects: true},
			want: `"run"-10-5-true-false`,
		},
		{
			name: "strict and filters are appended",
			key: WordKey{
				Term:     "bia",
				Page:     page,
				Examples: true,
				Strict:   true,
				Fields:   query.WordFields{IsStandardIgbo: true, Nsibidi: true, Pronunciation: true},
			},
			want: "bia-0-10-false-true-strict-standard-nsibidi-pronunciation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}
}

func TestWordKey_DistinctForDifferentFilters(t *testing.T) {
	base := WordKey{Term: "bia", Page: query.Page{Limit: 10}}
	filtered := base
	filtered.Fields.Nsibidi = true

	assert.NotEqual(t, base.String(), filtered.String())
}

func TestExampleKey(t *testing.T) {
	assert.Equal(t, "example-ụlọ-20-10", ExampleKey("ụlọ", query.Page{Skip: 20, Limit: 10}))
}
