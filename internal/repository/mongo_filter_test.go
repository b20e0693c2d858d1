package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/deppfellow/dictionary-api/internal/query"
)

func TestToBSON_Leaves(t *testing.T) {
	tests := []struct {
		name   string
		filter query.Filter
		want   bson.M
	}{
		{
			name:   "regex is case insensitive",
			filter: query.Regex{Field: query.FieldWord, Pattern: "^a"},
			want:   bson.M{"word": bson.M{"$regex": "^a", "$options": "i"}},
		},
		{
			name:   "text",
			filter: query.Text{Search: "bia"},
			want:   bson.M{"$text": bson.M{"$search": "bia"}},
		},
		{
			name:   "equality",
			filter: query.Eq{Field: query.FieldIsStandardIgbo, Value: true},
			want:   bson.M{"attributes.isStandardIgbo": bson.M{"$eq": true}},
		},
		{
			name:   "not empty excludes null",
			filter: query.NotEmpty{Field: query.FieldNsibidi},
			want:   bson.M{"nsibidi": bson.M{"$nin": bson.A{"", nil}}},
		},
		{
			name:   "nothing",
			filter: query.Nothing{},
			want:   bson.M{"_id": bson.M{"$exists": false}},
		},
		{
			name:   "empty and matches all",
			filter: query.All(),
			want:   bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toBSON(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBSON_MinLength(t *testing.T) {
	got, err := toBSON(query.MinLength{Field: query.FieldPronunciation, Length: 10})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$type": "string"}, got["pronunciation"])
	assert.Equal(t, bson.M{"$gt": bson.A{
		bson.M{"$strLenCP": bson.M{"$ifNull": bson.A{"$pronunciation", ""}}},
		10,
	}}, got["$expr"])
}

func TestToBSON_Composite(t *testing.T) {
	regex := query.NewRegexps("bia")
	filter := query.SearchIgboTextSearch(query.IgboSearch{
		Keyword: "bia",
		Regex:   regex,
		Filters: query.FilteringParams(query.WordFields{IsStandardIgbo: true}),
	})

	got, err := toBSON(filter)
	require.NoError(t, err)

	and, ok := got["$and"].(bson.A)
	require.True(t, ok, "expected $and, got %v", got)
	require.Len(t, and, 2)

	or, ok := and[0].(bson.M)["$or"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$text": bson.M{"$search": "bia"}}, or[0])
	assert.Equal(t, bson.M{"word": bson.M{"$regex": regex.Word, "$options": "i"}}, or[1])
	assert.Equal(t, bson.M{"variations": bson.M{"$regex": regex.Word, "$options": "i"}}, or[2])

	assert.Equal(t, bson.M{"attributes.isStandardIgbo": bson.M{"$eq": true}}, and[1])
}

func TestToBSON_SingleChildAndIsUnwrapped(t *testing.T) {
	got, err := toBSON(query.And{query.Text{Search: "a"}})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$text": bson.M{"$search": "a"}}, got)
}

func TestToBSON_EmptyOrMatchesNothing(t *testing.T) {
	got, err := toBSON(query.Or{})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": bson.M{"$exists": false}}, got)
}

func TestToBSON_UnsupportedFilter(t *testing.T) {
	_, err := toBSON(nil)
	assert.Error(t, err)
}
