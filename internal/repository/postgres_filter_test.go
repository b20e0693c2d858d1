package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/dictionary-api/internal/query"
)

func TestToSQL_Leaves(t *testing.T) {
	tests := []struct {
		name      string
		filter    query.Filter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "scalar regex",
			filter:    query.Regex{Field: query.FieldWord, Pattern: "^a"},
			wantWhere: "word ~* $1",
			wantArgs:  []any{"^a"},
		},
		{
			name:      "array regex",
			filter:    query.Regex{Field: query.FieldDefinitions, Pattern: "go"},
			wantWhere: "EXISTS (SELECT 1 FROM unnest(definitions) AS v WHERE v ~* $1)",
			wantArgs:  []any{"go"},
		},
		{
			name:      "text",
			filter:    query.Text{Search: "bia"},
			wantWhere: "search_vector @@ plainto_tsquery('simple', $1)",
			wantArgs:  []any{"bia"},
		},
		{
			name:      "nested attribute",
			filter:    query.Eq{Field: query.FieldIsStandardIgbo, Value: true},
			wantWhere: "is_standard_igbo = $1",
			wantArgs:  []any{true},
		},
		{
			name:      "not empty",
			filter:    query.NotEmpty{Field: query.FieldNsibidi},
			wantWhere: "(nsibidi IS NOT NULL AND nsibidi <> '')",
		},
		{
			name:      "min length",
			filter:    query.MinLength{Field: query.FieldPronunciation, Length: 10},
			wantWhere: "char_length(pronunciation) > $1",
			wantArgs:  []any{10},
		},
		{
			name:      "all",
			filter:    query.All(),
			wantWhere: "TRUE",
		},
		{
			name:      "nothing",
			filter:    query.Nothing{},
			wantWhere: "FALSE",
		},
		{
			name:      "empty or",
			filter:    query.Or{},
			wantWhere: "FALSE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, err := toSQL(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestToSQL_NumbersArgumentsInOrder(t *testing.T) {
	filter := query.And{
		query.Or{
			query.Text{Search: "bia"},
			query.Regex{Field: query.FieldWord, Pattern: "w"},
			query.Regex{Field: query.FieldVariations, Pattern: "v"},
		},
		query.Eq{Field: query.FieldIsStandardIgbo, Value: true},
	}

	where, args, err := toSQL(filter)
	require.NoError(t, err)

	assert.Equal(t,
		"((search_vector @@ plainto_tsquery('simple', $1) OR word ~* $2 OR "+
			"EXISTS (SELECT 1 FROM unnest(variations) AS v WHERE v ~* $3)) AND is_standard_igbo = $4)",
		where,
	)
	assert.Equal(t, []any{"bia", "w", "v", true}, args)
}

func TestToSQL_UnknownField(t *testing.T) {
	_, _, err := toSQL(query.Regex{Field: "unknown", Pattern: "x"})
	assert.Error(t, err)
}
