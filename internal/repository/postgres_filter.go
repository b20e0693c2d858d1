package repository

import (
	"fmt"
	"strings"

	"github.com/deppfellow/dictionary-api/internal/query"
)

type columnKind int

const (
	scalarColumn columnKind = iota
	arrayColumn
)

type column struct {
	name string
	kind columnKind
}

// columns maps document fields onto table columns.
var columns = map[string]column{
	query.FieldWord:           {name: "word"},
	query.FieldVariations:     {name: "variations", kind: arrayColumn},
	query.FieldDefinitions:    {name: "definitions", kind: arrayColumn},
	query.FieldNsibidi:        {name: "nsibidi"},
	query.FieldPronunciation:  {name: "pronunciation"},
	query.FieldIsStandardIgbo: {name: "is_standard_igbo"},
	query.FieldIgbo:           {name: "igbo"},
	query.FieldEnglish:        {name: "english"},
}

// sqlFilter accumulates positional arguments while a filter is translated.
type sqlFilter struct {
	args []any
}

func (b *sqlFilter) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// toSQL translates f into a WHERE clause. Arguments are numbered from $1.
func toSQL(f query.Filter) (string, []any, error) {
	b := &sqlFilter{}
	where, err := b.where(f)
	if err != nil {
		return "", nil, err
	}
	return where, b.args, nil
}

func (b *sqlFilter) where(f query.Filter) (string, error) {
	switch f := f.(type) {
	case query.Regex:
		col, err := lookupColumn(f.Field)
		if err != nil {
			return "", err
		}
		if col.kind == arrayColumn {
			return fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(%s) AS v WHERE v ~* %s)", col.name, b.arg(f.Pattern)), nil
		}
		return fmt.Sprintf("%s ~* %s", col.name, b.arg(f.Pattern)), nil

	case query.Text:
		return fmt.Sprintf("search_vector @@ plainto_tsquery('simple', %s)", b.arg(f.Search)), nil

	case query.Eq:
		col, err := lookupColumn(f.Field)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s = %s", col.name, b.arg(f.Value)), nil

	case query.NotEmpty:
		col, err := lookupColumn(f.Field)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s IS NOT NULL AND %s <> '')", col.name, col.name), nil

	case query.MinLength:
		col, err := lookupColumn(f.Field)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("char_length(%s) > %s", col.name, b.arg(f.Length)), nil

	case query.And:
		return b.join([]query.Filter(f), " AND ", "TRUE")

	case query.Or:
		return b.join([]query.Filter(f), " OR ", "FALSE")

	case query.Nothing:
		return "FALSE", nil

	default:
		return "", fmt.Errorf("unsupported filter %T", f)
	}
}

func (b *sqlFilter) join(filters []query.Filter, sep, empty string) (string, error) {
	switch len(filters) {
	case 0:
		return empty, nil
	case 1:
		return b.where(filters[0])
	}

	parts := make([]string, len(filters))
	for i, child := range filters {
		clause, err := b.where(child)
		if err != nil {
			return "", err
		}
		parts[i] = clause
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}

func lookupColumn(field string) (column, error) {
	col, ok := columns[field]
	if !ok {
		return column{}, fmt.Errorf("unknown field %q", field)
	}
	return col, nil
}
