package query

// Searchable document fields. Nested fields use dot notation.
const (
	FieldWord           = "word"
	FieldVariations     = "variations"
	FieldDefinitions    = "definitions"
	FieldNsibidi        = "nsibidi"
	FieldPronunciation  = "pronunciation"
	FieldIsStandardIgbo = "attributes.isStandardIgbo"
	FieldIgbo           = "igbo"
	FieldEnglish        = "english"
)

// Filter is a node of a search filter tree.
type Filter interface {
	filter()
}

// Regex matches a string field, or any element of a string array field,
// case-insensitively against Pattern.
type Regex struct {
	Field   string
	Pattern string
}

// Text is a full-text match on the word text index.
type Text struct {
	Search string
}

// Eq is strict equality.
type Eq struct {
	Field string
	Value any
}

// NotEmpty requires a string field to be different from "".
type NotEmpty struct {
	Field string
}

// MinLength requires a string field to exist and to be longer than Length
// code points.
type MinLength struct {
	Field  string
	Length int
}

// And matches when every child matches. An empty And matches everything.
type And []Filter

// Or matches when any child matches.
type Or []Filter

// Nothing never matches.
type Nothing struct{}

func (Regex) filter()     {}
func (Text) filter()      {}
func (Eq) filter()        {}
func (NotEmpty) filter()  {}
func (MinLength) filter() {}
func (And) filter()       {}
func (Or) filter()        {}
func (Nothing) filter()   {}

// All returns a filter matching every document.
func All() Filter {
	return And{}
}

// IsNothing reports whether f can never match, so callers can skip the
// database round trip.
func IsNothing(f Filter) bool {
	_, ok := f.(Nothing)
	return ok
}

// Combine ANDs base with the attribute filters, flattening nested Ands.
func Combine(base Filter, filters ...Filter) Filter {
	if IsNothing(base) {
		return base
	}

	var out And
	appendAnd := func(f Filter) {
		if and, ok := f.(And); ok {
			out = append(out, and...)
			return
		}
		out = append(out, f)
	}

	appendAnd(base)
	for _, f := range filters {
		appendAnd(f)
	}

	switch len(out) {
	case 0:
		return All()
	case 1:
		return out[0]
	}
	return out
}
