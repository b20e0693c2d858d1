package model

import (
	"github.com/deppfellow/dictionary-api/internal/validation"
)

// PageQuery is shared by every paginated search.
// Range is a JSON array "[start,end]" and wins over Page.
type PageQuery struct {
	Page  int    `query:"page"`
	Range string `query:"range"`
}

// SearchWordsRequest is bound from GET /api/v1/words.
type SearchWordsRequest struct {
	PageQuery
	Keyword        string `query:"keyword" validate:"max=200"`
	Strict         bool   `query:"strict"`
	Dialects       bool   `query:"dialects"`
	Examples       bool   `query:"examples"`
	IsStandardIgbo bool   `query:"isStandardIgbo"`
	Nsibidi        bool   `query:"nsibidi"`
	Pronunciation  bool   `query:"pronunciation"`
}

func (r *SearchWordsRequest) Validate() error {
	return validation.Struct(r)
}

// GetWordRequest is bound from GET /api/v1/words/:id.
type GetWordRequest struct {
	ID       string `param:"id" validate:"required"`
	Dialects bool   `query:"dialects"`
	Examples bool   `query:"examples"`
}

func (r *GetWordRequest) Validate() error {
	return validation.Struct(r)
}

// CreateExampleRequest is the body of POST /api/v1/examples and the nested
// examples of a new word.
type CreateExampleRequest struct {
	Igbo            string   `json:"igbo" validate:"required,max=2000"`
	English         string   `json:"english" validate:"max=2000"`
	AssociatedWords []string `json:"associatedWords" validate:"max=50"`
	Pronunciation   string   `json:"pronunciation"`
}

func (r *CreateExampleRequest) Validate() error {
	return validation.Struct(r)
}

// CreateWordRequest is the body of POST /api/v1/words.
type CreateWordRequest struct {
	Word          string                 `json:"word" validate:"required,max=200"`
	WordClass     string                 `json:"wordClass" validate:"required"`
	Definitions   []string               `json:"definitions" validate:"required,min=1,dive,required"`
	Variations    []string               `json:"variations"`
	Stems         []string               `json:"stems"`
	Dialects      []Dialect              `json:"dialects"`
	Pronunciation string                 `json:"pronunciation"`
	Nsibidi       string                 `json:"nsibidi"`
	Attributes    WordAttributes         `json:"attributes"`
	Examples      []CreateExampleRequest `json:"examples" validate:"max=50,dive"`
}

func (r *CreateWordRequest) Validate() error {
	return validation.Struct(r)
}

// ToWord copies the word fields of the request. Examples are created
// separately and linked afterwards.
func (r *CreateWordRequest) ToWord() *Word {
	return &Word{
		Word:          r.Word,
		WordClass:     r.WordClass,
		Definitions:   r.Definitions,
		Variations:    r.Variations,
		Stems:         r.Stems,
		Dialects:      r.Dialects,
		Pronunciation: r.Pronunciation,
		Nsibidi:       r.Nsibidi,
		Attributes:    r.Attributes,
	}
}

// SearchExamplesRequest is bound from GET /api/v1/examples.
type SearchExamplesRequest struct {
	PageQuery
	Keyword string `query:"keyword" validate:"max=200"`
}

func (r *SearchExamplesRequest) Validate() error {
	return validation.Struct(r)
}

// GetExampleRequest is bound from GET /api/v1/examples/:id.
type GetExampleRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetExampleRequest) Validate() error {
	return validation.Struct(r)
}

// LookupRequest is bound from GET /api/v1/search/words.
type LookupRequest struct {
	Keyword string `query:"keyword"`
}

func (r *LookupRequest) Validate() error {
	return nil
}

// WordPage and ExamplePage are the cached shape of a search result.
type WordPage struct {
	Words         []Word `json:"words"`
	ContentLength int64  `json:"contentLength"`
}

type ExamplePage struct {
	Examples      []Example `json:"examples"`
	ContentLength int64     `json:"contentLength"`
}
