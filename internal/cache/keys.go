package cache

import (
	"fmt"
	"strings"

	"github.com/deppfellow/dictionary-api/internal/query"
)

// ExamplePrefix starts every example search key.
const ExamplePrefix = "example-"

// WordKey identifies a word search.
type WordKey struct {
	Term     string
	Quoted   bool
	Page     query.Page
	Dialects bool
	Examples bool
	Strict   bool
	Fields   query.WordFields
}

// String formats the key as <term>-<skip>-<limit>-<dialects>-<examples>,
// quoting the term for English searches. Strict and attribute filters are
// appended only when set so plain searches keep the short form.
func (k WordKey) String() string {
	term := k.Term
	if k.Quoted {
		term = `"` + term + `"`
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s-%d-%d-%t-%t", term, k.Page.Skip, k.Page.Limit, k.Dialects, k.Examples)

	if k.Strict {
		b.WriteString("-strict")
	}
	if k.Fields.IsStandardIgbo {
		b.WriteString("-standard")
	}
	if k.Fields.Nsibidi {
		b.WriteString("-nsibidi")
	}
	if k.Fields.Pronunciation {
		b.WriteString("-pronunciation")
	}

	return b.String()
}

// ExampleKey formats an example search key.
func ExampleKey(term string, page query.Page) string {
	return fmt.Sprintf("%s%s-%d-%d", ExamplePrefix, term, page.Skip, page.Limit)
}

// Purge patterns used after writes.
var (
	// WordWritePatterns drops every cached page: a new word can appear in
	// any word search and brings its own examples.
	WordWritePatterns = []string{"*"}

	// ExampleWritePatterns drops example searches and word pages that
	// embed examples.
	ExampleWritePatterns = []string{ExamplePrefix + "*", "*-true", "*-true-*"}
)
