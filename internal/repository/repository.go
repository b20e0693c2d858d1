// Package repository persists words and examples.
//
// Services talk to the WordRepository and ExampleRepository interfaces;
// MongoDB and PostgreSQL implementations translate query.Filter trees into
// their native query languages.
package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/query"
)

var (
	// ErrNotFound is returned when no document has the requested id.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when an id is malformed for the store.
	ErrInvalidID = errors.New("invalid document id")
)

// WordRepository stores words.
type WordRepository interface {
	// FindWords returns one page of matching words and the total match count.
	FindWords(ctx context.Context, filter query.Filter, page query.Page) ([]model.Word, int64, error)
	GetWordByID(ctx context.Context, id string) (*model.Word, error)
	CreateWord(ctx context.Context, word *model.Word) (*model.Word, error)
	SetWordExamples(ctx context.Context, id string, exampleIDs []string) error
	Ping(ctx context.Context) error
}

// ExampleRepository stores examples.
type ExampleRepository interface {
	FindExamples(ctx context.Context, filter query.Filter, page query.Page) ([]model.Example, int64, error)
	GetExampleByID(ctx context.Context, id string) (*model.Example, error)
	// GetExamplesByIDs skips ids that no longer exist.
	GetExamplesByIDs(ctx context.Context, ids []string) ([]model.Example, error)
	CreateExample(ctx context.Context, example *model.Example) (*model.Example, error)
}
