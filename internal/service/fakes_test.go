package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/dictionary-api/internal/cache"
	"github.com/deppfellow/dictionary-api/internal/errs"
	"github.com/deppfellow/dictionary-api/internal/lib/job"
	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/query"
	"github.com/deppfellow/dictionary-api/internal/repository"
)

type fakeWords struct {
	mu       sync.Mutex
	words    map[string]model.Word
	result   []model.Word
	total    int64
	calls    int
	filters  []query.Filter
	pages    []query.Page
	nextID   int
	examples map[string][]string
}

func newFakeWords() *fakeWords {
	return &fakeWords{words: map[string]model.Word{}, examples: map[string][]string{}}
}

func (f *fakeWords) FindWords(_ context.Context, filter query.Filter, page query.Page) ([]model.Word, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.filters = append(f.filters, filter)
	f.pages = append(f.pages, page)
	return append([]model.Word(nil), f.result...), f.total, nil
}

func (f *fakeWords) GetWordByID(_ context.Context, id string) (*model.Word, error) {
	if id == "bad" {
		return nil, repository.ErrInvalidID
	}
	w, ok := f.words[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (f *fakeWords) CreateWord(_ context.Context, word *model.Word) (*model.Word, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	created := *word
	created.ID = fmt.Sprintf("w%d", f.nextID)
	f.words[created.ID] = created
	return &created, nil
}

func (f *fakeWords) SetWordExamples(_ context.Context, id string, exampleIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.words[id]; !ok {
		return repository.ErrNotFound
	}
	f.examples[id] = exampleIDs
	return nil
}

func (f *fakeWords) Ping(context.Context) error { return nil }

type fakeExamples struct {
	mu       sync.Mutex
	examples map[string]model.Example
	result   []model.Example
	total    int64
	calls    int
	filters  []query.Filter
	nextID   int
	err      error
}

func newFakeExamples() *fakeExamples {
	return &fakeExamples{examples: map[string]model.Example{}}
}

func (f *fakeExamples) FindExamples(_ context.Context, filter query.Filter, _ query.Page) ([]model.Example, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.filters = append(f.filters, filter)
	return f.result, f.total, nil
}

func (f *fakeExamples) GetExampleByID(_ context.Context, id string) (*model.Example, error) {
	e, ok := f.examples[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (f *fakeExamples) GetExamplesByIDs(_ context.Context, ids []string) ([]model.Example, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Example{}
	for _, id := range ids {
		if e, ok := f.examples[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExamples) CreateExample(_ context.Context, example *model.Example) (*model.Example, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	created := *example
	created.ID = fmt.Sprintf("e%d", f.nextID)
	f.examples[created.ID] = created
	return &created, nil
}

type fakeJobs struct {
	purges  [][]string
	created []job.WordCreatedPayload
}

func (f *fakeJobs) EnqueueCachePurge(_ context.Context, patterns ...string) error {
	f.purges = append(f.purges, patterns)
	return nil
}

func (f *fakeJobs) EnqueueWordCreated(_ context.Context, p job.WordCreatedPayload) error {
	f.created = append(f.created, p)
	return nil
}

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return cache.New(client, time.Hour, nil, nil), mr
}

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func assertHTTPError(t *testing.T, err error, want *errs.HTTPError) {
	t.Helper()

	var httpErr *errs.HTTPError
	if assert.ErrorAs(t, err, &httpErr) {
		assert.Equal(t, want.Code, httpErr.Code)
		assert.Equal(t, want.Status, httpErr.Status)
		assert.Equal(t, want.Message, httpErr.Message)
	}
}
