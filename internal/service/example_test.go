package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/dictionary-api/internal/cache"
	"github.com/deppfellow/dictionary-api/internal/errs"
	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/query"
)

func TestExampleSearch_CachesNonEmptyTerms(t *testing.T) {
	c, mr := newTestCache(t)
	examples := newFakeExamples()
	examples.result = []model.Example{{Base: model.Base{ID: "e1"}, Igbo: "Bịa ebe a"}}
	examples.total = 1
	svc := NewExampleService(examples, c, &fakeJobs{}, testLogger())

	req := &model.SearchExamplesRequest{Keyword: "bia"}
	page, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.ContentLength)

	_, err = svc.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, examples.calls)
	assert.True(t, mr.Exists(cache.Namespace+"example-bia-0-10"))

	regex := query.NewRegexps("bia")
	assert.Equal(t, query.Or{
		query.Regex{Field: query.FieldIgbo, Pattern: regex.Example},
		query.Regex{Field: query.FieldEnglish, Pattern: regex.Example},
	}, examples.filters[0])
}

func TestExampleSearch_EmptyKeywordListsAll(t *testing.T) {
	c, mr := newTestCache(t)
	examples := newFakeExamples()
	svc := NewExampleService(examples, c, &fakeJobs{}, testLogger())

	_, err := svc.Search(context.Background(), &model.SearchExamplesRequest{})
	require.NoError(t, err)

	assert.Equal(t, query.All(), examples.filters[0])
	assert.Empty(t, mr.Keys())
}

func TestExampleGetByID(t *testing.T) {
	c, _ := newTestCache(t)
	examples := newFakeExamples()
	examples.examples["e1"] = model.Example{Base: model.Base{ID: "e1"}, Igbo: "a"}
	svc := NewExampleService(examples, c, &fakeJobs{}, testLogger())

	got, err := svc.GetByID(context.Background(), &model.GetExampleRequest{ID: "e1"})
	require.NoError(t, err)
	assert.Equal(t, "a", got.Igbo)

	_, err = svc.GetByID(context.Background(), &model.GetExampleRequest{ID: "e2"})
	assertHTTPError(t, err, errs.ErrExampleNotFound())
}

func TestExampleCreate_EnqueuesPurge(t *testing.T) {
	c, _ := newTestCache(t)
	jobs := &fakeJobs{}
	svc := NewExampleService(newFakeExamples(), c, jobs, testLogger())

	created, err := svc.Create(context.Background(), &model.CreateExampleRequest{Igbo: "Bịa", English: "Come"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	require.Len(t, jobs.purges, 1)
	assert.Equal(t, cache.ExampleWritePatterns, jobs.purges[0])
}

func TestExampleSearch_KeepsQuotes(t *testing.T) {
	c, mr := newTestCache(t)
	examples := newFakeExamples()
	examples.result = []model.Example{{Base: model.Base{ID: "e1"}, English: "Come here"}}
	examples.total = 1
	svc := NewExampleService(examples, c, &fakeJobs{}, testLogger())

	_, err := svc.Search(context.Background(), &model.SearchExamplesRequest{Keyword: ` "come" `})
	require.NoError(t, err)

	regex := query.NewRegexps(`"come"`)
	assert.Equal(t, query.Or{
		query.Regex{Field: query.FieldIgbo, Pattern: regex.Example},
		query.Regex{Field: query.FieldEnglish, Pattern: regex.Example},
	}, examples.filters[0])
	assert.True(t, mr.Exists(cache.Namespace+`example-"come"-0-10`))
}
