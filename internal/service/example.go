package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/deppfellow/dictionary-api/internal/cache"
	"github.com/deppfellow/dictionary-api/internal/errs"
	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/query"
	"github.com/deppfellow/dictionary-api/internal/repository"
)

type ExampleService struct {
	examples repository.ExampleRepository
	cache    *cache.Cache
	jobs     JobQueue
	logger   *zerolog.Logger
}

func NewExampleService(examples repository.ExampleRepository, c *cache.Cache, jobs JobQueue, logger *zerolog.Logger) *ExampleService {
	return &ExampleService{
		examples: examples,
		cache:    c,
		jobs:     jobs,
		logger:   logger,
	}
}

// Search matches the keyword against the Igbo and English sentences.
// An empty keyword lists every example and is never cached.
func (s *ExampleService) Search(ctx context.Context, req *model.SearchExamplesRequest) (*model.ExamplePage, error) {
	page, err := query.ParsePage(req.Page, req.Range)
	if err != nil {
		return nil, err
	}

	// Quotes only switch word searches to English; example terms are kept as typed.
	term := strings.TrimSpace(req.Keyword)
	filter := query.SearchExamplesRegex(query.NewRegexps(term))
	key := cache.ExampleKey(term, page)

	cacheable := term != ""
	if cacheable {
		if cached, ok := s.cache.GetExamples(ctx, key); ok {
			return cached, nil
		}
	}

	examples, total, err := s.examples.FindExamples(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	result := &model.ExamplePage{Examples: examples, ContentLength: total}
	if cacheable {
		s.cache.SetExamples(ctx, key, *result)
	}

	return result, nil
}

func (s *ExampleService) GetByID(ctx context.Context, req *model.GetExampleRequest) (*model.Example, error) {
	example, err := s.examples.GetExampleByID(ctx, req.ID)
	if err != nil {
		return nil, repositoryError(err, errs.ErrExampleNotFound)
	}
	return example, nil
}

func (s *ExampleService) Create(ctx context.Context, req *model.CreateExampleRequest) (*model.Example, error) {
	example, err := s.examples.CreateExample(ctx, &model.Example{
		Igbo:            req.Igbo,
		English:         req.English,
		AssociatedWords: req.AssociatedWords,
		Pronunciation:   req.Pronunciation,
	})
	if err != nil {
		return nil, repositoryError(err, errs.ErrExampleNotFound)
	}

	if err := s.jobs.EnqueueCachePurge(ctx, cache.ExampleWritePatterns...); err != nil {
		s.logger.Error().Err(err).Str("example_id", example.ID).Msg("failed to enqueue cache purge")
	}

	return example, nil
}
