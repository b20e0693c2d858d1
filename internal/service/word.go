package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/deppfellow/dictionary-api/internal/cache"
	"github.com/deppfellow/dictionary-api/internal/errs"
	"github.com/deppfellow/dictionary-api/internal/lib/job"
	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/query"
	"github.com/deppfellow/dictionary-api/internal/repository"
)

// expandConcurrency bounds the example lookups of one page.
const expandConcurrency = 5

type WordService struct {
	words    repository.WordRepository
	examples repository.ExampleRepository
	cache    *cache.Cache
	jobs     JobQueue
	logger   *zerolog.Logger
}

func NewWordService(
	words repository.WordRepository,
	examples repository.ExampleRepository,
	c *cache.Cache,
	jobs JobQueue,
	logger *zerolog.Logger,
) *WordService {
	return &WordService{
		words:    words,
		examples: examples,
		cache:    c,
		jobs:     jobs,
		logger:   logger,
	}
}

// Search resolves the keyword into a word filter and returns one page.
//
// A quoted keyword searches English definitions; otherwise the Igbo word
// and its variations are searched, strictly when asked. Without the main
// key an empty keyword returns an empty page without touching the store.
func (s *WordService) Search(ctx context.Context, req *model.SearchWordsRequest, isUsingMainKey bool) (*model.WordPage, error) {
	page, err := query.ParsePage(req.Page, req.Range)
	if err != nil {
		return nil, err
	}

	keyword := query.ParseKeyword(req.Keyword)
	regex := query.NewRegexps(keyword.Term)
	fields := query.WordFields{
		IsStandardIgbo: req.IsStandardIgbo,
		Nsibidi:        req.Nsibidi,
		Pronunciation:  req.Pronunciation,
	}
	filters := query.FilteringParams(fields)

	var (
		filter  query.Filter
		sortKey = query.KeyWord
	)
	switch {
	case keyword.Quoted:
		filter = query.SearchEnglishRegex(regex, filters)
		sortKey = query.KeyDefinition
	case req.Strict:
		filter = query.StrictSearchIgbo(regex, filters)
	default:
		filter = query.SearchIgboTextSearch(query.IgboSearch{
			Keyword:        keyword.Term,
			Regex:          regex,
			IsUsingMainKey: isUsingMainKey,
			Filters:        filters,
		})
	}

	if query.IsNothing(filter) {
		return &model.WordPage{Words: []model.Word{}}, nil
	}

	key := cache.WordKey{
		Term:     keyword.Term,
		Quoted:   keyword.Quoted,
		Page:     page,
		Dialects: req.Dialects,
		Examples: req.Examples,
		Strict:   req.Strict && !keyword.Quoted,
		Fields:   fields,
	}.String()

	cacheable := keyword.Term != ""
	if cacheable {
		if cached, ok := s.cache.GetWords(ctx, key); ok {
			return cached, nil
		}
	}

	words, total, err := s.words.FindWords(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	if cacheable {
		words = query.SortWordsBy(keyword.Term, words, sortKey)
	}

	if err := s.expand(ctx, words, req.Dialects, req.Examples); err != nil {
		return nil, err
	}

	result := &model.WordPage{Words: words, ContentLength: total}
	if cacheable {
		s.cache.SetWords(ctx, key, *result)
	}

	return result, nil
}

// GetByID returns a single word, expanded like a search result.
func (s *WordService) GetByID(ctx context.Context, req *model.GetWordRequest) (*model.Word, error) {
	word, err := s.words.GetWordByID(ctx, req.ID)
	if err != nil {
		return nil, repositoryError(err, errs.ErrWordNotFound)
	}

	words := []model.Word{*word}
	if err := s.expand(ctx, words, req.Dialects, req.Examples); err != nil {
		return nil, err
	}
	return &words[0], nil
}

// Create inserts the word, then its nested examples concurrently with a
// back-reference to the word, and finally links the example ids.
func (s *WordService) Create(ctx context.Context, req *model.CreateWordRequest) (*model.Word, error) {
	word, err := s.words.CreateWord(ctx, req.ToWord())
	if err != nil {
		return nil, repositoryError(err, errs.ErrWordNotFound)
	}

	examples := make([]model.Example, len(req.Examples))
	g, gctx := errgroup.WithContext(ctx)
	for i, ex := range req.Examples {
		g.Go(func() error {
			created, err := s.examples.CreateExample(gctx, &model.Example{
				Igbo:            ex.Igbo,
				English:         ex.English,
				AssociatedWords: []string{word.ID},
				Pronunciation:   ex.Pronunciation,
			})
			if err != nil {
				return fmt.Errorf("failed to create example %d of word %s: %w", i, word.ID, err)
			}
			examples[i] = *created
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, repositoryError(err, errs.ErrExampleNotFound)
	}

	ids := make([]string, len(examples))
	for i, ex := range examples {
		ids[i] = ex.ID
	}

	if len(ids) > 0 {
		if err := s.words.SetWordExamples(ctx, word.ID, ids); err != nil {
			return nil, repositoryError(err, errs.ErrWordNotFound)
		}
	}
	word.ExampleIDs = ids
	word.Examples = examples

	if err := s.jobs.EnqueueCachePurge(ctx, cache.WordWritePatterns...); err != nil {
		s.logger.Error().Err(err).Str("word_id", word.ID).Msg("failed to enqueue cache purge")
	}

	err = s.jobs.EnqueueWordCreated(ctx, job.WordCreatedPayload{
		WordID:     word.ID,
		Word:       word.Word,
		WordClass:  word.WordClass,
		Definition: word.FirstDefinition(),
		Examples:   len(examples),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("word_id", word.ID).Msg("failed to enqueue word notification")
	}

	return word, nil
}

// expand attaches examples when requested and drops dialects unless
// requested, in place.
func (s *WordService) expand(ctx context.Context, words []model.Word, dialects, examples bool) error {
	if !dialects {
		for i := range words {
			words[i].Dialects = nil
		}
	}

	if !examples {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(expandConcurrency)
	for i := range words {
		g.Go(func() error {
			found, err := s.examples.GetExamplesByIDs(gctx, words[i].ExampleIDs)
			if err != nil {
				return fmt.Errorf("failed to load examples of word %s: %w", words[i].ID, err)
			}
			if found == nil {
				found = []model.Example{}
			}
			words[i].Examples = found
			return nil
		})
	}
	return g.Wait()
}

// Ping checks the word store.
func (s *WordService) Ping(ctx context.Context) error {
	return s.words.Ping(ctx)
}
