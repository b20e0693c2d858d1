package service

import (
	"fmt"

	"github.com/deppfellow/dictionary-api/internal/lib/job"
	"github.com/deppfellow/dictionary-api/internal/repository"
	"github.com/deppfellow/dictionary-api/internal/server"
)

type Services struct {
	Auth       *AuthService
	Job        *job.JobService
	Words      *WordService
	Examples   *ExampleService
	Dictionary *DictionaryService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	entries, err := LoadDictionary(s.Config.Dictionary.Path)
	if err != nil {
		return nil, err
	}

	dictionary, err := NewDictionaryService(entries, s.Config.Dictionary.PatternCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create dictionary service: %w", err)
	}

	return &Services{
		Auth:       NewAuthService(s),
		Job:        s.Job,
		Words:      NewWordService(repos.Words, repos.Examples, s.Cache, s.Job, s.Logger),
		Examples:   NewExampleService(repos.Examples, s.Cache, s.Job, s.Logger),
		Dictionary: dictionary,
	}, nil
}
