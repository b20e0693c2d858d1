package service

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/deppfellow/dictionary-api/internal/errs"
	"github.com/deppfellow/dictionary-api/internal/query"
)

// Dictionary maps a headword to its raw entries as stored in the bundled
// JSON file.
type Dictionary map[string]json.RawMessage

// LoadDictionary reads a dictionary file. An empty path yields an empty
// dictionary.
func LoadDictionary(path string) (Dictionary, error) {
	if path == "" {
		return Dictionary{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	var dict Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary %s: %w", path, err)
	}
	return dict, nil
}

// DictionaryService looks headwords up in the bundled dictionary.
type DictionaryService struct {
	entries  Dictionary
	patterns *lru.Cache[string, *regexp.Regexp]
}

func NewDictionaryService(entries Dictionary, patternCacheSize int) (*DictionaryService, error) {
	patterns, err := lru.New[string, *regexp.Regexp](patternCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create pattern cache: %w", err)
	}

	return &DictionaryService{
		entries:  entries,
		patterns: patterns,
	}, nil
}

// Lookup returns every headword matching the keyword, ignoring tone marks.
func (s *DictionaryService) Lookup(keyword string) (Dictionary, error) {
	term := query.ParseKeyword(keyword).Term
	if term == "" {
		return nil, errs.ErrNoProvidedTerm()
	}

	pattern, err := s.pattern(term)
	if err != nil {
		return nil, err
	}

	found := Dictionary{}
	for headword, entry := range s.entries {
		if pattern.MatchString(headword) {
			found[headword] = entry
		}
	}
	return found, nil
}

func (s *DictionaryService) pattern(term string) (*regexp.Regexp, error) {
	if re, ok := s.patterns.Get(term); ok {
		return re, nil
	}

	re, err := query.Compile(query.NewRegexps(term).Word)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern for %q: %w", term, err)
	}
	s.patterns.Add(term, re)
	return re, nil
}
