package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/dictionary-api/internal/errs"
)

func testDictionary() Dictionary {
	return Dictionary{
		"bịa":   json.RawMessage(`[{"wordClass":"verb","definitions":["come"]}]`),
		"bịanụ": json.RawMessage(`[{"wordClass":"verb","definitions":["come here"]}]`),
		"akwa":  json.RawMessage(`[{"wordClass":"noun","definitions":["egg"]}]`),
	}
}

func TestDictionaryLookup(t *testing.T) {
	svc, err := NewDictionaryService(testDictionary(), 8)
	require.NoError(t, err)

	found, err := svc.Lookup("bia")
	require.NoError(t, err)

	assert.Len(t, found, 2)
	assert.Contains(t, found, "bịa")
	assert.Contains(t, found, "bịanụ")

	again, err := svc.Lookup("bia")
	require.NoError(t, err)
	assert.Equal(t, found, again)
	assert.Equal(t, 1, svc.patterns.Len())
}

func TestDictionaryLookup_StripsPrefix(t *testing.T) {
	svc, err := NewDictionaryService(testDictionary(), 8)
	require.NoError(t, err)

	found, err := svc.Lookup("to akwa")
	require.NoError(t, err)
	assert.Contains(t, found, "akwa")
}

func TestDictionaryLookup_EmptyTerm(t *testing.T) {
	svc, err := NewDictionaryService(testDictionary(), 8)
	require.NoError(t, err)

	_, err = svc.Lookup("  ")
	assertHTTPError(t, err, errs.ErrNoProvidedTerm())
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bịa":[{"definitions":["come"]}]}`), 0o600))

	dict, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Len(t, dict, 1)

	empty, err := LoadDictionary("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = LoadDictionary(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
