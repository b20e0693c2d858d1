package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestReadSeedFile(t *testing.T) {
	path := writeSeed(t, `[{"word":"bịa","wordClass":"verb","definitions":["to come"],"examples":[{"igbo":"Bịa ebe a","english":"Come here"}]}]`)

	words, err := readSeedFile(path)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "bịa", words[0].Word)
	assert.Len(t, words[0].Examples, 1)
}

func TestReadSeedFile_Invalid(t *testing.T) {
	_, err := readSeedFile(writeSeed(t, `{"word":"bịa"}`))
	assert.Error(t, err)

	_, err = readSeedFile(writeSeed(t, `[{"word":"bịa"}]`))
	assert.ErrorContains(t, err, `word 0 ("bịa")`)

	_, err = readSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSeed_DryRunPrintsPayloads(t *testing.T) {
	path := writeSeed(t, `[{"word":"bịa","wordClass":"verb","definitions":["to come"]}]`)

	seedDryRun = true
	t.Cleanup(func() { seedDryRun = false })

	var out bytes.Buffer
	require.NoError(t, seed(t.Context(), &out, path))
	assert.Contains(t, out.String(), `"word": "bịa"`)
}
