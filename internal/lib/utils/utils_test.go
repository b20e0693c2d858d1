package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]any{"word": "bịa"}))
	assert.Equal(t, "{\n\t\"word\": \"bịa\"\n}\n", buf.String())
}

func TestPrintJSON_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PrintJSON(&buf, make(chan int)))
	assert.Empty(t, buf.String())
}
