package dberr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deppfellow/dictionary-api/internal/errs"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, InvalidText, MapCode("22P02"))
	assert.Equal(t, ConnectionFailure, MapCode("08006"))
	assert.Equal(t, Other, MapCode("XX000"))
}

func TestHandleError_PassesHTTPErrorsThrough(t *testing.T) {
	in := errs.ErrWordNotFound()
	assert.Same(t, in, HandleError(in))
}

func TestHandleError_PgUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "words",
		ConstraintName: "words_word_key",
	}

	err := HandleError(fmt.Errorf("insert: %w", pgErr))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "WORD_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Word with this Word already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleError_PgNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		TableName:  "examples",
		ColumnName: "igbo",
	}

	var httpErr *errs.HTTPError
	require.True(t, errors.As(HandleError(pgErr), &httpErr))
	assert.Equal(t, "EXAMPLE_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Igbo is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "igbo", httpErr.Errors[0].Field)
}

func TestHandleError_MongoDuplicateKey(t *testing.T) {
	writeErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: "E11000 duplicate key error collection: dictionary.words index: word_1 dup key: { word: \"bia\" }",
		}},
	}

	var httpErr *errs.HTTPError
	require.True(t, errors.As(HandleError(writeErr), &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "WORD_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Word with this Word already exists", httpErr.Message)
}

func TestHandleError_NoRows(t *testing.T) {
	for _, in := range []error{pgx.ErrNoRows, mongo.ErrNoDocuments} {
		var httpErr *errs.HTTPError
		require.True(t, errors.As(HandleError(in), &httpErr))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	}
}

func TestHandleError_UnknownIsInternal(t *testing.T) {
	var httpErr *errs.HTTPError
	require.True(t, errors.As(HandleError(errors.New("boom")), &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Message)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "word", extractColumnForUniqueViolation("unique_words_word"))
	assert.Equal(t, "igbo", extractColumnForUniqueViolation("examples_igbo_key"))
	assert.Equal(t, "word", extractColumnForUniqueViolation("word_1"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
