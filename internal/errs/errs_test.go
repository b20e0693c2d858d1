package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewBadRequestError_DefaultAndCustomCode(t *testing.T) {
	err := NewBadRequestError("bad", false, nil, nil, nil)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)

	code := CodeInvalidRange
	err = NewBadRequestError("bad range", true, &code, []FieldError{{Field: "range", Error: "invalid"}}, nil)
	assert.Equal(t, CodeInvalidRange, err.Code)
	assert.True(t, err.Override)
	require.Len(t, err.Errors, 1)
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     *HTTPError
		status  int
		code    string
		message string
	}{
		{"word", ErrWordNotFound(), http.StatusNotFound, CodeWordNotFound, "No word exists with the provided id."},
		{"example", ErrExampleNotFound(), http.StatusNotFound, CodeExampleNotFound, "No example exists with the provided id."},
		{"id", ErrInvalidID(), http.StatusBadRequest, CodeInvalidID, "Provided id is invalid."},
		{"term", ErrNoProvidedTerm(), http.StatusBadRequest, CodeNoProvidedTerm, "No search term has been provided."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrWordNotFound())

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestWithMessage_DoesNotMutate(t *testing.T) {
	base := NewInternalServerError()
	custom := base.WithMessage("custom")

	assert.Equal(t, "custom", custom.Message)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), base.Message)
	assert.Equal(t, base.Code, custom.Code)
}
