package errs

import (
	"net/http"
)

// Machine-readable codes used by the dictionary endpoints.
const (
	CodeWordNotFound     = "WORD_NOT_FOUND"
	CodeExampleNotFound  = "EXAMPLE_NOT_FOUND"
	CodeInvalidID        = "INVALID_ID"
	CodeInvalidPage      = "INVALID_PAGE"
	CodeInvalidRange     = "INVALID_RANGE"
	CodeNoProvidedTerm   = "NO_PROVIDED_TERM"
	CodeRateLimitReached = "RATE_LIMIT_REACHED"
)

func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

func NewForbiddenError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusForbidden)),
		Message:  message,
		Status:   http.StatusForbidden,
		Override: override,
	}
}

// NewBadRequestError creates a 400. A nil code defaults to "BAD_REQUEST".
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404. A nil code defaults to "NOT_FOUND".
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     CodeRateLimitReached,
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewInternalServerError never carries the underlying error message.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
}

func ErrWordNotFound() *HTTPError {
	code := CodeWordNotFound
	return NewNotFoundError("No word exists with the provided id.", true, &code)
}

func ErrExampleNotFound() *HTTPError {
	code := CodeExampleNotFound
	return NewNotFoundError("No example exists with the provided id.", true, &code)
}

func ErrInvalidID() *HTTPError {
	code := CodeInvalidID
	return NewBadRequestError("Provided id is invalid.", true, &code, nil, nil)
}

func ErrNoProvidedTerm() *HTTPError {
	code := CodeNoProvidedTerm
	return NewBadRequestError("No search term has been provided.", true, &code, nil, nil)
}
