// Package validation binds and validates request payloads.
//
// Struct tags are checked with go-playground/validator; failures are turned
// into field-level errors the client can act on.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/dictionary-api/internal/errs"
)

// Validatable is implemented by request payloads.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a rule that can't be expressed with tags.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = validator.New()

// Struct runs the shared validator against v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds path, query and body into payload, then validates it.
// payload must be a pointer.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

func bindError(err error) *errs.HTTPError {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return errs.NewBadRequestError(
			fmt.Sprintf("Invalid value for %s", bindingErr.Field),
			true,
			nil,
			[]errs.FieldError{{Field: bindingErr.Field, Error: "has an invalid type"}},
			nil,
		)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return errs.NewBadRequestError(fmt.Sprint(httpErr.Message), false, nil, nil, nil)
	}

	return errs.NewBadRequestError("Invalid request", false, nil, nil, nil)
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), []errs.FieldError{}
	}

	for _, e := range validationErrors {
		field := fieldName(e)
		var msg string

		switch e.Tag() {
		case "required":
			msg = "is required"
		case "min":
			switch e.Type().Kind() {
			case reflect.String:
				msg = fmt.Sprintf("must be at least %s characters", e.Param())
			case reflect.Slice:
				msg = fmt.Sprintf("must contain at least %s items", e.Param())
			default:
				msg = fmt.Sprintf("must be at least %s", e.Param())
			}
		case "max":
			switch e.Type().Kind() {
			case reflect.String:
				msg = fmt.Sprintf("must not exceed %s characters", e.Param())
			case reflect.Slice:
				msg = fmt.Sprintf("must not contain more than %s items", e.Param())
			default:
				msg = fmt.Sprintf("must not exceed %s", e.Param())
			}
		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", e.Param())
		case "url":
			msg = "must be a valid URL"
		case "dive":
			msg = "some items are invalid"
		default:
			if e.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, e.Tag(), e.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, e.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}

// fieldName lowercases the first letter so "WordClass" reports as "wordClass",
// matching the JSON payload.
func fieldName(e validator.FieldError) string {
	name := e.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
