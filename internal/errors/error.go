package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig       Category = "config"
	CategoryRegistration Category = "registration"
	CategoryNaming       Category = "naming"
	CategorySource       Category = "source"
)

// CharmError is a structured error with a code, suggestions and documentation.
type CharmError struct {
	// Code is a unique error identifier (e.g., "C001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *CharmError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *CharmError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a CharmError with the same code.
func (e *CharmError) Is(target error) bool {
	t, ok := target.(*CharmError)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *CharmError) WithSuggestion(s string) *CharmError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *CharmError) WithDetail(d string) *CharmError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *CharmError) Wrap(err error) *CharmError {
	e.Wrapped = err
	return e
}

// New creates a CharmError from a registered error code.
func New(code string) *CharmError {
	template, ok := registry[code]
	if !ok {
		return &CharmError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &CharmError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new CharmError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *CharmError {
	return &CharmError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a CharmError.
func FromError(err error, code string) *CharmError {
	if err == nil {
		return nil
	}
	var ce *CharmError
	if stderrors.As(err, &ce) {
		return ce
	}
	return New(code).Wrap(err)
}

// HasCode reports whether any error in err's chain carries code.
func HasCode(err error, code string) bool {
	return stderrors.Is(err, &CharmError{Code: code})
}
