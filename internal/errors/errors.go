// Package errors defines the typed errors ftb uses to map failures to exit
// codes and user-facing hints.
package errors

import (
	"errors"
	"fmt"
)

// UserError represents a failure caused by user input: a missing file, an
// oversized input, a bad flag value. Suggestion can provide a concrete fix.
type UserError struct {
	Message    string
	Suggestion string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a UserError with a message and optional suggestion.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// WrapUserError wraps an underlying error with a user-facing message and suggestion.
func WrapUserError(err error, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Err: err}
}

// ValidationError represents an invalid flag or option value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// EncodingError indicates the input is not valid UTF-8. ftb assumes text
// input, so this is fatal rather than recovered per table.
type EncodingError struct {
	Source string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8 text", e.Source)
}

// CheckError indicates a --check run found input that is not already
// formatted. It maps to its own exit code so scripts can tell "needs
// formatting" apart from real failures.
type CheckError struct {
	Source string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s is not formatted", e.Source)
}

// Type checkers
func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsEncodingError(err error) bool {
	var e *EncodingError
	return errors.As(err, &e)
}

func IsCheckError(err error) bool {
	var e *CheckError
	return errors.As(err, &e)
}

// UserSuggestion returns the suggestion attached to err, if any.
func UserSuggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	return ""
}
