// Package errors provides structured error types for pomdeps.
//
// Every failure the core can report carries a [Code] so that the command
// line can print a single diagnostic line and tests can assert on the kind
// of failure without matching message text.
//
// # Error Codes
//
// Codes map one-to-one onto the failure kinds of the pipeline:
//   - FILE_NOT_FOUND: the configuration file does not exist
//   - PARSE_ERROR: malformed configuration document or malformed descriptor XML
//   - INVALID_SHAPE: the configuration document is not a key-value object
//   - MISSING_FIELD: a required configuration field is absent
//   - INVALID_TYPE / INVALID_VALUE: a field has the wrong type or is out of range
//   - INVALID_FORMAT: the package coordinate is not "groupId:artifactId"
//   - FETCH_ERROR: the descriptor could not be retrieved
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingField, "missing required field %q", "version")
//	if errors.Is(err, errors.ErrCodeMissingField) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFetch, origErr, "fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration document errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeParse        Code = "PARSE_ERROR"
	ErrCodeInvalidShape Code = "INVALID_SHAPE"

	// Field validation errors
	ErrCodeMissingField Code = "MISSING_FIELD"
	ErrCodeInvalidType  Code = "INVALID_TYPE"
	ErrCodeInvalidValue Code = "INVALID_VALUE"

	// Coordinate errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Network errors
	ErrCodeFetch Code = "FETCH_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message followed by the cause, without the
// code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
