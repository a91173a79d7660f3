// Package errors provides structured error types for waypoint.
//
// Every recoverable failure in the annotation graph carries a machine-readable
// [Code] so that the CLI, the HTTP adapter and library callers can branch on
// the kind of failure without string matching:
//
//   - NOT_FOUND: an operation referenced a dot or connection that does not exist
//   - INVALID_OPERATION: a self-connection, a duplicate connection or a negative weight
//   - UNREACHABLE: the route engine found no path between two dots
//   - INVALID_INPUT: malformed names, floors or coordinates
//   - INVALID_CONFIG: configuration or scenario files that fail validation
//   - INTERNAL: unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "dot %s not found", id)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // Handle missing dot
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Graph errors
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeInvalidOperation Code = "INVALID_OPERATION"
	ErrCodeUnreachable      Code = "UNREACHABLE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// NotFound is shorthand for New(ErrCodeNotFound, ...).
func NotFound(format string, args ...any) *Error {
	return New(ErrCodeNotFound, format, args...)
}

// Invalid is shorthand for New(ErrCodeInvalidOperation, ...).
func Invalid(format string, args ...any) *Error {
	return New(ErrCodeInvalidOperation, format, args...)
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
