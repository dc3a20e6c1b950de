// Package errors provides structured error types for valdigraph.
//
// Every failure surfaced by the relation model, the XMCDA codec and the edit
// operations carries a machine-readable [Code]. Callers branch on the code
// rather than on message text:
//
//	if errors.Is(err, errors.ErrCodeOutOfRange) {
//	    // ask the user for a value inside the valuation domain
//	}
//
// # Error Codes
//
// The codes mirror the failure taxonomy of the editor:
//   - DUPLICATE_ID: an action with the same id already exists
//   - OUT_OF_RANGE: a relation value lies outside [min, max]
//   - MALFORMED_DOCUMENT: an interchange document could not be decoded
//   - INVERT_NOT_PERMITTED: the pair is backed by a pairwise comparison table
//   - UNSUPPORTED_OPERATION: the graph type forbids the structural edit
//
// NOT_FOUND, INVALID_INPUT and INTERNAL_ERROR cover unknown ids, bad
// arguments and unexpected failures.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Model errors
	ErrCodeDuplicateID Code = "DUPLICATE_ID"
	ErrCodeOutOfRange  Code = "OUT_OF_RANGE"
	ErrCodeNotFound    Code = "NOT_FOUND"

	// Codec errors
	ErrCodeMalformedDocument Code = "MALFORMED_DOCUMENT"

	// Edit errors
	ErrCodeInvertNotPermitted Code = "INVERT_NOT_PERMITTED"
	ErrCodeUnsupported        Code = "UNSUPPORTED_OPERATION"

	// Generic errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
