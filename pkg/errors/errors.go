// Package errors gives autgroup's failures a machine-readable Code.
//
// The CLI prints UserMessage and picks its exit status from the code; the
// HTTP API answers with HTTPStatus(code) and the code itself in the JSON
// body. Errors coming out of the core packages (graph, search) carry no code
// until Classify maps them:
//
//	res, err := runner.Execute(ctx, d, opts)
//	if err = errors.Classify(err); errors.Is(err, errors.ErrCodeSearchAborted) {
//		// res holds a partial group
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"  // malformed request or flag
	ErrCodeInvalidGraph  Code = "INVALID_GRAPH"  // edge endpoint out of range
	ErrCodeInvalidFormat Code = "INVALID_FORMAT" // unknown output format
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeTooLarge      Code = "TOO_LARGE" // over the vertex or body limit

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// ErrCodeSearchAborted means the search was cancelled or timed out and
	// whatever accompanies the error is a lower bound on the group.
	ErrCodeSearchAborted Code = "SEARCH_ABORTED"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED" // e.g. clearing a backend that cannot enumerate keys
)

// Error pairs a Code with a message for people and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// coded finds the outermost *Error in err's chain.
func coded(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	e, ok := coded(err)
	return ok && e.Code == code
}

// GetCode returns the code of err, or "" for an uncoded error.
func GetCode(err error) Code {
	if e, ok := coded(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage is the message shown on the command line: the Error's message
// without code or cause, or the plain text of an uncoded error.
func UserMessage(err error) string {
	if e, ok := coded(err); ok {
		return e.Message
	}
	return err.Error()
}
