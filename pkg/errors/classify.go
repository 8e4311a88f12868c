package errors

import (
	"context"
	"errors"
	"net/http"

	"github.com/matzehuels/autgroup/pkg/graph"
	"github.com/matzehuels/autgroup/pkg/search"
)

// Classify attaches a code to errors produced by the core packages.
// Errors that already carry a code, and nil, are returned unchanged;
// anything unrecognized becomes INTERNAL_ERROR.
func Classify(err error) error {
	if err == nil || GetCode(err) != "" {
		return err
	}

	var ige *graph.InvalidGraphError
	switch {
	case errors.As(err, &ige):
		return Wrap(ErrCodeInvalidGraph, err, "%s", ige.Error())
	case errors.Is(err, graph.ErrInvalidGraph):
		return Wrap(ErrCodeInvalidGraph, err, "invalid graph")
	case errors.Is(err, search.ErrSearchAborted):
		msg := "search aborted"
		if errors.Is(err, context.DeadlineExceeded) {
			msg = "search timed out; the reported group may be incomplete"
		}
		return Wrap(ErrCodeSearchAborted, err, "%s", msg)
	default:
		return Wrap(ErrCodeInternal, err, "internal error")
	}
}

var httpStatus = map[Code]int{
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeInvalidFormat: http.StatusBadRequest,
	ErrCodeInvalidPath:   http.StatusBadRequest,
	ErrCodeTooLarge:      http.StatusRequestEntityTooLarge,
	ErrCodeInvalidGraph:  http.StatusUnprocessableEntity,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeFileNotFound:  http.StatusNotFound,
	// The body still carries the partial group.
	ErrCodeSearchAborted: http.StatusServiceUnavailable,
}

// HTTPStatus maps an error code to the status the API answers with.
// Unknown codes are 500.
func HTTPStatus(code Code) int {
	if s, ok := httpStatus[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
