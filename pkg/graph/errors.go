package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph is the sentinel matched by every [InvalidGraphError].
// Callers that only need to classify failures can use errors.Is(err, ErrInvalidGraph).
var ErrInvalidGraph = errors.New("invalid graph")

// InvalidGraphError reports a graph descriptor that cannot be built: a
// negative vertex count or an edge endpoint outside [0, N).
//
// It is returned by [New] before any adjacency is allocated, so no partial
// graph ever reaches the search.
type InvalidGraphError struct {
	N      int    // Declared vertex count
	Edge   int    // Index of the offending edge, -1 when N itself is invalid
	U, V   int    // Endpoints of the offending edge
	Reason string // Short machine-friendly cause: "negative vertex count" or "endpoint out of range"
}

// Error implements the error interface.
func (e *InvalidGraphError) Error() string {
	if e.Edge < 0 {
		return fmt.Sprintf("invalid graph: %s (%d)", e.Reason, e.N)
	}
	return fmt.Sprintf("invalid graph: edge %d (%d,%d) has an endpoint outside [0,%d)", e.Edge, e.U, e.V, e.N)
}

// Is makes errors.Is(err, ErrInvalidGraph) true for any InvalidGraphError.
func (e *InvalidGraphError) Is(target error) bool {
	return target == ErrInvalidGraph
}

const (
	reasonNegative = "negative vertex count"
	reasonRange    = "endpoint out of range"
)
