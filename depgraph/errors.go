package depgraph

import (
	"errors"
	"fmt"
)

// White/Gray/Black are the DFS visitation states used by TopologicalSort.
const (
	White = iota // not visited
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrCycleDetected indicates the graph is not acyclic.
	ErrCycleDetected = errors.New("depgraph: cycle detected")

	// ErrUnknownNode indicates a node name absent from the graph.
	ErrUnknownNode = errors.New("depgraph: node not found")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("depgraph: self-referential edge not allowed")

	// ErrEmptyName indicates an empty node name.
	ErrEmptyName = errors.New("depgraph: node name is empty")
)

// graphErrorf wraps err with a call-site tag.
func graphErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
