// File: types.go
// Role: Graph and Edge types, sentinel errors, NewGraph constructor.
// Errors:
//   - ErrEmptyVertexID  - vertex ID is the empty string.
//   - ErrVertexNotFound - requested vertex does not exist.
//   - ErrEdgeNotFound   - requested edge does not exist.
//   - ErrSelfLoop       - attempt to add an edge from a vertex to itself.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates a self-loop was attempted; simple graphs forbid them.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Edge is an undirected edge between two vertices, stored in canonical
// orientation: U is always lexicographically smaller than V.
type Edge struct {
	// U is the smaller endpoint ID.
	U string

	// V is the larger endpoint ID.
	V string
}

// NewEdge returns the canonical Edge for the unordered pair {u, v}.
func NewEdge(u, v string) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Graph is an undirected, unweighted, simple graph.
//
// Storage is an adjacency-set map guarded by a single RWMutex; all getters
// return sorted copies, so iteration order is deterministic and callers can
// never alias internal state.
type Graph struct {
	mu sync.RWMutex

	// adj maps each vertex ID to the set of its neighbor IDs.
	// An isolated vertex maps to an empty (non-nil) set.
	adj map[string]map[string]struct{}

	// edgeCount tracks the number of undirected edges (each counted once).
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adj: make(map[string]map[string]struct{}),
	}
}
