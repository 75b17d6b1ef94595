// File: types.go
// Role: Graph, Edge, Neighbor types, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards adj; every exported method takes it (read or write) exactly once.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that is not a finite number greater than zero.
	ErrBadWeight = errors.New("core: edge weight must be a finite number > 0")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAsymmetricWeight indicates that both directions of one undirected edge
	// were given with different weights.
	ErrAsymmetricWeight = errors.New("core: asymmetric edge weight")
)

// Edge is a read-only snapshot of one undirected edge.
// Edges() reports every edge once, with From < To lexicographically.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Neighbor is one entry of a vertex's adjacency: the adjacent vertex and the
// weight of the connecting edge.
type Neighbor struct {
	ID     string
	Weight float64
}

// Graph is an undirected, weighted, simple graph.
//
// adj[u][v] == adj[v][u] == weight for every edge {u,v}; every vertex owns a
// (possibly empty) bucket in adj, so vertex membership is key membership.
type Graph struct {
	mu  sync.RWMutex
	adj map[string]map[string]float64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]float64)}
}
