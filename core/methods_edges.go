// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns each undirected edge once, From < To, sorted by (From, To).
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"math"
	"sort"
)

// AddEdge creates (or re-weights) the undirected edge {from, to}.
//
// Steps:
//  1. Validate IDs, loops and weight.
//  2. Lock mu, ensure both endpoints exist.
//  3. Store weight in adj[from][to] and the mirror adj[to][from].
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is "".
//   - ErrLoopNotAllowed if from == to.
//   - ErrBadWeight if weight is NaN, ±Inf or ≤ 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	if !validWeight(weight) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ensureVertex(g, from)
	ensureVertex(g, to)
	g.adj[from][to] = weight
	g.adj[to][from] = weight

	return nil
}

// RemoveEdge deletes the undirected edge {from, to}; both endpoints stay.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	bucket, ok := g.adj[from]
	if !ok {
		return ErrVertexNotFound
	}
	if _, ok = g.adj[to]; !ok {
		return ErrVertexNotFound
	}
	if _, ok = bucket[to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[from], to)
	delete(g.adj[to], from)

	return nil
}

// HasEdge reports whether {from, to} is an edge. Symmetric by construction.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of {from, to} and whether the edge exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[from][to]

	return w, ok
}

// Edges returns every edge once, oriented From < To, sorted by (From, To).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for u, bucket := range g.adj {
		for v, w := range bucket {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E| counting each undirected edge once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, bucket := range g.adj {
		n += len(bucket)
	}

	return n / 2
}

func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 1)
}
