// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, allocate an empty adjacency bucket if absent.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ensureVertex(g, id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// RemoveVertex deletes the vertex and every edge incident to it.
//
// Implementation:
//   - Stage 1: Validate ID and existence.
//   - Stage 2: Drop the mirrored entry from each neighbor's bucket.
//   - Stage 3: Drop the vertex bucket itself.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	bucket, ok := g.adj[id]
	if !ok {
		return ErrVertexNotFound
	}
	for nbr := range bucket {
		delete(g.adj[nbr], id)
	}
	delete(g.adj, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// ensureVertex allocates an adjacency bucket for id. Caller holds the write lock.
func ensureVertex(g *Graph, id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
	}
}
