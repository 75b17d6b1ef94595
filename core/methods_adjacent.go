// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Both return entries sorted by neighbor ID ascending. Search expansion
//     order, and therefore trace text, depends on this.

package core

import "sort"

// Neighbors returns the adjacency of id as (neighbor, weight) pairs sorted by
// neighbor ID ascending. The returned slice is a fresh copy.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Neighbor, 0, len(bucket))
	for nbr, w := range bucket {
		out = append(out, Neighbor{ID: nbr, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(nbrs))
	for i, n := range nbrs {
		ids[i] = n.ID
	}

	return ids, nil
}
