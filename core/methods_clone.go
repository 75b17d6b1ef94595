// File: methods_clone.go
// Role: Deep copies of a graph, as a Graph or as a plain nested map.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy of the Graph. Mutating the clone (for example
// removing edges to build a disconnected variant) never affects g.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	return &Graph{adj: g.ToMap()}
}

// ToMap returns a deep copy of the adjacency as node → {neighbor → weight}.
// Isolated vertices map to an empty, non-nil inner map.
//
// Complexity: O(V + E)
func (g *Graph) ToMap() map[string]map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]float64, len(g.adj))
	for u, bucket := range g.adj {
		inner := make(map[string]float64, len(bucket))
		for v, w := range bucket {
			inner[v] = w
		}
		out[u] = inner
	}

	return out
}
