// Package core provides the thread-safe, in-memory weighted graph that every
// search in this module runs on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected: AddEdge(a, b, w) stores the weight from both endpoints.
//   - Weighted: every edge carries a strictly positive float64 weight
//     (integers such as road distances are represented exactly).
//   - Simple: no self-loops, at most one edge per unordered pair. Adding the
//     same pair twice overwrites its weight, mirroring a plain mapping
//     node → {neighbor → weight}.
//   - Deterministic: Vertices(), Neighbors(), NeighborIDs() and Edges() all
//     return results in sorted order, so traces built on top of the graph are
//     reproducible byte for byte.
//   - Concurrency-safe: a single sync.RWMutex guards the adjacency map, so one
//     graph may serve many independent queries at once.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph                                   // O(1)
//	FromMap(m map[string]map[string]float64) (*Graph, error) // O(V+E), aggregates all violations
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) error  // O(1)
//	RemoveEdge(from, to string) error               // O(1)
//	HasEdge(from, to string) bool                   // O(1)
//	Weight(from, to string) (float64, bool)         // O(1)
//
//	// Query
//	Neighbors(id string) ([]Neighbor, error)  // O(d·log d), sorted by neighbor ID
//	NeighborIDs(id string) ([]string, error)  // O(d·log d)
//	Degree(id string) (int, error)            // O(1)
//	Vertices() []string                       // O(V·log V)
//	Edges() []Edge                            // O(E·log E), each edge once with From < To
//
//	// Copies
//	Clone() *Graph                            // O(V+E)
//	ToMap() map[string]map[string]float64     // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrBadWeight        - weight is not a finite number > 0.
//	ErrLoopNotAllowed   - self-loop requested.
//	ErrAsymmetricWeight - FromMap received a→b and b→a with different weights.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("Arad", "Sibiu", 140)
//	_ = g.AddEdge("Arad", "Zerind", 75)
//	ids, _ := g.NeighborIDs("Arad") // [Sibiu Zerind]
package core
