// File: entry.go
// Role: Immutable (cost, path) frontier element and its total order.
// Determinism:
//   - Compare orders by cost, then by the node sequence element-wise
//     (a proper prefix sorts first).
//   - Extend always copies; entries never share a backing array.

package ucs

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Entry is a candidate path together with its accumulated cost.
// Treat it as a value: do not mutate Path after construction.
type Entry struct {
	Cost float64  `json:"cost"`
	Path []string `json:"path"`
}

// NewEntry returns an Entry over a private copy of path.
func NewEntry(cost float64, path ...string) Entry {
	return Entry{Cost: cost, Path: slices.Clone(path)}
}

// Dest returns the last node of the path, or "" for an empty path.
func (e Entry) Dest() string {
	if len(e.Path) == 0 {
		return ""
	}

	return e.Path[len(e.Path)-1]
}

// Contains reports whether node already lies on the path.
func (e Entry) Contains(node string) bool {
	return slices.Contains(e.Path, node)
}

// Extend returns a new Entry one hop longer. The receiver is left untouched.
func (e Entry) Extend(node string, weight float64) Entry {
	path := make([]string, len(e.Path), len(e.Path)+1)
	copy(path, e.Path)

	return Entry{Cost: e.Cost + weight, Path: append(path, node)}
}

// Compare returns -1, 0 or +1 ordering e before, equal to, or after o.
func (e Entry) Compare(o Entry) int {
	if c := cmp.Compare(e.Cost, o.Cost); c != 0 {
		return c
	}

	return slices.Compare(e.Path, o.Path)
}

// Equal reports value equality on cost and node sequence.
func (e Entry) Equal(o Entry) bool {
	return e.Cost == o.Cost && slices.Equal(e.Path, o.Path)
}

// Edges returns the consecutive node pairs of the path.
func (e Entry) Edges() []Edge {
	return PathEdges(e.Path)
}

// String renders the entry as "cost: A, B, C".
func (e Entry) String() string {
	return FormatCost(e.Cost) + ": " + strings.Join(e.Path, ", ")
}

// FormatCost prints a cost in its shortest exact decimal form
// (418 rather than 418.000000).
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

// Edge is an undirected pair taken from a path, oriented in walk order.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PathEdges converts a node sequence into its consecutive pairs.
// Paths shorter than two nodes yield an empty (non-nil) slice.
func PathEdges(path []string) []Edge {
	out := make([]Edge, 0, max(len(path)-1, 0))
	for i := 1; i < len(path); i++ {
		out = append(out, Edge{From: path[i-1], To: path[i]})
	}

	return out
}
