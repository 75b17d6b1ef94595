// File: convert.go
// Role: Building a Graph from a plain nested map, reporting every violation at once.

package core

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// FromMap builds a Graph from node → {neighbor → weight}.
//
// Each listed pair is inserted from both endpoints, so a map that names an
// edge only once is completed symmetrically. Keys without neighbors become
// isolated vertices.
//
// Validation is exhaustive rather than fail-fast: every empty ID, self-loop,
// bad weight and asymmetric pair is collected into a *multierror.Error; each
// element wraps the matching sentinel (ErrEmptyVertexID, ErrLoopNotAllowed,
// ErrBadWeight, ErrAsymmetricWeight), so errors.Is works on the aggregate.
// On any violation the returned graph is nil.
//
// Complexity: O((V + E) log V) due to deterministic key ordering.
func FromMap(m map[string]map[string]float64) (*Graph, error) {
	g := NewGraph()
	var result *multierror.Error

	froms := make([]string, 0, len(m))
	for u := range m {
		froms = append(froms, u)
	}
	sort.Strings(froms)

	for _, u := range froms {
		if err := g.AddVertex(u); err != nil {
			result = multierror.Append(result, fmt.Errorf("vertex %q: %w", u, err))
			continue
		}

		tos := make([]string, 0, len(m[u]))
		for v := range m[u] {
			tos = append(tos, v)
		}
		sort.Strings(tos)

		for _, v := range tos {
			w := m[u][v]
			if back, ok := m[v][u]; ok && back != w {
				// reported once, from the lexicographically smaller endpoint
				if u < v {
					result = multierror.Append(result,
						fmt.Errorf("edge %s–%s: %v vs %v: %w", u, v, w, back, ErrAsymmetricWeight))
				}
				continue
			}
			if _, mirrored := m[v][u]; mirrored && v < u {
				continue // already inserted from v
			}
			if err := g.AddEdge(u, v, w); err != nil {
				result = multierror.Append(result, fmt.Errorf("edge %q–%q (%v): %w", u, v, w, err))
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return g, nil
}
