package builder

import (
	"fmt"

	"github.com/katalvlaran/ucsearch/core"
)

// Constructor mutates g according to its topology, using cfg for IDs,
// randomness and weights. Constructors compose: BuildGraph applies them in order
// to the same graph.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph allocates an empty graph, applies every constructor in order and
// returns the result. The first failing constructor aborts the build; its error
// is wrapped with the constructor's method tag.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any error returned by a constructor (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, or a wrapped core error).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1) in index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts {u,v} with the next weight from cfg.weightFn.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
