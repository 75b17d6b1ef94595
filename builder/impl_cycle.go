package builder

import (
	"fmt"

	"github.com/katalvlaran/ucsearch/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the ring 0–1–…–(n-1)–0.
// With constant weights every node opposite the start is reachable by two
// equal-cost routes, which makes it the canonical tie-break fixture.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
