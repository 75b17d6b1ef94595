package builder

import (
	"fmt"

	"github.com/katalvlaran/ucsearch/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the chain 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
