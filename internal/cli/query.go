package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/ucsearch/ucs"
)

// runQuery searches l from → to. Each query gets its own id in the logs.
// Cancelling ctx stops the search after the current step.
func runQuery(ctx context.Context, l *loaded, from, to string) (*ucs.Result, error) {
	logger := loggerFromContext(ctx).With("query", uuid.NewString())
	logger.Debug("starting search", "graph", l.name, "from", from, "to", to)
	prog := newProgress(logger)

	res, err := ucs.Search(l.graph, from, to,
		ucs.WithUnit(l.unit),
		ucs.WithOnStep(func(s ucs.Step) error {
			logger.Debug("step",
				"index", s.Index,
				"selected", s.Selected.String(),
				"frontier", len(s.Active),
				"discards", len(s.Discards))
			return ctx.Err()
		}),
	)
	if err != nil {
		return nil, err
	}

	prog.done("search finished", "state", res.State, "steps", res.Len())
	return res, nil
}

// stepIndex resolves a --step flag value; -1 means the last step.
func stepIndex(res *ucs.Result, step int) (int, error) {
	if step == -1 {
		return res.Len() - 1, nil
	}
	if step < 0 || step >= res.Len() {
		return 0, fmt.Errorf("step %d out of range: trace has steps 0..%d", step, res.Len()-1)
	}
	return step, nil
}
