package ucs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/ucsearch/core"
)

// Search runs uniform-cost search from start to goal over g and returns the
// full trace.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be vertices of g (ErrInvalidNode, naming the endpoint).
//
// An unreachable goal is not an error: the Result is returned with State
// Exhausted and every step recorded; Result.Err reports ErrNotFound.
// The only error after validation is ErrHookAborted, from WithOnStep.
//
// Options customization:
//
//   - WithUnit(u): print costs as "c u".
//   - WithSeparator(s): line closing each non-terminal step.
//   - WithOnStep(fn): observe each step as it is recorded.
func Search(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %q", ErrInvalidNode, start)
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: goal %q", ErrInvalidNode, goal)
	}

	// 3) Build the runner and drive it to a terminal state
	r := &runner{
		g:        g,
		options:  cfg,
		rec:      recorder{unit: cfg.Unit, sep: cfg.Separator},
		goal:     goal,
		best:     make(ledger),
		visited:  make(map[string]bool),
		discards: newTracker(),
		res:      &Result{Start: start, Goal: goal, Unit: cfg.Unit, State: Searching},
	}
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds all mutable state of one search.
type runner struct {
	g        *core.Graph
	options  Options
	rec      recorder
	goal     string
	frontier frontier
	best     ledger
	visited  map[string]bool
	order    []string // visited nodes in expansion order
	discards *tracker
	res      *Result
}

// init seeds the frontier with the zero-cost start path.
func (r *runner) init(start string) {
	r.frontier.push(NewEntry(0, start))
	r.best[start] = 0
}

// process iterates until GoalFound or Exhausted.
func (r *runner) process() error {
	for {
		if r.frontier.len() == 0 {
			r.res.State = Exhausted
			return nil
		}

		step, err := r.step()
		if err != nil {
			return err
		}
		r.res.Steps = append(r.res.Steps, step)

		if err = r.options.OnStep(step); err != nil {
			return fmt.Errorf("%w at step %d: %w", ErrHookAborted, step.Index, err)
		}
		if step.Terminal {
			return nil
		}
	}
}

// step performs one iteration and returns its snapshot.
func (r *runner) step() (Step, error) {
	view := r.frontier.sorted()
	selected := view[0]

	active := r.filter(view)
	shown := r.discards.drain()

	s := Step{
		Index:          len(r.res.Steps),
		Selected:       selected,
		Active:         active,
		Discards:       shown,
		Expanded:       slices.Clone(r.order),
		SelectedEdges:  selected.Edges(),
		FrontierEdges:  make([]Edge, 0),
		DiscardedEdges: make([]Edge, 0),
	}
	for _, e := range active {
		s.FrontierEdges = append(s.FrontierEdges, e.Edges()...)
	}
	for _, d := range shown {
		// dead-end edges were marked in the step that found them
		if d.Reason != DeadEnd {
			s.DiscardedEdges = append(s.DiscardedEdges, d.Edges()...)
		}
	}
	text := r.rec.body(s.Index, selected, active, shown, s.Expanded)

	if selected.Dest() == r.goal {
		s.Terminal = true
		s.FinalPath = slices.Clone(selected.Path)
		cost := selected.Cost
		s.FinalCost = &cost
		s.Text = text + r.rec.done(selected)

		r.res.State = GoalFound
		r.res.Path = slices.Clone(selected.Path)
		r.res.Cost = selected.Cost

		return s, nil
	}

	s.Text = text + r.rec.separator()
	if err := r.expand(selected, &s); err != nil {
		return Step{}, err
	}
	r.frontier.remove(selected)

	return s, nil
}

// filter partitions the sorted view. Entries ending at a visited node are
// dropped silently; dominated ones are handed to the tracker; the rest are
// kept and returned in order.
func (r *runner) filter(view []Entry) []Entry {
	active := make([]Entry, 0, len(view))
	for _, e := range view {
		switch {
		case r.visited[e.Dest()]:
			continue
		case r.best.dominates(e):
			r.discards.dominated(e)
		default:
			active = append(active, e)
		}
	}
	r.frontier.retain(active)

	return active
}

// expand finalizes the selected destination and relaxes its neighbours in
// ascending id order.
func (r *runner) expand(sel Entry, s *Step) error {
	dest := sel.Dest()
	if r.visited[dest] {
		return nil
	}
	r.visited[dest] = true
	r.order = append(r.order, dest)

	nbrs, err := r.g.Neighbors(dest)
	if err != nil {
		return fmt.Errorf("ucs: expanding %q: %w", dest, err)
	}

	for _, nb := range nbrs {
		if sel.Contains(nb.ID) {
			if len(nbrs) == 1 {
				r.discards.deadEnd(sel)
				s.DiscardedEdges = append(s.DiscardedEdges, sel.Edges()...)
			} else {
				r.discards.register(sel.Extend(nb.ID, nb.Weight))
			}
			continue
		}

		next := sel.Extend(nb.ID, nb.Weight)
		if r.best.blocks(nb.ID, next.Cost) {
			r.discards.infeasible(next)
			continue
		}
		r.best.lower(nb.ID, next.Cost)
		r.frontier.push(next)
	}

	return nil
}
