package ucs_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/RyanCarrier/dijkstra"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ucsearch/core"
	"github.com/katalvlaran/ucsearch/ucs"
)

// oracle answers shortest distances with an independent Dijkstra
// implementation. Weights must be integral.
type oracle struct {
	g   *dijkstra.Graph
	idx map[string]int
}

func newOracle(g *core.Graph) *oracle {
	o := &oracle{g: dijkstra.NewGraph(), idx: make(map[string]int)}
	for i, v := range g.Vertices() {
		o.idx[v] = i
		o.g.AddVertex(i)
	}
	for _, e := range g.Edges() {
		o.g.AddArc(o.idx[e.From], o.idx[e.To], int64(e.Weight))
		o.g.AddArc(o.idx[e.To], o.idx[e.From], int64(e.Weight))
	}

	return o
}

// dist returns the shortest distance from s to t and whether t is reachable.
func (o *oracle) dist(s, t string) (float64, bool) {
	if s == t {
		return 0, true
	}
	best, err := o.g.Shortest(o.idx[s], o.idx[t])
	if err != nil {
		return 0, false
	}

	return float64(best.Distance), true
}

func distinct(path []string) bool {
	seen := make(map[string]bool, len(path))
	for _, v := range path {
		if seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// checkTrace asserts the properties every trace must satisfy.
func checkTrace(t *testing.T, g *core.Graph, res *ucs.Result) {
	t.Helper()
	o := newOracle(g)

	prevCost := -1.0
	var prevExpanded []string
	for i, s := range res.Steps {
		assert.Equal(t, i, s.Index)
		assert.Contains(t, s.Text, "Step "+strconv.Itoa(i)+"\n")

		// selected cost never decreases
		assert.GreaterOrEqual(t, s.Selected.Cost, prevCost, "step %d", i)
		prevCost = s.Selected.Cost

		// the visited set only grows
		assert.GreaterOrEqual(t, len(s.Expanded), len(prevExpanded), "step %d", i)
		assert.True(t, slices.Equal(prevExpanded, s.Expanded[:len(prevExpanded)]),
			"step %d: %v is not a prefix of %v", i, prevExpanded, s.Expanded)
		prevExpanded = s.Expanded

		// no node is selected twice, no path revisits a node
		assert.NotContains(t, s.Expanded, s.Selected.Dest(), "step %d", i)
		assert.True(t, distinct(s.Selected.Path), "step %d: %v", i, s.Selected.Path)
		for _, e := range s.Active {
			assert.True(t, distinct(e.Path), "step %d: %v", i, e.Path)
		}
		if assert.NotEmpty(t, s.Active, "step %d", i) {
			assert.Equal(t, s.Selected, s.Active[0], "step %d: selected leads the frontier", i)
		}

		// a discarded path never beats the true distance to its endpoint
		for _, d := range s.Discards {
			assert.True(t, distinct(d.Path), "step %d: %v", i, d.Path)
			best, ok := o.dist(res.Start, d.Dest())
			assert.True(t, ok)
			if d.Reason == ucs.Dominated {
				assert.Greater(t, d.Cost, best, "step %d: %v", i, d.Entry)
			} else {
				assert.GreaterOrEqual(t, d.Cost, best, "step %d: %v", i, d.Entry)
			}
		}

		assert.Equal(t, i == len(res.Steps)-1 && res.Found(), s.Terminal, "step %d", i)
	}

	best, reachable := o.dist(res.Start, res.Goal)
	assert.Equal(t, reachable, res.Found())
	if reachable {
		assert.Equal(t, best, res.Cost)
		assert.Equal(t, res.Start, res.Path[0])
		assert.Equal(t, res.Goal, res.Path[len(res.Path)-1])
		sum := 0.0
		for _, e := range ucs.PathEdges(res.Path) {
			w, ok := g.Weight(e.From, e.To)
			assert.True(t, ok, "%v is not an edge", e)
			sum += w
		}
		assert.Equal(t, res.Cost, sum)
	}
}
