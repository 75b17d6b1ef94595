package export_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ucsearch/builder"
	"github.com/katalvlaran/ucsearch/export"
	"github.com/katalvlaran/ucsearch/ucs"
)

func aradBucharest(t *testing.T) *ucs.Result {
	t.Helper()
	res, err := ucs.Search(builder.Romania(), "Arad", "Bucharest", ucs.WithUnit(builder.RomaniaUnit))
	require.NoError(t, err)

	return res
}

func TestJSON(t *testing.T) {
	res := aradBucharest(t)

	var buf bytes.Buffer
	require.NoError(t, export.JSON(&buf, res))

	var doc struct {
		Start string  `json:"start"`
		Goal  string  `json:"goal"`
		Unit  string  `json:"unit"`
		State string  `json:"state"`
		Cost  float64 `json:"cost"`
		Path  []string
		Steps []struct {
			Index    int `json:"index"`
			Discards []struct {
				Cost   float64  `json:"cost"`
				Path   []string `json:"path"`
				Reason string   `json:"reason"`
			} `json:"discards"`
			Terminal bool `json:"terminal"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "Arad", doc.Start)
	assert.Equal(t, "km", doc.Unit)
	assert.Equal(t, "goal-found", doc.State)
	assert.Equal(t, 418.0, doc.Cost)
	assert.Equal(t, res.Path, doc.Path)
	require.Len(t, doc.Steps, res.Len())
	assert.True(t, doc.Steps[len(doc.Steps)-1].Terminal)
	require.Len(t, doc.Steps[4].Discards, 1)
	assert.Equal(t, []string{"Arad", "Sibiu", "Oradea"}, doc.Steps[4].Discards[0].Path)
	assert.Equal(t, "infeasible", doc.Steps[4].Discards[0].Reason)

	// the arrow survives unescaped
	assert.Contains(t, buf.String(), "→")
}

func TestJSON_StartIsGoalKeepsZeroCost(t *testing.T) {
	res, err := ucs.Search(builder.Romania(), "Arad", "Arad")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.JSON(&buf, res))

	var doc struct {
		Steps []map[string]json.RawMessage `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Steps, 1)
	assert.JSONEq(t, `["Arad"]`, string(doc.Steps[0]["final_path"]))
	assert.JSONEq(t, `0`, string(doc.Steps[0]["final_cost"]))
}

func TestJSON_NonTerminalStepsOmitFinal(t *testing.T) {
	res := aradBucharest(t)

	var buf bytes.Buffer
	require.NoError(t, export.JSON(&buf, res))

	var doc struct {
		Steps []map[string]json.RawMessage `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	for i, st := range doc.Steps[:len(doc.Steps)-1] {
		assert.NotContains(t, st, "final_cost", "step %d", i)
		assert.NotContains(t, st, "final_path", "step %d", i)
	}
	assert.JSONEq(t, `418`, string(doc.Steps[len(doc.Steps)-1]["final_cost"]))
}

func TestDOT_BareGraph(t *testing.T) {
	dot := export.DOT(builder.Romania(), nil, export.Options{Unit: "km"})

	assert.Contains(t, dot, "graph G {\n")
	assert.Contains(t, dot, `  "Arad" -- "Sibiu" [label="140 km"];`)
	assert.NotContains(t, dot, "color=red")
	assert.NotContains(t, dot, "label=\"Step")
	assert.Equal(t, 23, bytes.Count([]byte(dot), []byte(" -- ")))
}

func TestDOT_StepColours(t *testing.T) {
	res := aradBucharest(t)

	s4 := res.Steps[4]
	dot := export.DOT(builder.Romania(), &s4, export.Options{HideWeights: true})
	assert.Contains(t, dot, `label="Step 4";`)
	// selected wins over the frontier edge it shares
	assert.Contains(t, dot, `"Arad" -- "Zerind" [color=red, penwidth=2.5];`)
	assert.Contains(t, dot, `"Oradea" -- "Zerind" [color=red, penwidth=2.5];`)
	assert.Contains(t, dot, `"Oradea" -- "Sibiu" [color=orange, style=dashed];`)
	assert.Contains(t, dot, `"Lugoj" -- "Timisoara" [color=blue];`)
	assert.Contains(t, dot, `"Bucharest" -- "Giurgiu";`)
	assert.Contains(t, dot, `"Oradea" [label="Oradea", fillcolor=salmon];`)
	assert.Contains(t, dot, `"Sibiu" [label="Sibiu", fillcolor=lightgrey];`)

	last := res.Steps[len(res.Steps)-1]
	dot = export.DOT(builder.Romania(), &last, export.Options{HideWeights: true})
	assert.Contains(t, dot, `"Pitesti" -- "Rimnicu Vilcea" [color=green, penwidth=2.5];`)
}

func TestSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	res := aradBucharest(t)
	dot := export.DOT(builder.Romania(), &res.Steps[2], export.Options{Unit: "km"})

	svg, err := export.SVG(context.Background(), dot)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "Timisoara")
}
