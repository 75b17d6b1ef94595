package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/ucsearch/core"
	"github.com/katalvlaran/ucsearch/ucs"
)

// Edge colours, lowest priority first.
const (
	ColorIdle      = "gray70"
	ColorFrontier  = "blue"
	ColorDiscarded = "orange"
	ColorSelected  = "red"
	ColorFinal     = "green"
)

// Options configures DOT generation.
type Options struct {
	// Unit is appended to edge weight labels ("140 km").
	Unit string

	// HideWeights drops edge labels altogether.
	HideWeights bool
}

type edgeKey [2]string

func keyOf(a, b string) edgeKey {
	if b < a {
		a, b = b, a
	}
	return edgeKey{a, b}
}

type edgeStyle struct {
	color  string
	dashed bool
	bold   bool
}

// styles assigns each step edge its colour. Later layers win, in the order
// frontier, discarded, selected, final.
func styles(step *ucs.Step) map[edgeKey]edgeStyle {
	out := make(map[edgeKey]edgeStyle)
	if step == nil {
		return out
	}

	paint := func(edges []ucs.Edge, st edgeStyle) {
		for _, e := range edges {
			out[keyOf(e.From, e.To)] = st
		}
	}
	paint(step.FrontierEdges, edgeStyle{color: ColorFrontier})
	paint(step.DiscardedEdges, edgeStyle{color: ColorDiscarded, dashed: true})
	paint(step.SelectedEdges, edgeStyle{color: ColorSelected, bold: true})
	if step.Terminal {
		paint(ucs.PathEdges(step.FinalPath), edgeStyle{color: ColorFinal, bold: true})
	}

	return out
}

// DOT converts g to an undirected Graphviz graph, colouring the edges of step.
// A nil step draws the bare graph.
func DOT(g *core.Graph, step *ucs.Step, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [color=\"" + ColorIdle + "\", fontsize=10];\n")
	if step != nil {
		fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("Step %d", step.Index))
	}
	buf.WriteString("\n")

	visited := make(map[string]bool)
	current := ""
	if step != nil {
		for _, v := range step.Expanded {
			visited[v] = true
		}
		current = step.Selected.Dest()
	}
	for _, v := range g.Vertices() {
		attrs := []string{fmt.Sprintf("label=%q", v)}
		switch {
		case v == current:
			attrs = append(attrs, "fillcolor=salmon")
		case visited[v]:
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", v, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	painted := styles(step)
	for _, e := range g.Edges() {
		var attrs []string
		if !opts.HideWeights {
			label := ucs.FormatCost(e.Weight)
			if opts.Unit != "" {
				label += " " + opts.Unit
			}
			attrs = append(attrs, fmt.Sprintf("label=%q", label))
		}
		if st, ok := painted[keyOf(e.From, e.To)]; ok {
			attrs = append(attrs, "color="+st.color)
			switch {
			case st.dashed:
				attrs = append(attrs, "style=dashed")
			case st.bold:
				attrs = append(attrs, "penwidth=2.5")
			}
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders DOT source to SVG.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
