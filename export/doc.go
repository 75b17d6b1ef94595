// Package export turns search traces into files other tools can read.
//
// # Formats
//
//   - [JSON] writes a whole [ucs.Result], steps included.
//   - [DOT] draws the graph with one step's edges coloured: frontier blue,
//     discarded orange (dashed), selected path red and, on the terminal step,
//     the final path green. Visited nodes are greyed and the node being
//     expanded is highlighted.
//   - [SVG] renders DOT source in-process.
//
// # Usage
//
//	dot := export.DOT(g, &res.Steps[i], export.Options{Unit: "km"})
//	svg, err := export.SVG(ctx, dot)
//
// # Dependencies
//
// SVG rendering uses [github.com/goccy/go-graphviz], which embeds Graphviz
// as WebAssembly; no system installation is needed.
package export
