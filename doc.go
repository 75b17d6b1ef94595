// Package ucsearch traces uniform-cost search over small weighted graphs.
//
// The search records one snapshot per expansion, so a run can be replayed
// step by step: which path was selected, which paths stayed on the frontier,
// which were discarded and why, and which nodes were final at that point.
//
// Packages:
//
//	core      undirected weighted Graph, thread-safe, deterministic iteration
//	ucs       the search engine: frontier, best-cost ledger, discard tracking, step recorder
//	builder   graph fixtures: the Romania road map, paths, cycles, seeded random graphs
//	config    TOML graph files with a default query
//	export    JSON traces, Graphviz DOT and SVG renderings of a step
//	cmd       the ucsearch command-line tool
//
// Quick example:
//
//	g := builder.Romania()
//	res, err := ucs.Search(g, "Arad", "Bucharest", ucs.WithUnit("km"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(res.Text())           // full trace
//	fmt.Println(res.Path, res.Cost) // [Arad Sibiu Rimnicu Vilcea Pitesti Bucharest] 418
//
// Replay:
//
//	res.Prefix(i)     the first i steps
//	res.TextUpTo(i)   the trace text a viewer shows at position i
package ucsearch
