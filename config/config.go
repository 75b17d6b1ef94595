// Package config loads search graphs and default queries from TOML files.
//
// A file looks like:
//
//	unit = "km"
//	nodes = ["Isolated"]          # optional, vertices without edges
//
//	[query]
//	start = "Arad"
//	goal  = "Bucharest"
//
//	[[edges]]
//	from = "Arad"
//	to = "Sibiu"
//	weight = 140
//
// Edges are undirected; listing a pair twice is allowed only with the same
// weight. Validation reports every problem at once.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/ucsearch/core"
)

// ErrInvalidConfig wraps every validation failure returned by Parse and Load.
var ErrInvalidConfig = errors.New("config: invalid graph file")

// File is the decoded form of a graph file.
type File struct {
	Unit  string   `toml:"unit"`
	Nodes []string `toml:"nodes,omitempty"`
	Query Query    `toml:"query"`
	Edges []Edge   `toml:"edges"`
}

// Query holds the default endpoints; either may be empty.
type Query struct {
	Start string `toml:"start,omitempty"`
	Goal  string `toml:"goal,omitempty"`
}

// Edge is one undirected, weighted connection.
type Edge struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes data and validates it. Unknown keys are reported as errors.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err = f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks every edge and the query, aggregating all problems.
// The returned error matches ErrInvalidConfig.
func (f *File) Validate() error {
	var result *multierror.Error
	known := make(map[string]bool)
	seen := make(map[[2]string]float64)

	for i, n := range f.Nodes {
		if n == "" {
			result = multierror.Append(result, fmt.Errorf("nodes[%d]: %w", i, core.ErrEmptyVertexID))
			continue
		}
		known[n] = true
	}

	for i, e := range f.Edges {
		switch {
		case e.From == "" || e.To == "":
			result = multierror.Append(result, fmt.Errorf("edges[%d]: %w", i, core.ErrEmptyVertexID))
			continue
		case e.From == e.To:
			result = multierror.Append(result, fmt.Errorf("edges[%d] %s: %w", i, e.From, core.ErrLoopNotAllowed))
			continue
		case e.Weight <= 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0):
			result = multierror.Append(result,
				fmt.Errorf("edges[%d] %s–%s weight %v: %w", i, e.From, e.To, e.Weight, core.ErrBadWeight))
		}
		known[e.From], known[e.To] = true, true

		key := [2]string{min(e.From, e.To), max(e.From, e.To)}
		if w, dup := seen[key]; dup && w != e.Weight {
			result = multierror.Append(result,
				fmt.Errorf("edges[%d] %s–%s: %v vs %v: %w", i, e.From, e.To, e.Weight, w, core.ErrAsymmetricWeight))
		} else if !dup {
			seen[key] = e.Weight
		}
	}

	if f.Query.Start != "" && !known[f.Query.Start] {
		result = multierror.Append(result, fmt.Errorf("query.start %q: %w", f.Query.Start, core.ErrVertexNotFound))
	}
	if f.Query.Goal != "" && !known[f.Query.Goal] {
		result = multierror.Append(result, fmt.Errorf("query.goal %q: %w", f.Query.Goal, core.ErrVertexNotFound))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Graph builds the graph described by f. Call Validate first; Parse and
// Load already do.
func (f *File) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, n := range f.Nodes {
		if err := g.AddVertex(n); err != nil {
			return nil, fmt.Errorf("config: node %q: %w", n, err)
		}
	}
	for _, e := range f.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("config: edge %s–%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph describes g as a File. Isolated vertices go to Nodes.
func FromGraph(g *core.Graph, unit string) *File {
	f := &File{Unit: unit}
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d == 0 {
			f.Nodes = append(f.Nodes, v)
		}
	}
	for _, e := range g.Edges() {
		f.Edges = append(f.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return f
}

// Encode writes f as TOML.
func (f *File) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}
