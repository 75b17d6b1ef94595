package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/ucsearch/builder"
	"github.com/katalvlaran/ucsearch/config"
	"github.com/katalvlaran/ucsearch/core"
)

// Default query on the built-in map.
const (
	defaultStart = "Arad"
	defaultGoal  = "Bucharest"
)

var errSourceConflict = errors.New("--graph and --random are mutually exclusive")

// graphSource selects where the graph comes from.
type graphSource struct {
	path    string
	random  int
	seed    int64
	density float64
	maxW    int
}

func (s *graphSource) bind(f *pflag.FlagSet) {
	f.StringVarP(&s.path, "graph", "g", "", "TOML graph file (default: built-in Romania map)")
	f.IntVar(&s.random, "random", 0, "use a random graph with this many nodes")
	f.Int64Var(&s.seed, "seed", 1, "seed for --random")
	f.Float64Var(&s.density, "density", 0.3, "edge probability for --random")
	f.IntVar(&s.maxW, "max-weight", 20, "largest edge weight for --random")
}

// loaded is a graph together with its unit and default query.
type loaded struct {
	graph *core.Graph
	unit  string
	query config.Query
	name  string
}

func (s *graphSource) load(ctx context.Context) (*loaded, error) {
	logger := loggerFromContext(ctx)

	switch {
	case s.path != "" && s.random > 0:
		return nil, errSourceConflict

	case s.path != "":
		f, err := config.Load(s.path)
		if err != nil {
			return nil, err
		}
		g, err := f.Graph()
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded graph file", "path", s.path, "nodes", g.VertexCount(), "edges", g.EdgeCount())
		return &loaded{graph: g, unit: f.Unit, query: f.Query, name: s.path}, nil

	case s.random > 0:
		if s.maxW < 1 {
			return nil, fmt.Errorf("--max-weight must be at least 1, got %d", s.maxW)
		}
		g, err := builder.BuildGraph([]builder.BuilderOption{
			builder.WithSeed(s.seed),
			builder.WithWeightFn(builder.UniformIntWeightFn(1, s.maxW)),
		}, builder.RandomSparse(s.random, s.density))
		if err != nil {
			return nil, fmt.Errorf("random graph: %w", err)
		}
		logger.Debug("generated random graph", "seed", s.seed, "nodes", g.VertexCount(), "edges", g.EdgeCount())
		return &loaded{
			graph: g,
			query: config.Query{Start: "0", Goal: fmt.Sprint(s.random - 1)},
			name:  fmt.Sprintf("random(%d, seed=%d)", s.random, s.seed),
		}, nil

	default:
		return &loaded{
			graph: builder.Romania(),
			unit:  builder.RomaniaUnit,
			query: config.Query{Start: defaultStart, Goal: defaultGoal},
			name:  "romania",
		}, nil
	}
}

// queryFlags are the --from/--to pair shared by search and export.
type queryFlags struct {
	from, to string
}

func (q *queryFlags) bind(f *pflag.FlagSet) {
	f.StringVarP(&q.from, "from", "f", "", "start node (default: the graph's query.start)")
	f.StringVarP(&q.to, "to", "t", "", "goal node (default: the graph's query.goal)")
}

// endpoints resolves the query, flags first, then the source's defaults.
func (l *loaded) endpoints(q queryFlags) (string, string) {
	from, to := q.from, q.to
	if from == "" {
		from = l.query.Start
	}
	if to == "" {
		to = l.query.Goal
	}
	return from, to
}
