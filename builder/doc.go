// Package builder constructs ready-made weighted graphs for searches, tests and
// the command line.
//
// Two kinds of constructors are provided:
//
//   - Fixtures: Romania(), the classic 20-city road map (weights in km) that
//     the search trace scenarios are written against.
//   - Generators: Path, Cycle and RandomSparse, composed through BuildGraph and
//     configured with BuilderOption values (WithSeed, WithRand, WithWeightFn,
//     WithIDScheme).
//
// Determinism:
//
//	Every generator adds vertices in index order and samples edges in a fixed
//	(i asc, j asc) order, so a fixed seed always yields the same graph. This is
//	what lets property tests replay a failing case from its seed alone.
//
// Example:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformIntWeightFn(1, 20))},
//	    builder.RandomSparse(12, 0.3),
//	)
package builder
