package ucs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ucsearch/builder"
	"github.com/katalvlaran/ucsearch/ucs"
)

// Random sparse graphs cross-checked against an independent Dijkstra.
func TestSearch_MatchesOracleOnRandomGraphs(t *testing.T) {
	const n = 9
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformIntWeightFn(1, 9)),
		}, builder.RandomSparse(n, 0.3))
		require.NoError(t, err)

		for s := 0; s < n; s++ {
			for d := 0; d < n; d++ {
				from, to := fmt.Sprint(s), fmt.Sprint(d)
				t.Run(fmt.Sprintf("seed%d/%s-%s", seed, from, to), func(t *testing.T) {
					res, err := ucs.Search(g, from, to)
					require.NoError(t, err)
					checkTrace(t, g, res)
				})
			}
		}
	}
}

func TestSearch_DeterministicOnRandomGraph(t *testing.T) {
	build := func() *ucs.Result {
		g, err := builder.BuildGraph([]builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithWeightFn(builder.UniformIntWeightFn(1, 3)),
		}, builder.RandomSparse(12, 0.4))
		require.NoError(t, err)
		res, err := ucs.Search(g, "0", "11")
		require.NoError(t, err)

		return res
	}
	require.Equal(t, build(), build())
}
