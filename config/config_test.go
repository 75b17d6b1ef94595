package config_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ucsearch/builder"
	"github.com/katalvlaran/ucsearch/config"
	"github.com/katalvlaran/ucsearch/core"
)

const triangle = `
unit = "min"
nodes = ["Lonely"]

[query]
start = "A"
goal = "C"

[[edges]]
from = "A"
to = "B"
weight = 1

[[edges]]
from = "B"
to = "C"
weight = 2.5

[[edges]]
from = "C"
to = "A"
weight = 5

[[edges]]
from = "B"
to = "A"
weight = 1
`

func TestParse_Triangle(t *testing.T) {
	f, err := config.Parse([]byte(triangle))
	require.NoError(t, err)
	assert.Equal(t, "min", f.Unit)
	assert.Equal(t, config.Query{Start: "A", Goal: "C"}, f.Query)
	assert.Len(t, f.Edges, 4)

	g, err := f.Graph()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "Lonely"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	w, ok := g.Weight("A", "C")
	assert.True(t, ok)
	assert.Equal(t, 5.0, w)
}

func TestParse_AggregatesProblems(t *testing.T) {
	const bad = `
[query]
start = "Nowhere"

[[edges]]
from = ""
to = "B"
weight = 1

[[edges]]
from = "A"
to = "A"
weight = 1

[[edges]]
from = "A"
to = "B"
weight = -3

[[edges]]
from = "C"
to = "D"
weight = 2

[[edges]]
from = "D"
to = "C"
weight = 4
`
	_, err := config.Parse([]byte(bad))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	assert.ErrorIs(t, err, core.ErrAsymmetricWeight)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 5)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("unit = \"km\"\ncolour = \"red\"\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "colour")
}

func TestParse_Syntax(t *testing.T) {
	_, err := config.Parse([]byte("[[edges]\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.toml")
	require.NoError(t, os.WriteFile(path, []byte(triangle), 0o644))

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "A", f.Query.Start)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode_RoundTrip(t *testing.T) {
	g := builder.Romania()
	require.NoError(t, g.AddVertex("Chisinau"))

	var buf bytes.Buffer
	require.NoError(t, config.FromGraph(g, builder.RomaniaUnit).Encode(&buf))

	f, err := config.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, builder.RomaniaUnit, f.Unit)
	assert.Equal(t, []string{"Chisinau"}, f.Nodes)

	back, err := f.Graph()
	require.NoError(t, err)
	assert.Equal(t, g.ToMap(), back.ToMap())
}
