package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig carries the knobs shared by all constructors.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn func(int) string

	// rng drives stochastic constructors; nil unless WithSeed/WithRand is given.
	rng *rand.Rand

	// weightFn produces each edge weight; must return values > 0.
	weightFn WeightFn
}

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme overrides the vertex naming scheme ("0","1",... by default).
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand installs an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the edge weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}

// PrefixID returns an ID scheme producing prefix+index ("v0", "v1", ...).
func PrefixID(prefix string) func(int) string {
	return func(i int) string { return prefix + strconv.Itoa(i) }
}
