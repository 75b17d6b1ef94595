package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no WeightFn is given.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and return values > 0.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value ≤ 0.
func ConstantWeightFn(value float64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformIntWeightFn samples integers uniformly in [min, max] and returns them
// as float64, so sums stay exact. Panics unless 1 ≤ min ≤ max.
// With a nil rng it falls back to min.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}
		return float64(min + rng.Intn(max-min+1))
	}
}
