// Package builder provides helper functions and types for configuring
// arc-weight distributions in digraph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultArcWeight is the weight assigned to each arc when no custom
// WeightFn is provided.
const DefaultArcWeight float64 = 1

// WeightFn produces an arc weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state. Negative weights are
// perfectly legal; mean-cycle analysis feeds on them.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultArcWeight.
// Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultArcWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided
// value. Panics if value is NaN or ±Inf.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Either bound may be negative. Panics unless min ≤ max and both are
// finite. If rng is nil, yields DefaultArcWeight as a deterministic
// fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultArcWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
