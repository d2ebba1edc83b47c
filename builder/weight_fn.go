// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn draws one edge weight. It must consume the RNG deterministically.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always returns value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from the closed range [min, max].
// Negative bounds are accepted; such matrices may contain negative cycles.
// Panics if max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if span <= 1 {
			return min
		}

		return min + rng.Int63n(span)
	}
}
