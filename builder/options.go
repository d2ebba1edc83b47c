// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating builderConfig before
// the matrix is filled.
type BuilderOption func(*builderConfig)

// WithSeed seeds a fresh RNG. Seed 0 selects the fixed default seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightFn overrides the off-diagonal weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithPotentials enables potential shifting with h drawn from [0, max].
// Panics if max < 0. Zero disables shifting.
func WithPotentials(max int64) BuilderOption {
	if max < 0 {
		panic("builder: WithPotentials(max<0)")
	}
	return func(c *builderConfig) {
		c.potentialMax = max
	}
}
