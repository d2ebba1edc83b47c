// SPDX-License-Identifier: MIT

package builder

// Constructor names used as error prefixes.
const (
	MethodRandom        = "Random"
	MethodNegativeCycle = "NegativeCycle"
	MethodChain         = "Chain"
)

// Size minimums per constructor.
const (
	MinRandomNodes        = 1
	MinNegativeCycleNodes = 2
	MinChainNodes         = 2
)

// Default weight range of Random when no WeightFn is supplied.
const (
	DefaultMinWeight int64 = 0
	DefaultMaxWeight int64 = 10
)

// defaultRNGSeed replaces seed 0.
const defaultRNGSeed int64 = 1
