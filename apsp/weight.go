// SPDX-License-Identifier: MIT

package apsp

import "math"

const (
	// Inf is the distance of an unreached node.
	Inf int64 = math.MaxInt64

	// NegInf is the floor that diverging negative sums clamp to.
	NegInf int64 = math.MinInt64
)

// Add returns a+b saturated to [NegInf, Inf].
//
// Inf absorbs everything (Inf + NegInf = Inf), then NegInf absorbs finite
// values. Finite sums that overflow clamp to the matching bound.
func Add(a, b int64) int64 {
	if a == Inf || b == Inf {
		return Inf
	}
	if a == NegInf || b == NegInf {
		return NegInf
	}
	s := a + b
	if a > 0 && b > 0 && s < 0 {
		return Inf
	}
	if a < 0 && b < 0 && s >= 0 {
		return NegInf
	}

	return s
}

// Neg returns -a, mapping Inf and NegInf onto each other.
func Neg(a int64) int64 {
	switch a {
	case Inf:
		return NegInf
	case NegInf:
		return Inf
	}

	return -a
}
