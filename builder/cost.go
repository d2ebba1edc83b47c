// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/longpath/matrix"
)

// Random returns a complete n×n cost matrix with zero diagonal and
// off-diagonal weights drawn row by row from the configured WeightFn.
// With WithPotentials(p), potentials h ∈ [0,p] are drawn first and every
// weight becomes w(u,v) + h(u) - h(v).
//
// Errors: ErrTooFewVertices if n < 1.
func Random(n int, opts ...BuilderOption) (*matrix.Cost, error) {
	if n < MinRandomNodes {
		return nil, builderErrorf(MethodRandom, ErrTooFewVertices, "n must be ≥ %d, got %d", MinRandomNodes, n)
	}
	cfg := newBuilderConfig(opts...)

	h := make([]int64, n)
	if cfg.potentialMax > 0 {
		for i := range h {
			h[i] = cfg.rng.Int63n(cfg.potentialMax + 1)
		}
	}

	rows := zeroRows(n)
	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if u != v {
				rows[u][v] = cfg.weightFn(cfg.rng) + h[u] - h[v]
			}
		}
	}

	return toCost(MethodRandom, rows)
}

// NegativeCycle returns a complete n×n matrix of unit weights with a zero
// diagonal, except 0→1 which weighs -2; the cycle 0→1→0 weighs -1.
//
// Errors: ErrTooFewVertices if n < 2.
func NegativeCycle(n int) (*matrix.Cost, error) {
	if n < MinNegativeCycleNodes {
		return nil, builderErrorf(MethodNegativeCycle, ErrTooFewVertices, "n must be ≥ %d, got %d", MinNegativeCycleNodes, n)
	}
	rows := filledRows(n, 1)
	rows[0][1] = -2

	return toCost(MethodNegativeCycle, rows)
}

// Chain returns a complete n×n matrix whose cheapest source-to-sink route
// is the full chain 0→1→…→n-1 of step weight w, costing (n-1)·w. Every
// other off-diagonal edge weighs (n-1)·w + 1, so with budget (n-1)·w the
// chain is the only feasible route.
//
// Errors: ErrTooFewVertices if n < 2, ErrBadWeight if w < 1.
func Chain(n int, w int64) (*matrix.Cost, error) {
	if n < MinChainNodes {
		return nil, builderErrorf(MethodChain, ErrTooFewVertices, "n must be ≥ %d, got %d", MinChainNodes, n)
	}
	if w < 1 {
		return nil, builderErrorf(MethodChain, ErrBadWeight, "step weight must be ≥ 1, got %d", w)
	}
	rows := filledRows(n, int64(n-1)*w+1)
	var i int
	for i = 0; i+1 < n; i++ {
		rows[i][i+1] = w
	}

	return toCost(MethodChain, rows)
}

// Must unwraps a constructor result and panics on error. For tests and
// package-level fixtures.
func Must(m *matrix.Cost, err error) *matrix.Cost {
	if err != nil {
		panic(err)
	}

	return m
}

// zeroRows allocates n zeroed rows of length n.
func zeroRows(n int) [][]int64 {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
	}

	return rows
}

// filledRows returns n×n rows with zero diagonal and w elsewhere.
func filledRows(n int, w int64) [][]int64 {
	rows := zeroRows(n)
	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if u != v {
				rows[u][v] = w
			}
		}
	}

	return rows
}

// toCost validates rows into a matrix, tagging failures with method.
func toCost(method string, rows [][]int64) (*matrix.Cost, error) {
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, builderErrorf(method, err, "n=%d", len(rows))
	}

	return m, nil
}
