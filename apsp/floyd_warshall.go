// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with a successor witness and
//     negative-cycle detection on the diagonal.
//
// Contract:
//   - Input is any non-nil square *matrix.Cost; it is never mutated.
//   - Loop order is fixed (k → i → j) and only strict improvements are
//     taken, so the witness is deterministic.

package apsp

import (
	"fmt"

	"github.com/katalvlaran/longpath/matrix"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall is the cubic all-pairs relaxation strategy. It produces the
// successor witness natively.
type FloydWarshall struct{}

var _ Oracle = FloydWarshall{}

// Name implements Oracle.
func (FloydWarshall) Name() string { return NameFloydWarshall }

// Solve implements Oracle.
//
// Steps:
//  1. D = copy(G), Next[u][v] = v for every finite edge.
//  2. For each intermediate k (outermost), for each (i, j): if
//     D[i][k] + D[k][j] < D[i][j] then D[i][j] = that sum and
//     Next[i][j] = Next[i][k].
//  3. Any D[v][v] < 0 ⇒ ErrNegativeCycle.
//
// Complexity: Time O(n³), Space O(n²).
func (FloydWarshall) Solve(g *matrix.Cost) (*Result, error) {
	if err := matrix.ValidateCost(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, err)
	}

	n := g.Order()
	r := newResult(NameFloydWarshall, n)
	r.dist = g.Flat()

	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if r.dist[u*n+v] != Inf {
				r.next[u*n+v] = v
			}
		}
	}

	floydWarshallInPlace(n, r.dist, r.next)

	for v = 0; v < n; v++ {
		if r.dist[v*n+v] < 0 {
			return nil, fmt.Errorf("%s: node %d: %w", opFloydWarshall, v, ErrNegativeCycle)
		}
	}

	return r, nil
}

// floydWarshallInPlace runs the closure on flat row-major buffers.
// Inf entries are skipped, so saturated sums never masquerade as paths.
func floydWarshallInPlace(n int, d []int64, next []int) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = d[i*n+k]
			if ik == Inf {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = d[baseK+j]
				if kj == Inf {
					continue
				}
				cand = Add(ik, kj)
				if cand < d[baseI+j] {
					d[baseI+j] = cand
					next[baseI+j] = next[baseI+k]
				}
			}
		}
	}
}
