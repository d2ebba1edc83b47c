// SPDX-License-Identifier: MIT

package apsp

import (
	"fmt"

	"github.com/katalvlaran/longpath/matrix"
)

// noNode marks an absent predecessor or successor.
const noNode = -1

// Result is the read-only output of an Oracle: the distance matrix and the
// path witness. It is safe for concurrent readers.
type Result struct {
	oracle string
	n      int
	dist   []int64 // row-major, dist[u*n+v]
	next   []int   // row-major successor witness, next[u*n+v]

	// prev holds the predecessor rows of strategies that build shortest-path
	// trees. When present, Path follows the tree of u so the reconstructed
	// path is exactly the one the strategy relaxed.
	prev []int
}

// newResult allocates a Result for n nodes. next is filled with noNode.
func newResult(oracle string, n int) *Result {
	r := &Result{
		oracle: oracle,
		n:      n,
		dist:   make([]int64, n*n),
		next:   make([]int, n*n),
	}
	var i int
	for i = range r.next {
		r.next[i] = noNode
	}

	return r
}

// Oracle returns the name of the strategy that produced r.
func (r *Result) Oracle() string { return r.oracle }

// Order returns the number of nodes.
func (r *Result) Order() int { return r.n }

// Dist returns the shortest distance u→v. u and v must be in [0, n).
func (r *Result) Dist(u, v int) int64 { return r.dist[u*r.n+v] }

// Next returns the node after u on the shortest path u→v (Next(u, u) == u),
// or -1 when v is unreachable from u. u and v must be in [0, n).
func (r *Result) Next(u, v int) int { return r.next[u*r.n+v] }

// Distances returns a row-major copy of the distance matrix.
func (r *Result) Distances() []int64 {
	cp := make([]int64, len(r.dist))
	copy(cp, r.dist)

	return cp
}

// DistMatrix returns the distance matrix as a *matrix.Cost.
func (r *Result) DistMatrix() *matrix.Cost {
	rows := make([][]int64, r.n)
	var u int
	for u = 0; u < r.n; u++ {
		rows[u] = r.dist[u*r.n : (u+1)*r.n]
	}

	return matrix.MustFromRows(rows)
}

// Successors returns the successor witness as rows, Successors()[u][v] == Next(u, v).
func (r *Result) Successors() [][]int {
	out := make([][]int, r.n)
	var u int
	for u = 0; u < r.n; u++ {
		out[u] = make([]int, r.n)
		copy(out[u], r.next[u*r.n:(u+1)*r.n])
	}

	return out
}

// Path returns the node sequence of the shortest path u→v, both ends
// included. Path(u, u) is [u].
//
// Errors: matrix.ErrOutOfRange for bad indices, ErrBrokenWitness when v is
// unreachable or the witness loops.
func (r *Result) Path(u, v int) ([]int, error) {
	return r.AppendPath(nil, u, v)
}

// AppendPath appends the shortest path u→v (both ends included) to dst and
// returns the extended slice. It lets hot loops reuse a scratch buffer.
//
// Complexity: O(path length).
func (r *Result) AppendPath(dst []int, u, v int) ([]int, error) {
	if u < 0 || u >= r.n || v < 0 || v >= r.n {
		return dst, fmt.Errorf("Path(%d,%d): %w", u, v, matrix.ErrOutOfRange)
	}
	if u == v {
		return append(dst, u), nil
	}
	if r.prev != nil {
		return r.appendTreePath(dst, u, v)
	}

	// Successor form: follow first hops toward v.
	start := len(dst)
	dst = append(dst, u)
	w := u
	var steps int
	for w != v {
		w = r.next[w*r.n+v]
		steps++
		if w == noNode || steps > r.n {
			return dst[:start], fmt.Errorf("Path(%d,%d): %w", u, v, ErrBrokenWitness)
		}
		dst = append(dst, w)
	}

	return dst, nil
}

// appendTreePath walks the predecessor row of u backward from v, then
// reverses the appended segment in place.
func (r *Result) appendTreePath(dst []int, u, v int) ([]int, error) {
	start := len(dst)
	row := r.prev[u*r.n : (u+1)*r.n]
	w := v
	var steps int
	for w != u {
		dst = append(dst, w)
		w = row[w]
		steps++
		if w == noNode || steps > r.n {
			return dst[:start], fmt.Errorf("Path(%d,%d): %w", u, v, ErrBrokenWitness)
		}
	}
	dst = append(dst, u)

	var i, j int
	for i, j = start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}

	return dst, nil
}
