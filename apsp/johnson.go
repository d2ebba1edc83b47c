// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Johnson's APSP: Bellman–Ford potentials from a virtual source, then one
//     Dijkstra per source over reweighted (non-negative) edges.
//
// Reweighting:
//   - w'(u,v) = w(u,v) + h(u) - h(v) ≥ 0 once h is a feasible potential.
//   - dist(s,v) = dist'(s,v) - h(s) + h(v).

package apsp

import (
	"fmt"

	"github.com/rhartert/yagh"

	"github.com/katalvlaran/longpath/matrix"
)

const opJohnson = "Johnson"

// Johnson is the potential-reweighting strategy. It produces predecessor
// rows and translates them like SPFA.
type Johnson struct{}

var _ Oracle = Johnson{}

// Name implements Oracle.
func (Johnson) Name() string { return NameJohnson }

// Solve implements Oracle.
//
// Complexity: O(n³) for the potentials, n × O(n² log n) for Dijkstra.
func (Johnson) Solve(g *matrix.Cost) (*Result, error) {
	if err := matrix.ValidateCost(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opJohnson, err)
	}

	n := g.Order()
	w := g.Flat()

	h, err := potentials(n, w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opJohnson, err)
	}

	// Reweight once; every entry is non-negative or Inf from here on.
	rw := make([]int64, n*n)
	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if w[u*n+v] == Inf {
				rw[u*n+v] = Inf
				continue
			}
			rw[u*n+v] = Add(Add(w[u*n+v], h[u]), Neg(h[v]))
		}
	}

	r := newResult(NameJohnson, n)
	r.prev = make([]int, n*n)

	var s int
	for s = 0; s < n; s++ {
		dist := r.dist[s*n : (s+1)*n]
		prev := r.prev[s*n : (s+1)*n]
		dijkstra(n, rw, s, dist, prev)

		for v = 0; v < n; v++ {
			if dist[v] == Inf {
				continue
			}
			dist[v] = Add(Add(dist[v], Neg(h[s])), h[v])
		}
	}

	next, err := SuccessorsFromPredecessors(n, r.prev)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opJohnson, err)
	}
	r.next = next

	return r, nil
}

// potentials runs Bellman–Ford from a virtual source joined to every node
// with a 0-weight edge, so every h starts at 0. The loop stops early once a
// full pass changes nothing; a change on the extra pass means a negative
// cycle.
func potentials(n int, w []int64) ([]int64, error) {
	h := make([]int64, n)

	var (
		round, u, v int
		changed     bool
		cand        int64
	)
	for round = 0; round <= n; round++ {
		changed = false
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				if w[u*n+v] == Inf {
					continue
				}
				cand = Add(h[u], w[u*n+v])
				if cand < h[v] {
					if round == n {
						return nil, fmt.Errorf("edge %d→%d: %w", u, v, ErrNegativeCycle)
					}
					h[v] = cand
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return h, nil
}

// dijkstra fills dist and prev for source s over the reweighted matrix rw.
// Each call owns a fresh heap: popped elements keep their slot in the
// index map, so a heap cannot be shared between sources.
func dijkstra(n int, rw []int64, s int, dist []int64, prev []int) {
	heap := yagh.New[int](n)
	var v int
	for v = 0; v < n; v++ {
		dist[v] = Inf
		prev[v] = noNode
	}
	dist[s] = 0
	heap.Put(s, 0)

	var (
		u        int
		c        int64
		wt, cand int64
		row      []int64
	)
	for heap.Size() > 0 {
		entry := heap.Pop()
		u, c = entry.Elem, int64(entry.Cost)
		if c > dist[u] {
			continue
		}

		row = rw[u*n : (u+1)*n]
		for v = 0; v < n; v++ {
			wt = row[v]
			if wt == Inf || v == u {
				continue
			}
			cand = Add(c, wt)
			if cand >= dist[v] {
				continue
			}
			dist[v] = cand
			prev[v] = u
			heap.Put(v, int(cand))
		}
	}
}
