// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Single-source relaxation with an active frontier (SPFA / Bellman–Ford
//     with early exit), and its all-pairs application.
//
// Frontier:
//   - Round 1 relaxes out of every reached node; each later round relaxes
//     only out of the nodes improved in the previous round, in ascending
//     index order. A sparse set deduplicates improvements in O(1) and
//     clears in O(1) between rounds.

package apsp

import (
	"fmt"
	"slices"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/longpath/matrix"
)

const (
	opSPFA         = "SPFA"
	opSingleSource = "SingleSource"
)

// SPFA is the all-pairs application of SingleSource. It builds predecessor
// rows and translates them into the successor witness.
type SPFA struct{}

var _ Oracle = SPFA{}

// Name implements Oracle.
func (SPFA) Name() string { return NameSPFA }

// Solve implements Oracle. S[s][v] = dist_s[v] and the predecessor row of s
// is prev_s.
//
// Complexity: n × O(n³) worst case, usually far less thanks to early exit.
func (SPFA) Solve(g *matrix.Cost) (*Result, error) {
	if err := matrix.ValidateCost(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opSPFA, err)
	}

	n := g.Order()
	w := g.Flat()
	r := newResult(NameSPFA, n)
	r.prev = make([]int, n*n)

	rx := newRelaxer(n, w)
	var s int
	for s = 0; s < n; s++ {
		if err := rx.run(s, r.dist[s*n:(s+1)*n], r.prev[s*n:(s+1)*n]); err != nil {
			return nil, fmt.Errorf("%s: source %d: %w", opSPFA, s, err)
		}
	}

	next, err := SuccessorsFromPredecessors(n, r.prev)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSPFA, err)
	}
	r.next = next

	return r, nil
}

// SingleSource computes shortest distances from s and the predecessor
// vector: prev[v] is the node immediately before v on the shortest path
// from s, -1 for s itself.
//
// Errors: ErrSourceOutOfRange, ErrNegativeCycle, matrix validation errors.
func SingleSource(g *matrix.Cost, s int) (dist []int64, prev []int, err error) {
	if err = matrix.ValidateCost(g); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSingleSource, err)
	}
	n := g.Order()
	if s < 0 || s >= n {
		return nil, nil, fmt.Errorf("%s(%d): %w", opSingleSource, s, ErrSourceOutOfRange)
	}

	dist = make([]int64, n)
	prev = make([]int, n)
	if err = newRelaxer(n, g.Flat()).run(s, dist, prev); err != nil {
		return nil, nil, fmt.Errorf("%s(%d): %w", opSingleSource, s, err)
	}

	return dist, prev, nil
}

// relaxer owns the scratch state reused across sources.
type relaxer struct {
	n        int
	w        []int64 // row-major weights
	improved *sparsesets.Set
	frontier []int
}

func newRelaxer(n int, w []int64) *relaxer {
	return &relaxer{
		n:        n,
		w:        w,
		improved: sparsesets.New(n),
		frontier: make([]int, 0, n),
	}
}

// run fills dist and prev (both of length n) for source s.
func (rx *relaxer) run(s int, dist []int64, prev []int) error {
	n := rx.n
	var i, j int
	for i = 0; i < n; i++ {
		dist[i] = Inf
		prev[i] = noNode
	}
	dist[s] = 0

	// Round 1 frontier: every node (only s is reached, the rest are skipped).
	rx.frontier = rx.frontier[:0]
	for i = 0; i < n; i++ {
		rx.frontier = append(rx.frontier, i)
	}

	var (
		round int
		cand  int64
		row   []int64
	)
	for round = 0; round < n-1; round++ {
		rx.improved.Clear()
		for _, i = range rx.frontier {
			if dist[i] == Inf {
				continue
			}
			row = rx.w[i*n : (i+1)*n]
			for j = 0; j < n; j++ {
				cand = Add(dist[i], row[j])
				if cand < dist[j] {
					dist[j] = cand
					prev[j] = i
					if !rx.improved.Contains(j) {
						rx.improved.Insert(j)
					}
				}
			}
		}

		rx.frontier = append(rx.frontier[:0], rx.improved.Content()...)
		if len(rx.frontier) == 0 {
			break
		}
		slices.Sort(rx.frontier)
	}

	// Any edge that still relaxes proves a negative cycle.
	for i = 0; i < n; i++ {
		if dist[i] == Inf {
			continue
		}
		row = rx.w[i*n : (i+1)*n]
		for j = 0; j < n; j++ {
			if Add(dist[i], row[j]) < dist[j] {
				return fmt.Errorf("edge %d→%d: %w", i, j, ErrNegativeCycle)
			}
		}
	}

	return nil
}
