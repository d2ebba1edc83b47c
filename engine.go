// SPDX-License-Identifier: MIT
// Package: longpath
//
// Purpose:
//   - Iterative depth-first branch-and-bound over the distance oracle.
//
// State:
//   - path: tail nodes of the current route, path[0] == source.
//   - inPath: every node the current walk visits (source and sink are
//     pre-marked so they are never candidates or absorbed).
//   - frames: one per level; frame i owns absorbed[from:] for the nodes it
//     marked, so backtracking costs O(|owned|).
//   - pathCost: walk weight so far minus the budget. Always ≤ -D[tail][sink].

package longpath

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/longpath/apsp"
)

// ctxCheckMask sets how often the search polls its context (every 4096 steps).
const ctxCheckMask = 4095

// frame is one DFS level.
type frame struct {
	tail int   // last node of the route at this level
	next int   // next candidate to try
	from int   // start of this level's slice in engine.absorbed
	base int64 // pathCost before the level was entered
}

// engine holds the search data and the incumbent.
type engine struct {
	ctx    context.Context
	dist   *apsp.Result
	n      int
	sink   int
	budget int64

	// Current search state
	path     []int
	inPath   *bitset.BitSet
	frames   []frame
	absorbed []int
	pathCost int64
	indexSum int // Σ (k-1) over visited intermediates
	seg      []int

	// Incumbent
	found    bool
	bestSize int
	bestSum  int
	bestSet  []int
	bestPath []int

	stats Stats
}

func newEngine(ctx context.Context, dist *apsp.Result, budget int64) *engine {
	n := dist.Order()
	e := &engine{
		ctx:      ctx,
		dist:     dist,
		n:        n,
		sink:     n - 1,
		budget:   budget,
		path:     make([]int, 0, n),
		inPath:   bitset.New(uint(n)),
		frames:   make([]frame, 0, n),
		absorbed: make([]int, 0, n),
		seg:      make([]int, 0, n),
		bestSet:  []int{},
	}
	e.inPath.Set(0)
	e.inPath.Set(uint(e.sink))

	return e
}

// d is the oracle distance u→v.
func (e *engine) d(u, v int) int64 { return e.dist.Dist(u, v) }

// run executes the search to completion or cancellation.
func (e *engine) run() error {
	e.pathCost = apsp.Neg(e.budget)
	e.path = append(e.path, 0)
	e.frames = append(e.frames, frame{tail: 0, next: 1, from: 0, base: e.pathCost})

	// The bare source→sink walk is the starting incumbent when affordable.
	if apsp.Add(e.pathCost, e.d(0, e.sink)) <= 0 {
		e.found = true
		e.bestPath = append(e.bestPath[:0], 0)
	}

	var (
		top *frame
		v   int
		err error
	)
	for len(e.frames) > 0 {
		e.stats.Steps++
		if e.stats.Steps&ctxCheckMask == 0 {
			if err = e.ctx.Err(); err != nil {
				return err
			}
		}

		top = &e.frames[len(e.frames)-1]
		if v = e.nextCandidate(top); v >= 0 {
			if err = e.advance(top.tail, v); err != nil {
				return err
			}
			continue
		}

		if len(e.frames) == 1 {
			break
		}
		e.evaluate()
		e.backtrack()
	}

	return nil
}

// nextCandidate returns the next feasible candidate of f, or -1 when the
// level is exhausted.
func (e *engine) nextCandidate(f *frame) int {
	var (
		v     int
		bound int64
	)
	for f.next < e.sink {
		v = f.next
		f.next++
		if e.inPath.Test(uint(v)) {
			continue
		}
		bound = apsp.Add(apsp.Add(e.pathCost, e.d(f.tail, v)), e.d(v, e.sink))
		if bound > 0 {
			e.stats.Pruned++
			continue
		}

		return v
	}

	return -1
}

// advance pushes v, charging D[u][v] and absorbing v plus every unvisited
// interior node of the shortest u→v path.
func (e *engine) advance(u, v int) error {
	var err error
	e.seg, err = e.dist.AppendPath(e.seg[:0], u, v)
	if err != nil {
		return fmt.Errorf("advance %d→%d: %w", u, v, err)
	}

	e.stats.Expanded++
	e.frames = append(e.frames, frame{tail: v, next: 1, from: len(e.absorbed), base: e.pathCost})
	e.pathCost = apsp.Add(e.pathCost, e.d(u, v))
	e.path = append(e.path, v)

	e.mark(v)
	var x int
	for _, x = range e.seg[1 : len(e.seg)-1] {
		if !e.inPath.Test(uint(x)) {
			e.mark(x)
		}
	}

	return nil
}

func (e *engine) mark(x int) {
	e.inPath.Set(uint(x))
	e.absorbed = append(e.absorbed, x)
	e.indexSum += x - 1
}

// backtrack pops the top level and restores the state it changed.
func (e *engine) backtrack() {
	f := e.frames[len(e.frames)-1]
	var x int
	for _, x = range e.absorbed[f.from:] {
		e.inPath.Clear(uint(x))
		e.indexSum -= x - 1
	}
	e.absorbed = e.absorbed[:f.from]
	e.pathCost = f.base
	e.path = e.path[:len(e.path)-1]
	e.frames = e.frames[:len(e.frames)-1]
}

// evaluate compares the current visited set with the incumbent: more nodes
// win, then the smaller index sum. Exact ties keep the incumbent.
func (e *engine) evaluate() {
	e.stats.Leaves++
	size := int(e.inPath.Count()) - 2
	if e.found && (size < e.bestSize || (size == e.bestSize && e.indexSum >= e.bestSum)) {
		return
	}

	e.found = true
	e.bestSize = size
	e.bestSum = e.indexSum
	e.bestSet = e.bestSet[:0]
	var (
		i  uint
		ok bool
	)
	for i, ok = e.inPath.NextSet(1); ok && int(i) < e.sink; i, ok = e.inPath.NextSet(i + 1) {
		e.bestSet = append(e.bestSet, int(i)-1)
	}
	e.bestPath = append(e.bestPath[:0], e.path...)
	e.stats.Improvements++
}
