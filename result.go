// SPDX-License-Identifier: MIT

package longpath

import (
	"fmt"

	"github.com/katalvlaran/longpath/apsp"
)

// Stats counts search events.
type Stats struct {
	Steps        int // main-loop iterations
	Expanded     int // levels entered
	Pruned       int // candidates rejected by the distance bound
	Leaves       int // visited sets compared with the incumbent
	Improvements int // incumbent replacements
}

// Result is the outcome of Solve or Search.
type Result struct {
	// Nodes lists the visited intermediates relative to the intermediate
	// range (node - 1), ascending. Never nil.
	Nodes []int

	// Route is the best route's tail sequence in absolute node ids, source
	// first and sink last. Nil when no walk fits the budget or on fallback.
	Route []int

	// Walk is Route expanded through the shortest-path witness.
	Walk []int

	// Cost is the total weight of Walk.
	Cost int64

	// Feasible reports whether some source→sink walk fits the budget.
	Feasible bool

	// Fallback reports that the oracle found a negative cycle and Nodes is
	// the fixed answer [0 … n-3].
	Fallback bool

	// Oracle is the name of the strategy that produced the distances.
	Oracle string

	Stats Stats
}

// assemble turns the engine's incumbent into a Result.
func assemble(e *engine) (Result, error) {
	res := Result{
		Nodes:    append(make([]int, 0, len(e.bestSet)), e.bestSet...),
		Feasible: e.found,
		Oracle:   e.dist.Oracle(),
		Stats:    e.stats,
	}
	if !e.found {
		return res, nil
	}

	res.Route = make([]int, 0, len(e.bestPath)+1)
	res.Route = append(res.Route, e.bestPath...)
	res.Route = append(res.Route, e.sink)

	walk, cost, err := expandRoute(e.dist, res.Route)
	if err != nil {
		return Result{}, err
	}
	res.Walk, res.Cost = walk, cost

	return res, nil
}

// expandRoute replaces each route hop with its shortest path and sums the
// hop distances.
func expandRoute(dist *apsp.Result, route []int) ([]int, int64, error) {
	walk := make([]int, 0, dist.Order())
	walk = append(walk, route[0])

	var (
		cost int64
		i    int
		err  error
	)
	for i = 0; i+1 < len(route); i++ {
		n := len(walk)
		// AppendPath repeats route[i], which walk already ends with.
		walk, err = dist.AppendPath(walk[:n-1], route[i], route[i+1])
		if err != nil {
			return nil, 0, fmt.Errorf("expand %d→%d: %w", route[i], route[i+1], err)
		}
		cost = apsp.Add(cost, dist.Dist(route[i], route[i+1]))
	}

	return walk, cost, nil
}

// fallback is the fixed answer for graphs with a negative cycle.
func fallback(n int, oracle string) Result {
	nodes := make([]int, n-2)
	for i := range nodes {
		nodes[i] = i
	}

	return Result{Nodes: nodes, Fallback: true, Oracle: oracle}
}
