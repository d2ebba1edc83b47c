// SPDX-License-Identifier: MIT

package longpath

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/longpath/apsp"
	"github.com/katalvlaran/longpath/matrix"
)

const (
	opSolve    = "Solve"
	opSearch   = "Search"
	opSolution = "Solution"
)

// Solve runs the configured oracle over g and searches for the largest set
// of intermediates reachable within budget.
//
// A negative cycle is not an error: Solve returns the fallback result
// (Nodes = [0 … n-3], Fallback = true). Every other oracle error is
// returned wrapped.
//
// Errors: matrix validation sentinels, ErrTooFewNodes, context errors.
func Solve(g *matrix.Cost, budget int64, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := matrix.ValidateCost(g); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	if g.Order() < 2 {
		return Result{}, fmt.Errorf("%s: n=%d: %w", opSolve, g.Order(), ErrTooFewNodes)
	}

	dist, err := o.Oracle.Solve(g)
	if errors.Is(err, apsp.ErrNegativeCycle) {
		return fallback(g.Order(), o.Oracle.Name()), nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	return Search(o.Ctx, dist, budget)
}

// Search runs the branch-and-bound over a precomputed oracle result.
// dist must come from a graph without negative cycles, which every
// successful Oracle.Solve guarantees.
//
// Errors: ErrNilDistances, ErrTooFewNodes, ctx.Err() when cancelled.
func Search(ctx context.Context, dist *apsp.Result, budget int64) (Result, error) {
	if dist == nil {
		return Result{}, fmt.Errorf("%s: %w", opSearch, ErrNilDistances)
	}
	if dist.Order() < 2 {
		return Result{}, fmt.Errorf("%s: n=%d: %w", opSearch, dist.Order(), ErrTooFewNodes)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	e := newEngine(ctx, dist, budget)
	if err := e.run(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSearch, err)
	}

	res, err := assemble(e)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSearch, err)
	}

	return res, nil
}

// Solution is the plain value form: rows in, ascending relative
// intermediate indices out, using the default oracle.
func Solution(rows [][]int64, budget int64) ([]int, error) {
	g, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolution, err)
	}
	res, err := Solve(g, budget)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolution, err)
	}

	return res.Nodes, nil
}
