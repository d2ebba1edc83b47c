// SPDX-License-Identifier: MIT
package longpath_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath"
	"github.com/katalvlaran/longpath/apsp"
	"github.com/katalvlaran/longpath/builder"
	"github.com/katalvlaran/longpath/matrix"
)

func oracles() []apsp.Oracle {
	return []apsp.Oracle{apsp.FloydWarshall{}, apsp.SPFA{}, apsp.Johnson{}}
}

// bulkhead has cheap edges into the sink, so the best walk returns to it.
var bulkhead = [][]int64{
	{0, 2, 2, 2, -1},
	{9, 0, 2, 2, -1},
	{9, 3, 0, 2, -1},
	{9, 3, 2, 0, -1},
	{9, 3, 2, 2, 0},
}

var unit5 = [][]int64{
	{0, 1, 1, 1, 1},
	{1, 0, 1, 1, 1},
	{1, 1, 0, 1, 1},
	{1, 1, 1, 0, 1},
	{1, 1, 1, 1, 0},
}

func TestSolve_Scenarios(t *testing.T) {
	t.Parallel()

	chain := builder.Must(builder.Chain(5, 1))

	tests := []struct {
		name     string
		g        *matrix.Cost
		budget   int64
		want     []int
		feasible bool
	}{
		{"bulkhead", matrix.MustFromRows(bulkhead), 1, []int{1, 2}, true},
		{"unit budget 3", matrix.MustFromRows(unit5), 3, []int{0, 1}, true},
		{"unit budget 100", matrix.MustFromRows(unit5), 100, []int{0, 1, 2}, true},
		{"unit budget 1", matrix.MustFromRows(unit5), 1, []int{}, true},
		{"unit budget 0", matrix.MustFromRows(unit5), 0, []int{}, false},
		{"chain exact", chain, 4, []int{0, 1, 2}, true},
		{"chain short", chain, 3, []int{}, false},
		{"two nodes", matrix.MustFromRows([][]int64{{0, 5}, {5, 0}}), 5, []int{}, true},
	}

	for _, o := range oracles() {
		for _, tc := range tests {
			o, tc := o, tc
			t.Run(o.Name()+"/"+tc.name, func(t *testing.T) {
				t.Parallel()

				res, err := longpath.Solve(tc.g, tc.budget, longpath.WithOracle(o))
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.Nodes)
				assert.Equal(t, tc.feasible, res.Feasible)
				assert.False(t, res.Fallback)
				assert.Equal(t, o.Name(), res.Oracle)
				if tc.feasible {
					assert.LessOrEqual(t, res.Cost, tc.budget)
					assert.Equal(t, 0, res.Route[0])
					assert.Equal(t, tc.g.Order()-1, res.Route[len(res.Route)-1])
				} else {
					assert.Nil(t, res.Route)
					assert.Nil(t, res.Walk)
				}
			})
		}
	}
}

func TestSolve_BulkheadWitness(t *testing.T) {
	t.Parallel()

	res, err := longpath.Solve(matrix.MustFromRows(bulkhead), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 4}, res.Route)
	assert.Equal(t, []int{0, 4, 2, 4, 3, 4}, res.Walk)
	assert.Equal(t, int64(1), res.Cost)
}

func TestSolve_Fallback(t *testing.T) {
	t.Parallel()

	all := matrix.MustFromRows([][]int64{
		{0, -1, -1},
		{-1, 0, -1},
		{-1, -1, 0},
	})
	six := builder.Must(builder.NegativeCycle(6))

	for _, o := range oracles() {
		res, err := longpath.Solve(all, 0, longpath.WithOracle(o))
		require.NoError(t, err, o.Name())
		assert.True(t, res.Fallback)
		assert.Equal(t, []int{0}, res.Nodes)
		assert.Nil(t, res.Route)

		res, err = longpath.Solve(six, 100, longpath.WithOracle(o))
		require.NoError(t, err, o.Name())
		assert.True(t, res.Fallback)
		assert.Equal(t, []int{0, 1, 2, 3}, res.Nodes)
	}
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	_, err := longpath.Solve(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = longpath.Solve(matrix.MustFromRows([][]int64{{0}}), 0)
	assert.ErrorIs(t, err, longpath.ErrTooFewNodes)

	_, err = longpath.Search(context.Background(), nil, 0)
	assert.ErrorIs(t, err, longpath.ErrNilDistances)

	_, err = longpath.Solution([][]int64{{0, 1}}, 0)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestSolution(t *testing.T) {
	t.Parallel()

	got, err := longpath.Solution(bulkhead, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	got, err = longpath.Solution([][]int64{{0, 1, 1}, {-2, 0, 1}, {1, 1, 0}}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)
}

func TestSolve_Idempotent(t *testing.T) {
	t.Parallel()

	g := builder.Must(builder.Random(8, builder.WithSeed(5), builder.WithPotentials(8)))
	first, err := longpath.Solve(g, 12)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := longpath.Solve(g, 12)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSolve_Stats(t *testing.T) {
	t.Parallel()

	res, err := longpath.Solve(matrix.MustFromRows(unit5), 100)
	require.NoError(t, err)
	s := res.Stats
	assert.Positive(t, s.Steps)
	assert.Equal(t, s.Expanded, s.Leaves)
	assert.GreaterOrEqual(t, s.Leaves, s.Improvements)
	assert.Positive(t, s.Improvements)
	assert.Zero(t, s.Pruned)
}

func TestSolve_Cancelled(t *testing.T) {
	t.Parallel()

	// Zero weights make every ordering feasible: far more than 4096 steps.
	g := builder.Must(builder.Random(14, builder.WithWeightFn(builder.ConstantWeightFn(0))))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := longpath.Solve(g, 0, longpath.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	o := longpath.DefaultOptions()
	assert.Equal(t, apsp.NameFloydWarshall, o.Oracle.Name())
	assert.NotNil(t, o.Ctx)

	assert.Panics(t, func() { longpath.WithOracle(nil) })
	assert.Panics(t, func() { longpath.WithContext(nil) }) //nolint:staticcheck
}
