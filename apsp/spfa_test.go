// SPDX-License-Identifier: MIT
package apsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/apsp"
	"github.com/katalvlaran/longpath/matrix"
)

func TestSingleSource_DenseFixture(t *testing.T) {
	t.Parallel()

	g := matrix.MustFromRows([][]int64{
		{0, 10, 2, 4, 6},
		{2, 0, 4, 8, 1},
		{3, 7, 0, 1, 9},
		{7, 3, 6, 0, 4},
		{6, 3, 7, 1, 0},
	})

	dist, prev, err := apsp.SingleSource(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 6, 2, 3, 6}, dist)
	assert.Equal(t, []int{-1, 3, 0, 2, 0}, prev)
}

func TestSingleSource_Unreachable(t *testing.T) {
	t.Parallel()

	g := matrix.MustFromRows([][]int64{
		{0, 5, apsp.Inf},
		{apsp.Inf, 0, apsp.Inf},
		{1, 1, 0},
	})

	dist, prev, err := apsp.SingleSource(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 5, apsp.Inf}, dist)
	assert.Equal(t, []int{-1, 0, -1}, prev)
}

func TestSingleSource_Errors(t *testing.T) {
	t.Parallel()

	g := matrix.MustFromRows([][]int64{{0, 1}, {1, 0}})
	_, _, err := apsp.SingleSource(g, 2)
	assert.ErrorIs(t, err, apsp.ErrSourceOutOfRange)
	_, _, err = apsp.SingleSource(g, -1)
	assert.ErrorIs(t, err, apsp.ErrSourceOutOfRange)

	_, _, err = apsp.SingleSource(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	neg := matrix.MustFromRows([][]int64{{0, 1, 1}, {-2, 0, 1}, {1, 1, 0}})
	_, _, err = apsp.SingleSource(neg, 2)
	assert.ErrorIs(t, err, apsp.ErrNegativeCycle)
}

// A negative cycle unreachable from the source does not affect that source.
func TestSingleSource_CycleOutOfReach(t *testing.T) {
	t.Parallel()

	g := matrix.MustFromRows([][]int64{
		{0, apsp.Inf, apsp.Inf},
		{apsp.Inf, 0, -1},
		{apsp.Inf, -1, 0},
	})

	dist, prev, err := apsp.SingleSource(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, apsp.Inf, apsp.Inf}, dist)
	assert.Equal(t, []int{-1, -1, -1}, prev)

	_, _, err = apsp.SingleSource(g, 1)
	assert.ErrorIs(t, err, apsp.ErrNegativeCycle)
}
