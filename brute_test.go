// SPDX-License-Identifier: MIT
package longpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath"
	"github.com/katalvlaran/longpath/apsp"
	"github.com/katalvlaran/longpath/builder"
	"github.com/katalvlaran/longpath/matrix"
)

// bruteBest enumerates every ordered sequence of distinct intermediates,
// costs it with shortest segment distances, and returns the best
// (cardinality, index sum) among the sequences that fit the budget.
func bruteBest(d *apsp.Result, budget int64) (size, sum int, ok bool) {
	n := d.Order()
	sink := n - 1
	used := make([]bool, n)

	var rec func(u int, cost int64, k, s int)
	rec = func(u int, cost int64, k, s int) {
		if apsp.Add(cost, d.Dist(u, sink)) <= budget {
			if !ok || k > size || (k == size && s < sum) {
				size, sum, ok = k, s, true
			}
		}
		for v := 1; v < sink; v++ {
			if used[v] {
				continue
			}
			c := apsp.Add(cost, d.Dist(u, v))
			if apsp.Add(c, d.Dist(v, sink)) > budget {
				continue
			}
			used[v] = true
			rec(v, c, k+1, s+v-1)
			used[v] = false
		}
	}
	rec(0, 0, 0, 0)

	return size, sum, ok
}

func indexSum(nodes []int) int {
	var s int
	for _, v := range nodes {
		s += v
	}

	return s
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 7; n++ {
		for seed := int64(1); seed <= 6; seed++ {
			g, err := builder.Random(n, builder.WithSeed(seed), builder.WithPotentials(6))
			require.NoError(t, err)
			d, err := apsp.Default().Solve(g)
			require.NoError(t, err)

			base := d.Dist(0, n-1)
			for _, slack := range []int64{-1, 0, 3, 7, 15, 40} {
				budget := base + slack
				size, sum, ok := bruteBest(d, budget)

				for _, o := range oracles() {
					res, err := longpath.Solve(g, budget, longpath.WithOracle(o))
					require.NoError(t, err)
					assert.Equal(t, ok, res.Feasible, "%s n=%d seed=%d budget=%d", o.Name(), n, seed, budget)
					assert.Len(t, res.Nodes, size, "%s n=%d seed=%d budget=%d", o.Name(), n, seed, budget)
					assert.Equal(t, sum, indexSum(res.Nodes), "%s n=%d seed=%d budget=%d", o.Name(), n, seed, budget)
					if ok {
						checkWalk(t, g, budget, res)
					}
				}
			}
		}
	}
}

// checkWalk verifies the returned witness: the walk uses real edges, its
// weight is Cost and fits the budget, and its intermediates are Nodes.
func checkWalk(t *testing.T, g *matrix.Cost, budget int64, res longpath.Result) {
	t.Helper()

	n := g.Order()
	w := res.Walk
	require.NotEmpty(t, w)
	require.Equal(t, 0, w[0])
	require.Equal(t, n-1, w[len(w)-1])

	var cost int64
	seen := map[int]bool{}
	for i := 0; i+1 < len(w); i++ {
		x, err := g.At(w[i], w[i+1])
		require.NoError(t, err)
		cost = apsp.Add(cost, x)
		if i > 0 && w[i] != 0 && w[i] != n-1 {
			seen[w[i]-1] = true
		}
	}
	assert.Equal(t, res.Cost, cost)
	assert.LessOrEqual(t, cost, budget)

	got := make([]int, 0, len(seen))
	for v := 0; v < n-2; v++ {
		if seen[v] {
			got = append(got, v)
		}
	}
	assert.Equal(t, res.Nodes, got)
}

func TestSolve_WalkFeasibility(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.Random(9, builder.WithSeed(seed), builder.WithPotentials(10))
		require.NoError(t, err)
		d, err := apsp.Default().Solve(g)
		require.NoError(t, err)

		budget := d.Dist(0, 8) + 12
		for _, o := range oracles() {
			res, err := longpath.Solve(g, budget, longpath.WithOracle(o))
			require.NoError(t, err)
			require.True(t, res.Feasible)
			checkWalk(t, g, budget, res)
		}
	}
}
