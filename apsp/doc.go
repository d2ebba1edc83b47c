// SPDX-License-Identifier: MIT

// Package apsp computes all-pairs shortest paths over a complete integer
// weighted digraph (*matrix.Cost) and detects negative cycles.
//
// What:
//
//   - Oracle: the capability every strategy implements. Solve returns a
//     *Result holding the distance matrix and a path witness, or
//     ErrNegativeCycle.
//   - FloydWarshall: cubic k→i→j relaxation producing successor form
//     (first hop from u toward v).
//   - SPFA: n runs of a frontier-based single-source relaxation
//     (SingleSource) producing predecessor form.
//   - Johnson: Bellman–Ford potentials + one Dijkstra per source on
//     reweighted edges, producing predecessor form.
//
// Predecessor rows are translated at the boundary so that every Result
// answers Next(u, v) in successor form; Path(u, v) always reconstructs the
// exact shortest path the strategy found.
//
// Arithmetic:
//
//   - Weights are int64. Inf/NegInf are math.MaxInt64/math.MinInt64 and all
//     sums go through Add, which saturates instead of wrapping.
//
// Diagonal:
//
//   - FloydWarshall keeps G[v][v] unless a cheaper closed walk through v
//     exists, so a positive self-loop shows up as a positive D[v][v].
//     SPFA and Johnson report D[v][v] = 0 (the empty path). The two agree
//     whenever self-loops weigh 0.
//
// Complexity:
//
//   - FloydWarshall: O(n³) time, O(n²) space.
//   - SPFA: O(n) sources × O(n³) worst case per source; early exit when
//     the frontier empties.
//   - Johnson: O(n³) potentials + n × O(n² log n) Dijkstra.
package apsp
