// Package longpath solves the budget-constrained longest walk on a complete
// integer-weighted digraph.
//
// What is longpath?
//
//	Given a complete n×n cost matrix, node 0 as the source, node n-1 as the
//	sink, and a budget c, find a walk source → … → sink of total weight
//	≤ c that visits as many distinct intermediate nodes (1…n-2) as possible;
//	among equally large sets, the one with the smallest index sum wins.
//	The answer is the ascending list of those nodes relative to the
//	intermediate range (node - 1), so values lie in [0, n-2).
//
// How:
//
//	apsp/       all-pairs shortest paths (Floyd–Warshall, SPFA, Johnson),
//	            negative-cycle detection, path witnesses
//	longpath    iterative branch-and-bound DFS over the distance oracle and
//	            the Result assembler (this package)
//	matrix/     dense int64 cost matrix + validation
//	builder/    deterministic fixtures (Random, NegativeCycle, Chain)
//	problem/    YAML/JSON problem files
//	cmd/        the longpath CLI
//
// Search:
//
//   - Each DFS level holds a tail node and the next candidate to try.
//     Candidate v is feasible when it is not yet visited and
//     pathCost + D[tail][v] + D[v][sink] ≤ 0, where pathCost is the walk
//     weight so far minus the budget. D is a lower bound on every
//     completion, so the test prunes in O(1).
//   - Advancing to v absorbs every node on the shortest tail→v path, since
//     the walk passes through them anyway.
//   - When a level runs out of candidates its visited set is compared with
//     the best: larger wins, then smaller index sum; exact ties keep the
//     first found. Candidates are tried in ascending order, so results are
//     deterministic.
//
// Negative cycles:
//
//	When the oracle reports a negative cycle, Solve returns the fallback
//	[0 … n-3] with Result.Fallback set, instead of an error.
//
// Complexity:
//
//   - Oracle: O(n³) (Floyd–Warshall default).
//   - Search: exponential in n in the worst case; O(1) per feasibility
//     test, O(path length) per advance/backtrack.
//
// Install:
//
//	go get github.com/katalvlaran/longpath
package longpath
