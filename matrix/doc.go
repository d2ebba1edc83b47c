// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer cost matrix used by the
// shortest-path oracles and the constrained path search.
//
// What:
//
//   - Cost: an n×n row-major int64 matrix. Entry (i, j) is the weight of the
//     directed edge i→j of a complete graph on nodes 0..n-1.
//   - Constructors: NewCost (zero matrix), FromRows (copy of a [][]int64).
//   - Safe accessors At/Set returning sentinel errors instead of panicking.
//   - Validators shared by callers that accept raw rows (ValidateRows).
//
// Why:
//
//   - Every pair of nodes has a finite weight, so a dense buffer gives O(1)
//     lookups with no "missing edge" encoding.
//   - Integer weights keep budget arithmetic exact; overflow policy lives in
//     the apsp package (saturating Add).
//
// Errors:
//
//   - ErrBadShape     requested order is not positive
//   - ErrNilMatrix    nil *Cost or nil rows
//   - ErrNonSquare    rows of unequal length or len(row) != len(rows)
//   - ErrOutOfRange   index outside [0, n)
//
// Complexity:
//
//   - NewCost, FromRows, Clone, Rows: O(n²) time and space.
//   - At, Set: O(1).
package matrix
