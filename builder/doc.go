// SPDX-License-Identifier: MIT

// Package builder produces deterministic complete cost matrices
// (*matrix.Cost) for tests, benchmarks, examples and the CLI generator.
//
// Constructors:
//
//   - Random(n, opts...): every off-diagonal weight drawn from a WeightFn,
//     zero diagonal. WithPotentials(p) shifts w(u,v) by h(u)-h(v) with
//     h ∈ [0,p], which introduces negative edges but never a negative cycle
//     when the drawn weights are non-negative.
//   - NegativeCycle(n): unit weights except 0→1 = -2, so 0→1→0 weighs -1.
//   - Chain(n, w): the chain 0→1→…→n-1 with step weight w; every other
//     off-diagonal edge weighs (n-1)·w + 1.
//
// Options follow the functional style (BuilderOption). Option constructors
// panic on meaningless inputs; constructors return sentinel errors.
//
// Determinism: with the same seed and options every constructor returns the
// same matrix. Seed 0 maps to a fixed default seed.
//
// Complexity: every constructor is O(n²) time and space.
package builder
