// SPDX-License-Identifier: MIT

// Package matrix - Cost storage (row-major) & safe accessors.
//
// Purpose:
//   - Cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Public surface never panics: At/Set return errors.
//   - Fixed loop orders everywhere for deterministic dumps and copies.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// error context tags
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxNewCost  = "NewCost"
	ctxFromRows = "FromRows"
)

// formatting literals
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// costErrorf wraps an error with a uniform Cost context and callsite indices.
func costErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Cost.%s(%d,%d): %w", method, row, col, err)
}

// Cost is a square row-major matrix of int64 edge weights.
//   - n is the order (number of nodes).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Cost struct {
	n    int
	data []int64
}

var _ fmt.Stringer = (*Cost)(nil)

// NewCost creates an n×n zero matrix.
//
// Errors:
//   - ErrBadShape when n <= 0.
//
// Complexity: Time O(n²), Space O(n²).
func NewCost(n int) (*Cost, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxNewCost, n, ErrBadShape)
	}

	return &Cost{n: n, data: make([]int64, n*n)}, nil
}

// FromRows copies rows into a new Cost. rows must be square and non-empty.
//
// Errors:
//   - ErrNilMatrix for nil/empty rows, ErrNonSquare for ragged or
//     rectangular input (see ValidateRows).
//
// Complexity: Time O(n²), Space O(n²).
func FromRows(rows [][]int64) (*Cost, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}

	n := len(rows)
	m := &Cost{n: n, data: make([]int64, n*n)}
	var i int
	for i = 0; i < n; i++ {
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// MustFromRows is like FromRows but panics on error. Intended for fixtures
// and examples with literal matrices.
func MustFromRows(rows [][]int64) *Cost {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Order returns the number of nodes n.
func (m *Cost) Order() int { return m.n }

// indexOf validates (row, col) and returns the flat offset.
func (m *Cost) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the weight of edge row→col or ErrOutOfRange.
// Complexity: O(1).
func (m *Cost) At(row, col int) (int64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, costErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores w as the weight of edge row→col or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Cost) Set(row, col int, w int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return costErrorf(ctxSet, row, col, err)
	}
	m.data[off] = w

	return nil
}

// Flat returns a row-major copy of the weights (len n*n). Hot loops in
// other packages prefetch through Flat once instead of calling At.
func (m *Cost) Flat() []int64 {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Rows returns the matrix as a freshly allocated [][]int64.
func (m *Cost) Rows() [][]int64 {
	out := make([][]int64, m.n)
	var i int
	for i = 0; i < m.n; i++ {
		out[i] = make([]int64, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// Clone returns a deep copy.
func (m *Cost) Clone() *Cost {
	return &Cost{n: m.n, data: m.Flat()}
}

// Equal reports whether m and o have the same order and weights.
func (m *Cost) Equal(o *Cost) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	var i int
	for i = range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, for logs and debugging.
func (m *Cost) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(strconv.FormatInt(m.data[base+j], 10))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
