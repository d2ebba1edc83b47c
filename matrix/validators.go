// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape checks on raw rows and *Cost values.
//   - Return sentinels wrapped with a validator tag so call sites can wrap
//     again with their own operation name.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows checks that rows describe a non-empty square matrix.
//
// Errors: ErrNilMatrix for nil or empty rows, ErrNonSquare when any row
// length differs from len(rows).
// Complexity: O(n).
func ValidateRows(rows [][]int64) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRows", ErrNilMatrix)
	}

	n := len(rows)
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d entries, want %d", i, len(rows[i]), n), ErrNonSquare)
		}
	}

	return nil
}

// ValidateCost checks that m is usable: non-nil with a positive order.
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateCost(m *Cost) error {
	if m == nil || m.n == 0 {
		return validatorErrorf("ValidateCost", ErrNilMatrix)
	}

	return nil
}
