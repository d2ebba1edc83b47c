// SPDX-License-Identifier: MIT

package problem

import "errors"

var (
	// ErrMissingGraph is returned when a problem has no graph rows.
	ErrMissingGraph = errors.New("problem: missing graph")

	// ErrUnknownFormat is returned for an output format other than yaml/json.
	ErrUnknownFormat = errors.New("problem: unknown format")
)
