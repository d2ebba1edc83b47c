// SPDX-License-Identifier: MIT

package apsp

import "errors"

var (
	// ErrNegativeCycle is returned when, after full relaxation, some edge or
	// self-distance still admits improvement.
	ErrNegativeCycle = errors.New("apsp: graph contains a negative-weight cycle")

	// ErrUnknownOracle is returned by ByName for an unregistered strategy name.
	ErrUnknownOracle = errors.New("apsp: unknown oracle")

	// ErrSourceOutOfRange indicates a source index outside [0, n).
	ErrSourceOutOfRange = errors.New("apsp: source out of range")

	// ErrBrokenWitness is returned when a witness walk does not reach its
	// target within n steps.
	ErrBrokenWitness = errors.New("apsp: witness does not describe a path")
)
