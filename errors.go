// SPDX-License-Identifier: MIT

package longpath

import "errors"

var (
	// ErrTooFewNodes is returned when the graph has no distinct source and sink.
	ErrTooFewNodes = errors.New("longpath: graph needs at least 2 nodes")

	// ErrNilDistances is returned by Search when no oracle result is given.
	ErrNilDistances = errors.New("longpath: nil distance oracle result")
)
