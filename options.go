// SPDX-License-Identifier: MIT

package longpath

import (
	"context"

	"github.com/katalvlaran/longpath/apsp"
)

// Option configures Solve.
type Option func(*Options)

// Options holds the configurable parameters of Solve.
//
//   - Oracle: distance strategy, apsp.Default() unless overridden.
//   - Ctx: cancellation for the search; checked every 4096 steps.
type Options struct {
	Oracle apsp.Oracle
	Ctx    context.Context
}

// DefaultOptions returns Options with the Floyd–Warshall oracle and a
// background context.
func DefaultOptions() Options {
	return Options{
		Oracle: apsp.Default(),
		Ctx:    context.Background(),
	}
}

// WithOracle selects the distance strategy. Panics on nil.
func WithOracle(o apsp.Oracle) Option {
	if o == nil {
		panic("longpath: WithOracle(nil)")
	}
	return func(opts *Options) {
		opts.Oracle = o
	}
}

// WithContext installs a cancellation context for the search. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("longpath: WithContext(nil)")
	}
	return func(opts *Options) {
		opts.Ctx = ctx
	}
}
