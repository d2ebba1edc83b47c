// SPDX-License-Identifier: MIT

// Command longpath solves budget-constrained longest-walk problems read
// from YAML/JSON problem files.
//
//	longpath solve -f problem.yaml [-o spfa] [-b 10]
//	longpath apsp -f problem.yaml
//	longpath generate --nodes 8 --seed 7 > problem.yaml
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCmd(ctx, version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
