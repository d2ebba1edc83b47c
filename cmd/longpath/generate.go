// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/apsp"
	"github.com/katalvlaran/longpath/builder"
	"github.com/katalvlaran/longpath/problem"
)

func newGenerateCmd() *cobra.Command {
	var (
		nodes      int
		seed       int64
		minW, maxW int64
		potentials int64
		slack      int64
		budget     int64
		oracle     string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random problem file whose sink is reachable within the budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := problem.ParseFormat(format)
			if err != nil {
				return err
			}
			if oracle != "" {
				if _, err = apsp.ByName(oracle); err != nil {
					return err
				}
			}
			if maxW < minW {
				return fmt.Errorf("--max (%d) is below --min (%d)", maxW, minW)
			}
			g, err := builder.Random(nodes,
				builder.WithSeed(seed),
				builder.WithWeightFn(builder.UniformWeightFn(minW, maxW)),
				builder.WithPotentials(max(potentials, 0)),
			)
			if err != nil {
				return err
			}

			p := &problem.Problem{Budget: budget, Oracle: oracle, Graph: g.Rows()}
			if !cmd.Flags().Changed("budget") {
				d, err := apsp.Default().Solve(g)
				if errors.Is(err, apsp.ErrNegativeCycle) {
					log.Warn("generated graph has a negative cycle; budget left at 0")
				} else if err != nil {
					return err
				} else {
					p.Budget = apsp.Add(d.Dist(0, nodes-1), slack)
				}
			}
			log.WithFields(log.Fields{"n": nodes, "seed": seed, "budget": p.Budget}).Debug("generated")

			return p.Encode(cmd.OutOrStdout(), f)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&nodes, "nodes", 6, "number of nodes")
	fs.Int64Var(&seed, "seed", 0, "RNG seed (0 = fixed default)")
	fs.Int64Var(&minW, "min", builder.DefaultMinWeight, "minimum edge weight")
	fs.Int64Var(&maxW, "max", builder.DefaultMaxWeight, "maximum edge weight")
	fs.Int64Var(&potentials, "potentials", 0, "shift weights by node potentials in [0, p] (negative edges, no negative cycles)")
	fs.Int64Var(&slack, "slack", 0, "added to the shortest source→sink distance when --budget is unset")
	fs.Int64VarP(&budget, "budget", "b", 0, "budget to write (default: shortest source→sink distance + slack)")
	fs.StringVarP(&oracle, "oracle", "o", "", "oracle name to record in the file")
	fs.StringVar(&format, "format", "yaml", "output format: yaml or json")

	return cmd
}
