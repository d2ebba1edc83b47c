// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/longpath"
)

// solveOutput is the machine-readable form of a solve run.
type solveOutput struct {
	Nodes    []int          `json:"nodes" yaml:"nodes"`
	Route    []int          `json:"route,omitempty" yaml:"route,omitempty"`
	Walk     []int          `json:"walk,omitempty" yaml:"walk,omitempty"`
	Cost     int64          `json:"cost" yaml:"cost"`
	Feasible bool           `json:"feasible" yaml:"feasible"`
	Fallback bool           `json:"fallback" yaml:"fallback"`
	Oracle   string         `json:"oracle" yaml:"oracle"`
	Stats    longpath.Stats `json:"stats" yaml:"stats"`
}

func newSolveCmd(ctx context.Context) *cobra.Command {
	var (
		in     input
		format string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the largest set of intermediate nodes reachable within the budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, o, err := in.load(cmd)
			if err != nil {
				return err
			}
			g, err := p.Matrix()
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := longpath.Solve(g, p.Budget, longpath.WithOracle(o), longpath.WithContext(ctx))
			if err != nil {
				return err
			}

			entry := log.WithFields(log.Fields{
				"oracle":  res.Oracle,
				"n":       g.Order(),
				"budget":  p.Budget,
				"steps":   res.Stats.Steps,
				"leaves":  res.Stats.Leaves,
				"elapsed": time.Since(start),
			})
			switch {
			case res.Fallback:
				entry.Warn("negative cycle detected, returning fallback")
			case !res.Feasible:
				entry.Info("no walk fits the budget")
			default:
				entry.WithField("cost", res.Cost).Debug("solved")
			}

			out := solveOutput{
				Nodes:    res.Nodes,
				Route:    res.Route,
				Walk:     res.Walk,
				Cost:     res.Cost,
				Feasible: res.Feasible,
				Fallback: res.Fallback,
				Oracle:   res.Oracle,
				Stats:    res.Stats,
			}
			w := cmd.OutOrStdout()
			switch format {
			case "text":
				_, err = fmt.Fprintln(w, out.Nodes)
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				err = enc.Encode(out)
			case "yaml":
				err = yaml.NewEncoder(w).Encode(out)
			default:
				err = fmt.Errorf("unknown output format %q (text, json, yaml)", format)
			}

			return err
		},
	}
	addInputFlags(cmd.Flags(), &in)
	cmd.Flags().Int64VarP(&in.budget, "budget", "b", 0, "budget (overrides the file)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")

	return cmd
}
