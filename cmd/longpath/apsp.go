// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/apsp"
)

func newAPSPCmd() *cobra.Command {
	var in input

	cmd := &cobra.Command{
		Use:   "apsp",
		Short: "Print the shortest-distance and successor matrices",
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
			r, err := o.Solve(g)
			if err != nil {
				return err
			}

			return writeAPSP(cmd.OutOrStdout(), r)
		},
	}
	addInputFlags(cmd.Flags(), &in)

	return cmd
}

// writeAPSP prints the distance and successor matrices of r as
// tab-separated rows and returns the first write error.
func writeAPSP(w io.Writer, r *apsp.Result) error {
	n := r.Order()
	lines := make([]string, 0, 2*n+2)
	lines = append(lines, fmt.Sprintf("# distances (%s)", r.Oracle()))
	var u, v int
	for u = 0; u < n; u++ {
		cells := make([]string, n)
		for v = 0; v < n; v++ {
			cells[v] = formatDist(r.Dist(u, v))
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	lines = append(lines, "# successors")
	for _, row := range r.Successors() {
		cells := make([]string, n)
		for v = range row {
			cells[v] = strconv.Itoa(row[v])
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("apsp: write output: %w", err)
		}
	}

	return nil
}

func formatDist(d int64) string {
	if d == apsp.Inf {
		return "inf"
	}

	return strconv.FormatInt(d, 10)
}
