// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/longpath/apsp"
	"github.com/katalvlaran/longpath/problem"
)

// input holds the flags shared by commands that read a problem file.
type input struct {
	file   string
	oracle string
	budget int64
}

// addInputFlags registers -f/--file and -o/--oracle on fs.
func addInputFlags(fs *pflag.FlagSet, in *input) {
	fs.StringVarP(&in.file, "file", "f", "-", "problem file (YAML or JSON), - for stdin")
	fs.StringVarP(&in.oracle, "oracle", "o", "", fmt.Sprintf("distance oracle %v (overrides the file)", apsp.Names()))
}

// load reads the problem and applies flag overrides. A flag wins over the
// file only when it was set on the command line.
func (in *input) load(cmd *cobra.Command) (*problem.Problem, apsp.Oracle, error) {
	p, err := problem.Load(in.file)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("oracle") {
		p.Oracle = in.oracle
	}
	if f := cmd.Flags().Lookup("budget"); f != nil && f.Changed {
		p.Budget = in.budget
	}

	o, err := p.OracleOrDefault()
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(log.Fields{
		"file":   in.file,
		"n":      len(p.Graph),
		"budget": p.Budget,
		"oracle": o.Name(),
	}).Debug("problem loaded")

	return p, o, nil
}

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "longpath",
		Short:        "Visit as many nodes as a budget allows on a complete weighted digraph",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			log.SetLevel(log.InfoLevel)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newSolveCmd(ctx),
		newAPSPCmd(),
		newGenerateCmd(),
	)

	return rootCmd
}
