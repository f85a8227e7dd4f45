// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	return newRoot(&app{})
}

// newRoot builds the command tree around a; a preset logger is kept as is.
func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "homology",
		Short: "Exact integer homology of cell complexes",
		Long: `homology assembles boundary matrices of a cell complex and computes
its homology (or cohomology with --dual) using Hermite and Smith normal forms
over arbitrary-precision integers: Betti numbers, torsion coefficients and
generator chains.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			if a.logger, err = config.Build(); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log computation steps at debug level")

	root.AddCommand(newComputeCmd(a), newFixtureCmd(a))

	return root
}

