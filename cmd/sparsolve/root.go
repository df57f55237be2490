// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

var (
	verboseFlag bool
	formatFlag  = newFormatValue(formatTable)
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sparsolve",
		Short: "Sparse direct linear-solver engine",
		Long: `sparsolve factors and solves sparse linear systems stored in
Matrix Market coordinate files: LU with partial pivoting, Cholesky for
symmetric positive-definite input, and symbolic fill analysis.`,
		Version: Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verboseFlag {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose diagnostics on stderr")
	rootCmd.PersistentFlags().Var(formatFlag, "format", "output format (table|csv)")

	rootCmd.AddCommand(newSolveCommand())
	rootCmd.AddCommand(newCholCommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
