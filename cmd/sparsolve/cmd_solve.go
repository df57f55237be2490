// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsolve/lu"
	"github.com/katalvlaran/sparsolve/solve"
)

// newSolveCommand creates the solve command: LU + permutation + two
// triangular solves, printed as the solution vector.
func newSolveCommand() *cobra.Command {
	var rhsPath string
	var pivotThreshold float64

	cmd := &cobra.Command{
		Use:   "solve <matrix.mtx>",
		Short: "Solve A·x = b through pivoted LU",
		Long: `Solve reads a Matrix Market coordinate file, factors it with
threshold partial pivoting and solves against the right-hand side
(--rhs file, one value per line; all-ones when omitted).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag values are user input: validate here, the option
			// constructor panics on out-of-range values by contract.
			if pivotThreshold < 0 || pivotThreshold > 1 {
				return fmt.Errorf("--pivot-threshold must be in [0,1], got %g", pivotThreshold)
			}
			a, err := readMatrixFile(args[0])
			if err != nil {
				return err
			}
			slog.Debug("matrix loaded", "path", args[0], "n", a.Cols, "nnz", a.NNZ())

			b := make([]float64, a.Cols)
			for i := range b {
				b[i] = 1
			}
			if rhsPath != "" {
				if b, err = readVectorFile(rhsPath, a.Cols); err != nil {
					return err
				}
			}

			x, err := solve.Solve(a, b, lu.WithPivotThreshold(pivotThreshold))
			if err != nil {
				return err
			}
			slog.Debug("system solved", "n", a.Cols)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"i", "x[i]"})
			for i, v := range x {
				t.AppendRow(table.Row{i, fmt.Sprintf("%.12g", v)})
			}
			render(t)

			return nil
		},
	}

	cmd.Flags().StringVar(&rhsPath, "rhs", "", "right-hand-side file (one value per line)")
	cmd.Flags().Float64Var(&pivotThreshold, "pivot-threshold", lu.DefaultPivotThreshold,
		"pivot tolerance in [0,1]: 0 = full partial pivoting, 1 = no pivoting")

	return cmd
}

// render draws the table in the selected output format.
func render(t table.Writer) {
	if formatFlag.String() == formatCSV {
		t.RenderCSV()

		return
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
