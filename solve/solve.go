// SPDX-License-Identifier: MIT
// Package solve: the end-to-end orchestrators.

package solve

import (
	"fmt"

	"github.com/katalvlaran/sparsolve/cholesky"
	"github.com/katalvlaran/sparsolve/csc"
	"github.com/katalvlaran/sparsolve/lu"
	"github.com/katalvlaran/sparsolve/triangular"
)

// Operation tags used in wrapped errors (no magic strings at call sites).
const (
	opSolve    = "Solve"
	opSolveSPD = "SolveSPD"
)

// Solve computes x with A·x = b through a pivoted LU factorization.
//
// Implementation:
//   - Stage 1: validate b against A, factor P·A = L·U (full partial
//     pivoting unless overridden).
//   - Stage 2: apply the row permutation — pb[k] = b[Perm[k]], the exact
//     orientation the triangular solves consume.
//   - Stage 3: forward solve L·y = pb, backward solve U·x = y.
//
// Inputs:
//   - a:    square matrix; never mutated.
//   - b:    dense right-hand side, len n; never mutated.
//   - opts: lu options (lu.WithPivotThreshold).
//
// Returns:
//   - x: freshly allocated solution vector.
//
// Errors:
//   - csc.ErrNilMatrix, csc.ErrNonSquare, csc.ErrDimensionMismatch,
//     lu.ErrSingular, lu.ErrCapacityExceeded. No internal retry: recovery
//     is caller-owned.
//
// Complexity:
//   - Time dominated by lu.Factor; the solves add O(nnz(L)+nnz(U)).
func Solve(a *csc.Matrix, b []float64, opts ...lu.Option) ([]float64, error) {
	if err := csc.ValidateSquare(a); err != nil {
		return nil, solveErrorf(opSolve, err)
	}
	if err := csc.ValidateVecLen(b, a.Cols); err != nil {
		return nil, solveErrorf(opSolve, err)
	}

	f, err := lu.Factor(a, opts...)
	if err != nil {
		return nil, solveErrorf(opSolve, err)
	}

	// Permute b into pivotal order: position k reads original row Perm[k].
	pb := make([]float64, a.Cols)
	var k int32
	for k = 0; k < a.Cols; k++ {
		pb[k] = b[f.Perm[k]]
	}

	y, err := triangular.SolveLower(f.L, pb)
	if err != nil {
		return nil, solveErrorf(opSolve, err)
	}
	x, err := triangular.SolveUpper(f.U, y)
	if err != nil {
		return nil, solveErrorf(opSolve, err)
	}

	return x, nil
}

// SolveSPD computes x with A·x = b for symmetric positive-definite A through
// a Cholesky factorization: L·y = b forward, Lᵀ·x = y backward. The backward
// half runs against csc.Transpose(L), whose columns come out sorted with the
// diagonal last — exactly the upper-solve layout.
//
// Inputs:
//   - a: square SPD matrix, lower triangle or full symmetric; never mutated.
//   - b: dense right-hand side, len n; never mutated.
//
// Returns:
//   - x: freshly allocated solution vector.
//
// Errors:
//   - csc.ErrNilMatrix, csc.ErrNonSquare, csc.ErrDimensionMismatch,
//     cholesky.ErrNotPositiveDefinite. No internal retry: regularization is
//     caller-owned.
//
// Complexity:
//   - Time dominated by cholesky.Factor; the solves add O(nnz(L)).
func SolveSPD(a *csc.Matrix, b []float64) ([]float64, error) {
	if err := csc.ValidateSquare(a); err != nil {
		return nil, solveErrorf(opSolveSPD, err)
	}
	if err := csc.ValidateVecLen(b, a.Cols); err != nil {
		return nil, solveErrorf(opSolveSPD, err)
	}

	f, err := cholesky.Factor(a)
	if err != nil {
		return nil, solveErrorf(opSolveSPD, err)
	}

	y, err := triangular.SolveLower(f.L, b)
	if err != nil {
		return nil, solveErrorf(opSolveSPD, err)
	}
	lt, err := csc.Transpose(f.L)
	if err != nil {
		return nil, solveErrorf(opSolveSPD, err)
	}
	x, err := triangular.SolveUpper(lt, y)
	if err != nil {
		return nil, solveErrorf(opSolveSPD, err)
	}

	return x, nil
}

// solveErrorf wraps a sentinel (or an already wrapped error) with the public
// operation tag, keeping errors.Is matching intact.
func solveErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
