// SPDX-License-Identifier: MIT
// Package triangular: forward and backward substitution kernels.

package triangular

import "github.com/katalvlaran/sparsolve/csc"

// Operation tags used in wrapped errors (no magic strings at call sites).
const (
	opSolveLower = "SolveLower"
	opSolveUpper = "SolveUpper"
)

// SolveLower solves L·x = b by forward substitution, column by column.
//
// Implementation:
//   - Stage 1: validate the factor (square) and the right-hand side length.
//   - Stage 2: copy b into a fresh solution vector.
//   - Stage 3: for each column j in ascending order, divide x[j] by the
//     diagonal — the FIRST stored entry of the column, the layout contract
//     of every lower factor this module produces — then subtract the scaled
//     remainder of the column from the rows below.
//
// Inputs:
//   - l: square lower-triangular factor, diagonal stored first per column.
//   - b: dense right-hand side, len n; never mutated.
//
// Returns:
//   - x: freshly allocated solution of L·x = b.
//
// Errors:
//   - csc.ErrNilMatrix, csc.ErrNonSquare, csc.ErrDimensionMismatch,
//     ErrMissingDiagonal, ErrZeroDiagonal.
//
// Determinism:
//   - Fixed column order, fixed entry order: identical input, identical x.
//
// Complexity:
//   - Time O(nnz(L)), Space O(n).
func SolveLower(l *csc.Matrix, b []float64) ([]float64, error) {
	if err := csc.ValidateSquare(l); err != nil {
		return nil, triangularErrorf(opSolveLower, err)
	}
	n := l.Cols
	if err := csc.ValidateVecLen(b, n); err != nil {
		return nil, triangularErrorf(opSolveLower, err)
	}

	x := make([]float64, n)
	copy(x, b)

	var j, p int32
	for j = 0; j < n; j++ {
		p = l.ColPtr[j]
		// Layout contract: the diagonal leads its column.
		if p == l.ColPtr[j+1] || l.RowIndex[p] != j {
			return nil, triangularErrorf(opSolveLower, ErrMissingDiagonal)
		}
		if l.Values[p] == 0 {
			return nil, triangularErrorf(opSolveLower, ErrZeroDiagonal)
		}
		x[j] /= l.Values[p]
		for p++; p < l.ColPtr[j+1]; p++ {
			x[l.RowIndex[p]] -= l.Values[p] * x[j]
		}
	}

	return x, nil
}

// SolveUpper solves U·x = b by backward substitution, column by column.
//
// Implementation:
//   - Stage 1: validate the factor (square) and the right-hand side length.
//   - Stage 2: copy b into a fresh solution vector.
//   - Stage 3: for each column j in DESCENDING order, locate the diagonal by
//     scanning the column from its END for row index j — columns are not
//     guaranteed sorted, and factor producers differ on where the diagonal
//     lands (lu stores it last, a transposed Cholesky factor stores it
//     last too, but arbitrary upper factors may not) — then divide and
//     subtract the remaining entries from the rows above.
//
// Inputs:
//   - u: square upper-triangular factor, any intra-column entry order.
//   - b: dense right-hand side, len n; never mutated.
//
// Returns:
//   - x: freshly allocated solution of U·x = b.
//
// Errors:
//   - csc.ErrNilMatrix, csc.ErrNonSquare, csc.ErrDimensionMismatch,
//     ErrMissingDiagonal, ErrZeroDiagonal.
//
// Determinism:
//   - Fixed column order, fixed scan direction: identical input, identical x.
//
// Complexity:
//   - Time O(nnz(U)) amortized — the diagonal scan revisits each entry at
//     most twice. Space O(n).
func SolveUpper(u *csc.Matrix, b []float64) ([]float64, error) {
	if err := csc.ValidateSquare(u); err != nil {
		return nil, triangularErrorf(opSolveUpper, err)
	}
	n := u.Cols
	if err := csc.ValidateVecLen(b, n); err != nil {
		return nil, triangularErrorf(opSolveUpper, err)
	}

	x := make([]float64, n)
	copy(x, b)

	var j, p, d int32
	for j = n - 1; j >= 0; j-- {
		// Locate the diagonal from the end of the column (robust to any
		// intra-column order).
		d = -1
		for p = u.ColPtr[j+1] - 1; p >= u.ColPtr[j]; p-- {
			if u.RowIndex[p] == j {
				d = p

				break
			}
		}
		if d == -1 {
			return nil, triangularErrorf(opSolveUpper, ErrMissingDiagonal)
		}
		if u.Values[d] == 0 {
			return nil, triangularErrorf(opSolveUpper, ErrZeroDiagonal)
		}
		x[j] /= u.Values[d]
		for p = u.ColPtr[j]; p < u.ColPtr[j+1]; p++ {
			if p == d {
				continue
			}
			x[u.RowIndex[p]] -= u.Values[p] * x[j]
		}
	}

	return x, nil
}
