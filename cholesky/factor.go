// SPDX-License-Identifier: MIT
// Package cholesky: the left-looking numeric factorization kernel.

package cholesky

import (
	"math"

	"github.com/katalvlaran/sparsolve/csc"
	"github.com/katalvlaran/sparsolve/symbolic"
)

const opFactor = "Factor"

// Factorization is the immutable result of a successful Factor call.
type Factorization struct {
	// L is the lower-triangular Cholesky factor, A = L·Lᵀ. Every column
	// stores its diagonal entry FIRST, then the below-diagonal entries in
	// ascending row order — the layout triangular.SolveLower consumes.
	L *csc.Matrix

	// Sym is the symbolic analysis that sized L: elimination tree,
	// postorder, and the exact per-column counts. Kept so callers can read
	// fill statistics without re-running the analysis.
	Sym *symbolic.Analysis
}

// Factor computes the Cholesky factorization A = L·Lᵀ of a symmetric
// positive-definite matrix.
//
// Implementation:
//   - Stage 1: canonicalize — Tril keeps the lower triangle (a no-op for
//     callers that already store only the lower triangle), Transpose mirrors
//     it, so the full symmetric column is available for scattering.
//   - Stage 2: symbolic.Analyze sizes the factor: exactly sum(ColCount)
//     entries are allocated, once.
//   - Stage 3: for each column k, scatter the symmetric column A(:,k) into a
//     dense work vector x (the diagonal goes to a separate accumulator d).
//     Sweep j = 0..k-1 ascending: a nonzero x[j] is L[k,j]·L[j,j], so the
//     multiplier l = x[j]/L[j,j] IS L[k,j]; subtract l·L(:,j) from x (this
//     creates the fill that later j iterations consume) and l² from d. The
//     ascending sweep makes the pass left-looking: finished columns are read,
//     never revisited.
//   - Stage 4: d ≤ 0 aborts with ErrNotPositiveDefinite. Otherwise
//     L[k,k] = √d leads the column and the remaining nonzeros of x follow,
//     scaled by 1/L[k,k], each append checked against the symbolic count.
//
// Inputs:
//   - a: square matrix holding the lower triangle or the full symmetric
//     matrix. Never mutated.
//
// Returns:
//   - *Factorization with L and the symbolic analysis.
//
// Errors:
//   - csc.ErrNilMatrix, csc.ErrNonSquare, ErrNotPositiveDefinite,
//     ErrCapacityExceeded.
//
// Determinism:
//   - Fixed column order and fixed sweep order: identical input always
//     yields the bit-identical factor.
//
// Complexity:
//   - Time O(n² + flops), Space O(nnz(L) + n).
func Factor(a *csc.Matrix) (*Factorization, error) {
	if err := csc.ValidateSquare(a); err != nil {
		return nil, choleskyErrorf(opFactor, err)
	}

	// 1. Canonical halves of the symmetric pattern.
	low, err := csc.Tril(a)
	if err != nil {
		return nil, choleskyErrorf(opFactor, err)
	}
	up, err := csc.Transpose(low)
	if err != nil {
		return nil, choleskyErrorf(opFactor, err)
	}

	// 2. Symbolic sizing: exact, allocated once.
	sym, err := symbolic.Analyze(low)
	if err != nil {
		return nil, choleskyErrorf(opFactor, err)
	}
	n := a.Cols
	var nnzL int32
	var k int32
	for k = 0; k < n; k++ {
		nnzL += sym.ColCount[k]
	}

	colPtr := make([]int32, n+1)
	rowIdx := make([]int32, nnzL)
	values := make([]float64, nnzL)
	x := make([]float64, n) // dense work column, all-zero between columns

	var nz int32 // running entry counter of L
	var p, i, j, colStart int32
	var d, l float64
	for k = 0; k < n; k++ {
		// 3. Scatter the symmetric column k: below-diagonal rows from the
		//    lower half, above-diagonal rows from the mirrored half, the
		//    diagonal straight into the accumulator d.
		d = 0
		for p = low.ColPtr[k]; p < low.ColPtr[k+1]; p++ {
			if low.RowIndex[p] == k {
				d += low.Values[p]
			} else {
				x[low.RowIndex[p]] += low.Values[p]
			}
		}
		for p = up.ColPtr[k]; p < up.ColPtr[k+1]; p++ {
			if up.RowIndex[p] < k {
				x[up.RowIndex[p]] += up.Values[p]
			}
		}

		// Left-looking sweep over finished columns. x[j] ≠ 0 means
		// L[k,j] ≠ 0; the subtraction fills rows of L(:,j) into x, where
		// later iterations of this same sweep pick them up.
		for j = 0; j < k; j++ {
			if x[j] == 0 {
				continue
			}
			l = x[j] / values[colPtr[j]] // diagonal leads column j
			x[j] = 0
			d -= l * l
			for p = colPtr[j] + 1; p < colPtr[j+1]; p++ {
				i = rowIdx[p]
				if i == k {
					continue // row k folded into d as l² above
				}
				x[i] -= l * values[p]
			}
		}

		// 4. Pivot and column emission.
		if d <= 0 {
			return nil, choleskyErrorf(opFactor, ErrNotPositiveDefinite)
		}
		colStart = nz
		if nz >= nnzL {
			return nil, choleskyErrorf(opFactor, ErrCapacityExceeded)
		}
		d = math.Sqrt(d)
		rowIdx[nz] = k
		values[nz] = d
		nz++
		for i = k + 1; i < n; i++ {
			if x[i] == 0 {
				continue
			}
			if nz-colStart >= sym.ColCount[k] {
				return nil, choleskyErrorf(opFactor, ErrCapacityExceeded)
			}
			rowIdx[nz] = i
			values[nz] = x[i] / d
			x[i] = 0
			nz++
		}
		colPtr[k+1] = nz
	}

	factor, err := csc.NewMatrix(n, n, colPtr, rowIdx[:nz], values[:nz])
	if err != nil {
		return nil, choleskyErrorf(opFactor, err)
	}

	return &Factorization{L: factor, Sym: sym}, nil
}
