// SPDX-License-Identifier: MIT
// Package qr: the dense Householder kernel and the R re-sparsification.

package qr

import (
	"math"

	"github.com/katalvlaran/sparsolve/csc"
)

const opFactor = "Factor"

// DropTolerance is the magnitude below which an entry of the computed R is
// treated as round-off and dropped during re-sparsification.
const DropTolerance = 1e-14

// Factor computes the upper-triangular R of a Householder QR factorization
// A = Q·R and returns it in CSC form. Q is applied and discarded (see the
// package documentation).
//
// Implementation:
//   - Stage 1: reject rows < cols (ErrUnderdetermined) BEFORE any work,
//     then scatter the sparse input into a dense row-major buffer.
//   - Stage 2: for k = 0..cols-1, build the column reflector — norm of the
//     pivot column below row k, alpha = -copysign(norm, a[k][k]), reflector
//     v = a(k:rows,k) - alpha·e_k, tau = 2/vᵀv — and apply it to the
//     remaining columns. Zero columns and degenerate reflectors are skipped,
//     leaving the column as it stands.
//   - Stage 3: extract the significant upper-triangular entries
//     (|value| > DropTolerance) into a fresh cols×cols CSC matrix.
//
// Inputs:
//   - a: rows×cols matrix with rows ≥ cols; never mutated.
//
// Returns:
//   - R: cols×cols upper-triangular CSC matrix, columns in ascending row
//     order (diagonal last).
//
// Errors:
//   - csc.ErrNilMatrix, ErrUnderdetermined.
//
// Determinism:
//   - Fixed column order and reflector convention: identical input always
//     yields the identical R.
//
// Complexity:
//   - Time O(rows·cols²), Space O(rows·cols).
func Factor(a *csc.Matrix) (*csc.Matrix, error) {
	if err := csc.ValidateNotNil(a); err != nil {
		return nil, qrErrorf(opFactor, err)
	}
	if a.Rows < a.Cols {
		return nil, qrErrorf(opFactor, ErrUnderdetermined)
	}

	rows := int(a.Rows)
	cols := int(a.Cols)

	// 1. Scatter into a dense row-major buffer (duplicates sum, the Matrix
	//    reading convention).
	d := make([]float64, rows*cols)
	var j, p int32
	for j = 0; j < a.Cols; j++ {
		for p = a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			d[int(a.RowIndex[p])*cols+int(j)] += a.Values[p]
		}
	}

	// 2. Householder reflections, column by column.
	v := make([]float64, rows)
	var i, k int
	var norm, alpha, beta, tau, sum, aik float64
	for k = 0; k < cols; k++ {
		// Norm of the pivot column below (and including) row k.
		norm = 0
		for i = k; i < rows; i++ {
			aik = d[i*cols+k]
			norm += aik * aik
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column: nothing to reflect
		}

		alpha = -math.Copysign(norm, d[k*cols+k])
		for i = k; i < rows; i++ {
			v[i] = d[i*cols+k]
		}
		v[k] -= alpha

		beta = 0
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue // degenerate reflector: column already in place
		}
		tau = 2.0 / beta

		// Apply the reflector to columns k..cols-1.
		for j = int32(k); j < int32(cols); j++ {
			sum = 0
			for i = k; i < rows; i++ {
				sum += v[i] * d[i*cols+int(j)]
			}
			for i = k; i < rows; i++ {
				d[i*cols+int(j)] -= tau * v[i] * sum
			}
		}
	}

	// 3. Re-sparsify the significant upper triangle into R, ascending row
	//    order per column (diagonal last — the backward-solve layout).
	colPtr := make([]int32, cols+1)
	ri := make([]int32, 0, cols*(cols+1)/2)
	vx := make([]float64, 0, cols*(cols+1)/2)
	for j = 0; j < int32(cols); j++ {
		for i = 0; i <= int(j); i++ {
			if math.Abs(d[i*cols+int(j)]) > DropTolerance {
				ri = append(ri, int32(i))
				vx = append(vx, d[i*cols+int(j)])
			}
		}
		colPtr[j+1] = int32(len(ri))
	}

	return csc.NewMatrix(int32(cols), int32(cols), colPtr, ri, vx)
}
