// SPDX-License-Identifier: MIT
// Package: csc
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating nil/shape/length checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// Determinism & Performance:
//   - ValidateNotNil/ValidateSquare/ValidateVecLen are O(1) and allocate nothing.
//   - validateTriple is O(Cols + nnz); it runs once, at adoption time.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape → Structure).
//   - Downstream packages (symbolic, cholesky, lu, triangular, qr, solve)
//     reuse these validators and wrap the returned sentinels with their own
//     operation tags, so one sentinel set serves the whole module.

package csc

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare — composite: NotNil → Rows == Cols.
//
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows != m.Cols {
		return ErrNonSquare
	}

	return nil
}

// ValidateVecLen ensures the dense vector x is non-nil and has exactly n
// entries. Used by every routine that consumes a dense right-hand side.
//
// Errors: ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen(x []float64, n int32) error {
	if x == nil || len(x) != int(n) {
		return ErrDimensionMismatch
	}

	return nil
}

// validateTriple checks the structural integrity of a caller-built CSC triple
// before it is adopted by NewMatrix. Values are NOT scanned here: the numeric
// policy (NaN/Inf rejection) applies at the ingestion constructors only.
//
// Errors: ErrBadShape, ErrBadTriple. Complexity: O(Cols + nnz).
func validateTriple(rows, cols int32, colPtr, rowIndex []int32, values []float64) error {
	// 1. Shape first: dimensions must be non-negative.
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}

	// 2. Column pointers: exact length, zero origin, non-decreasing.
	if len(colPtr) != int(cols)+1 || colPtr[0] != 0 {
		return ErrBadTriple
	}
	var j int32 // column counter
	for j = 0; j < cols; j++ {
		if colPtr[j+1] < colPtr[j] {
			return ErrBadTriple
		}
	}

	// 3. Entry arrays: both exactly nnz long.
	nnz := colPtr[cols]
	if len(rowIndex) != int(nnz) || len(values) != int(nnz) {
		return ErrBadTriple
	}

	// 4. Every stored row index must be a valid row.
	var p int32 // entry cursor
	for p = 0; p < nnz; p++ {
		if rowIndex[p] < 0 || rowIndex[p] >= rows {
			return ErrBadTriple
		}
	}

	return nil
}
