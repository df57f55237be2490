// SPDX-License-Identifier: MIT

// Package triangular solves triangular systems against CSC factors with a
// dense right-hand side.
//
// What:
//
//   - SolveLower: forward substitution against a lower-triangular factor
//     whose columns store the diagonal FIRST (the layout cholesky and lu
//     emit for L).
//   - SolveUpper: backward substitution against an upper-triangular factor.
//     Columns are NOT assumed sorted: the diagonal is located by scanning
//     each column from its end for the matching row index, trading a few
//     comparisons for robustness against any entry order.
//
// Why:
//   - These are the user-facing halves of every solve: the factorizations
//     produce L and U, this package consumes them. Unlike csc.SpSolve (a
//     kernel for sparse right-hand sides, no diagonal checks), both solvers
//     here validate the factor's diagonal and report structural defects as
//     errors instead of dividing into ±Inf.
//
// Ownership:
//
//	Both solvers are allocation-returning: the factor and the right-hand
//	side are never mutated, the solution is a fresh vector.
//
// Errors:
//
//   - csc.ErrNilMatrix, csc.ErrNonSquare, csc.ErrDimensionMismatch for
//     malformed arguments.
//   - ErrMissingDiagonal when a column stores no entry on the diagonal.
//   - ErrZeroDiagonal when the diagonal entry is exactly zero.
//
// Complexity:
//
//	O(nnz(factor)) time, O(n) space, both solvers.
package triangular
