// SPDX-License-Identifier: MIT

// Package solve composes the factorizations and the triangular solvers into
// one-call linear-system solutions.
//
// What:
//
//   - Solve: the general path — LU with threshold partial pivoting, the row
//     permutation applied to b, a forward solve against L, a backward solve
//     against U.
//   - SolveSPD: the symmetric positive-definite path — Cholesky, a forward
//     solve against L, a backward solve against Lᵀ.
//
// Pivoting default:
//
//	Solve uses the SAME default as the standalone lu.Factor entry point —
//	full partial pivoting (τ=0). Callers wanting the cheaper, permutation-
//	free behavior pass lu.WithPivotThreshold(1) explicitly.
//
// Failure model:
//
//	lu.ErrSingular / cholesky.ErrNotPositiveDefinite propagate unchanged
//	(match with errors.Is); there is NO internal retry. Any regularization
//	or refactorization policy — shifting the diagonal, scaling, reordering —
//	is strictly the caller's: modify the matrix and call again.
package solve
