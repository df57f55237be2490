// SPDX-License-Identifier: MIT

// Package cholesky factors a symmetric positive-definite matrix into
// A = L·Lᵀ, with factor storage sized EXACTLY by symbolic analysis before a
// single value is computed.
//
// What:
//
//   - Factor: left-looking numeric Cholesky over a CSC matrix. Accepts the
//     lower triangle alone or the full symmetric matrix; canonicalizes
//     internally.
//   - Factorization: the result bundle — L (diagonal stored first per
//     column) plus the symbolic analysis that sized it, kept for callers
//     that want fill statistics without recomputing.
//
// Why:
//   - The symbolic pass (package symbolic) predicts the exact nonzero count
//     of every factor column from the elimination tree, so the numeric pass
//     allocates once and never grows. A column overrunning its predicted
//     count is an internal inconsistency and fails fast with
//     ErrCapacityExceeded rather than silently reallocating.
//
// Failure model:
//
//	A non-positive diagonal accumulator at any column aborts with
//	ErrNotPositiveDefinite and NO partial result. Recovery (regularization,
//	shifting) is strictly caller-owned: modify the matrix and call Factor
//	again.
//
// Complexity:
//
//	O(n²) worst-case time from the dense work column (the accepted tradeoff
//	of this implementation style), O(nnz(L)) factor storage, O(n) workspace.
package cholesky
