// SPDX-License-Identifier: MIT

// Package lu factors a square matrix into P·A = L·U by a left-looking
// algorithm with threshold partial pivoting.
//
// What:
//
//   - Factor: for each column k, the permuted column of A is scattered into
//     a dense work vector, forward-solved against the already-built columns
//     of L, and split into U(:,k) (rows ≤ k, diagonal stored LAST) and
//     L(:,k) (unit diagonal stored FIRST, then the scaled rows > k).
//   - Factorization: L, U, the row permutation pair (Perm, Pinv), and the
//     swap parity. Det derives the determinant from U's diagonal.
//
// Pivoting:
//
//	The pivot threshold τ ∈ [0,1] (WithPivotThreshold) interpolates between
//	full partial pivoting (τ=0, the default) and no pivoting at all (τ=1):
//	the diagonal candidate x[k] is kept unless |x[k]| < (1-τ)·max|x[r≥k]|,
//	in which case the FIRST row of maximal magnitude takes its place — a
//	fixed tie-break that makes the factorization bit-reproducible. A swap
//	updates Perm and Pinv together (Pinv[Perm[i]] == i holds at every step)
//	and retroactively relabels row-k/pivot-row references already stored in
//	earlier L columns.
//
// Failure model:
//
//	A numerically zero pivot aborts with ErrSingular, no partial result.
//	Factor storage is preallocated to 10·nnz(A) + n entries per factor (the
//	module-wide safe-sizing heuristic); a column pushing past that bound
//	aborts with ErrCapacityExceeded — fatal, never silent growth.
//
// Complexity:
//
//	O(n²) worst-case time from the dense per-column scatter/solve (the
//	accepted tradeoff of this style versus a fully pattern-tracked variant),
//	O(nnz(L)+nnz(U)) factor storage, O(n) workspace.
package lu
