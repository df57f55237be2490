// Package symbolic performs the structure-only analysis that precedes a
// Cholesky factorization: elimination-tree postordering and exact per-column
// nonzero counts of the factor, computed without a single floating-point
// operation.
//
// What:
//
//   - Postorder: reorders an elimination tree so that every node appears
//     after all of its descendants, using first-child/next-sibling lists and
//     an explicit stack.
//   - ColumnCounts: the skeleton-leaf counting algorithm — exact nnz of every
//     column of the Cholesky factor in near-linear time, by classifying each
//     below-diagonal entry as a subtree leaf (or not) and charging
//     least-common-ancestor overlaps via a path-compressed union-find.
//   - Analyze: the facade — canonicalizes the input, builds the tree
//     (csc.EliminationTree on the transposed lower triangle), postorders it,
//     and counts.
//
// Why:
//   - The numeric factorization allocates its entire output up front from
//     these counts; no reallocation ever happens mid-factorization. A count
//     mismatch there is a hard internal error, so exactness (not an upper
//     bound) is the whole point.
//
// Inputs:
//
//	A square symmetric matrix. Either the lower triangle alone or the full
//	symmetric matrix may be stored; above-diagonal entries are ignored by the
//	counting pass and the facade extracts what each stage needs.
//
// Complexity:
//
//   - Postorder:    O(n)
//   - ColumnCounts: O(nnz · α(n))
//   - Analyze:      O(nnz + n) beyond the above (transpose + extraction)
//
// Errors:
//
//   - ErrInvalidTree          malformed parent/postorder array
//   - csc.ErrNilMatrix        nil input matrix
//   - csc.ErrNonSquare        non-square input
//   - csc.ErrDimensionMismatch parent/post length inconsistent with the matrix
package symbolic
