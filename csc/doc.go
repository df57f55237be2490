// Package csc implements compressed sparse column (CSC) storage and the
// traversal primitives every factorization in this module is built on.
//
// What:
//
//   - Matrix: the module-wide wire format — a (Values, RowIndex, ColPtr)
//     triple with exported fields, so collaborators can assemble and consume
//     matrices without conversion layers.
//   - Constructors: NewMatrix (adopt a prebuilt triple, validated),
//     FromTriplets (coordinate form with duplicate summation), FromDense.
//   - Structural kernels: Transpose (counting sort), Tril (lower triangle),
//     CumulativeSum (column-pointer assembly), EliminationTree.
//   - Traversal kernels: Reach (topologically ordered reachability over a
//     triangular factor's pattern) and SpSolve (sparse right-hand-side
//     triangular solve with pattern discovery). Both run on explicit stacks;
//     recursion depth never grows with the matrix.
//
// Why:
//   - One storage layout shared by inputs and factors keeps every downstream
//     package (symbolic, cholesky, lu, triangular, qr, solve) free of format
//     adapters.
//   - Reach/SpSolve are the classic sparse-solve building blocks: the pattern
//     of the solution is discovered by graph traversal before any arithmetic
//     happens, so work is proportional to nonzeros touched, not to n.
//
// Key Types & Constants:
//
//   - Matrix: Rows, Cols int32; ColPtr []int32 (len Cols+1, non-decreasing);
//     RowIndex []int32; Values []float64. Intra-column row order is not
//     guaranteed sorted.
//   - Index width is int32 throughout: at the target scale (n around 10^5 to
//     10^6) this halves index memory against int64.
//
// Visited marking:
//
//	Traversals mark a node j by flipping G.ColPtr[j] to a strictly negative
//	code (flip(i) = -(i+2), its own inverse, with -1 a fixed point). Marks are
//	restored before Reach/SpSolve return, but a Matrix being traversed is
//	temporarily mutated: concurrent calls sharing one factor are not safe.
//
// Complexity:
//
//   - Transpose/Tril/FromTriplets: O(nnz + dimensions)
//   - EliminationTree:             O(nnz · α(n)) via path compression
//   - Reach/SpSolve:               O(nodes + edges touched), output in
//     topological order of the column graph
//
// Errors:
//
//   - ErrNilMatrix          nil *Matrix argument
//   - ErrBadShape           negative or inconsistent dimensions
//   - ErrBadTriple          malformed ColPtr/RowIndex/Values triple
//   - ErrOutOfRange         row, column, or right-hand-side column out of range
//   - ErrDimensionMismatch  operand dimensions incompatible
//   - ErrNonSquare          square matrix required
//   - ErrNaNInf             NaN or ±Inf rejected at ingestion
package csc
