// SPDX-License-Identifier: MIT
// Package csc: elimination tree of a symmetric matrix.

package csc

const opEliminationTree = "EliminationTree"

// EliminationTree computes the elimination tree of a square symmetric matrix
// from the above-diagonal entries of its columns.
//
// The tree is returned as a parent array: parent[j] is the parent of column j,
// or -1 for a root. It predicts the column dependency structure of a Cholesky
// factorization without computing any numeric values.
//
// Implementation:
//   - Columns are processed in ascending order. For column k, every stored
//     entry with row i < k walks the path-compressed ancestor array from i
//     upward; each traversed node has its ancestor retargeted to k, and a
//     node found without a parent is attached to k.
//   - Entries with row ≥ k are skipped by the walk's loop condition, so a
//     full symmetric input needs no preprocessing. A matrix holding only the
//     lower triangle has no above-diagonal entries and yields a forest of
//     singletons; callers with lower-triangular data transpose first.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed column order and fixed entry order per column; identical input
//     always yields the identical parent array.
//
// Complexity:
//   - Time O(nnz · α(n)) thanks to path compression, Space O(n).
func EliminationTree(a *Matrix) ([]int32, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, cscErrorf(opEliminationTree, err)
	}

	n := a.Cols
	parent := make([]int32, n)
	ancestor := make([]int32, n)
	var k, p, i, next int32
	for k = 0; k < n; k++ {
		parent[k] = -1
		ancestor[k] = -1
		for p = a.ColPtr[k]; p < a.ColPtr[k+1]; p++ {
			// Walk from row i toward the root, compressing the path onto k.
			for i = a.RowIndex[p]; i != -1 && i < k; i = next {
				next = ancestor[i]
				ancestor[i] = k
				if next == -1 {
					parent[i] = k // i had no ancestor: k adopts it
				}
			}
		}
	}

	return parent, nil
}
