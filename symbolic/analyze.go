// SPDX-License-Identifier: MIT
// Package symbolic: the analysis facade consumed by the numeric Cholesky.

package symbolic

import "github.com/katalvlaran/sparsolve/csc"

const opAnalyze = "Analyze"

// Analysis bundles everything the numeric factorization needs to size and
// drive itself: the elimination tree, its postorder, and the exact factor
// column counts. Immutable once returned.
type Analysis struct {
	// Parent is the elimination tree: Parent[j] is the parent of column j,
	// -1 for roots.
	Parent []int32

	// Post is a postordering of Parent: descendants before ancestors.
	Post []int32

	// ColCount[j] is the exact nonzero count of factor column j, diagonal
	// included. The factorization allocates sum(ColCount) entries up front.
	ColCount []int32
}

// Analyze runs the full symbolic pipeline on a square symmetric matrix.
//
// Implementation:
//   - Stage 1: canonicalize — keep the lower triangle (a no-op when the
//     caller already stores only the lower triangle).
//   - Stage 2: the elimination tree wants above-diagonal entries, so it runs
//     on the transposed lower triangle.
//   - Stage 3: postorder the tree, then count factor columns on the lower
//     pattern.
//
// Inputs:
//   - a: square matrix storing the lower triangle or the full symmetric
//     pattern; values are never read.
//
// Errors:
//   - csc.ErrNilMatrix, csc.ErrNonSquare (wrapped with the operation tag).
//
// Complexity:
//   - Time O(nnz · α(n) + n), Space O(nnz + n).
func Analyze(a *csc.Matrix) (*Analysis, error) {
	if err := csc.ValidateSquare(a); err != nil {
		return nil, symbolicErrorf(opAnalyze, err)
	}

	// 1. Lower triangle of the pattern.
	low, err := csc.Tril(a)
	if err != nil {
		return nil, symbolicErrorf(opAnalyze, err)
	}

	// 2. Elimination tree over the above-diagonal mirror.
	up, err := csc.Transpose(low)
	if err != nil {
		return nil, symbolicErrorf(opAnalyze, err)
	}
	parent, err := csc.EliminationTree(up)
	if err != nil {
		return nil, symbolicErrorf(opAnalyze, err)
	}

	// 3. Postorder and exact counts.
	post, err := Postorder(parent)
	if err != nil {
		return nil, symbolicErrorf(opAnalyze, err)
	}
	counts, err := ColumnCounts(low, parent, post)
	if err != nil {
		return nil, symbolicErrorf(opAnalyze, err)
	}

	return &Analysis{Parent: parent, Post: post, ColCount: counts}, nil
}
