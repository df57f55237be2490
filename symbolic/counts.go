// SPDX-License-Identifier: MIT
// Package symbolic: exact per-column nonzero counts of the Cholesky factor.

package symbolic

import "github.com/katalvlaran/sparsolve/csc"

const opColumnCounts = "ColumnCounts"

// ColumnCounts computes the exact number of nonzeros of every column of the
// Cholesky factor L (diagonal included) without performing the factorization.
//
// Implementation (skeleton-leaf counting):
//   - Stage 1: one pass over the postorder records first[j], the postorder
//     rank of the first descendant of every node. A node whose first slot is
//     still unset when its own turn comes is a leaf and starts with weight 1.
//   - Stage 2: nodes are processed in postorder. Every stored entry (i, j)
//     with i > j is classified by leaf(): if column j is a new leaf of row
//     subtree i, node j gains weight; if it is a SUBSEQUENT leaf, the least
//     common ancestor with the previous leaf loses weight, cancelling the
//     double count along the shared path. The LCA comes from a
//     path-compressed union-find that grows with the postorder sweep.
//   - Stage 3: weights accumulate up the tree (ascending j suffices, since a
//     valid elimination tree always has parent[j] > j).
//
// Inputs:
//   - a:      square matrix holding at least the lower triangle of the
//     symmetric pattern; above-diagonal entries are ignored, values unused.
//   - parent: elimination tree of a (csc.EliminationTree).
//   - post:   postorder of parent (Postorder).
//
// Returns:
//   - counts: counts[j] = nnz of L(:,j), diagonal included.
//
// Errors:
//   - csc.ErrNilMatrix, csc.ErrNonSquare, csc.ErrDimensionMismatch,
//     ErrInvalidTree.
//
// Determinism:
//   - Pure function of the pattern; fixed sweep order.
//
// Complexity:
//   - Time O(nnz · α(n)), Space O(n). This is the exact-count algorithm, not
//     an upper-bound heuristic: the numeric factorization sizes its entire
//     output from these values.
func ColumnCounts(a *csc.Matrix, parent, post []int32) ([]int32, error) {
	// 1. Argument validation: matrix shape, array lengths, tree integrity.
	if err := csc.ValidateSquare(a); err != nil {
		return nil, symbolicErrorf(opColumnCounts, err)
	}
	n := a.Cols
	if int32(len(parent)) != n || int32(len(post)) != n {
		return nil, symbolicErrorf(opColumnCounts, csc.ErrDimensionMismatch)
	}
	var j int32
	for j = 0; j < n; j++ {
		// A valid elimination tree points strictly upward.
		if parent[j] != -1 && (parent[j] <= j || parent[j] >= n) {
			return nil, symbolicErrorf(opColumnCounts, ErrInvalidTree)
		}
	}
	seen := make([]bool, n)
	for j = 0; j < n; j++ {
		if post[j] < 0 || post[j] >= n || seen[post[j]] {
			return nil, symbolicErrorf(opColumnCounts, ErrInvalidTree)
		}
		seen[post[j]] = true
	}

	counts := make([]int32, n) // carries the delta weights, then the result
	first := make([]int32, n)
	maxfirst := make([]int32, n)
	prevleaf := make([]int32, n)
	ancestor := make([]int32, n)
	for j = 0; j < n; j++ {
		first[j] = -1
		maxfirst[j] = -1
		prevleaf[j] = -1
	}

	// 2. First-descendant ranks; leaves start with the diagonal's weight.
	var k, q, jleaf, p, i int32
	for k = 0; k < n; k++ {
		j = post[k]
		if first[j] == -1 {
			counts[j] = 1 // j is a leaf: its column starts with the diagonal
		} else {
			counts[j] = 0
		}
		for ; j != -1 && first[j] == -1; j = parent[j] {
			first[j] = k
		}
	}

	// 3. Postorder sweep, classifying every below-diagonal entry.
	for j = 0; j < n; j++ {
		ancestor[j] = j // union-find: each node in its own set
	}
	for k = 0; k < n; k++ {
		j = post[k]
		if parent[j] != -1 {
			counts[parent[j]]-- // j passes one shared path to its parent
		}
		for p = a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			i = a.RowIndex[p]
			q, jleaf = leaf(i, j, first, maxfirst, prevleaf, ancestor)
			if jleaf >= 1 {
				counts[j]++ // skeleton entry: row i's subtree gains leaf j
			}
			if jleaf == 2 {
				counts[q]-- // overlap with the previous leaf, charged at the LCA
			}
		}
		if parent[j] != -1 {
			ancestor[j] = parent[j] // fold the finished node into its parent's set
		}
	}

	// 4. Accumulate the deltas bottom-up; ascending order is bottom-up here
	//    because parents always carry larger indices.
	for j = 0; j < n; j++ {
		if parent[j] != -1 {
			counts[parent[j]] += counts[j]
		}
	}

	return counts, nil
}

// leaf decides whether column j is a leaf of the row subtree of i.
// It returns jleaf=0 when (i, j) is not a skeleton entry, jleaf=1 when j is
// the FIRST leaf seen for row i (q is then i itself), and jleaf=2 for a
// subsequent leaf (q is then the least common ancestor of j and the previous
// leaf, found and path-compressed in the growing union-find).
func leaf(i, j int32, first, maxfirst, prevleaf, ancestor []int32) (q, jleaf int32) {
	if i <= j || first[j] <= maxfirst[i] {
		return -1, 0 // not a skeleton entry: subtree already accounted for
	}
	maxfirst[i] = first[j] // latest first-descendant rank seen from row i
	jprev := prevleaf[i]
	prevleaf[i] = j
	if jprev == -1 {
		return i, 1 // first leaf: the whole path to i is new
	}

	// Subsequent leaf: locate the set representative of the previous leaf.
	for q = jprev; q != ancestor[q]; q = ancestor[q] {
	}
	var s, sparent int32
	for s = jprev; s != q; s = sparent {
		sparent = ancestor[s]
		ancestor[s] = q // path compression toward the representative
	}

	return q, 2
}
