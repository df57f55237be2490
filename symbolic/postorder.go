// SPDX-License-Identifier: MIT
// Package symbolic: elimination-tree postordering.

package symbolic

const opPostorder = "Postorder"

// Postorder returns a postordering of the forest encoded by the parent array:
// post[k] is the node visited k-th, and every node appears after all of its
// descendants.
//
// Implementation:
//   - Stage 1: validate parent entries (range check).
//   - Stage 2: build first-child/next-sibling lists by scanning nodes in
//     REVERSE order, so each child list comes out in ascending node order —
//     that makes the postorder deterministic.
//   - Stage 3: run an explicit-stack traversal from every root in ascending
//     order. A node is emitted when its child list is exhausted; otherwise
//     the youngest remaining child is unlinked and pushed.
//   - Stage 4: a traversal that emits fewer than n nodes means the parent
//     array contained a cycle or an unreachable cluster — rejected.
//
// Inputs:
//   - parent: parent[j] is the parent of node j, -1 for roots.
//
// Returns:
//   - post: a permutation of 0..n-1, descendants before ancestors.
//
// Errors:
//   - ErrInvalidTree (wrapped with the operation tag).
//
// Determinism:
//   - Fixed root order and ascending child lists: identical input always
//     yields the identical postorder.
//
// Complexity:
//   - Time O(n), Space O(n). Stack depth is explicit, bounded by n entries,
//     never by goroutine stack growth.
func Postorder(parent []int32) ([]int32, error) {
	n := int32(len(parent))

	// 1. Range validation up front.
	var j int32
	for j = 0; j < n; j++ {
		if parent[j] < -1 || parent[j] >= n {
			return nil, symbolicErrorf(opPostorder, ErrInvalidTree)
		}
	}

	// 2. Child lists, youngest-first after the reverse scan.
	head := make([]int32, n) // head[p]: first child of p, -1 when none
	next := make([]int32, n) // next[j]: next sibling of j
	for j = 0; j < n; j++ {
		head[j] = -1
	}
	for j = n - 1; j >= 0; j-- {
		if parent[j] == -1 {
			continue // roots enter no child list
		}
		next[j] = head[parent[j]]
		head[parent[j]] = j
	}

	// 3. Traverse every tree of the forest.
	post := make([]int32, n)
	stack := make([]int32, n)
	var k int32
	for j = 0; j < n; j++ {
		if parent[j] != -1 {
			continue // only roots start a traversal
		}
		k = traverse(j, k, head, next, post, stack)
	}

	// 4. Anything left unvisited: the input was not a forest.
	if k != n {
		return nil, symbolicErrorf(opPostorder, ErrInvalidTree)
	}

	return post, nil
}

// traverse emits the subtree rooted at j in postorder, starting at output
// position k, and returns the next free position. head is consumed: each
// child is unlinked from its parent's list as it is pushed.
func traverse(j, k int32, head, next, post, stack []int32) int32 {
	var p, i int32
	top := int32(0)
	stack[0] = j
	for top >= 0 {
		p = stack[top] // node under inspection
		i = head[p]    // youngest remaining child
		if i == -1 {
			top-- // no children left: p is next in postorder
			post[k] = p
			k++
		} else {
			head[p] = next[i] // unlink i
			top++
			stack[top] = i // descend
		}
	}

	return k
}
