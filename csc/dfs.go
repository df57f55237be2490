// SPDX-License-Identifier: MIT
// Package csc: reachability and sparse-RHS triangular solve over a factor's
// pattern. These are the kernels that discover WHERE the nonzeros of a
// solution live before any arithmetic runs.

package csc

const (
	opReach   = "Reach"
	opSpSolve = "SpSolve"
)

// Reach returns the set of nodes reachable in the column graph of G from the
// nonzero rows of B(:,k), in topological order (every node precedes the nodes
// it can reach). For a triangular factor G this is precisely the nonzero
// pattern of the solution of G·x = B(:,k).
//
// Implementation:
//   - Stage 1: validate operands and the column selector.
//   - Stage 2: run a depth-first search from each unmarked nonzero of B(:,k).
//     Visited marking flips G.ColPtr entries in place (see package doc); the
//     stack is explicit, so recursion depth never grows with n.
//   - Stage 3: restore the flipped pointers and copy the reach out.
//
// Inputs:
//   - g:    square n×n pattern to traverse (values ignored here).
//   - b:    right-hand-side holder; column k supplies the start nodes.
//   - k:    column of b to start from.
//   - pinv: optional row permutation (node j lives in column pinv[j] of g);
//     nil means identity. A negative pinv entry marks an empty column.
//
// Returns:
//   - the reached node set in topological order, freshly allocated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrOutOfRange.
//
// Notes:
//   - g is temporarily mutated (marks) and restored before return, hence no
//     concurrent traversals of one matrix.
//
// Complexity:
//   - Time O(nodes + edges touched) — output-sensitive, not O(n).
func Reach(g, b *Matrix, k int32, pinv []int32) ([]int32, error) {
	if err := validateTraversal(g, b, k, pinv); err != nil {
		return nil, cscErrorf(opReach, err)
	}

	n := g.Cols
	xi := make([]int32, 2*n) // xi[:n] holds both stacks, xi[n:] resume positions
	top := reachInto(g, b, k, xi, pinv)

	out := make([]int32, n-top)
	copy(out, xi[top:n])

	return out, nil
}

// SpSolve solves G·x = B(:,k) for a sparse right-hand side, where G is a
// triangular matrix stored column-wise.
//
// Implementation:
//   - Stage 1: Reach discovers the solution pattern in topological order.
//   - Stage 2: B(:,k) is scattered into a dense work vector.
//   - Stage 3: one pass over the pattern performs the substitution: divide by
//     the diagonal of G, then subtract the scaled column from the work vector.
//
// Behavior highlights:
//   - lower=true expects each referenced column of G to store its diagonal as
//     the FIRST entry (forward substitution); lower=false expects it LAST
//     (backward substitution). The factorizations emit exactly these layouts.
//   - No zero-diagonal check is performed here: this is a kernel, and a zero
//     divides into ±Inf exactly as the caller's data dictates. The dense
//     triangular solvers carry the user-facing checks.
//
// Inputs:
//   - g, b, k, pinv: as for Reach; g's Values are consumed this time.
//   - lower: diagonal placement policy, see above.
//
// Returns:
//   - pattern: nonzero positions of x in topological order.
//   - x: dense solution vector of length n; positions outside pattern are 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrOutOfRange.
//
// Complexity:
//   - Time O(flops on reached entries), Space O(n) for the work vector.
func SpSolve(g, b *Matrix, k int32, lower bool, pinv []int32) ([]int32, []float64, error) {
	if err := validateTraversal(g, b, k, pinv); err != nil {
		return nil, nil, cscErrorf(opSpSolve, err)
	}

	n := g.Cols
	xi := make([]int32, 2*n)
	x := make([]float64, n) // fresh allocation: already cleared
	top := reachInto(g, b, k, xi, pinv)

	// Scatter the right-hand side.
	var p int32
	for p = b.ColPtr[k]; p < b.ColPtr[k+1]; p++ {
		x[b.RowIndex[p]] = b.Values[p]
	}

	// Substitute along the topological order.
	var px, j, jj, d, q int32
	for px = top; px < n; px++ {
		j = xi[px] // x[j] is nonzero
		jj = j     // column of G holding node j
		if pinv != nil {
			jj = pinv[j]
		}
		if jj < 0 {
			continue // empty column
		}
		if lower {
			d = g.ColPtr[jj] // diagonal first
			p = g.ColPtr[jj] + 1
			q = g.ColPtr[jj+1]
		} else {
			d = g.ColPtr[jj+1] - 1 // diagonal last
			p = g.ColPtr[jj]
			q = g.ColPtr[jj+1] - 1
		}
		x[j] /= g.Values[d]
		for ; p < q; p++ {
			x[g.RowIndex[p]] -= g.Values[p] * x[j]
		}
	}

	pattern := make([]int32, n-top)
	copy(pattern, xi[top:n])

	return pattern, x, nil
}

// validateTraversal gathers the shared Reach/SpSolve argument checks.
// Returns plain sentinels; callers wrap with their operation tag.
func validateTraversal(g, b *Matrix, k int32, pinv []int32) error {
	if err := ValidateSquare(g); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if b.Rows != g.Cols {
		return ErrDimensionMismatch
	}
	if k < 0 || k >= b.Cols {
		return ErrOutOfRange
	}
	if pinv != nil && len(pinv) != int(g.Cols) {
		return ErrDimensionMismatch
	}

	return nil
}

// reachInto runs the reach computation into caller-provided workspace.
// xi needs 2n entries: xi[:n] is shared by the recursion stack (growing up
// from 0) and the output stack (growing down from n) — together they never
// exceed n nodes — and xi[n:] keeps the paused scan position of each frame.
// On return, xi[top:n] holds the reach in topological order and all marks on
// g have been restored.
func reachInto(g, b *Matrix, k int32, xi []int32, pinv []int32) int32 {
	n := g.Cols
	top := n
	var p int32
	for p = b.ColPtr[k]; p < b.ColPtr[k+1]; p++ {
		if !marked(g.ColPtr, b.RowIndex[p]) {
			top = depthFirst(b.RowIndex[p], g, top, xi, xi[n:], pinv)
		}
	}
	for p = top; p < n; p++ {
		mark(g.ColPtr, xi[p]) // unflip: mark is its own inverse
	}

	return top
}

// depthFirst explores the column graph of g from node j, pushing finished
// nodes onto the output stack xi[top-1], xi[top-2], ... so that the final
// xi[top:n] reads in topological order.
//
// The traversal keeps an explicit frame stack in xi[0..head] with the paused
// entry cursor of each frame in pstack[0..head]: when a frame discovers an
// unmarked neighbor it pauses itself, pushes the child, and resumes from the
// saved cursor once the child's subtree is done.
func depthFirst(j int32, g *Matrix, top int32, xi, pstack []int32, pinv []int32) int32 {
	var i, p, p2, jnew int32
	var done bool
	head := int32(0)
	xi[0] = j
	for head >= 0 {
		j = xi[head] // frame under inspection
		jnew = j
		if pinv != nil {
			jnew = pinv[j]
		}
		if !marked(g.ColPtr, j) {
			mark(g.ColPtr, j) // first visit: mark and set the scan start
			if jnew < 0 {
				pstack[head] = 0
			} else {
				pstack[head] = unflip(g.ColPtr[jnew])
			}
		}
		done = true // assume no unvisited neighbor remains
		p2 = 0
		if jnew >= 0 {
			p2 = unflip(g.ColPtr[jnew+1])
		}
		for p = pstack[head]; p < p2; p++ {
			i = g.RowIndex[p]
			if marked(g.ColPtr, i) {
				continue
			}
			pstack[head] = p // pause this frame
			head++
			xi[head] = i // descend into the neighbor
			done = false

			break
		}
		if done {
			head-- // pop the finished frame
			top--
			xi[top] = j // and emit it topologically
		}
	}

	return top
}
