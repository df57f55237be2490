// SPDX-License-Identifier: MIT
// Package lu: the left-looking factorization kernel with threshold pivoting.

package lu

import (
	"math"

	"github.com/katalvlaran/sparsolve/csc"
)

// Operation tags used in wrapped errors (no magic strings at call sites).
const (
	opFactor = "Factor"
	opDet    = "Det"
)

// capacityFactor and capacitySlack size each factor's preallocation as
// capacityFactor·nnz(A) + capacitySlack·n — the module-wide safe-sizing
// heuristic for fill-in without a symbolic LU pass.
const (
	capacityFactor = 10
	capacitySlack  = 1
)

// Factorization is the immutable result of a successful Factor call.
//
// Row indices of L and U live in PIVOTAL coordinates: position k is the row
// that ended up k-th after pivoting. Perm maps positions back to original
// rows, so solving A·x = b means permuting b by Perm first, then forward- and
// backward-substituting (see package solve).
type Factorization struct {
	// L is unit lower triangular; every column stores the 1.0 diagonal
	// FIRST, then the below-diagonal entries.
	L *csc.Matrix

	// U is upper triangular; every column stores its diagonal LAST.
	U *csc.Matrix

	// Perm maps pivotal positions to original rows: Perm[k] is the original
	// row now at position k. Triangular solves consume THIS orientation,
	// never its inverse.
	Perm []int32

	// Pinv is the exact inverse of Perm: Pinv[Perm[i]] == i for all i.
	Pinv []int32

	// swaps counts the pivot exchanges performed; its parity signs Det.
	swaps int32
}

// Factor computes P·A = L·U with threshold partial pivoting.
//
// Implementation:
//   - Stage 1: validate, size both factors at capacityFactor·nnz+n entries,
//     set Perm/Pinv to identity.
//   - Stage 2: for each column k — scatter the permuted column of A into the
//     dense work vector (original row i lands at position Pinv[i]); sweep
//     positions j = 0..k-1 ascending and subtract x[j]·L(:,j) for every
//     nonzero x[j] (the forward solve against the finished part of L);
//     select the pivot among positions ≥ k (pickPivot); swap Perm/Pinv and
//     relabel row-k/pivot references already stored in earlier L columns
//     (applyPivot); abort with ErrSingular when the pivot is numerically
//     zero.
//   - Stage 3: emit U(:,k) from positions 0..k (diagonal last) and L(:,k)
//     from positions k+1..n-1 scaled by the pivot (unit diagonal first),
//     clearing the work vector as it drains.
//
// Inputs:
//   - a:    square matrix, never mutated.
//   - opts: WithPivotThreshold; zero options mean full partial pivoting.
//
// Returns:
//   - *Factorization with L, U and the permutation pair.
//
// Errors:
//   - csc.ErrNilMatrix, csc.ErrNonSquare, ErrSingular, ErrCapacityExceeded.
//
// Determinism:
//   - Fixed sweep order and first-of-max pivot tie-break: identical input
//     and τ always yield bit-identical Perm, L and U.
//
// Complexity:
//   - Time O(n² + flops) from the dense per-column pass, Space
//     O(nnz(L)+nnz(U)+n).
func Factor(a *csc.Matrix, opts ...Option) (*Factorization, error) {
	if err := csc.ValidateSquare(a); err != nil {
		return nil, luErrorf(opFactor, err)
	}
	cfg := gatherOptions(opts...)

	n := a.Cols
	capacity := capacityFactor*a.NNZ() + capacitySlack*n

	f := &Factorization{
		Perm: make([]int32, n),
		Pinv: make([]int32, n),
	}
	lPtr := make([]int32, n+1)
	lRow := make([]int32, capacity)
	lVal := make([]float64, capacity)
	uPtr := make([]int32, n+1)
	uRow := make([]int32, capacity)
	uVal := make([]float64, capacity)

	var k int32
	for k = 0; k < n; k++ {
		f.Perm[k] = k
		f.Pinv[k] = k
	}

	x := make([]float64, n) // dense work column in pivotal coordinates

	var lnz, unz, p, i, j, pivot int32
	for k = 0; k < n; k++ {
		// 2a. Scatter the permuted column of A.
		for p = a.ColPtr[k]; p < a.ColPtr[k+1]; p++ {
			x[f.Pinv[a.RowIndex[p]]] += a.Values[p]
		}

		// 2b. Forward solve against the finished columns of L. The sweep is
		// ascending, so fill produced at positions > j is consumed later in
		// the same sweep.
		for j = 0; j < k; j++ {
			if x[j] == 0 {
				continue
			}
			for p = lPtr[j] + 1; p < lPtr[j+1]; p++ { // skip the unit diagonal
				x[lRow[p]] -= lVal[p] * x[j]
			}
		}

		// 2c. Pivot selection and permutation update.
		pivot = pickPivot(x, k, n, cfg.tau)
		if pivot != k {
			x[k], x[pivot] = x[pivot], x[k]
			applyPivot(f, k, pivot, lRow[:lnz])
		}
		if x[k] == 0 {
			return nil, luErrorf(opFactor, ErrSingular)
		}

		// 3a. U(:,k): positions 0..k-1, then the diagonal LAST.
		for j = 0; j < k; j++ {
			if x[j] == 0 {
				continue
			}
			if unz >= capacity {
				return nil, luErrorf(opFactor, ErrCapacityExceeded)
			}
			uRow[unz] = j
			uVal[unz] = x[j]
			x[j] = 0
			unz++
		}
		if unz >= capacity {
			return nil, luErrorf(opFactor, ErrCapacityExceeded)
		}
		uRow[unz] = k
		uVal[unz] = x[k]
		unz++
		uPtr[k+1] = unz

		// 3b. L(:,k): the unit diagonal FIRST, then positions k+1..n-1
		// scaled by the pivot.
		if lnz >= capacity {
			return nil, luErrorf(opFactor, ErrCapacityExceeded)
		}
		lRow[lnz] = k
		lVal[lnz] = 1
		lnz++
		for i = k + 1; i < n; i++ {
			if x[i] == 0 {
				continue
			}
			if lnz >= capacity {
				return nil, luErrorf(opFactor, ErrCapacityExceeded)
			}
			lRow[lnz] = i
			lVal[lnz] = x[i] / x[k]
			x[i] = 0
			lnz++
		}
		x[k] = 0
		lPtr[k+1] = lnz
	}

	var err error
	f.L, err = csc.NewMatrix(n, n, lPtr, lRow[:lnz], lVal[:lnz])
	if err != nil {
		return nil, luErrorf(opFactor, err)
	}
	f.U, err = csc.NewMatrix(n, n, uPtr, uRow[:unz], uVal[:unz])
	if err != nil {
		return nil, luErrorf(opFactor, err)
	}

	return f, nil
}

// pickPivot selects the pivot position for column k among positions k..n-1
// of the work vector under the threshold rule: keep the diagonal candidate
// unless |x[k]| < (1-tau)·max|x[r]|, in which case the FIRST position of
// maximal magnitude wins (fixed tie-break, bit-reproducible runs). tau=1
// short-circuits to "never swap".
func pickPivot(x []float64, k, n int32, tau float64) int32 {
	if tau == 1 {
		return k
	}

	best := k
	bestMag := math.Abs(x[k])
	var r int32
	var mag float64
	for r = k + 1; r < n; r++ {
		mag = math.Abs(x[r])
		if mag > bestMag {
			best = r
			bestMag = mag
		}
	}
	if math.Abs(x[k]) >= (1-tau)*bestMag {
		return k
	}

	return best
}

// applyPivot swaps positions k and pivot: Perm and Pinv are updated together
// (the Pinv[Perm[i]] == i invariant never breaks, even mid-factorization),
// and every row-k/pivot reference already stored in earlier L columns is
// relabeled, because L's row indices live in pivotal coordinates.
func applyPivot(f *Factorization, k, pivot int32, lRow []int32) {
	f.Perm[k], f.Perm[pivot] = f.Perm[pivot], f.Perm[k]
	f.Pinv[f.Perm[k]] = k
	f.Pinv[f.Perm[pivot]] = pivot
	f.swaps++

	for p := range lRow {
		switch lRow[p] {
		case k:
			lRow[p] = pivot
		case pivot:
			lRow[p] = k
		}
	}
}

// Det returns the determinant of A from the factorization: the product of
// U's diagonal entries, signed by the parity of the pivot swaps. The diagonal
// of each U column is its LAST stored entry (emission contract of Factor).
//
// A nil receiver or a receiver without factors reports 0.
func (f *Factorization) Det() float64 {
	if f == nil || f.U == nil {
		return 0
	}

	det := 1.0
	if f.swaps%2 == 1 {
		det = -1.0
	}
	var k int32
	for k = 0; k < f.U.Cols; k++ {
		det *= f.U.Values[f.U.ColPtr[k+1]-1]
	}

	return det
}
