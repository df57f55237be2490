// SPDX-License-Identifier: MIT
// Package csc: structural kernels — transpose and lower-triangle extraction.

package csc

const (
	opTranspose = "Transpose"
	opTril      = "Tril"
)

// Transpose returns Aᵀ, values included, via a counting sort on row indices.
//
// Implementation:
//   - Stage 1: count entries per row of A; CumulativeSum turns the counts
//     into the column pointers of the result.
//   - Stage 2: one scatter pass places every entry (i, j, v) of A at the next
//     free slot of result column i as (j, v).
//
// Behavior highlights:
//   - Result columns come out with row indices in ascending order even when
//     the input columns are unsorted, because input columns are visited in
//     ascending j. Transposing a lower-triangular factor therefore yields
//     diagonal-last columns, which is exactly what the backward solver wants.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(Rows + Cols + nnz), Space O(Rows + nnz).
func Transpose(a *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, cscErrorf(opTranspose, err)
	}

	nnz := a.NNZ()
	count := make([]int32, a.Rows)
	var p, j, q int32
	for p = 0; p < nnz; p++ {
		count[a.RowIndex[p]]++
	}
	colPtr := make([]int32, a.Rows+1)
	CumulativeSum(colPtr, count) // count now holds the write cursors

	ri := make([]int32, nnz)
	vx := make([]float64, nnz)
	for j = 0; j < a.Cols; j++ {
		for p = a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			q = count[a.RowIndex[p]]
			count[a.RowIndex[p]]++
			ri[q] = j // entry A(i,j) lands as entry (j) of result column i
			vx[q] = a.Values[p]
		}
	}

	return &Matrix{Rows: a.Cols, Cols: a.Rows, ColPtr: colPtr, RowIndex: ri, Values: vx}, nil
}

// Tril extracts the lower triangle: every stored entry with row ≥ column.
// Intra-column entry order is preserved, so a sorted input stays sorted and
// its kept columns lead with the diagonal.
//
// Errors: ErrNilMatrix. Complexity: O(Cols + nnz).
func Tril(a *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, cscErrorf(opTril, err)
	}

	colPtr := make([]int32, a.Cols+1)
	ri := make([]int32, 0, a.NNZ())
	vx := make([]float64, 0, a.NNZ())
	var j, p int32
	for j = 0; j < a.Cols; j++ {
		for p = a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			if a.RowIndex[p] >= j {
				ri = append(ri, a.RowIndex[p])
				vx = append(vx, a.Values[p])
			}
		}
		colPtr[j+1] = int32(len(ri))
	}

	return &Matrix{Rows: a.Rows, Cols: a.Cols, ColPtr: colPtr, RowIndex: ri, Values: vx}, nil
}
