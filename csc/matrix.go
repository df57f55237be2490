// SPDX-License-Identifier: MIT
// Package csc: the Matrix triple, its constructors and basic accessors.

package csc

import "math"

// Operation tags used in wrapped errors (no magic strings at call sites).
const (
	opNewMatrix    = "NewMatrix"
	opFromTriplets = "FromTriplets"
	opFromDense    = "FromDense"
	opAt           = "At"
)

// Matrix is a sparse Rows×Cols matrix in compressed sparse column form.
//
// Storage layout (the module-wide wire contract):
//   - ColPtr has length Cols+1, starts at 0 and is non-decreasing; column j
//     occupies the half-open range ColPtr[j]..ColPtr[j+1] of RowIndex/Values.
//   - RowIndex[p] is the row of the p-th stored entry, Values[p] its value.
//   - Row order within a column is NOT guaranteed sorted; producers that do
//     emit a fixed order (the factorizations) document it, consumers that
//     need none (the solvers) scan.
//
// Fields are exported so collaborators can assemble a Matrix directly from
// data produced elsewhere; NewMatrix validates such hand-built triples.
// Duplicate row entries within a column are legal and are read as summed.
type Matrix struct {
	Rows, Cols int32

	ColPtr   []int32
	RowIndex []int32
	Values   []float64
}

// NewMatrix adopts a caller-built CSC triple after structural validation.
//
// Implementation:
//   - Stage 1: validateTriple (shape, pointer monotonicity, entry bounds).
//   - Stage 2: adopt the slices as-is — no copy, the caller hands ownership over.
//
// Inputs:
//   - rows, cols: matrix dimensions, ≥ 0.
//   - colPtr:     len cols+1, colPtr[0] == 0, non-decreasing.
//   - rowIndex, values: exactly colPtr[cols] entries each.
//
// Returns:
//   - *Matrix wrapping the triple.
//
// Errors:
//   - ErrBadShape, ErrBadTriple (wrapped with the operation tag).
//
// Notes:
//   - Values are not scanned for NaN/Inf here; finite-value enforcement
//     happens in the ingestion constructors (FromTriplets, FromDense).
//
// Complexity:
//   - Time O(cols + nnz), Space O(1).
func NewMatrix(rows, cols int32, colPtr, rowIndex []int32, values []float64) (*Matrix, error) {
	if err := validateTriple(rows, cols, colPtr, rowIndex, values); err != nil {
		return nil, cscErrorf(opNewMatrix, err)
	}

	return &Matrix{Rows: rows, Cols: cols, ColPtr: colPtr, RowIndex: rowIndex, Values: values}, nil
}

// FromTriplets builds a Matrix from coordinate (triplet) form.
//
// Implementation:
//   - Stage 1: validate entry coordinates and enforce the finite-value policy.
//   - Stage 2: count entries per column, CumulativeSum into ColPtr.
//   - Stage 3: scatter entries into place, preserving input order per column.
//   - Stage 4: sum duplicates in place, compacting the entry arrays.
//
// Inputs:
//   - rows, cols: matrix dimensions, ≥ 0.
//   - rowIdx, colIdx, values: parallel slices, one entry per triplet.
//
// Returns:
//   - *Matrix with duplicates summed; explicit zeros produced by summation
//     are kept (structure is caller-controlled, never silently pruned).
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch (parallel slices of unequal length),
//     ErrOutOfRange, ErrNaNInf.
//
// Determinism:
//   - Stable for a given triplet sequence: first occurrence of a (row, col)
//     pair fixes its storage position, later duplicates fold into it.
//
// Complexity:
//   - Time O(nnz + rows + cols), Space O(nnz + rows + cols).
func FromTriplets(rows, cols int32, rowIdx, colIdx []int32, values []float64) (*Matrix, error) {
	// 1. Validation: shape, parallel lengths, coordinate bounds, finiteness.
	if rows < 0 || cols < 0 {
		return nil, cscErrorf(opFromTriplets, ErrBadShape)
	}
	if len(rowIdx) != len(values) || len(colIdx) != len(values) {
		return nil, cscErrorf(opFromTriplets, ErrDimensionMismatch)
	}
	nnz := int32(len(values))

	var t int32 // triplet cursor
	count := make([]int32, cols)
	for t = 0; t < nnz; t++ {
		if rowIdx[t] < 0 || rowIdx[t] >= rows || colIdx[t] < 0 || colIdx[t] >= cols {
			return nil, cscErrorf(opFromTriplets, ErrOutOfRange)
		}
		if math.IsNaN(values[t]) || math.IsInf(values[t], 0) {
			return nil, cscErrorf(opFromTriplets, ErrNaNInf)
		}
		count[colIdx[t]]++
	}

	// 2. Column pointers; count becomes the per-column write cursor.
	colPtr := make([]int32, cols+1)
	CumulativeSum(colPtr, count)

	// 3. Scatter. Input order is preserved within each column.
	ri := make([]int32, nnz)
	vx := make([]float64, nnz)
	var p int32 // write position
	for t = 0; t < nnz; t++ {
		p = count[colIdx[t]]
		count[colIdx[t]]++
		ri[p] = rowIdx[t]
		vx[p] = values[t]
	}

	// 4. Fold duplicates. last[i] remembers where row i was last written; a
	//    position ≥ the column's start means "already present in this column".
	last := make([]int32, rows)
	var i int32
	for i = 0; i < rows; i++ {
		last[i] = -1
	}
	var nz, q, j int32
	for j = 0; j < cols; j++ {
		q = nz // compacted start of column j
		for p = colPtr[j]; p < colPtr[j+1]; p++ {
			i = ri[p]
			if last[i] >= q {
				vx[last[i]] += vx[p] // duplicate: fold into the first slot
			} else {
				last[i] = nz
				ri[nz] = i
				vx[nz] = vx[p]
				nz++
			}
		}
		colPtr[j] = q // safe: p and the j+1 bound were read before this write
	}
	colPtr[cols] = nz

	return &Matrix{Rows: rows, Cols: cols, ColPtr: colPtr, RowIndex: ri[:nz], Values: vx[:nz]}, nil
}

// FromDense builds a Matrix from a row-major dense slice, storing every
// non-zero entry. Rows within each column come out in ascending order, so a
// lower-triangular input yields diagonal-first columns and an upper-triangular
// input diagonal-last — exactly the layouts the solvers expect.
//
// Errors: ErrBadShape (ragged input), ErrNaNInf.
// Complexity: O(rows·cols).
func FromDense(d [][]float64) (*Matrix, error) {
	rows := int32(len(d))
	var cols int32
	if rows > 0 {
		cols = int32(len(d[0]))
	}

	// 1. Shape sweep: reject ragged rows and non-finite values, count nonzeros.
	var i, j, nnz int32
	for i = 0; i < rows; i++ {
		if int32(len(d[i])) != cols {
			return nil, cscErrorf(opFromDense, ErrBadShape)
		}
		for j = 0; j < cols; j++ {
			if math.IsNaN(d[i][j]) || math.IsInf(d[i][j], 0) {
				return nil, cscErrorf(opFromDense, ErrNaNInf)
			}
			if d[i][j] != 0 {
				nnz++
			}
		}
	}

	// 2. Column-by-column fill, ascending row order.
	colPtr := make([]int32, cols+1)
	ri := make([]int32, 0, nnz)
	vx := make([]float64, 0, nnz)
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if d[i][j] != 0 {
				ri = append(ri, i)
				vx = append(vx, d[i][j])
			}
		}
		colPtr[j+1] = int32(len(ri))
	}

	return &Matrix{Rows: rows, Cols: cols, ColPtr: colPtr, RowIndex: ri, Values: vx}, nil
}

// At returns the value at (i, j), summing duplicates if the column carries
// any. Absent entries read as zero.
//
// Errors: ErrNilMatrix, ErrOutOfRange. Complexity: O(nnz(column j)).
func (m *Matrix) At(i, j int32) (float64, error) {
	if m == nil {
		return 0, cscErrorf(opAt, ErrNilMatrix)
	}
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		return 0, cscErrorf(opAt, ErrOutOfRange)
	}

	var v float64
	var p int32
	for p = m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
		if m.RowIndex[p] == i {
			v += m.Values[p]
		}
	}

	return v, nil
}

// ToDense expands the matrix into a freshly allocated row-major dense slice.
// Duplicates sum. A nil receiver yields nil. Complexity: O(rows·cols + nnz).
func (m *Matrix) ToDense() [][]float64 {
	if m == nil {
		return nil
	}

	d := make([][]float64, m.Rows)
	var i, j, p int32
	for i = 0; i < m.Rows; i++ {
		d[i] = make([]float64, m.Cols)
	}
	for j = 0; j < m.Cols; j++ {
		for p = m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			d[m.RowIndex[p]][j] += m.Values[p]
		}
	}

	return d
}

// Clone returns a deep copy sharing no storage with the receiver.
// A nil receiver yields nil.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}

	c := &Matrix{
		Rows:     m.Rows,
		Cols:     m.Cols,
		ColPtr:   make([]int32, len(m.ColPtr)),
		RowIndex: make([]int32, len(m.RowIndex)),
		Values:   make([]float64, len(m.Values)),
	}
	copy(c.ColPtr, m.ColPtr)
	copy(c.RowIndex, m.RowIndex)
	copy(c.Values, m.Values)

	return c
}

// NNZ reports the number of stored entries. A nil receiver reports 0.
func (m *Matrix) NNZ() int32 {
	if m == nil {
		return 0
	}

	return m.ColPtr[m.Cols]
}

// Dims reports (rows, cols). A nil receiver reports (0, 0).
func (m *Matrix) Dims() (int32, int32) {
	if m == nil {
		return 0, 0
	}

	return m.Rows, m.Cols
}
