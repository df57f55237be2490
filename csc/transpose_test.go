// Package csc_test contains unit tests for the structural kernels.
package csc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsolve/csc"
)

func TestTranspose_Involution(t *testing.T) {
	m, err := csc.FromDense([][]float64{
		{1, 0, 2},
		{0, 3, 0},
	})
	require.NoError(t, err)

	mt, err := csc.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{1, 0},
		{0, 3},
		{2, 0},
	}, mt.ToDense())

	back, err := csc.Transpose(mt)
	require.NoError(t, err)
	require.Equal(t, m.ToDense(), back.ToDense())
}

func TestTranspose_SortsUnsortedColumns(t *testing.T) {
	// One column with rows stored in descending order: 2, 1, 0.
	m, err := csc.NewMatrix(3, 1,
		[]int32{0, 3},
		[]int32{2, 1, 0},
		[]float64{30, 20, 10},
	)
	require.NoError(t, err)

	// Transposing twice funnels every entry through the counting sort, so the
	// final column comes out in ascending row order.
	mt, err := csc.Transpose(m)
	require.NoError(t, err)
	back, err := csc.Transpose(mt)
	require.NoError(t, err)

	require.Equal(t, []int32{0, 1, 2}, back.RowIndex)
	require.Equal(t, []float64{10, 20, 30}, back.Values)
}

func TestTranspose_NilMatrix(t *testing.T) {
	_, err := csc.Transpose(nil)
	require.ErrorIs(t, err, csc.ErrNilMatrix)
}

func TestTril_KeepsLowerTriangle(t *testing.T) {
	m, err := csc.FromDense([][]float64{
		{1, 7, 8},
		{2, 4, 9},
		{3, 5, 6},
	})
	require.NoError(t, err)

	low, err := csc.Tril(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{1, 0, 0},
		{2, 4, 0},
		{3, 5, 6},
	}, low.ToDense())

	// FromDense emits ascending rows per column, so every kept column of the
	// lower triangle leads with its diagonal — the forward-solver contract.
	var j int32
	for j = 0; j < low.Cols; j++ {
		require.Equal(t, j, low.RowIndex[low.ColPtr[j]], "column %d must lead with the diagonal", j)
	}
}

func TestTril_NilMatrix(t *testing.T) {
	_, err := csc.Tril(nil)
	require.ErrorIs(t, err, csc.ErrNilMatrix)
}
