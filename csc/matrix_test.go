// Package csc_test contains unit tests for the Matrix constructors and
// accessors.
package csc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsolve/csc"
)

// ident3 is a hand-built 3×3 identity triple used across constructor tests.
func ident3(t *testing.T) *csc.Matrix {
	t.Helper()
	m, err := csc.NewMatrix(3, 3,
		[]int32{0, 1, 2, 3},
		[]int32{0, 1, 2},
		[]float64{1, 1, 1},
	)
	require.NoError(t, err)

	return m
}

func TestNewMatrix_AdoptsValidTriple(t *testing.T) {
	m := ident3(t)
	require.Equal(t, int32(3), m.NNZ())

	rows, cols := m.Dims()
	require.Equal(t, int32(3), rows)
	require.Equal(t, int32(3), cols)

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestNewMatrix_RejectsMalformedTriples(t *testing.T) {
	for name, tc := range map[string]struct {
		rows, cols int32
		colPtr     []int32
		rowIndex   []int32
		values     []float64
		want       error
	}{
		"negative rows":     {-1, 2, []int32{0, 0, 0}, nil, nil, csc.ErrBadShape},
		"negative cols":     {2, -1, []int32{0}, nil, nil, csc.ErrBadShape},
		"short colPtr":      {2, 2, []int32{0, 1}, []int32{0}, []float64{1}, csc.ErrBadTriple},
		"nonzero origin":    {2, 2, []int32{1, 1, 1}, nil, nil, csc.ErrBadTriple},
		"decreasing colPtr": {2, 2, []int32{0, 2, 1}, []int32{0, 1}, []float64{1, 1}, csc.ErrBadTriple},
		"length mismatch":   {2, 2, []int32{0, 1, 2}, []int32{0, 1}, []float64{1}, csc.ErrBadTriple},
		"row out of range":  {2, 2, []int32{0, 1, 2}, []int32{0, 2}, []float64{1, 1}, csc.ErrBadTriple},
	} {
		t.Run(name, func(t *testing.T) {
			m, err := csc.NewMatrix(tc.rows, tc.cols, tc.colPtr, tc.rowIndex, tc.values)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromTriplets_SumsDuplicates(t *testing.T) {
	// Entry (1,0) appears twice: 2.5 + 0.5 must fold into a single 3.0 slot.
	m, err := csc.FromTriplets(2, 2,
		[]int32{0, 1, 1, 0},
		[]int32{0, 0, 0, 1},
		[]float64{1, 2.5, 0.5, 4},
	)
	require.NoError(t, err)
	require.Equal(t, int32(3), m.NNZ(), "duplicate must be folded, not stored twice")

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

func TestFromTriplets_ValidationOrder(t *testing.T) {
	_, err := csc.FromTriplets(-2, 2, nil, nil, nil)
	require.ErrorIs(t, err, csc.ErrBadShape)

	_, err = csc.FromTriplets(2, 2, []int32{0}, []int32{0, 1}, []float64{1, 1})
	require.ErrorIs(t, err, csc.ErrDimensionMismatch)

	_, err = csc.FromTriplets(2, 2, []int32{2}, []int32{0}, []float64{1})
	require.ErrorIs(t, err, csc.ErrOutOfRange)

	_, err = csc.FromTriplets(2, 2, []int32{0}, []int32{0}, []float64{math.NaN()})
	require.ErrorIs(t, err, csc.ErrNaNInf)
}

func TestFromDense_RoundTrip(t *testing.T) {
	d := [][]float64{
		{2, 0, 1},
		{0, 0, 0},
		{-3, 4, 0},
	}
	m, err := csc.FromDense(d)
	require.NoError(t, err)
	require.Equal(t, int32(4), m.NNZ(), "only nonzeros are stored")
	require.Equal(t, d, m.ToDense())
}

func TestFromDense_RejectsRaggedAndNonFinite(t *testing.T) {
	_, err := csc.FromDense([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, csc.ErrBadShape)

	_, err = csc.FromDense([][]float64{{math.Inf(1)}})
	require.ErrorIs(t, err, csc.ErrNaNInf)
}

func TestAt_Bounds(t *testing.T) {
	m := ident3(t)

	_, err := m.At(3, 0)
	require.ErrorIs(t, err, csc.ErrOutOfRange)

	_, err = m.At(0, -1)
	require.ErrorIs(t, err, csc.ErrOutOfRange)

	var nilM *csc.Matrix
	_, err = nilM.At(0, 0)
	require.ErrorIs(t, err, csc.ErrNilMatrix)
}

func TestClone_SharesNothing(t *testing.T) {
	m := ident3(t)
	c := m.Clone()

	c.Values[0] = 42
	c.RowIndex[0] = 2

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "mutating the clone must not leak into the original")
}

func TestNilReceivers_Degrade(t *testing.T) {
	var m *csc.Matrix
	require.Equal(t, int32(0), m.NNZ())
	require.Nil(t, m.ToDense())
	require.Nil(t, m.Clone())

	rows, cols := m.Dims()
	require.Equal(t, int32(0), rows)
	require.Equal(t, int32(0), cols)
}
