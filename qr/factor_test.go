// Package qr_test contains unit tests for the dense-fallback QR, pinned
// against the RᵀR = AᵀA identity and a gonum dense oracle.
package qr_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsolve/csc"
	"github.com/katalvlaran/sparsolve/qr"
)

const relTol = 1e-9

// randomTall builds a seeded rows×cols dense matrix with the given sparsity.
func randomTall(rows, cols int, density float64, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	d := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		d[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				d[i][j] = rng.NormFloat64()
			}
		}
	}

	return d
}

// gram returns MᵀM for a dense matrix.
func gram(d [][]float64, cols int) [][]float64 {
	g := make([][]float64, cols)
	for i := 0; i < cols; i++ {
		g[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			for k := range d {
				g[i][j] += d[k][i] * d[k][j]
			}
		}
	}

	return g
}

// TestFactor_GramIdentity: Q is orthogonal, so RᵀR must equal AᵀA — the
// standard check that survives Q not being persisted.
func TestFactor_GramIdentity(t *testing.T) {
	for _, shape := range [][2]int{{4, 4}, {12, 5}, {60, 20}} {
		t.Run(fmt.Sprintf("%dx%d", shape[0], shape[1]), func(t *testing.T) {
			d := randomTall(shape[0], shape[1], 0.6, int64(shape[0]))
			a, err := csc.FromDense(d)
			require.NoError(t, err)

			r, err := qr.Factor(a)
			require.NoError(t, err)
			require.Equal(t, int32(shape[1]), r.Rows)
			require.Equal(t, int32(shape[1]), r.Cols)

			want := gram(d, shape[1])
			got := gram(r.ToDense(), shape[1])
			for i := 0; i < shape[1]; i++ {
				for j := 0; j < shape[1]; j++ {
					require.True(t,
						scalar.EqualWithinAbsOrRel(got[i][j], want[i][j], 1e-8, relTol),
						"RᵀR ≠ AᵀA at (%d,%d): got %g want %g", i, j, got[i][j], want[i][j])
				}
			}
		})
	}
}

func TestFactor_UpperTriangular(t *testing.T) {
	d := randomTall(30, 10, 0.5, 3)
	a, err := csc.FromDense(d)
	require.NoError(t, err)

	r, err := qr.Factor(a)
	require.NoError(t, err)

	var j, p int32
	for j = 0; j < r.Cols; j++ {
		for p = r.ColPtr[j]; p < r.ColPtr[j+1]; p++ {
			require.LessOrEqual(t, r.RowIndex[p], j, "R must be upper triangular")
		}
	}
}

// TestFactor_DiagonalMagnitudesMatchGonum compares |diag(R)| against gonum's
// dense QR — the diagonal is sign-ambiguous across reflector conventions,
// its magnitude is not.
func TestFactor_DiagonalMagnitudesMatchGonum(t *testing.T) {
	rows, cols := 25, 9
	d := randomTall(rows, cols, 0.7, 21)
	flat := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		flat = append(flat, d[i]...)
	}
	var dense mat.QR
	dense.Factorize(mat.NewDense(rows, cols, flat))
	var rd mat.Dense
	dense.RTo(&rd)

	a, err := csc.FromDense(d)
	require.NoError(t, err)
	r, err := qr.Factor(a)
	require.NoError(t, err)

	for j := 0; j < cols; j++ {
		got, err := r.At(int32(j), int32(j))
		require.NoError(t, err)
		require.True(t,
			scalar.EqualWithinAbsOrRel(math.Abs(got), math.Abs(rd.At(j, j)), 1e-8, relTol),
			"|R[%d,%d]|: got %g want %g", j, j, got, rd.At(j, j))
	}
}

func TestFactor_Underdetermined(t *testing.T) {
	a, err := csc.FromDense(randomTall(3, 5, 1, 1))
	require.NoError(t, err)

	_, err = qr.Factor(a)
	require.ErrorIs(t, err, qr.ErrUnderdetermined)
}

func TestFactor_NilMatrix(t *testing.T) {
	_, err := qr.Factor(nil)
	require.ErrorIs(t, err, csc.ErrNilMatrix)
}

func TestFactor_RoundOffDropped(t *testing.T) {
	// An orthogonal-ish column pair produces exact zeros above the diagonal
	// only up to round-off; re-sparsification must drop those, keeping R's
	// pattern genuinely triangular and tight.
	a, err := csc.FromDense([][]float64{{3, -4}, {0, 5}, {4, 3}})
	require.NoError(t, err)

	r, err := qr.Factor(a)
	require.NoError(t, err)
	v, err := r.At(0, 1)
	require.NoError(t, err)
	// A's columns are orthogonal, so R is diagonal up to DropTolerance.
	require.Zero(t, v, "round-off above the diagonal must be dropped")
}
