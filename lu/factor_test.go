// Package lu_test contains unit tests for the pivoted factorization:
// reconstruction of P·A, pivoting policy, permutation bookkeeping, failure
// reporting, and the determinant, pinned against a gonum dense oracle.
package lu_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsolve/csc"
	"github.com/katalvlaran/sparsolve/lu"
)

const relTol = 1e-9

// randomSquare builds a seeded dense matrix with the given sparsity and a
// reinforced diagonal, nonsingular with overwhelming probability.
func randomSquare(n int, density float64, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	d := make([][]float64, n)
	for i := 0; i < n; i++ {
		d[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if rng.Float64() < density {
				d[i][j] = rng.NormFloat64()
			}
		}
		d[i][i] += 2 + rng.Float64()
	}

	return d
}

// requirePermutedReconstruction checks P·A ≈ L·U entry by entry: row Perm[i]
// of A must match row i of L·U.
func requirePermutedReconstruction(t *testing.T, f *lu.Factorization, a [][]float64) {
	t.Helper()
	ld := f.L.ToDense()
	ud := f.U.ToDense()
	n := len(a)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var got float64
			for k := 0; k < n; k++ {
				got += ld[i][k] * ud[k][j]
			}
			want := a[f.Perm[i]][j]
			require.True(t, scalar.EqualWithinAbsOrRel(got, want, relTol, relTol),
				"P·A ≠ L·U at (%d,%d): got %g want %g", i, j, got, want)
		}
	}
}

func TestFactor_ReconstructsPA(t *testing.T) {
	for _, n := range []int{1, 5, 50, 120} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			d := randomSquare(n, 0.3, int64(n))
			a, err := csc.FromDense(d)
			require.NoError(t, err)

			f, err := lu.Factor(a)
			require.NoError(t, err)
			requirePermutedReconstruction(t, f, d)
		})
	}
}

func TestFactor_ForcedPivotSwap(t *testing.T) {
	// A = [[0,1],[1,0]] cannot be factored without pivoting; with it the
	// rows swap and the factors are the identity pattern.
	d := [][]float64{{0, 1}, {1, 0}}
	a, err := csc.FromDense(d)
	require.NoError(t, err)

	f, err := lu.Factor(a)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 0}, f.Perm)
	requirePermutedReconstruction(t, f, d)
}

func TestFactor_NoPivotingFailsOnZeroDiagonal(t *testing.T) {
	// The same matrix with pivoting disabled hits the zero diagonal head-on.
	a, err := csc.FromDense([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	_, err = lu.Factor(a, lu.WithPivotThreshold(1))
	require.ErrorIs(t, err, lu.ErrSingular)
}

func TestFactor_NoPivotingKeepsIdentityPermutation(t *testing.T) {
	d := randomSquare(40, 0.4, 99)
	a, err := csc.FromDense(d)
	require.NoError(t, err)

	f, err := lu.Factor(a, lu.WithPivotThreshold(1))
	require.NoError(t, err)
	var i int32
	for i = 0; i < 40; i++ {
		require.Equal(t, i, f.Perm[i])
	}
	requirePermutedReconstruction(t, f, d)
}

func TestFactor_RankDeficientIsSingular(t *testing.T) {
	a, err := csc.FromDense([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)

	_, err = lu.Factor(a)
	require.ErrorIs(t, err, lu.ErrSingular)
}

func TestFactor_PermutationInvariant(t *testing.T) {
	d := randomSquare(80, 0.2, 5)
	// Knock out a few diagonal entries to force swaps.
	for _, i := range []int{0, 7, 31, 60} {
		d[i][i] = 0
	}
	a, err := csc.FromDense(d)
	require.NoError(t, err)

	f, err := lu.Factor(a)
	require.NoError(t, err)
	require.NotEqual(t, int32(0), f.Perm[0], "setup must force at least one swap")
	var i int32
	for i = 0; i < 80; i++ {
		require.Equal(t, i, f.Pinv[f.Perm[i]], "pinv[perm[%d]] must invert exactly", i)
	}
	requirePermutedReconstruction(t, f, d)
}

func TestFactor_Determinism(t *testing.T) {
	d := randomSquare(60, 0.25, 17)
	a, err := csc.FromDense(d)
	require.NoError(t, err)

	f1, err := lu.Factor(a)
	require.NoError(t, err)
	f2, err := lu.Factor(a)
	require.NoError(t, err)

	// Bit-identical, not merely close: same perm, same patterns, same values.
	require.Equal(t, f1.Perm, f2.Perm)
	require.Equal(t, f1.L.RowIndex, f2.L.RowIndex)
	require.Equal(t, f1.L.Values, f2.L.Values)
	require.Equal(t, f1.U.RowIndex, f2.U.RowIndex)
	require.Equal(t, f1.U.Values, f2.U.Values)
}

func TestFactor_CapacityExceeded(t *testing.T) {
	// Arrowhead matrix: dense first row and column over a diagonal. One
	// elimination step fills both factors completely, blowing well past the
	// 10·nnz+n preallocation at this size.
	n := 100
	d := make([][]float64, n)
	for i := 0; i < n; i++ {
		d[i] = make([]float64, n)
		d[i][i] = float64(n + i)
		d[0][i] = 1
		d[i][0] = 1
	}
	a, err := csc.FromDense(d)
	require.NoError(t, err)

	_, err = lu.Factor(a, lu.WithPivotThreshold(1))
	require.ErrorIs(t, err, lu.ErrCapacityExceeded)
}

func TestFactorizationDet_AgainstGonum(t *testing.T) {
	for _, n := range []int{2, 6, 25} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			d := randomSquare(n, 0.5, int64(100+n))
			flat := make([]float64, 0, n*n)
			for i := 0; i < n; i++ {
				flat = append(flat, d[i]...)
			}
			want := mat.Det(mat.NewDense(n, n, flat))

			a, err := csc.FromDense(d)
			require.NoError(t, err)
			f, err := lu.Factor(a)
			require.NoError(t, err)

			require.True(t, scalar.EqualWithinAbsOrRel(f.Det(), want, relTol, relTol),
				"Det: got %g want %g", f.Det(), want)
		})
	}
}

func TestFactorizationDet_NilReceiver(t *testing.T) {
	var f *lu.Factorization
	require.Zero(t, f.Det())
}

func TestFactor_ArgumentValidation(t *testing.T) {
	_, err := lu.Factor(nil)
	require.ErrorIs(t, err, csc.ErrNilMatrix)

	rect, err := csc.NewMatrix(2, 3, []int32{0, 0, 0, 0}, nil, nil)
	require.NoError(t, err)
	_, err = lu.Factor(rect)
	require.ErrorIs(t, err, csc.ErrNonSquare)
}
