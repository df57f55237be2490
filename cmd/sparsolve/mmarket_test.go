package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadMatrixMarket_General(t *testing.T) {
	src := `%%MatrixMarket matrix coordinate real general
% a 2x2 system
2 2 3
1 1 2.0
2 1 1.0
2 2 3.0
`
	m, err := readMatrixMarket(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, int32(2), m.Rows)
	require.Equal(t, int32(3), m.NNZ())

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestReadMatrixMarket_SymmetricMirrorsOffDiagonal(t *testing.T) {
	src := `%%MatrixMarket matrix coordinate real symmetric
2 2 3
1 1 2.0
2 1 1.0
2 2 3.0
`
	m, err := readMatrixMarket(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, int32(4), m.NNZ(), "off-diagonal entries mirror, the diagonal must not")

	up, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, up)
	diag, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, diag)
}

func TestReadMatrixMarket_RejectsBadInput(t *testing.T) {
	for name, src := range map[string]string{
		"wrong banner":     "%%NotMatrixMarket matrix coordinate real general\n1 1 0\n",
		"unknown symmetry": "%%MatrixMarket matrix coordinate real hermitian\n1 1 0\n",
		"missing size":     "%%MatrixMarket matrix coordinate real general\n",
		"short entries":    "%%MatrixMarket matrix coordinate real general\n2 2 2\n1 1 1.0\n",
		"garbled entry":    "%%MatrixMarket matrix coordinate real general\n1 1 1\nx y z\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := readMatrixMarket(strings.NewReader(src))
			require.Error(t, err)
		})
	}
}

func TestReadVector(t *testing.T) {
	b, err := readVector(strings.NewReader("1.5\n% comment\n\n-2\n"), 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, -2}, b)

	_, err = readVector(strings.NewReader("1\n2\n3\n"), 2)
	require.Error(t, err, "entry count must match the system size")

	_, err = readVector(strings.NewReader("abc\n"), 1)
	require.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	f := newFormatValue(formatTable)
	require.Equal(t, formatTable, f.String())
	require.NoError(t, f.Set(formatCSV))
	require.Equal(t, formatCSV, f.String())
	require.Error(t, f.Set("yaml"))
	require.Equal(t, formatCSV, f.String(), "rejected values must not clobber the current one")
}
