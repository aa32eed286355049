// Package matrix_test contains unit tests for representation converters
// and the gonum interop surface.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/adjnorm/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestCOOToCSRCanonicalizes verifies (row, col) sorting and duplicate merging.
func TestCOOToCSRCanonicalizes(t *testing.T) {
	// append out of order, with a duplicate at (0,1)
	m := buildCOO(t, 3, [][3]float64{
		{2, 0, 4},
		{0, 1, 1},
		{1, 2, 3},
		{0, 1, 2}, // duplicate coordinate
		{0, 0, 5},
	})

	csr := m.ToCSR()
	require.Equal(t, 4, csr.NNZ()) // duplicate folded away

	v, _ := csr.At(0, 1)
	require.Equal(t, 3.0, v) // 1 + 2 merged by summation
	v, _ = csr.At(0, 0)
	require.Equal(t, 5.0, v)
	v, _ = csr.At(2, 0)
	require.Equal(t, 4.0, v)

	// source COO keeps its duplicates
	require.Equal(t, 5, m.NNZ())
}

// TestCSRToCOORoundTrip verifies CSR→COO→CSR preserves the logical matrix.
func TestCSRToCOORoundTrip(t *testing.T) {
	src := pathCSR(t)

	back := src.ToCOO().ToCSR()
	require.Equal(t, src.NNZ(), back.NNZ())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := src.At(i, j)
			got, _ := back.At(i, j)
			require.Equal(t, want, got, "entry (%d,%d)", i, j)
		}
	}
}

// TestSparseToDense verifies COO and CSR materialization agree.
func TestSparseToDense(t *testing.T) {
	coo := buildCOO(t, 2, [][3]float64{{0, 1, 2}, {0, 1, 1}, {1, 0, 3}})

	d1 := coo.ToDense()
	d2 := coo.ToCSR().ToDense()

	v, _ := d1.At(0, 1)
	require.Equal(t, 3.0, v) // duplicates accumulated
	require.Equal(t, d1.String(), d2.String())
}

// TestGonumRoundTrip verifies ToGonum/DenseFromGonum copy semantics.
func TestGonumRoundTrip(t *testing.T) {
	src, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	g := src.ToGonum()
	require.Equal(t, 2.0, g.At(0, 1)) // exported values match

	g.Set(0, 1, 9) // mutate the export
	v, _ := src.At(0, 1)
	require.Equal(t, 2.0, v) // source holds its own copy

	back, err := matrix.DenseFromGonum(g)
	require.NoError(t, err)
	v, _ = back.At(0, 1)
	require.Equal(t, 9.0, v) // import reflects the mutation
}

// TestDenseFromGonumBadShape ensures degenerate gonum views are rejected.
func TestDenseFromGonumBadShape(t *testing.T) {
	var empty mat.Dense // zero-value gonum matrix has 0×0 dims
	_, err := matrix.DenseFromGonum(&empty)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
