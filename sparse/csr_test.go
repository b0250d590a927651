// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/sparse"
)

// 1) TestNewCSR_IdentityFromRawArrays mirrors the CSC smoke scenario on the
// row-compressed axis.
func TestNewCSR_IdentityFromRawArrays(t *testing.T) {
	m, err := sparse.NewCSR(3, 3,
		[]int{0, 1, 2, 3},
		[]int{0, 1, 2},
		[]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 3, m.NNZ())
	require.True(t, m.Sorted())
	require.Equal(t, sparse.FormatCSR, m.Format())

	x := []float64{2.5, -1, 7}
	y, err := m.MatVec(x)
	require.NoError(t, err)
	require.Equal(t, x, y)

	y, err = m.MatTransVec(x)
	require.NoError(t, err)
	require.Equal(t, x, y)
}

// 2) TestNewCSR_PointerStructureRejected: the pointer slice is validated
// against the ROW count — a cols+1 slice is malformed here.
func TestNewCSR_PointerStructureRejected(t *testing.T) {
	_, err := sparse.NewCSR(2, 2, []int{0, 2, 1}, []int{0, 0}, []float64{1, 1})
	require.ErrorIs(t, err, sparse.ErrInvalidPointerArray)

	_, err = sparse.NewCSR(3, 2, []int{0, 1, 2}, []int{0, 0}, []float64{1, 1})
	require.ErrorIs(t, err, sparse.ErrInvalidPointerArray) // needs rows+1 = 4 slots

	_, err = sparse.NewCSR(2, 2, []int{0, 1, 1}, []int{0, 0}, []float64{1, 1})
	require.ErrorIs(t, err, sparse.ErrInvalidPointerArray) // terminator ≠ nnz

	_, err = sparse.NewCSR(2, 2, []int{0, 1, 2}, []int{0, 9}, []float64{1, 1})
	require.ErrorIs(t, err, sparse.ErrOutOfBounds) // column bound uses cols
}

// 3) TestCSR_SortedProbe: per-row ordering picks the At search path.
func TestCSR_SortedProbe(t *testing.T) {
	// Row 0 holds cols [0,1,1]: duplicates adjacent, nondecreasing.
	ordered, err := sparse.NewCSR(1, 2, []int{0, 3}, []int{0, 1, 1}, []float64{1, 2, 3})
	require.NoError(t, err)
	require.True(t, ordered.Sorted())
	require.Equal(t, 1.0, matAt(t, ordered, 0, 0))
	require.Equal(t, 5.0, matAt(t, ordered, 0, 1))

	// Row 0 holds cols [1,0]: out of order, linear path.
	scrambled, err := sparse.NewCSR(1, 2, []int{0, 2}, []int{1, 0}, []float64{4, 9})
	require.NoError(t, err)
	require.False(t, scrambled.Sorted())
	require.Equal(t, 9.0, matAt(t, scrambled, 0, 0))
	require.Equal(t, 4.0, matAt(t, scrambled, 0, 1))
}

// 4) TestCSR_MatVec_Fixture cross-checks both orientations against the dense
// reference; row gather makes the forward kernel bit-stable per row.
func TestCSR_MatVec_Fixture(t *testing.T) {
	m := mustCOO(t, fixRows, fixCols, fixtureTriples()).ToCSR()
	d := mustDense(t, fixtureDense())

	x := []float64{1, -1, 2, 0.5, 3}
	got, err := m.MatVec(x)
	require.NoError(t, err)
	want, err := d.MatVec(x)
	require.NoError(t, err)
	require.Equal(t, want, got)

	xt := []float64{2, 0, -1, 1}
	got, err = m.MatTransVec(xt)
	require.NoError(t, err)
	want, err = d.MatTransVec(xt)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = m.MatVec(make([]float64, fixRows))
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = m.MatTransVec(make([]float64, fixCols))
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// 5) TestCSR_RawAccessorsCopy: exported slices are snapshots.
func TestCSR_RawAccessorsCopy(t *testing.T) {
	m, err := sparse.NewCSR(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{3, 4})
	require.NoError(t, err)

	ptr, ci, vs := m.Ptr(), m.ColIndices(), m.Values()
	ptr[1], ci[0], vs[0] = 99, 99, 99

	require.Equal(t, []int{0, 1, 2}, m.Ptr())
	require.Equal(t, []int{0, 1}, m.ColIndices())
	require.Equal(t, []float64{3, 4}, m.Values())
}

// 6) TestCSR_Conversions: outbound conversions preserve the logical matrix,
// and the compression axis flips losslessly in both directions.
func TestCSR_Conversions(t *testing.T) {
	m := mustCOO(t, fixRows, fixCols, fixtureTriples()).ToCSR()
	want := mustDense(t, fixtureDense())

	requireSameMatrix(t, want, m.ToDense())
	requireSameMatrix(t, want, m.ToCOO())
	requireSameMatrix(t, want, m.ToDOK())
	requireSameMatrix(t, want, m.ToCSC())
	requireSameMatrix(t, want, m.ToCSR())

	// CSR → CSC → CSR keeps layout (both sorted, duplicates none).
	back := m.ToCSC().ToCSR()
	require.Equal(t, m.Ptr(), back.Ptr())
	require.Equal(t, m.ColIndices(), back.ColIndices())
	require.Equal(t, m.Values(), back.Values())
}

// 7) TestCSR_ZeroSizedShapes: a 0-row pointer slice is just [0].
func TestCSR_ZeroSizedShapes(t *testing.T) {
	m, err := sparse.NewCSR(0, 0, []int{0}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.NNZ())

	y, err := m.MatVec(nil)
	require.NoError(t, err)
	require.Empty(t, y)

	wide, err := sparse.NewCSR(0, 3, []int{0}, nil, nil)
	require.NoError(t, err)
	y, err = wide.MatTransVec(nil)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, y)
}
