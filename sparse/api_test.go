// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/sparse"
)

// 1) TestFacades_NilGuard: every facade rejects a nil matrix up front.
func TestFacades_NilGuard(t *testing.T) {
	_, err := sparse.MatVec(nil, nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.MatTransVec(nil, nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.NNZ(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.RowSums(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.ColSums(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.CloneMatrix(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Equal(nil, fixtureDOK(t))
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Equal(fixtureDOK(t), nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// 2) TestFacades_DelegateUniformly: the facade answer equals the method
// answer on every format.
func TestFacades_DelegateUniformly(t *testing.T) {
	x := []float64{1, -1, 2, 0.5, 3}
	stores := []sparse.Matrix{
		mustCOO(t, fixRows, fixCols, fixtureTriples()),
		fixtureDOK(t),
		fixtureDOK(t).ToCSC(),
		fixtureDOK(t).ToCSR(),
		mustDense(t, fixtureDense()),
	}

	for _, m := range stores {
		want, err := m.MatVec(x)
		require.NoError(t, err)
		got, err := sparse.MatVec(m, x)
		require.NoError(t, err)
		require.Equal(t, want, got)

		n, err := sparse.NNZ(m)
		require.NoError(t, err)
		require.Equal(t, m.NNZ(), n)
	}

	// Kernel errors pass through the facade unchanged.
	_, err := sparse.MatVec(fixtureDOK(t), []float64{1})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// 3) TestEye: the compressed identity multiplies to itself and admits the
// empty order; negative orders fail shape validation.
func TestEye(t *testing.T) {
	m, err := sparse.Eye(4)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 4, m.NNZ())
	require.True(t, m.Sorted())
	require.Equal(t, []int{0, 1, 2, 3, 4}, m.Ptr())

	x := []float64{3, -1, 0.5, 2}
	y, err := m.MatVec(x)
	require.NoError(t, err)
	require.Equal(t, x, y)

	empty, err := sparse.Eye(0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.NNZ())

	_, err = sparse.Eye(-1)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

// 4) TestRowSumsColSums against hand-computed fixture reductions.
func TestRowSumsColSums(t *testing.T) {
	m := mustCOO(t, fixRows, fixCols, fixtureTriples())

	rows, err := sparse.RowSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 4, 11}, rows)

	cols, err := sparse.ColSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 3, 6, 2, 4}, cols)

	// Empty shapes reduce to empty sums.
	zero := mustDOK(t, 0, 0)
	rows, err = sparse.RowSums(zero)
	require.NoError(t, err)
	require.Empty(t, rows)
}

// 5) TestEqual: format- and layout-independent equality; shape mismatch is
// an error, value mismatch is a clean false.
func TestEqual(t *testing.T) {
	// Duplicates on one side, their sum on the other.
	dup := mustCOO(t, 2, 2, []sparse.Triple{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 0, Val: 2},
	})
	plain := mustCOO(t, 2, 2, []sparse.Triple{{Row: 0, Col: 0, Val: 3}})

	ok, err := sparse.Equal(dup, plain)
	require.NoError(t, err)
	require.True(t, ok)

	// A differing value yields false without error.
	other := mustCOO(t, 2, 2, []sparse.Triple{{Row: 0, Col: 0, Val: 4}})
	ok, err = sparse.Equal(dup, other)
	require.NoError(t, err)
	require.False(t, ok)

	// Shape disagreement is a caller bug, not inequality.
	narrow := mustCOO(t, 2, 1, nil)
	_, err = sparse.Equal(dup, narrow)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	// Cross-format equality on the fixture.
	ok, err = sparse.Equal(fixtureDOK(t), mustDense(t, fixtureDense()))
	require.NoError(t, err)
	require.True(t, ok)
}

// 6) TestCloneMatrix preserves the concrete format through the interface.
func TestCloneMatrix(t *testing.T) {
	for _, m := range []sparse.Matrix{
		mustCOO(t, fixRows, fixCols, fixtureTriples()),
		fixtureDOK(t),
		fixtureDOK(t).ToCSC(),
		fixtureDOK(t).ToCSR(),
		mustDense(t, fixtureDense()),
	} {
		c, err := sparse.CloneMatrix(m)
		require.NoError(t, err)
		require.Equal(t, m.Format(), c.Format())
		requireSameMatrix(t, m, c)
	}
}
