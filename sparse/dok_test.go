// SPDX-License-Identifier: MIT
package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/sparse"
)

// 1) TestNewDOK_ShapeValidation: negative dims fail, empty shapes are legal.
func TestNewDOK_ShapeValidation(t *testing.T) {
	_, err := sparse.NewDOK(-1, 2)
	require.ErrorIs(t, err, sparse.ErrBadShape)
	_, err = sparse.NewDOK(2, -1)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	m, err := sparse.NewDOK(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.NNZ())
	require.Equal(t, sparse.FormatDOK, m.Format())
}

// 2) TestDOK_SetZeroDeletes is the zero-write erase contract: writing 0.0
// removes the key entirely, and NNZ tracks it exactly.
func TestDOK_SetZeroDeletes(t *testing.T) {
	m := mustDOK(t, 3, 3)

	require.NoError(t, m.Set(1, 2, 5))
	require.Equal(t, 1, m.NNZ())
	require.Equal(t, 5.0, matAt(t, m, 1, 2))

	require.NoError(t, m.Set(1, 2, 0))
	require.Equal(t, 0, m.NNZ()) // key erased, not stored as zero
	require.Equal(t, 0.0, matAt(t, m, 1, 2))

	// Erasing an absent cell is a no-op, not an error.
	require.NoError(t, m.Set(0, 0, 0))
	require.Equal(t, 0, m.NNZ())
}

// 3) TestDOK_SetOverwrites: the last write wins; NNZ counts distinct keys.
func TestDOK_SetOverwrites(t *testing.T) {
	m := mustDOK(t, 2, 2)

	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(0, 1, 7))
	require.Equal(t, 1, m.NNZ())
	require.Equal(t, 7.0, matAt(t, m, 0, 1))
}

// 4) TestDOK_AddAccumulates: Add starts from zero on absent keys, and a sum
// landing on exact zero erases the key.
func TestDOK_AddAccumulates(t *testing.T) {
	m := mustDOK(t, 2, 2)

	require.NoError(t, m.Add(1, 1, 2.5))
	require.NoError(t, m.Add(1, 1, 0.5))
	require.Equal(t, 3.0, matAt(t, m, 1, 1))
	require.Equal(t, 1, m.NNZ())

	require.NoError(t, m.Add(1, 1, -3))
	require.Equal(t, 0, m.NNZ()) // exact cancellation erases
	require.Equal(t, 0.0, matAt(t, m, 1, 1))
}

// 5) TestDOK_BoundsAndPolicy: coordinate and numeric failures are reported
// before any mutation.
func TestDOK_BoundsAndPolicy(t *testing.T) {
	m := mustDOK(t, 2, 2, sparse.WithValidateNaNInf())

	require.ErrorIs(t, m.Set(2, 0, 1), sparse.ErrOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 1), sparse.ErrOutOfBounds)
	require.ErrorIs(t, m.Add(0, 2, 1), sparse.ErrOutOfBounds)
	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfBounds)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), sparse.ErrNaNInf)
	require.ErrorIs(t, m.Add(0, 0, math.Inf(1)), sparse.ErrNaNInf)
	require.Equal(t, 0, m.NNZ()) // nothing leaked into the mapping

	// Default policy admits non-finite values.
	loose := mustDOK(t, 1, 1)
	require.NoError(t, loose.Set(0, 0, math.NaN()))
	v, err := loose.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

// 6) TestDOK_MatVec_Fixture cross-checks both multiply orientations against
// the dense reference.
func TestDOK_MatVec_Fixture(t *testing.T) {
	m := fixtureDOK(t)
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

	_, err = m.MatVec(make([]float64, fixRows)) // forward wants n, not m
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = m.MatTransVec(make([]float64, fixCols))
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// 7) TestDOK_Triples_SortedRowMajor: the export is ordered by packed key, so
// it is deterministic regardless of insertion order.
func TestDOK_Triples_SortedRowMajor(t *testing.T) {
	m := fixtureDOK(t) // fixture inserts out of order on purpose

	require.Equal(t, []sparse.Triple{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 3, Val: 2},
		{Row: 1, Col: 1, Val: 3},
		{Row: 2, Col: 4, Val: 4},
		{Row: 3, Col: 0, Val: 5},
		{Row: 3, Col: 2, Val: 6},
	}, m.Triples())
}

// 8) TestDOK_CloneIndependence: mutating the source after Clone must not be
// visible through the copy, and vice versa.
func TestDOK_CloneIndependence(t *testing.T) {
	m := fixtureDOK(t)
	c, ok := m.Clone().(*sparse.DOK)
	require.True(t, ok)

	require.NoError(t, m.Set(0, 0, 99))
	require.Equal(t, 1.0, matAt(t, c, 0, 0))

	require.NoError(t, c.Set(1, 1, -3))
	require.Equal(t, 3.0, matAt(t, m, 1, 1))
}

// 9) TestDOK_Conversions: every outbound conversion preserves the logical
// matrix; ToCOO additionally inherits the sorted export order.
func TestDOK_Conversions(t *testing.T) {
	m := fixtureDOK(t)
	want := mustDense(t, fixtureDense())

	requireSameMatrix(t, want, m.ToDense())
	requireSameMatrix(t, want, m.ToCOO())
	requireSameMatrix(t, want, m.ToDOK())
	requireSameMatrix(t, want, m.ToCSC())
	requireSameMatrix(t, want, m.ToCSR())

	require.Equal(t, m.Triples(), m.ToCOO().Triples()) // deterministic layout
}

// 10) TestDOK_CapacityHint: the hint pre-sizes the mapping without changing
// semantics; negative hints panic at option build time.
func TestDOK_CapacityHint(t *testing.T) {
	m := mustDOK(t, 4, 4, sparse.WithCapacityHint(16))
	require.NoError(t, m.Set(3, 3, 1))
	require.Equal(t, 1, m.NNZ())

	require.Panics(t, func() { sparse.WithCapacityHint(-1) })
}
