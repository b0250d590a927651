// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and builders shared by the
//     format, conversion, and facade tests.
//   • Keep all data finite and well-formed to avoid numeric-policy
//     interference; policy behavior gets its own targeted cases.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/sparse"
)

// Shape used by the shared fixture matrix.
const (
	fixRows = 4
	fixCols = 5
)

// fixtureTriples is the canonical small matrix used across format tests:
//
//	| 1 0 0 2 0 |
//	| 0 3 0 0 0 |
//	| 0 0 0 0 4 |
//	| 5 0 6 0 0 |
//
// Entries are listed deliberately out of row-major order so ordering
// behavior is observable.
func fixtureTriples() []sparse.Triple {
	return []sparse.Triple{
		{Row: 3, Col: 0, Val: 5},
		{Row: 0, Col: 0, Val: 1},
		{Row: 2, Col: 4, Val: 4},
		{Row: 0, Col: 3, Val: 2},
		{Row: 3, Col: 2, Val: 6},
		{Row: 1, Col: 1, Val: 3},
	}
}

// fixtureDense is the same matrix in row-major rows, the reference layout.
func fixtureDense() [][]float64 {
	return [][]float64{
		{1, 0, 0, 2, 0},
		{0, 3, 0, 0, 0},
		{0, 0, 0, 0, 4},
		{5, 0, 6, 0, 0},
	}
}

// mustCOO builds a COO from triples or fails the test.
func mustCOO(t testing.TB, rows, cols int, ts []sparse.Triple, opts ...sparse.Option) *sparse.COO {
	t.Helper()
	m, err := sparse.NewCOOFromTriples(rows, cols, ts, opts...)
	require.NoError(t, err)

	return m
}

// mustDOK builds an empty DOK or fails the test.
func mustDOK(t testing.TB, rows, cols int, opts ...sparse.Option) *sparse.DOK {
	t.Helper()
	m, err := sparse.NewDOK(rows, cols, opts...)
	require.NoError(t, err)

	return m
}

// mustDense builds a Dense from row slices or fails the test.
func mustDense(t testing.TB, rows [][]float64, opts ...sparse.Option) *sparse.Dense {
	t.Helper()
	m, err := sparse.NewDenseFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// fixtureDOK builds the fixture matrix as a DOK via Set calls.
func fixtureDOK(t testing.TB) *sparse.DOK {
	t.Helper()
	m := mustDOK(t, fixRows, fixCols)
	for _, tr := range fixtureTriples() {
		require.NoError(t, m.Set(tr.Row, tr.Col, tr.Val))
	}

	return m
}

// matAt reads a cell or fails the test.
func matAt(t testing.TB, m sparse.Matrix, row, col int) float64 {
	t.Helper()
	v, err := m.At(row, col)
	require.NoError(t, err)

	return v
}

// requireSameMatrix asserts exact logical equality cell by cell through the
// dense views, with a shape precheck for a readable failure.
func requireSameMatrix(t testing.TB, want, got sparse.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "row count")
	require.Equal(t, want.Cols(), got.Cols(), "col count")
	ok, err := sparse.Equal(want, got)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ logically:\nwant %v\ngot  %v",
		want.ToDense().String(), got.ToDense().String())
}

// randomTriples generates nnz random in-bounds triples with a fixed seed.
// Duplicate (row, col) keys are possible and intended: they exercise the
// duplicate-summing paths. Values avoid zero so NNZ stays meaningful.
func randomTriples(seed int64, rows, cols, nnz int) []sparse.Triple {
	rng := rand.New(rand.NewSource(seed))
	out := make([]sparse.Triple, nnz)
	for k := range out {
		out[k] = sparse.Triple{
			Row: rng.Intn(rows),
			Col: rng.Intn(cols),
			Val: float64(rng.Intn(9)+1) * 0.5, // finite, non-zero
		}
	}

	return out
}

// randomVec generates a deterministic vector of the given length.
func randomVec(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for k := range out {
		out[k] = rng.Float64()*4 - 2
	}

	return out
}

// hide wraps any Matrix to mask its concrete type from type switches.
// Forces the generic (coordinate-reduction) paths in code under test.
type hide struct {
	sparse.Matrix
}
