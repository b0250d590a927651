// SPDX-License-Identifier: MIT

// Package sparse: package-level facades.
// This file is the stable entry surface over the Matrix interface: thin,
// delegation-only wrappers that add the nil guard every polymorphic call
// site would otherwise repeat, plus the handful of constructions (identity,
// axis sums, equality) that belong to no single format. Facades never
// re-implement kernels — every computation below lands in a method on one
// of the five stores.
package sparse

import "fmt"

// Operation names used in facade error contexts.
const (
	opMatVec      = "MatVec"      // forward multiply facade
	opMatTransVec = "MatTransVec" // transpose multiply facade
	opNNZ         = "NNZ"         // stored-entry count facade
	opEye         = "Eye"         // identity constructor
	opRowSums     = "RowSums"     // per-row reduction
	opColSums     = "ColSums"     // per-column reduction
	opEqual       = "Equal"       // logical equality
	opClone       = "CloneMatrix" // polymorphic deep copy
)

// sparseErrorf wraps an underlying error with package-facade context.
func sparseErrorf(op string, err error) error {
	return fmt.Errorf("sparse.%s: %w", op, err)
}

// MatVec computes y = A·x through the Matrix interface.
//
// Implementation:
//   - Stage 1: reject a nil matrix.
//   - Stage 2: delegate to the store's own kernel (each format carries the
//     loop shaped for its layout).
//
// Behavior highlights:
//   - Uniform signature across formats: callers can swap storage without
//     touching multiply call sites.
//
// Inputs:
//   - m: any of the five stores.
//   - x: vector of length m.Cols().
//
// Returns:
//   - []float64: freshly allocated y of length m.Rows().
//
// Errors:
//   - ErrNilMatrix, then whatever the store's kernel reports
//     (ErrDimensionMismatch on a bad vector length).
//
// Complexity:
//   - O(nnz) for sparse stores, O(m·n) for Dense.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Guard the interface value; the kernel validates the rest.
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opMatVec, err)
	}

	return m.MatVec(x) // kernel error context is already specific
}

// MatTransVec computes y = Aᵀ·x through the Matrix interface; no transpose
// is ever materialized (each store walks its own layout in the opposite
// orientation).
// Errors: ErrNilMatrix, then the store's kernel errors.
// Complexity: O(nnz) for sparse stores, O(m·n) for Dense.
func MatTransVec(m Matrix, x []float64) ([]float64, error) {
	// Guard the interface value; the kernel validates the rest.
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opMatTransVec, err)
	}

	return m.MatTransVec(x)
}

// NNZ reports the stored-entry count of any store, nil-guarded.
// For DOK and the compressed forms this is O(1); Dense scans its cells.
// Errors: ErrNilMatrix.
func NNZ(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, sparseErrorf(opNNZ, err)
	}

	return m.NNZ(), nil
}

// Eye builds the n×n identity directly in compressed-column form: one unit
// entry per column, so ptr is [0, 1, …, n] and column j holds row j. The
// result is sorted and coalesced by construction.
// Errors: ErrBadShape when n is negative (n == 0 yields the empty identity).
// Complexity: O(n) time and memory.
func Eye(n int) (*CSC, error) {
	// A negative order is the only invalid input.
	if err := ValidateShape(n, n); err != nil {
		return nil, sparseErrorf(opEye, err)
	}

	// Assemble the diagonal layout in place; no kernel needed.
	ptr := make([]int, n+1)
	rowIdx := make([]int, n)
	vals := make([]float64, n)
	var i int // diagonal cursor
	for i = 0; i < n; i++ {
		ptr[i+1] = i + 1
		rowIdx[i] = i
		vals[i] = 1
	}

	return &CSC{r: n, c: n, ptr: ptr, rowIdx: rowIdx, vals: vals, sorted: true}, nil
}

// RowSums returns the per-row sums of a store: A·1, computed by the store's
// own forward kernel against a ones vector.
// Errors: ErrNilMatrix.
// Complexity: the store's MatVec cost plus O(n) for the ones vector.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opRowSums, err)
	}

	return m.MatVec(ones(m.Cols()))
}

// ColSums returns the per-column sums of a store: Aᵀ·1 via the transpose
// kernel, so no transposed copy is built.
// Errors: ErrNilMatrix.
// Complexity: the store's MatTransVec cost plus O(m) for the ones vector.
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opColSums, err)
	}

	return m.MatTransVec(ones(m.Rows()))
}

// Equal reports exact logical equality of two stores: same shape and the
// same value at every cell, compared through dense materialization so the
// answer is independent of storage format, entry order, and duplicate
// layout. Comparison is float64 ==; no epsilon.
// Errors: ErrNilMatrix for a nil operand, ErrDimensionMismatch when the
// shapes differ (shape disagreement is an error, never a false result).
// Complexity: O(m·n + nnz) time, O(m·n) space.
func Equal(a, b Matrix) (bool, error) {
	// Both operands must exist before shapes are consulted.
	if err := ValidateNotNil(a); err != nil {
		return false, sparseErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, sparseErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, sparseErrorf(opEqual, fmt.Errorf("left is %d×%d, right is %d×%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	// Dense views normalize duplicates and ordering; compare cell by cell.
	da, db := a.ToDense(), b.ToDense()
	var k int // flat cell cursor
	for k = 0; k < len(da.data); k++ {
		if da.data[k] != db.data[k] {
			return false, nil
		}
	}

	return true, nil
}

// CloneMatrix returns a deep copy of any store, nil-guarded, preserving the
// concrete format.
// Errors: ErrNilMatrix.
// Complexity: the store's Clone cost.
func CloneMatrix(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opClone, err)
	}

	return m.Clone(), nil
}

// ones allocates a length-n vector of unit values for the axis-sum facades.
func ones(n int) []float64 {
	v := make([]float64, n)
	var i int // fill cursor
	for i = 0; i < n; i++ {
		v[i] = 1
	}

	return v
}
