// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors/kernels minimal by delegating shape/length/pointer/
//    bounds checks here.
//  - Return plain sentinel errors (no wrapping) from the leaf checks so call
//    sites can wrap uniformly; composite validators add their own tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Construction-time checks run before any output allocation is retained,
//    preserving the atomic-failure contract.
//
// AI-Hints:
//  - Centralizing validators eliminates inconsistent guard logic across files.
//  - ValidatePointers encodes the full compressed-pointer contract; reuse it
//    for any ptr-like prefix-sum array instead of ad hoc loops.
//  - ValidateVecLen treats nil as length 0: a zero-width multiply with a nil
//    vector is legal by the shape rules.

package sparse

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape – Ensures both dimensions are non-negative.
//
// Zero-sized shapes (0×0, 0×n, m×0) are legal sparse matrices with no
// addressable cells; only negative dimensions are rejected.
// Returns ErrBadShape on violation.
// Complexity: O(1).
// AI-Hints: Always the first check in every constructor.
func ValidateShape(rows, cols int) error {
	// Reject negative dimensions with the unified sentinel.
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	// Otherwise accept (including zero-sized shapes).
	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in package-level facades.
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
//
// A nil slice has length 0 and is therefore valid exactly when n == 0; the
// zero-width multiply is legal, so nil is not rejected on its own.
// Returns ErrDimensionMismatch on violation.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Check the exact expected length (nil counts as length 0).
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch) // vector length must match the matrix dimension
	}

	return nil
}

// ValidateTripleSlices – Full COO construction contract.
//
// Implementation: length agreement first, then per-entry bounds.
// Inputs: shape (rows, cols) and the three parallel slices.
// Errors: ErrLengthMismatch when the slices disagree in length,
// ErrOutOfBounds when any coordinate falls outside the shape.
// Complexity: O(nnz). Space: O(1).
// AI-Hints: Shape must already be validated; this check assumes rows, cols ≥ 0.
func ValidateTripleSlices(rows, cols int, rowIdx, colIdx []int, vals []float64) error {
	// Parallel arrays must agree in length before any element is trusted.
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(vals) {
		return validatorErrorf("ValidateTripleSlices", ErrLengthMismatch)
	}

	// Scan every coordinate once; fail on the first violation.
	var k int // entry cursor
	for k = 0; k < len(rowIdx); k++ {
		if rowIdx[k] < 0 || rowIdx[k] >= rows {
			return validatorErrorf(fmt.Sprintf("ValidateTripleSlices: entry %d row %d", k, rowIdx[k]), ErrOutOfBounds)
		}
		if colIdx[k] < 0 || colIdx[k] >= cols {
			return validatorErrorf(fmt.Sprintf("ValidateTripleSlices: entry %d col %d", k, colIdx[k]), ErrOutOfBounds)
		}
	}

	return nil
}

// ValidatePointers – Full compressed-pointer contract.
//
// The pointer array for a compressed store over `major` slices must have
// length major+1, start at 0, be non-decreasing, and end at nnz (the length
// of the parallel index/value arrays).
// Errors: ErrInvalidPointerArray on any structural violation.
// Complexity: O(major). Space: O(1).
// AI-Hints: Pass cols for CSC, rows for CSR; nnz = len(indices).
func ValidatePointers(ptr []int, major, nnz int) error {
	// The pointer array carries one offset per slice plus the terminator.
	if len(ptr) != major+1 {
		return validatorErrorf("ValidatePointers: length", ErrInvalidPointerArray)
	}
	// Offsets are anchored at zero.
	if ptr[0] != 0 {
		return validatorErrorf("ValidatePointers: origin", ErrInvalidPointerArray)
	}
	// Offsets never decrease: each slice is a contiguous, forward range.
	var j int // slice cursor
	for j = 0; j < major; j++ {
		if ptr[j+1] < ptr[j] {
			return validatorErrorf(fmt.Sprintf("ValidatePointers: step %d", j), ErrInvalidPointerArray)
		}
	}
	// The terminator must account for every stored entry exactly once.
	if ptr[major] != nnz {
		return validatorErrorf("ValidatePointers: terminator", ErrInvalidPointerArray)
	}

	return nil
}

// ValidateIndexBounds – Ensures every index lies in [0, limit).
//
// Used for the minor-index array of compressed stores (rowIdx against m for
// CSC, colIdx against n for CSR).
// Errors: ErrOutOfBounds on the first violating entry.
// Complexity: O(len(idx)). Space: O(1).
func ValidateIndexBounds(idx []int, limit int) error {
	var k int // entry cursor
	for k = 0; k < len(idx); k++ {
		if idx[k] < 0 || idx[k] >= limit {
			return validatorErrorf(fmt.Sprintf("ValidateIndexBounds: entry %d index %d", k, idx[k]), ErrOutOfBounds)
		}
	}

	return nil
}

// ValidateFinite – Ensures every value is finite (no NaN, no ±Inf).
//
// Only consulted under the opt-in numeric policy (WithValidateNaNInf).
// Errors: ErrNaNInf on the first non-finite entry.
// Complexity: O(len(vals)). Space: O(1).
// AI-Hints: Run last in constructor validation chains so the structural
// taxonomy (shape/length/pointer/bounds) keeps priority.
func ValidateFinite(vals []float64) error {
	var k int // entry cursor
	for k = 0; k < len(vals); k++ {
		if math.IsNaN(vals[k]) || math.IsInf(vals[k], 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: entry %d", k), ErrNaNInf)
		}
	}

	return nil
}

// checkIndex reports whether (row, col) addresses a cell of an r×c shape.
// Returns the bare ErrOutOfBounds sentinel; point-op call sites wrap it with
// their method tag and coordinates.
// Complexity: O(1).
func checkIndex(row, col, rows, cols int) error {
	// Validate the row index.
	if row < 0 || row >= rows {
		return ErrOutOfBounds
	}
	// Validate the column index.
	if col < 0 || col >= cols {
		return ErrOutOfBounds
	}

	return nil
}

// checkFinite reports whether v is finite under the numeric policy.
// Returns the bare ErrNaNInf sentinel; call sites wrap with context.
// Complexity: O(1).
func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	return nil
}
