// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> parallel-array length -> pointer structure -> index bounds ->
// numeric policy -> nil argument / dimension mismatch at multiply.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<0 or c<0).
	// Zero-sized shapes are legal; only negative dimensions are rejected.
	// Constructors must validate shape before any allocation.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfBounds indicates that an index (row or column) is outside the
	// declared shape. Public indexers (At/Set/Add) and constructors MUST
	// return this, not panic.
	ErrOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between a matrix
	// and a vector (MatVec/MatTransVec) or between two matrices (Equal,
	// Pattern set operations).
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrLengthMismatch signals that parallel arrays supplied at construction
	// differ in length (rows/cols/vals for COO, indices/vals for compressed,
	// ragged row slices for Dense).
	ErrLengthMismatch = errors.New("sparse: parallel array length mismatch")

	// ErrInvalidPointerArray signals a malformed compressed-format pointer
	// sequence: wrong length, ptr[0] != 0, a decreasing step, or a final
	// offset that does not equal the index-array length.
	ErrInvalidPointerArray = errors.New("sparse: invalid pointer array")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (opt-in; see Options).
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (or nil *Pattern) was passed
	// into a package-level facade.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
