// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by every storage format.
// This file intentionally contains ONLY domain-facing types (the Matrix
// interface, the Format tag, the Triple record) and the packed-key helpers
// the formats agree on. Errors and options live in dedicated files
// (errors.go, options.go) per the global conventions.
package sparse

// Format tags the concrete storage representation behind a Matrix value.
// The set is closed: exactly five formats exist and the interface below is
// sealed, so a Format value is exhaustive in switches.
type Format uint8

// Storage format tags, in conversion-matrix order.
const (
	// FormatCOO — coordinate triples (rows/cols/vals parallel slices).
	FormatCOO Format = iota

	// FormatDOK — dictionary of keys (packed-index map).
	FormatDOK

	// FormatCSC — compressed sparse column (ptr over columns).
	FormatCSC

	// FormatCSR — compressed sparse row (ptr over rows).
	FormatCSR

	// FormatDense — row-major dense reference.
	FormatDense
)

// formatNames maps Format tags to their canonical short names.
// Kept private; String() is the public surface.
var formatNames = [...]string{"COO", "DOK", "CSC", "CSR", "Dense"}

// String returns the canonical short name of the format ("COO", "DOK", ...).
// Complexity: O(1).
func (f Format) String() string {
	// A tag outside the sealed set prints as Unknown instead of panicking.
	if int(f) >= len(formatNames) {
		return "Unknown"
	}

	return formatNames[f]
}

// Triple is one stored entry: a (row, col) coordinate and its value.
// It is the unit of exchange with the ingestion boundary (matrix-market-style
// collaborators hand the core 0-based triples plus a validated shape) and the
// unit of export from Triples() accessors.
type Triple struct {
	Row int     // 0-based row index, in [0, m)
	Col int     // 0-based column index, in [0, n)
	Val float64 // stored value; explicit zeros are legal in COO
}

// Matrix is the uniform view over all five storage formats.
//
// The format set is fixed and exhaustive — COO, DOK, CSC, CSR, Dense — so
// the interface is sealed with an unexported method; external packages can
// consume Matrix values but cannot add a sixth implementation. Mutation is
// deliberately absent from this surface: only DOK (Set/Add) and Dense (Set)
// are mutable, as their own methods, matching each format's lifecycle.
//
// Complexity notes: Rows/Cols/Format are O(1); NNZ is O(1) for COO, DOK and
// compressed forms (stored counts) and O(m·n) for Dense; At is O(1) for
// DOK/Dense, O(log k) or O(k) for a compressed slice of size k, O(nnz) for
// COO; MatVec and MatTransVec are O(nnz) for sparse formats and O(m·n) for
// Dense; conversions and Clone are linear in their output size.
type Matrix interface {
	// Rows returns the number of rows (m) in the declared shape.
	Rows() int

	// Cols returns the number of columns (n) in the declared shape.
	Cols() int

	// NNZ returns the stored-entry count under each format's semantics:
	// COO counts stored triples (duplicates and explicit zeros included),
	// DOK counts mapping keys, compressed forms count ptr[last], and Dense
	// counts exactly-non-zero cells.
	NNZ() int

	// At returns the logical value at (row, col): the duplicate-summed value
	// for COO, the mapped value or zero for DOK, the slice lookup for
	// compressed forms, the cell for Dense. Returns ErrOutOfBounds when an
	// index is negative or outside the shape.
	At(row, col int) (float64, error)

	// MatVec computes y = A·x. Returns ErrDimensionMismatch when
	// len(x) != Cols(). The result is freshly allocated after validation.
	MatVec(x []float64) ([]float64, error)

	// MatTransVec computes y = Aᵀ·x without materializing the transpose.
	// Returns ErrDimensionMismatch when len(x) != Rows().
	MatTransVec(x []float64) ([]float64, error)

	// ToDense materializes the logical matrix as a Dense reference.
	ToDense() *Dense

	// ToCOO exports the stored entries as a coordinate store.
	ToCOO() *COO

	// ToDOK exports the logical matrix as a dictionary-of-keys store
	// (duplicate keys summed, exact-zero results dropped).
	ToDOK() *DOK

	// ToCSC compresses the stored entries by column. Options control the
	// minor-index ordering pass and duplicate coalescing.
	ToCSC(opts ...Option) *CSC

	// ToCSR compresses the stored entries by row (the CSC mirror).
	ToCSR(opts ...Option) *CSR

	// Clone returns a deep copy; the result shares no backing storage with
	// the receiver.
	Clone() Matrix

	// Format reports the concrete storage representation tag.
	Format() Format

	// isSparseStore seals the interface to this package's five formats.
	isSparseStore()
}

// packKey folds (row, col) into the single integer row*cols + col.
// This is the canonical cell key shared by DOK storage and Pattern bitmaps;
// uint64 keeps the product exact for any shape whose cell count fits memory.
// Complexity: O(1).
func packKey(row, col, cols int) uint64 {
	return uint64(row)*uint64(cols) + uint64(col)
}

// unpackKey is the inverse of packKey. Callers must guarantee cols > 0,
// which holds whenever a packed key exists (no key can be formed under a
// zero-width shape).
// Complexity: O(1).
func unpackKey(key uint64, cols int) (row, col int) {
	return int(key / uint64(cols)), int(key % uint64(cols))
}
