// SPDX-License-Identifier: MIT

// Package sparse: COO (coordinate) storage.
// COO keeps three parallel slices of (row, col, value) triples in arrival
// order. It is the natural landing zone for ingested data: construction is
// one validation scan, duplicates are legal (they represent an implicit sum),
// and explicit zeros are stored as-is. The store is effectively immutable —
// every derived matrix (Coalesce, conversions) is a new, independently owned
// structure.
package sparse

import "fmt"

// cooErrorf wraps an underlying error with COO method context.
func cooErrorf(method string, err error) error {
	return fmt.Errorf("COO.%s: %w", method, err)
}

// COO is an m×n matrix stored as parallel coordinate triples.
// Entries need not be sorted or unique; duplicate (row, col) pairs sum in
// every multiply and conversion (the standard coalescing convention).
type COO struct {
	r, c   int       // declared shape
	rowIdx []int     // row index per stored entry, length nnz
	colIdx []int     // column index per stored entry, length nnz
	vals   []float64 // value per stored entry, length nnz
}

// NewCOO builds a COO store from three parallel slices.
// Implementation:
//   - Stage 1: validate shape, then slice lengths, then entry bounds, then
//     (under the opt-in policy) value finiteness — in exactly that priority.
//   - Stage 2: copy all three slices; the caller keeps its arguments.
//
// Behavior highlights:
//   - Duplicates and explicit zeros are accepted and stored verbatim: NNZ
//     reports stored entries, not mathematical non-zeros.
//   - The store never aliases caller memory.
//
// Inputs:
//   - rows, cols: declared shape (non-negative).
//   - rowIdx, colIdx, vals: parallel triple slices (may be empty or nil).
//   - opts: WithValidateNaNInf enables the finite-value check.
//
// Returns:
//   - *COO: the constructed store.
//
// Errors:
//   - ErrBadShape, ErrLengthMismatch, ErrOutOfBounds, ErrNaNInf (opt-in).
//
// Determinism:
//   - Entry order is preserved exactly as given.
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
//
// AI-Hints:
//   - Feed matrix-market-style triples here (already 0-based), then convert
//     to CSC/CSR once for repeated multiplies.
func NewCOO(rows, cols int, rowIdx, colIdx []int, vals []float64, opts ...Option) (*COO, error) {
	// Shape first: the bounds of every later check depend on it.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, cooErrorf("New", err)
	}
	// Lengths, then bounds, via the centralized validator.
	if err := ValidateTripleSlices(rows, cols, rowIdx, colIdx, vals); err != nil {
		return nil, cooErrorf("New", err)
	}
	// Numeric policy runs last so the structural taxonomy keeps priority.
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(vals); err != nil {
			return nil, cooErrorf("New", err)
		}
	}

	// Copy the parallel slices; constructors never keep caller memory.
	ri := make([]int, len(rowIdx))
	ci := make([]int, len(colIdx))
	vs := make([]float64, len(vals))
	copy(ri, rowIdx)
	copy(ci, colIdx)
	copy(vs, vals)

	return &COO{r: rows, c: cols, rowIdx: ri, colIdx: ci, vals: vs}, nil
}

// NewCOOFromTriples builds a COO store from Triple records.
// Convenience entry for the ingestion boundary: collaborators that parse
// external formats hand the core a validated shape plus 0-based triples.
// Errors and semantics match NewCOO exactly.
// Complexity: O(nnz) time and space.
func NewCOOFromTriples(rows, cols int, triples []Triple, opts ...Option) (*COO, error) {
	// Split the records into parallel slices once, then reuse NewCOO's
	// validation chain (shape → length → bounds → policy).
	ri := make([]int, len(triples))
	ci := make([]int, len(triples))
	vs := make([]float64, len(triples))
	var k int // entry cursor
	for k = 0; k < len(triples); k++ {
		ri[k] = triples[k].Row
		ci[k] = triples[k].Col
		vs[k] = triples[k].Val
	}

	return NewCOO(rows, cols, ri, ci, vs, opts...)
}

// Rows returns the number of rows in the declared shape.
// Complexity: O(1).
func (m *COO) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the declared shape.
// Complexity: O(1).
func (m *COO) Cols() int {
	return m.c // return stored column count
}

// NNZ returns the stored triple count.
// Duplicates and explicit zeros each count as stored entries, so the result
// may exceed the number of mathematical non-zeros. Coalesce first when a
// tight count matters.
// Complexity: O(1).
func (m *COO) NNZ() int {
	return len(m.vals) // one stored entry per triple
}

// At returns the logical value at (row, col): the sum of every stored triple
// at that coordinate (zero when none exist).
// COO has no index, so the lookup is a full scan — this is the documented
// cost of the format; convert to CSC/CSR or DOK for point-heavy access.
// Errors: ErrOutOfBounds when an index is negative or outside the shape.
// Complexity: O(nnz).
func (m *COO) At(row, col int) (float64, error) {
	// Bounds first; the scan below assumes a valid coordinate.
	if err := checkIndex(row, col, m.r, m.c); err != nil {
		return 0, fmt.Errorf("COO.At(%d,%d): %w", row, col, err)
	}

	// Sum duplicates in stored order.
	var sum float64 // duplicate-summed logical value
	var k int       // entry cursor
	for k = 0; k < len(m.vals); k++ {
		if m.rowIdx[k] == row && m.colIdx[k] == col {
			sum += m.vals[k]
		}
	}

	return sum, nil
}

// MatVec computes y = A·x in one pass over the stored triples.
// Implementation:
//   - Stage 1: validate len(x) == n before allocating y (atomic failure).
//   - Stage 2: accumulate y[rowIdx[k]] += vals[k] * x[colIdx[k]].
//
// Behavior highlights:
//   - Duplicates sum automatically through the accumulation — the standard
//     coalescing semantics with no preprocessing pass.
//
// Inputs:
//   - x: vector of length n.
//
// Returns:
//   - []float64: freshly allocated y of length m.
//
// Errors:
//   - ErrDimensionMismatch when len(x) != n.
//
// Determinism:
//   - Fixed k order (stored entry order); stable accumulation.
//
// Complexity:
//   - Time O(nnz), Space O(m) — independent of the m·n cell count.
func (m *COO) MatVec(x []float64) ([]float64, error) {
	// Validate before any allocation.
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, cooErrorf("MatVec", err)
	}
	// Accumulate into a zeroed result.
	y := make([]float64, m.r)
	var k int // entry cursor
	for k = 0; k < len(m.vals); k++ {
		y[m.rowIdx[k]] += m.vals[k] * x[m.colIdx[k]] // scatter by row
	}

	return y, nil
}

// MatTransVec computes y = Aᵀ·x in one pass, indices swapped.
// Errors: ErrDimensionMismatch when len(x) != m.
// Determinism: fixed k order (stored entry order).
// Complexity: Time O(nnz), Space O(n).
func (m *COO) MatTransVec(x []float64) ([]float64, error) {
	// Validate before any allocation.
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, cooErrorf("MatTransVec", err)
	}
	// Accumulate into a zeroed result over columns.
	y := make([]float64, m.c)
	var k int // entry cursor
	for k = 0; k < len(m.vals); k++ {
		y[m.colIdx[k]] += m.vals[k] * x[m.rowIdx[k]] // scatter by column
	}

	return y, nil
}

// Triples returns a copy of the stored entries in stored order.
// The copy keeps the backing slices private (stores never share arrays).
// Complexity: O(nnz).
func (m *COO) Triples() []Triple {
	out := make([]Triple, len(m.vals))
	var k int // entry cursor
	for k = 0; k < len(m.vals); k++ {
		out[k] = Triple{Row: m.rowIdx[k], Col: m.colIdx[k], Val: m.vals[k]}
	}

	return out
}

// Coalesce returns a new COO with duplicate (row, col) keys merged by
// summation, sorted row-major.
// Implementation:
//   - Stage 1: stable two-pass counting sort groups triples row-major.
//   - Stage 2: merge adjacent equal keys; a summed entry is kept even when
//     the sum is exactly zero (stored-entry semantics).
//
// Behavior highlights:
//   - The receiver is untouched; the result owns fresh slices.
//
// Returns:
//   - *COO: coalesced, row-major-sorted store.
//
// Determinism:
//   - Stable passes give a unique output layout for a given input multiset.
//
// Complexity:
//   - Time O(nnz + m + n), Space O(nnz).
func (m *COO) Coalesce(opts ...Option) *COO {
	ri, ci, vs := coalesceTriples(m.r, m.c, m.rowIdx, m.colIdx, m.vals, gatherOptions(opts...))

	return &COO{r: m.r, c: m.c, rowIdx: ri, colIdx: ci, vals: vs}
}

// Clone returns a deep copy of the COO store.
// Complexity: O(nnz) time and memory.
func (m *COO) Clone() Matrix {
	// Reuse the conversion constructor shape: copy all three slices.
	ri := make([]int, len(m.rowIdx))
	ci := make([]int, len(m.colIdx))
	vs := make([]float64, len(m.vals))
	copy(ri, m.rowIdx)
	copy(ci, m.colIdx)
	copy(vs, m.vals)

	return &COO{r: m.r, c: m.c, rowIdx: ri, colIdx: ci, vals: vs}
}

// Format reports the storage representation tag.
// Complexity: O(1).
func (m *COO) Format() Format { return FormatCOO }

// isSparseStore seals COO into the closed format set.
func (m *COO) isSparseStore() {}

// ---------- Conversions (delegate to the kernels in conversions.go) ----------

// ToDense materializes the logical matrix: zeroed m×n storage with one
// accumulating assignment per stored triple (duplicates sum).
// Complexity: O(m*n + nnz).
func (m *COO) ToDense() *Dense {
	return triplesToDense(m.r, m.c, m.rowIdx, m.colIdx, m.vals)
}

// ToCOO returns an independent coordinate copy of the receiver.
// Complexity: O(nnz).
func (m *COO) ToCOO() *COO {
	return m.Clone().(*COO) // Clone already produces an unaliased COO
}

// ToDOK accumulates the triples into a dictionary-of-keys store: duplicate
// keys sum, and keys whose sum lands on exact zero are dropped to keep the
// DOK no-explicit-zeros invariant.
// Complexity: O(nnz).
func (m *COO) ToDOK() *DOK {
	return triplesToDOK(m.r, m.c, m.rowIdx, m.colIdx, m.vals)
}

// ToCSC compresses the triples by column via the counting-sort kernel.
// Default options order every column slice (duplicates adjacent); see
// WithNoSortIndices and WithCoalesce for the other layouts.
// Complexity: O(nnz + m + n) sorted, O(nnz + n) unsorted.
func (m *COO) ToCSC(opts ...Option) *CSC {
	return compressCSC(m.r, m.c, m.rowIdx, m.colIdx, m.vals, gatherOptions(opts...))
}

// ToCSR compresses the triples by row (the CSC mirror).
// Complexity: O(nnz + m + n) sorted, O(nnz + m) unsorted.
func (m *COO) ToCSR(opts ...Option) *CSR {
	return compressCSR(m.r, m.c, m.rowIdx, m.colIdx, m.vals, gatherOptions(opts...))
}
