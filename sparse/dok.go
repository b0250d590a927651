// SPDX-License-Identifier: MIT

// Package sparse: DOK (dictionary-of-keys) storage.
// DOK maps the packed cell key row*n+col to its value and is the one fully
// mutable sparse format: amortized O(1) point reads and writes, at the cost
// of poor locality during multiply (entries are not grouped by row, so a
// multiply scans the whole mapping once, distributing into y by row index).
// The mapping never holds an explicit zero: writing zero deletes the key, so
// NNZ always equals the mapping size exactly.
package sparse

import (
	"fmt"
	"sort"
)

// dokErrorf wraps an underlying error with DOK method context and coordinates.
func dokErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("DOK.%s(%d,%d): %w", method, row, col, err)
}

// DOK is an m×n matrix stored as a mapping from packed cell keys to values.
// The key encoding is uint64(row)*uint64(n)+uint64(col); see packKey.
type DOK struct {
	r, c     int                // declared shape
	data     map[uint64]float64 // packed key -> non-zero value
	validate bool               // reject NaN/±Inf on Set/Add when true
}

// NewDOK creates an empty rows×cols DOK store.
// Stage 1 (Validate): ensure the shape is non-negative.
// Stage 2 (Prepare): allocate the mapping, pre-sized by WithCapacityHint.
// Errors: ErrBadShape on negative dimensions.
// Complexity: O(1) (plus map pre-sizing).
func NewDOK(rows, cols int, opts ...Option) (*DOK, error) {
	// Validate the shape before allocating anything.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDOK: %w", err)
	}
	// Resolve the policy and the optional capacity hint.
	o := gatherOptions(opts...)

	return &DOK{
		r:        rows,
		c:        cols,
		data:     make(map[uint64]float64, o.capacityHint),
		validate: o.validateNaNInf,
	}, nil
}

// Rows returns the number of rows in the declared shape.
// Complexity: O(1).
func (m *DOK) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the declared shape.
// Complexity: O(1).
func (m *DOK) Cols() int {
	return m.c // return stored column count
}

// NNZ returns the number of stored keys.
// The no-explicit-zeros invariant makes this the exact non-zero count.
// Complexity: O(1).
func (m *DOK) NNZ() int {
	return len(m.data) // map size is maintained incrementally
}

// At returns the mapped value at (row, col), or exactly 0.0 when the key is
// absent.
// Errors: ErrOutOfBounds when an index is negative or outside the shape.
// Complexity: O(1) amortized.
func (m *DOK) At(row, col int) (float64, error) {
	// Bounds first; absent keys inside the shape read as zero.
	if err := checkIndex(row, col, m.r, m.c); err != nil {
		return 0, dokErrorf("At", row, col, err)
	}

	// Missing keys yield the additive identity.
	return m.data[packKey(row, col, m.c)], nil
}

// Set writes v at (row, col).
// Implementation:
//   - Stage 1: bounds check; finite check under the captured policy.
//   - Stage 2: v != 0 inserts or overwrites the key; v == 0 deletes the key
//     if present (no-op when absent).
//
// Behavior highlights:
//   - NNZ changes by at most 1 per call; the mapping never holds a zero.
//
// Inputs:
//   - row, col: cell coordinate inside the shape.
//   - v: value; exact zero means "erase".
//
// Returns:
//   - error: nil on success.
//
// Errors:
//   - ErrOutOfBounds (bad coordinate), ErrNaNInf (policy violation);
//     both reported before any mutation.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
//
// AI-Hints:
//   - Build incrementally here, then ToCSC/ToCSR once for multiply-heavy
//     phases; compressed stores expose no point mutation at all.
func (m *DOK) Set(row, col int, v float64) error {
	// Validate the coordinate before touching the mapping.
	if err := checkIndex(row, col, m.r, m.c); err != nil {
		return dokErrorf("Set", row, col, err)
	}
	// Enforce the captured numeric policy before mutating.
	if m.validate {
		if err := checkFinite(v); err != nil {
			return dokErrorf("Set", row, col, err)
		}
	}

	// Zero writes erase; non-zero writes insert or overwrite.
	key := packKey(row, col, m.c)
	if v == 0 {
		delete(m.data, key) // no-op when the key is absent
	} else {
		m.data[key] = v
	}

	return nil
}

// Add accumulates delta into (row, col): a read-modify-write point update.
// A resulting exact zero removes the key, preserving the no-explicit-zeros
// invariant; accumulating onto an absent key starts from zero.
// Errors: ErrOutOfBounds, ErrNaNInf (policy, checked on delta) — before any
// mutation.
// Complexity: O(1) amortized.
func (m *DOK) Add(row, col int, delta float64) error {
	// Validate the coordinate before touching the mapping.
	if err := checkIndex(row, col, m.r, m.c); err != nil {
		return dokErrorf("Add", row, col, err)
	}
	// Enforce the captured numeric policy on the increment.
	if m.validate {
		if err := checkFinite(delta); err != nil {
			return dokErrorf("Add", row, col, err)
		}
	}

	// Read-modify-write; erase when the sum cancels to exact zero.
	key := packKey(row, col, m.c)
	sum := m.data[key] + delta // absent key reads as zero
	if sum == 0 {
		delete(m.data, key)
	} else {
		m.data[key] = sum
	}

	return nil
}

// MatVec computes y = A·x in one scan of the mapping.
// Implementation:
//   - Stage 1: validate len(x) == n before allocating y (atomic failure).
//   - Stage 2: y[row] += v * x[col] for every stored key.
//
// Behavior highlights:
//   - Cost is O(nnz), independent of the m·n cell count — the flexibility/
//     locality trade-off this format embodies.
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
//   - Accumulation follows map enumeration order, which is unspecified;
//     sums are mathematically identical but may differ in the last bits
//     between runs. Convert to a compressed form for bit-stable results.
//
// Complexity:
//   - Time O(nnz), Space O(m).
func (m *DOK) MatVec(x []float64) ([]float64, error) {
	// Validate before any allocation.
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, fmt.Errorf("DOK.MatVec: %w", err)
	}
	// Accumulate into a zeroed result.
	y := make([]float64, m.r)
	var row, col int // decoded coordinates
	for key, v := range m.data {
		row, col = unpackKey(key, m.c) // c > 0 whenever a key exists
		y[row] += v * x[col]           // scatter by row
	}

	return y, nil
}

// MatTransVec computes y = Aᵀ·x in one scan of the mapping.
// Errors: ErrDimensionMismatch when len(x) != m.
// Determinism: map enumeration order (see MatVec notes).
// Complexity: Time O(nnz), Space O(n).
func (m *DOK) MatTransVec(x []float64) ([]float64, error) {
	// Validate before any allocation.
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, fmt.Errorf("DOK.MatTransVec: %w", err)
	}
	// Accumulate into a zeroed result over columns.
	y := make([]float64, m.c)
	var row, col int // decoded coordinates
	for key, v := range m.data {
		row, col = unpackKey(key, m.c)
		y[col] += v * x[row] // scatter by column
	}

	return y, nil
}

// Triples returns the stored entries sorted ascending by packed key
// (row-major). Sorting buys deterministic exports from the unordered
// mapping; the O(nnz log nnz) cost is the documented price.
// Complexity: O(nnz log nnz) time, O(nnz) space.
func (m *DOK) Triples() []Triple {
	// Collect and order the keys for a stable export.
	keys := make([]uint64, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })

	// Decode in sorted order.
	out := make([]Triple, len(keys))
	var row, col int // decoded coordinates
	for k, key := range keys {
		row, col = unpackKey(key, m.c)
		out[k] = Triple{Row: row, Col: col, Val: m.data[key]}
	}

	return out
}

// Clone returns a deep copy of the DOK store.
// Complexity: O(nnz) time and memory.
func (m *DOK) Clone() Matrix {
	// Copy the mapping; keys and values are plain scalars.
	data := make(map[uint64]float64, len(m.data))
	for key, v := range m.data {
		data[key] = v
	}

	return &DOK{r: m.r, c: m.c, data: data, validate: m.validate}
}

// Format reports the storage representation tag.
// Complexity: O(1).
func (m *DOK) Format() Format { return FormatDOK }

// isSparseStore seals DOK into the closed format set.
func (m *DOK) isSparseStore() {}

// ---------- Conversions (delegate to the kernels in conversions.go) ----------

// ToDense materializes the logical matrix: zeroed m×n storage with one
// assignment per stored key (keys are unique, so order is irrelevant).
// Complexity: O(m*n + nnz).
func (m *DOK) ToDense() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, m.r*m.c)}
	var row, col int // decoded coordinates
	for key, v := range m.data {
		row, col = unpackKey(key, m.c)
		out.data[row*m.c+col] = v // unique keys: plain assignment
	}

	return out
}

// ToCOO exports the stored entries as coordinate triples in row-major order
// (via the sorted Triples export, so the layout is deterministic).
// Complexity: O(nnz log nnz).
func (m *DOK) ToCOO() *COO {
	ts := m.Triples() // sorted, deterministic
	ri := make([]int, len(ts))
	ci := make([]int, len(ts))
	vs := make([]float64, len(ts))
	for k, t := range ts {
		ri[k] = t.Row
		ci[k] = t.Col
		vs[k] = t.Val
	}

	return &COO{r: m.r, c: m.c, rowIdx: ri, colIdx: ci, vals: vs}
}

// ToDOK returns an independent dictionary-of-keys copy of the receiver.
// Complexity: O(nnz).
func (m *DOK) ToDOK() *DOK {
	return m.Clone().(*DOK) // Clone already produces an unaliased DOK
}

// ToCSC compresses the stored entries by column.
// Keys are unique, so no coalescing is ever needed; under the default
// ordering pass the output layout is deterministic despite map enumeration.
// Complexity: O(nnz + m + n) sorted, O(nnz + n) unsorted (layout then
// follows enumeration order within each column).
func (m *DOK) ToCSC(opts ...Option) *CSC {
	ri, ci, vs := m.rawTriples()

	return compressCSC(m.r, m.c, ri, ci, vs, gatherOptions(opts...))
}

// ToCSR compresses the stored entries by row (the CSC mirror).
// Complexity: O(nnz + m + n) sorted, O(nnz + m) unsorted.
func (m *DOK) ToCSR(opts ...Option) *CSR {
	ri, ci, vs := m.rawTriples()

	return compressCSR(m.r, m.c, ri, ci, vs, gatherOptions(opts...))
}

// rawTriples dumps the mapping into parallel slices in enumeration order.
// Used by the compression paths, where the counting-sort kernel imposes its
// own order; use Triples for a deterministic export.
// Complexity: O(nnz).
func (m *DOK) rawTriples() (rowIdx, colIdx []int, vals []float64) {
	rowIdx = make([]int, 0, len(m.data))
	colIdx = make([]int, 0, len(m.data))
	vals = make([]float64, 0, len(m.data))
	var row, col int // decoded coordinates
	for key, v := range m.data {
		row, col = unpackKey(key, m.c)
		rowIdx = append(rowIdx, row)
		colIdx = append(colIdx, col)
		vals = append(vals, v)
	}

	return rowIdx, colIdx, vals
}
