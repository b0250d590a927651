// SPDX-License-Identifier: MIT

// Package sparse: CSC (compressed sparse column) storage.
// CSC keeps one pointer slot per column plus two parallel slices for the
// stored row indices and values: column j occupies rowIdx[ptr[j]:ptr[j+1]]
// and vals[ptr[j]:ptr[j+1]]. The layout is frozen after construction — no
// point mutation — in exchange for O(nnz)-tight multiply kernels and cheap
// column slicing. Build in COO or DOK, compress once, multiply many times.
package sparse

import (
	"fmt"
	"sort"
)

// cscErrorf wraps an underlying error with CSC method context.
func cscErrorf(method string, err error) error {
	return fmt.Errorf("CSC.%s: %w", method, err)
}

// CSC is an m×n matrix compressed by column.
// Invariants: len(ptr) == n+1, ptr[0] == 0, ptr nondecreasing,
// ptr[n] == len(rowIdx) == len(vals).
type CSC struct {
	r, c   int       // declared shape
	ptr    []int     // column j spans [ptr[j], ptr[j+1])
	rowIdx []int     // row index per stored entry
	vals   []float64 // value per stored entry
	sorted bool      // row indices nondecreasing within every column
}

// NewCSC constructs a CSC store from raw compressed arrays.
//
// Implementation:
//   - Stage 1 (Validate): shape; len(rowIdx) == len(vals); pointer structure
//     (length n+1, origin 0, nondecreasing, terminator == nnz); every row
//     index within [0, rows); optional finite check under
//     WithValidateNaNInf. Nothing is allocated until all checks pass.
//   - Stage 2 (Adopt): copy all three slices and probe whether row indices
//     already arrive nondecreasing per column, which later unlocks the
//     binary-search At path.
//
// Behavior highlights:
//   - Entries may repeat a (row, col) cell; readers sum duplicates. Feed the
//     arrays through a compression with WithCoalesce to normalize first.
//   - The input slices are copied, never aliased: callers may reuse them.
//
// Inputs:
//   - rows, cols: logical shape (zero dimensions are legal).
//   - ptr: cols+1 pointer offsets.
//   - rowIdx, vals: parallel entry slices of equal length.
//
// Returns:
//   - *CSC: the adopted store.
//   - error: nil on success.
//
// Errors:
//   - ErrBadShape, ErrLengthMismatch, ErrInvalidPointerArray,
//     ErrOutOfBounds, ErrNaNInf — in that priority order.
//
// Complexity:
//   - Time O(nnz + n), Space O(nnz + n) for the adopted copies.
//
// AI-Hints:
//   - Prefer building via COO/DOK + ToCSC; NewCSC exists for ingesting
//     arrays produced elsewhere (file loaders, other linear-algebra stacks).
func NewCSC(rows, cols int, ptr, rowIdx []int, vals []float64, opts ...Option) (*CSC, error) {
	// Stage 1: validate in documented priority order, before any copy.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, cscErrorf("New", err)
	}
	if len(rowIdx) != len(vals) {
		return nil, cscErrorf("New", fmt.Errorf("rowIdx has %d entries, vals has %d: %w",
			len(rowIdx), len(vals), ErrLengthMismatch))
	}
	if err := ValidatePointers(ptr, cols, len(vals)); err != nil {
		return nil, cscErrorf("New", err)
	}
	if err := ValidateIndexBounds(rowIdx, rows); err != nil {
		return nil, cscErrorf("New", err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(vals); err != nil {
			return nil, cscErrorf("New", err)
		}
	}

	// Stage 2: copy the caller's slices and probe the ordering once.
	m := &CSC{
		r:      rows,
		c:      cols,
		ptr:    append([]int(nil), ptr...),
		rowIdx: append([]int(nil), rowIdx...),
		vals:   append([]float64(nil), vals...),
	}
	m.sorted = segmentsSorted(m.ptr, m.rowIdx)

	return m, nil
}

// Rows returns the number of rows in the declared shape.
// Complexity: O(1).
func (m *CSC) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the declared shape.
// Complexity: O(1).
func (m *CSC) Cols() int {
	return m.c // return stored column count
}

// NNZ returns the number of stored entries, counting duplicates and any
// explicit zeros the caller supplied.
// Complexity: O(1).
func (m *CSC) NNZ() int {
	return len(m.vals) // entry count, not distinct-cell count
}

// Sorted reports whether row indices are nondecreasing within every column.
// Sorted stores answer At by binary search; unsorted ones fall back to a
// linear column scan.
// Complexity: O(1) (probed once at construction).
func (m *CSC) Sorted() bool {
	return m.sorted
}

// At returns the logical value at (row, col), summing duplicate entries for
// the cell. Absent cells read as exactly 0.0.
// Errors: ErrOutOfBounds when an index is negative or outside the shape.
// Complexity: O(log k + d) within a column of k entries and d duplicates
// when sorted, O(k) otherwise.
func (m *CSC) At(row, col int) (float64, error) {
	// Bounds precede any segment arithmetic.
	if err := checkIndex(row, col, m.r, m.c); err != nil {
		return 0, cscErrorf("At", err)
	}

	// Column segment boundaries.
	lo, hi := m.ptr[col], m.ptr[col+1]
	var sum float64 // duplicate-aware accumulator
	if m.sorted {
		// Binary search for the first entry of the duplicate run.
		k := lo + sort.Search(hi-lo, func(i int) bool { return m.rowIdx[lo+i] >= row })
		for ; k < hi && m.rowIdx[k] == row; k++ {
			sum += m.vals[k]
		}
	} else {
		// Unsorted segment: scan it all.
		for k := lo; k < hi; k++ {
			if m.rowIdx[k] == row {
				sum += m.vals[k]
			}
		}
	}

	return sum, nil
}

// MatVec computes y = A·x by column-wise scatter.
//
// Implementation:
//   - Stage 1: validate len(x) == n before allocating y (atomic failure).
//   - Stage 2: for each column j with x[j] != 0, add vals[k]*x[j] into
//     y[rowIdx[k]] across the column segment.
//
// Behavior highlights:
//   - Zero vector entries skip their whole column segment — the natural
//     CSC-side win when x is itself sparse.
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
//   - Accumulation follows the stored layout, so identical stores produce
//     bit-identical results.
//
// Complexity:
//   - Time O(nnz + n), Space O(m).
func (m *CSC) MatVec(x []float64) ([]float64, error) {
	// Validate before any allocation.
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, cscErrorf("MatVec", err)
	}
	// Scatter column contributions into a zeroed result.
	y := make([]float64, m.r)
	var (
		j, k   int     // column cursor, entry cursor
		lo, hi int     // column segment bounds
		xv     float64 // vector element for the column
	)
	for j = 0; j < m.c; j++ {
		xv = x[j]
		if xv == 0 {
			continue // entire column contributes nothing
		}
		lo, hi = m.ptr[j], m.ptr[j+1]
		for k = lo; k < hi; k++ {
			y[m.rowIdx[k]] += m.vals[k] * xv
		}
	}

	return y, nil
}

// MatTransVec computes y = Aᵀ·x by column-wise gather: each output slot j is
// the dot product of column j with x, so no transposed copy is ever built.
// Errors: ErrDimensionMismatch when len(x) != m.
// Complexity: Time O(nnz + n), Space O(n).
func (m *CSC) MatTransVec(x []float64) ([]float64, error) {
	// Validate before any allocation.
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, cscErrorf("MatTransVec", err)
	}
	// Gather one dot product per column.
	y := make([]float64, m.c)
	var (
		j, k   int     // column cursor, entry cursor
		lo, hi int     // column segment bounds
		sum    float64 // dot-product accumulator
	)
	for j = 0; j < m.c; j++ {
		lo, hi = m.ptr[j], m.ptr[j+1]
		sum = 0
		for k = lo; k < hi; k++ {
			sum += m.vals[k] * x[m.rowIdx[k]]
		}
		y[j] = sum
	}

	return y, nil
}

// Ptr returns a copy of the column pointer slice (length n+1).
// Complexity: O(n).
func (m *CSC) Ptr() []int {
	return append([]int(nil), m.ptr...) // copy keeps backing storage private
}

// RowIndices returns a copy of the stored row indices.
// Complexity: O(nnz).
func (m *CSC) RowIndices() []int {
	return append([]int(nil), m.rowIdx...) // copy keeps backing storage private
}

// Values returns a copy of the stored values.
// Complexity: O(nnz).
func (m *CSC) Values() []float64 {
	return append([]float64(nil), m.vals...) // copy keeps backing storage private
}

// Clone returns a deep copy of the CSC store, ordering flag included.
// Complexity: O(nnz + n) time and memory.
func (m *CSC) Clone() Matrix {
	return &CSC{
		r:      m.r,
		c:      m.c,
		ptr:    append([]int(nil), m.ptr...),
		rowIdx: append([]int(nil), m.rowIdx...),
		vals:   append([]float64(nil), m.vals...),
		sorted: m.sorted,
	}
}

// Format reports the storage representation tag.
// Complexity: O(1).
func (m *CSC) Format() Format { return FormatCSC }

// isSparseStore seals CSC into the closed format set.
func (m *CSC) isSparseStore() {}

// ---------- Conversions (delegate to the kernels in conversions.go) ----------

// ToDense materializes the logical matrix, accumulating duplicates into the
// shared cell.
// Complexity: O(m*n + nnz).
func (m *CSC) ToDense() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, m.r*m.c)}
	var j, k int // column cursor, entry cursor
	for j = 0; j < m.c; j++ {
		for k = m.ptr[j]; k < m.ptr[j+1]; k++ {
			out.data[m.rowIdx[k]*m.c+j] += m.vals[k] // += sums duplicates
		}
	}

	return out
}

// ToCOO expands the compressed layout into coordinate triples in stored
// (column-major) order, duplicates and explicit zeros preserved verbatim.
// Complexity: O(nnz + n).
func (m *CSC) ToCOO() *COO {
	ri, ci, vs := m.rawTriples()

	return &COO{r: m.r, c: m.c, rowIdx: ri, colIdx: ci, vals: vs}
}

// ToDOK rebuilds a mutable dictionary-of-keys view. Duplicate entries for a
// cell collapse into their sum; cells whose sum is exactly zero are dropped,
// restoring the no-explicit-zeros invariant.
// Complexity: O(nnz).
func (m *CSC) ToDOK() *DOK {
	ri, ci, vs := m.rawTriples()

	return triplesToDOK(m.r, m.c, ri, ci, vs)
}

// ToCSC re-normalizes the store under the supplied options: the identity
// conversion is a fresh compression, so WithCoalesce merges duplicates and
// the default ordering pass yields a sorted layout even from an unsorted
// receiver. With no options this is a deterministic sorted copy.
// Complexity: O(nnz + m + n).
func (m *CSC) ToCSC(opts ...Option) *CSC {
	ri, ci, vs := m.rawTriples()

	return compressCSC(m.r, m.c, ri, ci, vs, gatherOptions(opts...))
}

// ToCSR transposes the compression axis via the shared kernel.
// Complexity: O(nnz + m + n).
func (m *CSC) ToCSR(opts ...Option) *CSR {
	ri, ci, vs := m.rawTriples()

	return compressCSR(m.r, m.c, ri, ci, vs, gatherOptions(opts...))
}

// rawTriples expands the compressed layout into parallel triple slices in
// stored order.
// Complexity: O(nnz + n).
func (m *CSC) rawTriples() (rowIdx, colIdx []int, vals []float64) {
	rowIdx = make([]int, 0, len(m.vals))
	colIdx = make([]int, 0, len(m.vals))
	vals = make([]float64, 0, len(m.vals))
	var j, k int // column cursor, entry cursor
	for j = 0; j < m.c; j++ {
		for k = m.ptr[j]; k < m.ptr[j+1]; k++ {
			rowIdx = append(rowIdx, m.rowIdx[k])
			colIdx = append(colIdx, j)
			vals = append(vals, m.vals[k])
		}
	}

	return rowIdx, colIdx, vals
}
