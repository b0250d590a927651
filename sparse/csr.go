// SPDX-License-Identifier: MIT

// Package sparse: CSR (compressed sparse row) storage — the row-major mirror
// of csc.go. Row i occupies colIdx[ptr[i]:ptr[i+1]] and vals[ptr[i]:ptr[i+1]];
// everything said about CSC (frozen layout, duplicate summing on read,
// sorted/unsorted At paths) holds here with the axes swapped. CSR is the
// natural choice when A·x dominates and rows should stream contiguously.
package sparse

import (
	"fmt"
	"sort"
)

// csrErrorf wraps an underlying error with CSR method context.
func csrErrorf(method string, err error) error {
	return fmt.Errorf("CSR.%s: %w", method, err)
}

// CSR is an m×n matrix compressed by row.
// Invariants: len(ptr) == m+1, ptr[0] == 0, ptr nondecreasing,
// ptr[m] == len(colIdx) == len(vals).
type CSR struct {
	r, c   int       // declared shape
	ptr    []int     // row i spans [ptr[i], ptr[i+1])
	colIdx []int     // column index per stored entry
	vals   []float64 // value per stored entry
	sorted bool      // column indices nondecreasing within every row
}

// NewCSR constructs a CSR store from raw compressed arrays.
// Validation runs in the documented priority order — shape, parallel-array
// length, pointer structure (length m+1, origin, monotonicity, terminator),
// column bounds, then the opt-in finite check — before anything is copied.
// The input slices are copied, never aliased, and the nondecreasing-order
// probe runs once so At can pick its search strategy.
// Errors: ErrBadShape, ErrLengthMismatch, ErrInvalidPointerArray,
// ErrOutOfBounds, ErrNaNInf.
// Complexity: O(nnz + m).
func NewCSR(rows, cols int, ptr, colIdx []int, vals []float64, opts ...Option) (*CSR, error) {
	// Validate in priority order before any copy.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, csrErrorf("New", err)
	}
	if len(colIdx) != len(vals) {
		return nil, csrErrorf("New", fmt.Errorf("colIdx has %d entries, vals has %d: %w",
			len(colIdx), len(vals), ErrLengthMismatch))
	}
	if err := ValidatePointers(ptr, rows, len(vals)); err != nil {
		return nil, csrErrorf("New", err)
	}
	if err := ValidateIndexBounds(colIdx, cols); err != nil {
		return nil, csrErrorf("New", err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(vals); err != nil {
			return nil, csrErrorf("New", err)
		}
	}

	// Copy the caller's slices and probe the ordering once.
	m := &CSR{
		r:      rows,
		c:      cols,
		ptr:    append([]int(nil), ptr...),
		colIdx: append([]int(nil), colIdx...),
		vals:   append([]float64(nil), vals...),
	}
	m.sorted = segmentsSorted(m.ptr, m.colIdx)

	return m, nil
}

// Rows returns the number of rows in the declared shape.
// Complexity: O(1).
func (m *CSR) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the declared shape.
// Complexity: O(1).
func (m *CSR) Cols() int {
	return m.c // return stored column count
}

// NNZ returns the number of stored entries, counting duplicates and any
// explicit zeros the caller supplied.
// Complexity: O(1).
func (m *CSR) NNZ() int {
	return len(m.vals) // entry count, not distinct-cell count
}

// Sorted reports whether column indices are nondecreasing within every row.
// Complexity: O(1) (probed once at construction).
func (m *CSR) Sorted() bool {
	return m.sorted
}

// At returns the logical value at (row, col), summing duplicate entries for
// the cell. Absent cells read as exactly 0.0.
// Errors: ErrOutOfBounds when an index is negative or outside the shape.
// Complexity: O(log k + d) within a row of k entries and d duplicates when
// sorted, O(k) otherwise.
func (m *CSR) At(row, col int) (float64, error) {
	// Bounds precede any segment arithmetic.
	if err := checkIndex(row, col, m.r, m.c); err != nil {
		return 0, csrErrorf("At", err)
	}

	// Row segment boundaries.
	lo, hi := m.ptr[row], m.ptr[row+1]
	var sum float64 // duplicate-aware accumulator
	if m.sorted {
		// Binary search for the first entry of the duplicate run.
		k := lo + sort.Search(hi-lo, func(i int) bool { return m.colIdx[lo+i] >= col })
		for ; k < hi && m.colIdx[k] == col; k++ {
			sum += m.vals[k]
		}
	} else {
		// Unsorted segment: scan it all.
		for k := lo; k < hi; k++ {
			if m.colIdx[k] == col {
				sum += m.vals[k]
			}
		}
	}

	return sum, nil
}

// MatVec computes y = A·x by row-wise gather: y[i] is the dot product of row
// i with x, accumulated in stored order for bit-stable results.
// Errors: ErrDimensionMismatch when len(x) != n.
// Complexity: Time O(nnz + m), Space O(m).
func (m *CSR) MatVec(x []float64) ([]float64, error) {
	// Validate before any allocation.
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, csrErrorf("MatVec", err)
	}
	// Gather one dot product per row.
	y := make([]float64, m.r)
	var (
		i, k   int     // row cursor, entry cursor
		lo, hi int     // row segment bounds
		sum    float64 // dot-product accumulator
	)
	for i = 0; i < m.r; i++ {
		lo, hi = m.ptr[i], m.ptr[i+1]
		sum = 0
		for k = lo; k < hi; k++ {
			sum += m.vals[k] * x[m.colIdx[k]]
		}
		y[i] = sum
	}

	return y, nil
}

// MatTransVec computes y = Aᵀ·x by row-wise scatter; zero vector entries
// skip their whole row segment, mirroring the CSC forward kernel.
// Errors: ErrDimensionMismatch when len(x) != m.
// Complexity: Time O(nnz + m), Space O(n).
func (m *CSR) MatTransVec(x []float64) ([]float64, error) {
	// Validate before any allocation.
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, csrErrorf("MatTransVec", err)
	}
	// Scatter row contributions into a zeroed result.
	y := make([]float64, m.c)
	var (
		i, k   int     // row cursor, entry cursor
		lo, hi int     // row segment bounds
		xv     float64 // vector element for the row
	)
	for i = 0; i < m.r; i++ {
		xv = x[i]
		if xv == 0 {
			continue // entire row contributes nothing
		}
		lo, hi = m.ptr[i], m.ptr[i+1]
		for k = lo; k < hi; k++ {
			y[m.colIdx[k]] += m.vals[k] * xv
		}
	}

	return y, nil
}

// Ptr returns a copy of the row pointer slice (length m+1).
// Complexity: O(m).
func (m *CSR) Ptr() []int {
	return append([]int(nil), m.ptr...) // copy keeps backing storage private
}

// ColIndices returns a copy of the stored column indices.
// Complexity: O(nnz).
func (m *CSR) ColIndices() []int {
	return append([]int(nil), m.colIdx...) // copy keeps backing storage private
}

// Values returns a copy of the stored values.
// Complexity: O(nnz).
func (m *CSR) Values() []float64 {
	return append([]float64(nil), m.vals...) // copy keeps backing storage private
}

// Clone returns a deep copy of the CSR store, ordering flag included.
// Complexity: O(nnz + m) time and memory.
func (m *CSR) Clone() Matrix {
	return &CSR{
		r:      m.r,
		c:      m.c,
		ptr:    append([]int(nil), m.ptr...),
		colIdx: append([]int(nil), m.colIdx...),
		vals:   append([]float64(nil), m.vals...),
		sorted: m.sorted,
	}
}

// Format reports the storage representation tag.
// Complexity: O(1).
func (m *CSR) Format() Format { return FormatCSR }

// isSparseStore seals CSR into the closed format set.
func (m *CSR) isSparseStore() {}

// ---------- Conversions (delegate to the kernels in conversions.go) ----------

// ToDense materializes the logical matrix, accumulating duplicates into the
// shared cell.
// Complexity: O(m*n + nnz).
func (m *CSR) ToDense() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, m.r*m.c)}
	var i, k int // row cursor, entry cursor
	for i = 0; i < m.r; i++ {
		for k = m.ptr[i]; k < m.ptr[i+1]; k++ {
			out.data[i*m.c+m.colIdx[k]] += m.vals[k] // += sums duplicates
		}
	}

	return out
}

// ToCOO expands the compressed layout into coordinate triples in stored
// (row-major) order, duplicates and explicit zeros preserved verbatim.
// Complexity: O(nnz + m).
func (m *CSR) ToCOO() *COO {
	ri, ci, vs := m.rawTriples()

	return &COO{r: m.r, c: m.c, rowIdx: ri, colIdx: ci, vals: vs}
}

// ToDOK rebuilds a mutable dictionary-of-keys view. Duplicate entries for a
// cell collapse into their sum; cells whose sum is exactly zero are dropped,
// restoring the no-explicit-zeros invariant.
// Complexity: O(nnz).
func (m *CSR) ToDOK() *DOK {
	ri, ci, vs := m.rawTriples()

	return triplesToDOK(m.r, m.c, ri, ci, vs)
}

// ToCSC transposes the compression axis via the shared kernel.
// Complexity: O(nnz + m + n).
func (m *CSR) ToCSC(opts ...Option) *CSC {
	ri, ci, vs := m.rawTriples()

	return compressCSC(m.r, m.c, ri, ci, vs, gatherOptions(opts...))
}

// ToCSR re-normalizes the store under the supplied options: the identity
// conversion is a fresh compression, so WithCoalesce merges duplicates and
// the default ordering pass yields a sorted layout even from an unsorted
// receiver. With no options this is a deterministic sorted copy.
// Complexity: O(nnz + m + n).
func (m *CSR) ToCSR(opts ...Option) *CSR {
	ri, ci, vs := m.rawTriples()

	return compressCSR(m.r, m.c, ri, ci, vs, gatherOptions(opts...))
}

// rawTriples expands the compressed layout into parallel triple slices in
// stored order.
// Complexity: O(nnz + m).
func (m *CSR) rawTriples() (rowIdx, colIdx []int, vals []float64) {
	rowIdx = make([]int, 0, len(m.vals))
	colIdx = make([]int, 0, len(m.vals))
	vals = make([]float64, 0, len(m.vals))
	var i, k int // row cursor, entry cursor
	for i = 0; i < m.r; i++ {
		for k = m.ptr[i]; k < m.ptr[i+1]; k++ {
			rowIdx = append(rowIdx, i)
			colIdx = append(colIdx, m.colIdx[k])
			vals = append(vals, m.vals[k])
		}
	}

	return rowIdx, colIdx, vals
}
