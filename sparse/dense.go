// Package sparse: Dense is the row-major reference implementation.
// Dense stores every cell in a flat slice for locality and serves as the
// semantic ground truth that conversions and multiplies are checked against.
package sparse

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// validate carries the finite-value policy captured at construction.
type Dense struct {
	r, c     int       // number of rows and columns
	data     []float64 // flat backing storage, length == r*c
	validate bool      // reject NaN/±Inf on Set when true
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols are non-negative.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate dimensions (zero-sized shapes are legal).
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense: %w", err)
	}
	// Resolve the numeric policy once.
	o := gatherOptions(opts...)
	// Allocate the flat slice.
	data := make([]float64, rows*cols)

	// Return the initialized Dense.
	return &Dense{r: rows, c: cols, data: data, validate: o.validateNaNInf}, nil
}

// NewDenseFromRows creates a Dense matrix from per-row value slices.
// Stage 1 (Validate): shape from len(rows) and len(rows[0]); every row must
// share the same length, else ErrLengthMismatch; optional finite check.
// Stage 2 (Execute): copy values row by row into the flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	// Derive the shape: columns follow the first row (0 when there are none).
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	// Resolve options before scanning values.
	o := gatherOptions(opts...)

	// Validate row lengths and, under the policy, value finiteness.
	var i int // row cursor
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d: %w", i, ErrLengthMismatch)
		}
		if o.validateNaNInf {
			if err := ValidateFinite(rows[i]); err != nil {
				return nil, fmt.Errorf("NewDenseFromRows: row %d: %w", i, err)
			}
		}
	}

	// Copy into the flat layout only after all validation passed.
	data := make([]float64, r*c)
	for i = 0; i < r; i++ {
		copy(data[i*c:(i+1)*c], rows[i]) // row i lands at offset i*c
	}

	return &Dense{r: r, c: c, data: data, validate: o.validateNaNInf}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfBounds
// wrapped with the caller's method tag.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return the linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate both indices against the shape.
	if err := checkIndex(row, col, m.r, m.c); err != nil {
		return 0, denseErrorf(method, row, col, err)
	}

	// Compute the flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error.
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return the stored value.
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf; finite check under policy.
// Stage 2 (Execute): write into the data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error.
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Enforce the captured numeric policy before mutating.
	if m.validate {
		if err = checkFinite(v); err != nil {
			return denseErrorf("Set", row, col, err)
		}
	}
	// Assign value.
	m.data[idx] = v

	return nil
}

// NNZ counts the exactly-non-zero cells.
// Dense has no stored-entry bookkeeping, so the count is a full scan; the
// other formats answer this in O(1) from their structure.
// Complexity: O(r*c).
func (m *Dense) NNZ() int {
	var count, k int // accumulator and flat cursor
	for k = 0; k < len(m.data); k++ {
		if m.data[k] != 0 {
			count++
		}
	}

	return count
}

// MatVec computes y = A·x over the flat row-major layout.
// Stage 1 (Validate): len(x) must equal the column count.
// Stage 2 (Execute): one dot product per row, skipping zero x entries.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func (m *Dense) MatVec(x []float64) ([]float64, error) {
	// Validate the vector length before allocating the result.
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, fmt.Errorf("Dense.MatVec: %w", err)
	}
	// Allocate the result only after validation (atomic failure contract).
	y := make([]float64, m.r)

	var (
		i, j, base int     // row, column, and flat row base offset
		acc, xv    float64 // per-row accumulator and current x value
	)
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		acc = 0                   // reset accumulator per row
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			xv = x[j]    // read x(j) once per iteration
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv // accumulate a(i,j)*x(j)
			}
		}
		y[i] = acc // store y(i)
	}

	return y, nil
}

// MatTransVec computes y = Aᵀ·x without materializing the transpose.
// Stage 1 (Validate): len(x) must equal the row count.
// Stage 2 (Execute): scatter each row's contribution, skipping zero x rows.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(c) for y.
func (m *Dense) MatTransVec(x []float64) ([]float64, error) {
	// Validate the vector length before allocating the result.
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, fmt.Errorf("Dense.MatTransVec: %w", err)
	}
	// Allocate the result only after validation.
	y := make([]float64, m.c)

	var (
		i, j, base int     // row, column, and flat row base offset
		xv         float64 // current x value
	)
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		xv = x[i]     // the weight row i contributes to every column
		if xv == 0 {  // a zero weight contributes nothing
			continue // skip the whole row
		}
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			y[j] += m.data[base+j] * xv // accumulate a(i,j)*x(i) into y(j)
		}
	}

	return y, nil
}

// RowSlice returns a copy of row i.
// The copy keeps the backing storage private (stores never share arrays).
// Complexity: O(c).
func (m *Dense) RowSlice(i int) ([]float64, error) {
	// Bounds check the row index (column 0 stands in for the row-only check).
	if i < 0 || i >= m.r {
		return nil, denseErrorf("RowSlice", i, 0, ErrOutOfBounds)
	}
	// Copy the row out of the flat layout.
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	// Allocate a new slice for the data copy.
	copyData := make([]float64, len(m.data))
	// Copy all elements into the new slice.
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData, validate: m.validate}
}

// String implements fmt.Stringer for easy debugging.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return the concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")       // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute the flat index directly for performance
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}

// Format reports the storage representation tag.
// Complexity: O(1).
func (m *Dense) Format() Format { return FormatDense }

// isSparseStore seals Dense into the closed format set.
func (m *Dense) isSparseStore() {}

// ---------- Conversions (delegate to the kernels in conversions.go) ----------

// ToDense returns an independent dense copy of the receiver.
// Complexity: O(r*c).
func (m *Dense) ToDense() *Dense {
	return m.Clone().(*Dense) // Clone already produces an unaliased Dense
}

// ToCOO exports the exactly-non-zero cells as coordinate triples, scanned in
// row-major order (the exact-zero filter is deliberate; see package notes).
// Complexity: O(r*c).
func (m *Dense) ToCOO() *COO {
	rowIdx, colIdx, vals := m.nonZeroTriples()

	return &COO{r: m.r, c: m.c, rowIdx: rowIdx, colIdx: colIdx, vals: vals}
}

// ToDOK exports the exactly-non-zero cells as a dictionary-of-keys store.
// Complexity: O(r*c).
func (m *Dense) ToDOK() *DOK {
	out := &DOK{r: m.r, c: m.c, data: make(map[uint64]float64, m.NNZ())}
	var i, j, base int // row, column, flat base
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if m.data[base+j] != 0 { // exact-zero cells are not stored keys
				out.data[packKey(i, j, m.c)] = m.data[base+j]
			}
		}
	}

	return out
}

// ToCSC compresses the exactly-non-zero cells by column.
// Complexity: O(r*c + nnz).
func (m *Dense) ToCSC(opts ...Option) *CSC {
	rowIdx, colIdx, vals := m.nonZeroTriples()

	return compressCSC(m.r, m.c, rowIdx, colIdx, vals, gatherOptions(opts...))
}

// ToCSR compresses the exactly-non-zero cells by row.
// Complexity: O(r*c + nnz).
func (m *Dense) ToCSR(opts ...Option) *CSR {
	rowIdx, colIdx, vals := m.nonZeroTriples()

	return compressCSR(m.r, m.c, rowIdx, colIdx, vals, gatherOptions(opts...))
}

// nonZeroTriples collects the exactly-non-zero cells in row-major order.
// The filter compares against zero with no epsilon; tiny values produced by
// computation survive as stored entries.
// Complexity: O(r*c).
func (m *Dense) nonZeroTriples() (rowIdx, colIdx []int, vals []float64) {
	nnz := m.NNZ() // size the exports exactly
	rowIdx = make([]int, 0, nnz)
	colIdx = make([]int, 0, nnz)
	vals = make([]float64, 0, nnz)

	var i, j, base int // row, column, flat base
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if m.data[base+j] != 0 { // exact-zero test, no epsilon
				rowIdx = append(rowIdx, i)
				colIdx = append(colIdx, j)
				vals = append(vals, m.data[base+j])
			}
		}
	}

	return rowIdx, colIdx, vals
}
