// SPDX-License-Identifier: MIT

// Package sparse: sparsity-pattern export.
// Pattern is the structure-only view of a matrix: a compressed bitmap of
// packed cell keys (the same row*n+col encoding DOK uses) plus the bounding
// shape. Structure consumers — plotting, reordering heuristics, fill-in
// analysis — get a compact, queryable occupancy set without touching values
// or matrix internals. Set algebra (union, intersection) comes from the
// bitmap for free.
package sparse

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// patternErrorf wraps an underlying error with Pattern method context.
func patternErrorf(method string, err error) error {
	return fmt.Errorf("Pattern.%s: %w", method, err)
}

// Pattern is the set of occupied cells of an m×n matrix, keyed by packed
// cell key in a compressed 64-bit bitmap.
type Pattern struct {
	r, c int               // bounding shape
	bits *roaring64.Bitmap // packed keys of occupied cells
}

// NewPattern extracts the occupancy structure of any store.
//
// Implementation:
//   - Stage 1: nil guard.
//   - Stage 2: walk the stored entries per concrete format and add their
//     packed keys. Dense contributes its exactly-non-zero cells; every other
//     format contributes what it stores.
//
// Behavior highlights:
//   - The bitmap holds distinct cells: a COO carrying duplicate triples for
//     one cell yields Cardinality < NNZ.
//   - Occupancy is structural, not numeric — duplicate triples that cancel
//     to zero still mark their cell, and an explicit zero stored in a
//     hand-built compressed store marks its cell too. Route through ToDOK
//     first to get the numeric support instead.
//
// Inputs:
//   - m: any of the five stores.
//
// Returns:
//   - *Pattern: freshly built, owning its bitmap.
//
// Errors:
//   - ErrNilMatrix.
//
// Determinism:
//   - The bitmap is a set; insertion order is irrelevant.
//
// Complexity:
//   - Time O(nnz) for sparse stores, O(m·n) for Dense.
func NewPattern(m Matrix) (*Pattern, error) {
	// Guard the interface value before consulting the shape.
	if err := ValidateNotNil(m); err != nil {
		return nil, patternErrorf("New", err)
	}

	cols := m.Cols()
	bits := roaring64.New()

	// Each format walks its own layout; keys share the DOK encoding.
	switch s := m.(type) {
	case *DOK:
		for key := range s.data {
			bits.Add(key) // already packed with the same stride
		}
	case *COO:
		var k int // entry cursor
		for k = 0; k < len(s.vals); k++ {
			bits.Add(packKey(s.rowIdx[k], s.colIdx[k], cols))
		}
	case *CSC:
		var j, k int // column cursor, entry cursor
		for j = 0; j < s.c; j++ {
			for k = s.ptr[j]; k < s.ptr[j+1]; k++ {
				bits.Add(packKey(s.rowIdx[k], j, cols))
			}
		}
	case *CSR:
		var i, k int // row cursor, entry cursor
		for i = 0; i < s.r; i++ {
			for k = s.ptr[i]; k < s.ptr[i+1]; k++ {
				bits.Add(packKey(i, s.colIdx[k], cols))
			}
		}
	case *Dense:
		var i, j int // cell cursors
		for i = 0; i < s.r; i++ {
			for j = 0; j < s.c; j++ {
				if s.data[i*s.c+j] != 0 {
					bits.Add(packKey(i, j, cols))
				}
			}
		}
	default:
		// Wrapper types that embed a Matrix still expose the conversion
		// surface; reduce through coordinates.
		for _, t := range m.ToCOO().Triples() {
			bits.Add(packKey(t.Row, t.Col, cols))
		}
	}

	return &Pattern{r: m.Rows(), c: cols, bits: bits}, nil
}

// Rows returns the bounding row count.
// Complexity: O(1).
func (p *Pattern) Rows() int {
	return p.r
}

// Cols returns the bounding column count.
// Complexity: O(1).
func (p *Pattern) Cols() int {
	return p.c
}

// Cardinality returns the number of distinct occupied cells.
// Complexity: O(1) on the bitmap's internal counters.
func (p *Pattern) Cardinality() uint64 {
	return p.bits.GetCardinality()
}

// Density returns the occupied fraction of the shape, 0 for an empty shape.
// Complexity: O(1).
func (p *Pattern) Density() float64 {
	cells := p.r * p.c
	if cells == 0 {
		return 0 // empty shape has nothing to occupy
	}

	return float64(p.bits.GetCardinality()) / float64(cells)
}

// Contains reports whether the cell (row, col) is occupied.
// Errors: ErrOutOfBounds when an index is negative or outside the shape.
// Complexity: O(1) amortized bitmap lookup.
func (p *Pattern) Contains(row, col int) (bool, error) {
	if err := checkIndex(row, col, p.r, p.c); err != nil {
		return false, patternErrorf("Contains", err)
	}

	return p.bits.Contains(packKey(row, col, p.c)), nil
}

// Union returns a new Pattern occupying every cell occupied by either
// operand. Both operands are untouched.
// Errors: ErrNilMatrix for a nil operand, ErrDimensionMismatch when the
// bounding shapes differ (cell keys only align on equal strides).
// Complexity: bitmap OR, at most O(cardA + cardB).
func (p *Pattern) Union(other *Pattern) (*Pattern, error) {
	if err := p.checkOperand(other); err != nil {
		return nil, patternErrorf("Union", err)
	}

	bits := p.bits.Clone()
	bits.Or(other.bits)

	return &Pattern{r: p.r, c: p.c, bits: bits}, nil
}

// Intersect returns a new Pattern occupying the cells occupied by both
// operands. Both operands are untouched.
// Errors: as Union.
// Complexity: bitmap AND, at most O(min(cardA, cardB)).
func (p *Pattern) Intersect(other *Pattern) (*Pattern, error) {
	if err := p.checkOperand(other); err != nil {
		return nil, patternErrorf("Intersect", err)
	}

	bits := p.bits.Clone()
	bits.And(other.bits)

	return &Pattern{r: p.r, c: p.c, bits: bits}, nil
}

// Equal reports whether both patterns bound the same shape and occupy
// exactly the same cells. A nil operand is never equal.
// Complexity: two cardinality reads plus one bitmap AND.
func (p *Pattern) Equal(other *Pattern) bool {
	if other == nil {
		return false
	}
	if p.r != other.r || p.c != other.c {
		return false
	}
	card := p.bits.GetCardinality()
	if card != other.bits.GetCardinality() {
		return false
	}

	// Equal cardinalities and an equal-sized intersection pin set equality.
	inter := p.bits.Clone()
	inter.And(other.bits)

	return inter.GetCardinality() == card
}

// ForEach visits occupied cells in ascending row-major order (the bitmap
// iterator yields packed keys ascending, and the key encoding is row-major).
// Return false from fn to stop early.
// Complexity: O(cardinality) bounded by the visit count.
func (p *Pattern) ForEach(fn func(row, col int) bool) {
	if p.c == 0 {
		return // no column stride, no keys
	}
	it := p.bits.Iterator()
	var row, col int // decoded coordinates
	for it.HasNext() {
		row, col = unpackKey(it.Next(), p.c)
		if !fn(row, col) {
			return
		}
	}
}

// checkOperand guards the binary set operations: the operand must exist and
// share the bounding shape.
func (p *Pattern) checkOperand(other *Pattern) error {
	if other == nil {
		return ErrNilMatrix
	}
	if p.r != other.r || p.c != other.c {
		return fmt.Errorf("left is %d×%d, right is %d×%d: %w",
			p.r, p.c, other.r, other.c, ErrDimensionMismatch)
	}

	return nil
}
