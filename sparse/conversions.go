// SPDX-License-Identifier: MIT

// Package sparse: shared conversion kernels.
// Every cross-format route funnels through this file: the format methods
// (ToDense/ToCOO/ToDOK/ToCSC/ToCSR) reduce their receiver to parallel triple
// slices and delegate here, so ordering, duplicate handling, and the option
// semantics are decided in exactly one place. The compression kernel is
// axis-neutral — CSC and CSR are the same algorithm with major/minor swapped.
package sparse

// ---------- Compression (triples → CSC/CSR) ----------

// compressCSC builds a CSC store from parallel triple slices.
// Inputs are treated as read-only; the result owns fresh slices. Ordering
// and coalescing follow o (already finalized by gatherOptions).
// Complexity: O(nnz + m + n) with the ordering pass, O(nnz + n) without.
func compressCSC(r, c int, rowIdx, colIdx []int, vals []float64, o Options) *CSC {
	// Column is the major axis, row the minor.
	ptr, ri, vs, sorted := compressAxes(c, r, colIdx, rowIdx, vals, o)

	return &CSC{r: r, c: c, ptr: ptr, rowIdx: ri, vals: vs, sorted: sorted}
}

// compressCSR builds a CSR store from parallel triple slices (the CSC
// mirror: row major, column minor).
// Complexity: O(nnz + m + n) with the ordering pass, O(nnz + m) without.
func compressCSR(r, c int, rowIdx, colIdx []int, vals []float64, o Options) *CSR {
	ptr, ci, vs, sorted := compressAxes(r, c, rowIdx, colIdx, vals, o)

	return &CSR{r: r, c: c, ptr: ptr, colIdx: ci, vals: vs, sorted: sorted}
}

// compressAxes is the axis-neutral compression kernel behind compressCSC and
// compressCSR.
//
// Implementation:
//   - Stage 1 (Count): one pass over major builds the pointer slice as an
//     exclusive prefix sum of per-segment counts.
//   - Stage 2 (Order): with o.sortIndices, two stable counting passes — minor
//     first, then major — produce a permutation that groups entries by major
//     segment with minor indices ascending inside each segment (duplicates
//     end up adjacent, source order preserved among equals). Without it, a
//     single scatter pass keeps source order inside each segment.
//   - Stage 3 (Coalesce): with o.coalesce, adjacent equal minor indices merge
//     by summation in place and the pointers are rebuilt. A merged entry
//     whose sum is exactly zero stays a stored entry; only conversions into
//     DOK and Dense-side filters drop zeros.
//
// Behavior highlights:
//   - The sorted result is a pure function of the input multiset, so even
//     map-ordered sources (DOK) compress to one canonical layout.
//   - The unsorted path is the exact O(nnz + majorDim) scatter; sortedness
//     of the result is probed, not assumed.
//
// Inputs:
//   - majorDim, minorDim: segment count and minor index bound.
//   - major, minor, vals: parallel triple slices (indices pre-validated).
//   - o: finalized options (coalesce implies sortIndices).
//
// Returns:
//   - ptr: majorDim+1 offsets; minorIdx, outVals: grouped entry slices;
//   - sorted: whether minor indices are nondecreasing per segment.
//
// Determinism:
//   - Stable passes make the ordered layout unique for a given multiset;
//     the unsorted layout is unique for a given input sequence.
//
// Complexity:
//   - Time O(nnz + majorDim + minorDim) ordered, O(nnz + majorDim) not;
//     Space O(nnz + majorDim).
func compressAxes(majorDim, minorDim int, major, minor []int, vals []float64, o Options) (ptr, minorIdx []int, outVals []float64, sorted bool) {
	nnz := len(vals)

	// Stage 1: pointer slice from per-segment counts.
	ptr = make([]int, majorDim+1)
	var k int // entry cursor
	for k = 0; k < nnz; k++ {
		ptr[major[k]+1]++
	}
	var s int // segment cursor
	for s = 0; s < majorDim; s++ {
		ptr[s+1] += ptr[s]
	}

	minorIdx = make([]int, nnz)
	outVals = make([]float64, nnz)

	if o.sortIndices {
		// Stage 2a: minor pass then major pass; stability of the second pass
		// preserves the minor ordering established by the first.
		order := make([]int, nnz)
		for k = 0; k < nnz; k++ {
			order[k] = k
		}
		order = stableCountingPass(minor, minorDim, order)
		order = stableCountingPass(major, majorDim, order)
		for k = 0; k < nnz; k++ {
			minorIdx[k] = minor[order[k]]
			outVals[k] = vals[order[k]]
		}
		sorted = true
	} else {
		// Stage 2b: single scatter by major; source order survives within
		// each segment.
		next := append([]int(nil), ptr...) // per-segment write cursors
		var pos int                        // scatter destination
		for k = 0; k < nnz; k++ {
			pos = next[major[k]]
			next[major[k]]++
			minorIdx[pos] = minor[k]
			outVals[pos] = vals[k]
		}
		sorted = segmentsSorted(ptr, minorIdx)
	}

	// Stage 3: merge adjacent duplicates (only reachable on the sorted path).
	if o.coalesce {
		var (
			w      int     // write cursor into the merged layout
			cur    int     // minor index of the open run
			sum    float64 // value accumulator of the open run
			lo, hi int     // original segment bounds
		)
		newPtr := make([]int, majorDim+1)
		for s = 0; s < majorDim; s++ {
			lo, hi = ptr[s], ptr[s+1]
			for k = lo; k < hi; {
				cur = minorIdx[k]
				sum = outVals[k]
				for k++; k < hi && minorIdx[k] == cur; k++ {
					sum += outVals[k]
				}
				minorIdx[w] = cur
				outVals[w] = sum
				w++
			}
			newPtr[s+1] = w
		}
		ptr = newPtr
		minorIdx = minorIdx[:w]
		outVals = outVals[:w]
	}

	return ptr, minorIdx, outVals, sorted
}

// stableCountingPass stably reorders the permutation in by keys[·]: entries
// with smaller keys come first, ties keep their relative order from in.
// Precondition: 0 <= keys[i] < bound for every index reachable through in.
// Complexity: Time O(len(in) + bound), Space O(len(in) + bound).
func stableCountingPass(keys []int, bound int, in []int) []int {
	// Histogram of key occurrences among the selected entries.
	count := make([]int, bound)
	var idx int // permutation element
	for _, idx = range in {
		count[keys[idx]]++
	}
	// Exclusive prefix sum: count[b] becomes the first output slot for key b.
	var b, sum int
	for b = 0; b < bound; b++ {
		count[b], sum = sum, sum+count[b]
	}
	// Stable scatter.
	out := make([]int, len(in))
	for _, idx = range in {
		out[count[keys[idx]]] = idx
		count[keys[idx]]++
	}

	return out
}

// segmentsSorted reports whether minor indices are nondecreasing inside every
// segment delimited by ptr.
// Complexity: O(nnz + segments).
func segmentsSorted(ptr []int, minor []int) bool {
	var s, k int // segment cursor, entry cursor
	for s = 0; s+1 < len(ptr); s++ {
		for k = ptr[s] + 1; k < ptr[s+1]; k++ {
			if minor[k-1] > minor[k] {
				return false
			}
		}
	}

	return true
}

// ---------- Coalescing (triples → triples) ----------

// coalesceTriples merges duplicate (row, col) keys by summation and returns
// fresh parallel slices sorted row-major (rows ascending, columns ascending
// within a row). Exact-zero sums are kept as stored entries. The inputs are
// treated as read-only.
// Complexity: O(nnz + m + n).
func coalesceTriples(r, c int, rowIdx, colIdx []int, vals []float64, o Options) ([]int, []int, []float64) {
	// Reuse the row-major compression kernel, then expand the pointers back
	// into explicit row indices.
	o.coalesce = true
	o.sortIndices = true
	ptr, ci, vs, _ := compressAxes(r, c, rowIdx, colIdx, vals, o)

	ri := make([]int, len(vs))
	var i, k int // row cursor, entry cursor
	for i = 0; i < r; i++ {
		for k = ptr[i]; k < ptr[i+1]; k++ {
			ri[k] = i
		}
	}

	return ri, ci, vs
}

// ---------- Materialization (triples → Dense/DOK) ----------

// triplesToDense accumulates parallel triple slices into a zeroed m×n dense
// store; duplicate keys sum into the shared cell.
// Complexity: O(m*n + nnz).
func triplesToDense(r, c int, rowIdx, colIdx []int, vals []float64) *Dense {
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var k int // entry cursor
	for k = 0; k < len(vals); k++ {
		out.data[rowIdx[k]*c+colIdx[k]] += vals[k] // += sums duplicates
	}

	return out
}

// triplesToDOK accumulates parallel triple slices into a dictionary-of-keys
// store. Duplicate keys sum; keys whose running sum lands on exact zero are
// deleted so the result honors the DOK no-explicit-zeros invariant.
// Complexity: O(nnz).
func triplesToDOK(r, c int, rowIdx, colIdx []int, vals []float64) *DOK {
	out := &DOK{r: r, c: c, data: make(map[uint64]float64, len(vals))}
	var (
		key uint64  // packed cell key
		sum float64 // accumulated cell value
		k   int     // entry cursor
	)
	for k = 0; k < len(vals); k++ {
		key = packKey(rowIdx[k], colIdx[k], c)
		sum = out.data[key] + vals[k]
		if sum == 0 {
			delete(out.data, key) // no-op when the key was absent
		} else {
			out.data[key] = sum
		}
	}

	return out
}
