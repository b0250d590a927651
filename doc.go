// Package lvlmat is your in-memory toolbox for storing, converting, and
// multiplying sparse matrices — matrices dominated by zeros, kept in the
// format that fits the job.
//
// 🚀 What is lvlmat?
//
//	A small, deterministic library that brings together:
//		• COO — coordinate triples, the natural landing zone for ingested data
//		• DOK — dictionary-of-keys, O(1) amortized point reads and writes
//		• CSC / CSR — compressed column/row form for fast, cache-friendly matvec
//		• Dense — the row-major reference every conversion is checked against
//		• Converters: every format to every format, counting-sort construction
//		• Multiply: y = A·x and y = Aᵀ·x on all formats in O(nnz)
//		• Pattern: compressed occupancy sets (roaring bitmaps) for structure
//
// ✨ Why choose lvlmat?
//
//   - Beginner-friendly – one interface, five formats, clear naming
//   - Rock-solid guarantees – sentinel errors, no panics, atomic failures
//   - Deterministic – fixed loop orders, stable layouts, no global state
//   - Honest trade-offs – each format documents what it is slow at
//
// Under the hood, everything lives in a single subpackage:
//
//	sparse/ — stores (COO, DOK, CSC, CSR, Dense), conversions, matvec,
//	          sparsity patterns, validators and functional options
//
// Quick ASCII example:
//
//	    ⎡1 0 0⎤
//	    ⎢0 2 0⎥      stored as COO: rows=[0,1,2], cols=[0,1,2], vals=[1,2,3]
//	    ⎣0 0 3⎦      compressed as CSC: ptr=[0,1,2,3], row=[0,1,2], val=[1,2,3]
//
// Dive into sparse/doc.go for the format guide, complexity tables, and the
// conversion matrix.
//
//	go get github.com/katalvlaran/lvlmat/sparse
package lvlmat
