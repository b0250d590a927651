// Package sparse provides sparse matrix storage formats and conversions.
//
// The sparse package provides:
//
//   - COO (coordinate triples) for cheap ingestion and streaming builds;
//     duplicate entries are legal and sum on read.
//   - DOK (dictionary of keys) for incremental point mutation with O(1)
//     reads and writes; never stores an explicit zero.
//   - CSC / CSR (compressed sparse column / row) for multiply-heavy phases:
//     frozen layout, O(nnz) kernels, optional sorted-index binary search.
//   - Dense as the row-major reference implementation and conversion target.
//   - Pattern for structure-only consumers: a compressed bitmap of occupied
//     cells supporting union, intersection, and ordered traversal.
//
// All five stores satisfy the Matrix interface: shape and NNZ queries, At,
// MatVec/MatTransVec, deep Clone, and conversion to every other format.
// Mutation stays off the interface — only DOK (Set, Add) and Dense (Set)
// mutate in place; build there, then compress once and multiply many times.
//
// Errors are sentinel-based (ErrBadShape, ErrOutOfBounds, ...): test with
// errors.Is, read context from the wrapped message. Validation is atomic —
// no output is allocated or mutated until inputs pass.
//
// See the examples in this package for the build → compress → multiply flow.
package sparse
