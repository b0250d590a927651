// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for construction and conversion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Ordering vs the exact counting-sort bound:
//   - sortIndices=true (default) compresses with a stable two-pass counting
//     sort, O(nnz + m + n): minor slices come out ascending, duplicate keys
//     adjacent, layouts deterministic from any source (including DOK map
//     enumeration).
//   - sortIndices=false selects the single-pass scatter, exactly O(nnz + n):
//     minor slices keep source enumeration order (COO input order; DOK order
//     unspecified).
//   - Coalescing:
//   - coalesce=true merges duplicate (row, col) keys by summation during
//     compression; a summed entry is KEPT even when the sum is exactly zero
//     (stored-entry semantics — dropping zeros is the dense→sparse filter's
//     job, not the coalescer's).
//   - Coalescing requires grouped duplicates, so it implies sortIndices=true
//     (enforced in finalizeOptions).
//   - Numeric policy is orthogonal and explicit:
//   - validateNaNInf controls whether constructors and point writes reject
//     NaN/±Inf. It is OFF by default so the construction error surface stays
//     exactly shape/length/pointer/bounds unless a caller opts in.
//   - DOK and Dense capture the policy at construction; it then governs
//     their Set/Add for the life of the store.
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCoalesce leaves duplicate (row, col) entries as-is during
	// compression; they stay adjacent under the default ordering pass and
	// still sum correctly in every multiply.
	DefaultCoalesce = false

	// DefaultSortIndices orders minor-index slices during compression.
	// Sorted slices unlock binary-search point lookup and deterministic
	// layouts at the cost of one extra counting pass.
	DefaultSortIndices = true

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion and point writes. Off by default: the sparse formats accept
	// whatever finite-or-not values the caller stores, matching the
	// stored-entry semantics of the formats.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityNegative = "sparse: WithCapacityHint: hint must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	// compression policy
	coalesce    bool // DefaultCoalesce
	sortIndices bool // DefaultSortIndices

	// numeric policy
	validateNaNInf bool // DefaultValidateNaNInf

	// allocation policy
	capacityHint int // 0 ⇒ no hint; >0 pre-sizes DOK maps and coalesce buffers
}

// ---------- Constructors (WithX) ----------

// WithCoalesce merges duplicate (row, col) keys by summation during
// compression to CSC/CSR.
// Implementation:
//   - Stage 1: set coalesce=true (sortIndices implied in finalizeOptions).
//
// Behavior highlights:
//   - Summed entries are kept even when the sum is exactly zero; nnz counts
//     stored entries, not mathematical non-zeros.
//   - DOK sources have unique keys, so coalescing is a structural no-op.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1) to set; the merge pass later is O(nnz).
//
// Notes:
//   - Implies the ordering pass: duplicates must be adjacent to merge.
//
// AI-Hints:
//   - Coalesce once after bulk COO ingestion, then reuse the compressed
//     store for repeated multiplies.
func WithCoalesce() Option {
	return func(o *Options) { o.coalesce = true }
}

// WithNoCoalesce preserves duplicate entries through compression (default).
// Implementation:
//   - Stage 1: set coalesce=false.
//
// Behavior highlights:
//   - Duplicates remain as distinct adjacent entries; multiplies still sum
//     them, so the logical matrix is unchanged.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithNoCoalesce() Option {
	return func(o *Options) { o.coalesce = false }
}

// WithSortIndices orders minor-index slices during compression (default).
// Implementation:
//   - Stage 1: set sortIndices=true.
//
// Behavior highlights:
//   - Compression runs a stable two-pass counting sort, O(nnz + m + n).
//   - Output layout is deterministic for any source, duplicates adjacent,
//     and point lookup on the result is O(log k) per column/row slice.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1) to set.
//
// AI-Hints:
//   - Keep this on when the compressed store will serve point lookups;
//     the extra pass is linear and paid once.
func WithSortIndices() Option {
	return func(o *Options) { o.sortIndices = true }
}

// WithNoSortIndices preserves source entry order within each slice.
// Implementation:
//   - Stage 1: set sortIndices=false.
//
// Behavior highlights:
//   - Compression is the canonical single-pass scatter, exactly O(nnz + n):
//     count per major index, prefix-sum into ptr, scatter pairs.
//   - From a DOK source the within-slice order is unspecified (map
//     enumeration); from COO it is the input triple order.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - None here; requesting coalescing alongside re-enables the ordering
//     pass (finalizeOptions), since merging needs grouped duplicates.
//
// Complexity:
//   - Time O(1) to set.
//
// Notes:
//   - Point lookup on an unsorted store degrades to a linear slice scan;
//     sortedness is a quality property, never a correctness invariant.
func WithNoSortIndices() Option {
	return func(o *Options) { o.sortIndices = false }
}

// WithValidateNaNInf enables strict finite-value validation.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - Constructors reject NaN/±Inf values with ErrNaNInf before any
//     allocation is retained; DOK.Set/Add and Dense.Set reject before any
//     mutation.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1) to set; validation later is O(nnz) at construction.
//
// Notes:
//   - DOK and Dense capture this policy at construction; compressed and COO
//     stores are immutable, so the check runs once at their boundary.
//
// AI-Hints:
//   - Enable in data-clean pipelines; leave off when ingesting external
//     data with known ±Inf placeholders you sanitize later.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation (default).
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - NaN/±Inf pass through; multiplies propagate them per IEEE-754.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithCapacityHint pre-sizes internal storage for an expected entry count.
// Implementation:
//   - Stage 1: validate hint ≥ 0 (panic on programmer error).
//   - Stage 2: return a setter that records the hint.
//
// Behavior highlights:
//   - NewDOK pre-sizes its map; coalescing pre-sizes its merge buffers.
//   - Purely an allocation hint: results are identical with or without it.
//
// Inputs:
//   - hint: expected number of stored entries (≥ 0; 0 means "no hint").
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when hint is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Pass the declared nnz from a matrix-market header to avoid rehashing
//     during bulk DOK ingestion.
func WithCapacityHint(hint int) Option {
	if hint < 0 {
		panic(panicCapacityNegative)
	}

	// Record the validated hint.
	return func(o *Options) { o.capacityHint = hint }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from the Default* constants (single source of truth).
//   - Stage 2: apply opts in order; last-writer-wins semantics.
//   - Stage 3: finalize derived invariants and return the Options value.
//
// Behavior highlights:
//   - Pure function; no side effects beyond producing a value.
//
// Inputs:
//   - opts: zero or more functional setters.
//
// Returns:
//   - Options: internal struct with the effective configuration.
//
// Determinism:
//   - Stable for a given sequence of opts.
//
// Complexity:
//   - Time O(k) for k=len(opts), Space O(1).
//
// Notes:
//   - Public entry points call gatherOptions directly; NewOptions exists for
//     callers that want to inspect or reuse a resolved configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants. This is the canonical internal entry point.
// Implementation:
//   - Stage 1: start from the Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: finalizeOptions enforces cross-flag invariants.
//
// Inputs:
//   - user: sequence of Option setters.
//
// Returns:
//   - Options: fully resolved configuration.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		// compression policy
		coalesce:    DefaultCoalesce,
		sortIndices: DefaultSortIndices,

		// numeric policy
		validateNaNInf: DefaultValidateNaNInf,

		// allocation policy
		capacityHint: 0,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
// Implementation:
//   - Stage 1: coalescing needs grouped duplicates ⇒ force the ordering pass.
//
// Inputs:
//   - o: pointer to Options to normalize.
//
// Returns:
//   - None (mutates *o).
//
// Determinism:
//   - Deterministic for a fixed o state.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This function MUST be called after applying all Option setters.
//     If a new option implies others, encode that implication here.
func finalizeOptions(o *Options) {
	// Merging duplicate keys requires them adjacent in the output.
	if o.coalesce {
		o.sortIndices = true
	}
}
