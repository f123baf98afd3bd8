// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for matrix construction and
// numeric policy. This file defines:
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
//   - The numeric policy is captured at construction time and travels with the
//     instance; changing options later never affects existing matrices.
//   - Conversions (FromCSC, ToCSC round-trips) forward ...Option so the
//     resulting mutable matrix carries an explicit, caller-chosen policy.
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Add.
	// When enabled, NaN and ±Inf are rejected with ErrNaNInf before any
	// structural mutation occurs.
	DefaultValidateNaNInf = true

	// DefaultCapacityHint is the extra slot headroom preallocated beyond the
	// mandatory cols head slots. Zero means "let append grow the slices".
	DefaultCapacityHint = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const panicCapacityHintInvalid = "sparse: WithCapacityHint: hint must be >= 0"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and internally resolve them via
// gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	capacityHint   int  // DefaultCapacityHint; extra append headroom in slots
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation on ingestion.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - Set/Add reject NaN and ±Inf with ErrNaNInf, leaving the matrix untouched.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This is the default; use WithNoValidateNaNInf to relax.
//   - The policy propagates only on creation; existing matrices keep theirs.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - Allows ±Inf/NaN to be stored; downstream kernels make no attempt to
//     sanitize them.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Only disable when ingesting external data with known ±Inf placeholders
//     that a later pass replaces; keep enabled in data-clean pipelines.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithCapacityHint preallocates headroom for hint appended slots beyond the
// mandatory per-column head slots.
// Implementation:
//   - Stage 1: validate hint >= 0 (panic otherwise).
//   - Stage 2: return a setter that writes hint into Options.
//
// Behavior highlights:
//   - Purely a performance knob; never changes observable semantics.
//
// Inputs:
//   - hint: expected number of entries that will land beyond column heads.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when hint is negative.
//
// Complexity:
//   - Time O(1) to set; the constructor pays the allocation.
//
// AI-Hints:
//   - A good hint is (expected nnz − cols); overshooting wastes memory,
//     undershooting merely falls back to amortized slice growth.
func WithCapacityHint(hint int) Option {
	if hint < 0 {
		panic(panicCapacityHintInvalid)
	}

	return func(o *Options) { o.capacityHint = hint }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry used by every constructor.
// Implementation:
//   - Stage 1: start from documented defaults (single source of truth).
//   - Stage 2: apply setters in order; last-writer-wins semantics.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		capacityHint:   DefaultCapacityHint,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
