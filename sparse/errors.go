// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; when context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site — callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver/argument -> shape -> index bounds -> numeric policy (NaN/Inf)
// -> dimension mismatch between operands.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate shape before allocation.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set/Add) MUST return this, not panic, and
	// must perform no mutation when returning it.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Sum over different shapes, or MatVec where len(x) != Cols.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set/Add ingestion).
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)
