// SPDX-License-Identifier: MIT

// Package sparse: domain-facing types shared across formats.
// This file intentionally contains ONLY the narrow consumption surface
// (Reader) and the shared sentinel constants. Errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.
package sparse

// Sentinels for the index-linked storage. Indices are 0-based throughout the
// package, so 0 is a legal row/slot value and cannot double as "absent";
// -1 plays that role instead.
const (
	// noSlot terminates a column chain in LNK.next and marks "no entry found"
	// in CSC lookups.
	noSlot = -1

	// noRow marks an LNK head slot whose column has zero stored entries.
	noRow = -1
)

// Reader is the minimal read-only surface every sparse format implements.
// Conversions, entrywise arithmetic and norms consume matrices exclusively
// through this interface, keeping the formats decoupled from one another.
//
// Contract:
//   - At returns the additive identity (0) for absent entries; a stored zero
//     is indistinguishable from absence.
//   - NonZeros enumerates stored entries with columns ascending; the order of
//     rows within a column is implementation-defined (CSC: rows ascending,
//     LNK: chain/insertion order). Returning a non-nil error from fn stops
//     the enumeration and propagates that error unchanged.
//
// Complexity notes: Rows/Cols/NNZ are O(1); At is O(column population) for
// LNK and O(log column population) for CSC; NonZeros is O(nnz).
type Reader interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// NNZ returns the number of stored entries.
	NNZ() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// NonZeros calls fn for every stored (i, j, v) triple, columns ascending.
	NonZeros(fn func(i, j int, v float64) error) error
}
