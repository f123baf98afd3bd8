// SPDX-License-Identifier: MIT

// Package sparse: LNK — the mutable linked-list sparse matrix.
//
// LNK stores one singly linked list per column, threaded through three
// parallel slices (next, rowIdx, val) that always grow in lockstep. Slot j
// (0 <= j < cols) is the permanent head of column j's chain; every later
// entry of any column is appended at the shared tail of the slices and linked
// in by index. The chain-of-indices technique — "next" as an integer offset
// into shared storage rather than a pointer — is the whole design: inserts in
// any order cost O(column population) with amortized O(1) growth, at the
// price of linear per-column scans that a compressed format avoids.
//
// Invariants (maintained by every mutation):
//   - len(next) == len(rowIdx) == len(val) >= cols.
//   - Each slot beyond the head region belongs to exactly one column chain;
//     chains are simple forward paths terminated by noSlot (no sharing, no
//     cycles).
//   - rowIdx[j] == noRow for a head slot means column j has zero entries.
//   - nnz equals the number of (row, value) pairs reachable over all chains,
//     with a populated head counting as one.
//   - At most one stored entry per (i, j); writes to an existing coordinate
//     update in place.
//
// Entries are append-only: values can be overwritten or accumulated, never
// removed. The structure is NOT safe for concurrent mutation — a write may
// reallocate the backing slices; serialize access externally.
package sparse

import (
	"fmt"
	"math"
)

// lnkErrorf wraps an underlying error with LNK method context.
func lnkErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("LNK.%s(%d,%d): %w", method, i, j, err)
}

// LNK is a rows×cols sparse matrix of float64 values under incremental
// construction. The zero value is not usable; always construct via NewLNK.
type LNK struct {
	r, c int // fixed dimensions, both > 0
	nnz  int // number of stored entries

	// Three parallel slices of identical length (the shared slot space).
	// Slot j < c is the head of column j's chain.
	next   []int     // next slot in the same column's chain, or noSlot
	rowIdx []int     // row stored at the slot, or noRow for an empty head
	val    []float64 // value stored at the slot

	validate bool // numeric policy captured at construction (reject NaN/Inf)
}

// NewLNK creates a rows×cols LNK matrix with zero stored entries.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): resolve options; allocate the three parallel slices at
// length cols (one head slot per column) with optional append headroom.
// Stage 3 (Finalize): mark every head unpopulated and return the instance.
// Complexity: O(cols + hint) time and memory.
func NewLNK(rows, cols int, opts ...Option) (*LNK, error) {
	// Validate dimensions before any allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Resolve functional options against documented defaults.
	o := gatherOptions(opts...)

	// Allocate the slot space: cols mandatory heads plus caller headroom.
	capacity := cols + o.capacityHint
	l := &LNK{
		r:        rows,
		c:        cols,
		next:     make([]int, cols, capacity),
		rowIdx:   make([]int, cols, capacity),
		val:      make([]float64, cols, capacity),
		validate: o.validateNaNInf,
	}
	// Every head starts as an empty chain: no stored row, no successor.
	for j := 0; j < cols; j++ {
		l.next[j] = noSlot
		l.rowIdx[j] = noRow
	}

	return l, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (l *LNK) Rows() int { return l.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (l *LNK) Cols() int { return l.c }

// NNZ returns the number of stored entries.
// Complexity: O(1).
func (l *LNK) NNZ() int { return l.nnz }

// At retrieves the element at (i, j).
// Stage 1 (Validate): bounds check via checkIndex.
// Stage 2 (Execute): walk column j's chain from the head, comparing rows.
// Stage 3 (Finalize): return the matched value, or 0 when the chain is
// exhausted — absence is indistinguishable from a stored zero.
// Complexity: O(population of column j); no side effects.
func (l *LNK) At(i, j int) (float64, error) {
	// Bounds check or fail with the unified sentinel.
	if err := checkIndex(i, j, l.r, l.c); err != nil {
		return 0, lnkErrorf("At", i, j, err)
	}
	// An unpopulated head means the whole column is empty.
	if l.rowIdx[j] == noRow {
		return 0, nil
	}
	// Linear scan along the chain; terminates at the noSlot sentinel.
	for k := j; k != noSlot; k = l.next[k] {
		if l.rowIdx[k] == i {
			return l.val[k], nil
		}
	}

	// Chain exhausted without a match: the entry is absent.
	return 0, nil
}

// Set assigns value v at (i, j), inserting or overwriting as needed.
// Implementation:
//   - Stage 1: bounds check; numeric policy check (ErrNaNInf) — both fail
//     before any mutation.
//   - Stage 2 (Case A): column j's head is unpopulated — store (i, v) in the
//     head directly. This lazy-head fill is what spares a separate append for
//     every column's first entry.
//   - Stage 3 (Case B): scan the chain; on a row match, overwrite in place.
//   - Stage 4 (Case C): chain exhausted — append one slot to all three
//     slices, relink the old tail, count the new entry.
//
// Behavior highlights:
//   - Exactly one entry per (i, j) afterwards; nnz grows by 1 on first write
//     to a coordinate and by 0 on every overwrite.
//   - Storing v == 0 creates a real entry; reads cannot tell it from absence.
//
// Errors:
//   - ErrOutOfRange (Stage 1), ErrNaNInf (Stage 1, only when the instance
//     was built with validation enabled).
//
// Complexity:
//   - Time O(population of column j); growth is amortized O(1) via append,
//     so N inserts cost O(N) slot storage regardless of distribution.
func (l *LNK) Set(i, j int, v float64) error {
	return l.upsert("Set", i, j, v, false)
}

// Add accumulates v into the entry at (i, j): existing entries become
// oldValue+v, absent entries are inserted holding v. Structure, errors and
// cost are identical to Set; only the combine step differs. The natural tool
// for assembly loops that sum overlapping contributions.
func (l *LNK) Add(i, j int, v float64) error {
	return l.upsert("Add", i, j, v, true)
}

// upsert is the single write kernel behind Set and Add.
// merge=false overwrites a matched entry, merge=true accumulates into it.
func (l *LNK) upsert(method string, i, j int, v float64, merge bool) error {
	// Stage 1: validate before touching anything — failed writes must leave
	// the chains untouched.
	if err := checkIndex(i, j, l.r, l.c); err != nil {
		return lnkErrorf(method, i, j, err)
	}
	if l.validate && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return lnkErrorf(method, i, j, ErrNaNInf)
	}

	// Stage 2 (Case A): first entry of the column lands in the head slot.
	if l.rowIdx[j] == noRow {
		l.rowIdx[j] = i
		l.val[j] = v
		l.nnz++

		return nil
	}

	// Stage 3 (Case B): scan the chain, remembering the tail as we go.
	k := j // current slot; starts at the head
	for {
		if l.rowIdx[k] == i {
			// Coordinate already stored: mutate in place, no growth.
			if merge {
				l.val[k] += v
			} else {
				l.val[k] = v
			}

			return nil
		}
		if l.next[k] == noSlot {
			break // k is the chain tail; the coordinate is absent
		}
		k = l.next[k]
	}

	// Stage 4 (Case C): append a fresh slot and relink the old tail to it.
	// The three slices MUST grow together to preserve the slot invariant.
	l.rowIdx = append(l.rowIdx, i)
	l.val = append(l.val, v)
	l.next = append(l.next, noSlot)
	l.next[k] = len(l.next) - 1
	l.nnz++

	return nil
}

// NonZeros calls fn for every stored entry, columns ascending; within a
// column, entries appear in chain order (head first, appended slots after).
// This is the enumeration contract conversion routines rely on. A non-nil
// error from fn stops the walk and is returned unchanged.
// Complexity: O(nnz).
func (l *LNK) NonZeros(fn func(i, j int, v float64) error) error {
	var k int
	for j := 0; j < l.c; j++ { // fixed column order guarantees reproducibility
		if l.rowIdx[j] == noRow {
			continue // column has zero entries
		}
		for k = j; k != noSlot; k = l.next[k] {
			if err := fn(l.rowIdx[k], j, l.val[k]); err != nil {
				return err
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the matrix; the copy shares no storage with
// the original and carries the same numeric policy.
// Complexity: O(len(slot space)) time and memory.
func (l *LNK) Clone() *LNK {
	out := &LNK{
		r:        l.r,
		c:        l.c,
		nnz:      l.nnz,
		next:     make([]int, len(l.next)),
		rowIdx:   make([]int, len(l.rowIdx)),
		val:      make([]float64, len(l.val)),
		validate: l.validate,
	}
	copy(out.next, l.next)
	copy(out.rowIdx, l.rowIdx)
	copy(out.val, l.val)

	return out
}

// String implements fmt.Stringer for easy debugging of small matrices.
// Renders the full dense grid, one bracketed row per line.
// Complexity: O(r*c*column population) — debugging aid, not a hot path.
func (l *LNK) String() string {
	var s string
	var v float64
	for i := 0; i < l.r; i++ { // iterate over rows
		s += "[" // open row
		for j := 0; j < l.c; j++ {
			v, _ = l.At(i, j) // bounds are valid by construction
			s += fmt.Sprintf("%g", v)
			if j < l.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
