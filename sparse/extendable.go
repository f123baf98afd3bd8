// SPDX-License-Identifier: MIT

// Package sparse: Extendable — the incremental facade over CSC + LNK.
//
// Extendable keeps the already-compressed part of a matrix in a CSC and
// collects new entries in a lazily allocated pending LNK. Writes that hit an
// existing compressed entry update it in place (no structural work at all);
// writes that miss go to the pending side in O(column population). Flush
// merges pending into compressed in one deterministic pass, after which reads
// and MatVec run at full compressed speed again.
//
// The compressed and pending parts are disjoint by construction: the write
// path checks the CSC first, so a coordinate lives on exactly one side.
// Like the underlying formats, Extendable provides no internal locking; note
// additionally that NonZeros and MatVec flush pending entries first and are
// therefore NOT read-only — serialize all access externally.
package sparse

import (
	"fmt"
	"math"
)

// Extendable is a rows×cols sparse matrix that stays cheap to grow after
// compression. The zero value is not usable; construct via NewExtendable.
type Extendable struct {
	flushed *CSC // compressed part; never nil
	pending *LNK // uncompressed new entries; nil until first miss

	opts     []Option // construction options, replayed onto each pending LNK
	validate bool     // numeric policy, resolved once at construction
}

// NewExtendable creates a rows×cols Extendable with zero stored entries.
// Options apply to every pending LNK the instance allocates over its
// lifetime (numeric policy, capacity hint).
// Complexity: O(cols).
func NewExtendable(rows, cols int, opts ...Option) (*Extendable, error) {
	flushed, err := NewCSC(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewExtendable: %w", err)
	}

	return &Extendable{
		flushed:  flushed,
		opts:     opts,
		validate: gatherOptions(opts...).validateNaNInf,
	}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (e *Extendable) Rows() int { return e.flushed.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (e *Extendable) Cols() int { return e.flushed.c }

// NNZ returns the number of stored entries across both parts.
// Complexity: O(1).
func (e *Extendable) NNZ() int {
	n := e.flushed.NNZ()
	if e.pending != nil {
		n += e.pending.NNZ()
	}

	return n
}

// At retrieves the element at (i, j), checking the compressed part first and
// the pending part second. The parts are disjoint, so the order only matters
// for cost: the common case after a Flush is a pure binary search.
// Complexity: O(log population) compressed + O(population) pending.
func (e *Extendable) At(i, j int) (float64, error) {
	if err := checkIndex(i, j, e.flushed.r, e.flushed.c); err != nil {
		return 0, fmt.Errorf("Extendable.At(%d,%d): %w", i, j, err)
	}
	if p, ok := e.flushed.find(i, j); ok {
		return e.flushed.val[p], nil
	}
	if e.pending != nil {
		return e.pending.At(i, j)
	}

	return 0, nil
}

// Set assigns value v at (i, j): in place when the coordinate is already
// compressed, into the pending LNK otherwise.
// Complexity: O(log population) on the in-place path, O(population) pending.
func (e *Extendable) Set(i, j int, v float64) error {
	return e.write(i, j, v, false)
}

// Add accumulates v into the entry at (i, j); routing mirrors Set.
func (e *Extendable) Add(i, j int, v float64) error {
	return e.write(i, j, v, true)
}

// write is the single routing kernel behind Set and Add.
func (e *Extendable) write(i, j int, v float64, merge bool) error {
	method := "Set"
	if merge {
		method = "Add"
	}
	if err := checkIndex(i, j, e.flushed.r, e.flushed.c); err != nil {
		return fmt.Errorf("Extendable.%s(%d,%d): %w", method, i, j, err)
	}

	// Fast path: the coordinate already exists in the compressed part.
	if p, ok := e.flushed.find(i, j); ok {
		// Keep the pending side's numeric policy on this path too.
		if err := e.policyCheck(method, i, j, v); err != nil {
			return err
		}
		if merge {
			e.flushed.val[p] += v
		} else {
			e.flushed.val[p] = v
		}

		return nil
	}

	// Miss: the entry is new (or still pending) — the LNK handles dedup,
	// bounds and numeric policy itself.
	if e.pending == nil {
		l, err := NewLNK(e.flushed.r, e.flushed.c, e.opts...)
		if err != nil {
			return fmt.Errorf("Extendable.%s(%d,%d): %w", method, i, j, err) // unreachable for a constructed Extendable
		}
		e.pending = l
	}
	if merge {
		return e.pending.Add(i, j, v)
	}

	return e.pending.Set(i, j, v)
}

// policyCheck applies the configured NaN/Inf ingestion policy on the in-place
// update path, where no LNK is consulted.
func (e *Extendable) policyCheck(method string, i, j int, v float64) error {
	if e.validate && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return fmt.Errorf("Extendable.%s(%d,%d): %w", method, i, j, ErrNaNInf)
	}

	return nil
}

// Flush merges all pending entries into the compressed part and resets the
// pending side. Calling Flush with nothing pending is a no-op.
// Complexity: O(nnz) merge; afterwards reads are pure binary search again.
func (e *Extendable) Flush() error {
	if e.pending == nil || e.pending.NNZ() == 0 {
		e.pending = nil

		return nil
	}
	merged, err := mergeCSC(e.flushed, e.pending)
	if err != nil {
		return fmt.Errorf("Extendable.Flush: %w", err)
	}
	e.flushed = merged
	e.pending = nil

	return nil
}

// ToCSC flushes and returns a deep copy of the compressed matrix.
// Complexity: O(nnz).
func (e *Extendable) ToCSC() (*CSC, error) {
	if err := e.Flush(); err != nil {
		return nil, err
	}

	return e.flushed.Clone(), nil
}

// NonZeros flushes pending entries, then enumerates the compressed part:
// columns ascending, rows ascending within a column. NOTE: the implicit
// Flush mutates the receiver; this method is not a concurrent-safe read.
// Complexity: O(nnz) plus the one-off flush cost.
func (e *Extendable) NonZeros(fn func(i, j int, v float64) error) error {
	if err := e.Flush(); err != nil {
		return err
	}

	return e.flushed.NonZeros(fn)
}

// MatVec flushes pending entries, then computes y = A·x on the compressed
// part. Same mutation caveat as NonZeros.
// Complexity: O(nnz) plus the one-off flush cost.
func (e *Extendable) MatVec(x []float64) ([]float64, error) {
	if err := e.Flush(); err != nil {
		return nil, err
	}

	return e.flushed.MatVec(x)
}
