// SPDX-License-Identifier: MIT

// Package sparse: conversions between the mutable (LNK) and compressed (CSC)
// formats.
//
// The hand-off between construction and computation happens here:
//   - ToCSC compresses a finished LNK into the fixed column layout,
//   - FromCSC seeds a fresh LNK from an existing CSC (one write per entry,
//     in the CSC's stored order),
//   - mergeCSC folds a pending LNK into an existing CSC in one pass — the
//     flush kernel behind Extendable.
//
// All three are deterministic: columns are processed ascending, ties resolved
// by a fixed policy, and no conversion mutates its input.
package sparse

import (
	"fmt"
	"sort"
)

// colEntry is a (row, value) pair gathered from one column chain before the
// per-column sort. Kept package-private; it never escapes a conversion.
type colEntry struct {
	row int
	v   float64
}

// gatherColumn copies column j's chain into buf (reset first) and sorts it by
// row ascending. Chain order is insertion-ish, so the sort is what gives the
// compressed layout its binary-search guarantee.
// Complexity: O(p log p) for column population p.
func (l *LNK) gatherColumn(j int, buf []colEntry) []colEntry {
	buf = buf[:0]
	if l.rowIdx[j] == noRow {
		return buf // column has zero entries
	}
	for k := j; k != noSlot; k = l.next[k] {
		buf = append(buf, colEntry{row: l.rowIdx[k], v: l.val[k]})
	}
	// Rows within a column are unique by the LNK write invariant, so a plain
	// less-than comparator yields a total, stable order.
	sort.Slice(buf, func(a, b int) bool { return buf[a].row < buf[b].row })

	return buf
}

// ToCSC compresses the matrix into a new CSC with identical entries.
// Implementation:
//   - Stage 1: allocate the target with exact nnz capacity.
//   - Stage 2: per column (ascending): gather the chain, sort by row, append
//     to the compressed slices, record the column pointer.
//
// Behavior highlights:
//   - The receiver is not mutated and remains usable afterwards.
//   - Stored zeros survive compression; conversion never drops entries.
//
// Returns:
//   - *CSC: compressed copy with rows ascending inside every column.
//
// Complexity:
//   - Time O(nnz · log(max column population)), Space O(nnz).
func (l *LNK) ToCSC() (*CSC, error) {
	out, err := NewCSC(l.r, l.c)
	if err != nil {
		return nil, fmt.Errorf("LNK.ToCSC: %w", err) // unreachable for a constructed LNK
	}
	out.rowIdx = make([]int, 0, l.nnz)
	out.val = make([]float64, 0, l.nnz)

	buf := make([]colEntry, 0, 16) // reused across columns
	for j := 0; j < l.c; j++ {
		buf = l.gatherColumn(j, buf)
		for _, e := range buf {
			out.rowIdx = append(out.rowIdx, e.row)
			out.val = append(out.val, e.v)
		}
		out.colPtr[j+1] = len(out.rowIdx)
	}

	return out, nil
}

// FromCSC seeds a fresh LNK from an existing compressed matrix: one write per
// stored entry, in the CSC's stored order (columns ascending, rows ascending).
// Options configure the new mutable instance exactly as NewLNK does; the
// capacity hint defaults to the source nnz so seeding never reallocates.
// Complexity: O(cols + nnz).
func FromCSC(c *CSC, opts ...Option) (*LNK, error) {
	if c == nil {
		return nil, fmt.Errorf("FromCSC: %w", ErrNilMatrix)
	}
	// Preallocate for every appended slot, then let caller options override.
	resolved := append([]Option{WithCapacityHint(c.NNZ())}, opts...)
	l, err := NewLNK(c.r, c.c, resolved...)
	if err != nil {
		return nil, fmt.Errorf("FromCSC: %w", err)
	}
	// Seed entry by entry; Set errors are impossible here (indices come from
	// a valid CSC, and stored values already passed that matrix's ingestion),
	// but the error path is kept honest rather than discarded.
	if err = c.NonZeros(l.Set); err != nil {
		return nil, fmt.Errorf("FromCSC: %w", err)
	}

	return l, nil
}

// mergeCSC folds the pending entries of l into base, producing a new CSC.
// Per column it two-way merges base's sorted run with l's sorted chain; when
// both sides hold the same coordinate the pending value wins (last-write-wins,
// matching the overwrite semantics of the mutable format). Neither input is
// mutated.
// Complexity: O(base.nnz + pending.nnz · log(max column population)).
func mergeCSC(base *CSC, l *LNK) (*CSC, error) {
	if err := ValidateBinarySameShape(base, l); err != nil {
		return nil, fmt.Errorf("mergeCSC: %w", err)
	}

	out, err := NewCSC(base.r, base.c)
	if err != nil {
		return nil, fmt.Errorf("mergeCSC: %w", err) // unreachable for constructed inputs
	}
	total := base.NNZ() + l.NNZ() // upper bound; duplicates only shrink it
	out.rowIdx = make([]int, 0, total)
	out.val = make([]float64, 0, total)

	buf := make([]colEntry, 0, 16) // reused pending-column buffer
	var bk, pk int                 // cursors into base column / pending buffer
	for j := 0; j < base.c; j++ {
		buf = l.gatherColumn(j, buf)
		bk, pk = base.colPtr[j], 0
		// Classic two-way merge over rows ascending.
		for bk < base.colPtr[j+1] && pk < len(buf) {
			switch {
			case base.rowIdx[bk] < buf[pk].row:
				out.rowIdx = append(out.rowIdx, base.rowIdx[bk])
				out.val = append(out.val, base.val[bk])
				bk++
			case base.rowIdx[bk] > buf[pk].row:
				out.rowIdx = append(out.rowIdx, buf[pk].row)
				out.val = append(out.val, buf[pk].v)
				pk++
			default:
				// Same coordinate on both sides: pending wins.
				out.rowIdx = append(out.rowIdx, buf[pk].row)
				out.val = append(out.val, buf[pk].v)
				bk++
				pk++
			}
		}
		// Drain whichever side remains.
		for ; bk < base.colPtr[j+1]; bk++ {
			out.rowIdx = append(out.rowIdx, base.rowIdx[bk])
			out.val = append(out.val, base.val[bk])
		}
		for ; pk < len(buf); pk++ {
			out.rowIdx = append(out.rowIdx, buf[pk].row)
			out.val = append(out.val, buf[pk].v)
		}
		out.colPtr[j+1] = len(out.rowIdx)
	}

	return out, nil
}
