// SPDX-License-Identifier: MIT

// Package sparse: CSC — the compressed sparse column collaborator.
//
// CSC is the fixed format LNK compresses into once assembly is done: three
// slices in the standard textbook layout (colPtr/rowIdx/val) with rows sorted
// ascending inside every column. Reads binary-search a column in O(log
// population); the layout itself is immutable apart from in-place value
// updates performed by Extendable. Structural growth always goes through an
// LNK and a merge — never through CSC directly.
package sparse

import (
	"fmt"
	"sort"
)

// cscErrorf wraps an underlying error with CSC method context.
func cscErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("CSC.%s(%d,%d): %w", method, i, j, err)
}

// CSC is a rows×cols compressed sparse column matrix of float64 values.
// Column j's entries occupy val[colPtr[j]:colPtr[j+1]], with matching rows in
// rowIdx sorted ascending. The zero value is not usable; construct via
// NewCSC or (*LNK).ToCSC.
type CSC struct {
	r, c   int       // fixed dimensions, both > 0
	colPtr []int     // length c+1; column j spans [colPtr[j], colPtr[j+1])
	rowIdx []int     // row of each stored entry, ascending within a column
	val    []float64 // value of each stored entry
}

// NewCSC creates a rows×cols CSC matrix with zero stored entries.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the all-zero column pointer table.
// Complexity: O(cols) time and memory.
func NewCSC(rows, cols int) (*CSC, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &CSC{r: rows, c: cols, colPtr: make([]int, cols+1)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *CSC) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *CSC) Cols() int { return m.c }

// NNZ returns the number of stored entries.
// Complexity: O(1).
func (m *CSC) NNZ() int { return m.colPtr[m.c] }

// find locates the storage position of entry (i, j), assuming valid indices.
// Returns (position, true) when stored, (noSlot, false) otherwise.
// Binary search over the sorted rows of column j; O(log population).
func (m *CSC) find(i, j int) (int, bool) {
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	// sort.Search finds the leftmost position with rowIdx >= i.
	p := lo + sort.Search(hi-lo, func(k int) bool { return m.rowIdx[lo+k] >= i })
	if p < hi && m.rowIdx[p] == i {
		return p, true
	}

	return noSlot, false
}

// At retrieves the element at (i, j).
// Stage 1 (Validate): bounds check via checkIndex.
// Stage 2 (Execute): binary search within column j.
// Stage 3 (Finalize): return the stored value, or 0 when absent.
// Complexity: O(log population of column j); no side effects.
func (m *CSC) At(i, j int) (float64, error) {
	if err := checkIndex(i, j, m.r, m.c); err != nil {
		return 0, cscErrorf("At", i, j, err)
	}
	if p, ok := m.find(i, j); ok {
		return m.val[p], nil
	}

	return 0, nil
}

// NonZeros calls fn for every stored entry, columns ascending and rows
// ascending within each column. A non-nil error from fn stops the walk and
// is returned unchanged.
// Complexity: O(nnz).
func (m *CSC) NonZeros(fn func(i, j int, v float64) error) error {
	var k int
	for j := 0; j < m.c; j++ { // fixed column order guarantees reproducibility
		for k = m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			if err := fn(m.rowIdx[k], j, m.val[k]); err != nil {
				return err
			}
		}
	}

	return nil
}

// MatVec computes y = A·x over the stored entries only.
// Stage 1 (Validate): len(x) must equal Cols.
// Stage 2 (Execute): fixed j→k loop accumulating val[k]*x[j] into y[row].
// Complexity: O(nnz) time, O(rows) result memory.
func (m *CSC) MatVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, fmt.Errorf("CSC.MatVec: %w", err)
	}

	y := make([]float64, m.r)
	var k int
	var xj float64
	for j := 0; j < m.c; j++ {
		xj = x[j] // read the operand once per column
		for k = m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			y[m.rowIdx[k]] += m.val[k] * xj
		}
	}

	return y, nil
}

// Clone returns a deep copy of the matrix sharing no storage with the
// original.
// Complexity: O(cols + nnz) time and memory.
func (m *CSC) Clone() *CSC {
	out := &CSC{
		r:      m.r,
		c:      m.c,
		colPtr: make([]int, len(m.colPtr)),
		rowIdx: make([]int, len(m.rowIdx)),
		val:    make([]float64, len(m.val)),
	}
	copy(out.colPtr, m.colPtr)
	copy(out.rowIdx, m.rowIdx)
	copy(out.val, m.val)

	return out
}
