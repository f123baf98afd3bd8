// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Entrywise arithmetic and norms over the narrow Reader surface.
//   - Every kernel here consumes matrices ONLY through Rows/Cols/NNZ/At/
//     NonZeros, so any format (LNK, CSC, Extendable, external implementations)
//     interoperates without special cases.
//
// Determinism & Performance:
//   - Fixed enumeration orders inherited from NonZeros (columns ascending).
//   - All kernels are O(nnz) plus the cost of the output representation.

package sparse

import (
	"fmt"
	"math"
)

// Add computes the entrywise sum a + b into a new compressed matrix.
// Implementation:
//   - Stage 1: validate operands (non-nil, equal shape).
//   - Stage 2: accumulate both operands into a scratch LNK via its Add —
//     overlapping coordinates merge, disjoint ones insert.
//   - Stage 3: compress the accumulator.
//
// Behavior highlights:
//   - Neither operand is mutated; operands may even alias each other.
//   - Validation is disabled on the scratch accumulator: operand entries
//     already passed their own ingestion policy.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Stage 1).
//
// Complexity:
//   - Time O((nnz(a)+nnz(b)) · column population of the accumulator),
//     Space O(nnz(a)+nnz(b)).
func Add(a, b Reader) (*CSC, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}

	acc, err := NewLNK(a.Rows(), a.Cols(),
		WithNoValidateNaNInf(),
		WithCapacityHint(a.NNZ()+b.NNZ()))
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err) // unreachable: shapes come from live matrices
	}
	// Entrywise get+set suffices for addition; NonZeros gives it in O(nnz).
	if err = a.NonZeros(acc.Add); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	if err = b.NonZeros(acc.Add); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}

	return acc.ToCSC()
}

// MatVec computes y = A·x by chain traversal over the stored entries.
// Stage 1 (Validate): len(x) must equal Cols.
// Stage 2 (Execute): accumulate val·x[col] into y[row], chain by chain.
// Complexity: O(nnz) time, O(rows) result memory.
func (l *LNK) MatVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, l.c); err != nil {
		return nil, fmt.Errorf("LNK.MatVec: %w", err)
	}

	y := make([]float64, l.r)
	// NonZeros cannot fail when fn never does; ignore the impossible error.
	_ = l.NonZeros(func(i, j int, v float64) error {
		y[i] += v * x[j]

		return nil
	})

	return y, nil
}

// Norm1 returns the maximum absolute column sum, max_j Σ_i |a[i,j]|.
// Absent entries contribute nothing, so only stored entries are visited.
// Complexity: O(nnz) time, O(cols) scratch.
func Norm1(m Reader) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("Norm1: %w", err)
	}

	colSum := make([]float64, m.Cols())
	_ = m.NonZeros(func(_, j int, v float64) error {
		colSum[j] += math.Abs(v)

		return nil
	})

	return maxOf(colSum), nil
}

// NormInf returns the maximum absolute row sum, max_i Σ_j |a[i,j]|.
// Complexity: O(nnz) time, O(rows) scratch.
func NormInf(m Reader) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("NormInf: %w", err)
	}

	rowSum := make([]float64, m.Rows())
	_ = m.NonZeros(func(i, _ int, v float64) error {
		rowSum[i] += math.Abs(v)

		return nil
	})

	return maxOf(rowSum), nil
}

// maxOf returns the largest element of a non-empty slice of non-negative
// accumulator sums (0 for a matrix with no stored entries).
func maxOf(sums []float64) float64 {
	var max float64
	for _, s := range sums {
		if s > max {
			max = s
		}
	}

	return max
}
