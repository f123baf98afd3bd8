// SPDX-License-Identifier: MIT
// Package sparse — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the
//     package.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     implementation.
//   - Keep function names explicit and intention-revealing to improve
//     discoverability.
//
// Determinism & Policy:
//   - Facades never change loop orders or the numeric policy of underlying
//     kernels; validation happens in the kernels, facades only forward.

package sparse

// Sum is an alias for Add: entrywise a + b into a new CSC.
// Complexity: O(nnz(a)+nnz(b)) accumulation plus compression.
func Sum(a, b Reader) (*CSC, error) { return Add(a, b) }

// Compress is an alias for (*LNK).ToCSC, provided for pipeline readability:
// build with NewLNK, finish with Compress.
// Complexity: O(nnz · log(max column population)).
func Compress(l *LNK) (*CSC, error) {
	if l == nil {
		return nil, ErrNilMatrix
	}

	return l.ToCSC()
}

// Expand is an alias for FromCSC: seed a fresh mutable LNK from a compressed
// matrix, one write per stored entry in stored order.
// Complexity: O(cols + nnz).
func Expand(c *CSC, opts ...Option) (*LNK, error) { return FromCSC(c, opts...) }

// ZerosLike returns an empty LNK with the same shape as m.
// Handy for staging accumulators in entrywise pipelines.
// Complexity: O(cols).
func ZerosLike(m Reader, opts ...Option) (*LNK, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewLNK(m.Rows(), m.Cols(), opts...)
}
