// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the format
//     and conversion tests.
//   • Keep all data finite and well-formed to avoid numeric-policy
//     interference; policy behavior is tested explicitly where it matters.

package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/extsparse/sparse"
	"github.com/stretchr/testify/require"
)

// nanValue and infValue keep the numeric-policy tests free of inline math
// noise.
func nanValue() float64 { return math.NaN() }
func infValue() float64 { return math.Inf(1) }

// triple is one stored entry observed through NonZeros, used to assert
// enumeration contents and order.
type triple struct {
	i, j int
	v    float64
}

// mustLNK allocates an r×c *LNK or fails the test (fatal on error).
func mustLNK(t testing.TB, r, c int, opts ...sparse.Option) *sparse.LNK {
	t.Helper()
	l, err := sparse.NewLNK(r, c, opts...)
	require.NoError(t, err)

	return l
}

// mustSet performs a Set that the test expects to succeed.
func mustSet(t testing.TB, l *sparse.LNK, i, j int, v float64) {
	t.Helper()
	require.NoError(t, l.Set(i, j, v))
}

// collect drains a Reader's NonZeros into a slice for order-sensitive asserts.
func collect(t testing.TB, m sparse.Reader) []triple {
	t.Helper()
	var out []triple
	err := m.NonZeros(func(i, j int, v float64) error {
		out = append(out, triple{i: i, j: j, v: v})

		return nil
	})
	require.NoError(t, err)

	return out
}

// seededLNK builds a 4×4 fixture with entries in all three insert cases:
// head fills, chain appends and one overwrite.
//
//	col 0: rows 0, 2        col 1: row 3
//	col 3: rows 1, 0, 3     (inserted out of row order)
func seededLNK(t testing.TB) *sparse.LNK {
	t.Helper()
	l := mustLNK(t, 4, 4)
	mustSet(t, l, 0, 0, 1.0)
	mustSet(t, l, 2, 0, 2.0)
	mustSet(t, l, 3, 1, 3.0)
	mustSet(t, l, 1, 3, 4.0)
	mustSet(t, l, 0, 3, 5.0)
	mustSet(t, l, 3, 3, 6.0)
	mustSet(t, l, 2, 0, 2.5) // overwrite, not a new entry

	return l
}
