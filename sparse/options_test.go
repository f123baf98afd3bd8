// Package sparse_test contains unit tests for the functional options and
// their observable effect on constructed matrices.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/extsparse/sparse"
	"github.com/stretchr/testify/require"
)

// TestWithCapacityHintPanicsOnNegative ensures the option constructor rejects
// nonsensical values at the call site (programmer error).
func TestWithCapacityHintPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { sparse.WithCapacityHint(-1) })
}

// TestWithCapacityHintSemanticsUnchanged verifies the hint is purely a
// performance knob: a hinted matrix behaves identically to a default one.
func TestWithCapacityHintSemanticsUnchanged(t *testing.T) {
	plain := mustLNK(t, 4, 4)
	hinted := mustLNK(t, 4, 4, sparse.WithCapacityHint(64))

	for _, l := range []*sparse.LNK{plain, hinted} {
		mustSet(t, l, 3, 0, 1.0)
		mustSet(t, l, 1, 0, 2.0)
		mustSet(t, l, 0, 2, 3.0)
	}

	require.Equal(t, plain.NNZ(), hinted.NNZ())
	require.Equal(t, collect(t, plain), collect(t, hinted))
}

// TestValidatePolicyIsDefault confirms strict NaN/Inf validation without any
// explicit option, and that WithValidateNaNInf re-enables it after a relax.
func TestValidatePolicyIsDefault(t *testing.T) {
	byDefault := mustLNK(t, 2, 2)
	require.ErrorIs(t, byDefault.Set(0, 0, nanValue()), sparse.ErrNaNInf)

	// Last-writer-wins across option applications.
	reEnabled := mustLNK(t, 2, 2, sparse.WithNoValidateNaNInf(), sparse.WithValidateNaNInf())
	require.ErrorIs(t, reEnabled.Set(0, 0, nanValue()), sparse.ErrNaNInf)
}

// TestOptionsPropagateThroughFromCSC checks that seeding forwards the
// caller's policy to the new mutable matrix.
func TestOptionsPropagateThroughFromCSC(t *testing.T) {
	c, err := seededLNK(t).ToCSC()
	require.NoError(t, err)

	relaxed, err := sparse.FromCSC(c, sparse.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, infValue())) // relaxed policy active

	strict, err := sparse.FromCSC(c)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, infValue()), sparse.ErrNaNInf)
}
