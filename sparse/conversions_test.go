// Package sparse_test contains unit tests for LNK⇄CSC conversions and the
// round-trip guarantees between the two formats.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/extsparse/sparse"
	"github.com/stretchr/testify/require"
)

// TestToCSCDoesNotMutateSource verifies compression leaves the LNK usable.
func TestToCSCDoesNotMutateSource(t *testing.T) {
	l := seededLNK(t)
	before := collect(t, l)

	_, err := l.ToCSC()
	require.NoError(t, err)

	require.Equal(t, before, collect(t, l)) // source enumeration unchanged
	mustSet(t, l, 1, 1, 7.0)                // source still writable
	require.Equal(t, 7, l.NNZ())
}

// TestToCSCEmptyColumns checks compression of a matrix whose columns are
// partially (and fully) empty.
func TestToCSCEmptyColumns(t *testing.T) {
	l := mustLNK(t, 3, 4)
	mustSet(t, l, 1, 2, 5.0) // only column 2 is populated

	c, err := l.ToCSC()
	require.NoError(t, err)
	require.Equal(t, 1, c.NNZ())
	require.Equal(t, []triple{{1, 2, 5.0}}, collect(t, c))
}

// TestFromCSCRoundTrip seeds an LNK from a CSC and checks full entrywise
// agreement plus continued writability.
func TestFromCSCRoundTrip(t *testing.T) {
	orig := seededLNK(t)
	c, err := orig.ToCSC()
	require.NoError(t, err)

	back, err := sparse.FromCSC(c)
	require.NoError(t, err)
	require.Equal(t, orig.NNZ(), back.NNZ())

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want, err := orig.At(i, j)
			require.NoError(t, err)
			got, err := back.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want, got) // round trip preserves every value
		}
	}

	// The reseeded matrix is mutable again.
	require.NoError(t, back.Set(1, 1, -1.0))
	require.Equal(t, orig.NNZ()+1, back.NNZ())
}

// TestFromCSCNil ensures the nil guard fires.
func TestFromCSCNil(t *testing.T) {
	_, err := sparse.FromCSC(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestCompressExpandFacades exercises the api.go aliases end to end.
func TestCompressExpandFacades(t *testing.T) {
	l := seededLNK(t)

	c, err := sparse.Compress(l)
	require.NoError(t, err)
	require.Equal(t, l.NNZ(), c.NNZ())

	back, err := sparse.Expand(c)
	require.NoError(t, err)
	require.Equal(t, c.NNZ(), back.NNZ())

	_, err = sparse.Compress(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestZerosLike checks the staging-accumulator facade.
func TestZerosLike(t *testing.T) {
	src := seededLNK(t)

	z, err := sparse.ZerosLike(src)
	require.NoError(t, err)
	require.Equal(t, src.Rows(), z.Rows())
	require.Equal(t, src.Cols(), z.Cols())
	require.Equal(t, 0, z.NNZ())

	_, err = sparse.ZerosLike(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
