package homology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homology/bigmat"
	"github.com/katalvlaran/homology/builder"
)

// TestComputeFatalResets swaps in an H_1 with one row too many: the cycle
// basis from H_0 has 3 rows, the boundary basis 4, and the pass must abort
// with every earlier result cleared.
func TestComputeFatalResets(t *testing.T) {
	cx, err := builder.BuildComplex(nil, builder.Polygon(3))
	require.NoError(t, err)
	cc, err := New(cx)
	require.NoError(t, err)

	require.NoError(t, cc.ComputeHomology(false))
	ok, _ := cc.Computed()
	require.True(t, ok)
	require.Equal(t, 1, cc.BasisSize(0))
	require.Equal(t, 1, cc.BasisSize(1))
	assembled := len(cc.Diagnostics())

	bad, err := bigmat.FromRows([][]int64{
		{-1, 0, 1},
		{1, -1, 0},
		{0, 1, -1},
		{1, 0, 0},
	})
	require.NoError(t, err)
	cc.ops[1] = bad

	err = cc.ComputeHomology(false)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	require.Contains(t, err.Error(), StepCompute)

	ok, dual := cc.Computed()
	require.False(t, ok)
	require.False(t, dual)
	for d := 0; d <= maxDim; d++ {
		require.Equal(t, 0, cc.BasisSize(d), "dim %d", d)
		require.Nil(t, cc.TorsionCoefficients(d), "dim %d", d)
		require.False(t, cc.Unresolved(d), "dim %d", d)
		b, err := cc.Basis(d)
		require.NoError(t, err)
		require.Nil(t, b, "dim %d", d)
	}
	require.Len(t, cc.Diagnostics(), assembled)
}
