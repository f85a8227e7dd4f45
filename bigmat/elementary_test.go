package bigmat_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/homology/bigmat"
	"github.com/stretchr/testify/require"
)

// TestRowOperations applies each row operation to a small matrix.
func TestRowOperations(t *testing.T) {
	m := mustRows(t, [][]int64{{1, 2}, {3, 4}})

	m.AddRowMultiple(2, 1, big.NewInt(-3)) // row2 -= 3*row1
	require.Equal(t, "[1, 2]\n[0, -2]\n", m.String())

	m.SwapRows(1, 2)
	require.Equal(t, "[0, -2]\n[1, 2]\n", m.String())

	m.NegateRow(1)
	require.Equal(t, "[0, 2]\n[1, 2]\n", m.String())

	require.Panics(t, func() { m.SwapRows(1, 3) })
}

// TestColumnOperations applies each column operation to a small matrix.
func TestColumnOperations(t *testing.T) {
	m := mustRows(t, [][]int64{{1, 2}, {3, 4}})

	m.AddColMultiple(2, 1, big.NewInt(-2)) // col2 -= 2*col1
	require.Equal(t, "[1, 0]\n[3, -2]\n", m.String())

	m.SwapCols(1, 2)
	require.Equal(t, "[0, 1]\n[-2, 3]\n", m.String())

	m.NegateCol(1)
	require.Equal(t, "[0, 1]\n[2, 3]\n", m.String())

	require.Panics(t, func() { m.NegateCol(0) })
}

// TestInverseBookkeeping checks the documented T / T⁻¹ correspondence.
func TestInverseBookkeeping(t *testing.T) {
	tr, err := bigmat.Identity(3)
	require.NoError(t, err)
	inv, err := bigmat.Identity(3)
	require.NoError(t, err)

	q := big.NewInt(5)
	tr.AddRowMultiple(1, 3, q)
	inv.AddColMultiple(3, 1, new(big.Int).Neg(q))

	tr.AddColMultiple(2, 1, big.NewInt(-7))
	inv.AddRowMultiple(1, 2, big.NewInt(7))

	tr.SwapRows(2, 3)
	inv.SwapCols(2, 3)

	p, err := bigmat.Mul(tr, inv)
	require.NoError(t, err)
	id, err := bigmat.Identity(3)
	require.NoError(t, err)
	require.True(t, p.Equal(id))
}
