// Package cells_test contains unit tests for the cell arena and its codec.
package cells_test

import (
	"testing"

	"github.com/katalvlaran/homology/cells"
	"github.com/stretchr/testify/require"
)

// hollowTriangle builds three vertices and three oriented edges.
func hollowTriangle(t *testing.T) *cells.Complex {
	t.Helper()
	cx := cells.New()
	for tag := 1; tag <= 3; tag++ {
		_, err := cx.AddCell(0, tag)
		require.NoError(t, err)
	}
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}}
	for k, e := range edges {
		_, err := cx.AddCell(1, 10+k,
			cells.Incidence{Sign: -1, Face: e[0]},
			cells.Incidence{Sign: 1, Face: e[1]})
		require.NoError(t, err)
	}

	return cx
}

func TestAddCellValidation(t *testing.T) {
	cx := hollowTriangle(t)

	_, err := cx.AddCell(4, 1)
	require.ErrorIs(t, err, cells.ErrBadDimension)

	_, err = cx.AddCell(0, 2)
	require.ErrorIs(t, err, cells.ErrDuplicateTag)

	_, err = cx.AddCell(0, 9, cells.Incidence{Sign: 1, Face: 0})
	require.ErrorIs(t, err, cells.ErrUnknownFace)

	_, err = cx.AddCell(1, 99, cells.Incidence{Sign: 2, Face: 0})
	require.ErrorIs(t, err, cells.ErrBadSign)

	_, err = cx.AddCell(2, 1, cells.Incidence{Sign: 1, Face: 3})
	require.ErrorIs(t, err, cells.ErrUnknownFace)

	// rejected calls leave the arena untouched
	require.Equal(t, 3, cx.Len(0))
	require.Equal(t, 3, cx.Len(1))
	require.Equal(t, 0, cx.Len(2))
}

func TestEnumerationAndLookup(t *testing.T) {
	cx := hollowTriangle(t)
	require.Equal(t, 1, cx.Dim())
	require.Equal(t, -1, cells.New().Dim())

	for k, c := range cx.Cells(1) {
		require.Equal(t, 10+k, c.Tag)
		require.Equal(t, 1, c.Dim)
		pos, ok := cx.Lookup(1, c.Tag)
		require.True(t, ok)
		require.Equal(t, k, pos)
	}
	_, ok := cx.Lookup(1, 1)
	require.False(t, ok)
	require.Nil(t, cx.Cells(7))
}

func TestSubdomainAndImage(t *testing.T) {
	cx := hollowTriangle(t)
	require.NoError(t, cx.SetSubdomain(0, 2, true))
	require.Equal(t, 3, cx.Len(0))
	require.Equal(t, 2, cx.Size(0))

	require.ErrorIs(t, cx.SetSubdomain(0, 3, true), cells.ErrOutOfRange)
	require.ErrorIs(t, cx.SetImage(5, 0), cells.ErrBadDimension)

	c, err := cx.Cell(1, 0)
	require.NoError(t, err)
	require.Equal(t, []cells.Element{{Num: 10, Sign: 1}}, c.Elements())

	require.NoError(t, cx.SetImage(1, 0, cells.Element{Num: 100, Sign: 1}, cells.Element{Num: 101, Sign: -1}))
	c, err = cx.Cell(1, 0)
	require.NoError(t, err)
	require.Len(t, c.Elements(), 2)
}

// TestCellReturnsCopy ensures callers cannot mutate the arena through results.
func TestCellReturnsCopy(t *testing.T) {
	cx := hollowTriangle(t)
	c, err := cx.Cell(1, 0)
	require.NoError(t, err)
	c.Boundary[0].Sign = 1
	c.Subdomain = true

	again, err := cx.Cell(1, 0)
	require.NoError(t, err)
	require.Equal(t, -1, again.Boundary[0].Sign)
	require.False(t, again.Subdomain)
}
