// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_surfaces.go - closed surfaces with known homology.
//
//	surface          H0   H1          H2
//	ProjectivePlane  Z    Z/2         0
//	Torus            Z    Z²          Z
//	KleinBottle      Z    Z ⊕ Z/2     0

package builder

import "github.com/katalvlaran/homology/cells"

const (
	methodProjectivePlane = "ProjectivePlane"
	methodTorus           = "Torus"
	methodKleinBottle     = "KleinBottle"

	// below 3 the grid identifications create degenerate simplices
	minGridSide = 3
)

// projectivePlane is the minimal 6-vertex, 10-triangle triangulation of RP².
var projectivePlane = [][]int{
	{1, 2, 4}, {1, 2, 6}, {1, 3, 4}, {1, 3, 5}, {1, 5, 6},
	{2, 3, 5}, {2, 3, 6}, {2, 4, 5}, {3, 4, 6}, {4, 5, 6},
}

// ProjectivePlane returns a Constructor for RP² on vertex labels 1..6.
func ProjectivePlane() Constructor {
	return func(cx *cells.Complex, cfg builderConfig) error {
		return addClosure(cx, cfg, methodProjectivePlane, projectivePlane)
	}
}

// Torus returns a Constructor for an n×m triangulated torus (n, m ≥ 3).
// Vertex (i, j) carries label i*m + j.
func Torus(n, m int) Constructor {
	return func(cx *cells.Complex, cfg builderConfig) error {
		if n < minGridSide || m < minGridSide {
			return builderErrorf(methodTorus, ErrTooFewVertices, "grid %dx%d < min %d", n, m, minGridSide)
		}

		return addClosure(cx, cfg, methodTorus, gridFacets(n, m, false))
	}
}

// KleinBottle returns a Constructor for an n×m triangulated Klein bottle
// (n, m ≥ 3): the torus grid with the second coordinate reflected across
// the seam of the first.
func KleinBottle(n, m int) Constructor {
	return func(cx *cells.Complex, cfg builderConfig) error {
		if n < minGridSide || m < minGridSide {
			return builderErrorf(methodKleinBottle, ErrTooFewVertices, "grid %dx%d < min %d", n, m, minGridSide)
		}

		return addClosure(cx, cfg, methodKleinBottle, gridFacets(n, m, true))
	}
}

// gridFacets splits each square of an n×m grid into two triangles and wraps
// indices; twist reflects j whenever i crosses the seam.
func gridFacets(n, m int, twist bool) [][]int {
	label := func(i, j int) int {
		if twist && (i/n)%2 == 1 {
			j = -j
		}

		return (i%n)*m + mod(j, m)
	}
	facets := make([][]int, 0, 2*n*m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			facets = append(facets,
				[]int{label(i, j), label(i+1, j), label(i+1, j+1)},
				[]int{label(i, j), label(i, j+1), label(i+1, j+1)})
		}
	}

	return facets
}

// mod is the non-negative remainder of a by b > 0.
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}

	return r
}
