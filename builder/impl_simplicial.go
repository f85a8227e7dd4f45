// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_simplicial.go - closure of a facet list into an oriented simplicial
// complex, plus the small fixed shapes built on it.
//
// Contract:
//   • Every facet is non-empty, has at most cells.MaxDim+1 vertices and no
//     repeated label (else ErrBadFacet).
//   • All faces of all facets are generated; shared faces appear once.
//   • Emission: dimension 0 first, lexicographic by sorted labels within a
//     dimension; boundary of s lists s minus its i-th vertex with sign (-1)^i.
//
// Complexity: O(F · 2^(k+1)) faces for F facets of at most k+1 vertices.

package builder

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/homology/cells"
)

const (
	methodSimplices       = "Simplices"
	methodPolygon         = "Polygon"
	methodSimplex         = "Simplex"
	methodSimplexBoundary = "SimplexBoundary"

	minPolygonVertices = 3
)

// simplex is a sorted tuple of vertex labels.
type simplex []int

func (s simplex) key() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// without returns s with its i-th vertex removed.
func (s simplex) without(i int) simplex {
	out := make(simplex, 0, len(s)-1)
	out = append(out, s[:i]...)

	return append(out, s[i+1:]...)
}

// Simplices returns a Constructor adding the simplicial closure of facets.
// Labels are local to this call: two Simplices calls build disjoint pieces.
func Simplices(facets ...[]int) Constructor {
	return func(cx *cells.Complex, cfg builderConfig) error {
		return addClosure(cx, cfg, methodSimplices, facets)
	}
}

// Polygon returns a Constructor for the boundary of an n-gon (n ≥ 3).
func Polygon(n int) Constructor {
	return func(cx *cells.Complex, cfg builderConfig) error {
		if n < minPolygonVertices {
			return builderErrorf(methodPolygon, ErrTooFewVertices, "n=%d < min=%d", n, minPolygonVertices)
		}
		facets := make([][]int, n)
		for i := 0; i < n; i++ {
			facets[i] = []int{i, (i + 1) % n}
		}

		return addClosure(cx, cfg, methodPolygon, facets)
	}
}

// Simplex returns a Constructor for a solid k-simplex on labels 0..k (0 ≤ k ≤ 3).
func Simplex(k int) Constructor {
	return func(cx *cells.Complex, cfg builderConfig) error {
		if k < 0 || k > cells.MaxDim {
			return builderErrorf(methodSimplex, ErrBadFacet, "k=%d outside [0,%d]", k, cells.MaxDim)
		}
		facet := make([]int, k+1)
		for i := range facet {
			facet[i] = i
		}

		return addClosure(cx, cfg, methodSimplex, [][]int{facet})
	}
}

// SimplexBoundary returns a Constructor for the boundary of a k-simplex, a
// (k-1)-sphere (1 ≤ k ≤ cells.MaxDim+1).
func SimplexBoundary(k int) Constructor {
	return func(cx *cells.Complex, cfg builderConfig) error {
		if k < 1 {
			return builderErrorf(methodSimplexBoundary, ErrTooFewVertices, "k=%d < min=1", k)
		}
		if k > cells.MaxDim+1 {
			return builderErrorf(methodSimplexBoundary, ErrBadFacet, "k=%d > max=%d", k, cells.MaxDim+1)
		}
		full := make(simplex, k+1)
		for i := range full {
			full[i] = i
		}
		facets := make([][]int, 0, k+1)
		for i := range full {
			facets = append(facets, full.without(i))
		}

		return addClosure(cx, cfg, methodSimplexBoundary, facets)
	}
}

// addClosure validates facets, generates every face and appends the cells to cx.
func addClosure(cx *cells.Complex, cfg builderConfig, method string, facets [][]int) error {
	if len(facets) == 0 {
		return builderErrorf(method, ErrTooFewVertices, "no facets")
	}

	var layers [cells.MaxDim + 1]map[string]simplex
	for d := range layers {
		layers[d] = make(map[string]simplex)
	}
	for fi, f := range facets {
		if len(f) == 0 || len(f) > cells.MaxDim+1 {
			return builderErrorf(method, ErrBadFacet, "facet %d has %d vertices", fi, len(f))
		}
		s := append(simplex(nil), f...)
		sort.Ints(s)
		for i := 1; i < len(s); i++ {
			if s[i] == s[i-1] {
				return builderErrorf(method, ErrBadFacet, "facet %d repeats vertex %d", fi, s[i])
			}
		}
		addFaces(layers[:], s)
	}

	// position of each generated simplex in the arena, per dimension
	var pos [cells.MaxDim + 1]map[string]int
	for d := 0; d <= cells.MaxDim; d++ {
		pos[d] = make(map[string]int, len(layers[d]))
		ordered := make([]simplex, 0, len(layers[d]))
		for _, s := range layers[d] {
			ordered = append(ordered, s)
		}
		slices.SortFunc(ordered, func(a, b simplex) int { return slices.Compare(a, b) })

		for _, s := range ordered {
			var bd []cells.Incidence
			if d > 0 {
				bd = make([]cells.Incidence, len(s))
				for i := range s {
					sign := 1
					if i%2 == 1 {
						sign = -1
					}
					bd[i] = cells.Incidence{Sign: sign, Face: pos[d-1][s.without(i).key()]}
				}
			}
			tag := cfg.tag(d, cx.Len(d))
			p, err := cx.AddCell(d, tag, bd...)
			if err != nil {
				return fmt.Errorf("%s: simplex [%s]: %v: %w", method, s.key(), err, ErrConstructFailed)
			}
			if cfg.inSubdomain(s) {
				if err = cx.SetSubdomain(d, p, true); err != nil {
					return fmt.Errorf("%s: %w", method, err)
				}
			}
			pos[d][s.key()] = p
		}
	}

	return nil
}

// addFaces records s and all of its non-empty faces.
func addFaces(layers []map[string]simplex, s simplex) {
	k := s.key()
	if _, seen := layers[len(s)-1][k]; seen {
		return
	}
	layers[len(s)-1][k] = s
	if len(s) == 1 {
		return
	}
	for i := range s {
		addFaces(layers, s.without(i))
	}
}
