// SPDX-License-Identifier: MIT

// Package builder assembles deterministic cell complexes for tests, examples
// and the CLI, using the same functional-options style throughout.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildComplex:   resolves options once and runs constructors in order.
//     – Constructor:    a closure that appends cells to a *cells.Complex.
//   - Simplicial constructors (one disjoint piece per call):
//     – Simplices:       closure of arbitrary facets given as vertex labels.
//     – Polygon:         boundary of an n-gon (a circle).
//     – Simplex:         a solid k-simplex.
//     – SimplexBoundary: the boundary sphere of a k-simplex.
//     – ProjectivePlane: the 6-vertex triangulation of RP².
//     – Torus, KleinBottle: n×m triangulated grids with identified sides.
//   - Tag schemes (TagFn implementations):
//     – DefaultTagFn:    1-based running index per dimension.
//     – StrideTagFn:     dim*stride + index + 1, unique across dimensions.
//   - Options:
//     – WithTagOffset, WithTagFn, WithSubdomain.
//
// Guarantees:
//
//   - Determinism: equal inputs, options and constructor order give equal
//     complexes, cell for cell.
//   - Simplices are emitted per dimension in lexicographic order of their
//     sorted vertex labels; the face obtained by dropping the i-th vertex
//     carries sign (-1)^i.
//   - Fast-fail on meaningless option values via panics in option constructors;
//     constructors return sentinel errors only.
package builder
