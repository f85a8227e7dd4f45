// SPDX-License-Identifier: MIT

// Package builder: tag schemes for generated cells.
package builder

import "fmt"

// TagFn computes the tag of the idx-th generated cell (0-based, counted over
// the whole complex) of dimension dim. It must be pure and injective in idx
// for a fixed dim.
type TagFn func(dim, idx int) int

// DefaultTagFn numbers cells 1, 2, 3, ... independently in each dimension.
func DefaultTagFn(_ int, idx int) int {
	return idx + 1
}

// StrideTagFn returns a scheme giving dim*stride + idx + 1, so tags stay unique
// across dimensions while each dimension holds fewer than stride cells.
// Panics if stride < 1.
func StrideTagFn(stride int) TagFn {
	if stride < 1 {
		panic(fmt.Sprintf("StrideTagFn: stride must be ≥ 1, got %d", stride))
	}
	return func(dim, idx int) int {
		return dim*stride + idx + 1
	}
}
