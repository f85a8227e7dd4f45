// SPDX-License-Identifier: MIT

package cells

// MaxDim is the highest supported cell dimension.
const MaxDim = 3

// Incidence is one oriented boundary pair: Sign ∈ {-1,+1} and the position of
// the face in the arena of dimension Dim-1.
type Incidence struct {
	Sign int
	Face int
}

// Element is one mesh element covered by a cell, with the local orientation
// multiplier of the cell ↔ element correspondence.
type Element struct {
	Num  int
	Sign int
}

// Ref addresses a cell by dimension and arena position (0-based).
type Ref struct {
	Dim int
	Pos int
}

// Cell is an oriented cell of the complex.
type Cell struct {
	Dim       int
	Tag       int  // application-visible id, unique per dimension
	Subdomain bool // excluded from chain-complex assembly
	Boundary  []Incidence
	Image     []Element // mesh elements represented by this cell; may be empty
}

// Elements returns the mesh image of c; a cell without an explicit image
// stands for the single element numbered by its tag with multiplier +1.
func (c Cell) Elements() []Element {
	if len(c.Image) == 0 {
		return []Element{{Num: c.Tag, Sign: 1}}
	}
	out := make([]Element, len(c.Image))
	copy(out, c.Image)

	return out
}
