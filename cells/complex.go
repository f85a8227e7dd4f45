// SPDX-License-Identifier: MIT
// Package cells - arena-backed complex.
//
// Contract:
//   • AddCell validates dimension, signs and face references before insertion;
//     a rejected call leaves the complex unchanged.
//   • Positions are 0-based and never reused.
//   • Cells/Cell return copies; the arena is mutated only through Complex methods.

package cells

import "fmt"

const (
	opAddCell      = "AddCell"
	opSetSubdomain = "SetSubdomain"
	opSetImage     = "SetImage"
	opCell         = "Cell"
)

// Complex is a cell complex stored as one arena per dimension.
type Complex struct {
	arena [MaxDim + 1][]Cell
	byTag [MaxDim + 1]map[int]int // tag → position
}

// New returns an empty complex.
func New() *Complex {
	cx := &Complex{}
	for d := range cx.byTag {
		cx.byTag[d] = make(map[int]int)
	}

	return cx
}

// AddCell appends a cell of dimension dim with the given tag and oriented
// boundary, returning its position. Dimension-0 cells must have no boundary.
// Errors: ErrBadDimension, ErrDuplicateTag, ErrBadSign, ErrUnknownFace.
func (cx *Complex) AddCell(dim, tag int, boundary ...Incidence) (int, error) {
	if dim < 0 || dim > MaxDim {
		return 0, cellsErrorf(opAddCell, fmt.Errorf("dim %d: %w", dim, ErrBadDimension))
	}
	if _, dup := cx.byTag[dim][tag]; dup {
		return 0, cellsErrorf(opAddCell, fmt.Errorf("dim %d tag %d: %w", dim, tag, ErrDuplicateTag))
	}
	if dim == 0 && len(boundary) > 0 {
		return 0, cellsErrorf(opAddCell, fmt.Errorf("vertex %d has a boundary: %w", tag, ErrUnknownFace))
	}
	for _, inc := range boundary {
		if inc.Sign != 1 && inc.Sign != -1 {
			return 0, cellsErrorf(opAddCell, fmt.Errorf("dim %d tag %d sign %d: %w", dim, tag, inc.Sign, ErrBadSign))
		}
		if inc.Face < 0 || inc.Face >= len(cx.arena[dim-1]) {
			return 0, cellsErrorf(opAddCell, fmt.Errorf("dim %d tag %d face %d: %w", dim, tag, inc.Face, ErrUnknownFace))
		}
	}

	bd := make([]Incidence, len(boundary))
	copy(bd, boundary)
	pos := len(cx.arena[dim])
	cx.arena[dim] = append(cx.arena[dim], Cell{Dim: dim, Tag: tag, Boundary: bd})
	cx.byTag[dim][tag] = pos

	return pos, nil
}

// SetSubdomain flags or unflags the cell at (dim, pos) as a subdomain cell.
func (cx *Complex) SetSubdomain(dim, pos int, in bool) error {
	c, err := cx.cell(opSetSubdomain, dim, pos)
	if err != nil {
		return err
	}
	c.Subdomain = in

	return nil
}

// SetImage records the mesh elements covered by the cell at (dim, pos).
func (cx *Complex) SetImage(dim, pos int, image ...Element) error {
	c, err := cx.cell(opSetImage, dim, pos)
	if err != nil {
		return err
	}
	c.Image = append([]Element(nil), image...)

	return nil
}

// cell returns a pointer into the arena after validating (dim, pos).
func (cx *Complex) cell(op string, dim, pos int) (*Cell, error) {
	if dim < 0 || dim > MaxDim {
		return nil, cellsErrorf(op, fmt.Errorf("dim %d: %w", dim, ErrBadDimension))
	}
	if pos < 0 || pos >= len(cx.arena[dim]) {
		return nil, cellsErrorf(op, fmt.Errorf("dim %d pos %d: %w", dim, pos, ErrOutOfRange))
	}

	return &cx.arena[dim][pos], nil
}

// Cell returns a copy of the cell at (dim, pos).
func (cx *Complex) Cell(dim, pos int) (Cell, error) {
	c, err := cx.cell(opCell, dim, pos)
	if err != nil {
		return Cell{}, err
	}

	return cloneCell(*c), nil
}

// Cells returns copies of all cells of dimension dim in enumeration order.
// An out-of-range dimension yields nil.
func (cx *Complex) Cells(dim int) []Cell {
	if dim < 0 || dim > MaxDim {
		return nil
	}
	out := make([]Cell, len(cx.arena[dim]))
	for k, c := range cx.arena[dim] {
		out[k] = cloneCell(c)
	}

	return out
}

// Len returns the number of cells of dimension dim, subdomain cells included.
func (cx *Complex) Len(dim int) int {
	if dim < 0 || dim > MaxDim {
		return 0
	}

	return len(cx.arena[dim])
}

// Size returns the number of non-subdomain cells of dimension dim.
func (cx *Complex) Size(dim int) int {
	if dim < 0 || dim > MaxDim {
		return 0
	}
	n := 0
	for _, c := range cx.arena[dim] {
		if !c.Subdomain {
			n++
		}
	}

	return n
}

// Lookup returns the position of the cell of dimension dim carrying tag.
func (cx *Complex) Lookup(dim, tag int) (int, bool) {
	if dim < 0 || dim > MaxDim {
		return 0, false
	}
	pos, ok := cx.byTag[dim][tag]

	return pos, ok
}

// Dim returns the highest dimension holding at least one cell, or -1 for an
// empty complex.
func (cx *Complex) Dim() int {
	for d := MaxDim; d >= 0; d-- {
		if len(cx.arena[d]) > 0 {
			return d
		}
	}

	return -1
}

func cloneCell(c Cell) Cell {
	c.Boundary = append([]Incidence(nil), c.Boundary...)
	c.Image = append([]Element(nil), c.Image...)

	return c
}
