// SPDX-License-Identifier: MIT
// Package homology - boundary-operator assembly.
//
// Contract:
//   • Non-subdomain cells of each dimension get dense 1-based indices in the
//     complex's enumeration order; subdomain cells get none.
//   • H_d has Size(d-1) rows and Size(d) columns; it is nil when Size(d) == 0
//     and has zero rows when Size(d-1) == 0. H_0 is 0×Size(0).
//   • Incidences towards subdomain faces are dropped.
//   • Assembled operators are never modified afterwards.

package homology

import (
	"fmt"
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/homology/bigmat"
	"github.com/katalvlaran/homology/cells"
)

const maxDim = cells.MaxDim

// ChainComplex holds the boundary operators of a cell complex and, after
// ComputeHomology, the per-dimension homology bases and torsion.
type ChainComplex struct {
	mu sync.RWMutex

	cx  *cells.Complex
	log *zap.Logger

	ops    [maxDim + 2]*bigmat.Matrix // H_0..H_4; H_4 is always nil
	index  [maxDim + 1][]int          // arena position → 1-based index, 0 if excluded
	cellAt [maxDim + 1][]int          // index-1 → arena position
	top    int                        // highest dimension with an operator, -1 if none

	diags     []Diagnostic
	assembled int // len(diags) after New

	computed   bool
	dual       bool
	basis      [maxDim + 1]*bigmat.Matrix
	torsion    [maxDim + 1][]*big.Int
	unresolved [maxDim + 1]bool
}

// New indexes the non-subdomain cells of cx and assembles H_0..H_3.
// cx is read during New only; later changes to it are not observed.
// Errors: ErrNilComplex; ErrIncidenceAnomaly under PolicyReject.
func New(cx *cells.Complex, opts ...Option) (*ChainComplex, error) {
	if cx == nil {
		return nil, fmt.Errorf("%s: %w", StepAssemble, ErrNilComplex)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &ChainComplex{cx: cx, log: o.Logger, top: -1}
	for d := 0; d <= maxDim; d++ {
		c.assignIndices(d)
	}
	for d := 0; d <= maxDim; d++ {
		if err := c.assemble(d, o.IncidencePolicy); err != nil {
			return nil, err
		}
		if c.ops[d] != nil {
			c.top = d
		}
	}
	c.assembled = len(c.diags)

	return c, nil
}

func (c *ChainComplex) assignIndices(d int) {
	n := c.cx.Len(d)
	c.index[d] = make([]int, n)
	c.cellAt[d] = make([]int, 0, c.cx.Size(d))
	for pos, cell := range c.cx.Cells(d) {
		if cell.Subdomain {
			continue
		}
		c.cellAt[d] = append(c.cellAt[d], pos)
		c.index[d][pos] = len(c.cellAt[d])
	}
}

// assemble builds H_d from the oriented boundaries of dimension-d cells.
func (c *ChainComplex) assemble(d int, policy IncidencePolicy) error {
	cols := len(c.cellAt[d])
	if cols == 0 {
		return nil
	}
	rows := 0
	if d > 0 {
		rows = len(c.cellAt[d-1])
	}
	h, err := bigmat.Zero(rows, cols)
	if err != nil {
		return fmt.Errorf("%s: H_%d: %w", StepAssemble, d, err)
	}
	if d > 0 {
		for j, pos := range c.cellAt[d] {
			cell, _ := c.cx.Cell(d, pos) // positions come from the same arena
			for _, inc := range cell.Boundary {
				i := c.index[d-1][inc.Face]
				if i == 0 {
					continue // face in subdomain
				}
				e := h.Entry(i, j+1)
				e.Add(e, big.NewInt(int64(inc.Sign)))
				if err = c.checkIncidence(d, i, j+1, e, policy); err != nil {
					return err
				}
			}
		}
	}
	c.ops[d] = h

	return nil
}

// checkIncidence applies the anomaly policy to the running sum e at (i, j).
// Each time the sum leaves {-1,0,1} it is reduced mod 2 on the spot, so later
// incidences of the same cell accumulate on the reduced value.
func (c *ChainComplex) checkIncidence(d, i, j int, e *big.Int, policy IncidencePolicy) error {
	if e.IsInt64() && e.Int64() >= -1 && e.Int64() <= 1 {
		return nil
	}
	if policy == PolicyReject {
		return fmt.Errorf("%s: H_%d[%d,%d] = %s: %w", StepAssemble, d, i, j, e, ErrIncidenceAnomaly)
	}
	c.diags = append(c.diags, Diagnostic{
		Kind: IncidenceAnomaly, Dim: d, Step: StepAssemble,
		Row: i, Col: j, Value: new(big.Int).Set(e),
	})
	c.log.Warn("incidence outside {-1,0,1}, reducing mod 2",
		zap.Int("dim", d), zap.Int("row", i), zap.Int("col", j),
		zap.String("value", e.String()))
	e.Rem(e, big.NewInt(2))

	return nil
}

// Dim returns the highest dimension with a boundary operator, -1 if the
// complex has no non-subdomain cells.
func (c *ChainComplex) Dim() int { return c.top }

// Boundary returns a copy of H_dim, or nil when dim has no non-subdomain cells.
// Errors: ErrIndexOutOfRange for dim outside 0..3.
func (c *ChainComplex) Boundary(dim int) (*bigmat.Matrix, error) {
	if dim < 0 || dim > maxDim {
		return nil, fmt.Errorf("Boundary(%d): %w", dim, ErrIndexOutOfRange)
	}
	if c.ops[dim] == nil {
		return nil, nil
	}

	return c.ops[dim].Clone(), nil
}

// Index returns the 1-based matrix index of the cell at (dim, pos), and false
// for subdomain cells or invalid addresses.
func (c *ChainComplex) Index(dim, pos int) (int, bool) {
	if dim < 0 || dim > maxDim || pos < 0 || pos >= len(c.index[dim]) {
		return 0, false
	}
	i := c.index[dim][pos]

	return i, i > 0
}

// CellAt maps a 1-based matrix index back to the arena reference.
// Errors: ErrIndexOutOfRange.
func (c *ChainComplex) CellAt(dim, index int) (cells.Ref, error) {
	if dim < 0 || dim > maxDim || index < 1 || index > len(c.cellAt[dim]) {
		return cells.Ref{}, fmt.Errorf("CellAt(%d,%d): %w", dim, index, ErrIndexOutOfRange)
	}

	return cells.Ref{Dim: dim, Pos: c.cellAt[dim][index-1]}, nil
}

// Size returns the number of indexed cells of dimension dim.
func (c *ChainComplex) Size(dim int) int {
	if dim < 0 || dim > maxDim {
		return 0
	}

	return len(c.cellAt[dim])
}

// Diagnostics returns a copy of every diagnostic recorded so far: assembly
// anomalies followed by those of the latest ComputeHomology pass.
func (c *ChainComplex) Diagnostics() []Diagnostic {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]Diagnostic(nil), c.diags...)
}

// Complex returns the cell complex the operators were assembled from.
func (c *ChainComplex) Complex() *cells.Complex { return c.cx }
