// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/homology/cells"
)

// Term is one cell of a chain with its nonzero coefficient.
type Term struct {
	Cell        cells.Ref
	Tag         int
	Coefficient *big.Int
}

// Chain is a named integer combination of cells representing one generator.
// Torsion is its order: 1 for a free generator.
type Chain struct {
	Name    string
	Dim     int
	Torsion *big.Int
	Terms   []Term

	numElements int
}

// Len returns the number of cells with a nonzero coefficient.
func (ch *Chain) Len() int { return len(ch.Terms) }

// NumElements returns the number of mesh elements covered by the chain,
// counting each cell's image (a cell without one counts as one element).
func (ch *Chain) NumElements() int { return ch.numElements }

// ChainOption customizes a Chain as it is built.
type ChainOption func(*Chain)

// WithName overrides the default "H<dim> generator <i>" name.
func WithName(name string) ChainOption {
	return func(ch *Chain) {
		ch.Name = name
	}
}

// Chain builds generator i (1-based) of dimension dim from column i of the
// basis. Subdomain cells never appear since they carry no matrix index.
// Errors: ErrIndexOutOfRange.
func (c *ChainComplex) Chain(dim, i int, opts ...ChainOption) (*Chain, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.chain(dim, i, opts...)
}

func (c *ChainComplex) chain(dim, i int, opts ...ChainOption) (*Chain, error) {
	if dim < 0 || dim > maxDim || i < 1 || i > c.basisSize(dim) {
		return nil, fmt.Errorf("%s(%d,%d): %w", StepChain, dim, i, ErrIndexOutOfRange)
	}
	tor, err := c.torsionAt(dim, i)
	if err != nil {
		return nil, err
	}
	col, err := c.basis[dim].Column(i)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", StepChain, dim, i, err)
	}

	ch := &Chain{Name: fmt.Sprintf("H%d generator %d", dim, i), Dim: dim, Torsion: tor}
	for row, v := range col {
		if v.Sign() == 0 {
			continue
		}
		pos := c.cellAt[dim][row]
		cell, err := c.cx.Cell(dim, pos)
		if err != nil {
			return nil, fmt.Errorf("%s(%d,%d): %w", StepChain, dim, i, err)
		}
		ch.Terms = append(ch.Terms, Term{
			Cell:        cells.Ref{Dim: dim, Pos: pos},
			Tag:         cell.Tag,
			Coefficient: v,
		})
		ch.numElements += len(cell.Elements())
	}
	for _, opt := range opts {
		opt(ch)
	}

	return ch, nil
}

// Chains builds every generator of dimension dim in order.
func (c *ChainComplex) Chains(dim int) ([]*Chain, error) {
	if dim < 0 || dim > maxDim {
		return nil, fmt.Errorf("Chains(%d): %w", dim, ErrIndexOutOfRange)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := c.basisSize(dim)
	out := make([]*Chain, 0, n)
	for i := 1; i <= n; i++ {
		ch, err := c.chain(dim, i)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}

	return out, nil
}
