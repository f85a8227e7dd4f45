// SPDX-License-Identifier: MIT
// Package homology - read access to the latest ComputeHomology results.
// Before the first successful pass every dimension reads as trivial.
//
// BasisSize, Betti, TorsionCoefficients and Unresolved answer with a plain
// value and read a dimension outside 0..3 as trivial (0, nil, false); they
// are meant for loops over 0..3. Group, Basis, Torsion and Chain validate
// their arguments and report ErrIndexOutOfRange instead.

package homology

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/homology/bigmat"
)

// GroupSummary describes one homology group: Z^Rank ⊕ Z/t₁ ⊕ ... ⊕ Z/tₖ.
type GroupSummary struct {
	Dim        int
	Rank       int // free rank (Betti number)
	Torsion    []*big.Int
	Unresolved bool
}

// String renders the group, e.g. "H1 = Z^2 + Z/2".
func (g GroupSummary) String() string {
	if g.Unresolved {
		return fmt.Sprintf("H%d = unresolved", g.Dim)
	}
	var parts []string
	switch g.Rank {
	case 0:
	case 1:
		parts = append(parts, "Z")
	default:
		parts = append(parts, fmt.Sprintf("Z^%d", g.Rank))
	}
	for _, t := range g.Torsion {
		parts = append(parts, "Z/"+t.String())
	}
	if len(parts) == 0 {
		parts = append(parts, "0")
	}

	return fmt.Sprintf("H%d = %s", g.Dim, strings.Join(parts, " + "))
}

// Computed reports whether results are available and which mode produced them.
func (c *ChainComplex) Computed() (ok, dual bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.computed, c.dual
}

// BasisSize returns the number of generators of dimension dim; 0 for trivial,
// unresolved or out-of-range dimensions.
func (c *ChainComplex) BasisSize(dim int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.basisSize(dim)
}

func (c *ChainComplex) basisSize(dim int) int {
	if dim < 0 || dim > maxDim || c.basis[dim] == nil {
		return 0
	}

	return c.basis[dim].Cols()
}

// Basis returns a copy of the generator matrix of dimension dim: one column
// per generator, rows indexed like the columns of H_dim. nil means trivial.
// Errors: ErrIndexOutOfRange.
func (c *ChainComplex) Basis(dim int) (*bigmat.Matrix, error) {
	if dim < 0 || dim > maxDim {
		return nil, fmt.Errorf("Basis(%d): %w", dim, ErrIndexOutOfRange)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.basis[dim] == nil {
		return nil, nil
	}

	return c.basis[dim].Clone(), nil
}

// Torsion returns the order of generator i (1-based) of dimension dim:
// its torsion coefficient when i ≤ len(TorsionCoefficients(dim)), otherwise
// 1 for a free generator.
// Errors: ErrIndexOutOfRange, returned with 0, for dim outside 0..3 or i
// outside 1..BasisSize(dim).
func (c *ChainComplex) Torsion(dim, i int) (*big.Int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.torsionAt(dim, i)
}

func (c *ChainComplex) torsionAt(dim, i int) (*big.Int, error) {
	if dim < 0 || dim > maxDim || i < 1 || i > c.basisSize(dim) {
		return big.NewInt(0), fmt.Errorf("Torsion(%d,%d): %w", dim, i, ErrIndexOutOfRange)
	}
	if i <= len(c.torsion[dim]) {
		return new(big.Int).Set(c.torsion[dim][i-1]), nil
	}

	return big.NewInt(1), nil
}

// TorsionCoefficients returns copies of the torsion coefficients of dimension dim.
func (c *ChainComplex) TorsionCoefficients(dim int) []*big.Int {
	if dim < 0 || dim > maxDim {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneInts(c.torsion[dim])
}

// Unresolved reports whether dimension dim was abandoned after a structural
// inconsistency in the latest pass.
func (c *ChainComplex) Unresolved(dim int) bool {
	if dim < 0 || dim > maxDim {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.unresolved[dim]
}

// Betti returns the free rank of dimension dim.
func (c *ChainComplex) Betti(dim int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if dim < 0 || dim > maxDim {
		return 0
	}

	return c.basisSize(dim) - len(c.torsion[dim])
}

// Group returns the summary of dimension dim.
// Errors: ErrIndexOutOfRange for dim outside 0..3.
func (c *ChainComplex) Group(dim int) (GroupSummary, error) {
	if dim < 0 || dim > maxDim {
		return GroupSummary{}, fmt.Errorf("Group(%d): %w", dim, ErrIndexOutOfRange)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.group(dim), nil
}

// Summary returns one GroupSummary per dimension 0..3.
func (c *ChainComplex) Summary() []GroupSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]GroupSummary, 0, maxDim+1)
	for d := 0; d <= maxDim; d++ {
		out = append(out, c.group(d))
	}

	return out
}

func (c *ChainComplex) group(d int) GroupSummary {
	return GroupSummary{
		Dim:        d,
		Rank:       c.basisSize(d) - len(c.torsion[d]),
		Torsion:    cloneInts(c.torsion[d]),
		Unresolved: c.unresolved[d],
	}
}

func cloneInts(xs []*big.Int) []*big.Int {
	if len(xs) == 0 {
		return nil
	}
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = new(big.Int).Set(x)
	}

	return out
}
