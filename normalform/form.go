// SPDX-License-Identifier: MIT
// Package normalform: factorization result and shared elimination state.

package normalform

import (
	"math/big"

	"github.com/katalvlaran/homology/bigmat"
)

// Form is the result of a normal-form factorization.
//   - Canonical: the normal form of the input.
//   - Left, Right: unimodular transforms with Left·M·Right = Canonical,
//     each replaced by its inverse when the corresponding flag was set.
type Form struct {
	Canonical *bigmat.Matrix
	Left      *bigmat.Matrix
	Right     *bigmat.Matrix

	// LeftInverted / RightInverted record which transforms were inverted.
	LeftInverted  bool
	RightInverted bool
}

// Rank counts leading diagonal entries of Canonical that are nonzero,
// scanning k = 1..min(rows, cols) and stopping at the first zero.
// Arithmetic is exact, so zero detection is the sole criterion.
func (f *Form) Rank() int {
	c := f.Canonical
	n := min(c.Rows(), c.Cols())
	rank := 0
	for rank < n && c.Entry(rank+1, rank+1).Sign() != 0 {
		rank++
	}

	return rank
}

// reducer carries a working copy of the input plus both transforms and their
// inverses. Every elementary operation updates all five matrices so that
// l·m·r == a and l·lInv == I, r·rInv == I hold after each step.
type reducer struct {
	a    *bigmat.Matrix // working copy, becomes the canonical form
	l    *bigmat.Matrix // accumulated row operations
	lInv *bigmat.Matrix
	r    *bigmat.Matrix // accumulated column operations
	rInv *bigmat.Matrix

	q   *big.Int // scratch quotient
	neg *big.Int // scratch negated quotient
}

func newReducer(m *bigmat.Matrix) *reducer {
	rows, cols := m.Rows(), m.Cols()
	l, _ := bigmat.Identity(rows) // sizes are non-negative: cannot fail
	lInv, _ := bigmat.Identity(rows)
	r, _ := bigmat.Identity(cols)
	rInv, _ := bigmat.Identity(cols)

	return &reducer{
		a: m.Clone(), l: l, lInv: lInv, r: r, rInv: rInv,
		q: new(big.Int), neg: new(big.Int),
	}
}

// addRow performs row_i += q·row_j on a and l; lInv gets col_j -= q·col_i.
func (s *reducer) addRow(i, j int, q *big.Int) {
	s.a.AddRowMultiple(i, j, q)
	s.l.AddRowMultiple(i, j, q)
	s.lInv.AddColMultiple(j, i, s.neg.Neg(q))
}

func (s *reducer) swapRows(i, j int) {
	if i == j {
		return
	}
	s.a.SwapRows(i, j)
	s.l.SwapRows(i, j)
	s.lInv.SwapCols(i, j)
}

func (s *reducer) negateRow(i int) {
	s.a.NegateRow(i)
	s.l.NegateRow(i)
	s.lInv.NegateCol(i)
}

// addCol performs col_j += q·col_k on a and r; rInv gets row_k -= q·row_j.
func (s *reducer) addCol(j, k int, q *big.Int) {
	s.a.AddColMultiple(j, k, q)
	s.r.AddColMultiple(j, k, q)
	s.rInv.AddRowMultiple(k, j, s.neg.Neg(q))
}

func (s *reducer) swapCols(j, k int) {
	if j == k {
		return
	}
	s.a.SwapCols(j, k)
	s.r.SwapCols(j, k)
	s.rInv.SwapRows(j, k)
}

func (s *reducer) negateCol(j int) {
	s.a.NegateCol(j)
	s.r.NegateCol(j)
	s.rInv.NegateRow(j)
}

// form packages the state according to the inversion flags.
func (s *reducer) form(invertLeft, invertRight bool) *Form {
	f := &Form{Canonical: s.a, Left: s.l, Right: s.r, LeftInverted: invertLeft, RightInverted: invertRight}
	if invertLeft {
		f.Left = s.lInv
	}
	if invertRight {
		f.Right = s.rInv
	}

	return f
}
