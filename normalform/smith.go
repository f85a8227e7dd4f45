// SPDX-License-Identifier: MIT
// Package normalform - Smith normal form.
//
// Implementation:
//   - Stage 1: for t = 1..min(rows, cols), move the smallest nonzero entry of
//     the trailing block to (t,t).
//   - Stage 2: clear column t below and row t right of the pivot with
//     truncated-quotient row/column operations; whenever a remainder survives,
//     a strictly smaller pivot is pulled in and the sweep repeats.
//   - Stage 3: if some trailing entry is not divisible by the pivot, add its
//     row into row t and repeat Stage 2 (the gcd shrinks the pivot).
//   - Stage 4: normalize the pivot sign.
//
// Resulting shape:
//   - Canonical is diagonal with d1 | d2 | ... , all nonnegative, zeros last.
//
// Complexity:
//   - Polynomial in the matrix size with exact arithmetic; entries of the
//     transforms may grow during elimination.

package normalform

import (
	"math/big"

	"github.com/katalvlaran/homology/bigmat"
)

// Smith computes the Smith normal form of m.
// With both flags false the result satisfies Left·m·Right == Canonical;
// invertLeft / invertRight replace the corresponding transform by its inverse.
// m is not modified.
// Errors: ErrNilMatrix.
func Smith(m *bigmat.Matrix, invertLeft, invertRight bool) (*Form, error) {
	if m == nil {
		return nil, formErrorf(opSmith, ErrNilMatrix)
	}
	s := newReducer(m)
	rows, cols := m.Rows(), m.Cols()
	one := big.NewInt(1)
	rem := new(big.Int)

	for t := 1; t <= min(rows, cols); t++ {
		i0, j0 := s.smallestIn(t, t, rows, cols)
		if i0 == 0 {
			break // trailing block is zero
		}
		s.swapRows(t, i0)
		s.swapCols(t, j0)

		for {
			if !s.clearCross(t) {
				i0, j0 = s.smallestOnCross(t)
				s.swapRows(t, i0)
				s.swapCols(t, j0)
				continue
			}
			bad := s.indivisibleRow(t, rem)
			if bad == 0 {
				break
			}
			s.addRow(t, bad, one)
		}
		if s.a.Entry(t, t).Sign() < 0 {
			s.negateRow(t)
		}
	}

	return s.form(invertLeft, invertRight), nil
}

// smallestIn locates the nonzero entry of least magnitude in the block
// rows r0..rows × cols c0..cols; (0,0) when the block is zero.
func (s *reducer) smallestIn(r0, c0, rows, cols int) (int, int) {
	bi, bj := 0, 0
	for i := r0; i <= rows; i++ {
		for j := c0; j <= cols; j++ {
			v := s.a.Entry(i, j)
			if v.Sign() == 0 {
				continue
			}
			if bi == 0 || v.CmpAbs(s.a.Entry(bi, bj)) < 0 {
				bi, bj = i, j
			}
		}
	}

	return bi, bj
}

// smallestOnCross locates the least-magnitude nonzero entry on column t
// (rows ≥ t) or row t (columns ≥ t).
func (s *reducer) smallestOnCross(t int) (int, int) {
	bi, bj := s.smallestIn(t, t, s.a.Rows(), t)
	ri, rj := s.smallestIn(t, t, t, s.a.Cols())
	if bi == 0 || (ri != 0 && s.a.Entry(ri, rj).CmpAbs(s.a.Entry(bi, bj)) < 0) {
		return ri, rj
	}

	return bi, bj
}

// clearCross reduces column t below and row t right of the pivot. It reports
// whether every reduced entry became zero.
func (s *reducer) clearCross(t int) bool {
	clean := true
	pivot := s.a.Entry(t, t)
	for i := t + 1; i <= s.a.Rows(); i++ {
		if s.a.Entry(i, t).Sign() == 0 {
			continue
		}
		s.q.Quo(s.a.Entry(i, t), pivot)
		s.addRow(i, t, s.q.Neg(s.q))
		if s.a.Entry(i, t).Sign() != 0 {
			clean = false
		}
	}
	for j := t + 1; j <= s.a.Cols(); j++ {
		if s.a.Entry(t, j).Sign() == 0 {
			continue
		}
		s.q.Quo(s.a.Entry(t, j), pivot)
		s.addCol(j, t, s.q.Neg(s.q))
		if s.a.Entry(t, j).Sign() != 0 {
			clean = false
		}
	}

	return clean
}

// indivisibleRow returns the first row i > t holding an entry (j > t) that
// the pivot does not divide, or 0 when the divisor chain already holds.
func (s *reducer) indivisibleRow(t int, rem *big.Int) int {
	pivot := s.a.Entry(t, t)
	for i := t + 1; i <= s.a.Rows(); i++ {
		for j := t + 1; j <= s.a.Cols(); j++ {
			v := s.a.Entry(i, j)
			if v.Sign() == 0 {
				continue
			}
			if rem.Rem(v, pivot).Sign() != 0 {
				return i
			}
		}
	}

	return 0
}
