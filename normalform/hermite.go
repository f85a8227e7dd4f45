// SPDX-License-Identifier: MIT
// Package normalform - Hermite normal form (column style).
//
// Implementation:
//   - Stage 1: walk rows top to bottom; for each row r, run a column-wise
//     Euclid over the not-yet-pivoted columns until a single nonzero entry
//     remains; it becomes the pivot of the next column.
//   - Stage 2: make the pivot positive and reduce the entries left of it into
//     [0, pivot) with column operations.
//   - Stage 3: permute rows so the pivot of column k lands on row k.
//
// Resulting shape (rank = number of pivots):
//   - Canonical[k][k] > 0 for k = 1..rank; Canonical[i][k] = 0 for i < k.
//   - Columns rank+1..cols are entirely zero, so Right's trailing columns span
//     the kernel and Left⁻¹·Canonical's leading columns span the image.
//
// Complexity:
//   - O(rows * cols²) elementary operations, each O(rows + cols) big-int updates.

package normalform

import (
	"github.com/katalvlaran/homology/bigmat"
)

// Hermite computes the column-style Hermite normal form of m.
// With both flags false the result satisfies Left·m·Right == Canonical;
// invertLeft / invertRight replace the corresponding transform by its inverse.
// Left is a permutation matrix; Right is unimodular. m is not modified.
// Errors: ErrNilMatrix.
func Hermite(m *bigmat.Matrix, invertLeft, invertRight bool) (*Form, error) {
	if m == nil {
		return nil, formErrorf(opHermite, ErrNilMatrix)
	}
	s := newReducer(m)
	rows, cols := m.Rows(), m.Cols()

	pivotRows := make([]int, 0, min(rows, cols))
	pc := 1 // next pivot column
	for r := 1; r <= rows && pc <= cols; r++ {
		if !s.gcdRowTail(r, pc) {
			continue // row vanishes on the free columns
		}
		if s.a.Entry(r, pc).Sign() < 0 {
			s.negateCol(pc)
		}
		pivot := s.a.Entry(r, pc)
		for j := 1; j < pc; j++ {
			if s.q.Div(s.a.Entry(r, j), pivot).Sign() != 0 {
				s.addCol(j, pc, s.q.Neg(s.q))
			}
		}
		pivotRows = append(pivotRows, r)
		pc++
	}
	s.permuteRows(pivotRows)

	return s.form(invertLeft, invertRight), nil
}

// gcdRowTail eliminates row r on columns pc..cols down to a single nonzero
// entry at column pc. It reports false when the row is already zero there.
func (s *reducer) gcdRowTail(r, pc int) bool {
	cols := s.a.Cols()
	for {
		best := 0
		for j := pc; j <= cols; j++ {
			v := s.a.Entry(r, j)
			if v.Sign() == 0 {
				continue
			}
			if best == 0 || v.CmpAbs(s.a.Entry(r, best)) < 0 {
				best = j
			}
		}
		if best == 0 {
			return false
		}
		s.swapCols(pc, best)

		done := true
		pivot := s.a.Entry(r, pc)
		for j := pc + 1; j <= cols; j++ {
			if s.a.Entry(r, j).Sign() == 0 {
				continue
			}
			s.q.Quo(s.a.Entry(r, j), pivot)
			s.addCol(j, pc, s.q.Neg(s.q))
			if s.a.Entry(r, j).Sign() != 0 {
				done = false
			}
		}
		if done {
			return true
		}
	}
}

// permuteRows moves the given rows (in order) to the top, keeping the
// remaining rows in their original relative order.
func (s *reducer) permuteRows(lead []int) {
	rows := s.a.Rows()
	isLead := make(map[int]bool, len(lead))
	order := make([]int, 0, rows)
	for _, r := range lead {
		isLead[r] = true
		order = append(order, r)
	}
	for r := 1; r <= rows; r++ {
		if !isLead[r] {
			order = append(order, r)
		}
	}

	// cur[k-1] is the original row currently stored at position k.
	cur := make([]int, rows)
	for k := range cur {
		cur[k] = k + 1
	}
	for t, want := range order {
		pos := t
		for cur[pos] != want {
			pos++
		}
		s.swapRows(t+1, pos+1)
		cur[t], cur[pos] = cur[pos], cur[t]
	}
}
