// SPDX-License-Identifier: MIT
// Package bigmat: exact products, transposition and submatrix extraction.
//
// Notes:
//   - Every kernel allocates fresh result cells; operands are never aliased.
//   - Products skip zero left-operand entries; normal-form transforms are
//     sparse in practice so this keeps the cubic loop cheap.

package bigmat

import (
	"fmt"
	"math/big"
)

// Mul returns a·b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(a.Rows * a.Cols * b.Cols) big-integer multiplications.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mul(a, b), nil
}

// mul computes a·b without validation.
func mul(a, b *Matrix) *Matrix {
	res := newMatrix(a.r, b.c)
	tmp := new(big.Int)
	var rowA, rowB, rowR int
	for i := 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			if av.Sign() == 0 {
				continue
			}
			rowB = k * b.c
			for j := 0; j < b.c; j++ {
				bv := b.data[rowB+j]
				if bv.Sign() == 0 {
					continue
				}
				res.data[rowR+j].Add(res.data[rowR+j], tmp.Mul(av, bv))
			}
		}
	}

	return res
}

// LeftMul replaces m with l·m. The shape of m becomes l.Rows × m.Cols.
// Errors: ErrNilMatrix, ErrDimensionMismatch (l.Cols != m.Rows).
func (m *Matrix) LeftMul(l *Matrix) error {
	if m == nil {
		return matrixErrorf(opLeftMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(l, m); err != nil {
		return matrixErrorf(opLeftMul, err)
	}
	*m = *mul(l, m)

	return nil
}

// RightMul replaces m with m·r. The shape of m becomes m.Rows × r.Cols.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m.Cols != r.Rows).
func (m *Matrix) RightMul(r *Matrix) error {
	if m == nil {
		return matrixErrorf(opRightMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(m, r); err != nil {
		return matrixErrorf(opRightMul, err)
	}
	*m = *mul(m, r)

	return nil
}

// Transpose returns a new cols×rows matrix with entries mirrored.
func (m *Matrix) Transpose() *Matrix {
	res := newMatrix(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i].Set(m.data[i*m.c+j])
		}
	}

	return res
}

// TransposeInPlace transposes m, swapping its shape. Cells are moved, not copied.
func (m *Matrix) TransposeInPlace() error {
	if m == nil {
		return matrixErrorf(opTranspose, ErrNilMatrix)
	}
	moved := make([]*big.Int, len(m.data))
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			moved[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	m.r, m.c, m.data = m.c, m.r, moved

	return nil
}

// Submatrix copies rows r0..r1 and columns c0..c1 (inclusive, 1-based).
// An empty range is expressed as hi == lo-1 (e.g. Submatrix(1, 1, 0, k) on a
// 0-row matrix), which yields a zero-sized result.
// Errors: ErrOutOfRange when a bound exceeds the matrix extent.
// Complexity: O((r1-r0+1) * (c1-c0+1)).
func (m *Matrix) Submatrix(r0, c0, r1, c1 int) (*Matrix, error) {
	if !validateRange(r0, r1, m.r) || !validateRange(c0, c1, m.c) {
		return nil, matrixErrorf(opSubmatrix,
			fmt.Errorf("rows %d..%d, cols %d..%d of %dx%d: %w", r0, r1, c0, c1, m.r, m.c, ErrOutOfRange))
	}
	rows, cols := r1-r0+1, c1-c0+1
	res := newMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		src := (r0-1+i)*m.c + (c0 - 1)
		for j := 0; j < cols; j++ {
			res.data[i*cols+j].Set(m.data[src+j])
		}
	}

	return res, nil
}

// ColumnRange copies columns c0..c1 (inclusive, 1-based) across all rows.
func (m *Matrix) ColumnRange(c0, c1 int) (*Matrix, error) {
	return m.Submatrix(1, c0, m.r, c1)
}

// RowRange copies rows r0..r1 (inclusive, 1-based) across all columns.
func (m *Matrix) RowRange(r0, r1 int) (*Matrix, error) {
	return m.Submatrix(r0, 1, r1, m.c)
}
