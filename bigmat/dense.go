// SPDX-License-Identifier: MIT

// Package bigmat - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of *big.Int with the explicit offset formula
//     (i-1)*cols + (j-1) for 1-based coordinates.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism: fixed loop orders, no map iteration.
//
// Complexity quicksheet:
//   - Zero/Identity: O(r*c) allocations; At/Set: O(size of entry); Clone: O(r*c).

package bigmat

import (
	"fmt"
	"math/big"
	"strings"
)

// Formatting literals.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense row-major matrix of arbitrary-precision integers.
//   - r,c hold dimensions (either may be zero).
//   - data holds r*c distinct *big.Int cells; no two cells alias.
type Matrix struct {
	r, c int
	data []*big.Int
}

var _ fmt.Stringer = (*Matrix)(nil)

// Zero creates a rows×cols matrix filled with zeros.
// Zero-sized shapes (rows==0 or cols==0) are legal; negative sizes fail with ErrBadShape.
// Complexity: O(rows*cols).
func Zero(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opZero, ErrBadShape)
	}

	return newMatrix(rows, cols), nil
}

// Identity creates the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Matrix, error) {
	if n < 0 {
		return nil, matrixErrorf(opIdentity, ErrBadShape)
	}
	m := newMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// FromInt64 builds a rows×cols matrix from row-major values.
// Errors: ErrBadShape when a size is negative or len(values) != rows*cols.
func FromInt64(rows, cols int, values []int64) (*Matrix, error) {
	if rows < 0 || cols < 0 || len(values) != rows*cols {
		return nil, matrixErrorf(opFromInt64, ErrBadShape)
	}
	m := newMatrix(rows, cols)
	for k, v := range values {
		m.data[k].SetInt64(v)
	}

	return m, nil
}

// FromRows builds a matrix from a slice of equally long rows.
// An empty slice yields a 0×0 matrix.
// Errors: ErrBadShape on ragged input.
func FromRows(rows [][]int64) (*Matrix, error) {
	if len(rows) == 0 {
		return newMatrix(0, 0), nil
	}
	cols := len(rows[0])
	flat := make([]int64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i+1, len(row), cols, ErrBadShape))
		}
		flat = append(flat, row...)
	}

	return FromInt64(len(rows), cols, flat)
}

// newMatrix allocates a zero matrix without validation (callers ensure r,c >= 0).
func newMatrix(r, c int) *Matrix {
	data := make([]*big.Int, r*c)
	for k := range data {
		data[k] = new(big.Int)
	}

	return &Matrix{r: r, c: c, data: data}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// offset computes the flat offset for 1-based (i, j) or reports ErrOutOfRange.
func (m *Matrix) offset(tag string, i, j int) (int, error) {
	if i < 1 || i > m.r || j < 1 || j > m.c {
		return 0, indexErrorf(tag, i, j, ErrOutOfRange)
	}

	return (i-1)*m.c + (j - 1), nil
}

// At returns a copy of the entry at row i, column j (1-based).
// Errors: ErrOutOfRange.
func (m *Matrix) At(i, j int) (*big.Int, error) {
	k, err := m.offset(opAt, i, j)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(m.data[k]), nil
}

// Set stores a copy of v at row i, column j (1-based).
// Errors: ErrOutOfRange, ErrNilMatrix when v is nil.
func (m *Matrix) Set(i, j int, v *big.Int) error {
	k, err := m.offset(opSet, i, j)
	if err != nil {
		return err
	}
	if v == nil {
		return indexErrorf(opSet, i, j, ErrNilMatrix)
	}
	m.data[k].Set(v)

	return nil
}

// SetInt64 stores v at row i, column j (1-based).
func (m *Matrix) SetInt64(i, j int, v int64) error {
	k, err := m.offset(opSet, i, j)
	if err != nil {
		return err
	}
	m.data[k].SetInt64(v)

	return nil
}

// Entry returns the live cell at (i, j). Mutating the returned value mutates
// the matrix. It panics when (i, j) is outside the matrix: hot loops in the
// normal-form solvers validate their ranges once instead of per access.
func (m *Matrix) Entry(i, j int) *big.Int {
	if i < 1 || i > m.r || j < 1 || j > m.c {
		panic(fmt.Sprintf("bigmat: Entry(%d,%d) outside %dx%d", i, j, m.r, m.c))
	}

	return m.data[(i-1)*m.c+(j-1)]
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := newMatrix(m.r, m.c)
	for k, v := range m.data {
		out.data[k].Set(v)
	}

	return out
}

// Equal reports whether a and b have the same shape and entries.
func (m *Matrix) Equal(b *Matrix) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for k, v := range m.data {
		if v.Cmp(b.data[k]) != 0 {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry is zero (vacuously true for empty shapes).
func (m *Matrix) IsZero() bool {
	for _, v := range m.data {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// Diagonal returns copies of the entries (k,k) for k = 1..min(rows, cols).
func (m *Matrix) Diagonal() []*big.Int {
	n := min(m.r, m.c)
	out := make([]*big.Int, n)
	for k := 0; k < n; k++ {
		out[k] = new(big.Int).Set(m.data[k*m.c+k])
	}

	return out
}

// Column returns copies of the entries of column j (1-based), top to bottom.
// Errors: ErrOutOfRange.
func (m *Matrix) Column(j int) ([]*big.Int, error) {
	if j < 1 || j > m.c {
		return nil, indexErrorf(opColumn, 1, j, ErrOutOfRange)
	}
	out := make([]*big.Int, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = new(big.Int).Set(m.data[i*m.c+(j-1)])
	}

	return out, nil
}

// String renders one bracketed row per line, e.g. "[1, -2]\n[0, 3]\n".
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
