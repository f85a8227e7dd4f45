// SPDX-License-Identifier: MIT
// Package bigmat: unimodular elementary operations.
//
// Each operation is invertible over the integers (determinant ±1), so any
// sequence of them applied to an identity matrix yields a unimodular
// transform. Indices are 1-based and must be valid: an invalid index is a
// programming error in the calling solver and panics.
//
// Inverse bookkeeping (used by normalform to maintain T and T⁻¹ together):
//   - AddRowMultiple(i, j, q) on T  ⇔ AddColMultiple(j, i, -q) on T⁻¹
//   - AddColMultiple(j, k, q) on T  ⇔ AddRowMultiple(k, j, -q) on T⁻¹
//   - swaps and negations are self-inverse (row op ⇔ column op).

package bigmat

import (
	"fmt"
	"math/big"
)

func (m *Matrix) mustRow(i int) {
	if i < 1 || i > m.r {
		panic(fmt.Sprintf("bigmat: row %d outside 1..%d", i, m.r))
	}
}

func (m *Matrix) mustCol(j int) {
	if j < 1 || j > m.c {
		panic(fmt.Sprintf("bigmat: column %d outside 1..%d", j, m.c))
	}
}

// AddRowMultiple performs row_dst += q·row_src.
func (m *Matrix) AddRowMultiple(dst, src int, q *big.Int) {
	m.mustRow(dst)
	m.mustRow(src)
	if q.Sign() == 0 {
		return
	}
	d, s := (dst-1)*m.c, (src-1)*m.c
	tmp := new(big.Int)
	for j := 0; j < m.c; j++ {
		if m.data[s+j].Sign() == 0 {
			continue
		}
		m.data[d+j].Add(m.data[d+j], tmp.Mul(q, m.data[s+j]))
	}
}

// SwapRows exchanges rows i and k.
func (m *Matrix) SwapRows(i, k int) {
	m.mustRow(i)
	m.mustRow(k)
	if i == k {
		return
	}
	a, b := (i-1)*m.c, (k-1)*m.c
	for j := 0; j < m.c; j++ {
		m.data[a+j], m.data[b+j] = m.data[b+j], m.data[a+j]
	}
}

// NegateRow multiplies row i by -1.
func (m *Matrix) NegateRow(i int) {
	m.mustRow(i)
	a := (i - 1) * m.c
	for j := 0; j < m.c; j++ {
		m.data[a+j].Neg(m.data[a+j])
	}
}

// AddColMultiple performs col_dst += q·col_src.
func (m *Matrix) AddColMultiple(dst, src int, q *big.Int) {
	m.mustCol(dst)
	m.mustCol(src)
	if q.Sign() == 0 {
		return
	}
	tmp := new(big.Int)
	for i := 0; i < m.r; i++ {
		s := m.data[i*m.c+(src-1)]
		if s.Sign() == 0 {
			continue
		}
		d := m.data[i*m.c+(dst-1)]
		d.Add(d, tmp.Mul(q, s))
	}
}

// SwapCols exchanges columns j and k.
func (m *Matrix) SwapCols(j, k int) {
	m.mustCol(j)
	m.mustCol(k)
	if j == k {
		return
	}
	for i := 0; i < m.r; i++ {
		a, b := i*m.c+(j-1), i*m.c+(k-1)
		m.data[a], m.data[b] = m.data[b], m.data[a]
	}
}

// NegateCol multiplies column j by -1.
func (m *Matrix) NegateCol(j int) {
	m.mustCol(j)
	for i := 0; i < m.r; i++ {
		v := m.data[i*m.c+(j-1)]
		v.Neg(v)
	}
}
