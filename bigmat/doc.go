// SPDX-License-Identifier: MIT

// Package bigmat provides a dense matrix of arbitrary-precision integers.
//
// The bigmat package provides:
//
//   - Matrix: a row-major buffer of big.Int values with 1-based addressing
//     (row i, column j both start at 1, matching mathematical convention).
//   - Exact products (Mul, LeftMul, RightMul), transposition and submatrix
//     extraction with inclusive bounds.
//   - Unimodular elementary row/column operations used by normal-form solvers.
//
// No floating point is ever used; every entry has unbounded magnitude.
// Zero-row and zero-column shapes are legal: a boundary operator into an
// empty chain group is a 0×n matrix.
//
// Matrices are not safe for concurrent mutation. Distinct matrices share no
// storage, so independent matrices may be used from different goroutines.
package bigmat
