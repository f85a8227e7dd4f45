// SPDX-License-Identifier: MIT
// Package bigmat: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with an
// operation tag via %w); callers branch with errors.Is. Panics are reserved
// for the unchecked accessor Entry and the elementary operations, where an
// invalid index is a programming error.

package bigmat

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions, or a value slice whose length disagrees with rows*cols).
	ErrBadShape = errors.New("bigmat: invalid shape")

	// ErrOutOfRange indicates that a row or column index (or a submatrix
	// bound) lies outside the matrix extent.
	ErrOutOfRange = errors.New("bigmat: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Mul
	// where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("bigmat: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("bigmat: nil matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("bigmat: matrix is not square")
)

// Operation tags for uniform error wrapping.
const (
	opAt        = "At"
	opSet       = "Set"
	opColumn    = "Column"
	opSubmatrix = "Submatrix"
	opMul       = "Mul"
	opLeftMul   = "LeftMul"
	opRightMul  = "RightMul"
	opTranspose = "TransposeInPlace"
	opFromInt64 = "FromInt64"
	opFromRows  = "FromRows"
	opZero      = "Zero"
	opIdentity  = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps err with a tag and the offending coordinates.
func indexErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", tag, row, col, err)
}
