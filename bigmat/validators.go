// SPDX-License-Identifier: MIT
// Package: bigmat
//
// Purpose:
//   - Single source of truth for shape/nil checks used by the kernels.
//   - Return plain sentinels so call sites can wrap uniformly with their op tag.

package bigmat

import "fmt"

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateMulCompatible ensures a·b is defined (a.Cols == b.Rows).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is square.
func ValidateSquare(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// validateRange checks an inclusive 1-based range lo..hi against extent n.
// hi == lo-1 denotes the empty range and is accepted for lo in 1..n+1.
func validateRange(lo, hi, n int) bool {
	if hi == lo-1 {
		return lo >= 1 && lo <= n+1
	}

	return lo >= 1 && hi >= lo && hi <= n
}
