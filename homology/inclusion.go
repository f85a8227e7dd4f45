// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/homology/bigmat"
	"github.com/katalvlaran/homology/normalform"
)

// Inclusion expresses the columns of b (boundaries) as integer combinations
// of the columns of z (cycles) and returns the coefficient matrix J, so that
// z·J == b. Both arguments must embed injectively (rows ≥ cols).
//
// With Left·z·Right = S (Smith), z·J = b reduces to S·(Right⁻¹·J) = Left·b.
// Every one of the first cols(z) diagonal entries of S must be nonzero, rows
// of Left·b beyond cols(z) must vanish, and each remaining entry must be
// divisible by its row's diagonal entry. Any violation is reported as
// ErrStructuralInconsistency; it means b is not inside the span of z, which
// happens when the complex's boundary of a boundary is not zero.
func Inclusion(z, b *bigmat.Matrix) (*bigmat.Matrix, error) {
	if z == nil || b == nil {
		return nil, fmt.Errorf("%s: missing basis: %w", StepInclude, ErrStructuralInconsistency)
	}
	if z.Rows() < z.Cols() || b.Rows() < b.Cols() {
		return nil, fmt.Errorf("%s: z %dx%d, b %dx%d not injective: %w",
			StepInclude, z.Rows(), z.Cols(), b.Rows(), b.Cols(), ErrStructuralInconsistency)
	}
	if z.Rows() != b.Rows() {
		return nil, fmt.Errorf("%s: z has %d rows, b has %d: %w", StepInclude, z.Rows(), b.Rows(), ErrDimensionMismatch)
	}

	f, err := normalform.Smith(z, false, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StepInclude, err)
	}
	k := z.Cols()
	for i := 1; i <= k; i++ {
		if f.Canonical.Entry(i, i).Sign() == 0 {
			return nil, fmt.Errorf("%s: cycle basis rank-deficient at %d: %w", StepInclude, i, ErrStructuralInconsistency)
		}
	}

	lb, err := bigmat.Mul(f.Left, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StepInclude, err)
	}
	for i := k + 1; i <= lb.Rows(); i++ {
		for j := 1; j <= lb.Cols(); j++ {
			if lb.Entry(i, j).Sign() != 0 {
				return nil, fmt.Errorf("%s: boundary leaves cycle span at row %d: %w", StepInclude, i, ErrStructuralInconsistency)
			}
		}
	}

	y, err := lb.RowRange(1, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StepInclude, err)
	}
	rem := new(big.Int)
	for i := 1; i <= k; i++ {
		d := f.Canonical.Entry(i, i)
		for j := 1; j <= y.Cols(); j++ {
			e := y.Entry(i, j)
			e.QuoRem(e, d, rem)
			if rem.Sign() != 0 {
				return nil, fmt.Errorf("%s: entry (%d,%d) not divisible by %s: %w", StepInclude, i, j, d, ErrStructuralInconsistency)
			}
		}
	}
	if err = y.LeftMul(f.Right); err != nil {
		return nil, fmt.Errorf("%s: %w", StepInclude, err)
	}

	return y, nil
}
