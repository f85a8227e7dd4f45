// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/homology/bigmat"
	"github.com/katalvlaran/homology/normalform"
)

// QuotientResult describes Z / B for an inclusion matrix J of B into Z.
//   - Transform: columns select quotient generators in the cycle basis;
//     nil when the quotient is trivial.
//   - Torsion:   Smith divisors > 1, in order; they belong to the first
//     len(Torsion) columns of Transform.
//   - Rank:      cols(J) - len(Torsion), the number of boundary directions
//     annihilated by the quotient.
type QuotientResult struct {
	Transform *bigmat.Matrix
	Torsion   []*big.Int
	Rank      int
}

// Quotient computes the quotient of the cycle lattice by the image of J.
// With Left·J·Right = S, generators are columns Rank+1..rows of Left⁻¹.
// A zero divisor among the first cols(J) means J is not injective and is
// reported as ErrStructuralInconsistency, as is cols(J) > rows(J).
func Quotient(j *bigmat.Matrix) (QuotientResult, error) {
	if j == nil {
		return QuotientResult{}, fmt.Errorf("%s: missing inclusion: %w", StepQuotient, ErrStructuralInconsistency)
	}
	if j.Cols() > j.Rows() {
		return QuotientResult{}, fmt.Errorf("%s: inclusion %dx%d not injective: %w",
			StepQuotient, j.Rows(), j.Cols(), ErrStructuralInconsistency)
	}
	f, err := normalform.Smith(j, true, false)
	if err != nil {
		return QuotientResult{}, fmt.Errorf("%s: %w", StepQuotient, err)
	}

	var res QuotientResult
	for i := 1; i <= j.Cols(); i++ {
		d := f.Canonical.Entry(i, i)
		switch {
		case d.Sign() == 0:
			return QuotientResult{}, fmt.Errorf("%s: zero divisor at %d: %w", StepQuotient, i, ErrStructuralInconsistency)
		case d.Cmp(big.NewInt(1)) > 0:
			res.Torsion = append(res.Torsion, new(big.Int).Set(d))
		}
	}
	res.Rank = j.Cols() - len(res.Torsion)
	if j.Rows()-res.Rank > 0 {
		if res.Transform, err = f.Left.ColumnRange(res.Rank+1, j.Rows()); err != nil {
			return QuotientResult{}, fmt.Errorf("%s: %w", StepQuotient, err)
		}
	}

	return res, nil
}
