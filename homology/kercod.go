// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"

	"github.com/katalvlaran/homology/bigmat"
	"github.com/katalvlaran/homology/normalform"
)

// KernelCodomain holds the bases extracted from one boundary operator.
//   - Kernel:   columns span ker(h) in domain coordinates; nil when h is injective.
//   - Codomain: columns span im(h) in codomain coordinates; nil when h == 0.
//   - Rank:     rank of h.
type KernelCodomain struct {
	Kernel   *bigmat.Matrix
	Codomain *bigmat.Matrix
	Rank     int
}

// KerCod computes kernel and image bases of h from its Hermite form.
// With Left·h·Right = Canonical, the trailing cols-rank columns of Right span
// the kernel and Left⁻¹·Canonical[:, 1..rank] spans the image.
// h is not modified.
func KerCod(h *bigmat.Matrix) (KernelCodomain, error) {
	if h == nil {
		return KernelCodomain{}, fmt.Errorf("%s: %w", StepKerCod, bigmat.ErrNilMatrix)
	}
	f, err := normalform.Hermite(h, true, false)
	if err != nil {
		return KernelCodomain{}, fmt.Errorf("%s: %w", StepKerCod, err)
	}
	res := KernelCodomain{Rank: f.Rank()}

	if res.Rank < h.Cols() {
		if res.Kernel, err = f.Right.ColumnRange(res.Rank+1, h.Cols()); err != nil {
			return KernelCodomain{}, fmt.Errorf("%s: kernel: %w", StepKerCod, err)
		}
	}
	if res.Rank > 0 {
		img, err := f.Canonical.ColumnRange(1, res.Rank)
		if err != nil {
			return KernelCodomain{}, fmt.Errorf("%s: image: %w", StepKerCod, err)
		}
		if err = img.LeftMul(f.Left); err != nil {
			return KernelCodomain{}, fmt.Errorf("%s: image: %w", StepKerCod, err)
		}
		res.Codomain = img
	}

	return res, nil
}
