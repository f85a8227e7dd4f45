// SPDX-License-Identifier: MIT
// Package homology: sentinel errors.
// Callers branch with errors.Is; detection sites add the step and dimension.

package homology

import (
	"errors"

	"github.com/katalvlaran/homology/bigmat"
)

var (
	// ErrNilComplex indicates New was called with a nil complex.
	ErrNilComplex = errors.New("homology: nil complex")

	// ErrIndexOutOfRange indicates a dimension outside 0..3, or a generator
	// index outside 1..BasisSize(dim).
	ErrIndexOutOfRange = errors.New("homology: index out of range")

	// ErrIncidenceAnomaly indicates an accumulated boundary coefficient
	// outside {-1,0,1}. Returned only under PolicyReject.
	ErrIncidenceAnomaly = errors.New("homology: incidence outside {-1,0,1}")

	// ErrStructuralInconsistency indicates that Inclusion or Quotient could
	// not proceed: rank deficiency or a non-integral boundary expression.
	ErrStructuralInconsistency = errors.New("homology: structural inconsistency")

	// ErrDimensionMismatch aliases the matrix sentinel; it is fatal to a pass.
	ErrDimensionMismatch = bigmat.ErrDimensionMismatch
)

// Step names used in errors and diagnostics.
const (
	StepAssemble = "Assemble"
	StepKerCod   = "KerCod"
	StepInclude  = "Inclusion"
	StepQuotient = "Quotient"
	StepCompute  = "ComputeHomology"
	StepChain    = "Chain"
)

