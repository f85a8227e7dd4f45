// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"math/big"
)

// DiagnosticKind classifies a recoverable problem found while assembling or
// computing.
type DiagnosticKind int

const (
	// IncidenceAnomaly: a boundary entry left {-1,0,1} and was reduced mod 2.
	IncidenceAnomaly DiagnosticKind = iota + 1

	// StructuralInconsistency: a dimension was left unresolved.
	StructuralInconsistency
)

func (k DiagnosticKind) String() string {
	switch k {
	case IncidenceAnomaly:
		return "IncidenceAnomaly"
	case StructuralInconsistency:
		return "StructuralInconsistency"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is one warning-level record. Row, Col and Value are set for
// incidence anomalies (1-based matrix address of H_Dim, running sum at the
// moment it left the range);
// Err carries the wrapped cause for structural ones.
type Diagnostic struct {
	Kind DiagnosticKind
	Dim  int
	Step string
	Dual bool

	Row, Col int
	Value    *big.Int

	Err error
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case IncidenceAnomaly:
		return fmt.Sprintf("%s: H_%d[%d,%d] = %s", d.Kind, d.Dim, d.Row, d.Col, d.Value)
	default:
		return fmt.Sprintf("%s: dim %d (dual=%t): %v", d.Kind, d.Dim, d.Dual, d.Err)
	}
}
