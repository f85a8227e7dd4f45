// SPDX-License-Identifier: MIT

// Package homology computes integer homology and cohomology of a cell complex
// of dimension at most 3.
//
// 🚀 What & Why
//
//	Given a cells.Complex, New assembles the boundary operators H_0..H_3 as
//	exact big-integer matrices (subdomain cells excluded, giving relative
//	homology). ComputeHomology then walks the dimensions once, combining three
//	pure steps:
//	  • KerCod    – kernel and image bases of one operator (Hermite form)
//	  • Inclusion – expresses boundaries in the cycle basis (Smith form)
//	  • Quotient  – splits cycles/boundaries into free and torsion parts
//	Results per dimension: a basis matrix whose columns are generators, their
//	torsion orders, and on-demand Chain values pairing coefficients with cells.
//
// ⚙️ Dual mode
//
//	ComputeHomology(true) works on transposed copies of the operators and walks
//	from the top dimension down, producing cohomology generators. The stored
//	operators are never modified, so both modes may be run on one instance.
//
// ⚠️ Diagnostics
//
//	An accumulated incidence outside {-1,0,1} is reduced modulo 2 (truncated)
//	and recorded as an IncidenceAnomaly, or rejected with ErrIncidenceAnomaly
//	under PolicyReject. A failed Inclusion or Quotient leaves that dimension
//	Unresolved with a StructuralInconsistency diagnostic; other dimensions are
//	unaffected.
//
// 🧵 Concurrency
//
//	Independent ChainComplex values share nothing and may be computed in
//	parallel. A single value serializes ComputeHomology against its readers.
package homology
