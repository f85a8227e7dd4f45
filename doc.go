// SPDX-License-Identifier: MIT

// Package homology is the module root: an exact, arbitrary-precision engine
// for the integer homology of small cell complexes (dimension ≤ 3).
//
// 🚀 What is in here?
//
//	bigmat/      - dense math/big matrices with 1-based addressing
//	normalform/  - Hermite and Smith normal forms with tracked transforms
//	cells/       - arena-backed cell complexes and their YAML documents
//	builder/     - deterministic simplicial fixtures (spheres, RP², torus, Klein bottle)
//	homology/    - boundary operators, KerCod/Inclusion/Quotient, generators and torsion
//	msh/         - export of generator chains as MSH 2.0 element data
//	cmd/homology - command-line front end
//
// ✨ Quick start
//
//	cx, _ := builder.BuildComplex(nil, builder.Torus(3, 3))
//	cc, _ := homology.New(cx)
//	_ = cc.ComputeHomology(false)
//	for _, g := range cc.Summary() {
//		fmt.Println(g) // H0 = Z, H1 = Z^2, H2 = Z, H3 = 0
//	}
//
// All arithmetic is exact; rank decisions never involve tolerances.
package homology
