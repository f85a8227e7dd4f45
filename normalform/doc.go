// SPDX-License-Identifier: MIT

// Package normalform computes Hermite and Smith normal forms of integer
// matrices together with the unimodular transforms that realize them.
//
// Both factorizations return a Form{Canonical, Left, Right} such that
//
//	Left · M · Right = Canonical
//
// A caller that needs the inverse of a transform asks for it with the
// invertLeft / invertRight flags; the inverse is maintained alongside the
// transform during elimination, so no separate inversion is ever performed.
//
// Rank deficiency is never an error: a zero or singular input produces a
// canonical form whose diagonal exposes the deficiency. Callers inspect the
// diagonal and must not assume full rank.
//
// All arithmetic is exact (math/big); intermediate values may grow well
// beyond the final canonical entries.
package normalform
