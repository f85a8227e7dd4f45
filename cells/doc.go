// SPDX-License-Identifier: MIT

// Package cells models a finite oriented cell complex of dimension 0..3.
//
// Cells live in per-dimension arenas and are addressed by (dimension,
// position). A cell's oriented boundary is a list of (sign, face position)
// pairs pointing into the arena one dimension below, so no cell owns another
// and the complex has no reference cycles.
//
// Enumeration order is insertion order: deterministic and stable across any
// number of passes, which chain-complex assembly relies on when it assigns
// dense matrix indices and then fills incidences.
//
// Cells flagged as subdomain cells stay in the complex (they still carry mesh
// images for export) but are left out of chain-complex assembly; they model a
// relative-homology boundary condition.
//
// A Complex is built single-threaded and is read-only afterwards; concurrent
// readers are safe once construction has finished.
package cells
