// SPDX-License-Identifier: MIT

// Package msh exports homology chains as element-indexed scalar fields in the
// MSH 2.0 ASCII format: one $ElementData block per chain, whose values are
// coefficient × element orientation for every mesh element a chain cell covers.
package msh
