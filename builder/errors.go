// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached at the failure site with %w.
//   • Constructors never panic; option constructors panic on nonsense values.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, m, k) is below the
// minimum the constructor can triangulate.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadFacet indicates an empty facet, a facet of dimension above
// cells.MaxDim, or a facet repeating a vertex label.
var ErrBadFacet = errors.New("builder: invalid facet")

// ErrConstructFailed indicates a nil constructor or a rejected cell insertion
// (for instance a custom TagFn producing duplicate tags).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the method tag and wraps
// the sentinel for errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
