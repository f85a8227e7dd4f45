// SPDX-License-Identifier: MIT
// Package normalform: sentinel errors.

package normalform

import (
	"errors"
	"fmt"
)

// ErrNilMatrix indicates that a nil input matrix was passed to a solver.
var ErrNilMatrix = errors.New("normalform: nil matrix")

// Operation tags for error wrapping.
const (
	opHermite = "Hermite"
	opSmith   = "Smith"
)

func formErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
