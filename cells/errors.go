// SPDX-License-Identifier: MIT
// Package cells: sentinel errors.
// Callers branch with errors.Is; context is attached with %w at detection sites.

package cells

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension indicates a dimension outside 0..MaxDim.
	ErrBadDimension = errors.New("cells: dimension out of range")

	// ErrBadSign indicates a boundary coefficient other than -1 or +1.
	ErrBadSign = errors.New("cells: boundary sign must be -1 or +1")

	// ErrUnknownFace indicates a boundary reference to a missing lower cell.
	ErrUnknownFace = errors.New("cells: unknown boundary face")

	// ErrDuplicateTag indicates a tag already used in the same dimension.
	ErrDuplicateTag = errors.New("cells: duplicate tag")

	// ErrOutOfRange indicates a cell position outside the arena.
	ErrOutOfRange = errors.New("cells: position out of range")

	// ErrDecode indicates a malformed complex document.
	ErrDecode = errors.New("cells: malformed complex document")
)

func cellsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
