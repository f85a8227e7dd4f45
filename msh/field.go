// SPDX-License-Identifier: MIT

package msh

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/homology/cells"
	"github.com/katalvlaran/homology/homology"
)

// Value is the scalar attached to one mesh element.
type Value struct {
	Element int
	Value   *big.Int
}

// Field expands ch into per-element values: terms in chain order, and within
// a term the cell's mesh image in its recorded order. A cell without an image
// stands for the element numbered by its tag.
func Field(cx *cells.Complex, ch *homology.Chain) ([]Value, error) {
	out := make([]Value, 0, ch.NumElements())
	for _, term := range ch.Terms {
		cell, err := cx.Cell(term.Cell.Dim, term.Cell.Pos)
		if err != nil {
			return nil, fmt.Errorf("Field(%q): %w", ch.Name, err)
		}
		for _, e := range cell.Elements() {
			v := new(big.Int).Mul(term.Coefficient, big.NewInt(int64(e.Sign)))
			out = append(out, Value{Element: e.Num, Value: v})
		}
	}

	return out, nil
}
