// SPDX-License-Identifier: MIT

package msh

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/homology/cells"
	"github.com/katalvlaran/homology/homology"
)

// WriteElementData writes one $ElementData block for ch: a single string tag
// (the chain name), a single real tag (time 0.0) and four integer tags
// (time step 0, one component, the value count, partition 0), followed by
// "element value" lines. An empty chain writes nothing.
func WriteElementData(w io.Writer, cx *cells.Complex, ch *homology.Chain) error {
	if ch.Len() == 0 {
		return nil
	}
	values, err := Field(cx, ch)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "$ElementData")
	fmt.Fprintf(bw, "1\n%q\n", ch.Name)
	fmt.Fprintf(bw, "1\n0.0\n")
	fmt.Fprintf(bw, "4\n0\n1\n%d\n0\n", len(values))
	for _, v := range values {
		fmt.Fprintf(bw, "%d %s\n", v.Element, v.Value)
	}
	fmt.Fprintln(bw, "$EndElementData")

	return bw.Flush()
}

// AppendChains appends one block per non-empty chain to the file at path,
// creating it if needed. Mesh sections are expected to be written by whoever
// owns the mesh.
func AppendChains(path string, cx *cells.Complex, chains []*homology.Chain) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("AppendChains: %w", err)
	}
	for _, ch := range chains {
		if err = WriteElementData(f, cx, ch); err != nil {
			_ = f.Close()
			return fmt.Errorf("AppendChains: %w", err)
		}
	}

	return f.Close()
}
