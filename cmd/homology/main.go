// SPDX-License-Identifier: MIT

// Command homology computes integer homology of cell complexes described in
// YAML, and prints fixture complexes to start from.
//
//	homology fixture rp2 > rp2.yaml
//	homology compute -f rp2.yaml --chains
//	homology compute -f torus.yaml -f klein.yaml --dual --msh chains.msh
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
