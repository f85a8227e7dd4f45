package homology_test

import (
	"fmt"

	"github.com/katalvlaran/homology/builder"
	"github.com/katalvlaran/homology/homology"
)

// ExampleChainComplex_ComputeHomology computes the groups of the real
// projective plane, whose first homology is pure 2-torsion.
func ExampleChainComplex_ComputeHomology() {
	cx, err := builder.BuildComplex(nil, builder.ProjectivePlane())
	if err != nil {
		fmt.Println(err)
		return
	}
	cc, err := homology.New(cx)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = cc.ComputeHomology(false); err != nil {
		fmt.Println(err)
		return
	}
	for _, g := range cc.Summary()[:3] {
		fmt.Println(g)
	}
	// Output:
	// H0 = Z
	// H1 = Z/2
	// H2 = 0
}
