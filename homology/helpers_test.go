// Package homology_test contains black-box tests for assembly, the three
// algebraic steps, the dimension walk and chain extraction.
package homology_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homology/bigmat"
	"github.com/katalvlaran/homology/builder"
	"github.com/katalvlaran/homology/cells"
	"github.com/katalvlaran/homology/homology"
)

// group is a comparable projection of homology.GroupSummary.
type group struct {
	Rank       int
	Torsion    []int64
	Unresolved bool
}

// Shorthands for expected groups.
var (
	zero  = group{}
	z1    = group{Rank: 1}
	z2    = group{Rank: 2}
	tor2  = group{Torsion: []int64{2}}
	z1t2  = group{Rank: 1, Torsion: []int64{2}}
	unres = group{Unresolved: true}
)

// bigEq lets go-cmp compare *big.Int by value.
var bigEq = cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })

func groups(cc *homology.ChainComplex) []group {
	var out []group
	for _, s := range cc.Summary() {
		g := group{Rank: s.Rank, Unresolved: s.Unresolved}
		for _, t := range s.Torsion {
			g.Torsion = append(g.Torsion, t.Int64())
		}
		out = append(out, g)
	}

	return out
}

func mustBuild(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *cells.Complex {
	t.Helper()
	cx, err := builder.BuildComplex(opts, cons...)
	require.NoError(t, err)

	return cx
}

func mustCompute(t *testing.T, cx *cells.Complex, dual bool, opts ...homology.Option) *homology.ChainComplex {
	t.Helper()
	cc, err := homology.New(cx, opts...)
	require.NoError(t, err)
	require.NoError(t, cc.ComputeHomology(dual))

	return cc
}

func mustRows(t *testing.T, rows [][]int64) *bigmat.Matrix {
	t.Helper()
	m, err := bigmat.FromRows(rows)
	require.NoError(t, err)

	return m
}

// requireZeroProduct asserts a·b == 0.
func requireZeroProduct(t *testing.T, a, b *bigmat.Matrix) {
	t.Helper()
	p, err := bigmat.Mul(a, b)
	require.NoError(t, err)
	require.True(t, p.IsZero(), "product not zero:\n%s", p)
}
