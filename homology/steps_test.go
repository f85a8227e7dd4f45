package homology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homology/bigmat"
	"github.com/katalvlaran/homology/homology"
)

func TestKerCod(t *testing.T) {
	h := mustRows(t, [][]int64{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}})
	kc, err := homology.KerCod(h)
	require.NoError(t, err)
	require.Equal(t, 2, kc.Rank)
	require.Equal(t, 3, kc.Kernel.Rows())
	require.Equal(t, 1, kc.Kernel.Cols())
	requireZeroProduct(t, h, kc.Kernel)
	require.Equal(t, 3, kc.Codomain.Rows())
	require.Equal(t, 2, kc.Codomain.Cols())

	// image is mapped back through the row permutation
	kc, err = homology.KerCod(mustRows(t, [][]int64{{0}, {-3}}))
	require.NoError(t, err)
	require.Nil(t, kc.Kernel)
	require.True(t, kc.Codomain.Equal(mustRows(t, [][]int64{{0}, {3}})))

	// H_0 shape: everything is a cycle, nothing is an image
	empty, err := bigmat.Zero(0, 3)
	require.NoError(t, err)
	kc, err = homology.KerCod(empty)
	require.NoError(t, err)
	require.Equal(t, 0, kc.Rank)
	require.Equal(t, 3, kc.Kernel.Cols())
	require.Nil(t, kc.Codomain)

	_, err = homology.KerCod(nil)
	require.ErrorIs(t, err, bigmat.ErrNilMatrix)
}

func TestInclusion(t *testing.T) {
	z := mustRows(t, [][]int64{{2, 1}, {0, 3}, {0, 0}})
	b := mustRows(t, [][]int64{{4}, {-6}, {0}}) // 3·z1 - 2·z2
	j, err := homology.Inclusion(z, b)
	require.NoError(t, err)
	require.True(t, j.Equal(mustRows(t, [][]int64{{3}, {-2}})), "J =\n%s", j)
	back, err := bigmat.Mul(z, j)
	require.NoError(t, err)
	require.True(t, back.Equal(b))

	cases := map[string]struct {
		z, b [][]int64
		want error
	}{
		"notDivisible":  {[][]int64{{2}}, [][]int64{{1}}, homology.ErrStructuralInconsistency},
		"outsideSpan":   {[][]int64{{1}, {0}}, [][]int64{{0}, {1}}, homology.ErrStructuralInconsistency},
		"rankDeficient": {[][]int64{{1, 2}, {2, 4}}, [][]int64{{1}, {2}}, homology.ErrStructuralInconsistency},
		"wide":          {[][]int64{{1, 0}}, [][]int64{{1}}, homology.ErrStructuralInconsistency},
		"rowMismatch":   {[][]int64{{1}, {0}}, [][]int64{{1}, {0}, {0}}, homology.ErrDimensionMismatch},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := homology.Inclusion(mustRows(t, tc.z), mustRows(t, tc.b))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err = homology.Inclusion(nil, b)
	require.ErrorIs(t, err, homology.ErrStructuralInconsistency)
}

func TestQuotient(t *testing.T) {
	q, err := homology.Quotient(mustRows(t, [][]int64{{2}}))
	require.NoError(t, err)
	require.Len(t, q.Torsion, 1)
	require.Equal(t, int64(2), q.Torsion[0].Int64())
	require.Equal(t, 0, q.Rank)
	require.Equal(t, 1, q.Transform.Cols())

	q, err = homology.Quotient(mustRows(t, [][]int64{{1}}))
	require.NoError(t, err)
	require.Nil(t, q.Transform) // trivial quotient is not an error
	require.Equal(t, 1, q.Rank)

	q, err = homology.Quotient(mustRows(t, [][]int64{{2}, {0}}))
	require.NoError(t, err)
	require.Equal(t, 2, q.Transform.Cols())
	require.Len(t, q.Torsion, 1)

	q, err = homology.Quotient(mustRows(t, [][]int64{{1}, {0}}))
	require.NoError(t, err)
	require.Equal(t, 1, q.Transform.Cols())
	require.Empty(t, q.Torsion)

	_, err = homology.Quotient(mustRows(t, [][]int64{{0}}))
	require.ErrorIs(t, err, homology.ErrStructuralInconsistency)
	_, err = homology.Quotient(mustRows(t, [][]int64{{1, 0}}))
	require.ErrorIs(t, err, homology.ErrStructuralInconsistency)
	_, err = homology.Quotient(nil)
	require.ErrorIs(t, err, homology.ErrStructuralInconsistency)
}
