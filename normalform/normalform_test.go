// Package normalform_test verifies the Hermite and Smith factorizations
// through their algebraic contracts rather than fixed transform values.
package normalform_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/homology/bigmat"
	"github.com/katalvlaran/homology/normalform"
	"github.com/stretchr/testify/require"
)

// Fixed seed: the random fixtures are reproducible across runs.
const fixtureSeed = 20240611

func mustRows(t *testing.T, rows [][]int64) *bigmat.Matrix {
	t.Helper()
	m, err := bigmat.FromRows(rows)
	require.NoError(t, err)

	return m
}

func mustMul(t *testing.T, ms ...*bigmat.Matrix) *bigmat.Matrix {
	t.Helper()
	out := ms[0]
	for _, m := range ms[1:] {
		var err error
		out, err = bigmat.Mul(out, m)
		require.NoError(t, err)
	}

	return out
}

func requireIdentity(t *testing.T, m *bigmat.Matrix) {
	t.Helper()
	id, err := bigmat.Identity(m.Rows())
	require.NoError(t, err)
	require.True(t, m.Equal(id), "expected identity, got\n%s", m)
}

// randomMatrix draws a rows×cols matrix with entries in [-spread, spread],
// optionally duplicating columns to force rank deficiency.
func randomMatrix(t *testing.T, rng *rand.Rand, rows, cols int, spread int64, dup bool) *bigmat.Matrix {
	t.Helper()
	vals := make([]int64, rows*cols)
	for k := range vals {
		vals[k] = rng.Int63n(2*spread+1) - spread
	}
	if dup && cols > 1 {
		for i := 0; i < rows; i++ {
			vals[i*cols+cols-1] = vals[i*cols] * 2 // last column = 2 × first
		}
	}
	m, err := bigmat.FromInt64(rows, cols, vals)
	require.NoError(t, err)

	return m
}

// fixtures returns hand-picked and random inputs covering empty, zero,
// rank-deficient, tall and wide shapes.
func fixtures(t *testing.T) []*bigmat.Matrix {
	t.Helper()
	empty, err := bigmat.Zero(0, 3)
	require.NoError(t, err)
	zero, err := bigmat.Zero(3, 2)
	require.NoError(t, err)

	out := []*bigmat.Matrix{
		empty,
		zero,
		mustRows(t, [][]int64{{0}, {1}}),
		mustRows(t, [][]int64{{2, 4, 4}, {-6, 6, 12}, {10, -4, -16}}),
		mustRows(t, [][]int64{{-1, 0, 1}, {1, -1, 0}, {0, 1, -1}}),
		mustRows(t, [][]int64{{6, 0}, {0, 4}}),
	}
	rng := rand.New(rand.NewSource(fixtureSeed))
	for k := 0; k < 12; k++ {
		rows, cols := 1+rng.Intn(5), 1+rng.Intn(5)
		out = append(out, randomMatrix(t, rng, rows, cols, 9, k%3 == 0))
	}

	return out
}

// TestHermiteContract checks Left·M·Right == Canonical, unimodularity and shape.
func TestHermiteContract(t *testing.T) {
	for _, m := range fixtures(t) {
		plain, err := normalform.Hermite(m, false, false)
		require.NoError(t, err)
		inv, err := normalform.Hermite(m, true, true)
		require.NoError(t, err)

		require.True(t, mustMul(t, plain.Left, m, plain.Right).Equal(plain.Canonical),
			"L·M·R != H for\n%s", m)
		requireIdentity(t, mustMul(t, plain.Left, inv.Left))
		requireIdentity(t, mustMul(t, plain.Right, inv.Right))
		require.True(t, inv.Canonical.Equal(plain.Canonical))

		h := plain.Canonical
		rank := plain.Rank()
		for k := 1; k <= rank; k++ {
			require.Positive(t, h.Entry(k, k).Sign(), "pivot %d", k)
			for i := 1; i < k; i++ {
				require.Zero(t, h.Entry(i, k).Sign(), "above pivot (%d,%d)", i, k)
			}
			for j := 1; j < k; j++ {
				v := h.Entry(k, j)
				require.True(t, v.Sign() >= 0 && v.Cmp(h.Entry(k, k)) < 0, "reduced entry (%d,%d)", k, j)
			}
		}
		trailing, err := h.ColumnRange(rank+1, h.Cols())
		require.NoError(t, err)
		require.True(t, trailing.IsZero(), "columns past rank must vanish")

		// Kernel columns of Right are annihilated by M.
		ker, err := plain.Right.ColumnRange(rank+1, m.Cols())
		require.NoError(t, err)
		require.True(t, mustMul(t, m, ker).IsZero())
	}
}

// TestHermiteRankNullity checks rank(M) + nullity(M) == cols(M).
func TestHermiteRankNullity(t *testing.T) {
	m := mustRows(t, [][]int64{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}})
	f, err := normalform.Hermite(m, false, false)
	require.NoError(t, err)
	require.Equal(t, 2, f.Rank())

	ker, err := f.Right.ColumnRange(f.Rank()+1, m.Cols())
	require.NoError(t, err)
	require.Equal(t, 1, ker.Cols())
	require.Equal(t, m.Cols(), f.Rank()+ker.Cols())
}

// TestHermitePivotBelowDiagonal covers a pivot that only appears in a later row.
func TestHermitePivotBelowDiagonal(t *testing.T) {
	m := mustRows(t, [][]int64{{0}, {-3}})
	f, err := normalform.Hermite(m, false, false)
	require.NoError(t, err)
	require.Equal(t, 1, f.Rank())
	require.Equal(t, "[3]\n[0]\n", f.Canonical.String())
}

// TestSmithContract checks the factorization, the divisor chain and that the
// input is left untouched.
func TestSmithContract(t *testing.T) {
	for _, m := range fixtures(t) {
		before := m.Clone()
		plain, err := normalform.Smith(m, false, false)
		require.NoError(t, err)
		inv, err := normalform.Smith(m, true, true)
		require.NoError(t, err)
		require.True(t, m.Equal(before), "input mutated")

		s := plain.Canonical
		require.True(t, mustMul(t, plain.Left, m, plain.Right).Equal(s), "L·M·R != S for\n%s", m)
		requireIdentity(t, mustMul(t, plain.Left, inv.Left))
		requireIdentity(t, mustMul(t, inv.Right, plain.Right))

		for i := 1; i <= s.Rows(); i++ {
			for j := 1; j <= s.Cols(); j++ {
				if i != j {
					require.Zero(t, s.Entry(i, j).Sign(), "off-diagonal (%d,%d)", i, j)
				}
			}
		}
		diag := s.Diagonal()
		for k := range diag {
			require.GreaterOrEqual(t, diag[k].Sign(), 0)
			if k == 0 {
				continue
			}
			prev := diag[k-1]
			if prev.Sign() == 0 {
				require.Zero(t, diag[k].Sign(), "zeros must come last")
				continue
			}
			require.Zero(t, new(big.Int).Rem(diag[k], prev).Sign(), "d%d must divide d%d", k, k+1)
		}
	}
}

// TestSmithKnownInvariants checks classic invariant factors.
func TestSmithKnownInvariants(t *testing.T) {
	cases := []struct {
		name string
		in   [][]int64
		want []int64
	}{
		{"coprime diagonal", [][]int64{{6, 0}, {0, 4}}, []int64{2, 12}},
		{"textbook", [][]int64{{2, 4, 4}, {-6, 6, 12}, {10, -4, -16}}, []int64{2, 6, 12}},
		{"projective plane relation", [][]int64{{2}}, []int64{2}},
		{"triangle boundary", [][]int64{{-1, 0, 1}, {1, -1, 0}, {0, 1, -1}}, []int64{1, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := normalform.Smith(mustRows(t, tc.in), false, false)
			require.NoError(t, err)
			diag := f.Canonical.Diagonal()
			got := make([]int64, len(diag))
			for k, d := range diag {
				got[k] = d.Int64()
			}
			require.Equal(t, tc.want, got)
		})
	}
}

// TestNilInput ensures solvers reject nil matrices.
func TestNilInput(t *testing.T) {
	_, err := normalform.Hermite(nil, false, false)
	require.ErrorIs(t, err, normalform.ErrNilMatrix)
	_, err = normalform.Smith(nil, true, true)
	require.ErrorIs(t, err, normalform.ErrNilMatrix)
}

// TestLargeIntermediates exercises entries beyond 64 bits.
func TestLargeIntermediates(t *testing.T) {
	p, ok := new(big.Int).SetString("170141183460469231731687303715884105727", 10) // 2^127-1
	require.True(t, ok)
	m, err := bigmat.Zero(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, p))
	require.NoError(t, m.SetInt64(2, 2, 2))

	f, err := normalform.Smith(m, false, false)
	require.NoError(t, err)
	require.Equal(t, int64(1), f.Canonical.Entry(1, 1).Int64())
	require.Zero(t, f.Canonical.Entry(2, 2).Cmp(new(big.Int).Mul(p, big.NewInt(2))))
}
