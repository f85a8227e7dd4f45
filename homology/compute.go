// SPDX-License-Identifier: MIT
// Package homology - the dimension walk.
//
// For i = -1..3 one step pairs a lower operator with an upper one:
//
//	primal: low = i,         high = i+1,   result stored at low
//	dual:   low = top+1-i,   high = top-i, result stored at high
//
// KerCod runs on the upper operator; its kernel is kept for exactly one more
// step (where it becomes the lower kernel) and its image is used right away.
// All transient values live in a map owned by the call.

package homology

import (
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/homology/bigmat"
)

const totalSteps = maxDim + 1

// ComputeHomology computes generators and torsion for every dimension,
// replacing the results of any earlier call. dual selects cohomology.
//
// A structural problem in one dimension marks it Unresolved and is recorded
// in Diagnostics; the call still succeeds. Any other error (for instance
// ErrDimensionMismatch) aborts the pass, clears all results and is returned.
func (c *ChainComplex) ComputeHomology(dual bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset(dual)
	ops := c.operators(dual)
	get := func(d int) *bigmat.Matrix {
		if d < 0 || d >= len(ops) {
			return nil
		}
		return ops[d]
	}
	kc := make(map[int]KernelCodomain, 2)

	for i := -1; i <= maxDim; i++ {
		c.log.Debug(fmt.Sprintf("Homology computation process: step %d of %d", i+1, totalSteps),
			zap.Bool("dual", dual))

		low, high, set := i, i+1, i
		if dual {
			low, high = c.top+1-i, c.top-i
			set = high
		}

		if h := get(high); h != nil {
			r, err := KerCod(h)
			if err != nil {
				c.reset(dual)
				return fmt.Errorf("%s: dim %d: %w", StepCompute, high, err)
			}
			kc[high] = r
		}

		basis, torsion, stage, err := c.step(get, kc, low, high)
		delete(kc, low)
		if err != nil && !errors.Is(err, ErrStructuralInconsistency) {
			c.reset(dual)
			return fmt.Errorf("%s: dim %d: %w", StepCompute, set, err)
		}
		if set < 0 || set > maxDim {
			continue
		}
		if err != nil {
			c.unresolved[set] = true
			c.diags = append(c.diags, Diagnostic{
				Kind: StructuralInconsistency, Dim: set, Step: stage, Dual: dual, Err: err,
			})
			c.log.Warn("homology left unresolved",
				zap.Int("dim", set), zap.String("step", stage), zap.Bool("dual", dual), zap.Error(err))
			continue
		}
		c.basis[set] = basis
		c.torsion[set] = torsion
	}
	c.computed = true

	return nil
}

// step selects the basis for one (low, high) pair.
func (c *ChainComplex) step(get func(int) *bigmat.Matrix, kc map[int]KernelCodomain, low, high int) (*bigmat.Matrix, []*big.Int, string, error) {
	lo, hi := get(low), get(high)
	switch {
	// with nothing above dimension 0, every 0-chain is a cycle and none bounds
	case low == 0 && hi == nil && c.Size(0) > 0, high == 0 && lo == nil && c.Size(0) > 0:
		id, err := bigmat.Identity(c.Size(0))
		return id, nil, StepCompute, err
	case lo == nil && hi == nil:
		return nil, nil, StepCompute, nil
	case hi == nil:
		return nonEmpty(kc[low].Kernel), nil, StepCompute, nil
	}

	z := kc[low].Kernel
	if lo == nil {
		var err error
		if z, err = bigmat.Identity(hi.Rows()); err != nil {
			return nil, nil, StepCompute, err
		}
	}
	b := kc[high].Codomain
	if b == nil {
		return nonEmpty(z), nil, StepCompute, nil
	}
	if z == nil {
		return nil, nil, StepInclude, fmt.Errorf("%s: boundaries of rank %d but no cycles: %w",
			StepInclude, b.Cols(), ErrStructuralInconsistency)
	}

	j, err := Inclusion(z, b)
	if err != nil {
		return nil, nil, StepInclude, err
	}
	q, err := Quotient(j)
	if err != nil {
		return nil, nil, StepQuotient, err
	}
	if q.Transform == nil {
		return nil, nil, StepQuotient, nil
	}
	basis, err := bigmat.Mul(z, q.Transform)
	if err != nil {
		return nil, nil, StepQuotient, err
	}

	return basis, q.Torsion, StepQuotient, nil
}

// operators returns the stored operators, or transposed copies for dual mode.
func (c *ChainComplex) operators(dual bool) [maxDim + 2]*bigmat.Matrix {
	if !dual {
		return c.ops
	}
	var out [maxDim + 2]*bigmat.Matrix
	for d, h := range c.ops {
		if h != nil {
			out[d] = h.Transpose()
		}
	}

	return out
}

func (c *ChainComplex) reset(dual bool) {
	c.computed = false
	c.dual = dual
	c.basis = [maxDim + 1]*bigmat.Matrix{}
	c.torsion = [maxDim + 1][]*big.Int{}
	c.unresolved = [maxDim + 1]bool{}
	c.diags = c.diags[:c.assembled]
}

// nonEmpty maps a basis without columns to nil, the trivial group.
func nonEmpty(m *bigmat.Matrix) *bigmat.Matrix {
	if m == nil || m.Cols() == 0 {
		return nil
	}

	return m
}
