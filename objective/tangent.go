// SPDX-License-Identifier: MIT

package objective

import (
	"github.com/katalvlaran/sparsepen/matrix"
	"gonum.org/v1/gonum/floats"
)

// ProductArity is the number of component blocks of the factor-model product manifold.
const ProductArity = 3

// ProductTangent is a tangent vector on the factor-model product manifold
// (loading × residual × fixed). The three blocks are always present and
// always in this order.
type ProductTangent struct {
	Loading  *matrix.Dense // p×r, gradient with respect to L
	Residual *matrix.Dense // r×r, gradient with respect to S
	Fixed    []float64     // length p, the fixed third component; zero for this objective
}

// Blocks returns ProductArity.
func (t ProductTangent) Blocks() int { return ProductArity }

// Flatten returns Loading (row-major), then Residual (row-major), then Fixed,
// as one fresh slice. A nil block contributes nothing.
func (t ProductTangent) Flatten() []float64 {
	var out []float64
	if t.Loading != nil {
		out = append(out, t.Loading.Data()...)
	}
	if t.Residual != nil {
		out = append(out, t.Residual.Data()...)
	}

	return append(out, t.Fixed...)
}

// Inner returns the Euclidean inner product Σ_k ⟨t_k, o_k⟩ across all three blocks.
//
// Errors:
//   - matrix.ErrNilMatrix if a matrix block is missing on either side.
//   - matrix.ErrDimensionMismatch if any pair of blocks differs in shape or length.
func (t ProductTangent) Inner(o ProductTangent) (float64, error) {
	if err := matrix.ValidateBinarySameShape(t.Loading, o.Loading); err != nil {
		return 0, objectiveErrorf(opInner, err)
	}
	if err := matrix.ValidateBinarySameShape(t.Residual, o.Residual); err != nil {
		return 0, objectiveErrorf(opInner, err)
	}
	if len(t.Fixed) != len(o.Fixed) {
		return 0, objectiveErrorf(opInner, matrix.ErrDimensionMismatch)
	}

	return floats.Dot(t.Loading.Data(), o.Loading.Data()) +
		floats.Dot(t.Residual.Data(), o.Residual.Data()) +
		floats.Dot(t.Fixed, o.Fixed), nil
}
