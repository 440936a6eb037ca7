// SPDX-License-Identifier: MIT

package objective

import (
	"github.com/katalvlaran/sparsepen/matrix"
	"github.com/katalvlaran/sparsepen/penalty"
)

// Factor is a point on the factor-model product manifold: H = L·S⁻¹·Lᵀ.
// L is the p×r loading matrix and S the r×r invertible residual block.
type Factor struct {
	L matrix.Matrix
	S matrix.Matrix
}

// factorTerms holds the intermediates shared by cost and gradient.
type factorTerms struct {
	iS  *matrix.Dense // S⁻¹
	LiS *matrix.Dense // L·S⁻¹
	H   *matrix.Dense // L·S⁻¹·Lᵀ
}

// FactorCost returns Σ_{i≠j} h(H[i,j]) with H = L·S⁻¹·Lᵀ.
//
// Errors:
//   - ErrNilPenalty.
//   - matrix.ErrNilMatrix if L or S is missing.
//   - matrix.ErrSingular if S is not invertible.
//   - matrix.ErrDimensionMismatch if S is not r×r for an r-column L.
//
// Complexity: O(r³ + p·r² + p²·r) arithmetic, O(p²) penalty evaluations.
func FactorCost(theta Factor, p penalty.Penalty) (float64, error) {
	return factorCost(theta, p, defaultOptions())
}

// FactorEgrad returns the Euclidean gradient of FactorCost as a ProductTangent:
//
//	Loading  =  2·G·L·S⁻¹
//	Residual = −S⁻¹·Lᵀ·G·L·S⁻¹
//	Fixed    =  0 (length p)
//
// where G[i,i] = 0 and G[i,j] = dh(H[i,j]) for i≠j.
func FactorEgrad(theta Factor, p penalty.Penalty) (ProductTangent, error) {
	return factorEgrad(theta, p, defaultOptions())
}

func factorCost(theta Factor, p penalty.Penalty, o options) (float64, error) {
	if err := checkPenalty(p); err != nil {
		return 0, objectiveErrorf(opFactorCost, err)
	}
	ft, err := newFactorTerms(theta, o)
	if err != nil {
		return 0, objectiveErrorf(opFactorCost, err)
	}
	cost, err := penalizedOffDiagonal(ft.H, p)
	if err != nil {
		return 0, objectiveErrorf(opFactorCost, err)
	}

	return o.weight * cost, nil
}

func factorEgrad(theta Factor, p penalty.Penalty, o options) (ProductTangent, error) {
	if err := checkPenalty(p); err != nil {
		return ProductTangent{}, objectiveErrorf(opFactorEgrad, err)
	}
	ft, err := newFactorTerms(theta, o)
	if err != nil {
		return ProductTangent{}, objectiveErrorf(opFactorEgrad, err)
	}
	G, err := matrix.OffDiagonalMap(ft.H, p.Deriv)
	if err != nil {
		return ProductTangent{}, objectiveErrorf(opFactorEgrad, err)
	}

	// G·L·S⁻¹ appears in both blocks.
	GLiS, err := matrix.Mul(G, ft.LiS)
	if err != nil {
		return ProductTangent{}, objectiveErrorf(opFactorEgrad, err)
	}
	loading, err := matrix.Scale(GLiS, 2*o.weight)
	if err != nil {
		return ProductTangent{}, objectiveErrorf(opFactorEgrad, err)
	}

	// S⁻¹·Lᵀ = (L·S⁻¹)ᵀ only for symmetric S, so it is formed explicitly.
	Lt, err := matrix.Transpose(theta.L)
	if err != nil {
		return ProductTangent{}, objectiveErrorf(opFactorEgrad, err)
	}
	inner, err := matrix.Product(ft.iS, Lt, GLiS)
	if err != nil {
		return ProductTangent{}, objectiveErrorf(opFactorEgrad, err)
	}
	residual, err := matrix.Scale(inner, -o.weight)
	if err != nil {
		return ProductTangent{}, objectiveErrorf(opFactorEgrad, err)
	}

	return ProductTangent{
		Loading:  loading,
		Residual: residual,
		Fixed:    make([]float64, theta.L.Rows()),
	}, nil
}

// newFactorTerms inverts S and forms L·S⁻¹ and H. S is validated when the
// symmetry check is enabled.
func newFactorTerms(theta Factor, o options) (*factorTerms, error) {
	if err := matrix.ValidateNotNil(theta.L); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNotNil(theta.S); err != nil {
		return nil, err
	}
	if err := o.validate(theta.S); err != nil {
		return nil, err
	}

	iS, err := matrix.Inverse(theta.S)
	if err != nil {
		return nil, err
	}
	LiS, err := matrix.Mul(theta.L, iS)
	if err != nil {
		return nil, err
	}
	Lt, err := matrix.Transpose(theta.L)
	if err != nil {
		return nil, err
	}
	H, err := matrix.Mul(LiS, Lt)
	if err != nil {
		return nil, err
	}

	return &factorTerms{iS: iS, LiS: LiS, H: H}, nil
}
