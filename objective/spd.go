// SPDX-License-Identifier: MIT

package objective

import (
	"github.com/katalvlaran/sparsepen/matrix"
	"github.com/katalvlaran/sparsepen/penalty"
	"gonum.org/v1/gonum/floats"
)

// offDiagonalSum returns Σ_{i<j} A[i,j] + Σ_{i>j} A[i,j], one pass per triangle.
func offDiagonalSum(A matrix.Matrix) (float64, error) {
	upper, err := matrix.StrictUpper(A)
	if err != nil {
		return 0, err
	}
	lower, err := matrix.StrictLower(A)
	if err != nil {
		return 0, err
	}

	return floats.Sum(upper) + floats.Sum(lower), nil
}

// penalizedOffDiagonal returns Σ_{i≠j} h(A[i,j]) with h applied to the whole of A.
func penalizedOffDiagonal(A matrix.Matrix, p penalty.Penalty) (float64, error) {
	hA, err := penalty.Map(A, p.Value)
	if err != nil {
		return 0, err
	}

	return offDiagonalSum(hA)
}

// SPDCost returns Σ_{i≠j} h(R⁻¹[i,j]), the smoothed off-diagonal magnitude of the
// precision matrix implied by R.
//
// Errors:
//   - ErrNilPenalty.
//   - matrix.ErrSingular / matrix.ErrDimensionMismatch / matrix.ErrNilMatrix from inversion.
//
// Complexity: O(p³) for the inversion, O(p²) penalty evaluations.
func SPDCost(R matrix.Matrix, p penalty.Penalty) (float64, error) {
	return spdCost(R, p, defaultOptions())
}

// SPDEgrad returns the Euclidean gradient of SPDCost with respect to R:
//
//	−R⁻¹ · G · R⁻¹,  G[i,i] = 0,  G[i,j] = dh(R⁻¹[i,j]) for i≠j.
func SPDEgrad(R matrix.Matrix, p penalty.Penalty) (*matrix.Dense, error) {
	return spdEgrad(R, p, defaultOptions())
}

// SPDRgrad returns −G with G as in SPDEgrad, without the R⁻¹·(·)·R⁻¹ sandwich.
// The metric of the SPD manifold this is used on absorbs the Jacobian of the
// inversion map, so the difference from SPDEgrad is intended.
func SPDRgrad(R matrix.Matrix, p penalty.Penalty) (*matrix.Dense, error) {
	return spdRgrad(R, p, defaultOptions())
}

func spdCost(R matrix.Matrix, p penalty.Penalty, o options) (float64, error) {
	if err := checkPenalty(p); err != nil {
		return 0, objectiveErrorf(opSPDCost, err)
	}
	iR, err := spdInverse(R, o)
	if err != nil {
		return 0, objectiveErrorf(opSPDCost, err)
	}
	cost, err := penalizedOffDiagonal(iR, p)
	if err != nil {
		return 0, objectiveErrorf(opSPDCost, err)
	}

	return o.weight * cost, nil
}

func spdEgrad(R matrix.Matrix, p penalty.Penalty, o options) (*matrix.Dense, error) {
	if err := checkPenalty(p); err != nil {
		return nil, objectiveErrorf(opSPDEgrad, err)
	}
	iR, err := spdInverse(R, o)
	if err != nil {
		return nil, objectiveErrorf(opSPDEgrad, err)
	}
	G, err := matrix.OffDiagonalMap(iR, p.Deriv)
	if err != nil {
		return nil, objectiveErrorf(opSPDEgrad, err)
	}
	sandwich, err := matrix.Product(iR, G, iR)
	if err != nil {
		return nil, objectiveErrorf(opSPDEgrad, err)
	}
	out, err := matrix.Scale(sandwich, -o.weight)
	if err != nil {
		return nil, objectiveErrorf(opSPDEgrad, err)
	}

	return out, nil
}

func spdRgrad(R matrix.Matrix, p penalty.Penalty, o options) (*matrix.Dense, error) {
	if err := checkPenalty(p); err != nil {
		return nil, objectiveErrorf(opSPDRgrad, err)
	}
	iR, err := spdInverse(R, o)
	if err != nil {
		return nil, objectiveErrorf(opSPDRgrad, err)
	}
	G, err := matrix.OffDiagonalMap(iR, p.Deriv)
	if err != nil {
		return nil, objectiveErrorf(opSPDRgrad, err)
	}
	out, err := matrix.Scale(G, -o.weight)
	if err != nil {
		return nil, objectiveErrorf(opSPDRgrad, err)
	}

	return out, nil
}

// spdInverse runs the configured checks and inverts R. Nothing is cached between calls.
func spdInverse(R matrix.Matrix, o options) (*matrix.Dense, error) {
	if err := o.validate(R); err != nil {
		return nil, err
	}

	return matrix.Inverse(R)
}
