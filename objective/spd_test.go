// SPDX-License-Identifier: MIT

package objective_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsepen/matrix"
	"github.com/katalvlaran/sparsepen/objective"
	"github.com/katalvlaran/sparsepen/penalty"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

var fdSettings = &fd.Settings{Formula: fd.Central, Step: 1e-6}

func TestSPDCost_IdentityIsZero(t *testing.T) {
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	p := penalty.L1{Eps: 0.01}

	cost, err := objective.SPDCost(I, p)
	require.NoError(t, err)
	require.Equal(t, 0.0, cost)

	eg, err := objective.SPDEgrad(I, p)
	require.NoError(t, err)
	for _, v := range eg.Data() {
		require.Equal(t, 0.0, v)
	}

	rg, err := objective.SPDRgrad(I, p)
	require.NoError(t, err)
	for _, v := range rg.Data() {
		require.Equal(t, 0.0, v)
	}
}

// TestSPDCost_TriangleSumsEqualDirectSum compares against a single loop over i≠j.
func TestSPDCost_TriangleSumsEqualDirectSum(t *testing.T) {
	R := randSPD(t, 5, 7)
	p := penalty.L1{Eps: 0.05}

	cost, err := objective.SPDCost(R, p)
	require.NoError(t, err)

	iR, err := matrix.Inverse(R)
	require.NoError(t, err)
	var direct float64
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i != j {
				direct += p.Value(at(t, iR, i, j))
			}
		}
	}
	require.InDelta(t, direct, cost, 1e-12)
	require.Greater(t, cost, 0.0)
}

func TestSPDEgrad_MatchesFiniteDifferences(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    penalty.Penalty
		seed int64
	}{
		{"l1/eps=0.1", penalty.L1{Eps: 0.1}, 1},
		{"l1/eps=1", penalty.L1{Eps: 1}, 2},
		{"relu/eps=0.1", penalty.ReLU{Eps: 0.1}, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			R := randSPD(t, 3, tc.seed)
			f := objective.SPDFunc{Problem: objective.NewSPDProblem(tc.p), N: 3}
			x := R.Data()

			want := fd.Gradient(nil, f.Func, x, fdSettings)
			got := make([]float64, len(x))
			f.Grad(got, x)
			requireGradClose(t, want, got)
		})
	}
}

func TestSPDEgrad_Symmetric(t *testing.T) {
	R := randSPD(t, 4, 11)
	eg, err := objective.SPDEgrad(R, penalty.L1{Eps: 0.1})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.InDelta(t, at(t, eg, i, j), at(t, eg, j, i), 1e-12)
		}
	}
}

// TestSPDRgrad_IsNegatedOffDiagonalDeriv pins rgrad = −G without the inverse sandwich.
func TestSPDRgrad_IsNegatedOffDiagonalDeriv(t *testing.T) {
	R := randSPD(t, 4, 5)
	p := penalty.L1{Eps: 0.1}

	rg, err := objective.SPDRgrad(R, p)
	require.NoError(t, err)

	iR, err := matrix.Inverse(R)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i != j {
				want = -p.Deriv(at(t, iR, i, j))
			}
			require.Equal(t, want, at(t, rg, i, j), "(%d,%d)", i, j)
		}
	}

	eg, err := objective.SPDEgrad(R, p)
	require.NoError(t, err)
	sandwich, err := matrix.Product(iR, rg, iR)
	require.NoError(t, err)
	requireMatrixClose(t, sandwich, eg, 1e-12)
}

func TestSPD_SingularPropagates(t *testing.T) {
	R := newDense(t, 2, 2, []float64{1, 2, 2, 4})
	p := penalty.L1{Eps: 0.1}

	_, err := objective.SPDCost(R, p)
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = objective.SPDEgrad(R, p)
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = objective.SPDRgrad(R, p)
	require.ErrorIs(t, err, matrix.ErrSingular)

	f := objective.SPDFunc{Problem: objective.NewSPDProblem(p), N: 2}
	x := R.Data()
	require.True(t, math.IsNaN(f.Func(x)))
	g := make([]float64, len(x))
	f.Grad(g, x)
	for _, v := range g {
		require.True(t, math.IsNaN(v))
	}
}

func TestSPD_StructuralErrors(t *testing.T) {
	p := penalty.L1{Eps: 0.1}

	_, err := objective.SPDCost(nil, p)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = objective.SPDEgrad(newDense(t, 2, 3, make([]float64, 6)), p)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	_, err = objective.SPDCost(I, nil)
	require.ErrorIs(t, err, objective.ErrNilPenalty)
	_, err = objective.SPDRgrad(I, penalty.Pair{H: math.Abs})
	require.ErrorIs(t, err, objective.ErrNilPenalty)
}

// TestSPD_CustomPair swaps in h(x)=x², dh(x)=2x; cost becomes the squared off-diagonal norm of R⁻¹.
func TestSPD_CustomPair(t *testing.T) {
	R := randSPD(t, 3, 9)
	sq := penalty.Pair{
		H:  func(x float64) float64 { return x * x },
		DH: func(x float64) float64 { return 2 * x },
	}

	cost, err := objective.SPDCost(R, sq)
	require.NoError(t, err)

	iR, err := matrix.Inverse(R)
	require.NoError(t, err)
	var want float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				v := at(t, iR, i, j)
				want += v * v
			}
		}
	}
	require.InDelta(t, want, cost, 1e-14)

	f := objective.SPDFunc{Problem: objective.NewSPDProblem(sq), N: 3}
	x := R.Data()
	got := make([]float64, len(x))
	f.Grad(got, x)
	requireGradClose(t, fd.Gradient(nil, f.Func, x, fdSettings), got)
}

// TestSPD_InputNotMutated checks R survives every builder untouched.
func TestSPD_InputNotMutated(t *testing.T) {
	R := randSPD(t, 3, 4)
	before := R.Data()
	p := penalty.ReLU{Eps: 0.2}

	_, err := objective.SPDCost(R, p)
	require.NoError(t, err)
	_, err = objective.SPDEgrad(R, p)
	require.NoError(t, err)
	_, err = objective.SPDRgrad(R, p)
	require.NoError(t, err)
	require.Equal(t, before, R.Data())
}
