// SPDX-License-Identifier: MIT

package objective_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsepen/matrix"
	"github.com/stretchr/testify/require"
)

// relTol is the finite-difference agreement required of every analytic gradient.
const relTol = 1e-4

// newDense builds an r×c *Dense from row-major values or fails the test.
func newDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// randDense fills an r×c matrix with deterministic U(-1,1) values by seed.
func randDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return newDense(t, r, c, vals)
}

// randSPD returns A·Aᵀ + n·I for a random n×n A; symmetric and well conditioned.
func randSPD(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	A := randDense(t, n, n, seed)
	At, err := matrix.Transpose(A)
	require.NoError(t, err)
	R, err := matrix.Mul(A, At)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		v, err := R.At(i, i)
		require.NoError(t, err)
		require.NoError(t, R.Set(i, i, v+float64(n)))
	}

	return R
}

// at reads (i,j) or fails the test.
func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireGradClose compares an analytic gradient with a numeric one entrywise,
// relative to max(1, |want|).
func requireGradClose(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		scale := math.Max(1, math.Abs(want[i]))
		require.InDelta(t, want[i], got[i], relTol*scale, "index %d", i)
	}
}

// requireMatrixClose compares two matrices entrywise within tol.
func requireMatrixClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDelta(t, at(t, want, i, j), at(t, got, i, j), tol, "(%d,%d)", i, j)
		}
	}
}
