// SPDX-License-Identifier: MIT

package objective

import (
	"math"

	"github.com/katalvlaran/sparsepen/matrix"
)

const (
	panicSPDLength    = "objective: SPDFunc: len(x) must be N*N"
	panicFactorLength = "objective: FactorFunc: len(x) must be P*R + R*R"
	panicGradLength   = "objective: Grad: len(grad) must equal len(x)"
)

// SPDFunc exposes an SPDProblem over a flat row-major vector of length N*N in the
// Func/Grad shape used by gonum's optimize and diff/fd packages.
// Points where evaluation fails (a singular R) yield NaN.
type SPDFunc struct {
	Problem *SPDProblem
	N       int
}

// Func returns the cost at x.
func (f SPDFunc) Func(x []float64) float64 {
	R, err := f.point(x)
	if err != nil {
		return math.NaN()
	}
	c, err := f.Problem.Cost(R)
	if err != nil {
		return math.NaN()
	}

	return c
}

// Grad writes the Euclidean gradient at x into grad.
func (f SPDFunc) Grad(grad, x []float64) {
	if len(grad) != len(x) {
		panic(panicGradLength)
	}
	R, err := f.point(x)
	if err != nil {
		fillNaN(grad)
		return
	}
	g, err := f.Problem.Egrad(R)
	if err != nil {
		fillNaN(grad)
		return
	}
	copy(grad, g.Data())
}

func (f SPDFunc) point(x []float64) (*matrix.Dense, error) {
	if len(x) != f.N*f.N {
		panic(panicSPDLength)
	}

	return matrix.NewDenseFrom(f.N, f.N, x)
}

// FactorFunc exposes a FactorProblem over a flat vector holding L (P×R, row-major)
// followed by S (R×R, row-major). The Fixed block is not part of the vector.
type FactorFunc struct {
	Problem *FactorProblem
	P, R    int
}

// Func returns the cost at x.
func (f FactorFunc) Func(x []float64) float64 {
	theta, err := f.point(x)
	if err != nil {
		return math.NaN()
	}
	c, err := f.Problem.Cost(theta)
	if err != nil {
		return math.NaN()
	}

	return c
}

// Grad writes the Loading and Residual gradient blocks at x into grad.
func (f FactorFunc) Grad(grad, x []float64) {
	if len(grad) != len(x) {
		panic(panicGradLength)
	}
	theta, err := f.point(x)
	if err != nil {
		fillNaN(grad)
		return
	}
	g, err := f.Problem.Egrad(theta)
	if err != nil {
		fillNaN(grad)
		return
	}
	n := copy(grad, g.Loading.Data())
	copy(grad[n:], g.Residual.Data())
}

func (f FactorFunc) point(x []float64) (Factor, error) {
	split := f.P * f.R
	if len(x) != split+f.R*f.R {
		panic(panicFactorLength)
	}
	L, err := matrix.NewDenseFrom(f.P, f.R, x[:split])
	if err != nil {
		return Factor{}, err
	}
	S, err := matrix.NewDenseFrom(f.R, f.R, x[split:])
	if err != nil {
		return Factor{}, err
	}

	return Factor{L: L, S: S}, nil
}

func fillNaN(dst []float64) {
	for i := range dst {
		dst[i] = math.NaN()
	}
}
