// SPDX-License-Identifier: MIT

package penalty

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sparsepen/matrix"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidEps is returned by NewL1/NewReLU when eps is not a finite positive number.
var ErrInvalidEps = errors.New("penalty: eps must be finite and > 0")

// Stable identifiers returned by Name.
const (
	NameSmoothL1   = "smooth-l1"
	NameSmoothReLU = "smooth-relu"
)

// Penalty is the injected (h, dh) capability: an elementwise penalty and its derivative.
// Objective builders are parametric over it; implementations must be pure.
type Penalty interface {
	// Value evaluates the smoothed penalty h(x).
	Value(x float64) float64
	// Deriv evaluates dh/dx at x.
	Deriv(x float64) float64
}

// Compile-time conformance.
var (
	_ Penalty = L1{}
	_ Penalty = ReLU{}
	_ Penalty = Pair{}
)

// L1 is the log-cosh smoothing of |x| with smoothing scale Eps.
type L1 struct {
	Eps float64
}

// NewL1 returns an L1 penalty after checking eps.
func NewL1(eps float64) (L1, error) {
	if err := checkEps(eps); err != nil {
		return L1{}, fmt.Errorf("NewL1: %w", err)
	}

	return L1{Eps: eps}, nil
}

// Value returns SmoothL1(x, p.Eps).
func (p L1) Value(x float64) float64 { return SmoothL1(x, p.Eps) }

// Deriv returns SmoothL1Deriv(x, p.Eps).
func (p L1) Deriv(x float64) float64 { return SmoothL1Deriv(x, p.Eps) }

// Name returns NameSmoothL1.
func (p L1) Name() string { return NameSmoothL1 }

// ReLU is the eps-scaled softplus smoothing of max(x,0).
type ReLU struct {
	Eps float64
}

// NewReLU returns a ReLU penalty after checking eps.
func NewReLU(eps float64) (ReLU, error) {
	if err := checkEps(eps); err != nil {
		return ReLU{}, fmt.Errorf("NewReLU: %w", err)
	}

	return ReLU{Eps: eps}, nil
}

// Value returns SmoothReLU(x, p.Eps).
func (p ReLU) Value(x float64) float64 { return SmoothReLU(x, p.Eps) }

// Deriv returns SmoothReLUDeriv(x, p.Eps).
func (p ReLU) Deriv(x float64) float64 { return SmoothReLUDeriv(x, p.Eps) }

// Name returns NameSmoothReLU.
func (p ReLU) Name() string { return NameSmoothReLU }

// Pair adapts a caller-supplied (h, dh) function pair to Penalty.
// No contract is imposed beyond elementwise evaluability; both fields must be non-nil.
type Pair struct {
	H  func(x float64) float64
	DH func(x float64) float64
}

// Value returns p.H(x).
func (p Pair) Value(x float64) float64 { return p.H(x) }

// Deriv returns p.DH(x).
func (p Pair) Deriv(x float64) float64 { return p.DH(x) }

func checkEps(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return ErrInvalidEps
	}

	return nil
}

// apply maps f over xs into a fresh slice of the same length.
func apply(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}

	return out
}

// SmoothL1Vec applies SmoothL1 elementwise; xs is not mutated.
func SmoothL1Vec(xs []float64, eps float64) []float64 {
	return apply(xs, func(x float64) float64 { return SmoothL1(x, eps) })
}

// SmoothL1DerivVec applies SmoothL1Deriv elementwise; xs is not mutated.
func SmoothL1DerivVec(xs []float64, eps float64) []float64 {
	return apply(xs, func(x float64) float64 { return SmoothL1Deriv(x, eps) })
}

// SmoothReLUVec applies SmoothReLU elementwise; xs is not mutated.
func SmoothReLUVec(xs []float64, eps float64) []float64 {
	return apply(xs, func(x float64) float64 { return SmoothReLU(x, eps) })
}

// SmoothReLUDerivVec applies SmoothReLUDeriv elementwise; xs is not mutated.
func SmoothReLUDerivVec(xs []float64, eps float64) []float64 {
	return apply(xs, func(x float64) float64 { return SmoothReLUDeriv(x, eps) })
}

// VecValue applies p.Value elementwise into a fresh slice.
func VecValue(p Penalty, xs []float64) []float64 { return apply(xs, p.Value) }

// VecDeriv applies p.Deriv elementwise into a fresh slice.
func VecDeriv(p Penalty, xs []float64) []float64 { return apply(xs, p.Deriv) }

// Total returns Σ p.Value(x) over xs (0 for an empty slice).
func Total(p Penalty, xs []float64) float64 {
	return floats.Sum(VecValue(p, xs))
}

// Map applies a scalar primitive (or a penalty method value) to every entry of m,
// preserving shape. m is not mutated.
func Map(m matrix.Matrix, f func(x float64) float64) (*matrix.Dense, error) {
	out, err := matrix.Map(m, f)
	if err != nil {
		return nil, fmt.Errorf("penalty.Map: %w", err)
	}

	return out, nil
}
