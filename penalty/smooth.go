// SPDX-License-Identifier: MIT
// Package: penalty
//
// Purpose:
//   - Scalar smooth surrogates of |x| and max(x,0) and their derivatives.
//   - Overflow fallbacks applied to the single expression that can overflow.
//
// Numeric policy:
//   - eps is not validated here (callers wanting validation use NewL1/NewReLU).
//   - Go float arithmetic never traps, so an overflowing cosh/exp silently yields
//     +Inf; guardInf replaces that result with the exact asymptote.

package penalty

import "math"

// guardInf returns fallback when v is ±Inf, v otherwise.
// It is the only place where overflow is observed; there is no FP state to restore.
func guardInf(v, fallback float64) float64 {
	if math.IsInf(v, 0) {
		return fallback
	}

	return v
}

// SmoothL1 returns eps·log(cosh(x/eps)), a smooth approximation of |x|.
//
// For |x| ≫ eps the result tends to |x| - eps·log 2; for |x| ≪ eps it is ≈ x²/(2·eps).
// When cosh(x/eps) overflows the result is exactly |x|.
//
// Complexity: O(1).
func SmoothL1(x, eps float64) float64 {
	return guardInf(eps*math.Log(math.Cosh(x/eps)), math.Abs(x))
}

// SmoothL1Deriv returns tanh(x/eps), the derivative of SmoothL1; bounded in (-1, 1).
func SmoothL1Deriv(x, eps float64) float64 {
	return math.Tanh(x / eps)
}

// SmoothReLU returns eps·log(1+exp(x/eps)), an eps-scaled softplus approximating max(x,0).
// When exp(x/eps) overflows the result is exactly x.
//
// Complexity: O(1).
func SmoothReLU(x, eps float64) float64 {
	return guardInf(eps*math.Log(1+math.Exp(x/eps)), x)
}

// SmoothReLUDeriv returns the logistic sigmoid exp(x/eps)/(1+exp(x/eps)).
//
// A NaN result is replaced by 1. NOTE: suspected defect kept until
// confirmed by the model owners: the fallback was meant for x → −∞, whose true
// limit is 0. In IEEE arithmetic the ratio only becomes NaN (Inf/Inf) for large
// positive x/eps, where 1 is the right limit, and for NaN inputs, which also map to 1.
// Very negative x returns exp underflow ≈ 0 without touching the fallback.
func SmoothReLUDeriv(x, eps float64) float64 {
	e := math.Exp(x / eps)
	res := e / (1 + e)
	if math.IsNaN(res) {
		return 1
	}

	return res
}
