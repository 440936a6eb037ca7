// SPDX-License-Identifier: MIT

// Package penalty provides smooth, differentiable surrogates for
// sparsity-inducing penalties and their derivatives.
//
//	SmoothL1(x, eps)        = eps·log(cosh(x/eps))      ≈ |x|
//	SmoothL1Deriv(x, eps)   = tanh(x/eps)               ≈ sign(x)
//	SmoothReLU(x, eps)      = eps·log(1 + exp(x/eps))   ≈ max(x, 0)
//	SmoothReLUDeriv(x, eps) = sigmoid(x/eps)            ≈ step(x)
//
// Smaller eps brings each function closer to its non-smooth target at the cost
// of a wider numeric range. Overflowing cosh/exp evaluations fall back to the
// exact asymptote (|x| and x respectively) instead of returning Inf.
//
// Every primitive has a scalar form, a slice form (…Vec) and a matrix form via
// Map; none of them mutates its input. The Penalty interface bundles a value
// and derivative pair so that L1, ReLU or any caller-defined Pair can be
// swapped into the objective builders.
package penalty
