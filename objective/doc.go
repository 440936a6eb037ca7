// SPDX-License-Identifier: MIT

// Package objective builds sparse-penalized cost functions and their gradients
// over two parameterizations of a covariance-like matrix.
//
// SPD path, for a symmetric positive-definite R:
//
//	cost(R)  = Σ_{i≠j} h(R⁻¹[i,j])
//	egrad(R) = −R⁻¹·G·R⁻¹
//	rgrad(R) = −G
//
// Factor path, for θ = (L, S) with H = L·S⁻¹·Lᵀ:
//
//	cost(θ)  = Σ_{i≠j} h(H[i,j])
//	egrad(θ) = (2·G·L·S⁻¹, −S⁻¹·Lᵀ·G·L·S⁻¹, 0)
//
// In both cases G carries dh of the off-diagonal entries and zeros on the
// diagonal; h and dh come from a penalty.Penalty.
//
// The package never runs an optimizer. SPDProblem and FactorProblem bind a
// penalty (and options such as WithWeight) into single-argument method values,
// and SPDFunc / FactorFunc present them over flat vectors in the Func/Grad
// shape consumed by gonum's optimize and diff/fd packages.
//
// Every call recomputes the inverse; nothing is cached, so all values are safe
// for concurrent use.
package objective
