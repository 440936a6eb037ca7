// SPDX-License-Identifier: MIT

// Package sparsepen provides smooth sparsity penalties and the cost and
// gradient builders that put them to work in manifold optimization of
// covariance and precision models.
//
// The module is organized in three subpackages:
//
//	matrix/     dense row-major matrices, LU with partial pivoting, Inverse,
//	            products and off-diagonal helpers
//	penalty/    SmoothL1 / SmoothReLU and their derivatives, the Penalty
//	            capability and its L1, ReLU and Pair implementations
//	objective/  SPD and factor-model cost, Euclidean and Riemannian
//	            gradients, problem bindings and flat Func/Grad adapters
//
// Quick example:
//
//	p, _ := penalty.NewL1(0.01)
//	prob := objective.NewSPDProblem(p)
//	cost, err := prob.Cost(R)
//	grad, err := prob.Egrad(R)
//
// Hand prob.Cost, prob.Egrad and prob.Rgrad to the optimizer of your choice.
// The module does not ship one.
package sparsepen
