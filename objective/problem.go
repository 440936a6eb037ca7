// SPDX-License-Identifier: MIT

package objective

import (
	"github.com/katalvlaran/sparsepen/matrix"
	"github.com/katalvlaran/sparsepen/penalty"
)

// SPDProblem binds a penalty and options to the SPD builders so that cost and
// gradients become single-argument functions of the manifold point. The method
// values (prob.Cost, prob.Egrad, prob.Rgrad) are what an optimizer consumes.
//
// An SPDProblem holds no mutable state and is safe for concurrent use.
type SPDProblem struct {
	penalty penalty.Penalty
	opts    options
}

// NewSPDProblem returns an SPDProblem for p. A nil p is reported by every method
// as ErrNilPenalty.
func NewSPDProblem(p penalty.Penalty, opts ...Option) *SPDProblem {
	return &SPDProblem{penalty: p, opts: gatherOptions(opts...)}
}

// Cost evaluates SPDCost at R.
func (sp *SPDProblem) Cost(R matrix.Matrix) (float64, error) {
	return spdCost(R, sp.penalty, sp.opts)
}

// Egrad evaluates SPDEgrad at R.
func (sp *SPDProblem) Egrad(R matrix.Matrix) (*matrix.Dense, error) {
	return spdEgrad(R, sp.penalty, sp.opts)
}

// Rgrad evaluates SPDRgrad at R.
func (sp *SPDProblem) Rgrad(R matrix.Matrix) (*matrix.Dense, error) {
	return spdRgrad(R, sp.penalty, sp.opts)
}

// FactorProblem is the factor-model counterpart of SPDProblem.
type FactorProblem struct {
	penalty penalty.Penalty
	opts    options
}

// NewFactorProblem returns a FactorProblem for p.
func NewFactorProblem(p penalty.Penalty, opts ...Option) *FactorProblem {
	return &FactorProblem{penalty: p, opts: gatherOptions(opts...)}
}

// Cost evaluates FactorCost at theta.
func (fp *FactorProblem) Cost(theta Factor) (float64, error) {
	return factorCost(theta, fp.penalty, fp.opts)
}

// Egrad evaluates FactorEgrad at theta.
func (fp *FactorProblem) Egrad(theta Factor) (ProductTangent, error) {
	return factorEgrad(theta, fp.penalty, fp.opts)
}
