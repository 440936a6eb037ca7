// SPDX-License-Identifier: MIT

// Package objective: functional configuration for problem bindings.
// This file defines:
//   - Option (functional setter) and the internal options state,
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions, which applies setters over the defaults.
//
// Design goals:
//   - Defaults reproduce the bare SPDCost/SPDEgrad/... functions exactly.
//   - No dead switches: each option changes behavior and is covered by tests.

package objective

import (
	"math"

	"github.com/katalvlaran/sparsepen/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSymmetryCheck leaves inputs unvalidated, matching the bare functions.
	DefaultSymmetryCheck = false

	// DefaultSymmetryTolerance is used by WithSymmetryCheck callers that pass 0.
	DefaultSymmetryTolerance = 1e-9

	// DefaultWeight is the regularization weight applied to cost and gradients.
	DefaultWeight = 1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "objective: WithSymmetryCheck: tol must be finite, non-negative"
	panicWeightInvalid    = "objective: WithWeight: lambda must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	symmetryCheck bool    // DefaultSymmetryCheck
	symmetryTol   float64 // DefaultSymmetryTolerance
	weight        float64 // DefaultWeight
}

func defaultOptions() options {
	return options{
		symmetryCheck: DefaultSymmetryCheck,
		symmetryTol:   DefaultSymmetryTolerance,
		weight:        DefaultWeight,
	}
}

// gatherOptions applies opts in order over the defaults; nil setters are skipped.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithSymmetryCheck validates the SPD variable R (or the factor block S) as
// symmetric within tol before every evaluation; violations return
// matrix.ErrAsymmetry. tol == 0 selects DefaultSymmetryTolerance.
// Panics when tol is negative or not finite.
func WithSymmetryCheck(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}
	if tol == 0 {
		tol = DefaultSymmetryTolerance
	}

	return func(o *options) {
		o.symmetryCheck = true
		o.symmetryTol = tol
	}
}

// WithWeight multiplies cost and every gradient block by lambda.
// lambda == 0 turns the penalty off (zero cost, zero gradients).
// Panics when lambda is negative or not finite.
func WithWeight(lambda float64) Option {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda < 0 {
		panic(panicWeightInvalid)
	}

	return func(o *options) { o.weight = lambda }
}

// validate runs the configured pre-evaluation checks on a square block.
func (o options) validate(m matrix.Matrix) error {
	if !o.symmetryCheck {
		return nil
	}

	return matrix.ValidateSymmetric(m, o.symmetryTol)
}
