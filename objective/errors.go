// SPDX-License-Identifier: MIT

package objective

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsepen/penalty"
)

// ErrNilPenalty is returned when no penalty (or a Pair with a nil function) is supplied.
var ErrNilPenalty = errors.New("objective: nil penalty")

// Operation tags for error wrapping.
const (
	opSPDCost     = "SPDCost"
	opSPDEgrad    = "SPDEgrad"
	opSPDRgrad    = "SPDRgrad"
	opFactorCost  = "FactorCost"
	opFactorEgrad = "FactorEgrad"
	opInner       = "ProductTangent.Inner"
)

// objectiveErrorf wraps err with an operation tag; errors.Is keeps matching the sentinel.
func objectiveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkPenalty rejects nil capabilities up front so evaluation never panics on them.
func checkPenalty(p penalty.Penalty) error {
	if p == nil {
		return ErrNilPenalty
	}
	if pair, ok := p.(penalty.Pair); ok && (pair.H == nil || pair.DH == nil) {
		return ErrNilPenalty
	}

	return nil
}
