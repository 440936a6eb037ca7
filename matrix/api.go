// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for compositions that callers repeat often.
//   - Avoid any logic duplication; each facade delegates to the canonical kernels.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "fmt"

// Product multiplies ms left to right: ms[0]·ms[1]·…·ms[k-1].
// A single operand is returned as a fresh copy.
//
// Errors:
//   - ErrNilMatrix when called with no operands or with a nil operand.
//   - ErrDimensionMismatch from the first non-conformable pair (wrapped with its position).
//
// Complexity:
//   - Sum of the pairwise Mul costs; no reordering is attempted.
//
// AI-Hints:
//   - Chains like −A⁻¹·G·A⁻¹ read naturally as Product(inv, G, inv) followed by Scale(·, -1).
func Product(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opProduct, ErrNilMatrix)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}
	acc, err := asDense(ms[0])
	if err != nil {
		return nil, matrixErrorf(opProduct, err)
	}
	if len(ms) == 1 {
		return acc.Clone().(*Dense), nil
	}
	for k := 1; k < len(ms); k++ {
		if acc, err = Mul(acc, ms[k]); err != nil {
			return nil, matrixErrorf(opProduct, fmt.Errorf("operand %d: %w", k, err))
		}
	}

	return acc, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}
