// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer used by the penalty
// and objective packages.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Kernels that always allocate fresh results: Mul, Product, Transpose,
//     Scale, Sub, Map.
//   - LU with partial pivoting and Inverse built on it (ErrSingular when no
//     non-zero pivot exists).
//   - Off-diagonal helpers: StrictUpper, StrictLower, OffDiagonalMap.
//   - Central validators (ValidateSquare, ValidateSymmetric, ...) returning
//     sentinel errors that callers match with errors.Is.
//
// Inputs are read-only everywhere; all kernels are safe for concurrent use as
// long as callers do not write to an operand at the same time.
package matrix
