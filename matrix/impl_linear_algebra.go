// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, scalar scaling, subtraction, pivoted LU
// factorization and inversion. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used by the penalty and objective layers.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated.
//   - *Dense operands hit flat-slice fast paths; other implementations are
//     materialized once through At (fixed i→j order) and then share the same kernel.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitution and dot-product loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opInverse   = "Inverse"
	opLU        = "LU"
	opMap       = "Map"
	opProduct   = "Product"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns the flat view of m: the *Dense itself when m already is one,
// otherwise a fresh copy read through At in fixed i→j order.
// The returned matrix MUST be treated as read-only by kernels.
//
// Complexity:
//   - Time O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	for idx := range res.data { // single flat loop
		res.data[idx] = da.data[idx] - db.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix (ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	return mapDense(opScale, m, func(v float64) float64 { return alpha * v })
}

// Map returns a fresh matrix with f applied to every element, preserving shape.
// The input is never mutated; f must be pure.
//
// Errors:
//   - ErrNilMatrix (ValidateNotNil).
//
// Complexity:
//   - Time O(r*c) evaluations of f, Space O(r*c).
func Map(m Matrix, f func(v float64) float64) (*Dense, error) {
	return mapDense(opMap, m, f)
}

// mapDense is the shared flat-loop kernel behind Scale and Map.
func mapDense(tag string, m Matrix, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for idx, v := range dm.data {
		res.data[idx] = f(v)
	}

	return res, nil
}

// LU computes the partially pivoted factorization P·A = L·U.
// L has a unit diagonal, U is upper triangular and perm encodes P:
// row i of P·A is row perm[i] of A.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy A into a flat work buffer.
//   - Stage 2: For k=0..n-1 pick the largest |a[i,k]| for i≥k, swap rows, eliminate below.
//   - Stage 3: Split the packed buffer into L and U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (a column has no non-zero pivot).
//
// Determinism:
//   - Ties in pivot magnitude resolve to the smallest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (L, U *Dense, perm []int, err error) {
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	work, err := luPacked(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	if L, err = NewIdentity(n); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	if U, err = NewDense(n, n); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = work.a.data[i*n+j]
			} else {
				U.data[i*n+j] = work.a.data[i*n+j]
			}
		}
	}

	return L, U, work.perm, nil
}

// packedLU holds L (strictly below the diagonal) and U (on and above it)
// in a single buffer, plus the row permutation.
type packedLU struct {
	a    *Dense
	perm []int
}

// luPacked runs Gaussian elimination with partial pivoting on a copy of m.
// Assumes m is non-nil and square.
func luPacked(m Matrix) (*packedLU, error) {
	src, err := asDense(m)
	if err != nil {
		return nil, err
	}
	a := src.Clone().(*Dense) // never touch the caller's buffer
	n := a.r
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p       int
		best, pivot, mag float64
		factor           float64
		rowK, rowI       int
	)
	for k = 0; k < n; k++ {
		// Pivot search over column k, rows k..n-1.
		p, best = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if mag = math.Abs(a.data[i*n+k]); mag > best {
				p, best = i, mag
			}
		}
		if best == ZeroPivot {
			return nil, fmt.Errorf("column %d: %w", k, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		rowK = k * n
		pivot = a.data[rowK+k]
		for i = k + 1; i < n; i++ {
			rowI = i * n
			factor = a.data[rowI+k] / pivot
			a.data[rowI+k] = factor // store the L multiplier in place
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[rowI+j] -= factor * a.data[rowK+j]
			}
		}
	}

	return &packedLU{a: a, perm: perm}, nil
}

// Inverse computes A^{-1} from the pivoted LU factorization.
// The input must be non-nil and square. Returns ErrSingular when no non-zero pivot exists.
// Produces a new Dense matrix; does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); factorize P·A = L·U.
//   - Stage 2: For each canonical basis column e_col:
//   - Forward solve L*y = P*e_col (top-down).
//   - Backward solve U*x = y (bottom-up).
//   - Write x into column `col` of the result.
//
// Errors:
//   - ErrNilMatrix         (ValidateNotNil).
//   - ErrDimensionMismatch (ValidateSquare).
//   - ErrSingular          (factorization).
//
// Determinism:
//   - Fixed traversal (col↑, forward i↑, backward i↓) and deterministic pivoting.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Inputs close to singular return huge but finite entries; callers that care
//     should check conditioning upstream.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	lu, err := luPacked(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := lu.a.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		base      int
		a         = lu.a.data
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col, where (P*e_col)[i] = 1 iff perm[i] == col.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			base = i * n
			for k = 0; k < i; k++ {
				sum += a[base+k] * y[k]
			}
			if lu.perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y. Pivots are non-zero after luPacked.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			base = i * n
			for k = i + 1; k < n; k++ {
				sum += a[base+k] * x[k]
			}
			x[i] = (y[i] - sum) / a[base+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
