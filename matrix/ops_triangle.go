// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Off-diagonal kernels for square matrices: strict-triangle extraction and
//     the zero-diagonal elementwise map used by sparsity penalties.
//
// Determinism & Performance:
//   - Fixed loop orders: strict upper in row-major (i<j), strict lower in row-major (i>j).
//   - Reads go through asDense, so *Dense inputs are never copied.

package matrix

const (
	opStrictUpper    = "StrictUpper"
	opStrictLower    = "StrictLower"
	opOffDiagonalMap = "OffDiagonalMap"
)

// StrictUpper returns the entries m[i,j] with i<j in row-major order.
// The slice has n(n-1)/2 elements; it is empty (non-nil) for n == 1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func StrictUpper(m Matrix) ([]float64, error) {
	return strictTriangle(opStrictUpper, m, true)
}

// StrictLower returns the entries m[i,j] with i>j in row-major order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func StrictLower(m Matrix) ([]float64, error) {
	return strictTriangle(opStrictLower, m, false)
}

func strictTriangle(tag string, m Matrix, upper bool) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	n := d.r
	out := make([]float64, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		if upper {
			for j = i + 1; j < n; j++ {
				out = append(out, d.data[i*n+j])
			}
			continue
		}
		for j = 0; j < i; j++ {
			out = append(out, d.data[i*n+j])
		}
	}

	return out, nil
}

// OffDiagonalMap returns G with G[i,i] = 0 and G[i,j] = f(m[i,j]) for i≠j.
// f is never evaluated on the diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n^2) evaluations of f, Space O(n^2).
//
// AI-Hints:
//   - This is the support mask of a penalty on off-diagonal entries; chain it
//     with Mul to build gradients.
func OffDiagonalMap(m Matrix, f func(v float64) float64) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opOffDiagonalMap, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opOffDiagonalMap, err)
	}
	n := d.r
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opOffDiagonalMap, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				out.data[i*n+j] = f(d.data[i*n+j])
			}
		}
	}

	return out, nil
}
