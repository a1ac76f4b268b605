// SPDX-License-Identifier: MIT
// Package matrix: matrix-vector and matrix-matrix products.
// Standard O(r·c) / O(r·n·c) kernels with deterministic loop orders and
// zero-skip on the left operand; no Strassen-style blocking (the library
// targets small, dense workloads).

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

const (
	opMulVec = "MulVec"
	opMulMat = "MulMat"
)

// MulVec computes y = M·x for a column vector x.
//
// Contract: m non-nil; x.Len() == m.Cols().
// Determinism: fixed i→j loop order, one accumulator per row.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r·c), Space O(r) for y.
func MulVec[K scalar.Number](m *Matrix[K], x vector.Vector[K]) (vector.Vector[K], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	// The vector length must match the number of columns.
	if err := validateVecLen(x, m.cols); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	y := make(vector.Vector[K], m.rows)
	zero := scalar.Zero[K]()
	for i := 0; i < m.rows; i++ {
		acc := zero        // reset accumulator per row
		base := i * m.cols // flat base offset for row i
		for j := 0; j < m.cols; j++ {
			if xv := x[j]; xv != zero { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// MulMat performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate A,B non-nil and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j triple loop with row-major strides; zero entries of
//     A[i,k] are skipped to avoid useless multiplies.
//
// Determinism: fixed loop order; one allocation for C.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r·n·c), Space O(r·c).
func MulMat[K scalar.Number](a, b *Matrix[K]) (*Matrix[K], error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulMat, err)
	}

	out := &Matrix[K]{rows: a.rows, cols: b.cols, data: make([]K, a.rows*b.cols)}
	zero := scalar.Zero[K]()
	for i := 0; i < a.rows; i++ {
		baseA := i * a.cols
		baseC := i * b.cols
		for k := 0; k < a.cols; k++ {
			av := a.data[baseA+k]
			if av == zero {
				continue // skip a whole inner pass for a zero coefficient
			}
			baseB := k * b.cols
			for j := 0; j < b.cols; j++ {
				out.data[baseC+j] += av * b.data[baseB+j]
			}
		}
	}

	return out, nil
}
