// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels, transpose family and trace.
// All functions perform strict fail-fast validation, return sentinel
// errors on dimension mismatches, allocate exactly one fresh result and
// never mutate their operands.

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opHadamard      = "Hadamard"
	opLerp          = "Lerp"
	opTranspose     = "Transpose"
	opConjTranspose = "ConjTranspose"
	opTrace         = "Trace"
)

// addSub computes out = a + sign·b for sign ∈ {+1, −1}.
// Shared by Add and Sub so validation, allocation and the flat loop live
// in one place.
// Complexity: O(r·c), one allocation.
func addSub[K scalar.Number](a, b *Matrix[K], sign K, opTag string) (*Matrix[K], error) {
	// Validate both operands are non-nil and share a shape.
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Single flat pass 0..n-1 over the backing slices.
	out := &Matrix[K]{rows: a.rows, cols: a.cols, data: make([]K, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add returns the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c).
func Add[K scalar.Number](a, b *Matrix[K]) (*Matrix[K], error) {
	return addSub(a, b, scalar.One[K](), opAdd)
}

// Sub returns the element-wise difference C = A − B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c).
func Sub[K scalar.Number](a, b *Matrix[K]) (*Matrix[K], error) {
	return addSub(a, b, -scalar.One[K](), opSub)
}

// Neg returns −M. Always succeeds for a non-nil operand.
// Complexity: O(r·c).
func Neg[K scalar.Number](m *Matrix[K]) *Matrix[K] {
	out := &Matrix[K]{rows: m.rows, cols: m.cols, data: make([]K, len(m.data))}
	for i := range m.data {
		out.data[i] = -m.data[i]
	}

	return out
}

// Scale returns k·M. Always succeeds; NaN/Inf coefficients propagate.
// Complexity: O(r·c).
func Scale[K scalar.Number](m *Matrix[K], k K) *Matrix[K] {
	out := &Matrix[K]{rows: m.rows, cols: m.cols, data: make([]K, len(m.data))}
	for i := range m.data {
		out.data[i] = m.data[i] * k
	}

	return out
}

// Hadamard returns the term-by-term product A ⊙ B. This is element-wise
// multiplication, not the matrix product; use MulMat for A×B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c).
func Hadamard[K scalar.Number](a, b *Matrix[K]) (*Matrix[K], error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	out := &Matrix[K]{rows: a.rows, cols: a.cols, data: make([]K, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] * b.data[i]
	}

	return out, nil
}

// Lerp returns the element-wise interpolation A + t·(B−A).
// The ratio t is deliberately NOT clamped: values outside [0,1]
// extrapolate, matching linear-algebra semantics.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c).
func Lerp[K scalar.Number](a, b *Matrix[K], t K) (*Matrix[K], error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opLerp, err)
	}

	out := &Matrix[K]{rows: a.rows, cols: a.cols, data: make([]K, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + t*(b.data[i]-a.data[i])
	}

	return out, nil
}

// Transpose returns Mᵀ: swapped dimensions with out[i,j] = m[j,i].
// For complex scalars this is the PLAIN transpose: entries are not
// conjugated; use ConjTranspose for the Hermitian adjoint.
// Errors: ErrNilMatrix.
// Complexity: O(r·c).
func Transpose[K scalar.Number](m *Matrix[K]) (*Matrix[K], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Result has flipped dimensions; copy in fixed i→j order.
	out := &Matrix[K]{rows: m.cols, cols: m.rows, data: make([]K, len(m.data))}
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[base+j]
		}
	}

	return out, nil
}

// ConjTranspose returns the Hermitian adjoint M* (conjugate transpose).
// On real scalars it coincides with Transpose.
// Errors: ErrNilMatrix.
// Complexity: O(r·c).
func ConjTranspose[K scalar.Number](m *Matrix[K]) (*Matrix[K], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}

	out := &Matrix[K]{rows: m.cols, cols: m.rows, data: make([]K, len(m.data))}
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = scalar.Conj(m.data[base+j])
		}
	}

	return out, nil
}

// Trace returns Σ M[i,i] for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace[K scalar.Number](m *Matrix[K]) (K, error) {
	if err := validateSquare(m); err != nil {
		return scalar.Zero[K](), matrixErrorf(opTrace, err)
	}

	// Walk the diagonal in fixed order.
	acc := scalar.Zero[K]()
	for i := 0; i < m.rows; i++ {
		acc += m.data[i*m.cols+i]
	}

	return acc, nil
}
