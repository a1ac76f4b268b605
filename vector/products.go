// SPDX-License-Identifier: MIT
// Package vector: products and norms.
// Dot is the Hermitian inner product (conjugation on the left operand),
// which reduces to the classical dot product on real scalars. Norms are
// modulus-based and therefore always real-valued.

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/scalar"
)

const (
	opDot       = "Dot"
	opCross     = "Cross"
	opAngleCos  = "AngleCos"
	opNormalize = "Normalize"
)

// crossLen is the only vector length the cross product is defined for.
const crossLen = 3

// Dot returns the inner product Σ conj(u_i)·v_i.
// On real scalars conjugation is the identity, so Dot is the classical
// dot product; on complex scalars the conjugation makes Dot(u, u) a
// non-negative real, as an inner product requires.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func Dot[K scalar.Number](u, v Vector[K]) (K, error) {
	if err := validateSameLen(u, v); err != nil {
		return scalar.Zero[K](), vectorErrorf(opDot, err)
	}

	// Single accumulation pass in fixed index order.
	acc := scalar.Zero[K]()
	for i := range u {
		acc += scalar.Conj(u[i]) * v[i]
	}

	return acc, nil
}

// Norm1 returns the taxicab norm Σ |v_i|.
// Complexity: O(n).
func Norm1[K scalar.Number](v Vector[K]) float64 {
	var sum float64
	for _, x := range v {
		sum += scalar.Abs(x)
	}

	return sum
}

// Norm2 returns the Euclidean norm √(Σ |v_i|²): one accumulation pass
// followed by a single square root.
// Complexity: O(n).
func Norm2[K scalar.Number](v Vector[K]) float64 {
	var sum float64
	for _, x := range v {
		m := scalar.Abs(x)
		sum += m * m
	}

	return math.Sqrt(sum)
}

// NormInf returns the supremum norm max |v_i|; 0 for the empty vector.
// Complexity: O(n).
func NormInf[K scalar.Number](v Vector[K]) float64 {
	var max float64
	for _, x := range v {
		if m := scalar.Abs(x); m > max {
			max = m
		}
	}

	return max
}

// Cross returns the cross product u × v, defined only for 3-vectors.
// Parallel operands yield the zero vector.
// Errors: ErrDimensionMismatch when either operand is not 3-dimensional.
// Complexity: O(1).
func Cross[K scalar.Number](u, v Vector[K]) (Vector[K], error) {
	// Both operands must be exactly three-dimensional.
	if len(u) != crossLen || len(v) != crossLen {
		return nil, vectorErrorf(opCross,
			fmt.Errorf("len %d × len %d: %w", len(u), len(v), ErrDimensionMismatch))
	}

	return Vector[K]{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}, nil
}

// AngleCos returns the cosine of the angle between u and v:
// Dot(u, v) / (‖u‖·‖v‖). For complex scalars the result is the complex
// "Hermitian cosine"; its modulus is ≤ 1 by Cauchy–Schwarz.
// Errors: ErrDimensionMismatch on length mismatch, ErrZeroVector when
// either operand has zero norm (the angle is undefined).
// Complexity: O(n).
func AngleCos[K scalar.Number](u, v Vector[K]) (K, error) {
	d, err := Dot(u, v)
	if err != nil {
		return scalar.Zero[K](), vectorErrorf(opAngleCos, err)
	}

	// A zero operand makes the angle undefined.
	nu, nv := Norm2(u), Norm2(v)
	if nu == 0 || nv == 0 {
		return scalar.Zero[K](), vectorErrorf(opAngleCos, ErrZeroVector)
	}

	return d / scalar.FromFloat[K](nu*nv), nil
}

// Normalize returns v / ‖v‖₂, the unit vector along v.
// Errors: ErrZeroVector when ‖v‖₂ == 0.
// Complexity: O(n).
func Normalize[K scalar.Number](v Vector[K]) (Vector[K], error) {
	n := Norm2(v)
	if n == 0 {
		return nil, vectorErrorf(opNormalize, ErrZeroVector)
	}

	inv := scalar.FromFloat[K](1 / n)
	out := make(Vector[K], len(v))
	for i := range v {
		out[i] = v[i] * inv
	}

	return out, nil
}
