// SPDX-License-Identifier: MIT

// Package scalar: the field abstraction shared by all numeric kernels.
// This file contains ONLY the constraint and the capability functions;
// no container logic and no package-level mutable state live here.

package scalar

import (
	"math"
	"math/cmplx"
)

// Number is the scalar-field constraint: the set of types every linalg
// algorithm is instantiated for. Both members support + - * / natively,
// which keeps generic kernels operator-based. The union is exact (no ~)
// so the dispatch in Conj stays total.
type Number interface {
	float64 | complex128
}

// Zero returns the additive identity of the field.
// Complexity: O(1).
func Zero[K Number]() K {
	var z K // the zero value of both float64 and complex128 is the additive identity

	return z
}

// One returns the multiplicative identity of the field.
// Complexity: O(1).
func One[K Number]() K {
	return K(1) // the untyped constant 1 is representable by every member of Number
}

// FromFloat embeds a real value into the field: f for real scalars,
// f+0i for complex scalars. Non-constant float↔complex conversions are
// not defined over a type parameter, so the members are dispatched
// through any, the same way Conj does.
// Complexity: O(1).
func FromFloat[K Number](f float64) K {
	if _, ok := any(Zero[K]()).(complex128); ok {
		return any(complex(f, 0)).(K) // purely real complex value
	}

	return any(f).(K)
}

// Conj returns the complex conjugate of k. For real scalars conjugation
// is the identity, which makes the Hermitian inner product collapse to
// the classical dot product.
// Complexity: O(1).
func Conj[K Number](k K) K {
	if v, ok := any(k).(complex128); ok {
		return any(cmplx.Conj(v)).(K) // negate the imaginary part
	}

	return k // real scalars are their own conjugate
}

// Abs returns the modulus of k as a float64: |k| for real scalars,
// √(re²+im²) for complex scalars. Norms and pivot selection compare
// scalars exclusively through this function.
// Complexity: O(1).
func Abs[K Number](k K) float64 {
	if v, ok := any(k).(complex128); ok {
		return cmplx.Abs(v) // √(re²+im²)
	}

	return math.Abs(any(k).(float64))
}

// IsZero reports whether the modulus of k is at or below tol.
// Row-reduction kernels use it to classify near-zero pivots; tol must be
// non-negative (callers derive it from a validated epsilon policy).
// Complexity: O(1).
func IsZero[K Number](k K, tol float64) bool {
	return Abs(k) <= tol
}
