// SPDX-License-Identifier: MIT
// Package vector: element-wise combination kernels.
// All functions perform strict fail-fast validation, return sentinel
// errors on length mismatches, and allocate exactly one fresh result.

package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opLerp     = "Lerp"
	opLinComb  = "LinearCombination"
)

// vectorErrorf wraps err with an operation tag, preserving the original
// error via %w so callers keep errors.Is matching.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = u + sign·v for sign ∈ {+1, −1}.
// Shared by Add and Sub so validation and allocation live in one place.
// Complexity: O(n), one allocation.
func addSub[K scalar.Number](u, v Vector[K], sign K, opTag string) (Vector[K], error) {
	// Validate lengths match.
	if err := validateSameLen(u, v); err != nil {
		return nil, vectorErrorf(opTag, err)
	}

	// Single deterministic pass over the elements.
	out := make(Vector[K], len(u))
	for i := range u {
		out[i] = u[i] + sign*v[i]
	}

	return out, nil
}

// Add returns the element-wise sum u + v.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func Add[K scalar.Number](u, v Vector[K]) (Vector[K], error) {
	return addSub(u, v, scalar.One[K](), opAdd)
}

// Sub returns the element-wise difference u − v.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func Sub[K scalar.Number](u, v Vector[K]) (Vector[K], error) {
	return addSub(u, v, -scalar.One[K](), opSub)
}

// Neg returns −v. Always succeeds.
// Complexity: O(n).
func Neg[K scalar.Number](v Vector[K]) Vector[K] {
	out := make(Vector[K], len(v))
	for i := range v {
		out[i] = -v[i]
	}

	return out
}

// Scale returns k·v. Always succeeds; NaN/Inf coefficients propagate.
// Complexity: O(n).
func Scale[K scalar.Number](v Vector[K], k K) Vector[K] {
	out := make(Vector[K], len(v))
	for i := range v {
		out[i] = v[i] * k
	}

	return out
}

// Hadamard returns the term-by-term product u ⊙ v.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func Hadamard[K scalar.Number](u, v Vector[K]) (Vector[K], error) {
	if err := validateSameLen(u, v); err != nil {
		return nil, vectorErrorf(opHadamard, err)
	}

	out := make(Vector[K], len(u))
	for i := range u {
		out[i] = u[i] * v[i]
	}

	return out, nil
}

// Lerp returns the linear interpolation u + t·(v−u).
// The ratio t is deliberately NOT clamped: values outside [0,1]
// extrapolate along the same line, matching linear-algebra semantics
// rather than graphics clamping.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func Lerp[K scalar.Number](u, v Vector[K], t K) (Vector[K], error) {
	if err := validateSameLen(u, v); err != nil {
		return nil, vectorErrorf(opLerp, err)
	}

	out := make(Vector[K], len(u))
	for i := range u {
		out[i] = u[i] + t*(v[i]-u[i])
	}

	return out, nil
}

// LinearCombination computes Σ coeffs[i]·vectors[i] in a single
// accumulation pass, bounding floating-error growth to one pass instead
// of repeated pairwise adds.
//
// Implementation:
//   - Stage 1: validate coefficient count, non-empty family, uniform length.
//   - Stage 2: accumulate out[j] += coeffs[i]·vectors[i][j] in fixed i→j order.
//
// Errors:
//   - ErrDimensionMismatch: len(coeffs) != len(vectors), or a family
//     member disagrees with the first vector's length.
//   - ErrNoVectors: empty family (result length undefined).
//
// Complexity: Time O(k·n), Space O(n) for the result.
func LinearCombination[K scalar.Number](vectors []Vector[K], coeffs []K) (Vector[K], error) {
	// Validate coefficient count against the family size.
	if len(vectors) != len(coeffs) {
		return nil, vectorErrorf(opLinComb,
			fmt.Errorf("%d vectors vs %d coefficients: %w", len(vectors), len(coeffs), ErrDimensionMismatch))
	}
	// An empty family has no well-defined result length.
	if len(vectors) == 0 {
		return nil, vectorErrorf(opLinComb, ErrNoVectors)
	}
	// All vectors must share the first vector's length.
	n := len(vectors[0])
	for i := 1; i < len(vectors); i++ {
		if len(vectors[i]) != n {
			return nil, vectorErrorf(opLinComb,
				fmt.Errorf("vector %d: len %d vs %d: %w", i, len(vectors[i]), n, ErrDimensionMismatch))
		}
	}

	// Single accumulation pass; fixed i→j order keeps results deterministic.
	out := make(Vector[K], n)
	for i, vec := range vectors {
		c := coeffs[i]
		for j := range vec {
			out[j] += c * vec[j]
		}
	}

	return out, nil
}
