// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// vector package. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm panics on user input.

package vector

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible operand lengths:
	// Add/Sub/Hadamard/Dot on different lengths, Cross on non-3-vectors,
	// or a LinearCombination whose vectors disagree on length (or whose
	// coefficient count differs from the vector count).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroVector signals an operation that is undefined on the zero
	// vector (Normalize, AngleCos).
	ErrZeroVector = errors.New("vector: zero vector")

	// ErrNoVectors is returned by LinearCombination when the vector
	// family is empty: the result length would be undefined.
	ErrNoVectors = errors.New("vector: empty vector family")
)
