// SPDX-License-Identifier: MIT
// Package matrix: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for common shape/nil checks.
//   - Keep kernels minimal by delegating guard logic here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// All checks are pure, deterministic and allocation-free.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// validateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func validateNotNil[K scalar.Number](m *Matrix[K]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil (use validateBinarySameShape otherwise).
// Complexity: O(1).
func validateSameShape[K scalar.Number](a, b *Matrix[K]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// validateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func validateBinarySameShape[K scalar.Number](a, b *Matrix[K]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}

	return validateSameShape(a, b)
}

// validateSquare is the composite NotNil → square shape.
// Returns ErrNonSquare for rectangular input.
// Complexity: O(1).
func validateSquare[K scalar.Number](m *Matrix[K]) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if m.rows != m.cols {
		return fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Complexity: O(1).
func validateMulCompatible[K scalar.Number](a, b *Matrix[K]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return fmt.Errorf("%dx%d × %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// validateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func validateVecLen[K scalar.Number](x vector.Vector[K], n int) error {
	if x.Len() != n {
		return fmt.Errorf("vector len %d, want %d: %w", x.Len(), n, ErrDimensionMismatch)
	}

	return nil
}
