// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm panics on user-triggered
// error conditions; panics are reserved for programmer errors (invalid
// functional options).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX); callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Constructors validate before allocating.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrLengthMismatch is returned when the supplied element count does
	// not equal the declared rows×cols at construction time.
	ErrLengthMismatch = errors.New("matrix: element count does not match shape")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) and Submatrix return this,
	// never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub/Hadamard/Lerp on different shapes, MulMat where
	// a.Cols != b.Rows, MulVec where cols != len(v), or Augment on
	// different row counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required
	// (Trace, Determinant, Inverse) but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when row reduction reveals a
	// below-tolerance pivot: the matrix has no inverse. Determinant
	// reports the same condition as a zero result, not an error.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument)
	// was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
