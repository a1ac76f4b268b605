// Package linalg is a small, generic linear-algebra toolkit for real and
// complex scalars: vectors, dense matrices, and the classic numeric
// algorithms on top of them.
//
// 🚀 What is linalg?
//
//	A modern, zero-surprise library that brings together:
//		• Scalar field: one capability set (add/sub/mul/div, conjugate, modulus)
//		  instantiated for float64 and complex128
//		• Vectors: linear combination, interpolation, dot product, norms,
//		  cross product, normalization
//		• Matrices: multiplication, transpose/adjoint, trace, row reduction,
//		  rank, determinant, inverse, perspective projection
//
// ✨ Why choose linalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, strict shape validation,
//     pure functions with no shared state
//   - Pure Go – no cgo, no hidden deps
//   - Generic – every algorithm is written once over the scalar field
//
// Everything is organized under three subpackages:
//
//	scalar/ - the arithmetic capability set shared by float64 and complex128
//	vector/ - variable-length vectors and vector algorithms
//	matrix/ - dense row-major matrices, row reduction and friends
//
// All shapes are runtime values: every binary operation validates its
// operands first and returns a typed sentinel error on mismatch, so a
// caller can always distinguish "wrong shapes" from "singular data".
//
//	go get github.com/katalvlaran/linalg
package linalg
