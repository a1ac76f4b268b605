// Package scalar defines the arithmetic capability set every linalg
// algorithm is generic over.
//
// The scalar field is modeled as a type-set constraint (Number) plus a
// handful of free functions:
//
//   - Zero / One: additive and multiplicative identities.
//   - Conj:       complex conjugate; the identity on real scalars.
//   - Abs:        modulus as a float64 (absolute value on reals).
//   - FromFloat:  embed a real value into the field.
//   - IsZero:     modulus-below-tolerance test used by pivoting code.
//
// The four arithmetic operators (+ - * /) are shared by every member of
// the Number type set, so vector and matrix kernels use plain operators
// and stay readable. Dispatch on the concrete scalar type happens only
// inside this package; algorithm code must never type-switch on K.
package scalar
