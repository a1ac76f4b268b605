// Package vector provides variable-length vectors over the scalar field
// and the classic vector algorithms on top of them.
//
// The vector package provides:
//
//   - Vector[K], an ordered sequence of scalars whose length is fixed at
//     construction time (plain indexing for element access).
//   - Element-wise combination: Add, Sub, Neg, Scale, Hadamard, Lerp and
//     LinearCombination (single accumulation pass).
//   - Products and norms: the Hermitian dot product, Norm1/Norm2/NormInf,
//     the 3-dimensional cross product, AngleCos and Normalize.
//
// Every binary operation validates operand lengths first and returns a
// package sentinel error (matched via errors.Is) on mismatch. Algorithms
// are pure: results are freshly allocated and operands never mutated.
package vector
