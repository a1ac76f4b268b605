// Package matrix offers dense row-major matrices over the scalar field
// and the classic matrix algorithms on top of them.
//
// The matrix package provides:
//
//   - Matrix[K], a runtime-shaped dense container with bounds-checked
//     accessors and strict construction (element count must equal
//     rows×cols).
//   - Element-wise algebra (Add, Sub, Scale, Hadamard, Lerp), products
//     (MulVec, MulMat), Transpose/ConjTranspose and Trace.
//   - The row-reduction family: RowEchelon, RREF, Rank, Determinant and
//     Inverse, all sharing one Gaussian-elimination kernel with partial
//     pivoting and a tolerance relative to the matrix's magnitude.
//   - Projection, the 4×4 perspective-projection builder.
//
// Shapes are runtime values; every operation validates its operands
// first and returns a package sentinel (matched via errors.Is) on
// mismatch. Singularity is a data property, not a shape property: it
// surfaces as ErrSingular from Inverse and as a zero Determinant.
//
// Transpose on complex matrices is the plain transpose; use
// ConjTranspose for the Hermitian adjoint.
package matrix
