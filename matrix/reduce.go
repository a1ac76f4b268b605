// SPDX-License-Identifier: MIT
// Package matrix: the row-reduction family.
// One Gaussian-elimination kernel with partial pivoting serves
// RowEchelon, RREF, Rank, Determinant and Inverse. Partial pivoting
// (largest-modulus candidate per column) bounds numeric error growth;
// the zero-pivot tolerance is relative to the matrix's magnitude and
// configurable via WithEpsilon.

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
)

const (
	opRowEchelon  = "RowEchelon"
	opRREF        = "RREF"
	opRank        = "Rank"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// elimination is the outcome of the shared kernel: the reduced matrix
// plus the bookkeeping Determinant and Rank are derived from.
type elimination[K scalar.Number] struct {
	m      *Matrix[K] // reduced copy; the input is never mutated
	pivots []int      // pivot column index per pivot row, ascending
	swaps  int        // row swaps performed (each flips the determinant sign)
	factor K          // running product of pivot values before normalization
}

// maxAbs returns the largest element modulus of m (0 for no elements).
// The elimination tolerance is scaled by it so "zero pivot" means small
// relative to the data, not small in absolute terms.
func maxAbs[K scalar.Number](m *Matrix[K]) float64 {
	var max float64
	for _, v := range m.data {
		if a := scalar.Abs(v); a > max {
			max = a
		}
	}

	return max
}

// eliminate runs Gaussian elimination with partial pivoting on a clone
// of m. With reduced=false it produces row-echelon form (unit pivots,
// zeros below); with reduced=true it continues to reduced row-echelon
// form (zeros above as well).
//
// Implementation:
//   - Stage 1: derive the absolute tolerance tol = eps·max(1, maxAbs(m))
//     and clone the input.
//   - Stage 2: for each column, pick the largest-modulus candidate at or
//     below the current pivot row; a candidate at or below tol means the
//     column is dependent and is skipped. Otherwise swap it up, record
//     the pre-normalization pivot in factor, scale the pivot row to a
//     unit pivot and eliminate the column from the other rows.
//
// Determinism: fixed col→row orders; exact 1/0 writes at pivot positions
// keep the canonical form free of residue.
// Complexity: Time O(r·c·min(r,c)), Space O(r·c) for the working copy.
func eliminate[K scalar.Number](m *Matrix[K], reduced bool, eps float64) elimination[K] {
	res := elimination[K]{
		m:      m.Clone(),
		factor: scalar.One[K](),
	}
	tol := eps // relative policy: scale by the matrix magnitude
	if scale := maxAbs(m); scale > 1 {
		tol *= scale
	}

	work := res.m
	zero, one := scalar.Zero[K](), scalar.One[K]()
	row := 0
	for col := 0; col < work.cols && row < work.rows; col++ {
		// Partial pivoting: pick the largest-modulus candidate in this
		// column at or below the current pivot row.
		best, bestAbs := row, scalar.Abs(work.at(row, col))
		for i := row + 1; i < work.rows; i++ {
			if a := scalar.Abs(work.at(i, col)); a > bestAbs {
				best, bestAbs = i, a
			}
		}
		// A below-tolerance column is dependent: no pivot here.
		if bestAbs <= tol {
			continue
		}
		// Swap the pivot row into place; each swap flips the sign.
		if best != row {
			rb, bb := row*work.cols, best*work.cols
			for j := 0; j < work.cols; j++ {
				work.data[rb+j], work.data[bb+j] = work.data[bb+j], work.data[rb+j]
			}
			res.swaps++
		}

		// Record the pivot before normalization: the determinant is the
		// signed product of these values once the echelon diagonal is 1.
		p := work.at(row, col)
		res.factor *= p

		// Scale the pivot row to a unit pivot. Entries left of col are
		// already zero; write the pivot cell exactly.
		inv := one / p
		for j := col + 1; j < work.cols; j++ {
			work.set(row, j, work.at(row, j)*inv)
		}
		work.set(row, col, one)

		// Eliminate the column from the remaining rows (and, for the
		// reduced form, from the rows above).
		for i := 0; i < work.rows; i++ {
			if i == row || (!reduced && i < row) {
				continue
			}
			c := work.at(i, col)
			if c == zero {
				continue
			}
			for j := col + 1; j < work.cols; j++ {
				work.set(i, j, work.at(i, j)-c*work.at(row, j))
			}
			work.set(i, col, zero) // exact zero at the eliminated cell
		}

		res.pivots = append(res.pivots, col)
		row++
	}

	return res
}

// RowEchelon returns the row-echelon form of m: unit pivots, zeros below
// each pivot, rows in pivot-column order.
// Errors: ErrNilMatrix.
// Complexity: O(r·c·min(r,c)).
func RowEchelon[K scalar.Number](m *Matrix[K], opts ...Option) (*Matrix[K], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}
	o := gatherOptions(opts...)

	return eliminate(m, false, o.eps).m, nil
}

// RREF returns the reduced row-echelon form of m: unit pivots with zeros
// both below and above.
// Errors: ErrNilMatrix.
// Complexity: O(r·c·min(r,c)).
func RREF[K scalar.Number](m *Matrix[K], opts ...Option) (*Matrix[K], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	o := gatherOptions(opts...)

	return eliminate(m, true, o.eps).m, nil
}

// Rank returns the number of non-zero pivot rows produced by row
// reduction. Defined for any shape.
// Errors: ErrNilMatrix.
// Complexity: O(r·c·min(r,c)).
func Rank[K scalar.Number](m *Matrix[K], opts ...Option) (int, error) {
	if err := validateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)

	return len(eliminate(m, false, o.eps).pivots), nil
}

// Determinant returns det(M) for a square matrix: the running product of
// pivots from the elimination, with one sign flip per row swap. A
// below-tolerance pivot means the matrix is singular and the determinant
// is ZERO: singularity is a value here, not an error.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func Determinant[K scalar.Number](m *Matrix[K], opts ...Option) (K, error) {
	if err := validateSquare(m); err != nil {
		return scalar.Zero[K](), matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)

	// The cheaper non-reduced pass already yields all the bookkeeping.
	res := eliminate(m, false, o.eps)
	if len(res.pivots) < m.rows {
		return scalar.Zero[K](), nil // a dependent column collapses the volume
	}
	if res.swaps%2 == 1 {
		return -res.factor, nil // odd number of swaps flips the orientation
	}

	return res.factor, nil
}

// Inverse returns M⁻¹ for a square, non-singular matrix by reducing the
// augmented system [M | I] to RREF and reading the right block.
//
// Implementation:
//   - Stage 1: validate square shape; build [M | I_n].
//   - Stage 2: reduce to RREF with partial pivoting; if fewer than n
//     pivots land in the left block the matrix is singular.
//   - Stage 3: extract columns n..2n as the inverse.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular. Singularity cannot be
// known from the shape, so it remains a runtime result.
// Complexity: Time O(n³), Space O(n²).
func Inverse[K scalar.Number](m *Matrix[K], opts ...Option) (*Matrix[K], error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	// Augment with the identity of matching size.
	n := m.rows
	eye, err := Identity[K](n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(m, eye)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Full reduction; every left-block column must produce a pivot.
	res := eliminate(aug, true, o.eps)
	left := 0
	for _, col := range res.pivots {
		if col < n {
			left++
		}
	}
	if left < n {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	// The left block is now I_n; the right block is the inverse.
	inv, err := res.m.Submatrix(0, n, n, 2*n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
