// SPDX-License-Identifier: MIT

// Package matrix: the dense container.
// Matrix is a concrete, row-major implementation storing elements in a
// flat slice for performance and cache friendliness. Shape is fixed at
// construction; element values may be mutated through Set.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// Matrix is a dense r×c matrix of field scalars in row-major order.
// rows and cols are the shape; data holds rows*cols elements.
type Matrix[K scalar.Number] struct {
	rows, cols int // shape, fixed at construction
	data       []K // flat backing storage, length == rows*cols
}

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so callers keep errors.Is matching.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// New creates a rows×cols matrix initialized to zeros.
// Errors: ErrBadShape when rows <= 0 or cols <= 0.
// Complexity: O(r·c).
func New[K scalar.Number](rows, cols int) (*Matrix[K], error) {
	// Validate dimensions before allocation.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Matrix[K]{rows: rows, cols: cols, data: make([]K, rows*cols)}, nil
}

// NewFromSlice creates a rows×cols matrix from a row-major element
// slice. This is the "try construct" path for callers holding parsed
// input: the element count is validated against the declared shape.
// The elements are copied; the result does not alias the input.
// Errors: ErrBadShape on a non-positive shape, ErrLengthMismatch when
// len(elems) != rows*cols.
// Complexity: O(r·c).
func NewFromSlice[K scalar.Number](rows, cols int, elems []K) (*Matrix[K], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewFromSlice(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// The declared shape must account for every supplied element.
	if len(elems) != rows*cols {
		return nil, fmt.Errorf("NewFromSlice(%d,%d): %d elements: %w",
			rows, cols, len(elems), ErrLengthMismatch)
	}

	data := make([]K, len(elems))
	copy(data, elems)

	return &Matrix[K]{rows: rows, cols: cols, data: data}, nil
}

// NewFromRows creates a matrix from per-row slices. Every row must have
// the same length; the elements are copied.
// Errors: ErrBadShape on an empty input or empty first row,
// ErrLengthMismatch on ragged rows.
// Complexity: O(r·c).
func NewFromRows[K scalar.Number](rows [][]K) (*Matrix[K], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrBadShape)
	}

	r, c := len(rows), len(rows[0])
	data := make([]K, 0, r*c)
	for i, row := range rows {
		// Ragged input cannot form a rectangular matrix.
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d elements, want %d: %w",
				i, len(row), c, ErrLengthMismatch)
		}
		data = append(data, row...)
	}

	return &Matrix[K]{rows: r, cols: c, data: data}, nil
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Errors: ErrBadShape when n <= 0.
// Complexity: O(n²).
func Identity[K scalar.Number](n int) (*Matrix[K], error) {
	m, err := New[K](n, n)
	if err != nil {
		return nil, err
	}
	one := scalar.One[K]()
	for i := 0; i < n; i++ { // fixed i order, single write per diagonal cell
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix[K]) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix[K]) Cols() int { return m.cols }

// indexOf computes the flat index for (row, col) or reports ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[K]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Matrix[K]) At(row, col int) (K, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return scalar.Zero[K](), err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Matrix[K]) Set(row, col int, v K) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// at reads (row, col) without bounds checks. Kernels use it after shape
// validation; indices must be in range.
func (m *Matrix[K]) at(row, col int) K {
	return m.data[row*m.cols+col]
}

// set writes (row, col) without bounds checks. Same contract as at.
func (m *Matrix[K]) set(row, col int, v K) {
	m.data[row*m.cols+col] = v
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange on an invalid index.
// Complexity: O(c).
func (m *Matrix[K]) Row(i int) ([]K, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("Row(%d) of %dx%d: %w", i, m.rows, m.cols, ErrOutOfRange)
	}

	out := make([]K, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange on an invalid index.
// Complexity: O(r).
func (m *Matrix[K]) Col(j int) ([]K, error) {
	if j < 0 || j >= m.cols {
		return nil, fmt.Errorf("Col(%d) of %dx%d: %w", j, m.rows, m.cols, ErrOutOfRange)
	}

	out := make([]K, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}

	return out, nil
}

// Clone returns a deep copy independent of the original.
// Complexity: O(r·c).
func (m *Matrix[K]) Clone() *Matrix[K] {
	data := make([]K, len(m.data))
	copy(data, m.data)

	return &Matrix[K]{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports exact element-wise equality. Matrices of different
// shapes are never equal.
// Complexity: O(r·c).
func (m *Matrix[K]) Equal(other *Matrix[K]) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports element-wise equality within tolerance eps:
// |m[i,j] − other[i,j]| <= eps under the scalar modulus.
// Complexity: O(r·c).
func (m *Matrix[K]) ApproxEqual(other *Matrix[K], eps float64) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if scalar.Abs(m.data[i]-other.data[i]) > eps {
			return false
		}
	}

	return true
}

// Augment returns the horizontal concatenation [a | b].
// Errors: ErrNilMatrix on a nil operand, ErrDimensionMismatch when the
// row counts differ.
// Complexity: O(r·(c_a+c_b)).
func Augment[K scalar.Number](a, b *Matrix[K]) (*Matrix[K], error) {
	const opTag = "Augment"
	if a == nil || b == nil {
		return nil, matrixErrorf(opTag, ErrNilMatrix)
	}
	// Both operands must contribute the same number of rows.
	if a.rows != b.rows {
		return nil, matrixErrorf(opTag,
			fmt.Errorf("%d rows vs %d rows: %w", a.rows, b.rows, ErrDimensionMismatch))
	}

	out := &Matrix[K]{rows: a.rows, cols: a.cols + b.cols, data: make([]K, a.rows*(a.cols+b.cols))}
	for i := 0; i < a.rows; i++ {
		base := i * out.cols
		copy(out.data[base:base+a.cols], a.data[i*a.cols:(i+1)*a.cols])         // left block from a
		copy(out.data[base+a.cols:base+out.cols], b.data[i*b.cols:(i+1)*b.cols]) // right block from b
	}

	return out, nil
}

// Submatrix returns the block with rows [r0, r1) and columns [c0, c1).
// Errors: ErrOutOfRange when the ranges are empty, inverted, or exceed
// the matrix bounds.
// Complexity: O((r1−r0)·(c1−c0)).
func (m *Matrix[K]) Submatrix(r0, r1, c0, c1 int) (*Matrix[K], error) {
	// Ranges must be non-empty and inside the matrix.
	if r0 < 0 || c0 < 0 || r0 >= r1 || c0 >= c1 || r1 > m.rows || c1 > m.cols {
		return nil, fmt.Errorf("Submatrix[%d:%d, %d:%d] of %dx%d: %w",
			r0, r1, c0, c1, m.rows, m.cols, ErrOutOfRange)
	}

	out := &Matrix[K]{rows: r1 - r0, cols: c1 - c0, data: make([]K, (r1-r0)*(c1-c0))}
	for i := r0; i < r1; i++ {
		copy(out.data[(i-r0)*out.cols:(i-r0+1)*out.cols], m.data[i*m.cols+c0:i*m.cols+c1])
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging: one bracketed row
// per line.
// Complexity: O(r·c).
func (m *Matrix[K]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
