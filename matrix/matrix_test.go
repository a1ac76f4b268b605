// Package matrix_test contains unit tests for the dense Matrix
// container: construction, accessors, comparison, Augment/Submatrix.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a matrix from row slices and fails the test on error.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestNewBadShape ensures constructors reject non-positive dimensions.
func TestNewBadShape(t *testing.T) {
	_, err := matrix.New[float64](0, 5) // zero rows
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New[float64](5, -1) // negative cols
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromSlice(0, 3, []float64{}) // zero rows via the slice path
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromRows[float64](nil) // empty row set
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewFromSliceLengthMismatch covers the construction contract:
// the element count must equal rows×cols.
func TestNewFromSliceLengthMismatch(t *testing.T) {
	// 5 elements cannot fill a declared 2×3 shape.
	_, err := matrix.NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)

	// The exact count succeeds and lays out row-major.
	m, err := matrix.NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(1, 0) // first element of the second row
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestNewFromRowsRagged ensures ragged input is rejected.
func TestNewFromRowsRagged(t *testing.T) {
	_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
}

// TestNewFromSliceCopies ensures the constructor does not alias input.
func TestNewFromSliceCopies(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewFromSlice(2, 2, src)
	require.NoError(t, err)

	src[0] = 99 // mutate the source

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // the matrix must not observe it
}

// TestAtSetOutOfRange ensures the public indexers surface ErrOutOfRange.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.New[float64](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

// TestSetGet validates a Set/At round trip.
func TestSetGet(t *testing.T) {
	m, err := matrix.New[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestRowCol checks the copying row/column accessors.
func TestRowCol(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	row[0] = 42 // returned slices are copies
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 0}, {0, 2}})
	c := m.Clone()

	require.NoError(t, c.Set(0, 0, 3))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig) // original unchanged
}

// TestIdentity validates the identity constructor.
func TestIdentity(t *testing.T) {
	eye, err := matrix.Identity[float64](3)
	require.NoError(t, err)
	require.True(t, eye.Equal(mustFromRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})))

	_, err = matrix.Identity[float64](0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestEqualApproxEqual covers exact and tolerance comparison.
func TestEqualApproxEqual(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := mustFromRows(t, [][]float64{{1, 2}, {3, 4.0001}})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))

	require.True(t, a.ApproxEqual(c, 1e-3))  // within tolerance
	require.False(t, a.ApproxEqual(c, 1e-6)) // outside tolerance

	wide := mustFromRows(t, [][]float64{{1, 2, 0}, {3, 4, 0}})
	require.False(t, a.Equal(wide)) // shape mismatch is never equal
	require.False(t, a.ApproxEqual(wide, 1))
}

// TestAugment checks horizontal concatenation and its guards.
func TestAugment(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{5}, {6}})

	ab, err := matrix.Augment(a, b)
	require.NoError(t, err)
	require.True(t, ab.Equal(mustFromRows(t, [][]float64{{1, 2, 5}, {3, 4, 6}})))

	tall := mustFromRows(t, [][]float64{{1}, {2}, {3}})
	_, err = matrix.Augment(a, tall)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Augment[float64](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSubmatrix checks block extraction and range validation.
func TestSubmatrix(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	block, err := m.Submatrix(0, 2, 1, 3)
	require.NoError(t, err)
	require.True(t, block.Equal(mustFromRows(t, [][]float64{{2, 3}, {5, 6}})))

	_, err = m.Submatrix(2, 2, 0, 1) // empty row range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Submatrix(0, 4, 0, 1) // beyond the last row
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestString checks the debug representation.
func TestString(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
