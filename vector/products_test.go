// Package vector_test contains unit tests for products and norms.
package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/require"
)

// TestDotReal checks the classical dot product on real scalars.
func TestDotReal(t *testing.T) {
	d, err := vector.Dot(vector.New(1.0, 2.0, 3.0), vector.New(4.0, 5.0, 6.0))
	require.NoError(t, err)
	require.Equal(t, 32.0, d) // 1·4 + 2·5 + 3·6

	d, err = vector.Dot(vector.New(-1.0, 6.0), vector.New(3.0, 2.0))
	require.NoError(t, err)
	require.Equal(t, 9.0, d)

	d, err = vector.Dot(vector.New(0.0, 0.0), vector.New(1.0, 1.0))
	require.NoError(t, err)
	require.Equal(t, 0.0, d) // the zero vector is orthogonal to everything

	_, err = vector.Dot(vector.New(1.0), vector.New(1.0, 2.0))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestDotHermitian verifies the complex inner product conjugates the
// left operand, so Dot(u, u) is a non-negative real.
func TestDotHermitian(t *testing.T) {
	u := vector.New(complex(1, 2), complex(3, -4))

	d, err := vector.Dot(u, u)
	require.NoError(t, err)
	require.Equal(t, 0.0, imag(d))                  // self inner product is real
	require.InDelta(t, 1+4+9+16, real(d), 1e-12)    // Σ |u_i|²
	require.GreaterOrEqual(t, real(d), 0.0)         // and non-negative

	// Hermitian symmetry: Dot(u, v) == conj(Dot(v, u)).
	v := vector.New(complex(0, 1), complex(2, 2))
	uv, err := vector.Dot(u, v)
	require.NoError(t, err)
	vu, err := vector.Dot(v, u)
	require.NoError(t, err)
	require.InDelta(t, real(uv), real(vu), 1e-12)
	require.InDelta(t, imag(uv), -imag(vu), 1e-12)
}

// TestNorms covers the taxicab, Euclidean and supremum norms.
func TestNorms(t *testing.T) {
	v := vector.New(4.0, 2.0, 2.0, 1.0)
	require.Equal(t, 9.0, vector.Norm1(v))  // 4+2+2+1
	require.Equal(t, 5.0, vector.Norm2(v))  // √(16+4+4+1) = 5
	require.Equal(t, 4.0, vector.NormInf(v))

	neg := vector.New(5.0, -2.0, 1.0)
	require.Equal(t, 8.0, vector.Norm1(neg)) // moduli, not raw values

	// Complex norms are modulus-based as well.
	c := vector.New(complex(3, 4))
	require.Equal(t, 5.0, vector.Norm1(c))
	require.Equal(t, 5.0, vector.Norm2(c))
	require.Equal(t, 5.0, vector.NormInf(c))

	// The empty vector has zero norm under all three definitions.
	empty := vector.New[float64]()
	require.Equal(t, 0.0, vector.Norm1(empty))
	require.Equal(t, 0.0, vector.Norm2(empty))
	require.Equal(t, 0.0, vector.NormInf(empty))
}

// TestCross checks orthogonal bases, parallel operands, anticommutation
// and the dimension guard.
func TestCross(t *testing.T) {
	e1 := vector.New(1.0, 0.0, 0.0)
	e2 := vector.New(0.0, 1.0, 0.0)

	c, err := vector.Cross(e1, e2)
	require.NoError(t, err)
	require.Equal(t, vector.New(0.0, 0.0, 1.0), c) // e1 × e2 = e3

	// Parallel vectors produce the zero vector.
	u := vector.New(2.0, -4.0, 6.0)
	par, err := vector.Cross(u, vector.Scale(u, 1.5))
	require.NoError(t, err)
	require.Equal(t, vector.New(0.0, 0.0, 0.0), par)

	// u × v == −(v × u).
	v := vector.New(7.0, 1.0, 0.5)
	uv, err := vector.Cross(u, v)
	require.NoError(t, err)
	vu, err := vector.Cross(v, u)
	require.NoError(t, err)
	require.Equal(t, vector.Neg(uv), vu)

	// Either operand off three dimensions is a shape error.
	_, err = vector.Cross(vector.New(1.0, 0.0), e2)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = vector.Cross(e1, vector.New(0.0, 1.0, 0.0, 2.0))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestAngleCos validates collinear, orthogonal and opposite pairs plus
// the zero-vector guard.
func TestAngleCos(t *testing.T) {
	u := vector.New(1.0, 0.0)

	cos, err := vector.AngleCos(u, vector.New(3.0, 0.0)) // same direction
	require.NoError(t, err)
	require.InDelta(t, 1.0, cos, 1e-12)

	cos, err = vector.AngleCos(u, vector.New(0.0, 2.0)) // orthogonal
	require.NoError(t, err)
	require.InDelta(t, 0.0, cos, 1e-12)

	cos, err = vector.AngleCos(u, vector.New(-4.0, 0.0)) // opposite direction
	require.NoError(t, err)
	require.InDelta(t, -1.0, cos, 1e-12)

	_, err = vector.AngleCos(u, vector.New(0.0, 0.0)) // undefined against the zero vector
	require.ErrorIs(t, err, vector.ErrZeroVector)

	_, err = vector.AngleCos(u, vector.New(1.0, 2.0, 3.0))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestNormalize checks unit length, direction preservation and the
// zero-vector guard.
func TestNormalize(t *testing.T) {
	n, err := vector.Normalize(vector.New(3.0, 4.0))
	require.NoError(t, err)
	require.InDelta(t, 0.6, n[0], 1e-12)
	require.InDelta(t, 0.8, n[1], 1e-12)
	require.InDelta(t, 1.0, vector.Norm2(n), 1e-12) // result is a unit vector

	_, err = vector.Normalize(vector.Zero[float64](3))
	require.ErrorIs(t, err, vector.ErrZeroVector)

	// Complex normalization also lands on the unit sphere.
	cn, err := vector.Normalize(vector.New(complex(3, 4)))
	require.NoError(t, err)
	require.InDelta(t, 1.0, vector.Norm2(cn), 1e-12)
	require.False(t, math.IsNaN(real(cn[0])))
}
