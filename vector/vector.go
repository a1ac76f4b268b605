// SPDX-License-Identifier: MIT

// Package vector: the Vector container.
// Vector is a named slice so callers keep natural indexing (v[i]) and
// len(v); the named type carries the algorithm methods and documents the
// "length fixed at construction" contract.

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// Vector is an ordered sequence of scalars. The length is a shape
// property fixed at construction; operations never resize an operand in
// place and always allocate fresh results.
type Vector[K scalar.Number] []K

// New builds a vector from explicit elements. The elements are copied so
// the result does not alias the caller's slice.
// Complexity: O(n).
func New[K scalar.Number](elems ...K) Vector[K] {
	v := make(Vector[K], len(elems)) // fresh backing storage
	copy(v, elems)

	return v
}

// Zero returns the n-element zero vector. A non-positive n yields the
// empty vector.
// Complexity: O(n).
func Zero[K scalar.Number](n int) Vector[K] {
	if n < 0 {
		n = 0
	}

	return make(Vector[K], n)
}

// Len returns the number of elements.
// Complexity: O(1).
func (v Vector[K]) Len() int {
	return len(v)
}

// Clone returns a deep copy independent of the original.
// Complexity: O(n).
func (v Vector[K]) Clone() Vector[K] {
	out := make(Vector[K], len(v))
	copy(out, v)

	return out
}

// String implements fmt.Stringer for easy debugging: "[a, b, c]".
// Complexity: O(n).
func (v Vector[K]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteByte(']')

	return sb.String()
}

// validateSameLen returns ErrDimensionMismatch unless u and v have equal
// lengths. Kept as the single length guard used by every binary kernel.
func validateSameLen[K scalar.Number](u, v Vector[K]) error {
	if len(u) != len(v) {
		return fmt.Errorf("len %d vs %d: %w", len(u), len(v), ErrDimensionMismatch)
	}

	return nil
}
