// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values, since misconfiguring the numeric policy is a programmer error),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the relative tolerance used to classify a pivot as
// zero during row reduction. The effective absolute tolerance is
// eps·max(1, maxAbs(M)), so the policy scales with the input magnitude
// instead of relying on a hard absolute cutoff.
const DefaultEpsilon = 1e-12

// Option mutates the numeric policy of a row-reduction call.
type Option func(*options)

// options holds the gathered numeric policy.
type options struct {
	eps float64 // relative zero-pivot tolerance, >= 0 and finite
}

// WithEpsilon overrides the relative zero-pivot tolerance.
// Panics when eps is negative, NaN or Inf: an invalid numeric policy is
// a programmer error, not a data condition.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("matrix: WithEpsilon(%v): tolerance must be finite and non-negative", eps))
	}

	return func(o *options) { o.eps = eps }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
