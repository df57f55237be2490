// SPDX-License-Identifier: MIT

// Package lu: functional configuration for the pivoting policy. This file
// defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithPivotThreshold with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package lu

import "math"

// DefaultPivotThreshold is the pivot tolerance used when no option is given:
// 0 means full partial pivoting — the first row of maximal magnitude always
// becomes the pivot. 1 disables pivoting entirely.
const DefaultPivotThreshold = 0.0

// panic messages (no magic strings)
const panicPivotThresholdInvalid = "lu: WithPivotThreshold: tau must be finite, in [0, 1]"

// Option mutates the factorization configuration.
type Option func(*options)

// options carries the gathered configuration; fields stay unexported so the
// only way in is a validating constructor.
type options struct {
	tau float64
}

// WithPivotThreshold sets the pivot tolerance τ ∈ [0,1].
//
// τ=0 (the default) is full partial pivoting; τ=1 disables pivoting; values
// in between keep the diagonal candidate whenever |x[k]| ≥ (1-τ)·max|x[r≥k]|,
// trading a little stability for less permutation churn.
//
// Panics on NaN or values outside [0, 1] (programmer error, not runtime
// input).
func WithPivotThreshold(tau float64) Option {
	if math.IsNaN(tau) || tau < 0 || tau > 1 {
		panic(panicPivotThresholdInvalid)
	}

	return func(o *options) { o.tau = tau }
}

// gatherOptions folds the defaults and the caller's options into one state.
func gatherOptions(opts ...Option) options {
	o := options{tau: DefaultPivotThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
