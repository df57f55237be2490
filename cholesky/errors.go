// SPDX-License-Identifier: MIT
// Package cholesky: sentinel error set. Argument-shape errors reuse the csc
// sentinels; this file adds only what is specific to the SPD factorization.

package cholesky

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPositiveDefinite is returned when the running diagonal
	// accumulator of some column drops to zero or below — the input is not
	// symmetric positive-definite. No partial factor is returned; the caller
	// regularizes and re-invokes Factor.
	ErrNotPositiveDefinite = errors.New("cholesky: matrix is not positive definite")

	// ErrCapacityExceeded signals that a factor column produced more
	// nonzeros than the symbolic analysis predicted. The symbolic counts are
	// exact, so this is an internal inconsistency (or a mutated input) and
	// is always fatal — storage never grows silently.
	ErrCapacityExceeded = errors.New("cholesky: factor capacity exceeded")
)

// choleskyErrorf wraps a sentinel with the public operation tag, keeping
// errors.Is matching intact.
func choleskyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
