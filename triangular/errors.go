// SPDX-License-Identifier: MIT
// Package triangular: sentinel error set. Argument-shape errors reuse the csc
// sentinels (one validation vocabulary across the module); this file adds only
// what is specific to triangular factors.

package triangular

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDiagonal signals that a factor column stores no entry at its
	// own row — the factor violates the layout contract (lower: diagonal
	// first; upper: diagonal anywhere, located by scan).
	ErrMissingDiagonal = errors.New("triangular: missing diagonal entry")

	// ErrZeroDiagonal signals an exactly-zero diagonal entry. A triangular
	// system with a zero diagonal is singular; the solvers refuse to divide.
	ErrZeroDiagonal = errors.New("triangular: zero diagonal entry")
)

// triangularErrorf wraps a sentinel with the public operation tag, keeping
// errors.Is matching intact.
func triangularErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
