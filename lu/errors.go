// SPDX-License-Identifier: MIT
// Package lu: sentinel error set. Argument-shape errors reuse the csc
// sentinels; this file adds only what is specific to the pivoted
// factorization.

package lu

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when the pivot of some column is numerically
	// zero after the triangular update — the matrix has no LU factorization
	// under the selected pivoting policy. No partial result is returned.
	ErrSingular = errors.New("lu: singular matrix")

	// ErrCapacityExceeded signals that a factor outgrew its preallocated
	// storage (10·nnz(A) + n entries). Fill-in beyond that bound is treated
	// as fatal, never silently reallocated; reduce fill upstream or factor a
	// reordered matrix.
	ErrCapacityExceeded = errors.New("lu: factor capacity exceeded")
)

// luErrorf wraps a sentinel with the public operation tag, keeping errors.Is
// matching intact.
func luErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
