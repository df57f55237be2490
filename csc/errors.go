// SPDX-License-Identifier: MIT
// Package csc: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the csc
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package csc

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csc: ..." for consistency and to allow easy
// grepping across logs. Sentinels are returned wrapped with the operation tag
// via cscErrorf; callers still match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> shape -> triple structure -> index range -> numeric policy.

var (
	// ErrNilMatrix indicates that a nil *Matrix was passed where a matrix is
	// required. Always checked first.
	ErrNilMatrix = errors.New("csc: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions, or ragged dense input).
	ErrBadShape = errors.New("csc: invalid shape")

	// ErrBadTriple signals a malformed CSC triple: wrong ColPtr length,
	// non-zero ColPtr[0], decreasing pointers, index/value length mismatch,
	// or a row index outside [0, Rows).
	ErrBadTriple = errors.New("csc: malformed csc triple")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("csc: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a right-hand side whose row count differs from the system size.
	ErrDimensionMismatch = errors.New("csc: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (elimination tree, triangular traversals).
	ErrNonSquare = errors.New("csc: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion constructors).
	ErrNaNInf = errors.New("csc: NaN or Inf encountered")
)

// cscErrorf wraps a sentinel (or an already wrapped error) with the public
// operation tag, keeping errors.Is matching intact.
func cscErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
