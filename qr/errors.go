// SPDX-License-Identifier: MIT
// Package qr: sentinel error set. Argument-shape errors reuse the csc
// sentinels; this file adds only what is specific to the dense fallback.

package qr

import (
	"errors"
	"fmt"
)

// ErrUnderdetermined is returned when the input has fewer rows than columns.
// The check runs before any allocation: no work is wasted on a shape this
// factorization cannot serve.
var ErrUnderdetermined = errors.New("qr: underdetermined system (rows < cols)")

// qrErrorf wraps a sentinel with the public operation tag, keeping errors.Is
// matching intact.
func qrErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
