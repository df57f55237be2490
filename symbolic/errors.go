// SPDX-License-Identifier: MIT
// Package symbolic: sentinel error set. Structural argument errors reuse the
// csc sentinels (one validation vocabulary across the module); this file adds
// only what is specific to tree-shaped inputs.

package symbolic

import (
	"errors"
	"fmt"
)

// ErrInvalidTree signals a malformed elimination-tree encoding: a parent
// entry outside [-1, n), a parent not greater than its child, a postorder
// that is not a permutation, or a parent array containing a cycle.
var ErrInvalidTree = errors.New("symbolic: invalid elimination tree")

// symbolicErrorf wraps a sentinel with the public operation tag, keeping
// errors.Is matching intact.
func symbolicErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
