// SPDX-License-Identifier: MIT

// Package qr provides the dense-fallback Householder QR for sparse input.
//
// What:
//
//   - Factor: scatters a CSC matrix with rows ≥ cols into a dense row-major
//     buffer, runs classic Householder reflections, and re-sparsifies the
//     upper-triangular R (entries with magnitude above DropTolerance) back
//     into CSC form.
//
// Known limitations (documented, not defects):
//
//   - Q is NOT persisted: the reflectors are applied and discarded. Callers
//     needing Q·x products should factor densely elsewhere.
//   - The dense buffer costs O(rows·cols) memory, so this path is a
//     FALLBACK for modest sizes. Production use at scale should replace it
//     with a true sparse QR (fill-reducing ordering plus sparse Householder
//     or Givens updates).
//
// Failure model:
//
//	rows < cols is rejected with ErrUnderdetermined before any allocation or
//	work — an underdetermined system has no unique least-squares R in this
//	convention.
//
// Complexity:
//
//	O(rows·cols²) time, O(rows·cols) space.
package qr
