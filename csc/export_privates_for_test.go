// SPDX-License-Identifier: MIT

package csc

// Test-Bridge (White-Box) for Private Index Helpers
//
// Purpose:
//   - Expose the unexported marking primitives to csc_test ONLY, so the
//     flip/mark invariants can be pinned without widening the prod API.
//   - The _test.go suffix keeps this file out of production builds.

var (
	// ExportedFlip exposes flip for white-box tests.
	ExportedFlip = flip[int32]
	// ExportedUnflip exposes unflip for white-box tests.
	ExportedUnflip = unflip[int32]
	// ExportedMarked exposes marked for white-box tests.
	ExportedMarked = marked
	// ExportedMark exposes mark for white-box tests.
	ExportedMark = mark
)
