// SPDX-License-Identifier: MIT
// Package csc: index helpers shared by the assembly and traversal kernels.

package csc

import "golang.org/x/exp/constraints"

// flip maps an index into a strictly negative code and back again:
// flip(i) = -(i+2). It is its own inverse, and -1 is a fixed point, so the
// customary -1 "unset" sentinel survives a double application.
func flip[T constraints.Signed](i T) T {
	return -(i + 2)
}

// unflip restores an index regardless of whether it is currently flipped.
func unflip[T constraints.Signed](i T) T {
	if i < 0 {
		return flip(i)
	}

	return i
}

// marked reports whether position j of w carries the visited mark.
// The mark is the sign bit: traversals flip ColPtr entries in place instead
// of allocating a separate visited array.
func marked(w []int32, j int32) bool {
	return w[j] < 0
}

// mark sets the visited mark at position j of w in place.
func mark(w []int32, j int32) {
	w[j] = flip(w[j])
}

// CumulativeSum converts per-column counts into column pointers.
//
// Implementation:
//   - ptr[j] receives the exclusive prefix sum of counts[0..j-1], and
//     ptr[len(counts)] the grand total.
//   - counts[j] is overwritten with a copy of ptr[j], so the caller can reuse
//     it directly as a per-column write cursor during a scatter pass.
//
// Inputs:
//   - ptr:    destination, len(counts)+1 entries (contract, not validated).
//   - counts: per-column entry counts; overwritten with the start offsets.
//
// Returns:
//   - the total entry count, ptr[len(counts)].
//
// Complexity:
//   - Time O(n), Space O(1).
func CumulativeSum(ptr, counts []int32) int32 {
	var nz int32
	var j int // column counter
	for j = 0; j < len(counts); j++ {
		ptr[j] = nz
		nz += counts[j]
		counts[j] = ptr[j]
	}
	ptr[len(counts)] = nz

	return nz
}
