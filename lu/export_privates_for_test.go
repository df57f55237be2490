// SPDX-License-Identifier: MIT

package lu

// Test-Bridge (White-Box) for Private Pivot Helpers
//
// Purpose:
//   - Expose the pivot-selection and permutation-swap internals to lu_test
//     ONLY, so the mid-factorization permutation invariant and the tie-break
//     rule can be pinned without widening the prod API.
//   - The _test.go suffix keeps this file out of production builds.

var (
	// ExportedPickPivot exposes pickPivot for white-box tests.
	ExportedPickPivot = pickPivot
	// ExportedApplyPivot exposes applyPivot for white-box tests.
	ExportedApplyPivot = applyPivot
)

// NewIdentityFactorization builds a factorization shell with an identity
// permutation of size n, for driving applyPivot directly in tests.
func NewIdentityFactorization(n int32) *Factorization {
	f := &Factorization{Perm: make([]int32, n), Pinv: make([]int32, n)}
	var i int32
	for i = 0; i < n; i++ {
		f.Perm[i] = i
		f.Pinv[i] = i
	}

	return f
}
