// Package sparsolve is a sparse direct linear-solver engine: factor once,
// solve fast, and know your fill-in before a single value is computed.
//
// 🚀 What is sparsolve?
//
//	A compact, deterministic library for matrices in compressed sparse
//	column (CSC) form, bringing together:
//		• Core primitives: the CSC triple, transpose, elimination tree,
//		  explicit-stack DFS & sparse triangular-solve pattern discovery
//		• Symbolic analysis: postorder + exact factor column counts
//		• Cholesky: A = L·Lᵀ for symmetric positive-definite input
//		• LU: P·A = L·U with threshold partial pivoting
//		• Triangular solves: forward/backward substitution against factors
//		• Dense-fallback QR: Householder R for tall systems
//		• One-call orchestration: solve.Solve and solve.SolveSPD
//
// ✨ Why choose sparsolve?
//
//   - Predictable memory – symbolic counts size the Cholesky factor exactly;
//     LU preallocates a documented bound and fails fast, never grows silently
//   - Rock-solid at scale – every graph traversal runs on an explicit stack,
//     safe for n in the hundreds of thousands
//   - Deterministic – fixed sweep orders and tie-breaks: identical input,
//     bit-identical factors
//   - Honest failure – singular / not-positive-definite / capacity errors as
//     sentinels via errors.Is, no partial results, recovery caller-owned
//
// Under the hood, everything is organized into flat algorithm packages:
//
//	csc/        — the Matrix triple, structural kernels & traversals
//	symbolic/   — elimination-tree postorder & exact column counts
//	cholesky/   — left-looking SPD factorization
//	lu/         — left-looking pivoted factorization with row permutation
//	triangular/ — forward & backward substitution
//	qr/         — dense-fallback Householder R
//	solve/      — end-to-end orchestrators
//	cmd/        — the sparsolve CLI (Matrix Market in, solutions out)
//
// Quick sketch of the Cholesky path:
//
//	pattern ──▶ etree ──▶ postorder ──▶ counts ──▶ numeric L ──▶ solves
//
// the symbolic stages size the numeric stage exactly, so factorization
// allocates once and either completes or fails fast.
//
// Dive into DESIGN.md for the design ledger and the recorded decisions.
//
//	go get github.com/katalvlaran/sparsolve
package sparsolve
