// Package hafnian computes the hafnian and loop hafnian of symmetric
// matrices — the weighted perfect-matching count at the heart of
// boson-sampling amplitude simulation.
//
// 🚀 What is hafnian?
//
//	A pure-Go numeric library implementing the eigenvalue-power-trace
//	algorithm of Björklund et al. (arXiv:1805.12498), built from:
//		• Subset enumeration: one bitmask per candidate set of matched pairs
//		• Spectral power traces: eigenvalues of each reduced matrix, no
//		  explicit matrix powers
//		• A generating-function recurrence extracting the matching-polynomial
//		  coefficient per subset
//		• A blocked parallel reduction over the full 2^(n/2) subset space
//
// ✨ Why choose this library?
//
//   - Minimal API – four entry points (hafnian / loop hafnian × real / complex)
//   - Pure Go – no cgo, no external linear-algebra bindings
//   - Deterministic contract – sentinel errors, documented edge cases,
//     tolerance-based numerics spelled out in the docs
//   - Extensible – swap the eigenvalue backend through a one-function interface
//
// The module is organized as:
//
//	(root)  — the four public entry points and the full subset pipeline
//	eigen/  — dense complex eigenvalue solver (Hessenberg + shifted QR)
//	cmd/    — a small CLI for computing hafnians of matrices in text form
//
// The algorithm is intrinsically exponential: Θ(2^(n/2)) subsets, each
// costing O(n³). Practical inputs are tens of rows, not hundreds; see
// MaxDim for the hard cap.
package hafnian
