// SPDX-License-Identifier: MIT

// Package eigen provides a dense eigenvalue solver for complex matrices.
//
// It exposes exactly one capability: given an n×n complex matrix in flat
// row-major form, return its n eigenvalues (no eigenvectors). This is the
// narrow interface the hafnian pipeline consumes; any competent
// linear-algebra backend can be substituted for it upstream.
//
// The implementation is the classical two-stage dense path:
//
//  1. Householder reduction to upper Hessenberg form — O(n³), using
//     Hermitian reflectors so complex entries are handled exactly.
//  2. Shifted QR iteration on the Hessenberg matrix with complex Givens
//     rotations, Wilkinson shifts, deflation on negligible subdiagonals,
//     and an occasional exceptional shift to break limit cycles.
//
// Real matrices are handled by embedding entries as complex(v, 0); their
// eigenvalues arrive in conjugate pairs, so power sums of the spectrum have
// algebraically vanishing imaginary parts.
//
// Determinism: fixed sweep orders and shift policy; identical inputs yield
// identical outputs. Eigenvalue ORDER is an implementation detail (deflation
// order), not part of the contract — compare spectra as multisets.
//
// Errors are strict sentinels (ErrNonSquare, ErrEmpty, ErrNoConvergence)
// checked via errors.Is; the solver never panics on user input.
package eigen
