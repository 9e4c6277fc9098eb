// SPDX-License-Identifier: MIT
// Package eigen: sentinel error set and numeric policy constants.
// This file defines ONLY package-level sentinels and tuning constants used
// across the solver. All routines MUST return these sentinels and tests MUST
// check them via errors.Is. No routine panics on user-triggered conditions.

package eigen

import "errors"

// Numeric policy — single source of truth for the QR iteration.
const (
	// Epsilon is the relative deflation threshold: a subdiagonal entry
	// h[l][l-1] is treated as zero when |h[l][l-1]| ≤ Epsilon·(|h[l-1][l-1]|+|h[l][l]|).
	// Set to the float64 unit roundoff.
	Epsilon = 2.220446049250313e-16

	// MaxIterations caps QR sweeps per deflated eigenvalue. Dense spectra
	// converge in a handful of sweeps; exceeding the cap signals a genuinely
	// ill-conditioned input and surfaces as ErrNoConvergence.
	MaxIterations = 40

	// exceptionalEvery inserts an ad hoc magnitude shift after this many
	// ordinary Wilkinson-shift sweeps without deflation, breaking the rare
	// limit cycles the Wilkinson shift admits.
	exceptionalEvery = 10
)

var (
	// ErrNonSquare is returned when len(a) does not equal n*n.
	ErrNonSquare = errors.New("eigen: matrix is not square")

	// ErrEmpty is returned for n ≤ 0; the solver requires at least a 1×1 matrix.
	ErrEmpty = errors.New("eigen: empty matrix")

	// ErrNoConvergence is returned when the QR iteration fails to deflate an
	// eigenvalue within MaxIterations sweeps.
	ErrNoConvergence = errors.New("eigen: QR iteration failed to converge")
)
