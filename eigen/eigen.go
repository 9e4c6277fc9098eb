// SPDX-License-Identifier: MIT

package eigen

import (
	"math"
	"math/cmplx"
)

// Eigenvalues computes all eigenvalues of the n×n complex matrix a
// (flat row-major, len(a) == n*n). The input slice is copied and never
// mutated; the returned slice is freshly allocated.
//
// Contracts:
//   - n ≥ 1, len(a) == n*n.
//   - Eigenvalue order is unspecified; treat the result as a multiset.
//
// Errors: ErrEmpty, ErrNonSquare, ErrNoConvergence.
//
// Complexity: O(n³) for the Hessenberg reduction plus O(n²) per QR sweep,
// with O(1) sweeps per eigenvalue in practice. Space O(n²) for the working
// copy.
//
// AI-Hints:
//   - For spectra of real matrices, embed entries as complex(v, 0); power
//     sums of the result are real up to roundoff.
//   - If you only need the dominant eigenvalue of a huge matrix, use a power
//     iteration instead; this is a full dense solver.
func Eigenvalues(a []complex128, n int) ([]complex128, error) {
	// Validate shape before touching any data.
	if n <= 0 {
		return nil, ErrEmpty
	}
	if len(a) != n*n {
		return nil, ErrNonSquare
	}

	// Trivial orders bypass the reduction entirely.
	if n == 1 {
		return []complex128{a[0]}, nil
	}

	// Working copy: the reduction and iteration are destructive.
	h := make([]complex128, n*n)
	copy(h, a)

	hessenberg(h, n)

	return hessenbergQR(h, n)
}

// hessenberg reduces h (n×n, row-major) to upper Hessenberg form in place
// via Householder similarity transforms with Hermitian reflectors
// P = I − τ·v·vᴴ, τ = 2/vᴴv.
//
// Determinism: fixed column order k = 0..n−3; fixed inner loop orders.
// Complexity: O(n³) time, O(n) extra space for the reflector.
func hessenberg(h []complex128, n int) {
	v := make([]complex128, n) // reflector storage, reused per column

	var (
		i, j, k int        // loop iterators
		norm    float64    // ‖column below diagonal‖₂
		beta    float64    // vᴴv
		tau     complex128 // 2/β as a complex scalar
		x0      complex128 // leading entry of the column being eliminated
		alpha   complex128 // target value −sign(x0)·‖x‖ (avoids cancellation)
		s       complex128 // running reflector dot product
	)
	for k = 0; k < n-2; k++ {
		// Norm of column k strictly below the subdiagonal pivot row.
		norm = 0
		for i = k + 1; i < n; i++ {
			norm += absSq(h[i*n+k])
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // column already in Hessenberg shape
		}

		// alpha = −(x0/|x0|)·norm; for x0 == 0 the phase defaults to 1.
		x0 = h[(k+1)*n+k]
		if x0 == 0 {
			alpha = complex(-norm, 0)
		} else {
			alpha = -x0 * complex(norm/cmplx.Abs(x0), 0)
		}

		// Build v = x − alpha·e₁ over rows k+1..n−1.
		beta = 0
		for i = k + 1; i < n; i++ {
			v[i] = h[i*n+k]
		}
		v[k+1] -= alpha
		for i = k + 1; i < n; i++ {
			beta += absSq(v[i])
		}
		if beta == 0 {
			continue // degenerate reflector, nothing to eliminate
		}
		tau = complex(2/beta, 0)

		// Left application: rows k+1..n−1, columns k..n−1.
		for j = k; j < n; j++ {
			s = 0
			for i = k + 1; i < n; i++ {
				s += cmplx.Conj(v[i]) * h[i*n+j]
			}
			s *= tau
			for i = k + 1; i < n; i++ {
				h[i*n+j] -= s * v[i]
			}
		}

		// Right application: all rows, columns k+1..n−1.
		for i = 0; i < n; i++ {
			s = 0
			for j = k + 1; j < n; j++ {
				s += h[i*n+j] * v[j]
			}
			s *= tau
			for j = k + 1; j < n; j++ {
				h[i*n+j] -= s * cmplx.Conj(v[j])
			}
		}

		// The reflector zeroed column k below the subdiagonal exactly;
		// flush roundoff residue so deflation tests see clean zeros.
		for i = k + 2; i < n; i++ {
			h[i*n+k] = 0
		}
	}
}

// hessenbergQR runs the shifted QR iteration on the upper Hessenberg matrix
// h, deflating eigenvalues from the bottom-right corner.
//
// Deflation policy: a subdiagonal entry is negligible when it is below
// Epsilon relative to its two diagonal neighbors (falling back to the
// one-norm of h when both neighbors vanish). Trailing 1×1 and 2×2 blocks are
// resolved directly; everything larger takes Wilkinson-shifted sweeps.
//
// Errors: ErrNoConvergence when a window survives MaxIterations sweeps.
func hessenbergQR(h []complex128, n int) ([]complex128, error) {
	eig := make([]complex128, n)

	// One-norm fallback scale for deflation tests on zero diagonals.
	var anorm float64
	for i := 0; i < n*n; i++ {
		anorm += cmplx.Abs(h[i])
	}

	// Rotation storage shared across sweeps.
	cs := make([]float64, n)
	sn := make([]complex128, n)

	var (
		lo, hi int        // active window bounds
		iter   int        // sweeps since the last deflation
		scale  float64    // neighborhood scale for the deflation test
		shift  complex128 // current QR shift
	)
	hi = n - 1
	for hi >= 0 {
		if hi == 0 {
			eig[0] = h[0]
			break
		}
		iter = 0
		for {
			// Scan upward for a negligible subdiagonal entry.
			lo = hi
			for lo > 0 {
				scale = cmplx.Abs(h[(lo-1)*n+lo-1]) + cmplx.Abs(h[lo*n+lo])
				if scale == 0 {
					scale = anorm
				}
				if cmplx.Abs(h[lo*n+lo-1]) <= Epsilon*scale {
					h[lo*n+lo-1] = 0
					break
				}
				lo--
			}

			if lo == hi {
				// Isolated 1×1 block: deflate one eigenvalue.
				eig[hi] = h[hi*n+hi]
				hi--
				break
			}
			if lo == hi-1 {
				// Isolated 2×2 block: closed form, deflate two.
				eig[hi-1], eig[hi] = eigenPair(
					h[(hi-1)*n+hi-1], h[(hi-1)*n+hi],
					h[hi*n+hi-1], h[hi*n+hi],
				)
				hi -= 2
				break
			}

			if iter >= MaxIterations {
				return nil, ErrNoConvergence
			}
			if iter > 0 && iter%exceptionalEvery == 0 {
				// Exceptional shift: magnitudes of the two lowest
				// subdiagonals, breaking symmetric limit cycles.
				shift = complex(cmplx.Abs(h[hi*n+hi-1])+cmplx.Abs(h[(hi-1)*n+hi-2]), 0)
			} else {
				shift = wilkinsonShift(h, n, hi)
			}
			iter++

			qrSweep(h, n, lo, hi, shift, cs, sn)
		}
	}

	return eig, nil
}

// eigenPair returns the two eigenvalues of the 2×2 block [[a,b],[c,d]].
func eigenPair(a, b, c, d complex128) (complex128, complex128) {
	mid := (a + d) / 2
	disc := cmplx.Sqrt(mid*mid - (a*d - b*c))

	return mid + disc, mid - disc
}

// wilkinsonShift picks the eigenvalue of the trailing 2×2 block of the
// active window that lies closer to the bottom-right entry h[hi][hi].
func wilkinsonShift(h []complex128, n, hi int) complex128 {
	d := h[hi*n+hi]
	mu1, mu2 := eigenPair(
		h[(hi-1)*n+hi-1], h[(hi-1)*n+hi],
		h[hi*n+hi-1], d,
	)
	if cmplx.Abs(mu1-d) <= cmplx.Abs(mu2-d) {
		return mu1
	}

	return mu2
}

// qrSweep performs one explicit shifted QR step, H ← RQ + σI, restricted to
// the active window [lo..hi]. The restriction is sound for eigenvalues-only
// work: rows above and columns right of the window form coupling blocks of a
// block-triangular matrix and never influence the spectrum.
//
// Stage 1 - subtract the shift and annihilate the subdiagonal with a left
// sweep of complex Givens rotations (Q is their product).
// Stage 2 - right-apply the conjugated rotations (forming RQ, restoring
// Hessenberg shape) and add the shift back.
//
// Complexity: O((hi−lo)²) per sweep.
func qrSweep(h []complex128, n, lo, hi int, shift complex128, cs []float64, sn []complex128) {
	var (
		i, j, k, top int
		r, am        float64
		a, b, x, y   complex128
		c, s         complex128
	)
	for i = lo; i <= hi; i++ {
		h[i*n+i] -= shift
	}

	// Left Givens sweep: zero each subdiagonal entry in turn.
	for i = lo; i < hi; i++ {
		a = h[i*n+i]
		b = h[(i+1)*n+i]
		am = cmplx.Abs(a)
		r = math.Hypot(am, cmplx.Abs(b))
		switch {
		case r == 0:
			cs[i], sn[i] = 1, 0
			continue
		case a == 0:
			cs[i], sn[i] = 0, 1
		default:
			cs[i] = am / r
			sn[i] = a * cmplx.Conj(b) / complex(am*r, 0)
		}
		c = complex(cs[i], 0)
		s = sn[i]
		for j = i; j <= hi; j++ {
			x = h[i*n+j]
			y = h[(i+1)*n+j]
			h[i*n+j] = c*x + s*y
			h[(i+1)*n+j] = -cmplx.Conj(s)*x + c*y
		}
	}

	// Right sweep: H ← H·Gᴴ per rotation, in the same order. Column i of R
	// holds nonzeros up to row i, so rows lo..i+1 cover all fill-in.
	for i = lo; i < hi; i++ {
		c = complex(cs[i], 0)
		s = sn[i]
		top = i + 1
		if top > hi {
			top = hi
		}
		for k = lo; k <= top; k++ {
			x = h[k*n+i]
			y = h[k*n+i+1]
			h[k*n+i] = x*c + y*cmplx.Conj(s)
			h[k*n+i+1] = -x*s + y*c
		}
	}

	for i = lo; i <= hi; i++ {
		h[i*n+i] += shift
	}
}

// absSq returns |z|² without the square root of cmplx.Abs.
func absSq(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
