package hafnian

// polynomialCoefficient extracts the coefficient of x^(n/2) from the formal
// series
//
//	exp( Σ_{i=1}^{n/2} (T[i−1]/(2i))·x^i )
//
// truncated to degree n/2, where T are the power traces of the current
// subset's reduced matrix. This is the generating-function form of the
// matching polynomial: term i counts cycles of length 2i, and the outer
// exponential folds together every way of combining them.
//
// Implementation:
//   - Stage 1: double-buffered DP over the coefficient vector (length
//     n/2+1). prev starts as the constant series 1; each outer iteration i
//     first copies prev into curr (the "use power i zero times" baseline).
//   - Stage 2: for j = 1..⌊n/(2i)⌋ accumulate powfactor = factorʲ/j!
//     incrementally and convolve: curr[k−1] += prev[k−i·j−1]·powfactor for
//     k = i·j+1..n/2+1 — the standard exponential-series convolution.
//   - Stage 3: swap buffers. After the last iteration the answer sits at
//     index n/2 of the last-written buffer.
//
// For the loop variant (loops == true) the factor for iteration i gains the
// self-loop correction ½·(C1·D1), and C1 advances by one multiplication with
// B afterwards — see loopFactor / advanceLoopRow. Both happen inside the
// same i-loop, strictly before the DP storage step, mirroring how power
// traces propagate non-loop contributions.
//
// Determinism: fixed iteration orders throughout; the double buffer exists
// precisely to keep the convolution free of in-place corruption.
// Complexity: O(n² log n) worst case over the harmonic inner bounds,
// in practice dominated by the O(n²) copies; zero allocations.
func (w *scratch[T]) polynomialCoefficient(n, sum int, loops bool) T {
	var (
		m         = n / 2
		prev      = w.comb[0][:m+1]
		curr      = w.comb[1][:m+1]
		i, j, k   int
		factor    T
		powfactor T
	)
	for i = range prev {
		prev[i] = scalarOf[T](0)
		curr[i] = scalarOf[T](0)
	}
	prev[0] = scalarOf[T](1)

	for i = 1; i <= m; i++ {
		factor = w.traces[i-1] / scalarOf[T](2*float64(i))
		if loops {
			factor += w.loopFactor(sum)
			w.advanceLoopRow(sum)
		}

		copy(curr, prev)
		powfactor = scalarOf[T](1)
		for j = 1; j <= n/(2*i); j++ {
			powfactor = powfactor * factor / scalarOf[T](float64(j))
			for k = i*j + 1; k <= m+1; k++ {
				curr[k-1] += prev[k-i*j-1] * powfactor
			}
		}

		prev, curr = curr, prev
	}

	return prev[m]
}

// signedSummand applies the inclusion–exclusion sign to one subset's raw
// coefficient: the term enters positively exactly when the parity of the
// subset's pair count (sum/2) matches the parity of n/2. The rule comes from
// the underlying subset-sum formula and must be reproduced exactly.
func signedSummand[T Scalar](coeff T, n, sum int) T {
	if (sum/2)%2 == (n/2)%2 {
		return coeff
	}

	return -coeff
}
