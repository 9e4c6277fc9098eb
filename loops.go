package hafnian

// Loop-hafnian correction: the matching polynomial additionally admits
// self-loop terms drawn from the matrix diagonal. The correction rides on
// the same recurrence as the loop-free case — each outer iteration i of the
// DP sees an extra ½·(C1·D1) in its factor, and C1 is then advanced one step
// through B so that iteration i+1 sees loop paths one edge longer.

// loopFactor returns ½·(C1·D1) over the first sum entries — the self-loop
// contribution to the current DP iteration's factor. D1 is the subset-local
// diagonal; C1 starts as its pair-swapped sibling and accumulates one factor
// of B per iteration.
//
// Complexity: O(sum), zero allocations.
func (w *scratch[T]) loopFactor(sum int) T {
	var (
		k   int
		dot T
	)
	for k = 0; k < sum; k++ {
		dot += w.c1[k] * w.d1[k]
	}

	return scalarOf[T](0.5) * dot
}

// advanceLoopRow replaces C1 with the row-vector product C1·B:
//
//	C1'[k] = Σ_j C1[j]·B[j·sum+k]
//
// propagating loop-edge contributions into higher powers exactly as the
// power traces propagate non-loop contributions. The product is staged in
// c1t so every read sees the pre-update C1. D1 is never updated.
//
// Complexity: O(sum²), zero allocations.
func (w *scratch[T]) advanceLoopRow(sum int) {
	var (
		j, k int
		acc  T
	)
	for k = 0; k < sum; k++ {
		acc = scalarOf[T](0)
		for j = 0; j < sum; j++ {
			acc += w.c1[j] * w.b[j*sum+k]
		}
		w.c1t[k] = acc
	}
	copy(w.c1[:sum], w.c1t[:sum])
}
