package hafnian

// scratch is the per-worker arena for one reduction call: every buffer the
// per-subset pipeline touches, sized once to the worst case (the full
// dimension n) and reused across all subsets the worker owns. Workers never
// share scratch state; the input matrix and diagonal vectors stay read-only.
type scratch[T Scalar] struct {
	pos    []int        // decoded matched positions, ≤ n entries used
	b      []T          // reduced matrix B, sum×sum slice of the n×n capacity
	bc     []complex128 // complex copy of B handed to the eigenvalue backend
	pvals  []complex128 // running eigenvalue powers
	traces []T          // power traces T[k] = Tr(B^(k+1)), length m
	comb   [2][]T       // double-buffered DP table, each m+1 long
	c1     []T          // subset-local swapped diagonal (loop variant)
	d1     []T          // subset-local diagonal (loop variant, never updated)
	c1t    []T          // staging row for the C1 ← C1·B step
}

// newScratch allocates a worst-case arena for dimension n (n even, m = n/2).
func newScratch[T Scalar](n int) *scratch[T] {
	m := n / 2

	return &scratch[T]{
		pos:    make([]int, n),
		b:      make([]T, n*n),
		bc:     make([]complex128, n*n),
		pvals:  make([]complex128, n),
		traces: make([]T, m),
		comb:   [2][]T{make([]T, m+1), make([]T, m+1)},
		c1:     make([]T, n),
		d1:     make([]T, n),
		c1t:    make([]T, n),
	}
}
