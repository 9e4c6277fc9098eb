package hafnian

// extract builds the reduced matrix for one decoded subset:
//
//	B[i,j] = mat[pos[i]·n + (pos[j] XOR 1)]
//
// The XOR flips each column position to its even/odd sibling — the
// "opposite pairing" construction that selects exactly the matrix entries
// able to contribute to perfect matchings compatible with the subset. For
// the loop variant the same pass slices the diagonal vectors c, d into the
// subset-local copies C1, D1.
//
// Contracts:
//   - sum positions decoded into w.pos; B occupies w.b[:sum*sum].
//   - mat, c, d are read-only; all writes land in the worker's own scratch.
//
// Complexity: O(sum²) time, zero allocations.
func (w *scratch[T]) extract(mat []T, n, sum int, c, d []T) {
	var (
		i, j int // reduced-matrix iterators
		row  int // flat base offset of mat row pos[i]
	)
	for i = 0; i < sum; i++ {
		row = w.pos[i] * n
		for j = 0; j < sum; j++ {
			w.b[i*sum+j] = mat[row+(w.pos[j]^1)]
		}
		if c != nil {
			w.c1[i] = c[w.pos[i]]
			w.d1[i] = d[w.pos[i]]
		}
	}
}
