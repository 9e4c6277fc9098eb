package hafnian_test

// Brute-force references and deterministic fixtures shared by the public
// API tests. The references enumerate matchings directly — exponential in a
// worse way than the library, but obviously correct, which is the point.

import "math/rand"

// scalar mirrors the element types the public API accepts.
type scalar interface {
	~float64 | ~complex128
}

// matchingSum recursively sums products over matchings of the index set
// avail: the first free index pairs with each later one (weight mat[i,j]),
// and, when loops is true, may also stand alone (weight mat[i,i]). With
// loops false and an odd set, the recursion bottoms out at zero — exactly
// the hafnian's odd-dimension identity.
func matchingSum[T scalar](mat []T, n int, avail []int, loops bool) T {
	if len(avail) == 0 {
		var one T
		switch p := any(&one).(type) {
		case *float64:
			*p = 1
		case *complex128:
			*p = 1
		}

		return one
	}

	var total T
	i := avail[0]
	rest := avail[1:]

	if loops {
		total += mat[i*n+i] * matchingSum(mat, n, rest, loops)
	}
	for k, j := range rest {
		sub := make([]int, 0, len(rest)-1)
		sub = append(sub, rest[:k]...)
		sub = append(sub, rest[k+1:]...)
		total += mat[i*n+j] * matchingSum(mat, n, sub, loops)
	}

	return total
}

// hafnianRef is the brute-force perfect-matching sum.
func hafnianRef[T scalar](mat []T, n int) T {
	return matchingSum(mat, n, indexRange(n), false)
}

// loopHafnianRef is the brute-force matching sum with self-loops admitted.
func loopHafnianRef[T scalar](mat []T, n int) T {
	return matchingSum(mat, n, indexRange(n), true)
}

func indexRange(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// randomSymmetric returns a dense symmetric n×n matrix with entries in
// (−1, 1), deterministic under the caller's seeded source.
func randomSymmetric(rng *rand.Rand, n int) []float64 {
	mat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := 2*rng.Float64() - 1
			mat[i*n+j] = v
			mat[j*n+i] = v
		}
	}

	return mat
}

// randomSymmetricComplex is randomSymmetric with complex entries (symmetric,
// NOT Hermitian — the hafnian is defined on symmetric matrices).
func randomSymmetricComplex(rng *rand.Rand, n int) []complex128 {
	mat := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := complex(2*rng.Float64()-1, 2*rng.Float64()-1)
			mat[i*n+j] = v
			mat[j*n+i] = v
		}
	}

	return mat
}

// permuteSym applies Pᵀ·M·P for the permutation perm (new index i holds old
// index perm[i]).
func permuteSym(mat []float64, n int, perm []int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = mat[perm[i]*n+perm[j]]
		}
	}

	return out
}
