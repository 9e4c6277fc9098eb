package hafnian

import "math"

// Hafnian returns the hafnian of a real symmetric matrix, supplied as a
// flattened row-major slice of n² values.
//
// Defined for every n ≥ 0:
//   - n == 0 → 1 (the empty product).
//   - n odd  → 0, exactly — an odd index set has no perfect matching, and no
//     computation is performed.
//   - n even → the full eigenvalue-power-trace pipeline.
//
// The input must be logically symmetric; symmetry is a precondition, not
// validated. The diagonal is ignored. mat is read-only for the duration of
// the call.
//
// Errors: ErrNonSquare, ErrTooLarge, and solver failures (errors.Is
// eigen.ErrNoConvergence), all wrapped with the operation tag.
//
// Complexity: Θ(2^(n/2)) subsets × O(n³) each, across GOMAXPROCS workers by
// default (WithWorkers overrides).
func Hafnian(mat []float64, opts ...Option) (float64, error) {
	return compute(mat, false, opts)
}

// HafnianComplex is Hafnian for complex matrices.
func HafnianComplex(mat []complex128, opts ...Option) (complex128, error) {
	return compute(mat, false, opts)
}

// LoopHafnian returns the loop hafnian of a real symmetric matrix: the
// matching sum that also admits self-loop terms drawn from the diagonal.
//
// Defined for every n ≥ 0:
//   - n == 0 → 1.
//   - n odd  → the matrix is embedded in the top-left block of an
//     (n+1)×(n+1) zero matrix whose new corner diagonal entry is set to 1
//     (an auxiliary unit mode), and the even-size pipeline runs on that.
//   - n even → the pipeline with the loop-correction path enabled.
//
// Errors and cost as for Hafnian.
func LoopHafnian(mat []float64, opts ...Option) (float64, error) {
	return compute(mat, true, opts)
}

// LoopHafnianComplex is LoopHafnian for complex matrices.
func LoopHafnianComplex(mat []complex128, opts ...Option) (complex128, error) {
	return compute(mat, true, opts)
}

// compute is the shared edge-case wrapper around the subset pipeline. It
// resolves the dimension, handles the n == 0 and odd-n branches, applies the
// MaxDim guard, builds the diagonal vectors for the loop variant, and
// delegates to the parallel reduction.
func compute[T Scalar](mat []T, loops bool, opts []Option) (T, error) {
	tag := opHafnian
	if loops {
		tag = opLoopHafnian
	}

	n, err := side(len(mat))
	if err != nil {
		return scalarOf[T](0), hafErrorf(tag, err)
	}
	if n == 0 {
		return scalarOf[T](1), nil
	}
	if n%2 != 0 {
		if !loops {
			return scalarOf[T](0), nil
		}
		mat = padAuxMode(mat, n)
		n++
	}
	if n > MaxDim {
		return scalarOf[T](0), hafErrorf(tag, ErrTooLarge)
	}

	var c, d []T
	if loops {
		c, d = diagonalPair(mat, n)
	}

	res, err := reduce(mat, n, c, d, loops, gatherOptions(opts...))
	if err != nil {
		return scalarOf[T](0), hafErrorf(tag, err)
	}

	return res, nil
}

// side resolves the matrix dimension from the flattened length, or reports
// ErrNonSquare when no n with n² == length exists.
func side(length int) (int, error) {
	if length == 0 {
		return 0, nil
	}
	n := int(math.Round(math.Sqrt(float64(length))))
	if n*n != length {
		return 0, ErrNonSquare
	}

	return n, nil
}

// padAuxMode embeds an odd-dimension matrix into the top-left block of an
// (n+1)×(n+1) zero matrix and sets the new corner diagonal entry to 1. The
// extra row/column behaves as an auxiliary mode whose only matching option
// is its own unit self-loop, so the even-size loop hafnian of the padded
// matrix equals the loop hafnian of the original.
func padAuxMode[T Scalar](mat []T, n int) []T {
	p := n + 1
	out := make([]T, p*p)
	for i := 0; i < n; i++ {
		copy(out[i*p:i*p+n], mat[i*n:(i+1)*n])
	}
	out[p*p-1] = scalarOf[T](1)

	return out
}

// diagonalPair derives the loop-correction inputs from the matrix diagonal:
// D[i] = mat[i,i], and C is D with each adjacent pair swapped (C[2i] =
// D[2i+1], C[2i+1] = D[2i]). Both are immutable for the whole call; workers
// take subset-local copies.
func diagonalPair[T Scalar](mat []T, n int) (c, d []T) {
	d = make([]T, n)
	c = make([]T, n)
	for i := 0; i < n; i++ {
		d[i] = mat[i*n+i]
	}
	for i := 0; i < n; i += 2 {
		c[i] = d[i+1]
		c[i+1] = d[i]
	}

	return c, d
}
