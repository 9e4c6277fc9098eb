package hafnian

// powerTraces fills w.traces with T[k] = Tr(B^(k+1)) for k = 0..m−1, where B
// is the sum×sum reduced matrix in w.b.
//
// Implementation:
//   - Stage 1: widen B into the complex staging buffer and ask the solver
//     for its eigenvalues (values only — the Newton-identity shortcut needs
//     no eigenvectors).
//   - Stage 2: repeatedly sum the eigenvalue powers and bump each power by
//     one factor, one O(sum) pass per trace.
//
// This trades the O(sum³·m) cost of explicit matrix powers for one O(sum³)
// decomposition plus O(sum·m) accumulation. The degenerate sum == 0 case
// yields an all-zero trace vector without invoking the solver.
//
// w.b is left untouched, so the loop-correction step can keep multiplying
// against the original reduced matrix afterwards.
//
// Errors: whatever the solver surfaces (eigen.ErrNoConvergence for the
// default backend), returned as-is for the entry point to tag.
func (w *scratch[T]) powerTraces(sum, m int, solve Solver) error {
	var (
		i, k int
		acc  complex128
	)
	for k = 0; k < m; k++ {
		w.traces[k] = scalarOf[T](0)
	}
	if sum == 0 {
		return nil
	}

	bc := w.bc[:sum*sum]
	for i = 0; i < sum*sum; i++ {
		bc[i] = toComplex(w.b[i])
	}

	vals, err := solve(bc, sum)
	if err != nil {
		return err
	}

	pvals := w.pvals[:sum]
	copy(pvals, vals)
	for k = 0; k < m; k++ {
		acc = 0
		for i = 0; i < sum; i++ {
			acc += pvals[i]
		}
		w.traces[k] = fromComplex[T](acc)
		for i = 0; i < sum; i++ {
			pvals[i] *= vals[i]
		}
	}

	return nil
}
