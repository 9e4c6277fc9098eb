package hafnian

import "sync"

// reduce enumerates the full subset space X = 0..2^(n/2)−1, evaluates the
// per-subset pipeline for each index, and combines the signed summands into
// a single scalar.
//
// Scheduling: fork-join data parallelism with a structured reduction. The
// index space is split into one contiguous block per worker; each worker
// owns a private scratch arena and produces an independent partial sum, and
// the partial sums are folded in fixed worker order after the join. This
// bounds floating-point reordering to the (small, fixed) number of partials
// rather than per-subset interleaving, and needs no lock on the hot path —
// the only shared inputs (mat, c, d) are read-only for the whole call.
//
// The (start, count) shape of sumRange is the future distributed-chunking
// seam; this dispatcher always covers the whole range in-process.
//
// Errors: the first failing worker's error, by worker order.
// Complexity: Θ(2^(n/2)) independent tasks of O(sum³ + n²) each.
func reduce[T Scalar](mat []T, n int, c, d []T, loops bool, o Options) (T, error) {
	var (
		m     = n / 2
		total = uint64(1) << uint(m)
	)

	workers := uint64(o.workers)
	if workers > total {
		workers = total
	}

	var (
		partial = make([]T, workers)
		errs    = make([]error, workers)
		block   = total / workers
		rem     = total % workers
		start   uint64
		wg      sync.WaitGroup
	)
	for w := uint64(0); w < workers; w++ {
		count := block
		if w < rem {
			count++
		}
		wg.Add(1)
		go func(w, start, count uint64) {
			defer wg.Done()
			partial[w], errs[w] = sumRange(mat, n, c, d, loops, start, count, o.solver)
		}(w, start, count)
		start += count
	}
	wg.Wait()

	var res T
	for w := uint64(0); w < workers; w++ {
		if errs[w] != nil {
			return scalarOf[T](0), errs[w]
		}
		res += partial[w]
	}

	return res, nil
}

// sumRange evaluates subsets X = start..start+count−1 sequentially and
// returns their signed partial sum. One scratch arena serves the whole
// range; nothing escapes to shared state.
//
// Per subset: decode → extract → power traces → polynomial coefficient →
// sign. A solver failure aborts the range with no partial result.
func sumRange[T Scalar](mat []T, n int, c, d []T, loops bool, start, count uint64, solve Solver) (T, error) {
	var (
		m   = n / 2
		w   = newScratch[T](n)
		res T
		sum int
		err error
	)
	for x := start; x < start+count; x++ {
		sum = decodeSubset(x, m, w.pos)
		w.extract(mat, n, sum, c, d)
		if err = w.powerTraces(sum, m, solve); err != nil {
			return scalarOf[T](0), err
		}
		res += signedSummand(w.polynomialCoefficient(n, sum, loops), n, sum)
	}

	return res, nil
}
