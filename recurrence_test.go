package hafnian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The hand-worked vectors below come from the 4×4 all-ones-off-diagonal
// matrix (hafnian 3): subset {0} yields the identity reduced matrix with
// traces (2, 2) and coefficient 1, and the full subset yields traces (4, 12)
// and coefficient 5; with signs −1, −1, +5 (plus the zero empty subset) the
// summands total 3.

// TestPolynomialCoefficient_IdentityReduced checks the DP on traces (2, 2)
// for n = 4: exp(x + x²/2) has x² coefficient 1.
func TestPolynomialCoefficient_IdentityReduced(t *testing.T) {
	w := newScratch[float64](4)
	w.traces[0], w.traces[1] = 2, 2

	coeff := w.polynomialCoefficient(4, 2, false)
	assert.InDelta(t, 1.0, coeff, 1e-12)
	assert.InDelta(t, -1.0, signedSummand(coeff, 4, 2), 1e-12, "odd pair count flips the sign")
}

// TestPolynomialCoefficient_FullSubset checks the DP on traces (4, 12) for
// n = 4: exp(2x + 3x²) has x² coefficient 2²/2! + 3 = 5.
func TestPolynomialCoefficient_FullSubset(t *testing.T) {
	w := newScratch[float64](4)
	w.traces[0], w.traces[1] = 4, 12

	coeff := w.polynomialCoefficient(4, 4, false)
	assert.InDelta(t, 5.0, coeff, 1e-12)
	assert.InDelta(t, 5.0, signedSummand(coeff, 4, 4), 1e-12, "even pair count keeps the sign")
}

// TestPolynomialCoefficient_EmptySubset: no traces, coefficient of x^(n/2)
// in exp(0) vanishes for n > 0.
func TestPolynomialCoefficient_EmptySubset(t *testing.T) {
	w := newScratch[float64](4)

	assert.Zero(t, w.polynomialCoefficient(4, 0, false))
}

// TestPolynomialCoefficient_LoopClosedForm drives the loop-corrected
// recurrence through the 2×2 closed form: for [[a,b],[b,c]] the full subset
// has B = [[b,a],[c,b]], trace 2b, C1 = (c,a), D1 = (a,c), so the factor is
// b + ac and the loop hafnian coefficient is b + ac.
func TestPolynomialCoefficient_LoopClosedForm(t *testing.T) {
	const a, b, c = 2.0, 3.0, 5.0

	w := newScratch[float64](2)
	w.b[0], w.b[1], w.b[2], w.b[3] = b, a, c, b
	w.traces[0] = 2 * b
	w.c1[0], w.c1[1] = c, a
	w.d1[0], w.d1[1] = a, c

	coeff := w.polynomialCoefficient(2, 2, true)
	assert.InDelta(t, b+a*c, coeff, 1e-12)
}

// TestAdvanceLoopRow verifies the C1 ← C1·B row-vector step against a
// hand-multiplied 2×2 case, and that D1 stays fixed.
func TestAdvanceLoopRow(t *testing.T) {
	w := newScratch[float64](2)
	// B = [[1,2],[3,4]], C1 = (5, 6) → C1·B = (5+18, 10+24) = (23, 34).
	w.b[0], w.b[1], w.b[2], w.b[3] = 1, 2, 3, 4
	w.c1[0], w.c1[1] = 5, 6
	w.d1[0], w.d1[1] = 7, 8

	w.advanceLoopRow(2)

	assert.Equal(t, []float64{23, 34}, w.c1[:2])
	assert.Equal(t, []float64{7, 8}, w.d1[:2], "D1 must never be updated")
}

// TestPowerTraces_Identity runs the spectral path on the 2×2 identity: both
// traces are 2 for every power.
func TestPowerTraces_Identity(t *testing.T) {
	w := newScratch[float64](4)
	w.b[0], w.b[1], w.b[2], w.b[3] = 1, 0, 0, 1

	require.NoError(t, w.powerTraces(2, 2, defaultOptions().solver))
	assert.InDelta(t, 2.0, w.traces[0], 1e-12)
	assert.InDelta(t, 2.0, w.traces[1], 1e-12)
}

// TestPowerTraces_EmptySkipsSolver: sum == 0 must zero the traces without
// consulting the backend at all.
func TestPowerTraces_EmptySkipsSolver(t *testing.T) {
	w := newScratch[float64](4)
	w.traces[0], w.traces[1] = 9, 9

	boom := func([]complex128, int) ([]complex128, error) {
		t.Fatal("solver must not be invoked for an empty subset")

		return nil, nil
	}
	require.NoError(t, w.powerTraces(0, 2, boom))
	assert.Zero(t, w.traces[0])
	assert.Zero(t, w.traces[1])
}
