package hafnian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScalarConversions pins the generic lift/narrow helpers for both
// instantiations.
func TestScalarConversions(t *testing.T) {
	assert.Equal(t, 1.5, scalarOf[float64](1.5))
	assert.Equal(t, complex(1.5, 0), scalarOf[complex128](1.5))

	assert.Equal(t, 2.0, fromComplex[float64](complex(2, 7)), "real path drops the imaginary part")
	assert.Equal(t, complex(2, 7), fromComplex[complex128](complex(2, 7)))

	assert.Equal(t, complex(3, 0), toComplex(3.0))
	assert.Equal(t, complex(3, 4), toComplex(complex(3, 4)))
}

// TestExtract_OppositePairing pins the XOR-sibling construction on a 4×4
// matrix with distinguishable entries.
func TestExtract_OppositePairing(t *testing.T) {
	// mat[i,j] = 10i + j, so every entry names its coordinates.
	mat := make([]float64, 16)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			mat[i*4+j] = float64(10*i + j)
		}
	}

	w := newScratch[float64](4)
	sum := decodeSubset(0b11, 2, w.pos)
	w.extract(mat, 4, sum, nil, nil)

	// B[i,j] = mat[pos[i], pos[j]^1] with pos = (0,1,2,3).
	want := []float64{
		1, 0, 3, 2,
		11, 10, 13, 12,
		21, 20, 23, 22,
		31, 30, 33, 32,
	}
	assert.Equal(t, want, w.b[:16])
}

// TestExtract_DiagonalSlices checks the loop-variant C1/D1 slicing for a
// partial subset.
func TestExtract_DiagonalSlices(t *testing.T) {
	mat := make([]float64, 16)
	for i := 0; i < 4; i++ {
		mat[i*4+i] = float64(i + 1) // diagonal 1,2,3,4
	}
	c, d := diagonalPair(mat, 4)
	assert.Equal(t, []float64{2, 1, 4, 3}, c, "C is D with adjacent pairs swapped")
	assert.Equal(t, []float64{1, 2, 3, 4}, d)

	w := newScratch[float64](4)
	sum := decodeSubset(0b10, 2, w.pos) // slot 1 → rows 2,3
	w.extract(mat, 4, sum, c, d)

	assert.Equal(t, []float64{4, 3}, w.c1[:sum])
	assert.Equal(t, []float64{3, 4}, w.d1[:sum])
}
