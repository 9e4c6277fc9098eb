package hafnian

// Scalar enumerates the two element types the pipeline is instantiated for.
// The real and complex paths share one generic implementation; the split
// happens once, at the public entry points, with zero dynamic dispatch.
type Scalar interface {
	~float64 | ~complex128
}

// scalarOf lifts a real constant into T. Go forbids a direct float64 →
// complex128 conversion inside generic code, so the lift goes through a
// pointer type switch; the compiler devirtualizes both arms.
func scalarOf[T Scalar](x float64) T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = x
	case *complex128:
		*p = complex(x, 0)
	}

	return v
}

// fromComplex narrows a complex power sum back into T. For the real
// instantiation this takes the real part — exact up to roundoff, since real
// matrices carry conjugate-paired spectra.
func fromComplex[T Scalar](z complex128) T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = real(z)
	case *complex128:
		*p = z
	}

	return v
}

// toComplex widens a T element for the eigenvalue backend.
func toComplex[T Scalar](v T) complex128 {
	switch x := any(v).(type) {
	case float64:
		return complex(x, 0)
	case complex128:
		return x
	}

	return 0
}
