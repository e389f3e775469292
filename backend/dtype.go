package backend

// Dtype enumerates the numeric element kinds a backend can store. The
// precision pairs (Float32/Complex64, Float64/Complex128) share a width so
// conversions between real and complex kinds keep precision.
type Dtype int

const (
	// Float32 is single-precision real.
	Float32 Dtype = iota

	// Float64 is double-precision real.
	Float64

	// Complex64 is single-precision complex.
	Complex64

	// Complex128 is double-precision complex.
	Complex128
)

// IsComplex reports whether the dtype has a complex structure.
func (d Dtype) IsComplex() bool {
	return d == Complex64 || d == Complex128
}

// ToComplex returns the complex dtype of the same precision.
func (d Dtype) ToComplex() Dtype {
	if d == Float32 || d == Complex64 {
		return Complex64
	}

	return Complex128
}

// ToReal returns the real dtype of the same precision.
func (d Dtype) ToReal() Dtype {
	if d == Float32 || d == Complex64 {
		return Float32
	}

	return Float64
}

// String returns the dtype name.
func (d Dtype) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}
