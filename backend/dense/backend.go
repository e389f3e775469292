package dense

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/tenalg/tenalg/backend"
)

// DefaultSeed seeds the backend's private random generator when WithSeed
// is not given. A fixed default keeps runs reproducible by default.
const DefaultSeed int64 = 1

// imagTol is the relative imaginary magnitude below which a complex block
// counts as real for dtype conversion.
const imagTol = 1e-12

// ErrFactorization is returned when a gonum routine fails to converge.
var ErrFactorization = errors.New("dense: factorization did not converge")

// Backend is the dense CPU backend. The zero value is not usable; construct
// with New. One Backend value may serve many tensors, but random
// construction shares the internal generator and is not goroutine-safe.
type Backend struct {
	rng *rand.Rand
}

// Option configures a Backend at construction time.
type Option func(*Backend)

// WithSeed replaces the default seed of the private random generator.
func WithSeed(seed int64) Option {
	return func(b *Backend) { b.rng = rand.New(rand.NewSource(seed)) }
}

// New constructs a dense backend with a deterministic private generator.
func New(opts ...Option) *Backend {
	b := &Backend{rng: rand.New(rand.NewSource(DefaultSeed))}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Name identifies the backend in diagnostics.
func (d *Backend) Name() string { return "dense" }

// BlockShape returns the axis sizes of a.
func (d *Backend) BlockShape(a backend.Block) ([]int, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}

	return append([]int(nil), b.shape...), nil
}

// BlockDtype returns the element kind of a.
func (d *Backend) BlockDtype(a backend.Block) (backend.Dtype, error) {
	b, err := asBlock(a)
	if err != nil {
		return 0, err
	}

	return b.dt, nil
}

// BlockItem extracts the single element of a size-1 block.
func (d *Backend) BlockItem(a backend.Block) (complex128, error) {
	b, err := asBlock(a)
	if err != nil {
		return 0, err
	}
	if len(b.data) != 1 {
		return 0, fmt.Errorf("item of %v block: %w", b.shape, backend.ErrBadShape)
	}

	return b.data[0], nil
}

// BlockValues returns a flat row-major copy of a's elements.
func (d *Backend) BlockValues(a backend.Block) ([]complex128, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}

	return append([]complex128(nil), b.data...), nil
}

// BlockToDtype converts between element kinds. Converting to a real dtype
// requires negligible imaginary content; single-precision targets round
// through float32.
func (d *Backend) BlockToDtype(a backend.Block, dt backend.Dtype) (backend.Block, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	out := newBlock(b.shape, dt)
	scale := 0.0
	for _, v := range b.data {
		if m := cmplx.Abs(v); m > scale {
			scale = m
		}
	}
	for i, v := range b.data {
		if !dt.IsComplex() && math.Abs(imag(v)) > imagTol*math.Max(scale, 1) {
			return nil, fmt.Errorf("non-negligible imaginary part %g: %w", imag(v), backend.ErrDtypeMismatch)
		}
		out.data[i] = roundToDtype(v, dt)
	}

	return out, nil
}

// roundToDtype applies the precision and reality of dt to one element.
func roundToDtype(v complex128, dt backend.Dtype) complex128 {
	switch dt {
	case backend.Float32:
		return complex(float64(float32(real(v))), 0)
	case backend.Float64:
		return complex(real(v), 0)
	case backend.Complex64:
		return complex(float64(float32(real(v))), float64(float32(imag(v))))
	default:
		return v
	}
}

// BlockCopy returns an independent copy of a.
func (d *Backend) BlockCopy(a backend.Block) (backend.Block, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	out := newBlock(b.shape, b.dt)
	copy(out.data, b.data)

	return out, nil
}

// ZeroBlock returns a zero-filled block.
func (d *Backend) ZeroBlock(shape []int, dt backend.Dtype) (backend.Block, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}

	return newBlock(shape, dt), nil
}

// EyeBlock returns the identity on the product of legDims, reshaped into
// the paired structure legDims + legDims.
func (d *Backend) EyeBlock(legDims []int, dt backend.Dtype) (backend.Block, error) {
	if err := checkShape(legDims); err != nil {
		return nil, err
	}
	n := size(legDims)
	out := newBlock(append(append([]int{}, legDims...), legDims...), dt)
	for i := 0; i < n; i++ {
		out.data[i*n+i] = 1
	}

	return out, nil
}

// DiagonalBlock embeds a 1D block as a square diagonal matrix.
func (d *Backend) DiagonalBlock(diag backend.Block) (backend.Block, error) {
	b, err := asBlock(diag)
	if err != nil {
		return nil, err
	}
	if len(b.shape) != 1 {
		return nil, fmt.Errorf("diagonal of %v block: %w", b.shape, backend.ErrBadShape)
	}
	n := b.shape[0]
	out := newBlock([]int{n, n}, b.dt)
	for i := 0; i < n; i++ {
		out.data[i*n+i] = b.data[i]
	}

	return out, nil
}

// RandomUniform fills a block with uniform draws from [0, 1); complex
// dtypes draw real and imaginary parts independently.
func (d *Backend) RandomUniform(shape []int, dt backend.Dtype) (backend.Block, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	out := newBlock(shape, dt)
	for i := range out.data {
		if dt.IsComplex() {
			out.data[i] = complex(d.rng.Float64(), d.rng.Float64())
		} else {
			out.data[i] = complex(d.rng.Float64(), 0)
		}
	}

	return out, nil
}

// RandomNormal fills a block with normal draws of mean 0 and spread sigma.
func (d *Backend) RandomNormal(shape []int, dt backend.Dtype, sigma float64) (backend.Block, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	out := newBlock(shape, dt)
	for i := range out.data {
		if dt.IsComplex() {
			out.data[i] = complex(d.rng.NormFloat64()*sigma, d.rng.NormFloat64()*sigma)
		} else {
			out.data[i] = complex(d.rng.NormFloat64()*sigma, 0)
		}
	}

	return out, nil
}

// BlockFromValues builds a block from row-major raw values. Real dtypes
// reject values with non-negligible imaginary parts.
func (d *Backend) BlockFromValues(values []complex128, shape []int, dt backend.Dtype) (backend.Block, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	if len(values) != size(shape) {
		return nil, fmt.Errorf("%d values for shape %v: %w", len(values), shape, backend.ErrBadShape)
	}
	out := newBlock(shape, dt)
	for i, v := range values {
		if !dt.IsComplex() && imag(v) != 0 {
			return nil, fmt.Errorf("complex value at %d for %s block: %w", i, dt, backend.ErrDtypeMismatch)
		}
		out.data[i] = roundToDtype(v, dt)
	}

	return out, nil
}
