package dense

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tenalg/tenalg/backend"
)

// promoteDtype returns the common element kind of two operands: complex
// wins over real, double precision wins over single.
func promoteDtype(a, b backend.Dtype) backend.Dtype {
	dt := a
	if b.IsComplex() {
		dt = dt.ToComplex()
	}
	if b == backend.Float64 || b == backend.Complex128 {
		if dt.IsComplex() {
			dt = backend.Complex128
		} else {
			dt = backend.Float64
		}
	}

	return dt
}

// BlockTdot contracts axesA of a against axesB of b. The free axes of a
// come first in the result, in their original order, followed by the free
// axes of b.
func (d *Backend) BlockTdot(a, b backend.Block, axesA, axesB []int) (backend.Block, error) {
	ba, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	bb, err := asBlock(b)
	if err != nil {
		return nil, err
	}
	if len(axesA) != len(axesB) {
		return nil, fmt.Errorf("contraction pairs %v vs %v: %w", axesA, axesB, backend.ErrBadAxis)
	}
	if err = checkAxes(len(ba.shape), axesA); err != nil {
		return nil, err
	}
	if err = checkAxes(len(bb.shape), axesB); err != nil {
		return nil, err
	}
	for i := range axesA {
		if ba.shape[axesA[i]] != bb.shape[axesB[i]] {
			return nil, fmt.Errorf("contracted axes %d/%d of sizes %d/%d: %w",
				axesA[i], axesB[i], ba.shape[axesA[i]], bb.shape[axesB[i]], backend.ErrBadShape)
		}
	}

	// View both operands as matrices with the contracted axes flattened,
	// multiply, then restore the free-axes shape.
	freeA := complementAxes(len(ba.shape), axesA)
	freeB := complementAxes(len(bb.shape), axesB)
	ma, _, err := backend.Matricize(d, ba, freeA, axesA)
	if err != nil {
		return nil, err
	}
	mb, _, err := backend.Matricize(d, bb, axesB, freeB)
	if err != nil {
		return nil, err
	}
	pa, pb := ma.(*block), mb.(*block)
	rows, inner, cols := pa.shape[0], pa.shape[1], pb.shape[1]

	out := newBlock([]int{rows, cols}, promoteDtype(ba.dt, bb.dt))
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			av := pa.data[i*inner+k]
			if av == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				out.data[i*cols+j] += av * pb.data[k*cols+j]
			}
		}
	}

	outShape := make([]int, 0, len(freeA)+len(freeB))
	for _, ax := range freeA {
		outShape = append(outShape, ba.shape[ax])
	}
	for _, ax := range freeB {
		outShape = append(outShape, bb.shape[ax])
	}
	if len(outShape) == 0 {
		outShape = []int{1} // full contraction leaves a size-1 block
	}

	return d.BlockReshape(out, outShape)
}

// complementAxes lists the axes of a rank not present in axes, ascending.
func complementAxes(rank int, axes []int) []int {
	in := make([]bool, rank)
	for _, ax := range axes {
		in[ax] = true
	}
	out := make([]int, 0, rank-len(axes))
	for n := 0; n < rank; n++ {
		if !in[n] {
			out = append(out, n)
		}
	}

	return out
}

// BlockConj returns the elementwise complex conjugate.
func (d *Backend) BlockConj(a backend.Block) (backend.Block, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	out := newBlock(b.shape, b.dt)
	for i, v := range b.data {
		out.data[i] = cmplx.Conj(v)
	}

	return out, nil
}

// BlockOuter returns the outer product of a and b; the result's axes are
// a's axes followed by b's axes.
func (d *Backend) BlockOuter(a, b backend.Block) (backend.Block, error) {
	ba, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	bb, err := asBlock(b)
	if err != nil {
		return nil, err
	}
	outShape := append(append([]int{}, ba.shape...), bb.shape...)
	out := newBlock(outShape, promoteDtype(ba.dt, bb.dt))
	for i, av := range ba.data {
		if av == 0 {
			continue
		}
		for j, bv := range bb.data {
			out.data[i*len(bb.data)+j] = av * bv
		}
	}

	return out, nil
}

// BlockInner returns Σ conj(a)·b over all elements of two equal-shape
// blocks.
func (d *Backend) BlockInner(a, b backend.Block) (complex128, error) {
	ba, err := asBlock(a)
	if err != nil {
		return 0, err
	}
	bb, err := asBlock(b)
	if err != nil {
		return 0, err
	}
	if !shapeEqual(ba.shape, bb.shape) {
		return 0, fmt.Errorf("inner of %v and %v: %w", ba.shape, bb.shape, backend.ErrBadShape)
	}
	var sum complex128
	for i := range ba.data {
		sum += cmplx.Conj(ba.data[i]) * bb.data[i]
	}

	return sum, nil
}

// BlockNorm returns the Frobenius norm of a.
func (d *Backend) BlockNorm(a backend.Block) (float64, error) {
	b, err := asBlock(a)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range b.data {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}

	return math.Sqrt(sum), nil
}

// BlockAllClose reports elementwise |x-y| ≤ atol + rtol·|y|.
func (d *Backend) BlockAllClose(a, b backend.Block, rtol, atol float64) (bool, error) {
	ba, err := asBlock(a)
	if err != nil {
		return false, err
	}
	bb, err := asBlock(b)
	if err != nil {
		return false, err
	}
	if !shapeEqual(ba.shape, bb.shape) {
		return false, fmt.Errorf("allclose of %v and %v: %w", ba.shape, bb.shape, backend.ErrBadShape)
	}
	for i := range ba.data {
		if cmplx.Abs(ba.data[i]-bb.data[i]) > atol+rtol*cmplx.Abs(bb.data[i]) {
			return false, nil
		}
	}

	return true, nil
}

// shapeEqual reports elementwise equality of two shapes.
func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
