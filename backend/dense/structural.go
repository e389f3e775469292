package dense

import (
	"fmt"

	"github.com/tenalg/tenalg/backend"
)

// BlockTranspose permutes the axes of a. The permutation must name every
// axis exactly once.
func (d *Backend) BlockTranspose(a backend.Block, perm []int) (backend.Block, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	if len(perm) != len(b.shape) {
		return nil, fmt.Errorf("perm %v for rank %d: %w", perm, len(b.shape), backend.ErrBadAxis)
	}
	if err = checkAxes(len(b.shape), perm); err != nil {
		return nil, err
	}

	outShape := make([]int, len(perm))
	for i, ax := range perm {
		outShape[i] = b.shape[ax]
	}
	out := newBlock(outShape, b.dt)
	srcStrides := strides(b.shape)
	idx := make([]int, len(outShape))
	srcIdx := make([]int, len(outShape))
	for flat := range out.data {
		multiIndex(flat, outShape, idx)
		for i, ax := range perm {
			srcIdx[ax] = idx[i]
		}
		out.data[flat] = b.data[flatIndex(srcIdx, srcStrides)]
	}

	return out, nil
}

// BlockReshape reinterprets a with a new shape of equal total size.
func (d *Backend) BlockReshape(a backend.Block, shape []int) (backend.Block, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	if err = checkShape(shape); err != nil {
		return nil, err
	}
	if size(shape) != len(b.data) {
		return nil, fmt.Errorf("reshape %v to %v: %w", b.shape, shape, backend.ErrBadShape)
	}
	out := newBlock(shape, b.dt)
	copy(out.data, b.data)

	return out, nil
}

// BlockCombineAxes merges the listed axes into a single axis placed at the
// position of the first listed axis; the remaining axes keep their order.
func (d *Backend) BlockCombineAxes(a backend.Block, axes []int) (backend.Block, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	if len(axes) == 0 {
		return nil, fmt.Errorf("no axes to combine: %w", backend.ErrBadAxis)
	}
	if err = checkAxes(len(b.shape), axes); err != nil {
		return nil, err
	}

	inAxes := make(map[int]bool, len(axes))
	for _, ax := range axes {
		inAxes[ax] = true
	}
	var before, after []int
	for n := 0; n < axes[0]; n++ {
		if !inAxes[n] {
			before = append(before, n)
		}
	}
	for n := axes[0] + 1; n < len(b.shape); n++ {
		if !inAxes[n] {
			after = append(after, n)
		}
	}
	perm := append(append(append([]int{}, before...), axes...), after...)

	t, err := d.BlockTranspose(b, perm)
	if err != nil {
		return nil, err
	}
	merged := 1
	for _, ax := range axes {
		merged *= b.shape[ax]
	}
	newShape := make([]int, 0, len(before)+1+len(after))
	for _, ax := range before {
		newShape = append(newShape, b.shape[ax])
	}
	newShape = append(newShape, merged)
	for _, ax := range after {
		newShape = append(newShape, b.shape[ax])
	}

	return d.BlockReshape(t, newShape)
}

// BlockSplitAxis splits one axis into several axes of the given sizes.
func (d *Backend) BlockSplitAxis(a backend.Block, axis int, dims []int) (backend.Block, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	if axis < 0 || axis >= len(b.shape) {
		return nil, fmt.Errorf("axis %d of rank %d: %w", axis, len(b.shape), backend.ErrBadAxis)
	}
	if err = checkShape(dims); err != nil {
		return nil, err
	}
	if size(dims) != b.shape[axis] {
		return nil, fmt.Errorf("split axis of size %d into %v: %w", b.shape[axis], dims, backend.ErrBadShape)
	}
	newShape := make([]int, 0, len(b.shape)-1+len(dims))
	newShape = append(newShape, b.shape[:axis]...)
	newShape = append(newShape, dims...)
	newShape = append(newShape, b.shape[axis+1:]...)

	return d.BlockReshape(b, newShape)
}

// BlockTrace sums over paired axes (axes1[i] with axes2[i]); the paired
// axes must be disjoint and of equal sizes. The result keeps the remaining
// axes in their original order.
func (d *Backend) BlockTrace(a backend.Block, axes1, axes2 []int) (backend.Block, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	if len(axes1) != len(axes2) {
		return nil, fmt.Errorf("trace pairs %v vs %v: %w", axes1, axes2, backend.ErrBadAxis)
	}
	if err = checkAxes(len(b.shape), append(append([]int{}, axes1...), axes2...)); err != nil {
		return nil, err
	}
	for i := range axes1 {
		if b.shape[axes1[i]] != b.shape[axes2[i]] {
			return nil, fmt.Errorf("trace axes %d/%d of sizes %d/%d: %w",
				axes1[i], axes2[i], b.shape[axes1[i]], b.shape[axes2[i]], backend.ErrBadShape)
		}
	}

	paired := make(map[int]bool, 2*len(axes1))
	for i := range axes1 {
		paired[axes1[i]] = true
		paired[axes2[i]] = true
	}
	var others []int
	for n := range b.shape {
		if !paired[n] {
			others = append(others, n)
		}
	}
	outShape := make([]int, len(others))
	for i, ax := range others {
		outShape[i] = b.shape[ax]
	}
	if len(outShape) == 0 {
		outShape = []int{1} // scalar result as a size-1 block
	}

	out := newBlock(outShape, b.dt)
	traceDim := 1
	traceShape := make([]int, len(axes1))
	for i, ax := range axes1 {
		traceShape[i] = b.shape[ax]
		traceDim *= b.shape[ax]
	}
	srcStrides := strides(b.shape)
	outIdx := make([]int, len(outShape))
	trIdx := make([]int, len(axes1))
	srcIdx := make([]int, len(b.shape))
	for flat := range out.data {
		multiIndex(flat, outShape, outIdx)
		for i, ax := range others {
			srcIdx[ax] = outIdx[i]
		}
		var sum complex128
		for tr := 0; tr < traceDim; tr++ {
			multiIndex(tr, traceShape, trIdx)
			for i := range axes1 {
				srcIdx[axes1[i]] = trIdx[i]
				srcIdx[axes2[i]] = trIdx[i]
			}
			sum += b.data[flatIndex(srcIdx, srcStrides)]
		}
		out.data[flat] = sum
	}

	return out, nil
}

// BlockSqueeze drops the listed axes, which must have size one.
func (d *Backend) BlockSqueeze(a backend.Block, axes []int) (backend.Block, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	if err = checkAxes(len(b.shape), axes); err != nil {
		return nil, err
	}
	drop := make(map[int]bool, len(axes))
	for _, ax := range axes {
		if b.shape[ax] != 1 {
			return nil, fmt.Errorf("squeeze axis %d of size %d: %w", ax, b.shape[ax], backend.ErrBadShape)
		}
		drop[ax] = true
	}
	newShape := make([]int, 0, len(b.shape)-len(axes))
	for n, sz := range b.shape {
		if !drop[n] {
			newShape = append(newShape, sz)
		}
	}
	if len(newShape) == 0 {
		newShape = []int{1}
	}

	return d.BlockReshape(b, newShape)
}

// BlockNarrow restricts one axis to [start, start+length).
func (d *Backend) BlockNarrow(a backend.Block, axis, start, length int) (backend.Block, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, err
	}
	if axis < 0 || axis >= len(b.shape) {
		return nil, fmt.Errorf("axis %d of rank %d: %w", axis, len(b.shape), backend.ErrBadAxis)
	}
	if length <= 0 || start < 0 || start+length > b.shape[axis] {
		return nil, fmt.Errorf("narrow [%d,%d) of axis size %d: %w", start, start+length, b.shape[axis], backend.ErrBadShape)
	}

	outShape := append([]int(nil), b.shape...)
	outShape[axis] = length
	out := newBlock(outShape, b.dt)
	srcStrides := strides(b.shape)
	idx := make([]int, len(outShape))
	for flat := range out.data {
		multiIndex(flat, outShape, idx)
		idx[axis] += start
		out.data[flat] = b.data[flatIndex(idx, srcStrides)]
		idx[axis] -= start
	}

	return out, nil
}
