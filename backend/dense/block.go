package dense

import (
	"fmt"

	"github.com/tenalg/tenalg/backend"
)

// block is the dense payload: a row-major flat array with its shape and a
// logical element-kind tag. Blocks are immutable by convention — every
// backend method allocates a fresh result.
type block struct {
	shape []int
	data  []complex128
	dt    backend.Dtype
}

// size returns the total element count of a shape.
func size(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// strides returns row-major strides for a shape.
func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}

	return st
}

// newBlock allocates a zero-filled block.
func newBlock(shape []int, dt backend.Dtype) *block {
	return &block{
		shape: append([]int(nil), shape...),
		data:  make([]complex128, size(shape)),
		dt:    dt,
	}
}

// asBlock recovers the dense payload from an opaque backend.Block.
func asBlock(a backend.Block) (*block, error) {
	b, ok := a.(*block)
	if !ok || b == nil {
		return nil, fmt.Errorf("%T: %w", a, backend.ErrBadBlock)
	}

	return b, nil
}

// checkShape rejects shapes with non-positive axis sizes.
func checkShape(shape []int) error {
	for _, d := range shape {
		if d <= 0 {
			return fmt.Errorf("shape %v: %w", shape, backend.ErrBadShape)
		}
	}

	return nil
}

// checkAxes rejects out-of-range or repeated axes against a rank.
func checkAxes(rank int, axes []int) error {
	seen := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank || seen[ax] {
			return fmt.Errorf("axes %v for rank %d: %w", axes, rank, backend.ErrBadAxis)
		}
		seen[ax] = true
	}

	return nil
}

// multiIndex decodes a flat row-major position into idx (reused buffer).
func multiIndex(flat int, shape, idx []int) {
	for i := len(shape) - 1; i >= 0; i-- {
		idx[i] = flat % shape[i]
		flat /= shape[i]
	}
}

// flatIndex encodes a multi-index with the given strides.
func flatIndex(idx, st []int) int {
	f := 0
	for i, v := range idx {
		f += v * st[i]
	}

	return f
}
