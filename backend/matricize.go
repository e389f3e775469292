package backend

import "fmt"

// MatrixLayout records how a block was viewed as a matrix, so the view can
// be undone after a matrix-level primitive ran on it.
type MatrixLayout struct {
	perm  []int // axis permutation applied before flattening
	shape []int // block shape after the permutation
}

// Matricize views a as a matrix with the axes1 group flattened into rows
// and the axes2 group into columns. Together the groups must cover every
// axis exactly once. The returned layout feeds Dematrixify.
func Matricize(bk BlockBackend, a Block, axes1, axes2 []int) (Block, *MatrixLayout, error) {
	shape, err := bk.BlockShape(a)
	if err != nil {
		return nil, nil, err
	}
	perm := append(append([]int{}, axes1...), axes2...)
	if len(perm) != len(shape) {
		return nil, nil, fmt.Errorf("%d axes for rank-%d block: %w", len(perm), len(shape), ErrBadAxis)
	}

	t, err := bk.BlockTranspose(a, perm)
	if err != nil {
		return nil, nil, err
	}
	permuted, err := bk.BlockShape(t)
	if err != nil {
		return nil, nil, err
	}
	rows, cols := 1, 1
	for i, d := range permuted {
		if i < len(axes1) {
			rows *= d
		} else {
			cols *= d
		}
	}
	m, err := bk.BlockReshape(t, []int{rows, cols})
	if err != nil {
		return nil, nil, err
	}

	return m, &MatrixLayout{perm: perm, shape: permuted}, nil
}

// Dematrixify undoes Matricize: the matrix is reshaped back to the
// permuted block shape and the axis permutation is inverted.
func Dematrixify(bk BlockBackend, m Block, layout *MatrixLayout) (Block, error) {
	t, err := bk.BlockReshape(m, layout.shape)
	if err != nil {
		return nil, err
	}

	return bk.BlockTranspose(t, inversePermutation(layout.perm))
}

// inversePermutation returns q with q[p[i]] = i.
func inversePermutation(p []int) []int {
	q := make([]int, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q
}
