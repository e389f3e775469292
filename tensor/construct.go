package tensor

import (
	"github.com/tenalg/tenalg/backend"
	"github.com/tenalg/tenalg/space"
)

// legDims extracts the axis sizes of a leg list, checking for nil legs.
func legDims(legs []*space.Space) ([]int, error) {
	dims := make([]int, len(legs))
	for i, l := range legs {
		if l == nil {
			return nil, ErrNilLeg
		}
		dims[i] = l.Dim()
	}

	return dims, nil
}

// Zero returns a zero-filled tensor over the given legs.
func Zero(bk backend.BlockBackend, legs []*space.Space, dt backend.Dtype, labels []string) (*Tensor, error) {
	if bk == nil {
		return nil, ErrNilBackend
	}
	dims, err := legDims(legs)
	if err != nil {
		return nil, err
	}
	data, err := bk.ZeroBlock(dims, dt)
	if err != nil {
		return nil, err
	}

	return New(bk, data, legs, labels)
}

// Eye returns the identity map on the given legs: its leg list is the
// input legs followed by their duals in the same order.
func Eye(bk backend.BlockBackend, legs []*space.Space, dt backend.Dtype, labels []string) (*Tensor, error) {
	if bk == nil {
		return nil, ErrNilBackend
	}
	dims, err := legDims(legs)
	if err != nil {
		return nil, err
	}
	data, err := bk.EyeBlock(dims, dt)
	if err != nil {
		return nil, err
	}
	all := make([]*space.Space, 0, 2*len(legs))
	all = append(all, legs...)
	for _, l := range legs {
		all = append(all, l.Dual())
	}

	return New(bk, data, all, labels)
}

// RandomUniform returns a tensor with elements drawn uniformly from [0, 1).
func RandomUniform(bk backend.BlockBackend, legs []*space.Space, dt backend.Dtype, labels []string) (*Tensor, error) {
	if bk == nil {
		return nil, ErrNilBackend
	}
	dims, err := legDims(legs)
	if err != nil {
		return nil, err
	}
	data, err := bk.RandomUniform(dims, dt)
	if err != nil {
		return nil, err
	}

	return New(bk, data, legs, labels)
}

// RandomNormal returns a tensor with normal elements of mean 0 and the
// given spread.
func RandomNormal(bk backend.BlockBackend, legs []*space.Space, dt backend.Dtype, sigma float64, labels []string) (*Tensor, error) {
	if bk == nil {
		return nil, ErrNilBackend
	}
	dims, err := legDims(legs)
	if err != nil {
		return nil, err
	}
	data, err := bk.RandomNormal(dims, dt, sigma)
	if err != nil {
		return nil, err
	}

	return New(bk, data, legs, labels)
}

// FromValues builds a tensor from row-major raw values over the given legs.
func FromValues(bk backend.BlockBackend, values []complex128, legs []*space.Space, dt backend.Dtype, labels []string) (*Tensor, error) {
	if bk == nil {
		return nil, ErrNilBackend
	}
	dims, err := legDims(legs)
	if err != nil {
		return nil, err
	}
	data, err := bk.BlockFromValues(values, dims, dt)
	if err != nil {
		return nil, err
	}

	return New(bk, data, legs, labels)
}
