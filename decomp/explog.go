package decomp

import (
	"fmt"
	"math/cmplx"

	"github.com/tenalg/tenalg/backend"
	"github.com/tenalg/tenalg/tensor"
)

// endomorphismView checks that legs1 and legs2 bipartition t into two
// groups of equal size whose legs are pairwise mutually dual, then returns
// the matrix view of the data. Violations fail before any numeric work.
func endomorphismView(t *tensor.Tensor, legs1, legs2 []tensor.Leg) (backend.Block, *backend.MatrixLayout, error) {
	idx1, idx2, err := LegBipartition(t, legs1, legs2)
	if err != nil {
		return nil, nil, err
	}
	if len(idx1) != len(idx2) {
		return nil, nil, fmt.Errorf("%d vs %d legs: %w", len(idx1), len(idx2), ErrLegCountMismatch)
	}
	for i := range idx1 {
		if !t.Leg(idx1[i]).IsDualOf(t.Leg(idx2[i])) {
			return nil, nil, fmt.Errorf("legs %d and %d: %w", idx1[i], idx2[i], ErrNotDual)
		}
	}

	return backend.Matricize(t.Backend(), t.Data(), idx1, idx2)
}

// Exp returns the matrix exponential of t viewed as an endomorphism from
// the legs1 group to the legs2 group. The paired legs must be mutually
// dual; the result keeps t's full leg and label set. This is the
// linear-algebra matrix function, not an elementwise exponential. Backends
// without an exponential primitive surface backend.ErrUnsupported.
func Exp(t *tensor.Tensor, legs1, legs2 []tensor.Leg) (*tensor.Tensor, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	m, layout, err := endomorphismView(t, legs1, legs2)
	if err != nil {
		return nil, err
	}
	bk := t.Backend()
	e, err := bk.MatrixExp(m)
	if err != nil {
		return nil, err
	}
	data, err := backend.Dematrixify(bk, e, layout)
	if err != nil {
		return nil, err
	}

	return tensor.New(bk, data, t.Legs(), t.Labels())
}

// Log returns the matrix logarithm of t viewed as an endomorphism, under
// the same preconditions as Exp. Log inverts Exp on the endomorphisms the
// backend supports.
func Log(t *tensor.Tensor, legs1, legs2 []tensor.Leg) (*tensor.Tensor, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	m, layout, err := endomorphismView(t, legs1, legs2)
	if err != nil {
		return nil, err
	}
	bk := t.Backend()
	l, err := bk.MatrixLog(m)
	if err != nil {
		return nil, err
	}
	data, err := backend.Dematrixify(bk, l, layout)
	if err != nil {
		return nil, err
	}

	return tensor.New(bk, data, t.Legs(), t.Labels())
}

// ExpScalar is the scalar degradation of Exp for plain numbers.
func ExpScalar(z complex128) complex128 { return cmplx.Exp(z) }

// LogScalar is the scalar degradation of Log. Zero has no logarithm and
// fails with ErrLogDomain.
func LogScalar(z complex128) (complex128, error) {
	if z == 0 {
		return 0, ErrLogDomain
	}

	return cmplx.Log(z), nil
}
