package decomp

import (
	"fmt"

	"github.com/tenalg/tenalg/tensor"
)

// LegBipartition resolves two optional leg selections into two disjoint
// index lists that together cover every leg of t exactly once. This is the
// universal precondition step for viewing a tensor as a linear map.
//
//   - both groups nil or empty: t must have exactly two legs, yielding
//     ([0], [1]).
//   - exactly one given: the other is inferred as every remaining leg, in
//     ascending order.
//   - both given: they must be disjoint and together exhaustive.
func LegBipartition(t *tensor.Tensor, legs1, legs2 []tensor.Leg) ([]int, []int, error) {
	if t == nil {
		return nil, nil, ErrNilTensor
	}
	n := t.NumLegs()

	switch {
	case len(legs1) == 0 && len(legs2) == 0:
		if n != 2 {
			return nil, nil, fmt.Errorf("%d legs: %w", n, ErrNeedTwoLegs)
		}

		return []int{0}, []int{1}, nil

	case len(legs2) == 0:
		idx1, err := t.LegIndexes(legs1)
		if err != nil {
			return nil, nil, err
		}
		if err = distinct(n, idx1); err != nil {
			return nil, nil, err
		}

		return idx1, complement(n, idx1), nil

	case len(legs1) == 0:
		idx2, err := t.LegIndexes(legs2)
		if err != nil {
			return nil, nil, err
		}
		if err = distinct(n, idx2); err != nil {
			return nil, nil, err
		}

		return complement(n, idx2), idx2, nil
	}

	idx1, err := t.LegIndexes(legs1)
	if err != nil {
		return nil, nil, err
	}
	idx2, err := t.LegIndexes(legs2)
	if err != nil {
		return nil, nil, err
	}
	if err = distinct(n, append(append([]int{}, idx1...), idx2...)); err != nil {
		return nil, nil, err
	}
	if len(idx1)+len(idx2) != n {
		return nil, nil, fmt.Errorf("%d of %d legs covered: %w", len(idx1)+len(idx2), n, ErrGroupsIncomplete)
	}

	return idx1, idx2, nil
}

// distinct rejects a leg group that names the same leg twice.
func distinct(n int, idx []int) error {
	seen := make([]bool, n)
	for _, i := range idx {
		if seen[i] {
			return fmt.Errorf("leg %d: %w", i, ErrGroupsOverlap)
		}
		seen[i] = true
	}

	return nil
}

// complement lists the legs of a rank not present in idx, ascending.
func complement(n int, idx []int) []int {
	in := make([]bool, n)
	for _, i := range idx {
		in[i] = true
	}
	out := make([]int, 0, n-len(idx))
	for i := 0; i < n; i++ {
		if !in[i] {
			out = append(out, i)
		}
	}

	return out
}
