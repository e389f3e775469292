package tensor

import (
	"fmt"

	"github.com/tenalg/tenalg/space"
)

// Tdot contracts the selected legs of a against the selected legs of b.
// Paired legs must be mutually dual spaces; the free legs of a come first
// in the result, followed by the free legs of b, labels carried along. A
// full contraction leaves a tensor with a single trivial leg, readable
// through Item.
func Tdot(a, b *Tensor, legsA, legsB []Leg) (*Tensor, error) {
	if a.bk != b.bk {
		return nil, ErrBackendMismatch
	}
	axesA, err := a.LegIndexes(legsA)
	if err != nil {
		return nil, err
	}
	axesB, err := b.LegIndexes(legsB)
	if err != nil {
		return nil, err
	}
	if len(axesA) != len(axesB) {
		return nil, fmt.Errorf("%d legs vs %d legs: %w", len(axesA), len(axesB), ErrShapeMismatch)
	}
	for i := range axesA {
		if !a.legs[axesA[i]].IsDualOf(b.legs[axesB[i]]) {
			return nil, fmt.Errorf("leg %d of a vs leg %d of b: %w", axesA[i], axesB[i], ErrNotContractible)
		}
	}

	data, err := a.bk.BlockTdot(a.data, b.data, axesA, axesB)
	if err != nil {
		return nil, err
	}
	var legs []*space.Space
	var labels []string
	inA := make(map[int]bool, len(axesA))
	for _, ax := range axesA {
		inA[ax] = true
	}
	inB := make(map[int]bool, len(axesB))
	for _, ax := range axesB {
		inB[ax] = true
	}
	for i, l := range a.legs {
		if !inA[i] {
			legs = append(legs, l)
			labels = append(labels, a.labels[i])
		}
	}
	for i, l := range b.legs {
		if !inB[i] {
			legs = append(legs, l)
			labels = append(labels, b.labels[i])
		}
	}
	if len(legs) == 0 {
		scalarLeg, err := space.NonSymmetric(1)
		if err != nil {
			return nil, err
		}
		legs = []*space.Space{scalarLeg}
		labels = []string{""}
	}

	return &Tensor{bk: a.bk, data: data, legs: legs, labels: labels}, nil
}

// Outer returns the outer product of a and b; the result's legs are a's
// legs followed by b's legs. Clashing labels are dropped from b's side.
func Outer(a, b *Tensor) (*Tensor, error) {
	if a.bk != b.bk {
		return nil, ErrBackendMismatch
	}
	data, err := a.bk.BlockOuter(a.data, b.data)
	if err != nil {
		return nil, err
	}
	labels := append(a.Labels(), b.Labels()...)
	seen := map[string]bool{}
	for i, lab := range labels {
		if lab == "" {
			continue
		}
		if seen[lab] {
			labels[i] = ""
			continue
		}
		seen[lab] = true
	}

	return &Tensor{
		bk:     a.bk,
		data:   data,
		legs:   append(a.Legs(), b.Legs()...),
		labels: labels,
	}, nil
}

// Inner returns ⟨a, b⟩ = Σ conj(a)·b over two tensors of identical shape.
func Inner(a, b *Tensor) (complex128, error) {
	if a.bk != b.bk {
		return 0, ErrBackendMismatch
	}

	return a.bk.BlockInner(a.data, b.data)
}

// CombineLegs merges the selected legs into a single fused leg placed at
// the position of the first selected leg; the remaining legs keep their
// relative order. The fused leg records its factors, so SplitLeg can undo
// the merge. newLabel labels the fused leg ("" leaves it unlabeled).
func (t *Tensor) CombineLegs(legs []Leg, newLabel string) (*Tensor, error) {
	axes, err := t.LegIndexes(legs)
	if err != nil {
		return nil, err
	}
	factorLegs := make([]*space.Space, len(axes))
	for i, ax := range axes {
		factorLegs[i] = t.legs[ax]
	}
	fused, err := space.Fuse(factorLegs...)
	if err != nil {
		return nil, err
	}
	data, err := t.bk.BlockCombineAxes(t.data, axes)
	if err != nil {
		return nil, err
	}

	// Mirror the backend's axis placement: untouched legs before the first
	// merged axis, the fused leg, then the rest.
	in := make(map[int]bool, len(axes))
	for _, ax := range axes {
		in[ax] = true
	}
	var outLegs []*space.Space
	var outLabels []string
	for i := 0; i < axes[0]; i++ {
		if !in[i] {
			outLegs = append(outLegs, t.legs[i])
			outLabels = append(outLabels, t.labels[i])
		}
	}
	outLegs = append(outLegs, fused)
	outLabels = append(outLabels, newLabel)
	for i := axes[0] + 1; i < len(t.legs); i++ {
		if !in[i] {
			outLegs = append(outLegs, t.legs[i])
			outLabels = append(outLabels, t.labels[i])
		}
	}

	return &Tensor{bk: t.bk, data: data, legs: outLegs, labels: outLabels}, nil
}

// SplitLeg undoes CombineLegs on the selected leg: the fused leg is
// replaced in place by its recorded factors. The split legs come back
// unlabeled.
func (t *Tensor) SplitLeg(leg Leg) (*Tensor, error) {
	axis, err := t.LegIndex(leg)
	if err != nil {
		return nil, err
	}
	factors := t.legs[axis].Factors()
	if factors == nil {
		return nil, fmt.Errorf("leg %d: %w", axis, ErrNotFused)
	}
	dims := make([]int, len(factors))
	for i, f := range factors {
		dims[i] = f.Dim()
	}
	data, err := t.bk.BlockSplitAxis(t.data, axis, dims)
	if err != nil {
		return nil, err
	}

	outLegs := make([]*space.Space, 0, len(t.legs)-1+len(factors))
	outLegs = append(outLegs, t.legs[:axis]...)
	outLegs = append(outLegs, factors...)
	outLegs = append(outLegs, t.legs[axis+1:]...)
	outLabels := make([]string, 0, len(outLegs))
	outLabels = append(outLabels, t.labels[:axis]...)
	outLabels = append(outLabels, make([]string, len(factors))...)
	outLabels = append(outLabels, t.labels[axis+1:]...)

	return &Tensor{bk: t.bk, data: data, legs: outLegs, labels: outLabels}, nil
}
