package tensor

import (
	"fmt"
	"strings"

	"github.com/tenalg/tenalg/backend"
	"github.com/tenalg/tenalg/space"
)

// Tensor is a multi-leg array whose axes are symmetry-graded leg spaces,
// with an optional string label per leg and an opaque data block owned by
// exactly this tensor. Every operation returns a brand-new Tensor; data
// blocks are never aliased between tensors.
//
// Operations on one Tensor value must not be issued concurrently, since the
// underlying block is exclusively owned.
type Tensor struct {
	bk     backend.BlockBackend
	data   backend.Block
	legs   []*space.Space
	labels []string
}

// New wraps a data block with its leg spaces. The block's shape must match
// the leg dimensions axis by axis. labels may be nil (all legs unlabeled)
// or one entry per leg, with "" for unlabeled; non-empty labels must be
// unique.
func New(bk backend.BlockBackend, data backend.Block, legs []*space.Space, labels []string) (*Tensor, error) {
	if bk == nil {
		return nil, ErrNilBackend
	}
	if data == nil {
		return nil, ErrNilData
	}
	shape, err := bk.BlockShape(data)
	if err != nil {
		return nil, err
	}
	if len(shape) != len(legs) {
		return nil, fmt.Errorf("%d axes for %d legs: %w", len(shape), len(legs), ErrShapeMismatch)
	}
	for i, l := range legs {
		if l == nil {
			return nil, fmt.Errorf("leg %d: %w", i, ErrNilLeg)
		}
		if l.Dim() != shape[i] {
			return nil, fmt.Errorf("leg %d dim %d vs axis size %d: %w", i, l.Dim(), shape[i], ErrShapeMismatch)
		}
	}
	labels, err = normalizeLabels(labels, len(legs))
	if err != nil {
		return nil, err
	}

	return &Tensor{
		bk:     bk,
		data:   data,
		legs:   append([]*space.Space(nil), legs...),
		labels: labels,
	}, nil
}

// normalizeLabels copies and validates a label list against a leg count.
func normalizeLabels(labels []string, numLegs int) ([]string, error) {
	if labels == nil {
		return make([]string, numLegs), nil
	}
	if len(labels) != numLegs {
		return nil, fmt.Errorf("%d labels for %d legs: %w", len(labels), numLegs, ErrLabelCount)
	}
	seen := map[string]bool{}
	for _, lab := range labels {
		if lab == "" {
			continue
		}
		if seen[lab] {
			return nil, fmt.Errorf("label %q: %w", lab, ErrDuplicateLabel)
		}
		seen[lab] = true
	}

	return append([]string(nil), labels...), nil
}

// Backend returns the backend that owns this tensor's data.
func (t *Tensor) Backend() backend.BlockBackend { return t.bk }

// Data returns the opaque block. The block stays exclusively owned by the
// tensor; callers must only pass it back into the same backend.
func (t *Tensor) Data() backend.Block { return t.data }

// NumLegs returns the number of legs.
func (t *Tensor) NumLegs() int { return len(t.legs) }

// Leg returns the leg space at position i.
func (t *Tensor) Leg(i int) *space.Space { return t.legs[i] }

// Legs returns a copy of the leg list.
func (t *Tensor) Legs() []*space.Space {
	return append([]*space.Space(nil), t.legs...)
}

// Label returns the label of leg i ("" when unlabeled).
func (t *Tensor) Label(i int) string { return t.labels[i] }

// Labels returns a copy of the label list.
func (t *Tensor) Labels() []string {
	return append([]string(nil), t.labels...)
}

// WithLabels returns a tensor sharing this tensor's legs but carrying a new
// label list, with a fresh copy of the data.
func (t *Tensor) WithLabels(labels []string) (*Tensor, error) {
	labels, err := normalizeLabels(labels, len(t.legs))
	if err != nil {
		return nil, err
	}
	data, err := t.bk.BlockCopy(t.data)
	if err != nil {
		return nil, err
	}

	return &Tensor{bk: t.bk, data: data, legs: t.Legs(), labels: labels}, nil
}

// Dtype returns the element kind of the data block.
func (t *Tensor) Dtype() (backend.Dtype, error) {
	return t.bk.BlockDtype(t.data)
}

// Item extracts the single element of a tensor whose total dimension is 1.
func (t *Tensor) Item() (complex128, error) {
	return t.bk.BlockItem(t.data)
}

// Norm returns the Frobenius norm of the data.
func (t *Tensor) Norm() (float64, error) {
	return t.bk.BlockNorm(t.data)
}

// AllClose reports elementwise approximate equality of two tensors of the
// same shape within |x-y| ≤ atol + rtol·|y|.
func (t *Tensor) AllClose(o *Tensor, rtol, atol float64) (bool, error) {
	if t.bk != o.bk {
		return false, ErrBackendMismatch
	}

	return t.bk.BlockAllClose(t.data, o.data, rtol, atol)
}

// Conj returns the complex conjugate tensor. Every leg is replaced by its
// dual; labels are kept.
func (t *Tensor) Conj() (*Tensor, error) {
	data, err := t.bk.BlockConj(t.data)
	if err != nil {
		return nil, err
	}
	legs := make([]*space.Space, len(t.legs))
	for i, l := range t.legs {
		legs[i] = l.Dual()
	}

	return &Tensor{bk: t.bk, data: data, legs: legs, labels: t.Labels()}, nil
}

// Transpose permutes the legs. The permutation must name every leg exactly
// once; labels follow their legs.
func (t *Tensor) Transpose(perm []int) (*Tensor, error) {
	data, err := t.bk.BlockTranspose(t.data, perm)
	if err != nil {
		return nil, err
	}
	legs := make([]*space.Space, len(perm))
	labels := make([]string, len(perm))
	for i, p := range perm {
		legs[i] = t.legs[p]
		labels[i] = t.labels[p]
	}

	return &Tensor{bk: t.bk, data: data, legs: legs, labels: labels}, nil
}

// String renders a short diagnostic form listing leg labels and dimensions.
func (t *Tensor) String() string {
	parts := make([]string, len(t.legs))
	for i, l := range t.legs {
		lab := t.labels[i]
		if lab == "" {
			lab = "?"
		}
		parts[i] = fmt.Sprintf("%s:%d", lab, l.Dim())
	}

	return "tensor(" + strings.Join(parts, ", ") + ")"
}
