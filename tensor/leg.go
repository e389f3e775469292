package tensor

import "fmt"

// Leg selects one leg of a tensor, either by position or by label. The
// selector is resolved into a plain index exactly once, at the entry of the
// operation that receives it; everything downstream works on indices.
type Leg struct {
	index   int
	label   string
	byLabel bool
}

// At selects the leg at position i.
func At(i int) Leg { return Leg{index: i} }

// Labeled selects the leg carrying the given label.
func Labeled(label string) Leg { return Leg{label: label, byLabel: true} }

// String renders the selector for diagnostics.
func (l Leg) String() string {
	if l.byLabel {
		return fmt.Sprintf("%q", l.label)
	}

	return fmt.Sprintf("#%d", l.index)
}

// LegIndex resolves a selector to a plain leg position.
func (t *Tensor) LegIndex(l Leg) (int, error) {
	if l.byLabel {
		for i, lab := range t.labels {
			if lab != "" && lab == l.label {
				return i, nil
			}
		}

		return 0, fmt.Errorf("label %q: %w", l.label, ErrUnknownLabel)
	}
	if l.index < 0 || l.index >= len(t.legs) {
		return 0, fmt.Errorf("index %d of %d legs: %w", l.index, len(t.legs), ErrLegIndex)
	}

	return l.index, nil
}

// LegIndexes resolves a selector list to plain leg positions.
func (t *Tensor) LegIndexes(ls []Leg) ([]int, error) {
	out := make([]int, len(ls))
	for i, l := range ls {
		idx, err := t.LegIndex(l)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}

	return out, nil
}
