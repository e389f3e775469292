package tensor

import (
	"fmt"

	"github.com/tenalg/tenalg/backend"
	"github.com/tenalg/tenalg/space"
)

// DiagonalTensor is a two-leg tensor that is diagonal in its paired basis,
// stored as just the diagonal. Its first leg is the given bond space and
// its second leg is that space's dual. Singular-value spectra from
// decompositions live in this form.
type DiagonalTensor struct {
	bk     backend.BlockBackend
	diag   backend.Block
	leg    *space.Space
	labels []string
}

// NewDiagonal wraps a 1D block of diagonal entries with its bond leg.
// labels may be nil or exactly two entries (first leg, second leg).
func NewDiagonal(bk backend.BlockBackend, diag backend.Block, leg *space.Space, labels []string) (*DiagonalTensor, error) {
	if bk == nil {
		return nil, ErrNilBackend
	}
	if diag == nil {
		return nil, ErrNilData
	}
	if leg == nil {
		return nil, ErrNilLeg
	}
	shape, err := bk.BlockShape(diag)
	if err != nil {
		return nil, err
	}
	if len(shape) != 1 || shape[0] != leg.Dim() {
		return nil, fmt.Errorf("diagonal shape %v for leg dim %d: %w", shape, leg.Dim(), ErrShapeMismatch)
	}
	labels, err = normalizeLabels(labels, 2)
	if err != nil {
		return nil, err
	}

	return &DiagonalTensor{bk: bk, diag: diag, leg: leg, labels: labels}, nil
}

// Backend returns the backend that owns the diagonal block.
func (d *DiagonalTensor) Backend() backend.BlockBackend { return d.bk }

// Data returns the 1D diagonal block.
func (d *DiagonalTensor) Data() backend.Block { return d.diag }

// NumLegs returns 2; a diagonal tensor is always a matrix.
func (d *DiagonalTensor) NumLegs() int { return 2 }

// Leg returns leg 0 (the bond space) or leg 1 (its dual).
func (d *DiagonalTensor) Leg(i int) *space.Space {
	if i == 0 {
		return d.leg
	}

	return d.leg.Dual()
}

// Legs returns the two legs, bond space first.
func (d *DiagonalTensor) Legs() []*space.Space {
	return []*space.Space{d.leg, d.leg.Dual()}
}

// Label returns the label of leg i.
func (d *DiagonalTensor) Label(i int) string { return d.labels[i] }

// Labels returns a copy of the two labels.
func (d *DiagonalTensor) Labels() []string {
	return append([]string(nil), d.labels...)
}

// Values returns the diagonal entries.
func (d *DiagonalTensor) Values() ([]complex128, error) {
	return d.bk.BlockValues(d.diag)
}

// ToTensor expands the diagonal into a full two-leg tensor.
func (d *DiagonalTensor) ToTensor() (*Tensor, error) {
	data, err := d.bk.DiagonalBlock(d.diag)
	if err != nil {
		return nil, err
	}

	return New(d.bk, data, d.Legs(), d.labels)
}
