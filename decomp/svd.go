package decomp

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tenalg/tenalg/backend"
	"github.com/tenalg/tenalg/space"
	"github.com/tenalg/tenalg/tensor"
)

// SVDOptions configures one SVD call. The zero value is usable; construct
// with DefaultSVDOptions to get a no-op logger explicitly.
type SVDOptions struct {
	// ULegs selects the legs that form the rows of the matrix view (the
	// legs U keeps). Nil infers it from VhLegs, or, when both are nil,
	// requires a two-leg tensor.
	ULegs []tensor.Leg

	// VhLegs selects the legs that form the columns (the legs Vh keeps).
	VhLegs []tensor.Leg

	// NewLabels names the legs the decomposition introduces. Zero labels
	// leave them unlabeled. Two labels [a, b]: a goes on U's new leg and
	// the second S leg, b on Vh's new leg and the first S leg, so that
	// equal labels meet when contracting U·S·Vh. Four labels name the U,
	// first-S, second-S and Vh legs in that order. Any other count fails
	// with ErrLabelArity.
	NewLabels []string

	// NewVhLegDual makes Vh's new leg the dual space of the bond rather
	// than the bond itself; the U, S legs follow so the triple stays
	// contractible.
	NewVhLegDual bool

	// Algorithm picks the backend SVD variant; SVDDefault lets the backend
	// choose. Unadvertised algorithms fail before dispatch.
	Algorithm backend.SVDAlgorithm

	// Logger receives debug-level progress. Nil is treated as no-op.
	Logger *zap.Logger
}

// DefaultSVDOptions returns options with the backend-default algorithm and
// a no-op logger.
func DefaultSVDOptions() SVDOptions {
	return SVDOptions{Logger: zap.NewNop()}
}

// svdLabels expands the 0/2/4 label convention into one label per new leg:
// U's bond leg, S's first and second legs, Vh's bond leg.
func svdLabels(labels []string) (lU, lS1, lS2, lVh string, err error) {
	switch len(labels) {
	case 0:
		return "", "", "", "", nil
	case 2:
		return labels[0], labels[1], labels[0], labels[1], nil
	case 4:
		return labels[0], labels[1], labels[2], labels[3], nil
	default:
		return "", "", "", "", fmt.Errorf("%d labels: %w", len(labels), ErrLabelArity)
	}
}

// SVD factors t into U · S · Vh along a leg bipartition. Multi-leg groups
// are merged into one combined leg for the numeric factorization and split
// back afterwards, so U and Vh come out with t's original legs plus one new
// bond leg each; S is diagonal over the bond. Contracting U, S and Vh along
// the bond legs reconstructs t up to numerical tolerance.
func SVD(t *tensor.Tensor, opts SVDOptions) (*tensor.Tensor, *tensor.DiagonalTensor, *tensor.Tensor, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	lU, lS1, lS2, lVh, err := svdLabels(opts.NewLabels)
	if err != nil {
		return nil, nil, nil, err
	}
	idx1, idx2, err := LegBipartition(t, opts.ULegs, opts.VhLegs)
	if err != nil {
		return nil, nil, nil, err
	}
	bk := t.Backend()
	if err = backend.ValidateSVDAlgorithm(bk, opts.Algorithm); err != nil {
		return nil, nil, nil, err
	}
	log.Debug("svd",
		zap.Ints("row_legs", idx1),
		zap.Ints("col_legs", idx2),
		zap.String("algorithm", string(opts.Algorithm)),
		zap.String("backend", bk.Name()))

	// Reorder to rows-then-columns, then merge each multi-leg group so the
	// data is a true matrix. The input labels of each group survive the
	// merge and come back on the split legs.
	rowLabels := make([]string, len(idx1))
	for i, ix := range idx1 {
		rowLabels[i] = t.Label(ix)
	}
	colLabels := make([]string, len(idx2))
	for i, ix := range idx2 {
		colLabels[i] = t.Label(ix)
	}
	work, err := t.Transpose(append(append([]int{}, idx1...), idx2...))
	if err != nil {
		return nil, nil, nil, err
	}
	rowFused, colFused := len(idx1) > 1, len(idx2) > 1
	if rowFused {
		if work, err = work.CombineLegs(headLegs(0, len(idx1)), ""); err != nil {
			return nil, nil, nil, err
		}
	}
	if colFused {
		if work, err = work.CombineLegs(headLegs(1, len(idx2)), ""); err != nil {
			return nil, nil, nil, err
		}
	}

	ub, sb, vhb, err := bk.MatrixSVD(work.Data(), opts.Algorithm)
	if err != nil {
		return nil, nil, nil, err
	}
	sShape, err := bk.BlockShape(sb)
	if err != nil {
		return nil, nil, nil, err
	}
	bond, err := space.NonSymmetric(sShape[0])
	if err != nil {
		return nil, nil, nil, err
	}
	uBond, vhBond := bond.Dual(), bond
	if opts.NewVhLegDual {
		uBond, vhBond = bond, bond.Dual()
	}

	u, err := tensor.New(bk, ub, []*space.Space{work.Leg(0), uBond}, []string{work.Label(0), lU})
	if err != nil {
		return nil, nil, nil, err
	}
	if rowFused {
		if u, err = u.SplitLeg(tensor.At(0)); err != nil {
			return nil, nil, nil, err
		}
		if u, err = u.WithLabels(append(append([]string{}, rowLabels...), lU)); err != nil {
			return nil, nil, nil, err
		}
	}
	s, err := tensor.NewDiagonal(bk, sb, uBond.Dual(), []string{lS1, lS2})
	if err != nil {
		return nil, nil, nil, err
	}
	vh, err := tensor.New(bk, vhb, []*space.Space{vhBond, work.Leg(1)}, []string{lVh, work.Label(1)})
	if err != nil {
		return nil, nil, nil, err
	}
	if colFused {
		if vh, err = vh.SplitLeg(tensor.At(1)); err != nil {
			return nil, nil, nil, err
		}
		if vh, err = vh.WithLabels(append([]string{lVh}, colLabels...)); err != nil {
			return nil, nil, nil, err
		}
	}
	log.Debug("svd done", zap.Int("bond_dim", bond.Dim()))

	return u, s, vh, nil
}

// headLegs builds position selectors start..start+count-1.
func headLegs(start, count int) []tensor.Leg {
	out := make([]tensor.Leg, count)
	for i := range out {
		out[i] = tensor.At(start + i)
	}

	return out
}
