package decomp

import (
	"math"

	"go.uber.org/zap"

	"github.com/tenalg/tenalg/space"
	"github.com/tenalg/tenalg/tensor"
)

// TruncationOptions configures how aggressively a singular-value spectrum
// is cut. Zero values disable their constraint; the zero options value
// truncates nothing.
type TruncationOptions struct {
	// MaxBondDim caps the number of retained singular values (0: no cap).
	MaxBondDim int

	// SVCutoff discards trailing singular values strictly below this
	// threshold (0: keep all).
	SVCutoff float64

	// MaxTruncationError allows discarding further trailing values as long
	// as the relative discarded weight stays within this budget (0: no
	// extra discarding).
	MaxTruncationError float64

	// Logger receives debug-level progress. Nil is treated as no-op.
	Logger *zap.Logger
}

// DefaultTruncationOptions returns options that truncate nothing and log
// nowhere.
func DefaultTruncationOptions() TruncationOptions {
	return TruncationOptions{Logger: zap.NewNop()}
}

// TruncateSVD cuts an (U, S, Vh) triple down to a smaller bond dimension
// under the given policy and returns the rewrapped triple together with the
// truncation error: the relative discarded weight
// √(Σ discarded s²) / √(Σ all s²). At least one singular value is always
// retained. The error is non-decreasing as the policy gets more
// aggressive.
func TruncateSVD(u *tensor.Tensor, s *tensor.DiagonalTensor, vh *tensor.Tensor, opts TruncationOptions) (*tensor.Tensor, *tensor.DiagonalTensor, *tensor.Tensor, float64, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if u == nil || s == nil || vh == nil {
		return nil, nil, nil, 0, ErrNilTensor
	}
	bk := u.Backend()
	if s.Backend() != bk || vh.Backend() != bk {
		return nil, nil, nil, 0, ErrBackendMismatch
	}

	vals, err := s.Values()
	if err != nil {
		return nil, nil, nil, 0, err
	}
	weights := make([]float64, len(vals))
	total := 0.0
	for i, v := range vals {
		weights[i] = real(v) * real(v)
		total += weights[i]
	}

	// Walk the constraints from the weakest cut to the strongest; singular
	// values are sorted descending, so every cut drops a suffix.
	keep := len(vals)
	if opts.MaxBondDim > 0 && opts.MaxBondDim < keep {
		keep = opts.MaxBondDim
	}
	for keep > 1 && real(vals[keep-1]) < opts.SVCutoff {
		keep--
	}
	if opts.MaxTruncationError > 0 {
		for keep > 1 && discardedWeight(weights, total, keep-1) <= opts.MaxTruncationError {
			keep--
		}
	}
	truncErr := discardedWeight(weights, total, keep)
	if keep == len(vals) {
		log.Debug("truncate: nothing discarded", zap.Int("bond_dim", keep))
		// Even an untruncated result is a fresh triple; data handles are
		// never shared with the input.
		uOut, sOut, vhOut, err := copyTriple(u, s, vh)
		if err != nil {
			return nil, nil, nil, 0, err
		}

		return uOut, sOut, vhOut, 0, nil
	}
	log.Debug("truncate",
		zap.Int("kept", keep),
		zap.Int("discarded", len(vals)-keep),
		zap.Float64("error", truncErr))

	bond, err := space.NonSymmetric(keep)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	uAxis := u.NumLegs() - 1
	ub, err := bk.BlockNarrow(u.Data(), uAxis, 0, keep)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	uLegs := u.Legs()
	uLegs[uAxis] = matchDual(bond, u.Leg(uAxis))
	uOut, err := tensor.New(bk, ub, uLegs, u.Labels())
	if err != nil {
		return nil, nil, nil, 0, err
	}

	sb, err := bk.BlockNarrow(s.Data(), 0, 0, keep)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	sOut, err := tensor.NewDiagonal(bk, sb, matchDual(bond, s.Leg(0)), s.Labels())
	if err != nil {
		return nil, nil, nil, 0, err
	}

	vb, err := bk.BlockNarrow(vh.Data(), 0, 0, keep)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	vhLegs := vh.Legs()
	vhLegs[0] = matchDual(bond, vh.Leg(0))
	vhOut, err := tensor.New(bk, vb, vhLegs, vh.Labels())
	if err != nil {
		return nil, nil, nil, 0, err
	}

	return uOut, sOut, vhOut, truncErr, nil
}

// copyTriple rewraps an (U, S, Vh) triple over fresh data blocks.
func copyTriple(u *tensor.Tensor, s *tensor.DiagonalTensor, vh *tensor.Tensor) (*tensor.Tensor, *tensor.DiagonalTensor, *tensor.Tensor, error) {
	bk := u.Backend()
	ub, err := bk.BlockCopy(u.Data())
	if err != nil {
		return nil, nil, nil, err
	}
	uOut, err := tensor.New(bk, ub, u.Legs(), u.Labels())
	if err != nil {
		return nil, nil, nil, err
	}
	sb, err := bk.BlockCopy(s.Data())
	if err != nil {
		return nil, nil, nil, err
	}
	sOut, err := tensor.NewDiagonal(bk, sb, s.Leg(0), s.Labels())
	if err != nil {
		return nil, nil, nil, err
	}
	vb, err := bk.BlockCopy(vh.Data())
	if err != nil {
		return nil, nil, nil, err
	}
	vhOut, err := tensor.New(bk, vb, vh.Legs(), vh.Labels())
	if err != nil {
		return nil, nil, nil, err
	}

	return uOut, sOut, vhOut, nil
}

// discardedWeight returns √(Σ_{i≥keep} w_i / Σ w_i), the relative norm of
// the dropped tail.
func discardedWeight(weights []float64, total float64, keep int) float64 {
	if total == 0 {
		return 0
	}
	dropped := 0.0
	for _, w := range weights[keep:] {
		dropped += w
	}

	return math.Sqrt(dropped / total)
}

// matchDual transfers the duality flag of old onto the fresh bond space.
func matchDual(bond *space.Space, old *space.Space) *space.Space {
	if old.IsDual() {
		return bond.Dual()
	}

	return bond
}
