package symmetry

import "errors"

// Sentinel errors for sector-algebra operations. All are matched via
// errors.Is; callers needing context wrap them with fmt.Errorf("...: %w", err).
var (
	// ErrInvalidSector indicates FusionOutcomes was given a sector that the
	// symmetry's IsValidSector predicate rejects.
	ErrInvalidSector = errors.New("symmetry: invalid sector")

	// ErrBadModulus indicates a ZN constructor received a modulus below 2.
	ErrBadModulus = errors.New("symmetry: ZN modulus must be at least 2")

	// ErrNoFactors indicates Product was called without factors.
	ErrNoFactors = errors.New("symmetry: product requires at least one factor")

	// ErrNilFactor indicates Product was called with a nil factor.
	ErrNilFactor = errors.New("symmetry: product factor is nil")
)
