package space

import "errors"

// Sentinel errors for graded-space construction and fusion.
var (
	// ErrNilSymmetry indicates a constructor received a nil symmetry.
	ErrNilSymmetry = errors.New("space: symmetry is nil")

	// ErrGradingMismatch indicates sector and multiplicity lists of
	// different lengths.
	ErrGradingMismatch = errors.New("space: sector and multiplicity counts differ")

	// ErrEmptyGrading indicates a constructor received no sectors at all.
	ErrEmptyGrading = errors.New("space: grading must contain at least one sector")

	// ErrNilSpace indicates a nil *Space argument.
	ErrNilSpace = errors.New("space: nil space")

	// ErrInvalidSector indicates a grading sector the symmetry rejects.
	ErrInvalidSector = errors.New("space: invalid sector for symmetry")

	// ErrBadMultiplicity indicates a non-positive sector multiplicity.
	ErrBadMultiplicity = errors.New("space: multiplicity must be positive")

	// ErrDuplicateSector indicates a sector listed twice in one grading.
	ErrDuplicateSector = errors.New("space: duplicate sector in grading")

	// ErrBadDim indicates a non-positive dimension for a trivially graded space.
	ErrBadDim = errors.New("space: dimension must be positive")

	// ErrNoFactors indicates Fuse was called without factor spaces.
	ErrNoFactors = errors.New("space: fuse requires at least one factor")

	// ErrSymmetryMismatch indicates Fuse received legs graded by different
	// symmetries.
	ErrSymmetryMismatch = errors.New("space: fused legs must share one symmetry")

	// ErrNoFusedGrading indicates the fused sector list is unavailable
	// because the symmetry's fusion style needs deferred N-symbol data.
	ErrNoFusedGrading = errors.New("space: fused grading unavailable for this fusion style")
)
