package decomp

import "errors"

var (
	// ErrNilTensor is returned when an orchestration routine receives a nil
	// tensor.
	ErrNilTensor = errors.New("decomp: nil tensor")

	// ErrNeedTwoLegs is returned when both leg groups are omitted and the
	// tensor does not have exactly two legs.
	ErrNeedTwoLegs = errors.New("decomp: implicit bipartition needs a two-leg tensor")

	// ErrGroupsOverlap is returned when the two explicit leg groups share a
	// leg.
	ErrGroupsOverlap = errors.New("decomp: leg groups overlap")

	// ErrGroupsIncomplete is returned when the two explicit leg groups do
	// not cover every leg.
	ErrGroupsIncomplete = errors.New("decomp: leg groups do not cover all legs")

	// ErrLabelArity is returned when NewLabels has a length other than 0, 2
	// or 4.
	ErrLabelArity = errors.New("decomp: new labels must number 0, 2 or 4")

	// ErrLegCountMismatch is returned when the two endomorphism leg groups
	// differ in cardinality.
	ErrLegCountMismatch = errors.New("decomp: endomorphism leg groups differ in size")

	// ErrNotDual is returned when an endomorphism leg pair is not mutually
	// dual.
	ErrNotDual = errors.New("decomp: paired legs are not mutually dual")

	// ErrBackendMismatch is returned when a truncation receives tensors
	// owned by different backends.
	ErrBackendMismatch = errors.New("decomp: tensors belong to different backends")

	// ErrLogDomain is returned when a scalar logarithm receives zero.
	ErrLogDomain = errors.New("decomp: logarithm of zero")
)
