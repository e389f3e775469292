package tensor

import "errors"

var (
	// ErrNilBackend is returned when a tensor is constructed without a backend.
	ErrNilBackend = errors.New("tensor: nil backend")

	// ErrNilData is returned when a tensor is constructed without block data.
	ErrNilData = errors.New("tensor: nil block data")

	// ErrNilLeg is returned when a leg list contains a nil space.
	ErrNilLeg = errors.New("tensor: nil leg space")

	// ErrShapeMismatch is returned when the block shape disagrees with the
	// leg dimensions.
	ErrShapeMismatch = errors.New("tensor: block shape does not match legs")

	// ErrLabelCount is returned when a label list has the wrong length.
	ErrLabelCount = errors.New("tensor: wrong number of labels")

	// ErrDuplicateLabel is returned when two legs carry the same non-empty
	// label.
	ErrDuplicateLabel = errors.New("tensor: duplicate leg label")

	// ErrUnknownLabel is returned when a leg selector names a label no leg
	// carries.
	ErrUnknownLabel = errors.New("tensor: unknown leg label")

	// ErrLegIndex is returned when a leg selector's index is out of range.
	ErrLegIndex = errors.New("tensor: leg index out of range")

	// ErrBackendMismatch is returned when an operation mixes tensors owned
	// by different backends.
	ErrBackendMismatch = errors.New("tensor: tensors belong to different backends")

	// ErrNotContractible is returned when a contraction pairs legs that are
	// not mutually dual.
	ErrNotContractible = errors.New("tensor: paired legs are not mutually dual")

	// ErrNotFused is returned when SplitLeg targets a leg that was not
	// produced by CombineLegs.
	ErrNotFused = errors.New("tensor: leg is not a fused leg")
)
