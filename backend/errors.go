package backend

import "errors"

// Sentinel errors shared by all backend implementations. Backends wrap
// them with fmt.Errorf("...: %w", Err) when context helps; callers match
// with errors.Is.
var (
	// ErrUnsupported signals that a backend declines to provide a requested
	// primitive. It is propagated unchanged to the caller; the core performs
	// no automatic fallback.
	ErrUnsupported = errors.New("backend: operation not supported")

	// ErrUnknownAlgorithm signals a requested SVD algorithm outside the
	// backend's advertised set. Raised before any dispatch.
	ErrUnknownAlgorithm = errors.New("backend: unknown SVD algorithm")

	// ErrBadBlock signals block data that does not belong to this backend.
	ErrBadBlock = errors.New("backend: block data of foreign backend")

	// ErrBadShape signals a shape or size mismatch in a structural op.
	ErrBadShape = errors.New("backend: shape mismatch")

	// ErrBadAxis signals an out-of-range or repeated axis index.
	ErrBadAxis = errors.New("backend: bad axis")

	// ErrDtypeMismatch signals operands of incompatible element kinds.
	ErrDtypeMismatch = errors.New("backend: dtype mismatch")

	// ErrNotMatrix signals a matrix primitive applied to a non-2D block.
	ErrNotMatrix = errors.New("backend: block is not a matrix")
)
