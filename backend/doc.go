// Package backend declares the numeric contract that tensor code is written
// against: opaque block data plus the fixed set of primitives a concrete
// backend (CPU, accelerator, ...) must provide to manipulate it.
//
// Tensors never touch their numeric payload directly — a Block is owned by
// exactly one tensor at a time and is only manipulated through a
// BlockBackend. That keeps the algebra and orchestration layers independent
// of any array library and makes backends pluggable.
//
// The contract groups into:
//
//   - Introspection — shape, dtype, scalar extraction, raw values,
//     dtype conversion, copying
//   - Structural ops — transpose, reshape, combine a run of axes, split an
//     axis, partial trace, squeeze unit axes, narrow an axis
//   - Arithmetic — tensor contraction (tdot), conjugate, outer and inner
//     products, Frobenius norm, approximate equality
//   - Factorization — matrix SVD (with an enumerated algorithm choice),
//     matrix exponential and logarithm; backends may decline any of these
//     with ErrUnsupported
//   - Construction — zero blocks, identity pairs, diagonal embedding,
//     uniform/normal random blocks, blocks from raw values
//
// SVD algorithm selection is a closed enumeration: every backend advertises
// its supported set via SVDAlgorithms, and ValidateSVDAlgorithm rejects a
// request before any dispatch happens.
//
// Matricize/Dematrixify are the shared helpers that view a block as a
// matrix for a given axis bipartition and restore the original layout
// afterwards; decomposition orchestration builds on them.
//
// # Errors
//
//	ErrUnsupported      — the backend declines a primitive (e.g. matrix log).
//	ErrUnknownAlgorithm — requested SVD algorithm not advertised.
//	ErrBadBlock         — a Block of a foreign backend (wrong concrete type).
//	ErrBadShape         — shape/size mismatch in a structural op.
//	ErrBadAxis          — axis index out of range or repeated.
//	ErrDtypeMismatch    — operands of incompatible element kinds.
//	ErrNotMatrix        — a matrix primitive received a non-2D block.
package backend
