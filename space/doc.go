// Package space models the symmetry-graded vector spaces that tensor legs
// live in: a list of sectors with positive multiplicities, a duality flag,
// and the total dimension they imply.
//
// A Space answers the questions decomposition code needs to ask of a leg:
//
//   - Dim        — total dimension, Σ multiplicity · sector dimension
//   - Dual       — the dual space (sectors mapped through DualSector,
//     duality flag flipped); an involution
//   - IsDualOf   — whether another space is exactly this one's dual, the
//     precondition primitive for matrix exponential/logarithm
//   - Fuse       — the product space of several legs, used when a tensor is
//     reshaped into matrix form by merging legs
//
// Fused grading: for single-outcome (abelian) fusion the fused sector list
// and multiplicities are computed exactly. For richer fusion styles the
// multiplicity bookkeeping needs the N-symbol facility, which is deferred;
// Fuse then still tracks the factor list and total dimension, and Grading
// reports ErrNoFusedGrading.
//
// Spaces are immutable after construction and safe for concurrent use.
//
// # Errors
//
//	ErrNilSymmetry     — constructor received a nil symmetry.
//	ErrGradingMismatch — sector and multiplicity lists differ in length.
//	ErrInvalidSector   — a sector is rejected by the symmetry.
//	ErrBadMultiplicity — a multiplicity is not positive.
//	ErrDuplicateSector — the same sector appears twice in the grading.
//	ErrBadDim          — NonSymmetric received a non-positive dimension.
//	ErrNoFactors       — Fuse received an empty space list.
//	ErrSymmetryMismatch — Fuse received legs of different symmetries.
//	ErrNoFusedGrading  — fused grading is unavailable for this fusion style.
package space
