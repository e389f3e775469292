// Package dense is the reference CPU implementation of the backend
// contract: blocks are plain row-major arrays, structural ops copy, and
// the factorization primitives delegate to gonum.
//
// Storage: every block holds a flat []complex128 payload plus a logical
// Dtype tag. Real dtypes simply keep zero imaginary parts; the tag decides
// which factorizations are available and how conversions behave. This keeps
// the arithmetic uniform while staying honest about element kinds.
//
// Factorization support is intentionally partial, as the contract allows:
//
//   - MatrixSVD — real blocks via gonum's thin SVD; complex blocks are
//     declined with backend.ErrUnsupported. The advertised algorithm set is
//     {SVDGolubKahan}; anything else fails ValidateSVDAlgorithm up front.
//   - MatrixExp — real blocks via gonum's scaling-and-squaring
//     (*mat.Dense).Exp; complex blocks are declined.
//   - MatrixLog — real symmetric positive-definite blocks via mat.EigenSym
//     (V·log Λ·Vᵀ); everything else is declined. This covers log(exp(t))
//     for symmetric t, the case decomposition code needs.
//
// Randomness is deterministic and backend-local: New seeds a private
// generator (override with WithSeed); there is no global state. Random
// construction is not safe for concurrent use on one Backend value, in
// line with the ownership rules of the contract.
package dense
