// Package tenalg is a symmetry-aware tensor algebra core for tensor-network
// code: tensors whose legs are graded by representations of a symmetry group,
// and the linear-algebra primitives (SVD, truncation, matrix exp/log) that
// respect that grading.
//
// 🚀 What is tenalg?
//
//	A small, composable library that brings together:
//		• Sector algebra: fusion rules, dual sectors, product symmetries
//		  (ℤₙ, U(1), SU(2), fermionic parity, and arbitrary products)
//		• Graded vector spaces: multiplicities, duality, fused product spaces
//		• A backend contract: opaque block data manipulated only through a
//		  fixed numeric interface, so CPU/accelerator backends are pluggable
//		• Decomposition orchestration: leg bipartition, SVD with labeled bond
//		  legs, truncation policies, matrix exponential and logarithm
//
// ✨ Why choose tenalg?
//
//   - Explicit over implicit – no global backend binding, no hidden state;
//     every call names its backend and its options
//   - Fail-fast – every precondition (leg partitions, label arity, duality)
//     is validated before any numeric work, with sentinel errors throughout
//   - Pure values – symmetries and sectors are immutable and safe to share
//     across goroutines without locking
//
// Everything is organized under six subpackages:
//
//	symmetry/      — fusion/braiding classification and the symmetry variants
//	space/         — symmetry-graded vector spaces (tensor legs)
//	backend/       — the numeric backend contract and SVD algorithm registry
//	backend/dense/ — reference dense CPU backend built on gonum
//	tensor/        — Tensor and DiagonalTensor value types, leg selectors
//	decomp/        — SVD, truncated SVD, exp, log, leg bipartition
//
// Contraction scheduling, storage-layout selection, autodiff, and the
// physical models that drive tensor networks are out of scope by design;
// this core only defines the sector algebra and orchestrates decompositions
// against the backend contract.
//
//	go get github.com/tenalg/tenalg
package tenalg
