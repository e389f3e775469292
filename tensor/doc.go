// Package tensor defines the tensor entity that decomposition code
// produces and consumes: a list of symmetry-graded leg spaces, an optional
// string label per leg, and an opaque data block owned by exactly one
// tensor and manipulated only through its backend.
//
// Leg selection is explicit: operations take Leg selectors built with At
// (by position) or Labeled (by label), resolved into plain indices once at
// the entry of each operation. Labels are free-form strings; non-empty
// labels must be unique on one tensor.
//
// The structural pair CombineLegs/SplitLeg mirrors the reshape a
// decomposition performs to view a tensor as a matrix: CombineLegs merges
// legs into one fused leg whose space records its factors, and SplitLeg
// restores them. Tdot contracts legs pairwise and requires each pair to be
// mutually dual spaces.
//
// DiagonalTensor stores a two-leg diagonal tensor as just its diagonal;
// singular-value spectra come back from decompositions in this form and
// expand to a full matrix tensor through ToTensor.
//
// Every operation allocates a fresh data block; blocks are never aliased
// between tensors, and operations on one tensor value must not be issued
// concurrently.
package tensor
