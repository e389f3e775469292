// Package symmetry implements the sector algebra that grades tensor legs:
// symmetry groups (and products of groups), their irreducible-representation
// labels (sectors), fusion rules, dual sectors, and the fusion/braiding
// classification that downstream code uses to pick cheap code paths.
//
// The package is purely functional over immutable values: no I/O, no numeric
// array dependency, no mutation after construction. Symmetry values are
// safe to share across goroutines without locking.
//
// The closed set of variants:
//
//   - NoSymmetry     — trivial group, single sentinel sector
//   - ZNSymmetry     — ℤₙ, sectors 0..N-1, fusion (a+b) mod N
//   - U1Symmetry     — U(1), sectors are all integers, fusion a+b
//   - SU2Symmetry    — SU(2), sectors jj = 0,1,2,... labeling spin jj/2,
//     fusion by the triangle rule |a-b|..a+b step 2
//   - FermionParity  — {even, odd} with XOR fusion and fermionic braiding
//   - ProductSymmetry — ordered product of the above; sectors are tuples,
//     fusion is the per-factor Cartesian product
//
// Each variant answers the same capability interface:
//
//	type Symmetry interface {
//	    FusionStyle() FusionStyle
//	    BraidingStyle() BraidingStyle
//	    TrivialSector() Sector
//	    NumSlots() int
//	    IsValidSector(a Sector) bool
//	    FusionOutcomes(a, b Sector) ([]Sector, error)
//	    SectorDim(a Sector) int
//	    DualSector(a Sector) Sector
//	    SectorStr(a Sector) string
//	    ...
//	}
//
// Invariants (covered by tests):
//
//   - DualSector is an involution: DualSector(DualSector(a)) == a.
//   - Fusing a with DualSector(a) always includes the trivial sector.
//   - Product flattening is associative: combining a ProductSymmetry with
//     another Symmetry yields a flat product, never a nested one.
//   - Every sector produced by a symmetry's own operations satisfies its
//     IsValidSector predicate.
//
// Multiplicities of fusion outcomes (the N-symbol) are intentionally out of
// scope of this interface; FusionOutcomes reports each distinct outcome
// exactly once.
//
// # Errors
//
//	ErrInvalidSector — FusionOutcomes received a sector the symmetry rejects.
//	ErrBadModulus    — ZN constructor called with N < 2.
//	ErrNoFactors     — Product called with an empty factor list.
//	ErrNilFactor     — Product called with a nil factor.
package symmetry
