package symmetry

// Symmetry describes one symmetry structure imposing a block structure on
// tensors: which sectors are valid, how sectors fuse, their dimensions and
// duals, and the fusion/braiding classification that lets callers pick
// cheap code paths (a FusionSingle symmetry needs no multiplicity
// bookkeeping at all).
//
// Implementations are immutable value types, created once and shared by
// reference across all tensors that use them. All methods are safe for
// unrestricted concurrent use.
type Symmetry interface {
	// FusionStyle classifies how many outcomes a pairwise fusion can produce.
	FusionStyle() FusionStyle

	// BraidingStyle classifies how exchanging two graded legs transforms a tensor.
	BraidingStyle() BraidingStyle

	// TrivialSector returns the identity sector (a fresh copy per call).
	TrivialSector() Sector

	// GroupName is the short group name, e.g. "U(1)" or "ℤ₂ ⨉ SU(2)".
	GroupName() string

	// DescriptiveName is an optional human-readable name ("" when absent),
	// e.g. "spin" or "particle number".
	DescriptiveName() string

	// NumSlots is the sector tuple length this symmetry expects: 1 for the
	// simple variants, the factor count for products.
	NumSlots() int

	// IsValidSector reports whether a is a valid sector of this symmetry.
	// It is total: malformed input of any shape yields false, never a panic.
	IsValidSector(a Sector) bool

	// FusionOutcomes returns the set of sectors reachable by fusing a and b,
	// each distinct sector exactly once regardless of its multiplicity.
	// Returns ErrInvalidSector if either input is not a valid sector.
	FusionOutcomes(a, b Sector) ([]Sector, error)

	// SectorDim is the dimension of the representation a labels.
	// Returns 0 for invalid sectors.
	SectorDim(a Sector) int

	// DualSector returns the unique sector ā such that fusing a with ā
	// yields the trivial sector with multiplicity one. It is an involution.
	// Returns nil for invalid sectors.
	DualSector(a Sector) Sector

	// SectorStr is a short display form of a, e.g. "J=1/2" or "even".
	SectorStr(a Sector) string

	// String renders the symmetry as GroupName, with the descriptive name
	// appended in quotes when present.
	String() string
}

// base carries the attributes shared by every variant. It intentionally
// provides no behavior beyond accessors; behavioral variation lives in the
// concrete types (one level, no inheritance chain).
type base struct {
	fusion    FusionStyle
	braiding  BraidingStyle
	trivial   Sector
	groupName string
	descName  string
}

func (b *base) FusionStyle() FusionStyle     { return b.fusion }
func (b *base) BraidingStyle() BraidingStyle { return b.braiding }
func (b *base) TrivialSector() Sector        { return b.trivial.Copy() }
func (b *base) GroupName() string            { return b.groupName }
func (b *base) DescriptiveName() string      { return b.descName }

func (b *base) String() string {
	if b.descName != "" {
		return b.groupName + `("` + b.descName + `")`
	}

	return b.groupName
}

// Package-level singletons for the common symmetries. They are immutable
// and intended to be shared; construct fresh values only when a descriptive
// name is wanted.
var (
	// NoSym is the trivial symmetry.
	NoSym = NewNoSymmetry()

	// Z2 through Z9 are the small modular symmetries.
	Z2 = mustZN(2)
	Z3 = mustZN(3)
	Z4 = mustZN(4)
	Z5 = mustZN(5)
	Z6 = mustZN(6)
	Z7 = mustZN(7)
	Z8 = mustZN(8)
	Z9 = mustZN(9)

	// U1 is the U(1) symmetry without a descriptive name.
	U1 = NewU1("")

	// SU2 is the SU(2) symmetry without a descriptive name.
	SU2 = NewSU2("")

	// Fermion is the fermionic parity symmetry.
	Fermion = NewFermionParity()
)

func mustZN(n int) *ZNSymmetry {
	s, err := NewZN(n, "")
	if err != nil {
		panic(err) // unreachable for the fixed small moduli above
	}

	return s
}
