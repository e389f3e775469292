package symmetry

// FermionParity is the fermionic parity grading. Sectors are 0 (even) and
// 1 (odd); fusion is XOR and braiding carries the fermionic sign. Parity is
// not a faithful group representation on the Hilbert space, which is why it
// lives outside the ZN family despite sharing its fusion table with ℤ₂.
type FermionParity struct {
	base
}

// NewFermionParity constructs the fermionic parity symmetry.
func NewFermionParity() *FermionParity {
	return &FermionParity{base: base{
		fusion:    FusionSingle,
		braiding:  BraidingFermionic,
		trivial:   Sector{0},
		groupName: "FermionParity",
	}}
}

// NumSlots returns 1.
func (s *FermionParity) NumSlots() int { return 1 }

// IsValidSector accepts [0] and [1].
func (s *FermionParity) IsValidSector(a Sector) bool {
	return len(a) == 1 && (a[0] == 0 || a[0] == 1)
}

// FusionOutcomes fuses by parity: equal sectors yield even [0], unequal
// sectors yield odd [1]. The outcome is always unique.
func (s *FermionParity) FusionOutcomes(a, b Sector) ([]Sector, error) {
	if !s.IsValidSector(a) || !s.IsValidSector(b) {
		return nil, ErrInvalidSector
	}

	return []Sector{{a[0] ^ b[0]}}, nil
}

// SectorDim returns 1 for both parities.
func (s *FermionParity) SectorDim(a Sector) int {
	if !s.IsValidSector(a) {
		return 0
	}

	return 1
}

// DualSector is the identity: both parities are self-dual.
func (s *FermionParity) DualSector(a Sector) Sector {
	if !s.IsValidSector(a) {
		return nil
	}

	return a.Copy()
}

// SectorStr renders the parity as "even" or "odd".
func (s *FermionParity) SectorStr(a Sector) string {
	if !s.IsValidSector(a) {
		return a.String()
	}
	if a[0] == 0 {
		return "even"
	}

	return "odd"
}
