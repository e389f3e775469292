package symmetry

import "strconv"

// U1Symmetry is the group U(1). Sectors are arbitrary integer charges;
// fusion is plain addition and the dual of a charge is its negation.
type U1Symmetry struct {
	base
}

// NewU1 constructs the U(1) symmetry. The descriptive name may be empty.
func NewU1(descriptiveName string) *U1Symmetry {
	return &U1Symmetry{base: base{
		fusion:    FusionSingle,
		braiding:  BraidingBosonic,
		trivial:   Sector{0},
		groupName: "U(1)",
		descName:  descriptiveName,
	}}
}

// NumSlots returns 1.
func (s *U1Symmetry) NumSlots() int { return 1 }

// IsValidSector accepts any one-slot sector.
func (s *U1Symmetry) IsValidSector(a Sector) bool { return len(a) == 1 }

// FusionOutcomes returns the single outcome [a+b].
func (s *U1Symmetry) FusionOutcomes(a, b Sector) ([]Sector, error) {
	if !s.IsValidSector(a) || !s.IsValidSector(b) {
		return nil, ErrInvalidSector
	}

	return []Sector{{a[0] + b[0]}}, nil
}

// SectorDim returns 1: every U(1) irrep is one-dimensional.
func (s *U1Symmetry) SectorDim(a Sector) int {
	if !s.IsValidSector(a) {
		return 0
	}

	return 1
}

// DualSector returns [-a].
func (s *U1Symmetry) DualSector(a Sector) Sector {
	if !s.IsValidSector(a) {
		return nil
	}

	return Sector{-a[0]}
}

// SectorStr renders the charge as a plain integer.
func (s *U1Symmetry) SectorStr(a Sector) string {
	if !s.IsValidSector(a) {
		return a.String()
	}

	return strconv.Itoa(a[0])
}
