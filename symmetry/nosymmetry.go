package symmetry

// NoSymmetry is the trivial symmetry group: it imposes no block structure
// and admits a single sentinel sector [0].
type NoSymmetry struct {
	base
}

// NewNoSymmetry returns the trivial symmetry.
func NewNoSymmetry() *NoSymmetry {
	return &NoSymmetry{base: base{
		fusion:    FusionSingle,
		braiding:  BraidingBosonic,
		trivial:   Sector{0},
		groupName: "NoSymmetry",
	}}
}

// NumSlots returns 1.
func (s *NoSymmetry) NumSlots() int { return 1 }

// IsValidSector accepts only the sentinel sector [0].
func (s *NoSymmetry) IsValidSector(a Sector) bool {
	return len(a) == 1 && a[0] == 0
}

// FusionOutcomes fuses trivially: the only outcome is the sentinel sector.
func (s *NoSymmetry) FusionOutcomes(a, b Sector) ([]Sector, error) {
	if !s.IsValidSector(a) || !s.IsValidSector(b) {
		return nil, ErrInvalidSector
	}

	return []Sector{{0}}, nil
}

// SectorDim returns 1 for the sentinel sector.
func (s *NoSymmetry) SectorDim(a Sector) int {
	if !s.IsValidSector(a) {
		return 0
	}

	return 1
}

// DualSector is the identity.
func (s *NoSymmetry) DualSector(a Sector) Sector {
	if !s.IsValidSector(a) {
		return nil
	}

	return a.Copy()
}

// SectorStr renders the sentinel sector as ".".
func (s *NoSymmetry) SectorStr(a Sector) string {
	if !s.IsValidSector(a) {
		return a.String()
	}

	return "."
}
