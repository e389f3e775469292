package symmetry

import "strconv"

// SU2Symmetry is the group SU(2). Sectors are non-negative integers
// jj = 0, 1, 2, ... labeling the spin-jj/2 irrep, so that plain ints can
// represent half-integer spins (a spin-1/2 degree of freedom is jj = 1).
//
// Fusion follows the triangle rule: jj1 ⊗ jj2 decomposes into all
// |jj1-jj2| .. jj1+jj2 in steps of 2, each exactly once
// (FusionMultipleUnique). Every SU(2) sector is self-dual.
type SU2Symmetry struct {
	base
}

// NewSU2 constructs the SU(2) symmetry. The descriptive name may be empty.
func NewSU2(descriptiveName string) *SU2Symmetry {
	return &SU2Symmetry{base: base{
		fusion:    FusionMultipleUnique,
		braiding:  BraidingBosonic,
		trivial:   Sector{0},
		groupName: "SU(2)",
		descName:  descriptiveName,
	}}
}

// NumSlots returns 1.
func (s *SU2Symmetry) NumSlots() int { return 1 }

// IsValidSector accepts one-slot sectors with jj ≥ 0.
func (s *SU2Symmetry) IsValidSector(a Sector) bool {
	return len(a) == 1 && a[0] >= 0
}

// FusionOutcomes returns the Clebsch-Gordan range |a-b| .. a+b step 2.
func (s *SU2Symmetry) FusionOutcomes(a, b Sector) ([]Sector, error) {
	if !s.IsValidSector(a) || !s.IsValidSector(b) {
		return nil, ErrInvalidSector
	}
	lo := a[0] - b[0]
	if lo < 0 {
		lo = -lo
	}
	hi := a[0] + b[0]
	out := make([]Sector, 0, (hi-lo)/2+1)
	for jj := lo; jj <= hi; jj += 2 {
		out = append(out, Sector{jj})
	}

	return out, nil
}

// SectorDim returns jj+1, i.e. 2J+1 for spin J = jj/2.
func (s *SU2Symmetry) SectorDim(a Sector) int {
	if !s.IsValidSector(a) {
		return 0
	}

	return a[0] + 1
}

// DualSector is the identity: SU(2) sectors are self-dual.
func (s *SU2Symmetry) DualSector(a Sector) Sector {
	if !s.IsValidSector(a) {
		return nil
	}

	return a.Copy()
}

// SectorStr renders the spin, e.g. "J=1" for jj=2 and "J=3/2" for jj=3.
func (s *SU2Symmetry) SectorStr(a Sector) string {
	if !s.IsValidSector(a) {
		return a.String()
	}
	if a[0]%2 == 0 {
		return "J=" + strconv.Itoa(a[0]/2)
	}

	return "J=" + strconv.Itoa(a[0]) + "/2"
}
