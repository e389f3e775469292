package space

import (
	"fmt"
	"sort"

	"github.com/tenalg/tenalg/symmetry"
)

// Space is a vector space graded by the sectors of one symmetry. Sectors
// are kept sorted (by symmetry.Sector.Compare) and unique; each carries a
// positive multiplicity. The total dimension is Σ multiplicity · sector
// dimension.
//
// A Space is immutable after construction; accessor methods return copies
// of internal slices.
type Space struct {
	sym     symmetry.Symmetry
	sectors []symmetry.Sector
	mults   []int
	isDual  bool
	isReal  bool
	dim     int

	// factors is non-nil only for fused spaces produced by Fuse; it records
	// the original legs so a merged leg can be split back.
	factors []*Space
}

// Option configures a Space at construction time.
type Option func(*Space)

// AsDual marks the space as a dual (bra) space.
func AsDual() Option {
	return func(v *Space) { v.isDual = true }
}

// AsReal marks the space as real (no complex structure).
func AsReal() Option {
	return func(v *Space) { v.isReal = true }
}

// New constructs a graded space over sym. Sectors are copied and sorted;
// multiplicities follow their sectors. Every sector must be valid for sym,
// appear once, and carry a positive multiplicity.
// Complexity: O(k log k) for k sectors.
func New(sym symmetry.Symmetry, sectors []symmetry.Sector, mults []int, opts ...Option) (*Space, error) {
	if sym == nil {
		return nil, ErrNilSymmetry
	}
	if len(sectors) == 0 {
		return nil, ErrEmptyGrading
	}
	if len(sectors) != len(mults) {
		return nil, ErrGradingMismatch
	}

	type graded struct {
		sector symmetry.Sector
		mult   int
	}
	entries := make([]graded, len(sectors))
	for i, s := range sectors {
		if !sym.IsValidSector(s) {
			return nil, fmt.Errorf("sector %s: %w", s, ErrInvalidSector)
		}
		if mults[i] <= 0 {
			return nil, fmt.Errorf("sector %s: %w", s, ErrBadMultiplicity)
		}
		entries[i] = graded{sector: s.Copy(), mult: mults[i]}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].sector.Compare(entries[j].sector) < 0
	})

	v := &Space{sym: sym}
	for i, e := range entries {
		if i > 0 && e.sector.Equal(entries[i-1].sector) {
			return nil, fmt.Errorf("sector %s: %w", e.sector, ErrDuplicateSector)
		}
		v.sectors = append(v.sectors, e.sector)
		v.mults = append(v.mults, e.mult)
		v.dim += e.mult * sym.SectorDim(e.sector)
	}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// NonSymmetric constructs a trivially graded space of the given dimension:
// the whole space sits in the trivial sector of NoSymmetry. Decompositions
// on backends that ignore grading use this for new bond legs.
func NonSymmetric(dim int, opts ...Option) (*Space, error) {
	if dim <= 0 {
		return nil, ErrBadDim
	}

	return New(symmetry.NoSym, []symmetry.Sector{symmetry.NoSym.TrivialSector()}, []int{dim}, opts...)
}

// Symmetry returns the grading symmetry.
func (v *Space) Symmetry() symmetry.Symmetry { return v.sym }

// Dim returns the total dimension.
func (v *Space) Dim() int { return v.dim }

// IsDual reports whether this is a dual (bra) space.
func (v *Space) IsDual() bool { return v.isDual }

// IsReal reports whether the space is real.
func (v *Space) IsReal() bool { return v.isReal }

// NumSectors returns the number of distinct sectors in the grading.
func (v *Space) NumSectors() int { return len(v.sectors) }

// Sectors returns the sorted sector list (fresh copies).
func (v *Space) Sectors() []symmetry.Sector {
	out := make([]symmetry.Sector, len(v.sectors))
	for i, s := range v.sectors {
		out[i] = s.Copy()
	}

	return out
}

// Multiplicities returns the multiplicity list parallel to Sectors.
func (v *Space) Multiplicities() []int {
	out := make([]int, len(v.mults))
	copy(out, v.mults)

	return out
}

// SectorMultiplicity returns the multiplicity of sector a, or 0 when a is
// not part of the grading.
func (v *Space) SectorMultiplicity(a symmetry.Sector) int {
	i := sort.Search(len(v.sectors), func(i int) bool {
		return v.sectors[i].Compare(a) >= 0
	})
	if i < len(v.sectors) && v.sectors[i].Equal(a) {
		return v.mults[i]
	}

	return 0
}

// Dual returns the dual space: every sector mapped through DualSector
// (multiplicities follow their sectors) and the duality flag flipped. For
// fused spaces the factor list is dualized factor by factor, so a dual
// fused leg can still be split; a fused space without grading stays
// without grading. Dual is an involution: v.Dual().Dual() equals v.
func (v *Space) Dual() *Space {
	d := &Space{
		sym:    v.sym,
		isDual: !v.isDual,
		isReal: v.isReal,
		dim:    v.dim,
	}
	if v.factors != nil {
		d.factors = make([]*Space, len(v.factors))
		for i, f := range v.factors {
			d.factors[i] = f.Dual()
		}
	}
	if len(v.sectors) == 0 {
		return d
	}

	// Re-sort after the sector map; DualSector is injective on valid
	// sectors, so no duplicates can appear.
	type graded struct {
		sector symmetry.Sector
		mult   int
	}
	entries := make([]graded, len(v.sectors))
	for i, s := range v.sectors {
		entries[i] = graded{sector: v.sym.DualSector(s), mult: v.mults[i]}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].sector.Compare(entries[j].sector) < 0
	})
	for _, e := range entries {
		d.sectors = append(d.sectors, e.sector)
		d.mults = append(d.mults, e.mult)
	}

	return d
}

// Equal reports structural equality: same symmetry value, same dimension,
// same grading, same duality and reality flags. Fused spaces without
// grading compare through their dimension.
func (v *Space) Equal(o *Space) bool {
	if o == nil || v.sym != o.sym || v.isDual != o.isDual || v.isReal != o.isReal {
		return false
	}
	if v.dim != o.dim {
		return false
	}
	if len(v.sectors) != len(o.sectors) {
		return false
	}
	for i := range v.sectors {
		if !v.sectors[i].Equal(o.sectors[i]) || v.mults[i] != o.mults[i] {
			return false
		}
	}

	return true
}

// IsDualOf reports whether o is exactly the dual of v. This is the
// precondition check for viewing a tensor as an endomorphism (matrix
// exponential/logarithm).
func (v *Space) IsDualOf(o *Space) bool {
	if o == nil {
		return false
	}

	return v.Equal(o.Dual())
}

// String renders a short diagnostic form, e.g. "ℤ₂-space(dim=4)" or
// "U(1)-space*(dim=3)" for a dual space.
func (v *Space) String() string {
	star := ""
	if v.isDual {
		star = "*"
	}

	return fmt.Sprintf("%s-space%s(dim=%d)", v.sym.GroupName(), star, v.dim)
}
