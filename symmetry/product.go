package symmetry

import "strings"

// ProductSymmetry is an ordered product of factor symmetries. Its sectors
// concatenate the factor sectors slot-wise, its trivial sector is the
// concatenation of the factor trivial sectors, and its fusion/braiding
// styles are the element-wise worst case over the factors — combining a
// simple symmetry with a complex one yields an overall-complex product.
//
// Construction flattens nested products, so combining a ProductSymmetry
// with anything else always yields a flat factor list (associativity of
// the product).
type ProductSymmetry struct {
	base
	factors []Symmetry
	offsets []int // offsets[i]..offsets[i+1] is factor i's slot range
}

// Product combines the given symmetries into one. ProductSymmetry factors
// are spliced in place of themselves, keeping the result flat. At least one
// non-nil factor is required.
func Product(factors ...Symmetry) (*ProductSymmetry, error) {
	if len(factors) == 0 {
		return nil, ErrNoFactors
	}
	flat := make([]Symmetry, 0, len(factors))
	for _, f := range factors {
		if f == nil {
			return nil, ErrNilFactor
		}
		if p, ok := f.(*ProductSymmetry); ok {
			flat = append(flat, p.factors...)
			continue
		}
		flat = append(flat, f)
	}

	fusion := FusionSingle
	braiding := BraidingBosonic
	trivial := Sector{}
	names := make([]string, len(flat))
	descs := make([]string, len(flat))
	allNamed := true
	offsets := make([]int, len(flat)+1)
	for i, f := range flat {
		fusion = maxFusionStyle(fusion, f.FusionStyle())
		braiding = maxBraidingStyle(braiding, f.BraidingStyle())
		trivial = append(trivial, f.TrivialSector()...)
		names[i] = f.GroupName()
		descs[i] = f.DescriptiveName()
		if descs[i] == "" {
			allNamed = false
		}
		offsets[i+1] = offsets[i] + f.NumSlots()
	}
	descName := ""
	if allNamed {
		descName = "[" + strings.Join(descs, ", ") + "]"
	}

	return &ProductSymmetry{
		base: base{
			fusion:    fusion,
			braiding:  braiding,
			trivial:   trivial,
			groupName: strings.Join(names, " ⨉ "),
			descName:  descName,
		},
		factors: flat,
		offsets: offsets,
	}, nil
}

// Factors returns the flat factor list (a fresh slice; the factors
// themselves are shared immutable values).
func (s *ProductSymmetry) Factors() []Symmetry {
	out := make([]Symmetry, len(s.factors))
	copy(out, s.factors)

	return out
}

// NumSlots returns the total slot count over all factors.
func (s *ProductSymmetry) NumSlots() int { return s.offsets[len(s.factors)] }

// slot returns factor i's view of sector a. Caller guarantees length.
func (s *ProductSymmetry) slot(a Sector, i int) Sector {
	return a[s.offsets[i]:s.offsets[i+1]]
}

// IsValidSector accepts sectors of exactly NumSlots slots whose per-factor
// slices are each valid for their factor.
func (s *ProductSymmetry) IsValidSector(a Sector) bool {
	if len(a) != s.NumSlots() {
		return false
	}
	for i, f := range s.factors {
		if !f.IsValidSector(s.slot(a, i)) {
			return false
		}
	}

	return true
}

// FusionOutcomes returns the Cartesian product of the per-factor fusion
// outcomes, concatenated slot-wise. Each distinct product sector appears
// exactly once.
func (s *ProductSymmetry) FusionOutcomes(a, b Sector) ([]Sector, error) {
	if !s.IsValidSector(a) || !s.IsValidSector(b) {
		return nil, ErrInvalidSector
	}
	perFactor := make([][]Sector, len(s.factors))
	total := 1
	for i, f := range s.factors {
		outs, err := f.FusionOutcomes(s.slot(a, i), s.slot(b, i))
		if err != nil {
			return nil, err
		}
		perFactor[i] = outs
		total *= len(outs)
	}

	// Odometer walk over the per-factor outcome lists.
	out := make([]Sector, 0, total)
	pick := make([]int, len(s.factors))
	for n := 0; n < total; n++ {
		combined := make(Sector, 0, s.NumSlots())
		for i := range s.factors {
			combined = append(combined, perFactor[i][pick[i]]...)
		}
		out = append(out, combined)
		for i := len(pick) - 1; i >= 0; i-- {
			pick[i]++
			if pick[i] < len(perFactor[i]) {
				break
			}
			pick[i] = 0
		}
	}

	return out, nil
}

// SectorDim multiplies the per-factor sector dimensions.
func (s *ProductSymmetry) SectorDim(a Sector) int {
	if !s.IsValidSector(a) {
		return 0
	}
	dim := 1
	for i, f := range s.factors {
		dim *= f.SectorDim(s.slot(a, i))
	}

	return dim
}

// DualSector applies each factor's dual slot-wise.
func (s *ProductSymmetry) DualSector(a Sector) Sector {
	if !s.IsValidSector(a) {
		return nil
	}
	out := make(Sector, 0, len(a))
	for i, f := range s.factors {
		out = append(out, f.DualSector(s.slot(a, i))...)
	}

	return out
}

// SectorStr renders the per-factor display forms as a bracketed tuple,
// e.g. "[1, J=1/2]".
func (s *ProductSymmetry) SectorStr(a Sector) string {
	if !s.IsValidSector(a) {
		return a.String()
	}
	parts := make([]string, len(s.factors))
	for i, f := range s.factors {
		parts[i] = f.SectorStr(s.slot(a, i))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
