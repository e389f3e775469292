package space

import (
	"sort"

	"github.com/tenalg/tenalg/symmetry"
)

// Fuse merges several legs of one symmetry into the product space a tensor
// reshape ("combine legs") maps them onto. The result records the factor
// list, so the merge can be undone later, and has the product of the factor
// dimensions.
//
// For single-outcome fusion (abelian symmetries) the fused grading is
// computed exactly: each combination of factor sectors fuses to its unique
// outcome, accumulating the product of the factor multiplicities. For
// richer fusion styles the sector multiplicities would need the N-symbol
// facility, which is deferred; the fused space then carries no grading and
// Grading reports ErrNoFusedGrading.
//
// All legs must share the same symmetry value (symmetries are shared by
// reference across tensors; two structurally equal but distinct instances
// are rejected).
// Complexity: O(Π k_i) over the factor sector counts for abelian fusion.
func Fuse(legs ...*Space) (*Space, error) {
	if len(legs) == 0 {
		return nil, ErrNoFactors
	}
	if legs[0] == nil {
		return nil, ErrNilSpace
	}
	sym := legs[0].sym
	dim := 1
	allReal := true
	for _, l := range legs {
		if l == nil {
			return nil, ErrNilSpace
		}
		if l.sym != sym {
			return nil, ErrSymmetryMismatch
		}
		dim *= l.dim
		allReal = allReal && l.isReal
	}

	fused := &Space{
		sym:     sym,
		isReal:  allReal,
		dim:     dim,
		factors: append([]*Space(nil), legs...),
	}
	if sym.FusionStyle() != symmetry.FusionSingle {
		return fused, nil // factor list and dimension only; no grading
	}

	grading, err := fuseAbelian(sym, legs)
	if err != nil {
		return nil, err
	}
	for _, g := range grading {
		fused.sectors = append(fused.sectors, g.sector)
		fused.mults = append(fused.mults, g.mult)
	}

	return fused, nil
}

// IsFused reports whether this space was produced by Fuse and can be split
// back into its factors.
func (v *Space) IsFused() bool { return v.factors != nil }

// Factors returns the original legs of a fused space (nil for plain ones).
func (v *Space) Factors() []*Space {
	if v.factors == nil {
		return nil
	}

	return append([]*Space(nil), v.factors...)
}

// Grading returns the fused sector list and multiplicities. It fails with
// ErrNoFusedGrading when the fusion style put the grading out of reach.
func (v *Space) Grading() ([]symmetry.Sector, []int, error) {
	if v.IsFused() && len(v.sectors) == 0 {
		return nil, nil, ErrNoFusedGrading
	}

	return v.Sectors(), v.Multiplicities(), nil
}

type gradedEntry struct {
	sector symmetry.Sector
	mult   int
}

// fuseAbelian folds the unique fusion outcome across every combination of
// factor sectors, accumulating multiplicity products, and returns the
// entries sorted by sector.
func fuseAbelian(sym symmetry.Symmetry, legs []*Space) ([]gradedEntry, error) {
	acc := map[string]*gradedEntry{}
	pick := make([]int, len(legs))
	total := 1
	for _, l := range legs {
		total *= len(l.sectors)
	}
	for n := 0; n < total; n++ {
		cur := legs[0].sectors[pick[0]]
		mult := legs[0].mults[pick[0]]
		for i := 1; i < len(legs); i++ {
			outs, err := sym.FusionOutcomes(cur, legs[i].sectors[pick[i]])
			if err != nil {
				return nil, err
			}
			cur = outs[0]
			mult *= legs[i].mults[pick[i]]
		}
		key := cur.Key()
		if e, ok := acc[key]; ok {
			e.mult += mult
		} else {
			acc[key] = &gradedEntry{sector: cur, mult: mult}
		}
		for i := len(pick) - 1; i >= 0; i-- {
			pick[i]++
			if pick[i] < len(legs[i].sectors) {
				break
			}
			pick[i] = 0
		}
	}

	out := make([]gradedEntry, 0, len(acc))
	for _, e := range acc {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].sector.Compare(out[j].sector) < 0
	})

	return out, nil
}
