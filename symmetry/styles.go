package symmetry

// FusionStyle classifies how many outcomes the fusion of two sectors can
// produce. The values are ordered by generality so that product symmetries
// can aggregate factor styles by taking the maximum.
//
//   - FusionSingle         — exactly one outcome, a ⊗ b = c
//     (abelian groups; no multiplicity bookkeeping needed)
//   - FusionMultipleUnique — several outcomes, each at most once, N^{ab}_c ∈ {0,1}
//     (e.g. SU(2))
//   - FusionGeneral        — no assumption, N^{ab}_c = 0, 1, 2, ...
type FusionStyle int

const (
	// FusionSingle: a unique fusion outcome per sector pair.
	FusionSingle FusionStyle = iota

	// FusionMultipleUnique: multiple outcomes, each with multiplicity one.
	FusionMultipleUnique

	// FusionGeneral: arbitrary outcome multiplicities.
	FusionGeneral
)

// String returns the style name for diagnostics.
func (f FusionStyle) String() string {
	switch f {
	case FusionSingle:
		return "single"
	case FusionMultipleUnique:
		return "multiple-unique"
	case FusionGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// BraidingStyle classifies how exchanging two graded legs transforms a
// tensor. Ordered by generality for the same worst-case aggregation rule
// as FusionStyle.
//
//   - BraidingBosonic   — symmetric braiding, trivial twist: v ⊗ w ↦ w ⊗ v
//   - BraidingFermionic — symmetric braiding with parity sign: v ⊗ w ↦ (-1)^p(v,w) w ⊗ v
//   - BraidingAnyonic   — non-symmetric braiding
//   - BraidingNone      — braiding is not defined
type BraidingStyle int

const (
	// BraidingBosonic: symmetric exchange with trivial twist.
	BraidingBosonic BraidingStyle = iota

	// BraidingFermionic: symmetric exchange with a parity sign.
	BraidingFermionic

	// BraidingAnyonic: non-symmetric exchange.
	BraidingAnyonic

	// BraidingNone: exchange is undefined.
	BraidingNone
)

// String returns the style name for diagnostics.
func (b BraidingStyle) String() string {
	switch b {
	case BraidingBosonic:
		return "bosonic"
	case BraidingFermionic:
		return "fermionic"
	case BraidingAnyonic:
		return "anyonic"
	case BraidingNone:
		return "no-braiding"
	default:
		return "unknown"
	}
}

// maxFusionStyle returns the more general of two fusion styles.
func maxFusionStyle(a, b FusionStyle) FusionStyle {
	if b > a {
		return b
	}

	return a
}

// maxBraidingStyle returns the more general of two braiding styles.
func maxBraidingStyle(a, b BraidingStyle) BraidingStyle {
	if b > a {
		return b
	}

	return a
}
