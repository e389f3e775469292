package symmetry

// ZNSymmetry is the cyclic group ℤₙ. Sectors are the integers 0..N-1;
// fusion is addition modulo N and the dual of a is (N-a) mod N.
type ZNSymmetry struct {
	base
	n int
}

// subscriptDigits maps '0'..'9' to their Unicode subscript forms for the
// ℤₙ group name.
var subscriptDigits = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

// NewZN constructs the ℤₙ symmetry for modulus n ≥ 2. The descriptive name
// may be empty.
func NewZN(n int, descriptiveName string) (*ZNSymmetry, error) {
	if n < 2 {
		return nil, ErrBadModulus
	}
	name := []rune("ℤ")
	for _, d := range itoa(n) {
		name = append(name, subscriptDigits[d-'0'])
	}

	return &ZNSymmetry{
		base: base{
			fusion:    FusionSingle,
			braiding:  BraidingBosonic,
			trivial:   Sector{0},
			groupName: string(name),
			descName:  descriptiveName,
		},
		n: n,
	}, nil
}

// itoa renders a positive int as decimal digits without pulling strconv
// into the hot path of a constructor loop.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}

	return string(buf[i:])
}

// N returns the modulus.
func (s *ZNSymmetry) N() int { return s.n }

// NumSlots returns 1.
func (s *ZNSymmetry) NumSlots() int { return 1 }

// IsValidSector accepts one-slot sectors in 0..N-1.
func (s *ZNSymmetry) IsValidSector(a Sector) bool {
	return len(a) == 1 && a[0] >= 0 && a[0] < s.n
}

// FusionOutcomes returns the single outcome [(a+b) mod N].
func (s *ZNSymmetry) FusionOutcomes(a, b Sector) ([]Sector, error) {
	if !s.IsValidSector(a) || !s.IsValidSector(b) {
		return nil, ErrInvalidSector
	}

	return []Sector{{(a[0] + b[0]) % s.n}}, nil
}

// SectorDim returns 1: every ℤₙ irrep is one-dimensional.
func (s *ZNSymmetry) SectorDim(a Sector) int {
	if !s.IsValidSector(a) {
		return 0
	}

	return 1
}

// DualSector returns [(N-a) mod N].
func (s *ZNSymmetry) DualSector(a Sector) Sector {
	if !s.IsValidSector(a) {
		return nil
	}

	return Sector{(s.n - a[0]) % s.n}
}

// SectorStr renders the charge as a plain integer.
func (s *ZNSymmetry) SectorStr(a Sector) string {
	if !s.IsValidSector(a) {
		return a.String()
	}

	return itoa(a[0])
}
