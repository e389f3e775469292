package symmetry

import (
	"strconv"
	"strings"
)

// Sector labels an irreducible representation of a symmetry. It is a tuple
// of integers with one slot per simple factor: simple symmetries use
// one-slot sectors, product symmetries concatenate the slots of their
// factors in order.
//
// Sectors are treated as immutable values: operations that return sectors
// always return fresh slices, and callers must not mutate a Sector after
// handing it to this package. Comparison is by content only (Equal, Compare,
// Key); there is no identity semantics.
type Sector []int

// Sec is a convenience constructor for sector literals: Sec(2), Sec(0, -1).
func Sec(slots ...int) Sector {
	s := make(Sector, len(slots))
	copy(s, slots)

	return s
}

// Equal reports whether s and o have identical length and content.
func (s Sector) Equal(o Sector) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Compare orders sectors lexicographically (shorter sectors first on a
// shared prefix). It returns -1, 0, or +1, making Sector totally ordered
// and usable as a sort key for deterministic sector enumeration.
func (s Sector) Compare(o Sector) int {
	n := len(s)
	if len(o) < n {
		n = len(o)
	}
	for i := 0; i < n; i++ {
		switch {
		case s[i] < o[i]:
			return -1
		case s[i] > o[i]:
			return 1
		}
	}
	switch {
	case len(s) < len(o):
		return -1
	case len(s) > len(o):
		return 1
	}

	return 0
}

// Copy returns an independent copy of s.
func (s Sector) Copy() Sector {
	c := make(Sector, len(s))
	copy(c, s)

	return c
}

// Key returns a canonical string form of s, suitable as a map key when
// sectors must be hashed (Go slices cannot be map keys directly).
func (s Sector) Key() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// String renders s as a bracketed tuple, e.g. "[2]" or "[0, -1]".
func (s Sector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}
