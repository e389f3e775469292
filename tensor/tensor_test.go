package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tenalg/tenalg/backend"
	"github.com/tenalg/tenalg/backend/dense"
	"github.com/tenalg/tenalg/space"
	"github.com/tenalg/tenalg/symmetry"
	"github.com/tenalg/tenalg/tensor"
)

// leg builds a trivially graded leg of the given dimension.
func leg(t *testing.T, dim int, opts ...space.Option) *space.Space {
	t.Helper()
	l, err := space.NonSymmetric(dim, opts...)
	require.NoError(t, err)

	return l
}

func TestNew_ValidatesShapeAndLabels(t *testing.T) {
	bk := dense.New()

	data, err := bk.ZeroBlock([]int{2, 3}, backend.Float64)
	require.NoError(t, err)

	tt, err := tensor.New(bk, data, []*space.Space{leg(t, 2), leg(t, 3)}, []string{"p", "v"})
	require.NoError(t, err)
	require.Equal(t, 2, tt.NumLegs())
	require.Equal(t, "p", tt.Label(0))
	require.Equal(t, 3, tt.Leg(1).Dim())

	_, err = tensor.New(bk, data, []*space.Space{leg(t, 2), leg(t, 4)}, nil)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = tensor.New(bk, data, []*space.Space{leg(t, 2)}, nil)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = tensor.New(bk, data, []*space.Space{leg(t, 2), leg(t, 3)}, []string{"p"})
	require.ErrorIs(t, err, tensor.ErrLabelCount)
	_, err = tensor.New(bk, data, []*space.Space{leg(t, 2), leg(t, 3)}, []string{"p", "p"})
	require.ErrorIs(t, err, tensor.ErrDuplicateLabel)
	_, err = tensor.New(nil, data, []*space.Space{leg(t, 2), leg(t, 3)}, nil)
	require.ErrorIs(t, err, tensor.ErrNilBackend)
}

func TestLegSelectors_Resolve(t *testing.T) {
	bk := dense.New()

	tt, err := tensor.Zero(bk, []*space.Space{leg(t, 2), leg(t, 3)}, backend.Float64, []string{"p", ""})
	require.NoError(t, err)

	i, err := tt.LegIndex(tensor.At(1))
	require.NoError(t, err)
	require.Equal(t, 1, i)
	i, err = tt.LegIndex(tensor.Labeled("p"))
	require.NoError(t, err)
	require.Equal(t, 0, i)

	_, err = tt.LegIndex(tensor.At(2))
	require.ErrorIs(t, err, tensor.ErrLegIndex)
	_, err = tt.LegIndex(tensor.Labeled("q"))
	require.ErrorIs(t, err, tensor.ErrUnknownLabel)
}

func TestTranspose_CarriesLegsAndLabels(t *testing.T) {
	bk := dense.New()

	tt, err := tensor.RandomNormal(bk, []*space.Space{leg(t, 2), leg(t, 3)}, backend.Float64, 1, []string{"a", "b"})
	require.NoError(t, err)

	tr, err := tt.Transpose([]int{1, 0})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, tr.Labels())
	require.Equal(t, 3, tr.Leg(0).Dim())

	// A second transpose restores the original elementwise.
	back, err := tr.Transpose([]int{1, 0})
	require.NoError(t, err)
	ok, err := back.AllClose(tt, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTdot_RequiresDualLegs(t *testing.T) {
	bk := dense.New()

	l := leg(t, 3)
	a, err := tensor.FromValues(bk, []complex128{1, 2, 3}, []*space.Space{l}, backend.Float64, []string{"x"})
	require.NoError(t, err)
	b, err := tensor.FromValues(bk, []complex128{4, 5, 6}, []*space.Space{l.Dual()}, backend.Float64, []string{"y"})
	require.NoError(t, err)

	s, err := tensor.Tdot(a, b, []tensor.Leg{tensor.At(0)}, []tensor.Leg{tensor.At(0)})
	require.NoError(t, err)
	v, err := s.Item()
	require.NoError(t, err)
	require.Equal(t, complex(32, 0), v)

	// Contracting two non-dual legs must fail before any numeric work.
	_, err = tensor.Tdot(a, a, []tensor.Leg{tensor.At(0)}, []tensor.Leg{tensor.At(0)})
	require.ErrorIs(t, err, tensor.ErrNotContractible)
}

func TestTdot_MatrixVector(t *testing.T) {
	bk := dense.New()

	row, col := leg(t, 2), leg(t, 3)
	m, err := tensor.FromValues(bk, []complex128{1, 2, 3, 4, 5, 6},
		[]*space.Space{row, col.Dual()}, backend.Float64, []string{"out", "in"})
	require.NoError(t, err)
	v, err := tensor.FromValues(bk, []complex128{1, 0, 1}, []*space.Space{col}, backend.Float64, []string{"x"})
	require.NoError(t, err)

	mv, err := tensor.Tdot(m, v, []tensor.Leg{tensor.Labeled("in")}, []tensor.Leg{tensor.At(0)})
	require.NoError(t, err)
	require.Equal(t, 1, mv.NumLegs())
	require.Equal(t, "out", mv.Label(0))
	vals, err := bk.BlockValues(mv.Data())
	require.NoError(t, err)
	require.Equal(t, []complex128{4, 10}, vals)
}

func TestConj_DualizesLegs(t *testing.T) {
	bk := dense.New()

	l := leg(t, 2)
	a, err := tensor.FromValues(bk, []complex128{1 + 1i, 2}, []*space.Space{l}, backend.Complex128, []string{"p"})
	require.NoError(t, err)

	c, err := a.Conj()
	require.NoError(t, err)
	require.True(t, c.Leg(0).IsDualOf(l))
	require.Equal(t, "p", c.Label(0))
	vals, err := bk.BlockValues(c.Data())
	require.NoError(t, err)
	require.Equal(t, []complex128{1 - 1i, 2}, vals)
}

func TestCombineSplit_RoundTrip(t *testing.T) {
	bk := dense.New()

	sym := symmetry.U1
	l1, err := space.New(sym, []symmetry.Sector{symmetry.Sec(-1), symmetry.Sec(1)}, []int{1, 1})
	require.NoError(t, err)
	l2, err := space.New(sym, []symmetry.Sector{symmetry.Sec(0)}, []int{3})
	require.NoError(t, err)

	tt, err := tensor.RandomNormal(bk, []*space.Space{l1, l2, l1}, backend.Float64, 1, []string{"a", "b", "c"})
	require.NoError(t, err)

	c, err := tt.CombineLegs([]tensor.Leg{tensor.At(0), tensor.At(1)}, "ab")
	require.NoError(t, err)
	require.Equal(t, 2, c.NumLegs())
	require.Equal(t, []string{"ab", "c"}, c.Labels())
	require.True(t, c.Leg(0).IsFused())
	require.Equal(t, 6, c.Leg(0).Dim())

	s, err := c.SplitLeg(tensor.Labeled("ab"))
	require.NoError(t, err)
	require.Equal(t, 3, s.NumLegs())
	require.True(t, s.Leg(0).Equal(l1), "split must restore the original factor legs")
	ok, err := bk.BlockAllClose(s.Data(), tt.Data(), 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = tt.SplitLeg(tensor.At(2))
	require.ErrorIs(t, err, tensor.ErrNotFused)
}

func TestConj_OnCombinedLegs(t *testing.T) {
	bk := dense.New()

	// SU(2) fused legs carry no grading; conjugation must still dualize
	// them and leave the leg splittable.
	l, err := space.New(symmetry.SU2, []symmetry.Sector{symmetry.Sec(1)}, []int{1})
	require.NoError(t, err)
	tt, err := tensor.RandomNormal(bk, []*space.Space{l, l, l.Dual()}, backend.Float64, 1, nil)
	require.NoError(t, err)

	c, err := tt.CombineLegs([]tensor.Leg{tensor.At(0), tensor.At(1)}, "pair")
	require.NoError(t, err)
	cj, err := c.Conj()
	require.NoError(t, err)
	require.True(t, cj.Leg(0).IsDualOf(c.Leg(0)))
	require.True(t, cj.Leg(0).IsFused(), "conjugation keeps the fused structure")

	s, err := cj.SplitLeg(tensor.Labeled("pair"))
	require.NoError(t, err)
	require.Equal(t, 3, s.NumLegs())
	require.True(t, s.Leg(0).IsDualOf(l), "split factors are the duals of the originals")
}

func TestCombineLegs_NonAdjacent(t *testing.T) {
	bk := dense.New()

	tt, err := tensor.RandomNormal(bk, []*space.Space{leg(t, 2), leg(t, 3), leg(t, 4)},
		backend.Float64, 1, []string{"a", "b", "c"})
	require.NoError(t, err)

	// Merging legs (0, 2) leaves leg 1 after the fused one.
	c, err := tt.CombineLegs([]tensor.Leg{tensor.At(0), tensor.At(2)}, "")
	require.NoError(t, err)
	require.Equal(t, 2, c.NumLegs())
	require.Equal(t, 8, c.Leg(0).Dim())
	require.Equal(t, "b", c.Label(1))
}

func TestEye_IsIdentityUnderContraction(t *testing.T) {
	bk := dense.New()

	l := leg(t, 3)
	eye, err := tensor.Eye(bk, []*space.Space{l}, backend.Float64, nil)
	require.NoError(t, err)
	require.Equal(t, 2, eye.NumLegs())
	require.True(t, eye.Leg(1).IsDualOf(eye.Leg(0)))

	v, err := tensor.FromValues(bk, []complex128{1, 2, 3}, []*space.Space{l}, backend.Float64, nil)
	require.NoError(t, err)
	out, err := tensor.Tdot(eye, v, []tensor.Leg{tensor.At(1)}, []tensor.Leg{tensor.At(0)})
	require.NoError(t, err)
	ok, err := out.AllClose(v, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDiagonalTensor_ExpandsToMatrix(t *testing.T) {
	bk := dense.New()

	l := leg(t, 2)
	diag, err := bk.BlockFromValues([]complex128{3, 5}, []int{2}, backend.Float64)
	require.NoError(t, err)
	d, err := tensor.NewDiagonal(bk, diag, l, []string{"vL", "vR"})
	require.NoError(t, err)
	require.True(t, d.Leg(1).IsDualOf(l))

	full, err := d.ToTensor()
	require.NoError(t, err)
	vals, err := bk.BlockValues(full.Data())
	require.NoError(t, err)
	require.Equal(t, []complex128{3, 0, 0, 5}, vals)
	require.Equal(t, []string{"vL", "vR"}, full.Labels())

	bad, err := bk.ZeroBlock([]int{3}, backend.Float64)
	require.NoError(t, err)
	_, err = tensor.NewDiagonal(bk, bad, l, nil)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestInnerOuterNorm(t *testing.T) {
	bk := dense.New()

	l := leg(t, 2)
	a, err := tensor.FromValues(bk, []complex128{3, 4}, []*space.Space{l}, backend.Float64, []string{"x"})
	require.NoError(t, err)

	n, err := a.Norm()
	require.NoError(t, err)
	require.InDelta(t, 5.0, n, 1e-14)

	ip, err := tensor.Inner(a, a)
	require.NoError(t, err)
	require.Equal(t, complex(25, 0), ip)

	o, err := tensor.Outer(a, a)
	require.NoError(t, err)
	require.Equal(t, 2, o.NumLegs())
	require.Equal(t, []string{"x", ""}, o.Labels(), "clashing label is dropped on the second operand")
}
