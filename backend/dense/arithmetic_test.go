package dense_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tenalg/tenalg/backend"
	"github.com/tenalg/tenalg/backend/dense"
)

func TestBlockTdot_MatrixProduct(t *testing.T) {
	bk := dense.New()

	a, err := bk.BlockFromValues([]complex128{1, 2, 3, 4}, []int{2, 2}, backend.Float64)
	require.NoError(t, err)
	b, err := bk.BlockFromValues([]complex128{5, 6, 7, 8}, []int{2, 2}, backend.Float64)
	require.NoError(t, err)

	c, err := bk.BlockTdot(a, b, []int{1}, []int{0})
	require.NoError(t, err)
	vals, err := bk.BlockValues(c)
	require.NoError(t, err)
	require.Equal(t, []complex128{19, 22, 43, 50}, vals)
}

func TestBlockTdot_MultiAxisAndFull(t *testing.T) {
	bk := dense.New()
	a := seq(t, bk, []int{2, 3, 4})
	b := seq(t, bk, []int{4, 3, 5})

	// Contract a's axes (2,1) against b's axes (0,1); result is (2,5).
	c, err := bk.BlockTdot(a, b, []int{2, 1}, []int{0, 1})
	require.NoError(t, err)
	shape, err := bk.BlockShape(c)
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, shape)
	// Hand check one entry: c[0][0] = Σ_{j,k} a[0,j,k]·b[k,j,0].
	var want complex128
	for j := 0; j < 3; j++ {
		for k := 0; k < 4; k++ {
			want += complex(float64(j*4+k), 0) * complex(float64(k*15+j*5), 0)
		}
	}
	vals, err := bk.BlockValues(c)
	require.NoError(t, err)
	require.Equal(t, want, vals[0])

	// Fully contracting a vector against itself leaves a size-1 block.
	v, err := bk.BlockFromValues([]complex128{1, 2, 3}, []int{3}, backend.Float64)
	require.NoError(t, err)
	s, err := bk.BlockTdot(v, v, []int{0}, []int{0})
	require.NoError(t, err)
	item, err := bk.BlockItem(s)
	require.NoError(t, err)
	require.Equal(t, complex(14, 0), item)

	_, err = bk.BlockTdot(a, b, []int{0}, []int{0, 1})
	require.ErrorIs(t, err, backend.ErrBadAxis)
	_, err = bk.BlockTdot(a, b, []int{0}, []int{0})
	require.ErrorIs(t, err, backend.ErrBadShape)
}

func TestBlockTdot_PromotesDtype(t *testing.T) {
	bk := dense.New()

	r, err := bk.BlockFromValues([]complex128{1, 2}, []int{2}, backend.Float64)
	require.NoError(t, err)
	c, err := bk.BlockFromValues([]complex128{1i, 2i}, []int{2}, backend.Complex128)
	require.NoError(t, err)

	out, err := bk.BlockTdot(r, c, []int{0}, []int{0})
	require.NoError(t, err)
	dt, err := bk.BlockDtype(out)
	require.NoError(t, err)
	require.Equal(t, backend.Complex128, dt)
	item, err := bk.BlockItem(out)
	require.NoError(t, err)
	require.Equal(t, 5i, item)
}

func TestBlockConjInnerNorm(t *testing.T) {
	bk := dense.New()

	a, err := bk.BlockFromValues([]complex128{1 + 1i, 2}, []int{2}, backend.Complex128)
	require.NoError(t, err)

	cj, err := bk.BlockConj(a)
	require.NoError(t, err)
	vals, err := bk.BlockValues(cj)
	require.NoError(t, err)
	require.Equal(t, []complex128{1 - 1i, 2}, vals)

	// ⟨a, a⟩ = |a|² and norm = √⟨a, a⟩.
	inner, err := bk.BlockInner(a, a)
	require.NoError(t, err)
	require.Equal(t, complex(6, 0), inner)
	norm, err := bk.BlockNorm(a)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(6), norm, 1e-14)
}

func TestBlockOuter_ShapeAndValues(t *testing.T) {
	bk := dense.New()

	a, err := bk.BlockFromValues([]complex128{1, 2}, []int{2}, backend.Float64)
	require.NoError(t, err)
	b, err := bk.BlockFromValues([]complex128{3, 4, 5}, []int{3}, backend.Float64)
	require.NoError(t, err)

	o, err := bk.BlockOuter(a, b)
	require.NoError(t, err)
	shape, err := bk.BlockShape(o)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, shape)
	vals, err := bk.BlockValues(o)
	require.NoError(t, err)
	require.Equal(t, []complex128{3, 4, 5, 6, 8, 10}, vals)
}

func TestBlockAllClose_Tolerances(t *testing.T) {
	bk := dense.New()

	a, err := bk.BlockFromValues([]complex128{1, 2}, []int{2}, backend.Float64)
	require.NoError(t, err)
	b, err := bk.BlockFromValues([]complex128{1 + 1e-9, 2}, []int{2}, backend.Float64)
	require.NoError(t, err)

	ok, err := bk.BlockAllClose(a, b, 0, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = bk.BlockAllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	c, err := bk.ZeroBlock([]int{3}, backend.Float64)
	require.NoError(t, err)
	_, err = bk.BlockAllClose(a, c, 0, 0)
	require.ErrorIs(t, err, backend.ErrBadShape)
}
