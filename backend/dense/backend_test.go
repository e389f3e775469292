package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tenalg/tenalg/backend"
	"github.com/tenalg/tenalg/backend/dense"
)

func TestConstruction_ZeroEyeDiagonal(t *testing.T) {
	bk := dense.New()

	z, err := bk.ZeroBlock([]int{2, 3}, backend.Float64)
	require.NoError(t, err)
	shape, err := bk.BlockShape(z)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, shape)
	norm, err := bk.BlockNorm(z)
	require.NoError(t, err)
	require.Zero(t, norm)

	// Identity on a (2,3) leg pair has shape (2,3,2,3) and unit entries on
	// the paired diagonal.
	eye, err := bk.EyeBlock([]int{2, 3}, backend.Float64)
	require.NoError(t, err)
	shape, err = bk.BlockShape(eye)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 2, 3}, shape)
	vals, err := bk.BlockValues(eye)
	require.NoError(t, err)
	// (1,2)→(1,2) is flat position (1*3+2)*6 + (1*3+2)
	require.Equal(t, complex(1, 0), vals[5*6+5])
	require.Equal(t, complex(0, 0), vals[5*6+4])

	diag, err := bk.BlockFromValues([]complex128{2, 3}, []int{2}, backend.Float64)
	require.NoError(t, err)
	dm, err := bk.DiagonalBlock(diag)
	require.NoError(t, err)
	vals, err = bk.BlockValues(dm)
	require.NoError(t, err)
	require.Equal(t, []complex128{2, 0, 0, 3}, vals)
}

func TestBlockItem_RequiresSingleElement(t *testing.T) {
	bk := dense.New()

	one, err := bk.BlockFromValues([]complex128{7i}, []int{1, 1}, backend.Complex128)
	require.NoError(t, err)
	v, err := bk.BlockItem(one)
	require.NoError(t, err)
	require.Equal(t, 7i, v)

	many, err := bk.ZeroBlock([]int{2}, backend.Float64)
	require.NoError(t, err)
	_, err = bk.BlockItem(many)
	require.ErrorIs(t, err, backend.ErrBadShape)
}

func TestBlockToDtype_RejectsImaginaryContent(t *testing.T) {
	bk := dense.New()

	a, err := bk.BlockFromValues([]complex128{1 + 2i, 3}, []int{2}, backend.Complex128)
	require.NoError(t, err)
	_, err = bk.BlockToDtype(a, backend.Float64)
	require.ErrorIs(t, err, backend.ErrDtypeMismatch)

	// A complex block with negligible imaginary parts converts cleanly.
	b, err := bk.BlockFromValues([]complex128{1, 3}, []int{2}, backend.Complex128)
	require.NoError(t, err)
	r, err := bk.BlockToDtype(b, backend.Float64)
	require.NoError(t, err)
	dt, err := bk.BlockDtype(r)
	require.NoError(t, err)
	require.Equal(t, backend.Float64, dt)
}

func TestBlockFromValues_RealDtypeRejectsComplex(t *testing.T) {
	bk := dense.New()

	_, err := bk.BlockFromValues([]complex128{1i}, []int{1}, backend.Float64)
	require.ErrorIs(t, err, backend.ErrDtypeMismatch)

	_, err = bk.BlockFromValues([]complex128{1, 2, 3}, []int{2}, backend.Float64)
	require.ErrorIs(t, err, backend.ErrBadShape)
}

func TestRandom_DeterministicPerSeed(t *testing.T) {
	a, err := dense.New(dense.WithSeed(42)).RandomNormal([]int{3, 3}, backend.Float64, 1)
	require.NoError(t, err)
	b, err := dense.New(dense.WithSeed(42)).RandomNormal([]int{3, 3}, backend.Float64, 1)
	require.NoError(t, err)

	bk := dense.New()
	va, err := bk.BlockValues(a)
	require.NoError(t, err)
	vb, err := bk.BlockValues(b)
	require.NoError(t, err)
	require.Equal(t, va, vb, "same seed must reproduce the same draws")
}

func TestForeignBlock_Rejected(t *testing.T) {
	bk := dense.New()

	_, err := bk.BlockShape("not a block")
	require.ErrorIs(t, err, backend.ErrBadBlock)
}
