package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tenalg/tenalg/backend"
	"github.com/tenalg/tenalg/backend/dense"
	"github.com/tenalg/tenalg/decomp"
	"github.com/tenalg/tenalg/tensor"
)

// contractTriple rebuilds U·S·Vh along the bond legs.
func contractTriple(t *testing.T, u *tensor.Tensor, s *tensor.DiagonalTensor, vh *tensor.Tensor) *tensor.Tensor {
	t.Helper()
	sFull, err := s.ToTensor()
	require.NoError(t, err)
	us, err := tensor.Tdot(u, sFull,
		[]tensor.Leg{tensor.At(u.NumLegs() - 1)}, []tensor.Leg{tensor.At(0)})
	require.NoError(t, err)
	full, err := tensor.Tdot(us, vh,
		[]tensor.Leg{tensor.At(us.NumLegs() - 1)}, []tensor.Leg{tensor.At(0)})
	require.NoError(t, err)

	return full
}

func TestSVD_TwoLegRoundTrip(t *testing.T) {
	bk := dense.New(dense.WithSeed(5))

	m := randTensor(t, bk, []int{4, 3}, []string{"p", "q"})
	u, s, vh, err := decomp.SVD(m, decomp.DefaultSVDOptions())
	require.NoError(t, err)

	require.Equal(t, 2, u.NumLegs())
	require.Equal(t, 2, vh.NumLegs())
	require.True(t, u.Leg(1).IsDualOf(s.Leg(0)), "U bond must contract with S")
	require.True(t, s.Leg(1).IsDualOf(vh.Leg(0)), "S bond must contract with Vh")

	rec := contractTriple(t, u, s, vh)
	ok, err := rec.AllClose(m, 1e-10, 1e-10)
	require.NoError(t, err)
	require.True(t, ok, "U·S·Vh must reconstruct the input")
}

func TestSVD_MultiLegGroupsSplitBack(t *testing.T) {
	bk := dense.New(dense.WithSeed(9))

	four := randTensor(t, bk, []int{2, 3, 2, 2}, []string{"a", "b", "c", "d"})
	opts := decomp.DefaultSVDOptions()
	opts.ULegs = []tensor.Leg{tensor.Labeled("a"), tensor.Labeled("c")}
	opts.NewLabels = []string{"vR", "vL"}
	u, s, vh, err := decomp.SVD(four, opts)
	require.NoError(t, err)

	// U keeps legs a, c plus the bond; Vh keeps the bond plus b, d. The
	// input labels survive the combine/split round trip.
	require.Equal(t, 3, u.NumLegs())
	require.Equal(t, 2, u.Leg(0).Dim())
	require.Equal(t, 2, u.Leg(1).Dim())
	require.Equal(t, []string{"a", "c", "vR"}, u.Labels())
	require.Equal(t, 3, vh.NumLegs())
	require.Equal(t, 3, vh.Leg(1).Dim())
	require.Equal(t, 2, vh.Leg(2).Dim())
	require.Equal(t, []string{"vL", "b", "d"}, vh.Labels())

	rec := contractTriple(t, u, s, vh)
	want, err := four.Transpose([]int{0, 2, 1, 3})
	require.NoError(t, err)
	ok, err := rec.AllClose(want, 1e-10, 1e-10)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSVD_LabelArities(t *testing.T) {
	bk := dense.New(dense.WithSeed(1))
	m := randTensor(t, bk, []int{3, 3}, nil)

	for _, labels := range [][]string{nil, {"vR", "vL"}, {"u", "s1", "s2", "vh"}} {
		opts := decomp.DefaultSVDOptions()
		opts.NewLabels = labels
		_, _, _, err := decomp.SVD(m, opts)
		require.NoError(t, err, "label count %d must be accepted", len(labels))
	}

	opts := decomp.DefaultSVDOptions()
	opts.NewLabels = []string{"a", "b", "c"}
	_, _, _, err := decomp.SVD(m, opts)
	require.ErrorIs(t, err, decomp.ErrLabelArity)
}

func TestSVD_TwoLabelConvention(t *testing.T) {
	bk := dense.New(dense.WithSeed(2))
	m := randTensor(t, bk, []int{3, 3}, nil)

	opts := decomp.DefaultSVDOptions()
	opts.NewLabels = []string{"vR", "vL"}
	u, s, vh, err := decomp.SVD(m, opts)
	require.NoError(t, err)
	require.Equal(t, "vR", u.Label(1))
	require.Equal(t, []string{"vL", "vR"}, s.Labels())
	require.Equal(t, "vL", vh.Label(0))
}

func TestSVD_NewVhLegDual(t *testing.T) {
	bk := dense.New(dense.WithSeed(4))
	m := randTensor(t, bk, []int{3, 4}, nil)

	opts := decomp.DefaultSVDOptions()
	opts.NewVhLegDual = true
	u, s, vh, err := decomp.SVD(m, opts)
	require.NoError(t, err)
	require.True(t, vh.Leg(0).IsDual())
	require.False(t, u.Leg(1).IsDual())

	rec := contractTriple(t, u, s, vh)
	ok, err := rec.AllClose(m, 1e-10, 1e-10)
	require.NoError(t, err)
	require.True(t, ok, "the triple must stay contractible with the flipped duality")
}

func TestSVD_AlgorithmValidationBeforeDispatch(t *testing.T) {
	bk := dense.New()
	m := randTensor(t, bk, []int{2, 2}, nil)

	opts := decomp.DefaultSVDOptions()
	opts.Algorithm = backend.SVDJacobi
	_, _, _, err := decomp.SVD(m, opts)
	require.ErrorIs(t, err, backend.ErrUnknownAlgorithm)
}

func TestSVD_LogsProgress(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	bk := dense.New(dense.WithSeed(6))
	m := randTensor(t, bk, []int{3, 2}, nil)

	opts := decomp.DefaultSVDOptions()
	opts.Logger = zap.New(core)
	_, _, _, err := decomp.SVD(m, opts)
	require.NoError(t, err)

	entries := logs.FilterMessage("svd").All()
	require.Len(t, entries, 1)
	require.Equal(t, "dense", entries[0].ContextMap()["backend"])
	require.NotEmpty(t, logs.FilterMessage("svd done").All())
}
