package decomp_test

import (
	"fmt"

	"github.com/tenalg/tenalg/backend"
	"github.com/tenalg/tenalg/backend/dense"
	"github.com/tenalg/tenalg/decomp"
	"github.com/tenalg/tenalg/space"
	"github.com/tenalg/tenalg/tensor"
)

// ExampleSVD decomposes a diagonal matrix; its singular values are the
// diagonal magnitudes in descending order.
func ExampleSVD() {
	bk := dense.New()
	row, _ := space.NonSymmetric(2)
	col, _ := space.NonSymmetric(2)
	m, _ := tensor.FromValues(bk, []complex128{3, 0, 0, 4},
		[]*space.Space{row, col}, backend.Float64, []string{"p", "q"})

	opts := decomp.DefaultSVDOptions()
	opts.NewLabels = []string{"vR", "vL"}
	u, s, vh, _ := decomp.SVD(m, opts)

	vals, _ := s.Values()
	fmt.Println("bond dim:", s.Leg(0).Dim())
	fmt.Printf("singular values: %g %g\n", real(vals[0]), real(vals[1]))
	fmt.Println("U legs:", u.Labels())
	fmt.Println("Vh legs:", vh.Labels())
	// Output:
	// bond dim: 2
	// singular values: 4 3
	// U legs: [p vR]
	// Vh legs: [vL q]
}

// ExampleTruncateSVD keeps only the dominant singular value and reports
// the relative discarded weight.
func ExampleTruncateSVD() {
	bk := dense.New()
	row, _ := space.NonSymmetric(2)
	col, _ := space.NonSymmetric(2)
	m, _ := tensor.FromValues(bk, []complex128{4, 0, 0, 3},
		[]*space.Space{row, col}, backend.Float64, nil)

	u, s, vh, _ := decomp.SVD(m, decomp.DefaultSVDOptions())
	topts := decomp.DefaultTruncationOptions()
	topts.MaxBondDim = 1
	_, st, _, truncErr, _ := decomp.TruncateSVD(u, s, vh, topts)

	fmt.Println("kept:", st.Leg(0).Dim())
	fmt.Printf("truncation error: %.1f\n", truncErr)
	// Output:
	// kept: 1
	// truncation error: 0.6
}
