// Package symmetry_test provides runnable examples for the sector algebra.
// Each example runs via "go test -run Example", showing code plus expected
// output.
package symmetry_test

import (
	"fmt"

	"github.com/tenalg/tenalg/symmetry"
)

// ExampleSU2Symmetry_FusionOutcomes demonstrates the triangle rule for two
// spin-1 inputs (jj=2): the product decomposes into spin 0, 1, and 2.
func ExampleSU2Symmetry_FusionOutcomes() {
	out, err := symmetry.SU2.FusionOutcomes(symmetry.Sec(2), symmetry.Sec(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range out {
		fmt.Println(symmetry.SU2.SectorStr(s))
	}
	// Output:
	// J=0
	// J=1
	// J=2
}

// ExampleProduct demonstrates combining ℤ₂ with U(1): sectors become
// two-slot tuples and the trivial sector is the tuple of factor trivials.
func ExampleProduct() {
	p, err := symmetry.Product(symmetry.Z2, symmetry.U1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.GroupName())
	fmt.Println(p.TrivialSector())

	out, _ := p.FusionOutcomes(symmetry.Sec(1, 2), symmetry.Sec(1, -1))
	fmt.Println(out[0])
	// Output:
	// ℤ₂ ⨉ U(1)
	// [0, 0]
	// [0, 1]
}
