package backend

import "fmt"

// SVDAlgorithm identifies one of the closed set of SVD algorithm variants a
// backend may offer. Backends advertise their supported subset through
// SVDAlgorithms; requests are validated against that set before dispatch.
type SVDAlgorithm string

const (
	// SVDDefault lets the backend pick its preferred algorithm.
	SVDDefault SVDAlgorithm = ""

	// SVDGolubKahan is the classic bidiagonalization QR iteration ("gesvd").
	SVDGolubKahan SVDAlgorithm = "gesvd"

	// SVDDivideConquer is the divide-and-conquer variant ("gesdd").
	SVDDivideConquer SVDAlgorithm = "gesdd"

	// SVDJacobi is the one-sided Jacobi variant ("gesvdj"), offered by
	// accelerator backends.
	SVDJacobi SVDAlgorithm = "gesvdj"
)

// ValidateSVDAlgorithm checks alg against the backend's advertised set.
// SVDDefault always passes; anything else must be listed, otherwise
// ErrUnknownAlgorithm is returned and no dispatch may happen.
func ValidateSVDAlgorithm(b BlockBackend, alg SVDAlgorithm) error {
	if alg == SVDDefault {
		return nil
	}
	for _, a := range b.SVDAlgorithms() {
		if a == alg {
			return nil
		}
	}

	return fmt.Errorf("%q not in %v: %w", alg, b.SVDAlgorithms(), ErrUnknownAlgorithm)
}
