package dense

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tenalg/tenalg/backend"
)

// symTol is the relative tolerance for accepting a matrix as symmetric in
// MatrixLog.
const symTol = 1e-10

// SVDAlgorithms advertises the single algorithm gonum's SVD implements.
func (d *Backend) SVDAlgorithms() []backend.SVDAlgorithm {
	return []backend.SVDAlgorithm{backend.SVDGolubKahan}
}

// asMatrix extracts a 2D real block as a gonum dense matrix. Complex
// blocks are declined with ErrUnsupported since gonum factorizations are
// real-valued.
func asMatrix(a backend.Block) (*mat.Dense, *block, error) {
	b, err := asBlock(a)
	if err != nil {
		return nil, nil, err
	}
	if len(b.shape) != 2 {
		return nil, nil, fmt.Errorf("%v block: %w", b.shape, backend.ErrNotMatrix)
	}
	if b.dt.IsComplex() {
		return nil, nil, fmt.Errorf("complex factorization: %w", backend.ErrUnsupported)
	}
	rows, cols := b.shape[0], b.shape[1]
	data := make([]float64, rows*cols)
	for i, v := range b.data {
		data[i] = real(v)
	}

	return mat.NewDense(rows, cols, data), b, nil
}

// fromMatrix wraps a gonum matrix back into a block of the given dtype.
func fromMatrix(m mat.Matrix, dt backend.Dtype) *block {
	rows, cols := m.Dims()
	out := newBlock([]int{rows, cols}, dt)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j] = roundToDtype(complex(m.At(i, j), 0), dt)
		}
	}

	return out
}

// MatrixSVD factors a real 2D block into U·diag(S)·Vh in thin form: U is
// rows×k, S holds k singular values in descending order, Vh is k×cols with
// k = min(rows, cols). Complex blocks are declined with ErrUnsupported.
func (d *Backend) MatrixSVD(a backend.Block, alg backend.SVDAlgorithm) (u, s, vh backend.Block, err error) {
	if err = backend.ValidateSVDAlgorithm(d, alg); err != nil {
		return nil, nil, nil, err
	}
	m, b, err := asMatrix(a)
	if err != nil {
		return nil, nil, nil, err
	}

	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return nil, nil, nil, fmt.Errorf("svd of %v block: %w", b.shape, ErrFactorization)
	}
	var um, vm mat.Dense
	svd.UTo(&um)
	svd.VTo(&vm)
	values := svd.Values(nil)

	sb := newBlock([]int{len(values)}, b.dt)
	for i, v := range values {
		sb.data[i] = roundToDtype(complex(v, 0), b.dt)
	}

	return fromMatrix(&um, b.dt), sb, fromMatrix(vm.T(), b.dt), nil
}

// MatrixExp returns the matrix exponential of a square real 2D block via
// gonum's scaling-and-squaring. Complex blocks are declined with
// ErrUnsupported.
func (d *Backend) MatrixExp(a backend.Block) (backend.Block, error) {
	m, b, err := asMatrix(a)
	if err != nil {
		return nil, err
	}
	if b.shape[0] != b.shape[1] {
		return nil, fmt.Errorf("exp of %v block: %w", b.shape, backend.ErrNotMatrix)
	}

	var out mat.Dense
	out.Exp(m)

	return fromMatrix(&out, b.dt), nil
}

// MatrixLog returns the matrix logarithm of a square real symmetric
// positive-definite 2D block, computed through the spectral decomposition
// V·log Λ·Vᵀ. Anything outside that class is declined with ErrUnsupported.
func (d *Backend) MatrixLog(a backend.Block) (backend.Block, error) {
	m, b, err := asMatrix(a)
	if err != nil {
		return nil, err
	}
	n := b.shape[0]
	if n != b.shape[1] {
		return nil, fmt.Errorf("log of %v block: %w", b.shape, backend.ErrNotMatrix)
	}

	scale := mat.Norm(m, 2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > symTol*math.Max(scale, 1) {
				return nil, fmt.Errorf("non-symmetric log: %w", backend.ErrUnsupported)
			}
		}
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, (m.At(i, j)+m.At(j, i))/2)
		}
	}
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, fmt.Errorf("eigendecomposition of %v block: %w", b.shape, ErrFactorization)
	}
	lambda := eig.Values(nil)
	for _, v := range lambda {
		if v <= 0 {
			return nil, fmt.Errorf("non-positive spectrum log: %w", backend.ErrUnsupported)
		}
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// V·log Λ·Vᵀ
	logL := mat.NewDiagDense(n, nil)
	for i, v := range lambda {
		logL.SetDiag(i, math.Log(v))
	}
	var tmp, out mat.Dense
	tmp.Mul(&vecs, logL)
	out.Mul(&tmp, vecs.T())

	return fromMatrix(&out, b.dt), nil
}
