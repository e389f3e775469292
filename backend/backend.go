package backend

// Block is the opaque numeric payload of a tensor. Its concrete type is
// private to the backend that created it; passing a Block to a different
// backend fails with ErrBadBlock. A Block is exclusively owned by one
// tensor at a time and must not be operated on concurrently.
type Block any

// BlockBackend is the full numeric contract a backend implements. All
// methods are synchronous; any internal parallelism or device execution is
// the backend's own business. Methods never mutate their operands — every
// result is a fresh Block.
type BlockBackend interface {
	// Name identifies the backend in diagnostics, e.g. "dense".
	Name() string

	// --- introspection ---

	// BlockShape returns the axis sizes of a.
	BlockShape(a Block) ([]int, error)

	// BlockDtype returns the element kind of a.
	BlockDtype(a Block) (Dtype, error)

	// BlockItem extracts the single element of a size-1 block.
	BlockItem(a Block) (complex128, error)

	// BlockValues returns a flat row-major copy of a's elements.
	BlockValues(a Block) ([]complex128, error)

	// BlockToDtype converts a to the given element kind. Complex-to-real
	// conversion fails with ErrDtypeMismatch when imaginary parts are
	// non-negligible.
	BlockToDtype(a Block, dt Dtype) (Block, error)

	// BlockCopy returns an independent copy of a.
	BlockCopy(a Block) (Block, error)

	// --- structural ops ---

	// BlockTranspose permutes the axes of a.
	BlockTranspose(a Block, perm []int) (Block, error)

	// BlockReshape reinterprets a with a new shape of equal total size.
	BlockReshape(a Block, shape []int) (Block, error)

	// BlockCombineAxes merges the given contiguous-run target of axes into
	// one axis at the position of the first listed axis.
	BlockCombineAxes(a Block, axes []int) (Block, error)

	// BlockSplitAxis splits one axis into several axes of the given sizes.
	BlockSplitAxis(a Block, axis int, dims []int) (Block, error)

	// BlockTrace sums over paired axes (axes1[i] with axes2[i]) of equal size.
	BlockTrace(a Block, axes1, axes2 []int) (Block, error)

	// BlockSqueeze drops the listed axes, which must have size one.
	BlockSqueeze(a Block, axes []int) (Block, error)

	// BlockNarrow restricts one axis to [start, start+length).
	BlockNarrow(a Block, axis, start, length int) (Block, error)

	// --- arithmetic / contraction ---

	// BlockTdot contracts axesA of a against axesB of b (pairwise equal sizes).
	BlockTdot(a, b Block, axesA, axesB []int) (Block, error)

	// BlockConj returns the elementwise complex conjugate.
	BlockConj(a Block) (Block, error)

	// BlockOuter returns the outer (tensor) product of a and b.
	BlockOuter(a, b Block) (Block, error)

	// BlockInner returns ⟨a, b⟩ = Σ conj(a)·b over all elements of two
	// equal-shape blocks.
	BlockInner(a, b Block) (complex128, error)

	// BlockNorm returns the Frobenius norm of a.
	BlockNorm(a Block) (float64, error)

	// BlockAllClose reports elementwise approximate equality within
	// |x-y| ≤ atol + rtol·|y|.
	BlockAllClose(a, b Block, rtol, atol float64) (bool, error)

	// --- factorization ---

	// SVDAlgorithms advertises the supported SVD algorithm identifiers.
	SVDAlgorithms() []SVDAlgorithm

	// MatrixSVD factors a 2D block into U·diag(S)·Vh (thin form; S has
	// min(rows, cols) non-negative entries in descending order). The
	// algorithm must be SVDDefault or a member of SVDAlgorithms.
	MatrixSVD(a Block, alg SVDAlgorithm) (u, s, vh Block, err error)

	// MatrixExp returns the matrix exponential of a square 2D block.
	// Backends may decline with ErrUnsupported.
	MatrixExp(a Block) (Block, error)

	// MatrixLog returns the matrix (natural) logarithm of a square 2D
	// block. Backends may decline with ErrUnsupported.
	MatrixLog(a Block) (Block, error)

	// --- construction ---

	// ZeroBlock returns a zero-filled block.
	ZeroBlock(shape []int, dt Dtype) (Block, error)

	// EyeBlock returns the identity map on the product of legDims,
	// reshaped into the paired leg structure legDims + legDims.
	EyeBlock(legDims []int, dt Dtype) (Block, error)

	// DiagonalBlock embeds a 1D block as a square diagonal matrix.
	DiagonalBlock(diag Block) (Block, error)

	// RandomUniform fills a block with uniform draws from [0, 1).
	RandomUniform(shape []int, dt Dtype) (Block, error)

	// RandomNormal fills a block with normal draws of mean 0 and the given
	// spread.
	RandomNormal(shape []int, dt Dtype, sigma float64) (Block, error)

	// BlockFromValues builds a block from row-major raw values.
	BlockFromValues(values []complex128, shape []int, dt Dtype) (Block, error)
}
