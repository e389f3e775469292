// Package decomp orchestrates tensor decompositions: singular value
// decomposition with optional truncation, and the matrix exponential and
// logarithm of tensors viewed as endomorphisms.
//
// Every routine follows the same synchronous call chain: LegBipartition
// resolves which legs form the rows and columns of the matrix view,
// multi-leg groups are merged (and later split back), the numeric
// factorization is delegated to the tensor's backend, and the results are
// reassembled into tensors carrying the right leg spaces and labels. There
// is no internal concurrency, no caching and no retry; a call either fully
// succeeds with reassembled tensors or fails without producing a result.
//
// Backend limitations pass through unchanged: an unadvertised SVD algorithm
// fails with backend.ErrUnknownAlgorithm before dispatch, and a backend
// that declines a matrix-function primitive surfaces
// backend.ErrUnsupported. No automatic fallback happens at this layer.
//
// Options structs (SVDOptions, TruncationOptions) carry the tunables; their
// zero values are usable and the Default constructors spell the defaults
// out. Progress is reported through the optional zap logger in the options,
// at debug level only.
package decomp
