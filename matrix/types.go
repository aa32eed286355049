// SPDX-License-Identifier: MIT

// Package matrix: domain-facing interfaces shared by every storage family.
// This file intentionally contains ONLY interfaces; concrete implementations
// live in dense.go, coo.go and csr.go, errors in errors.go, validators in
// validators.go per the global conventions.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) for Dense; sparse
// implementations may take O(nnz) for At/Set (documented per type).
// Clone is O(stored entries) for every family.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Adjacency is the capability set required by degree-based normalization:
// a square matrix that can report per-row sums, produce a diagonally
// augmented copy of itself, and rescale entries by an index-pair product.
//
// Implementations MUST preserve their representation family: AddDiagonal on
// a COO yields a COO, on a CSR yields a CSR, on a Dense yields a Dense.
// Sparse implementations MUST restrict ScaleOuter to stored entries only,
// leaving the nonzero pattern unchanged (entries that become exactly zero
// are not pruned).
type Adjacency interface {
	Matrix

	// Order returns n for an n×n matrix. Meaningful only when square;
	// callers are expected to run ValidateSquare first.
	Order() int

	// RowSums returns the weighted degree of each node: a fresh length-n
	// vector where entry i is the sum of all stored values in row i.
	// Duplicate coordinates (COO) accumulate.
	// Complexity: O(n²) dense, O(nnz) sparse.
	RowSums() []float64

	// AddDiagonal returns a NEW matrix of the same concrete family equal to
	// the receiver plus w·I. The receiver is never mutated.
	// Returns ErrNonSquare when the receiver is not square.
	// Complexity: O(n²) dense, O(nnz + n) sparse.
	AddDiagonal(w float64) (Adjacency, error)

	// ScaleOuter rescales the matrix in place: entry (i, j) becomes
	// scale[i] · a[i,j] · scale[j]. Sparse families touch stored entries
	// only. Returns ErrDimensionMismatch when len(scale) != Order(), and
	// ErrNonSquare when the receiver is not square.
	// Complexity: O(n²) dense, O(nnz) sparse.
	ScaleOuter(scale []float64) error
}
