// Package matrix offers square adjacency storage for graph preprocessing.
//
// The matrix package provides:
//
//   - Dense: a row-major flat-slice matrix with O(1) element access and
//     O(n²) memory, best for small or dense graphs.
//   - COO: coordinate (triplet) storage with O(1) appends and summing
//     semantics for duplicate coordinates, best for incremental ingestion.
//   - CSR: compressed sparse rows with sorted columns, best for repeated
//     row-wise traversal of a frozen structure.
//
// All three implement the Adjacency capability set — order, row sums,
// diagonal augmentation and symmetric index-pair scaling — so callers never
// inspect the concrete representation at runtime. Operations that produce a
// matrix always preserve the receiver's representation family.
//
// Converters (ToCSR, ToCOO, ToDense, ToGonum, DenseFromGonum) bridge between
// families and into gonum/mat for downstream linear algebra.
//
// See the examples in this package and normalize for usage patterns.
package matrix
