// SPDX-License-Identifier: MIT

// Package matrix: COO is a coordinate (triplet) sparse implementation of the
// Adjacency interface. Entries are stored as parallel row/col/value slices
// in append order; duplicate coordinates are legal and follow summing
// semantics (the logical value at (i,j) is the sum of every stored triplet
// at that coordinate), matching the usual coordinate-format convention.
package matrix

import "fmt"

// cooErrorf wraps an underlying error with COO method context.
func cooErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("COO.%s(%d,%d): %w", method, row, col, err)
}

// COO is an n×n sparse matrix in coordinate format.
// rows, cols and vals are parallel slices of equal length (one stored
// triplet per index). Append order is preserved; determinism of every
// traversal follows from that stable order.
type COO struct {
	n    int       // square order (rows == cols == n)
	rows []int     // row index per stored entry
	cols []int     // column index per stored entry
	vals []float64 // value per stored entry
}

// NewCOO creates an empty n×n coordinate matrix.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Finalize): return empty COO or ErrBadShape.
// Complexity: O(1) time and memory (slices grow on Append).
func NewCOO(n int) (*COO, error) {
	// Validate order
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &COO{n: n}, nil
}

// Append stores one triplet (row, col, v) without inspecting existing
// entries. Duplicates accumulate under summing semantics.
// Stage 1 (Validate): bounds check both indices.
// Stage 2 (Execute): push onto the parallel slices.
// Complexity: amortized O(1).
func (m *COO) Append(row, col int, v float64) error {
	// Validate row index
	if row < 0 || row >= m.n {
		return cooErrorf("Append", row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.n {
		return cooErrorf("Append", row, col, ErrOutOfRange)
	}

	// Push the triplet
	m.rows = append(m.rows, row)
	m.cols = append(m.cols, col)
	m.vals = append(m.vals, v)

	return nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *COO) Rows() int {
	return m.n
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *COO) Cols() int {
	return m.n
}

// Order returns the node count n.
// Complexity: O(1).
func (m *COO) Order() int {
	return m.n
}

// NNZ returns the number of stored triplets (duplicates counted).
// Complexity: O(1).
func (m *COO) NNZ() int {
	return len(m.vals)
}

// At returns the logical value at (row, col): the sum of every stored
// triplet at that coordinate, or 0 when none is stored.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): single scan over stored entries in append order.
// Complexity: O(nnz).
func (m *COO) At(row, col int) (float64, error) {
	// Validate indices
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, cooErrorf("At", row, col, ErrOutOfRange)
	}

	// Accumulate duplicates (summing semantics)
	var sum float64
	for k := range m.vals {
		if m.rows[k] == row && m.cols[k] == col {
			sum += m.vals[k]
		}
	}

	return sum, nil
}

// Set replaces the logical value at (row, col) with v: every stored triplet
// at that coordinate is dropped, then a single fresh triplet is appended.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): compact the parallel slices in place, then Append.
// Complexity: O(nnz).
func (m *COO) Set(row, col int, v float64) error {
	// Validate indices
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return cooErrorf("Set", row, col, ErrOutOfRange)
	}

	// Drop existing triplets at (row, col), keeping relative order of the rest
	w := 0 // write cursor
	for k := range m.vals {
		if m.rows[k] == row && m.cols[k] == col {
			continue // skip the coordinate being replaced
		}
		m.rows[w], m.cols[w], m.vals[w] = m.rows[k], m.cols[k], m.vals[k]
		w++
	}
	m.rows, m.cols, m.vals = m.rows[:w], m.cols[:w], m.vals[:w]

	// Store the replacement as one triplet
	m.rows = append(m.rows, row)
	m.cols = append(m.cols, col)
	m.vals = append(m.vals, v)

	return nil
}

// Clone returns a deep copy of the COO matrix.
// Complexity: O(nnz) time and memory.
func (m *COO) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed copy shared by Clone and AddDiagonal.
func (m *COO) clone() *COO {
	out := &COO{
		n:    m.n,
		rows: make([]int, len(m.rows)),
		cols: make([]int, len(m.cols)),
		vals: make([]float64, len(m.vals)),
	}
	copy(out.rows, m.rows)
	copy(out.cols, m.cols)
	copy(out.vals, m.vals)

	return out
}

// RowSums returns the weighted degree vector; duplicates accumulate.
// Complexity: O(nnz) time, O(n) memory.
func (m *COO) RowSums() []float64 {
	sums := make([]float64, m.n)
	for k := range m.vals { // stable append order
		sums[m.rows[k]] += m.vals[k]
	}

	return sums
}

// AddDiagonal returns a new COO equal to m + w·I.
// Stage 1 (Execute): deep-copy the triplets.
// Stage 2 (Execute): append one explicit (i,i,w) triplet per node when w≠0;
// under summing semantics this is exactly addition, with no merge scan.
// The receiver is never mutated. COO is square by construction, so no shape
// check is needed.
// Complexity: O(nnz + n) time and memory.
func (m *COO) AddDiagonal(w float64) (Adjacency, error) {
	out := m.clone()
	if w == 0 {
		return out, nil // nothing to add; still a fresh copy
	}

	var i int
	for i = 0; i < out.n; i++ { // one diagonal triplet per node
		out.rows = append(out.rows, i)
		out.cols = append(out.cols, i)
		out.vals = append(out.vals, w)
	}

	return out, nil
}

// ScaleOuter rescales stored entries in place:
// vals[k] *= scale[rows[k]]·scale[cols[k]]. The stored pattern is untouched;
// entries that become exactly zero are kept.
// Stage 1 (Validate): scale length must equal Order().
// Stage 2 (Execute): one pass over the triplets in append order.
// Complexity: O(nnz) time, O(1) extra memory.
func (m *COO) ScaleOuter(scale []float64) error {
	if err := ValidateScaleLen(scale, m.n); err != nil {
		return err
	}

	for k := range m.vals {
		m.vals[k] *= scale[m.rows[k]] * scale[m.cols[k]]
	}

	return nil
}
