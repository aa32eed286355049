// SPDX-License-Identifier: MIT

// Package matrix: CSR is a compressed-sparse-row implementation of the
// Adjacency interface. Row i owns the half-open stored-entry window
// indptr[i]..indptr[i+1]; columns are strictly increasing inside each row,
// so a coordinate is stored at most once (no duplicate semantics here —
// build via (*COO).ToCSR to merge duplicates first).
package matrix

import (
	"fmt"
	"sort"
)

// csrErrorf wraps an underlying error with CSR method context.
func csrErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, row, col, err)
}

// CSR is an n×n sparse matrix in compressed-sparse-row format.
type CSR struct {
	n      int       // square order
	indptr []int     // length n+1; row i spans indptr[i]..indptr[i+1]
	cols   []int     // column index per stored entry, sorted within each row
	vals   []float64 // value per stored entry
}

// NewCSR builds a CSR from raw compressed arrays, deep-copying all three.
// Stage 1 (Validate): n > 0; indptr has length n+1, starts at 0, is
// non-decreasing and ends at len(cols) == len(vals); columns are in range
// and strictly increasing within each row.
// Stage 2 (Execute): copy the arrays so the caller keeps ownership.
// Errors: ErrBadShape on malformed structure, ErrOutOfRange on bad columns.
// Complexity: O(nnz + n) time and memory.
func NewCSR(n int, indptr, cols []int, vals []float64) (*CSR, error) {
	// Validate order and array shapes
	if n <= 0 || len(indptr) != n+1 || indptr[0] != 0 {
		return nil, ErrBadShape
	}
	if len(cols) != len(vals) || indptr[n] != len(cols) {
		return nil, ErrBadShape
	}

	// Validate row windows and column ordering
	var i, k int
	for i = 0; i < n; i++ {
		if indptr[i] > indptr[i+1] {
			return nil, ErrBadShape // row window must be non-decreasing
		}
		for k = indptr[i]; k < indptr[i+1]; k++ {
			if cols[k] < 0 || cols[k] >= n {
				return nil, ErrOutOfRange
			}
			if k > indptr[i] && cols[k] <= cols[k-1] {
				return nil, ErrBadShape // strictly increasing columns per row
			}
		}
	}

	out := &CSR{
		n:      n,
		indptr: make([]int, len(indptr)),
		cols:   make([]int, len(cols)),
		vals:   make([]float64, len(vals)),
	}
	copy(out.indptr, indptr)
	copy(out.cols, cols)
	copy(out.vals, vals)

	return out, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *CSR) Rows() int {
	return m.n
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *CSR) Cols() int {
	return m.n
}

// Order returns the node count n.
// Complexity: O(1).
func (m *CSR) Order() int {
	return m.n
}

// NNZ returns the number of stored entries.
// Complexity: O(1).
func (m *CSR) NNZ() int {
	return len(m.vals)
}

// find locates the stored-entry index of (row, col) inside row's window via
// binary search over the sorted column slice.
// Returns (index, true) when stored, (insertion point, false) otherwise.
// Complexity: O(log row-nnz).
func (m *CSR) find(row, col int) (int, bool) {
	lo, hi := m.indptr[row], m.indptr[row+1]
	// Binary search within the row window
	k := lo + sort.SearchInts(m.cols[lo:hi], col)
	if k < hi && m.cols[k] == col {
		return k, true
	}

	return k, false
}

// At returns the stored value at (row, col), or 0 when the coordinate is
// outside the stored pattern.
// Complexity: O(log row-nnz).
func (m *CSR) At(row, col int) (float64, error) {
	// Validate indices
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, csrErrorf("At", row, col, ErrOutOfRange)
	}

	if k, ok := m.find(row, col); ok {
		return m.vals[k], nil
	}

	return 0, nil
}

// Set assigns v at (row, col): overwrites a stored entry in place, or
// splices a new entry into the row window (shifting later rows).
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): overwrite fast path, else splice + indptr fix-up.
// Complexity: O(log row-nnz) overwrite, O(nnz + n) insertion.
func (m *CSR) Set(row, col int, v float64) error {
	// Validate indices
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return csrErrorf("Set", row, col, ErrOutOfRange)
	}

	k, ok := m.find(row, col)
	if ok {
		m.vals[k] = v // overwrite without structural change
		return nil
	}

	// Splice the new entry at position k
	m.cols = append(m.cols, 0)
	copy(m.cols[k+1:], m.cols[k:])
	m.cols[k] = col
	m.vals = append(m.vals, 0)
	copy(m.vals[k+1:], m.vals[k:])
	m.vals[k] = v
	// Every row after `row` starts one entry later now
	for i := row + 1; i <= m.n; i++ {
		m.indptr[i]++
	}

	return nil
}

// Clone returns a deep copy of the CSR matrix.
// Complexity: O(nnz + n) time and memory.
func (m *CSR) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed copy shared by Clone and converters.
func (m *CSR) clone() *CSR {
	out := &CSR{
		n:      m.n,
		indptr: make([]int, len(m.indptr)),
		cols:   make([]int, len(m.cols)),
		vals:   make([]float64, len(m.vals)),
	}
	copy(out.indptr, m.indptr)
	copy(out.cols, m.cols)
	copy(out.vals, m.vals)

	return out
}

// RowSums returns the weighted degree vector.
// Complexity: O(nnz) time, O(n) memory.
func (m *CSR) RowSums() []float64 {
	sums := make([]float64, m.n)
	var i, k int
	for i = 0; i < m.n; i++ { // fixed row order
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			sums[i] += m.vals[k]
		}
	}

	return sums
}

// AddDiagonal returns a new CSR equal to m + w·I.
// Stage 1 (Execute): walk each row once, adding w into a stored (i,i) entry
// or emitting a fresh diagonal entry at its sorted column position.
// The receiver is never mutated; CSR is square by construction.
// Complexity: O(nnz + n) time and memory.
func (m *CSR) AddDiagonal(w float64) (Adjacency, error) {
	if w == 0 {
		return m.clone(), nil // fresh copy, unchanged structure
	}

	out := &CSR{
		n:      m.n,
		indptr: make([]int, m.n+1),
		cols:   make([]int, 0, len(m.cols)+m.n),
		vals:   make([]float64, 0, len(m.vals)+m.n),
	}

	var i, k int
	var placed bool
	for i = 0; i < m.n; i++ {
		placed = false // diagonal not yet emitted for this row
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			switch {
			case m.cols[k] == i:
				// Merge into the stored diagonal entry
				out.cols = append(out.cols, i)
				out.vals = append(out.vals, m.vals[k]+w)
				placed = true
			case m.cols[k] > i && !placed:
				// Emit the new diagonal entry before the first greater column
				out.cols = append(out.cols, i)
				out.vals = append(out.vals, w)
				placed = true
				fallthrough
			default:
				out.cols = append(out.cols, m.cols[k])
				out.vals = append(out.vals, m.vals[k])
			}
		}
		if !placed {
			// Row had no entry at or past the diagonal
			out.cols = append(out.cols, i)
			out.vals = append(out.vals, w)
		}
		out.indptr[i+1] = len(out.cols)
	}

	return out, nil
}

// ScaleOuter rescales stored entries in place:
// vals[k] *= scale[i]·scale[cols[k]] for every entry k of row i. The stored
// pattern is untouched; entries that become exactly zero are kept.
// Stage 1 (Validate): scale length must equal Order().
// Stage 2 (Execute): row-major pass with the row factor hoisted.
// Complexity: O(nnz) time, O(1) extra memory.
func (m *CSR) ScaleOuter(scale []float64) error {
	if err := ValidateScaleLen(scale, m.n); err != nil {
		return err
	}

	var i, k int
	var si float64
	for i = 0; i < m.n; i++ {
		si = scale[i]
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			m.vals[k] *= si * scale[m.cols[k]]
		}
	}

	return nil
}
