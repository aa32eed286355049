// SPDX-License-Identifier: MIT

// Package matrix: converters between storage families and into gonum/mat.
//
// Purpose:
//   - Move a matrix across representations without touching the source
//     (every converter allocates a fresh result).
//   - Bridge into gonum for downstream linear algebra (eigen/SVD/products)
//     once preprocessing is done.
//
// Determinism:
//   - ToCSR sorts triplets by (row, col) and merges duplicates by summation,
//     so the output is canonical regardless of append order.
//   - Every other converter preserves the source's stored order.
package matrix

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ToCSR converts a coordinate matrix into canonical compressed-sparse-row
// form: triplets sorted by (row, col), duplicate coordinates merged by
// summation (the COO summing semantics made explicit).
// Stage 1 (Prepare): build a permutation of stored entries sorted by
// (row, col).
// Stage 2 (Execute): emit entries in order, folding equal coordinates.
// Complexity: O(nnz·log nnz) time, O(nnz + n) memory.
func (m *COO) ToCSR() *CSR {
	nnz := len(m.vals)

	// Sort a permutation instead of the triplets themselves (source untouched)
	ord := make([]int, nnz)
	for k := range ord {
		ord[k] = k
	}
	sort.Slice(ord, func(a, b int) bool {
		ka, kb := ord[a], ord[b]
		if m.rows[ka] != m.rows[kb] {
			return m.rows[ka] < m.rows[kb]
		}
		return m.cols[ka] < m.cols[kb]
	})

	out := &CSR{
		n:      m.n,
		indptr: make([]int, m.n+1),
		cols:   make([]int, 0, nnz),
		vals:   make([]float64, 0, nnz),
	}

	prevRow, prevCol := -1, -1
	for _, k := range ord {
		r, c, v := m.rows[k], m.cols[k], m.vals[k]
		if r == prevRow && c == prevCol {
			// Duplicate coordinate: fold into the last emitted entry
			out.vals[len(out.vals)-1] += v
			continue
		}
		out.cols = append(out.cols, c)
		out.vals = append(out.vals, v)
		out.indptr[r+1]++ // per-row count; prefix-summed below
		prevRow, prevCol = r, c
	}

	// Prefix-sum the per-row counts into offsets
	for i := 1; i <= m.n; i++ {
		out.indptr[i] += out.indptr[i-1]
	}

	return out
}

// ToCOO converts a CSR matrix into coordinate form, one triplet per stored
// entry in row-major order.
// Complexity: O(nnz) time and memory.
func (m *CSR) ToCOO() *COO {
	out := &COO{
		n:    m.n,
		rows: make([]int, 0, len(m.vals)),
		cols: make([]int, 0, len(m.vals)),
		vals: make([]float64, 0, len(m.vals)),
	}

	var i, k int
	for i = 0; i < m.n; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			out.rows = append(out.rows, i)
			out.cols = append(out.cols, m.cols[k])
			out.vals = append(out.vals, m.vals[k])
		}
	}

	return out
}

// ToDense materializes a coordinate matrix as a Dense; duplicate
// coordinates accumulate.
// Complexity: O(n² + nnz) time, O(n²) memory.
func (m *COO) ToDense() *Dense {
	out := &Dense{r: m.n, c: m.n, data: make([]float64, m.n*m.n)}
	for k := range m.vals {
		out.data[m.rows[k]*m.n+m.cols[k]] += m.vals[k]
	}

	return out
}

// ToDense materializes a CSR matrix as a Dense.
// Complexity: O(n² + nnz) time, O(n²) memory.
func (m *CSR) ToDense() *Dense {
	out := &Dense{r: m.n, c: m.n, data: make([]float64, m.n*m.n)}
	var i, k int
	for i = 0; i < m.n; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			out.data[i*m.n+m.cols[k]] += m.vals[k]
		}
	}

	return out
}

// ToGonum exports the Dense into a gonum mat.Dense backed by a fresh copy of
// the data, for downstream linear algebra (eigen, SVD, products).
// Complexity: O(r*c) time and memory.
func (m *Dense) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// DenseFromGonum imports any gonum mat.Matrix into a Dense copy.
// Stage 1 (Validate): dimensions must be positive.
// Stage 2 (Execute): element-wise copy in fixed i→j order.
// Complexity: O(r*c) time and memory.
func DenseFromGonum(src mat.Matrix) (*Dense, error) {
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}

	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}
