// SPDX-License-Identifier: MIT

// Package matrix: Dense is a concrete, row-major implementation of the
// Adjacency interface, storing elements in a flat slice for performance and
// cache friendliness.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFrom builds a Dense from literal row slices.
// Stage 1 (Validate): at least one row; every row has equal, positive length.
// Stage 2 (Execute): copy rows into flat storage (inputs stay independent).
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	// Validate row count
	if len(rows) == 0 {
		return nil, ErrBadShape
	}
	// Validate column count against the first row
	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrBadShape
	}

	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		// Reject ragged input
		if len(row) != cols {
			return nil, ErrBadShape
		}
		data = append(data, row...)
	}

	return &Dense{r: len(rows), c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// Order returns the node count n; meaningful for square matrices.
// Complexity: O(1).
func (m *Dense) Order() int {
	return m.r
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed copy shared by Clone and AddDiagonal.
func (m *Dense) clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// RowSums returns the weighted degree vector: entry i is the sum of row i.
// Each row is a contiguous flat-slice window, summed via gonum floats.Sum
// for a deterministic left-to-right accumulation.
// Complexity: O(r*c) time, O(r) memory.
func (m *Dense) RowSums() []float64 {
	sums := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ { // fixed row order
		sums[i] = floats.Sum(m.data[i*m.c : (i+1)*m.c])
	}

	return sums
}

// AddDiagonal returns a new Dense equal to m + w·I.
// Stage 1 (Validate): receiver must be square.
// Stage 2 (Execute): deep-copy, then add w along the diagonal.
// The receiver is never mutated.
// Complexity: O(n²) time and memory.
func (m *Dense) AddDiagonal(w float64) (Adjacency, error) {
	// Enforce square shape before touching the diagonal
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	out := m.clone()
	var i int
	for i = 0; i < out.r; i++ { // single write per diagonal cell
		out.data[i*out.c+i] += w
	}

	return out, nil
}

// ScaleOuter rescales every entry in place: a[i,j] *= scale[i]·scale[j].
// Stage 1 (Validate): square receiver; scale length must equal Order().
// Stage 2 (Execute): flat nested loop in fixed i→j order.
// Complexity: O(n²) time, O(1) extra memory.
func (m *Dense) ScaleOuter(scale []float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateScaleLen(scale, m.r); err != nil {
		return err
	}

	var i, j int
	var si float64
	for i = 0; i < m.r; i++ { // fixed row loop
		si = scale[i] // hoist the row factor out of the inner loop
		for j = 0; j < m.c; j++ {
			m.data[i*m.c+j] *= si * scale[j]
		}
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
