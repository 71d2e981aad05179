// Package matrix provides the dense 2-D float64 matrix exchanged between
// calculators. Storage is row-major in a single flat slice.
package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
// or that input rows are ragged.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0 and rectangular")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrDimensionMismatch indicates incompatible dimensions between two operands.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int
	data []float64 // length == r*c
}

// NewDense creates an r×c matrix initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a matrix from row slices. All rows must have the same
// non-zero length.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m := &Dense{r: len(rows), c: cols, data: make([]float64, 0, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, i, len(row), cols)
		}
		m.data = append(m.data, row...)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexOutOfBounds, row, col, m.r, m.c)
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set writes the element at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// SameShape reports whether m and other have identical dimensions.
func (m *Dense) SameShape(other *Dense) bool {
	return m.r == other.r && m.c == other.c
}

// Sub returns a new matrix holding m - other element-wise. Both operands are
// left untouched.
func (m *Dense) Sub(other *Dense) (*Dense, error) {
	if !m.SameShape(other) {
		return nil, fmt.Errorf("%w: %dx%d - %dx%d", ErrDimensionMismatch, m.r, m.c, other.r, other.c)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := range m.data {
		out.data[i] = m.data[i] - other.data[i]
	}
	return out, nil
}

// Equal reports exact element-wise equality of two matrices of the same shape.
func (m *Dense) Equal(other *Dense) bool {
	if !m.SameShape(other) {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String renders the matrix row by row, for logs and CLI output.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]")
		if i < m.r-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
