package matrix

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/physkit/pkg/quantity"
	"github.com/dmitrymomot/physkit/pkg/vector"
)

// Matrix is an R×C matrix stored column-major as C vectors of length R.
type Matrix[T vector.Element[T]] struct {
	cols []vector.Vector[T]
}

// New builds a matrix from its columns. All columns must have the same length.
func New[T vector.Element[T]](columns ...vector.Vector[T]) (Matrix[T], error) {
	if len(columns) == 0 {
		return Matrix[T]{}, ErrEmpty
	}
	rows := columns[0].Len()
	for j, c := range columns {
		if c.Len() == 0 {
			return Matrix[T]{}, fmt.Errorf("column %d: %w", j, vector.ErrEmpty)
		}
		if c.Len() != rows {
			return Matrix[T]{}, fmt.Errorf("%w: column %d has %d rows, column 0 has %d", ErrShapeMismatch, j, c.Len(), rows)
		}
	}
	return Matrix[T]{cols: append([]vector.Vector[T](nil), columns...)}, nil
}

// FromRows builds a matrix from its rows.
func FromRows[T vector.Element[T]](rows ...vector.Vector[T]) (Matrix[T], error) {
	m, err := New(rows...)
	if err != nil {
		return Matrix[T]{}, err
	}
	return m.Transpose(), nil
}

// Identity returns the n×n dimensionless identity matrix.
func Identity(n int) (Matrix[quantity.Measurement], error) {
	if n < 1 {
		return Matrix[quantity.Measurement]{}, ErrEmpty
	}
	cols := make([]vector.Vector[quantity.Measurement], n)
	for j := range n {
		elems := make([]quantity.Measurement, n)
		for i := range n {
			elems[i] = quantity.Scalar(0)
		}
		elems[j] = quantity.Scalar(1)
		cols[j], _ = vector.New(elems...)
	}
	return Matrix[quantity.Measurement]{cols: cols}, nil
}

func (m Matrix[T]) Rows() int {
	if len(m.cols) == 0 {
		return 0
	}
	return m.cols[0].Len()
}

func (m Matrix[T]) Cols() int { return len(m.cols) }

// At returns the entry at row r, column c.
func (m Matrix[T]) At(r, c int) (T, error) {
	if err := m.checkIndex(r, c); err != nil {
		var zero T
		return zero, err
	}
	return m.at(r, c), nil
}

// Column returns column c.
func (m Matrix[T]) Column(c int) (vector.Vector[T], error) {
	if c < 0 || c >= m.Cols() {
		return vector.Vector[T]{}, fmt.Errorf("%w: column %d of %d", ErrOutOfRange, c, m.Cols())
	}
	return m.cols[c], nil
}

// Row returns row r.
func (m Matrix[T]) Row(r int) (vector.Vector[T], error) {
	if r < 0 || r >= m.Rows() {
		return vector.Vector[T]{}, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, r, m.Rows())
	}
	return m.row(r), nil
}

// Transpose swaps rows and columns.
func (m Matrix[T]) Transpose() Matrix[T] {
	out := make([]vector.Vector[T], m.Rows())
	for r := range out {
		out[r] = m.row(r)
	}
	return Matrix[T]{cols: out}
}

// Add returns the entrywise sum.
func (m Matrix[T]) Add(o Matrix[T]) (Matrix[T], error) {
	return m.zip(o, func(a, b vector.Vector[T]) (vector.Vector[T], error) { return a.Add(b) })
}

// Sub returns the entrywise difference.
func (m Matrix[T]) Sub(o Matrix[T]) (Matrix[T], error) {
	return m.zip(o, func(a, b vector.Vector[T]) (vector.Vector[T], error) { return a.Sub(b) })
}

// Scale multiplies every entry by a plain number.
func (m Matrix[T]) Scale(f float64) Matrix[T] {
	out := make([]vector.Vector[T], len(m.cols))
	for j, c := range m.cols {
		out[j] = c.Scale(f)
	}
	return Matrix[T]{cols: out}
}

// MulMeasurement multiplies every entry by an exact measurement.
func (m Matrix[T]) MulMeasurement(q quantity.Measurement) Matrix[T] {
	out := make([]vector.Vector[T], len(m.cols))
	for j, c := range m.cols {
		out[j] = c.MulMeasurement(q)
	}
	return Matrix[T]{cols: out}
}

// DivElement divides every entry by e.
func (m Matrix[T]) DivElement(e T) (Matrix[T], error) {
	out := make([]vector.Vector[T], len(m.cols))
	for j, c := range m.cols {
		d, err := c.DivElement(e)
		if err != nil {
			return Matrix[T]{}, fmt.Errorf("column %d: %w", j, err)
		}
		out[j] = d
	}
	return Matrix[T]{cols: out}, nil
}

// MulVector returns m·v. The length of v must equal the number of columns.
func (m Matrix[T]) MulVector(v vector.Vector[T]) (vector.Vector[T], error) {
	if m.Cols() == 0 {
		return vector.Vector[T]{}, ErrEmpty
	}
	if v.Len() != m.Cols() {
		return vector.Vector[T]{}, fmt.Errorf("%w: %dx%d matrix times vector of length %d",
			ErrShapeMismatch, m.Rows(), m.Cols(), v.Len())
	}
	acc := m.cols[0].MulElement(v.At(0))
	for k := 1; k < len(m.cols); k++ {
		var err error
		if acc, err = acc.Add(m.cols[k].MulElement(v.At(k))); err != nil {
			return vector.Vector[T]{}, fmt.Errorf("column %d: %w", k, err)
		}
	}
	return acc, nil
}

// Mul returns the matrix product m·o.
func (m Matrix[T]) Mul(o Matrix[T]) (Matrix[T], error) {
	if m.Cols() == 0 || o.Cols() == 0 {
		return Matrix[T]{}, ErrEmpty
	}
	if m.Cols() != o.Rows() {
		return Matrix[T]{}, fmt.Errorf("%w: %dx%d times %dx%d",
			ErrShapeMismatch, m.Rows(), m.Cols(), o.Rows(), o.Cols())
	}
	out := make([]vector.Vector[T], len(o.cols))
	for j, c := range o.cols {
		col, err := m.MulVector(c)
		if err != nil {
			return Matrix[T]{}, err
		}
		out[j] = col
	}
	return Matrix[T]{cols: out}, nil
}

// Equal reports whether both matrices have the same shape and Equal entries.
func (m Matrix[T]) Equal(o Matrix[T]) bool {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return false
	}
	for j := range m.cols {
		if !m.cols[j].Equal(o.cols[j]) {
			return false
		}
	}
	return true
}

// String renders the matrix row by row, e.g. "[(1 m, 2 m); (3 m, 4 m)]".
func (m Matrix[T]) String() string {
	rows := make([]string, m.Rows())
	for r := range rows {
		rows[r] = m.row(r).String()
	}
	return "[" + strings.Join(rows, "; ") + "]"
}

func (m Matrix[T]) at(r, c int) T { return m.cols[c].At(r) }

func (m Matrix[T]) row(r int) vector.Vector[T] {
	elems := make([]T, len(m.cols))
	for j, c := range m.cols {
		elems[j] = c.At(r)
	}
	v, _ := vector.New(elems...)
	return v
}

func (m Matrix[T]) checkIndex(r, c int) error {
	if r < 0 || r >= m.Rows() || c < 0 || c >= m.Cols() {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfRange, r, c, m.Rows(), m.Cols())
	}
	return nil
}

func (m Matrix[T]) zip(o Matrix[T], fn func(vector.Vector[T], vector.Vector[T]) (vector.Vector[T], error)) (Matrix[T], error) {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return Matrix[T]{}, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrShapeMismatch, m.Rows(), m.Cols(), o.Rows(), o.Cols())
	}
	out := make([]vector.Vector[T], len(m.cols))
	for j := range m.cols {
		c, err := fn(m.cols[j], o.cols[j])
		if err != nil {
			return Matrix[T]{}, fmt.Errorf("column %d: %w", j, err)
		}
		out[j] = c
	}
	return Matrix[T]{cols: out}, nil
}
