package matrix

import (
	"fmt"

	"github.com/dmitrymomot/physkit/pkg/quantity"
	"github.com/dmitrymomot/physkit/pkg/vector"
)

// Entries of a square matrix are assumed to share one dimension. Mixed
// dimensions give results without physical meaning, and fail only where two
// terms of different dimension are summed.

// Trace returns the sum of the diagonal entries.
func (m Matrix[T]) Trace() (T, error) {
	var zero T
	if err := m.checkSquare(); err != nil {
		return zero, err
	}
	acc := m.at(0, 0)
	for i := 1; i < m.Rows(); i++ {
		var err error
		if acc, err = acc.Add(m.at(i, i)); err != nil {
			return zero, err
		}
	}
	return acc, nil
}

// Determinant uses closed forms up to 2×2 and Laplace expansion along
// column 0 above that. Terms are summed in ascending row order.
func (m Matrix[T]) Determinant() (T, error) {
	if err := m.checkSquare(); err != nil {
		var zero T
		return zero, err
	}
	return m.det()
}

func (m Matrix[T]) det() (T, error) {
	var zero T
	switch m.Rows() {
	case 1:
		return m.at(0, 0), nil
	case 2:
		return m.at(0, 0).Mul(m.at(1, 1)).Sub(m.at(0, 1).Mul(m.at(1, 0)))
	}
	var acc T
	for i := range m.Rows() {
		c, err := m.cofactor(i, 0)
		if err != nil {
			return zero, err
		}
		term := m.at(i, 0).Mul(c)
		if i == 0 {
			acc = term
			continue
		}
		if acc, err = acc.Add(term); err != nil {
			return zero, err
		}
	}
	return acc, nil
}

// Minor returns the matrix with row r and column c removed.
func (m Matrix[T]) Minor(r, c int) (Matrix[T], error) {
	if err := m.checkIndex(r, c); err != nil {
		return Matrix[T]{}, err
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return Matrix[T]{}, fmt.Errorf("%w: %dx%d has no minor", ErrShapeMismatch, m.Rows(), m.Cols())
	}
	return m.minor(r, c), nil
}

func (m Matrix[T]) minor(r, c int) Matrix[T] {
	cols := make([]vector.Vector[T], 0, len(m.cols)-1)
	for j, col := range m.cols {
		if j == c {
			continue
		}
		elems := make([]T, 0, col.Len()-1)
		for i := range col.Len() {
			if i != r {
				elems = append(elems, col.At(i))
			}
		}
		v, _ := vector.New(elems...)
		cols = append(cols, v)
	}
	return Matrix[T]{cols: cols}
}

// Cofactor returns (-1)^(r+c) times the determinant of Minor(r, c).
func (m Matrix[T]) Cofactor(r, c int) (T, error) {
	var zero T
	if err := m.checkSquare(); err != nil {
		return zero, err
	}
	if err := m.checkIndex(r, c); err != nil {
		return zero, err
	}
	if m.Rows() < 2 {
		return zero, fmt.Errorf("%w: 1x1 has no cofactor", ErrShapeMismatch)
	}
	return m.cofactor(r, c)
}

func (m Matrix[T]) cofactor(r, c int) (T, error) {
	d, err := m.minor(r, c).det()
	if err != nil {
		var zero T
		return zero, err
	}
	if (r+c)%2 == 1 {
		return d.Neg(), nil
	}
	return d, nil
}

// Adjoint returns the transposed matrix of cofactors. The adjoint of a
// 1×1 matrix is the dimensionless 1.
func (m Matrix[T]) Adjoint() (Matrix[T], error) {
	if err := m.checkSquare(); err != nil {
		return Matrix[T]{}, err
	}
	n := m.Rows()
	if n == 1 {
		e, err := m.at(0, 0).Pow(0)
		if err != nil {
			return Matrix[T]{}, err
		}
		one, _ := vector.New(e)
		return Matrix[T]{cols: []vector.Vector[T]{one}}, nil
	}
	// Column j of the adjoint holds the cofactors of row j.
	cols := make([]vector.Vector[T], n)
	for j := range n {
		elems := make([]T, n)
		for i := range n {
			c, err := m.cofactor(j, i)
			if err != nil {
				return Matrix[T]{}, err
			}
			elems[i] = c
		}
		cols[j], _ = vector.New(elems...)
	}
	return Matrix[T]{cols: cols}, nil
}

// Inverse returns Adjoint()/Determinant(). A zero determinant fails with
// quantity.ErrDivideByZero.
func (m Matrix[T]) Inverse() (Matrix[T], error) {
	d, err := m.Determinant()
	if err != nil {
		return Matrix[T]{}, err
	}
	if d.IsZero() {
		return Matrix[T]{}, fmt.Errorf("%w: singular matrix", quantity.ErrDivideByZero)
	}
	adj, err := m.Adjoint()
	if err != nil {
		return Matrix[T]{}, err
	}
	return adj.DivElement(d)
}

func (m Matrix[T]) checkSquare() error {
	if m.Cols() == 0 {
		return ErrEmpty
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("%w: %dx%d", ErrNotSquare, m.Rows(), m.Cols())
	}
	return nil
}
