package vector

import (
	"fmt"

	"github.com/dmitrymomot/physkit/pkg/quantity"
)

// Dot returns the scalar product. Terms are summed in ascending index order.
func (v Vector[T]) Dot(o Vector[T]) (T, error) {
	var zero T
	if len(v.c) != len(o.c) {
		return zero, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(v.c), len(o.c))
	}
	return sum(len(v.c), func(i int) T { return v.c[i].Mul(o.c[i]) })
}

// Cross returns the generalized cross product, where component i is
// v[i+1]*o[i+2] - v[i+2]*o[i+1] with indices taken modulo the length.
// For three components this is the usual vector product.
func (v Vector[T]) Cross(o Vector[T]) (Vector[T], error) {
	n := len(v.c)
	if n == 0 {
		return Vector[T]{}, ErrEmpty
	}
	if n != len(o.c) {
		return Vector[T]{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(o.c))
	}
	out := make([]T, n)
	for i := range n {
		j, k := (i+1)%n, (i+2)%n
		r, err := v.c[j].Mul(o.c[k]).Sub(v.c[k].Mul(o.c[j]))
		if err != nil {
			return Vector[T]{}, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = r
	}
	return Vector[T]{c: out}, nil
}

// Norm2 returns the squared Euclidean norm.
func (v Vector[T]) Norm2() (T, error) {
	return sum(len(v.c), func(i int) T { return v.c[i].Square() })
}

// Norm returns the Euclidean norm.
func (v Vector[T]) Norm() (T, error) {
	n2, err := v.Norm2()
	if err != nil {
		var zero T
		return zero, err
	}
	return n2.Sqrt()
}

// Versor returns the unit vector with the same direction. The components
// of the result are dimensionless.
func (v Vector[T]) Versor() (Vector[T], error) {
	n, err := v.Norm()
	if err != nil {
		return Vector[T]{}, err
	}
	if n.IsZero() {
		return Vector[T]{}, fmt.Errorf("%w: zero vector has no direction", quantity.ErrDivideByZero)
	}
	return v.DivElement(n)
}

// Phi returns the azimuthal angle atan(y/x). It needs at least two components.
func (v Vector[T]) Phi() (T, error) {
	var zero T
	if len(v.c) < 2 {
		return zero, fmt.Errorf("%w: phi needs 2 components, got %d", ErrTooShort, len(v.c))
	}
	ratio, err := v.c[1].Div(v.c[0])
	if err != nil {
		return zero, err
	}
	return ratio.Atan()
}

// Theta returns the polar angle acos(z/|v|). It needs at least three
// components and returns an exact zero angle when z is zero.
func (v Vector[T]) Theta() (T, error) {
	var zero T
	if len(v.c) < 3 {
		return zero, fmt.Errorf("%w: theta needs 3 components, got %d", ErrTooShort, len(v.c))
	}
	z := v.c[2]
	if z.IsZero() {
		one, err := z.Pow(0)
		if err != nil {
			return zero, err
		}
		return one.Scale(0).Atan()
	}
	n, err := v.Norm()
	if err != nil {
		return zero, err
	}
	ratio, err := z.Div(n)
	if err != nil {
		return zero, err
	}
	return ratio.Acos()
}

func sum[T Element[T]](n int, term func(int) T) (T, error) {
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	acc := term(0)
	for i := 1; i < n; i++ {
		var err error
		if acc, err = acc.Add(term(i)); err != nil {
			var zero T
			return zero, fmt.Errorf("component %d: %w", i, err)
		}
	}
	return acc, nil
}
