package vector

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/physkit/pkg/dimension"
	"github.com/dmitrymomot/physkit/pkg/quantity"
)

// Vector is a fixed-length sequence of components of one element type.
// Its length is set at construction and never changes; every operation
// returns a new vector.
//
// Components are expected to share one dimension. Only operations that need
// it (Norm, Norm2, Dot, Versor, Theta) depend on that, and they report a
// dimension mismatch if it does not hold.
type Vector[T Element[T]] struct {
	c []T
}

// New builds a vector from its components.
func New[T Element[T]](components ...T) (Vector[T], error) {
	if len(components) == 0 {
		return Vector[T]{}, ErrEmpty
	}
	return Vector[T]{c: append([]T(nil), components...)}, nil
}

// Of builds a measurement vector from raw values expressed in u.
func Of(u quantity.Unit, values ...float64) (Vector[quantity.Measurement], error) {
	c := make([]quantity.Measurement, len(values))
	for i, v := range values {
		c[i] = quantity.New(v, u)
	}
	return New(c...)
}

// Len returns the number of components.
func (v Vector[T]) Len() int { return len(v.c) }

// At returns component i. It panics if i is out of range.
func (v Vector[T]) At(i int) T { return v.c[i] }

// Components returns a copy of the components.
func (v Vector[T]) Components() []T { return append([]T(nil), v.c...) }

// Dimension returns the dimension of the first component.
func (v Vector[T]) Dimension() dimension.Dimension {
	if len(v.c) == 0 {
		return dimension.Dimensionless
	}
	return v.c[0].Dimension()
}

// Validate checks that every component has the dimension of kind k.
func (v Vector[T]) Validate(k quantity.Kind) error {
	for i, c := range v.c {
		if err := k.Validate(c.Dimension()); err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
	}
	return nil
}

// Add returns the componentwise sum.
func (v Vector[T]) Add(o Vector[T]) (Vector[T], error) {
	return zipErr(v, o, func(a, b T) (T, error) { return a.Add(b) })
}

// Sub returns the componentwise difference.
func (v Vector[T]) Sub(o Vector[T]) (Vector[T], error) {
	return zipErr(v, o, func(a, b T) (T, error) { return a.Sub(b) })
}

// Mul returns the componentwise product.
func (v Vector[T]) Mul(o Vector[T]) (Vector[T], error) {
	return zipErr(v, o, func(a, b T) (T, error) { return a.Mul(b), nil })
}

// Div returns the componentwise quotient.
func (v Vector[T]) Div(o Vector[T]) (Vector[T], error) {
	return zipErr(v, o, func(a, b T) (T, error) { return a.Div(b) })
}

// AddElement adds e to every component.
func (v Vector[T]) AddElement(e T) (Vector[T], error) {
	return v.applyErr(func(c T) (T, error) { return c.Add(e) })
}

// SubElement subtracts e from every component.
func (v Vector[T]) SubElement(e T) (Vector[T], error) {
	return v.applyErr(func(c T) (T, error) { return c.Sub(e) })
}

// AddMeasurement adds an exact measurement to every component.
func (v Vector[T]) AddMeasurement(m quantity.Measurement) (Vector[T], error) {
	return v.applyErr(func(c T) (T, error) {
		e, err := exact(c, m)
		if err != nil {
			return c, err
		}
		return c.Add(e)
	})
}

// SubMeasurement subtracts an exact measurement from every component.
func (v Vector[T]) SubMeasurement(m quantity.Measurement) (Vector[T], error) {
	return v.applyErr(func(c T) (T, error) {
		e, err := exact(c, m)
		if err != nil {
			return c, err
		}
		return c.Sub(e)
	})
}

// AddScalar adds a plain number to every component. Only dimensionless
// components accept it.
func (v Vector[T]) AddScalar(f float64) (Vector[T], error) {
	return v.AddMeasurement(quantity.Scalar(f))
}

// SubScalar subtracts a plain number from every component.
func (v Vector[T]) SubScalar(f float64) (Vector[T], error) {
	return v.SubMeasurement(quantity.Scalar(f))
}

// MulElement multiplies every component by e.
func (v Vector[T]) MulElement(e T) Vector[T] {
	return v.apply(func(c T) T { return c.Mul(e) })
}

// DivElement divides every component by e.
func (v Vector[T]) DivElement(e T) (Vector[T], error) {
	return v.applyErr(func(c T) (T, error) { return c.Div(e) })
}

// MulMeasurement multiplies every component by an exact measurement.
func (v Vector[T]) MulMeasurement(m quantity.Measurement) Vector[T] {
	return v.apply(func(c T) T { return c.MulMeasurement(m) })
}

// DivMeasurement divides every component by an exact measurement.
func (v Vector[T]) DivMeasurement(m quantity.Measurement) (Vector[T], error) {
	return v.applyErr(func(c T) (T, error) { return c.DivMeasurement(m) })
}

// Scale multiplies every component by a plain number.
func (v Vector[T]) Scale(f float64) Vector[T] {
	return v.apply(func(c T) T { return c.Scale(f) })
}

// DivScalar divides every component by a plain number.
func (v Vector[T]) DivScalar(f float64) (Vector[T], error) {
	return v.DivMeasurement(quantity.Scalar(f))
}

func (v Vector[T]) Neg() Vector[T] {
	return v.apply(func(c T) T { return c.Neg() })
}

// Equal reports whether both vectors have the same length and pairwise Equal components.
func (v Vector[T]) Equal(o Vector[T]) bool {
	if len(v.c) != len(o.c) {
		return false
	}
	for i := range v.c {
		if !v.c[i].Equal(o.c[i]) {
			return false
		}
	}
	return true
}

// ValuesAs returns the component values expressed in u.
func (v Vector[T]) ValuesAs(u quantity.Unit) ([]float64, error) {
	out := make([]float64, len(v.c))
	for i, c := range v.c {
		if c.Dimension() != u.Dimension() {
			return nil, fmt.Errorf("component %d: %w: cannot express %q in %q",
				i, quantity.ErrDimensionMismatch, c.Dimension(), u.Symbol())
		}
		out[i] = c.Value() / u.Multiplier()
	}
	return out, nil
}

// String renders the components as "(a, b, c)".
func (v Vector[T]) String() string {
	parts := make([]string, len(v.c))
	for i, c := range v.c {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// exact converts m to the element type of like, without uncertainty.
func exact[T Element[T]](like T, m quantity.Measurement) (T, error) {
	one, err := like.Pow(0)
	if err != nil {
		return like, err
	}
	return one.MulMeasurement(m), nil
}

func (v Vector[T]) apply(fn func(T) T) Vector[T] {
	out := make([]T, len(v.c))
	for i, c := range v.c {
		out[i] = fn(c)
	}
	return Vector[T]{c: out}
}

func (v Vector[T]) applyErr(fn func(T) (T, error)) (Vector[T], error) {
	out := make([]T, len(v.c))
	for i, c := range v.c {
		r, err := fn(c)
		if err != nil {
			return Vector[T]{}, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = r
	}
	return Vector[T]{c: out}, nil
}

func zipErr[T Element[T]](v, o Vector[T], fn func(T, T) (T, error)) (Vector[T], error) {
	if len(v.c) != len(o.c) {
		return Vector[T]{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(v.c), len(o.c))
	}
	out := make([]T, len(v.c))
	for i := range v.c {
		r, err := fn(v.c[i], o.c[i])
		if err != nil {
			return Vector[T]{}, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = r
	}
	return Vector[T]{c: out}, nil
}
