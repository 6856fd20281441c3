package quantity

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/physkit/pkg/dimension"
)

// Measurement is a value expressed in the coherent SI unit of its dimension.
// It is immutable: every operation returns a new Measurement.
//
// The zero value is a dimensionless zero. It is accepted by Add and Sub
// regardless of the other operand's dimension, so it can seed a sum.
type Measurement struct {
	value float64
	dim   dimension.Dimension
}

// New converts value expressed in u to its canonical form.
func New(value float64, u Unit) Measurement {
	return Measurement{value: value * u.Multiplier(), dim: u.dim}
}

// Scalar returns a dimensionless measurement.
func Scalar(value float64) Measurement {
	return Measurement{value: value}
}

// FromCanonical returns a measurement whose value is already expressed in
// the coherent SI unit of dim.
func FromCanonical(value float64, dim dimension.Dimension) Measurement {
	return Measurement{value: value, dim: dim}
}

// Value returns the canonical value.
func (m Measurement) Value() float64 { return m.value }

func (m Measurement) Dimension() dimension.Dimension { return m.dim }

// IsZero reports whether the canonical value is zero.
func (m Measurement) IsZero() bool { return m.value == 0 }

// ValueAs returns the value expressed in u.
func (m Measurement) ValueAs(u Unit) (float64, error) {
	if m.dim != u.dim {
		return 0, fmt.Errorf("%w: cannot express %q in %q", ErrDimensionMismatch, m.dim, u.symbol)
	}
	return m.value / u.Multiplier(), nil
}

// Add returns m + o.
func (m Measurement) Add(o Measurement) (Measurement, error) {
	dim, err := sumDimension(m.dim, m.isDefault(), o.dim, o.isDefault())
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: m.value + o.value, dim: dim}, nil
}

// Sub returns m - o.
func (m Measurement) Sub(o Measurement) (Measurement, error) {
	dim, err := sumDimension(m.dim, m.isDefault(), o.dim, o.isDefault())
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: m.value - o.value, dim: dim}, nil
}

// Mul returns m * o.
func (m Measurement) Mul(o Measurement) Measurement {
	return Measurement{value: m.value * o.value, dim: m.dim.Multiply(o.dim)}
}

// Div returns m / o. Fails with ErrDivideByZero when o is zero.
func (m Measurement) Div(o Measurement) (Measurement, error) {
	if o.value == 0 {
		return Measurement{}, fmt.Errorf("%w: %s / %s", ErrDivideByZero, m, o)
	}
	return Measurement{value: m.value / o.value, dim: m.dim.Divide(o.dim)}, nil
}

// MulMeasurement is Mul. It lets Measurement and Uncertain share one method set.
func (m Measurement) MulMeasurement(o Measurement) Measurement { return m.Mul(o) }

// DivMeasurement is Div. It lets Measurement and Uncertain share one method set.
func (m Measurement) DivMeasurement(o Measurement) (Measurement, error) { return m.Div(o) }

// Scale multiplies the value by a plain number.
func (m Measurement) Scale(f float64) Measurement {
	return Measurement{value: m.value * f, dim: m.dim}
}

// Inv returns 1/m.
func (m Measurement) Inv() (Measurement, error) {
	return Scalar(1).Div(m)
}

func (m Measurement) Neg() Measurement {
	return Measurement{value: -m.value, dim: m.dim}
}

func (m Measurement) Abs() Measurement {
	return Measurement{value: math.Abs(m.value), dim: m.dim}
}

// Equal reports whether both measurements have the same dimension and
// canonical values that agree up to floating-point noise.
func (m Measurement) Equal(o Measurement) bool {
	return m.dim == o.dim && roughlyEqual(m.value, o.value)
}

// Compare returns -1, 0 or +1. Values that are Equal compare as 0.
func (m Measurement) Compare(o Measurement) (int, error) {
	if m.dim != o.dim {
		return 0, mismatch(m.dim, o.dim)
	}
	switch {
	case roughlyEqual(m.value, o.value):
		return 0, nil
	case m.value < o.value:
		return -1, nil
	default:
		return 1, nil
	}
}

// Less reports m < o, comparing canonical values directly.
func (m Measurement) Less(o Measurement) (bool, error) {
	if m.dim != o.dim {
		return false, mismatch(m.dim, o.dim)
	}
	return m.value < o.value, nil
}

// Greater reports m > o, comparing canonical values directly.
func (m Measurement) Greater(o Measurement) (bool, error) {
	return o.Less(m)
}

// LessEqual reports m < o or m Equal o.
func (m Measurement) LessEqual(o Measurement) (bool, error) {
	c, err := m.Compare(o)
	return err == nil && c <= 0, err
}

// GreaterEqual reports m > o or m Equal o.
func (m Measurement) GreaterEqual(o Measurement) (bool, error) {
	c, err := m.Compare(o)
	return err == nil && c >= 0, err
}

// DropAngle removes the radian tag from the dimension.
func (m Measurement) DropAngle() Measurement {
	return Measurement{value: m.value, dim: m.dim.WithoutAngle()}
}

func (m Measurement) isDefault() bool {
	return m == Measurement{}
}

// sumDimension resolves the dimension of a sum or difference.
// A default (zero value) operand adopts the other operand's dimension.
func sumDimension(a dimension.Dimension, aDefault bool, b dimension.Dimension, bDefault bool) (dimension.Dimension, error) {
	switch {
	case a == b:
		return a, nil
	case aDefault:
		return b, nil
	case bDefault:
		return a, nil
	}
	return dimension.Dimension{}, mismatch(a, b)
}
