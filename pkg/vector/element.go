package vector

import (
	"github.com/dmitrymomot/physkit/pkg/dimension"
	"github.com/dmitrymomot/physkit/pkg/quantity"
)

// Element is the arithmetic a vector component must provide.
// quantity.Measurement and quantity.Uncertain satisfy it.
type Element[T any] interface {
	Value() float64
	Dimension() dimension.Dimension
	IsZero() bool
	String() string

	Add(T) (T, error)
	Sub(T) (T, error)
	Mul(T) T
	Div(T) (T, error)
	MulMeasurement(quantity.Measurement) T
	DivMeasurement(quantity.Measurement) (T, error)
	Scale(float64) T
	Neg() T
	Inv() (T, error)
	Pow(int) (T, error)
	Square() T
	Sqrt() (T, error)
	Atan() (T, error)
	Acos() (T, error)
	Equal(T) bool
}

var (
	_ Element[quantity.Measurement] = quantity.Measurement{}
	_ Element[quantity.Uncertain]   = quantity.Uncertain{}
)
