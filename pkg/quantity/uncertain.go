package quantity

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/physkit/pkg/dimension"
)

// Uncertain is a Measurement with a non-negative absolute uncertainty, both
// expressed in the coherent SI unit of the dimension.
//
// Add, Sub, Mul and Div combine uncertainties in quadrature, which assumes
// independent errors. The Simple variants sum them linearly and give the
// conservative bound for correlated errors.
type Uncertain struct {
	value       float64
	uncertainty float64
	dim         dimension.Dimension
}

// NewUncertain converts value ± uncertainty expressed in u to canonical form.
// Fails with ErrNegativeUncertainty when uncertainty is negative or NaN.
func NewUncertain(value, uncertainty float64, u Unit) (Uncertain, error) {
	if err := checkUncertainty(uncertainty); err != nil {
		return Uncertain{}, err
	}
	m := u.Multiplier()
	return Uncertain{value: value * m, uncertainty: uncertainty * m, dim: u.dim}, nil
}

// UncertainFromCanonical is NewUncertain for values already in canonical form.
func UncertainFromCanonical(value, uncertainty float64, dim dimension.Dimension) (Uncertain, error) {
	if err := checkUncertainty(uncertainty); err != nil {
		return Uncertain{}, err
	}
	return Uncertain{value: value, uncertainty: uncertainty, dim: dim}, nil
}

// Exact wraps a Measurement with zero uncertainty.
func Exact(m Measurement) Uncertain {
	return Uncertain{value: m.value, dim: m.dim}
}

func checkUncertainty(u float64) error {
	if !(u >= 0) {
		return fmt.Errorf("%w: got %g", ErrNegativeUncertainty, u)
	}
	return nil
}

// Value returns the canonical value.
func (x Uncertain) Value() float64 { return x.value }

// Uncertainty returns the canonical absolute uncertainty.
func (x Uncertain) Uncertainty() float64 { return x.uncertainty }

func (x Uncertain) Dimension() dimension.Dimension { return x.dim }

// Measurement drops the uncertainty.
func (x Uncertain) Measurement() Measurement {
	return Measurement{value: x.value, dim: x.dim}
}

// IsZero reports whether the canonical value is zero.
func (x Uncertain) IsZero() bool { return x.value == 0 }

// ValueAs returns the value expressed in u.
func (x Uncertain) ValueAs(u Unit) (float64, error) {
	return x.Measurement().ValueAs(u)
}

// UncertaintyAs returns the uncertainty expressed in u.
func (x Uncertain) UncertaintyAs(u Unit) (float64, error) {
	return FromCanonical(x.uncertainty, x.dim).ValueAs(u)
}

// WithUncertainty replaces the uncertainty with one expressed in u.
func (x Uncertain) WithUncertainty(uncertainty float64, u Unit) (Uncertain, error) {
	if x.dim != u.dim {
		return Uncertain{}, fmt.Errorf("%w: uncertainty in %q for %q", ErrDimensionMismatch, u.symbol, x.dim)
	}
	if err := checkUncertainty(uncertainty); err != nil {
		return Uncertain{}, err
	}
	x.uncertainty = uncertainty * u.Multiplier()
	return x, nil
}

// RelativeUncertainty returns uncertainty / |value|.
func (x Uncertain) RelativeUncertainty() (float64, error) {
	if x.value == 0 {
		return 0, fmt.Errorf("%w: relative uncertainty of a zero value", ErrDivideByZero)
	}
	return x.uncertainty / math.Abs(x.value), nil
}

// Weight returns the inverse variance 1/uncertainty².
// Fails with ErrDivideByZero for an exact value.
func (x Uncertain) Weight() (float64, error) {
	if x.uncertainty == 0 {
		return 0, fmt.Errorf("%w: weight of %s with zero uncertainty", ErrDivideByZero, x)
	}
	return 1 / (x.uncertainty * x.uncertainty), nil
}

// Add returns x + o with uncertainties combined in quadrature.
func (x Uncertain) Add(o Uncertain) (Uncertain, error) {
	dim, err := sumDimension(x.dim, x.isDefault(), o.dim, o.isDefault())
	if err != nil {
		return Uncertain{}, err
	}
	return Uncertain{value: x.value + o.value, uncertainty: math.Hypot(x.uncertainty, o.uncertainty), dim: dim}, nil
}

// Sub returns x - o with uncertainties combined in quadrature.
func (x Uncertain) Sub(o Uncertain) (Uncertain, error) {
	dim, err := sumDimension(x.dim, x.isDefault(), o.dim, o.isDefault())
	if err != nil {
		return Uncertain{}, err
	}
	return Uncertain{value: x.value - o.value, uncertainty: math.Hypot(x.uncertainty, o.uncertainty), dim: dim}, nil
}

// SimpleAdd returns x + o with uncertainties summed linearly.
func (x Uncertain) SimpleAdd(o Uncertain) (Uncertain, error) {
	dim, err := sumDimension(x.dim, x.isDefault(), o.dim, o.isDefault())
	if err != nil {
		return Uncertain{}, err
	}
	return Uncertain{value: x.value + o.value, uncertainty: x.uncertainty + o.uncertainty, dim: dim}, nil
}

// SimpleSub returns x - o with uncertainties summed linearly.
func (x Uncertain) SimpleSub(o Uncertain) (Uncertain, error) {
	dim, err := sumDimension(x.dim, x.isDefault(), o.dim, o.isDefault())
	if err != nil {
		return Uncertain{}, err
	}
	return Uncertain{value: x.value - o.value, uncertainty: x.uncertainty + o.uncertainty, dim: dim}, nil
}

// Mul returns x * o with relative uncertainties combined in quadrature.
func (x Uncertain) Mul(o Uncertain) Uncertain {
	// |xo|·sqrt((ux/x)²+(uo/o)²) without dividing by either value
	return Uncertain{
		value:       x.value * o.value,
		uncertainty: math.Hypot(x.uncertainty*o.value, x.value*o.uncertainty),
		dim:         x.dim.Multiply(o.dim),
	}
}

// Div returns x / o with relative uncertainties combined in quadrature.
func (x Uncertain) Div(o Uncertain) (Uncertain, error) {
	if o.value == 0 {
		return Uncertain{}, fmt.Errorf("%w: %s / %s", ErrDivideByZero, x, o)
	}
	return Uncertain{
		value:       x.value / o.value,
		uncertainty: math.Hypot(x.uncertainty/o.value, x.value*o.uncertainty/(o.value*o.value)),
		dim:         x.dim.Divide(o.dim),
	}, nil
}

// SimpleMul returns x * o with relative uncertainties summed linearly.
func (x Uncertain) SimpleMul(o Uncertain) Uncertain {
	return Uncertain{
		value:       x.value * o.value,
		uncertainty: math.Abs(x.uncertainty*o.value) + math.Abs(x.value*o.uncertainty),
		dim:         x.dim.Multiply(o.dim),
	}
}

// SimpleDiv returns x / o with relative uncertainties summed linearly.
func (x Uncertain) SimpleDiv(o Uncertain) (Uncertain, error) {
	if o.value == 0 {
		return Uncertain{}, fmt.Errorf("%w: %s / %s", ErrDivideByZero, x, o)
	}
	return Uncertain{
		value:       x.value / o.value,
		uncertainty: math.Abs(x.uncertainty/o.value) + math.Abs(x.value*o.uncertainty/(o.value*o.value)),
		dim:         x.dim.Divide(o.dim),
	}, nil
}

// MulMeasurement multiplies by an exact measurement.
func (x Uncertain) MulMeasurement(m Measurement) Uncertain {
	return Uncertain{
		value:       x.value * m.value,
		uncertainty: math.Abs(m.value) * x.uncertainty,
		dim:         x.dim.Multiply(m.dim),
	}
}

// DivMeasurement divides by an exact measurement.
func (x Uncertain) DivMeasurement(m Measurement) (Uncertain, error) {
	if m.value == 0 {
		return Uncertain{}, fmt.Errorf("%w: %s / %s", ErrDivideByZero, x, m)
	}
	return Uncertain{
		value:       x.value / m.value,
		uncertainty: x.uncertainty / math.Abs(m.value),
		dim:         x.dim.Divide(m.dim),
	}, nil
}

// Scale multiplies value and uncertainty by a plain number.
func (x Uncertain) Scale(f float64) Uncertain {
	return Uncertain{value: x.value * f, uncertainty: x.uncertainty * math.Abs(f), dim: x.dim}
}

// Inv returns 1/x.
func (x Uncertain) Inv() (Uncertain, error) {
	if x.value == 0 {
		return Uncertain{}, fmt.Errorf("%w: inverse of %s", ErrDivideByZero, x)
	}
	return Uncertain{
		value:       1 / x.value,
		uncertainty: x.uncertainty / (x.value * x.value),
		dim:         x.dim.Invert(),
	}, nil
}

func (x Uncertain) Neg() Uncertain {
	x.value = -x.value
	return x
}

func (x Uncertain) Abs() Uncertain {
	x.value = math.Abs(x.value)
	return x
}

// Equal reports whether the uncertainty bands of x and o overlap.
// Exact values fall back to Measurement equality.
func (x Uncertain) Equal(o Uncertain) bool {
	if x.dim != o.dim {
		return false
	}
	band := x.uncertainty + o.uncertainty
	if band == 0 {
		return roughlyEqual(x.value, o.value)
	}
	return math.Abs(x.value-o.value) <= band
}

// EqualMeasurement reports whether m lies within [value-uncertainty, value+uncertainty].
// Exact values fall back to Measurement equality.
func (x Uncertain) EqualMeasurement(m Measurement) bool {
	if x.dim != m.dim {
		return false
	}
	if x.uncertainty == 0 {
		return roughlyEqual(x.value, m.value)
	}
	return m.value >= x.value-x.uncertainty && m.value <= x.value+x.uncertainty
}

// Compare orders by value only; uncertainty bands are ignored.
func (x Uncertain) Compare(o Uncertain) (int, error) {
	return x.Measurement().Compare(o.Measurement())
}

// Less compares values only, ignoring uncertainty.
func (x Uncertain) Less(o Uncertain) (bool, error) {
	return x.Measurement().Less(o.Measurement())
}

// Greater compares values only, ignoring uncertainty.
func (x Uncertain) Greater(o Uncertain) (bool, error) {
	return x.Measurement().Greater(o.Measurement())
}

// LessEqual compares values only, ignoring uncertainty.
func (x Uncertain) LessEqual(o Uncertain) (bool, error) {
	return x.Measurement().LessEqual(o.Measurement())
}

// GreaterEqual compares values only, ignoring uncertainty.
func (x Uncertain) GreaterEqual(o Uncertain) (bool, error) {
	return x.Measurement().GreaterEqual(o.Measurement())
}

// DropAngle removes the radian tag from the dimension.
func (x Uncertain) DropAngle() Uncertain {
	x.dim = x.dim.WithoutAngle()
	return x
}

func (x Uncertain) isDefault() bool {
	return x == Uncertain{}
}
