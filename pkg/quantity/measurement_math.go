package quantity

import (
	"fmt"
	"math"
)

// Pow raises m to an integer power. A negative power of zero fails with
// ErrDivideByZero and an exponent overflow with ErrExponentOverflow.
func (m Measurement) Pow(n int) (Measurement, error) {
	if n < 0 && m.value == 0 {
		return Measurement{}, fmt.Errorf("%w: %s to the power %d", ErrDivideByZero, m, n)
	}
	dim, err := m.dim.Pow(n)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: math.Pow(m.value, float64(n)), dim: dim}, nil
}

// Square returns m*m.
func (m Measurement) Square() Measurement {
	return Measurement{value: m.value * m.value, dim: m.dim.Multiply(m.dim)}
}

// Root takes the n-th root. Fails with ErrInvalidRoot when the dimension has
// no such root and with ErrDomain for an even root of a negative value.
func (m Measurement) Root(n int) (Measurement, error) {
	dim, err := m.dim.Root(n)
	if err != nil {
		return Measurement{}, err
	}
	v, err := rootValue(m.value, n)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: v, dim: dim}, nil
}

// Sqrt is Root(2).
func (m Measurement) Sqrt() (Measurement, error) { return m.Root(2) }

// Cbrt is Root(3).
func (m Measurement) Cbrt() (Measurement, error) { return m.Root(3) }

func (m Measurement) apply(fn function) (Measurement, error) {
	if err := fn.check(m.value, m.dim); err != nil {
		return Measurement{}, err
	}
	return Measurement{value: fn.eval(m.value), dim: fn.out}, nil
}

// Exp, Log, Exp10 and Log10 take and return dimensionless measurements.
func (m Measurement) Exp() (Measurement, error)   { return m.apply(fnExp) }
func (m Measurement) Log() (Measurement, error)   { return m.apply(fnLog) }
func (m Measurement) Exp10() (Measurement, error) { return m.apply(fnExp10) }
func (m Measurement) Log10() (Measurement, error) { return m.apply(fnLog10) }

// Sin and the other direct trigonometric and hyperbolic functions require a
// radian argument and return a dimensionless measurement.
func (m Measurement) Sin() (Measurement, error)  { return m.apply(fnSin) }
func (m Measurement) Cos() (Measurement, error)  { return m.apply(fnCos) }
func (m Measurement) Tan() (Measurement, error)  { return m.apply(fnTan) }
func (m Measurement) Sinh() (Measurement, error) { return m.apply(fnSinh) }
func (m Measurement) Cosh() (Measurement, error) { return m.apply(fnCosh) }
func (m Measurement) Tanh() (Measurement, error) { return m.apply(fnTanh) }

// Asin and the other inverse functions require a dimensionless argument and
// return a measurement in radians.
func (m Measurement) Asin() (Measurement, error)  { return m.apply(fnAsin) }
func (m Measurement) Acos() (Measurement, error)  { return m.apply(fnAcos) }
func (m Measurement) Atan() (Measurement, error)  { return m.apply(fnAtan) }
func (m Measurement) Asinh() (Measurement, error) { return m.apply(fnAsinh) }
func (m Measurement) Acosh() (Measurement, error) { return m.apply(fnAcosh) }
func (m Measurement) Atanh() (Measurement, error) { return m.apply(fnAtanh) }
