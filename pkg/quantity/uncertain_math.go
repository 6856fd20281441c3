package quantity

import (
	"fmt"
	"math"
)

// propagate scales an uncertainty by a slope, keeping exact values exact
// even where the slope is infinite.
func propagate(slope, u float64) float64 {
	if u == 0 {
		return 0
	}
	return math.Abs(slope) * u
}

// Pow raises x to an integer power: σ' = |n·v^(n-1)|·σ.
// A negative power of zero fails with ErrDivideByZero.
func (x Uncertain) Pow(n int) (Uncertain, error) {
	if n == 0 {
		return Uncertain{value: 1}, nil
	}
	if n < 0 && x.value == 0 {
		return Uncertain{}, fmt.Errorf("%w: %s to the power %d", ErrDivideByZero, x, n)
	}
	dim, err := x.dim.Pow(n)
	if err != nil {
		return Uncertain{}, err
	}
	return Uncertain{
		value:       math.Pow(x.value, float64(n)),
		uncertainty: propagate(float64(n)*math.Pow(x.value, float64(n-1)), x.uncertainty),
		dim:         dim,
	}, nil
}

// Square returns x², propagating σ' = |2v|·σ.
func (x Uncertain) Square() Uncertain {
	return Uncertain{
		value:       x.value * x.value,
		uncertainty: propagate(2*x.value, x.uncertainty),
		dim:         x.dim.Multiply(x.dim),
	}
}

// Root takes the n-th root: σ' = |v^(1/n-1)/n|·σ.
// A non-exact zero has no finite slope and fails with ErrDomain.
func (x Uncertain) Root(n int) (Uncertain, error) {
	dim, err := x.dim.Root(n)
	if err != nil {
		return Uncertain{}, err
	}
	r, err := rootValue(x.value, n)
	if err != nil {
		return Uncertain{}, err
	}
	out := Uncertain{value: r, dim: dim}
	if x.uncertainty == 0 {
		return out, nil
	}
	if x.value == 0 {
		return Uncertain{}, fmt.Errorf("%w: derivative of root %d undefined at 0", ErrDomain, n)
	}
	// v^(1/n-1) == r/v
	out.uncertainty = propagate(r/(x.value*float64(n)), x.uncertainty)
	return out, nil
}

// Sqrt is Root(2).
func (x Uncertain) Sqrt() (Uncertain, error) { return x.Root(2) }

// Cbrt is Root(3).
func (x Uncertain) Cbrt() (Uncertain, error) { return x.Root(3) }

func (x Uncertain) apply(fn function) (Uncertain, error) {
	if err := fn.check(x.value, x.dim); err != nil {
		return Uncertain{}, err
	}
	out := Uncertain{value: fn.eval(x.value), dim: fn.out}
	if x.uncertainty == 0 {
		return out, nil
	}
	slope, err := fn.slope(x.value)
	if err != nil {
		return Uncertain{}, err
	}
	out.uncertainty = slope * x.uncertainty
	return out, nil
}

// Exp, Log, Exp10 and Log10 take and return dimensionless values.
func (x Uncertain) Exp() (Uncertain, error)   { return x.apply(fnExp) }
func (x Uncertain) Log() (Uncertain, error)   { return x.apply(fnLog) }
func (x Uncertain) Exp10() (Uncertain, error) { return x.apply(fnExp10) }
func (x Uncertain) Log10() (Uncertain, error) { return x.apply(fnLog10) }

// Sin and the other direct trigonometric and hyperbolic functions require a
// radian argument and return a dimensionless value.
func (x Uncertain) Sin() (Uncertain, error)  { return x.apply(fnSin) }
func (x Uncertain) Cos() (Uncertain, error)  { return x.apply(fnCos) }
func (x Uncertain) Tan() (Uncertain, error)  { return x.apply(fnTan) }
func (x Uncertain) Sinh() (Uncertain, error) { return x.apply(fnSinh) }
func (x Uncertain) Cosh() (Uncertain, error) { return x.apply(fnCosh) }
func (x Uncertain) Tanh() (Uncertain, error) { return x.apply(fnTanh) }

// Asin and the other inverse functions require a dimensionless argument and
// return a value in radians. Points where the derivative diverges, such as
// asin(±1) with a non-zero uncertainty, fail with ErrDomain.
func (x Uncertain) Asin() (Uncertain, error)  { return x.apply(fnAsin) }
func (x Uncertain) Acos() (Uncertain, error)  { return x.apply(fnAcos) }
func (x Uncertain) Atan() (Uncertain, error)  { return x.apply(fnAtan) }
func (x Uncertain) Asinh() (Uncertain, error) { return x.apply(fnAsinh) }
func (x Uncertain) Acosh() (Uncertain, error) { return x.apply(fnAcosh) }
func (x Uncertain) Atanh() (Uncertain, error) { return x.apply(fnAtanh) }
