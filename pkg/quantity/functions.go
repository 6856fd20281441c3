package quantity

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/physkit/pkg/dimension"
)

// function describes a real function of one argument together with the
// dimension it accepts, the dimension it produces and its derivative.
type function struct {
	name   string
	in     dimension.Dimension
	out    dimension.Dimension
	eval   func(float64) float64
	deriv  func(float64) float64
	domain func(float64) bool
}

// check validates the argument dimension and domain.
func (fn function) check(v float64, dim dimension.Dimension) error {
	if dim != fn.in {
		want := "dimensionless"
		if fn.in == dimension.Angle {
			want = "radian"
		}
		return fmt.Errorf("%w: %s requires a %s argument, got %q", ErrDimensionMismatch, fn.name, want, dim)
	}
	if fn.domain != nil && !fn.domain(v) {
		return fmt.Errorf("%w: %s(%g)", ErrDomain, fn.name, v)
	}
	return nil
}

// slope returns |f'(v)|, failing with ErrDomain where the derivative diverges.
func (fn function) slope(v float64) (float64, error) {
	d := math.Abs(fn.deriv(v))
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("%w: derivative of %s undefined at %g", ErrDomain, fn.name, v)
	}
	return d, nil
}

func positive(v float64) bool   { return v > 0 }
func unitRange(v float64) bool  { return v >= -1 && v <= 1 }
func openUnit(v float64) bool   { return v > -1 && v < 1 }
func atLeastOne(v float64) bool { return v >= 1 }

var (
	fnExp = function{
		name: "exp", eval: math.Exp, deriv: math.Exp,
	}
	fnLog = function{
		name: "log", eval: math.Log, domain: positive,
		deriv: func(v float64) float64 { return 1 / v },
	}
	fnExp10 = function{
		name: "exp10", eval: exp10,
		deriv: func(v float64) float64 { return math.Ln10 * exp10(v) },
	}
	fnLog10 = function{
		name: "log10", eval: math.Log10, domain: positive,
		deriv: func(v float64) float64 { return 1 / (v * math.Ln10) },
	}

	fnSin = function{
		name: "sin", in: dimension.Angle, eval: math.Sin, deriv: math.Cos,
	}
	fnCos = function{
		name: "cos", in: dimension.Angle, eval: math.Cos,
		deriv: func(v float64) float64 { return -math.Sin(v) },
	}
	fnTan = function{
		name: "tan", in: dimension.Angle, eval: math.Tan,
		deriv: func(v float64) float64 { c := math.Cos(v); return 1 / (c * c) },
	}
	fnSinh = function{
		name: "sinh", in: dimension.Angle, eval: math.Sinh, deriv: math.Cosh,
	}
	fnCosh = function{
		name: "cosh", in: dimension.Angle, eval: math.Cosh, deriv: math.Sinh,
	}
	fnTanh = function{
		name: "tanh", in: dimension.Angle, eval: math.Tanh,
		deriv: func(v float64) float64 { t := math.Tanh(v); return 1 - t*t },
	}

	fnAsin = function{
		name: "asin", out: dimension.Angle, eval: math.Asin, domain: unitRange,
		deriv: func(v float64) float64 { return 1 / math.Sqrt(1-v*v) },
	}
	fnAcos = function{
		name: "acos", out: dimension.Angle, eval: math.Acos, domain: unitRange,
		deriv: func(v float64) float64 { return -1 / math.Sqrt(1-v*v) },
	}
	fnAtan = function{
		name: "atan", out: dimension.Angle, eval: math.Atan,
		deriv: func(v float64) float64 { return 1 / (1 + v*v) },
	}
	fnAsinh = function{
		name: "asinh", out: dimension.Angle, eval: math.Asinh,
		deriv: func(v float64) float64 { return 1 / math.Sqrt(v*v+1) },
	}
	fnAcosh = function{
		name: "acosh", out: dimension.Angle, eval: math.Acosh, domain: atLeastOne,
		deriv: func(v float64) float64 { return 1 / math.Sqrt(v*v-1) },
	}
	fnAtanh = function{
		name: "atanh", out: dimension.Angle, eval: math.Atanh, domain: openUnit,
		deriv: func(v float64) float64 { return 1 / (1 - v*v) },
	}
)

func exp10(v float64) float64 { return math.Pow(10, v) }

// rootValue returns the real n-th root of v.
// Even roots of negative values fail with ErrDomain.
func rootValue(v float64, n int) (float64, error) {
	switch {
	case n == 2:
		if v < 0 {
			return 0, fmt.Errorf("%w: sqrt(%g)", ErrDomain, v)
		}
		return math.Sqrt(v), nil
	case n == 3:
		return math.Cbrt(v), nil
	case v >= 0:
		return math.Pow(v, 1/float64(n)), nil
	case n%2 == 0:
		return 0, fmt.Errorf("%w: root %d of %g", ErrDomain, n, v)
	default:
		return -math.Pow(-v, 1/float64(n)), nil
	}
}
