package quantity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/physkit/pkg/dimension"
)

// Unit is a dimension with a positive scale factor relative to the coherent
// SI unit of that dimension, plus a display symbol.
//
// Composition (Mul, Div, Inv, WithPrefix) is plain float arithmetic on the
// multipliers, so a chain of extreme prefixes can underflow to 0 or overflow
// to +Inf. Valid reports whether that happened.
type Unit struct {
	dim        dimension.Dimension
	multiplier float64
	symbol     string
	// set is false only for the zero Unit, which behaves as Unitless.
	set bool
}

// NewUnit creates a unit. The multiplier must be positive and finite.
func NewUnit(symbol string, dim dimension.Dimension, multiplier float64) (Unit, error) {
	if !(multiplier > 0) || math.IsInf(multiplier, 0) {
		return Unit{}, fmt.Errorf("%w: %q has multiplier %g", ErrInvalidUnit, symbol, multiplier)
	}
	return Unit{dim: dim, multiplier: multiplier, symbol: symbol, set: true}, nil
}

// MustUnit is like NewUnit but panics on an invalid multiplier.
// Intended for package-level unit definitions.
func MustUnit(symbol string, dim dimension.Dimension, multiplier float64) Unit {
	u, err := NewUnit(symbol, dim, multiplier)
	if err != nil {
		panic(err)
	}
	return u
}

func (u Unit) Dimension() dimension.Dimension { return u.dim }
func (u Unit) Symbol() string                 { return u.symbol }

// Multiplier returns the scale factor to the coherent SI unit.
// The zero Unit reports 1 so that it behaves as Unitless.
func (u Unit) Multiplier() float64 {
	if !u.set {
		return 1
	}
	return u.multiplier
}

// Valid reports whether the multiplier is positive and finite.
func (u Unit) Valid() bool {
	m := u.Multiplier()
	return m > 0 && !math.IsInf(m, 0)
}

// Mul composes the product unit.
func (u Unit) Mul(o Unit) Unit {
	return Unit{
		dim:        u.dim.Multiply(o.dim),
		multiplier: u.Multiplier() * o.Multiplier(),
		symbol:     joinSymbols(u.symbol, "*", o.symbol),
		set:        true,
	}
}

// Div composes the quotient unit.
func (u Unit) Div(o Unit) Unit {
	return Unit{
		dim:        u.dim.Divide(o.dim),
		multiplier: u.Multiplier() / o.Multiplier(),
		symbol:     joinSymbols(u.symbol, "/", o.symbol),
		set:        true,
	}
}

// Inv returns the reciprocal unit.
func (u Unit) Inv() Unit {
	return Unit{
		dim:        u.dim.Invert(),
		multiplier: 1 / u.Multiplier(),
		symbol:     powSymbol(u.symbol, -1),
		set:        true,
	}
}

// Pow raises the unit to an integer power. Fails with ErrExponentOverflow
// when the dimension overflows and with ErrInvalidUnit when the multiplier
// leaves the positive finite range.
func (u Unit) Pow(n int) (Unit, error) {
	dim, err := u.dim.Pow(n)
	if err != nil {
		return Unit{}, err
	}
	return NewUnit(powSymbol(u.symbol, n), dim, math.Pow(u.Multiplier(), float64(n)))
}

// Root takes the n-th root of the unit.
// Fails with ErrInvalidRoot when the dimension has no such root.
func (u Unit) Root(n int) (Unit, error) {
	dim, err := u.dim.Root(n)
	if err != nil {
		return Unit{}, err
	}
	return NewUnit(u.symbol+"^(1/"+strconv.Itoa(n)+")", dim, math.Pow(u.Multiplier(), 1/float64(n)))
}

// WithPrefix scales the unit by a decimal prefix, e.g. Metre.WithPrefix(Kilo) is km.
func (u Unit) WithPrefix(p Prefix) Unit {
	return Unit{
		dim:        u.dim,
		multiplier: u.Multiplier() * p.Factor,
		symbol:     p.Symbol + u.symbol,
		set:        true,
	}
}

// Equal reports whether two units describe the same scale of the same dimension.
// Symbols are not compared.
func (u Unit) Equal(o Unit) bool {
	return u.dim == o.dim && roughlyEqual(u.Multiplier(), o.Multiplier())
}

// String returns the unit symbol.
func (u Unit) String() string { return u.symbol }

// ConversionFactor returns the factor that converts a value expressed in
// from into a value expressed in to. The dimensions must be equal.
func ConversionFactor(from, to Unit) (float64, error) {
	if from.dim != to.dim {
		return 0, mismatch(from.dim, to.dim)
	}
	return from.Multiplier() / to.Multiplier(), nil
}

func joinSymbols(a, op, b string) string {
	switch {
	case a == "" && b == "":
		return ""
	case a == "" && op == "/":
		return powSymbol(b, -1)
	case a == "":
		return b
	case b == "":
		return a
	}
	if strings.ContainsAny(b, "*/") {
		b = "(" + b + ")"
	}
	return a + op + b
}

func powSymbol(s string, n int) string {
	switch {
	case s == "" || n == 1:
		return s
	case strings.ContainsAny(s, "*/^"):
		s = "(" + s + ")"
	}
	return s + "^" + strconv.Itoa(n)
}

func mismatch(a, b dimension.Dimension) error {
	return fmt.Errorf("%w: %q vs %q", ErrDimensionMismatch, a, b)
}
