package dimension

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Base quantity indexes into the exponent array.
const (
	length = iota
	time
	mass
	temperature
	current
	substance
	luminosity
	angle

	size
)

// baseSymbols are the SI base unit symbols in exponent order.
var baseSymbols = [size]string{"m", "s", "kg", "K", "A", "mol", "cd", "rad"}

// MaxExponent bounds the magnitude of an exponent produced by Pow.
const MaxExponent = math.MaxInt32

// Dimension is the exponent vector of a physical quantity.
// The zero value is dimensionless.
type Dimension struct {
	exp [size]int
}

// New returns the dimension with the given SI base exponents.
func New(length, time, mass, temperature, current, substance, luminosity int) Dimension {
	return Dimension{exp: [size]int{length, time, mass, temperature, current, substance, luminosity, 0}}
}

// Named dimensions.
var (
	Dimensionless = Dimension{}
	Angle         = Dimension{exp: [size]int{angle: 1}}

	Length      = New(1, 0, 0, 0, 0, 0, 0)
	Time        = New(0, 1, 0, 0, 0, 0, 0)
	Mass        = New(0, 0, 1, 0, 0, 0, 0)
	Temperature = New(0, 0, 0, 1, 0, 0, 0)
	Current     = New(0, 0, 0, 0, 1, 0, 0)
	Substance   = New(0, 0, 0, 0, 0, 1, 0)
	Luminosity  = New(0, 0, 0, 0, 0, 0, 1)

	Area            = New(2, 0, 0, 0, 0, 0, 0)
	Volume          = New(3, 0, 0, 0, 0, 0, 0)
	Frequency       = New(0, -1, 0, 0, 0, 0, 0)
	Velocity        = New(1, -1, 0, 0, 0, 0, 0)
	Acceleration    = New(1, -2, 0, 0, 0, 0, 0)
	Momentum        = New(1, -1, 1, 0, 0, 0, 0)
	Force           = New(1, -2, 1, 0, 0, 0, 0)
	Energy          = New(2, -2, 1, 0, 0, 0, 0)
	Power           = New(2, -3, 1, 0, 0, 0, 0)
	Pressure        = New(-1, -2, 1, 0, 0, 0, 0)
	Charge          = New(0, 1, 0, 0, 1, 0, 0)
	Voltage         = New(2, -3, 1, 0, -1, 0, 0)
	AngularVelocity = Angle.Divide(Time)
)

func (d Dimension) Length() int      { return d.exp[length] }
func (d Dimension) Time() int        { return d.exp[time] }
func (d Dimension) Mass() int        { return d.exp[mass] }
func (d Dimension) Temperature() int { return d.exp[temperature] }
func (d Dimension) Current() int     { return d.exp[current] }
func (d Dimension) Substance() int   { return d.exp[substance] }
func (d Dimension) Luminosity() int  { return d.exp[luminosity] }

// Angle returns the radian tag exponent.
func (d Dimension) Angle() int { return d.exp[angle] }

// Multiply returns the dimension of a product: exponents are summed.
func (d Dimension) Multiply(o Dimension) Dimension {
	var r Dimension
	for i := range d.exp {
		r.exp[i] = d.exp[i] + o.exp[i]
	}
	return r
}

// Divide returns the dimension of a quotient: exponents are subtracted.
func (d Dimension) Divide(o Dimension) Dimension {
	var r Dimension
	for i := range d.exp {
		r.exp[i] = d.exp[i] - o.exp[i]
	}
	return r
}

// Invert negates every exponent.
func (d Dimension) Invert() Dimension {
	var r Dimension
	for i := range d.exp {
		r.exp[i] = -d.exp[i]
	}
	return r
}

// Pow multiplies every exponent by n.
// Fails with ErrExponentOverflow if a result would exceed MaxExponent in magnitude.
func (d Dimension) Pow(n int) (Dimension, error) {
	var r Dimension
	if n == 0 {
		return r, nil
	}
	for i, e := range d.exp {
		if e == 0 {
			continue
		}
		if n < -MaxExponent || n > MaxExponent || absInt(e) > MaxExponent/absInt(n) {
			return Dimension{}, fmt.Errorf("%w: %q to the power %d", ErrExponentOverflow, d, n)
		}
		r.exp[i] = e * n
	}
	return r, nil
}

// Root divides every exponent by n.
// Fails with ErrInvalidRoot if n is zero or does not divide an exponent.
func (d Dimension) Root(n int) (Dimension, error) {
	if n == 0 {
		return Dimension{}, fmt.Errorf("%w: zero degree root of %q", ErrInvalidRoot, d)
	}
	var r Dimension
	for i, e := range d.exp {
		if e%n != 0 {
			return Dimension{}, fmt.Errorf("%w: root %d of %q", ErrInvalidRoot, n, d)
		}
		r.exp[i] = e / n
	}
	return r, nil
}

// Equal reports whether both dimensions have identical exponents.
func (d Dimension) Equal(o Dimension) bool {
	return d == o
}

// IsZero reports whether every exponent, including the angle tag, is zero.
func (d Dimension) IsZero() bool {
	return d == Dimensionless
}

// IsDimensionless reports whether the SI exponents are zero, ignoring the angle tag.
func (d Dimension) IsDimensionless() bool {
	for i := range angle {
		if d.exp[i] != 0 {
			return false
		}
	}
	return true
}

// WithoutAngle drops the radian tag.
func (d Dimension) WithoutAngle() Dimension {
	d.exp[angle] = 0
	return d
}

// String renders the dimension as SI base symbols, e.g. "kg m s^-2".
// Dimensionless values render as an empty string.
func (d Dimension) String() string {
	// mass first mirrors the conventional "kg m s^-2" ordering
	order := [size]int{mass, length, time, temperature, current, substance, luminosity, angle}
	parts := make([]string, 0, size)
	for _, i := range order {
		e := d.exp[i]
		switch e {
		case 0:
			continue
		case 1:
			parts = append(parts, baseSymbols[i])
		default:
			parts = append(parts, baseSymbols[i]+"^"+strconv.Itoa(e))
		}
	}
	return strings.Join(parts, " ")
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
