package quantity

import (
	"math"
	"strconv"
)

// Values at or beyond these magnitudes are rendered in scientific notation.
const (
	sciUpper = 1e4
	sciLower = 1e-4
)

// String renders "<value> <symbol>" using the SI base symbols of the dimension.
// The value uses the shortest representation that parses back exactly.
func (m Measurement) String() string {
	return withSymbol(formatValue(m.value), m.dim.String())
}

// FormatIn renders the measurement expressed in u.
func (m Measurement) FormatIn(u Unit) (string, error) {
	v, err := m.ValueAs(u)
	if err != nil {
		return "", err
	}
	return withSymbol(formatValue(v), u.symbol), nil
}

// String renders "<value> ± <uncertainty> <symbol>", omitting the uncertainty
// when it is zero. The value is rounded to the last significant digit of the
// uncertainty.
func (x Uncertain) String() string {
	return withSymbol(formatUncertain(x.value, x.uncertainty), x.dim.String())
}

// FormatIn renders the value and uncertainty expressed in u.
func (x Uncertain) FormatIn(u Unit) (string, error) {
	v, err := x.ValueAs(u)
	if err != nil {
		return "", err
	}
	return withSymbol(formatUncertain(v, x.uncertainty/u.Multiplier()), u.symbol), nil
}

func withSymbol(num, symbol string) string {
	if symbol == "" {
		return num
	}
	return num + " " + symbol
}

func scientific(v float64) bool {
	a := math.Abs(v)
	return a != 0 && (a >= sciUpper || a <= sciLower)
}

func formatValue(v float64) string {
	if scientific(v) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatUncertain(v, u float64) string {
	if u == 0 {
		return formatValue(v)
	}
	if scientific(v) || scientific(u) {
		// mantissa digits run down to the leading digit of the uncertainty
		p := max(0, orderOfMagnitude(v)-orderOfMagnitude(u))
		return strconv.FormatFloat(v, 'e', p, 64) + " ± " + strconv.FormatFloat(u, 'e', 0, 64)
	}
	d := max(0, -orderOfMagnitude(u))
	return strconv.FormatFloat(v, 'f', d, 64) + " ± " + strconv.FormatFloat(u, 'f', d, 64)
}

// orderOfMagnitude returns floor(log10(|v|)), or 0 for zero.
func orderOfMagnitude(v float64) int {
	a := math.Abs(v)
	if a == 0 || math.IsInf(a, 0) || math.IsNaN(a) {
		return 0
	}
	e := int(math.Floor(math.Log10(a)))
	// Log10 can land a hair off an exact power of ten
	switch {
	case math.Pow(10, float64(e+1)) <= a:
		e++
	case math.Pow(10, float64(e)) > a:
		e--
	}
	return e
}
