package quantity

import "math"

const (
	// equalityTolerance is the relative band used by roughlyEqual.
	equalityTolerance = 5e-13

	// roundedBits is the number of low mantissa bits ignored by roughlyEqual.
	roundedBits = 12
)

// roughlyEqual compares two canonical values while absorbing the noise that
// unit conversions leave in the last bits of the mantissa.
func roughlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	if roundMantissa(a) == roundMantissa(b) {
		return true
	}
	lo, hi := b*(1-equalityTolerance), b*(1+equalityTolerance)
	if lo > hi {
		lo, hi = hi, lo
	}
	return a >= lo && a <= hi
}

// roundMantissa rounds the bit pattern of x to the nearest multiple of 2^roundedBits.
// A carry out of the mantissa moves into the exponent, which is the correct rounding.
func roundMantissa(x float64) uint64 {
	const half = 1 << (roundedBits - 1)
	const mask = 1<<roundedBits - 1
	return (math.Float64bits(x) + half) &^ mask
}
