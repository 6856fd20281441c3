// Package dimension implements the algebra of physical dimensions.
//
// A Dimension records the exponents of the seven SI base quantities (length,
// time, mass, temperature, electric current, amount of substance and luminous
// intensity) together with an angle exponent. The angle exponent does not
// change the physical dimension but tags quantities measured in radians so
// that trigonometric functions can insist on an angular argument.
//
// Dimension is a small comparable value: it can be used with == and as a map
// key, and every operation returns a new value.
//
// # Usage
//
//	import "github.com/dmitrymomot/physkit/pkg/dimension"
//
//	v := dimension.Length.Divide(dimension.Time)   // m s^-1
//	a := v.Divide(dimension.Time)                   // m s^-2
//	f := dimension.Mass.Multiply(a)                 // kg m s^-2
//	fmt.Println(f == dimension.Force)               // true
//
//	side, err := dimension.Area.Root(2) // m
//	_, err = dimension.Length.Root(2)   // ErrInvalidRoot
//
// # Error Handling
//
// Root is the only fallible operation. It returns ErrInvalidRoot when the
// degree is zero or an exponent is not evenly divisible by it.
package dimension
