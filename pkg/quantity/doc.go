// Package quantity implements dimension-checked physical measurements with
// optional uncertainty propagation.
//
// The package is built from three value types that share one representation:
//
//   - Unit – a dimension.Dimension with a positive multiplier relative to the
//     coherent SI unit and a display symbol. Named units (Metre, Newton,
//     Degree, …), SI prefixes and a catalog of scaled units are available.
//   - Measurement – a canonical value (expressed with multiplier 1) tagged
//     with its dimension. Arithmetic checks dimensions at every call.
//   - Uncertain – a Measurement with a non-negative absolute uncertainty that
//     is propagated through every operation.
//
// All types are immutable values and safe to share between goroutines. The
// unit registry is built once on first use and never mutated.
//
// # Usage
//
//	import "github.com/dmitrymomot/physkit/pkg/quantity"
//
//	d := quantity.New(1.5, quantity.Kilometre) // 1500 m
//	t := quantity.New(120, quantity.Second)
//	v, err := d.Div(t) // 12.5 m s^-1
//	if err != nil {
//	    return err
//	}
//	kmh, _ := quantity.UnitByName("kilometre per hour")
//	s, _ := v.FormatIn(kmh) // "45 km/h"
//
//	g, _ := quantity.NewUncertain(10, 1, quantity.Unitless)
//	h, _ := quantity.NewUncertain(5, 0.5, quantity.Unitless)
//	fmt.Println(g.Mul(h)) // 50 ± 7
//
// # Equality
//
// Measurement.Equal compares canonical values while absorbing conversion
// noise: values are equal when they agree after rounding off the lowest 12
// mantissa bits, or when one lies within a relative band of 5e-13 of the
// other. LessEqual and GreaterEqual use the same rule. Uncertain.Equal treats
// overlapping uncertainty bands as equal, while its ordering methods compare
// values only.
//
// # Angles
//
// Radians carry an angle tag in the dimension. Sin, Cos, Tan and their
// hyperbolic forms require it; Asin, Acos, Atan and their hyperbolic forms
// produce it. Exp and Log require a dimensionless argument without the tag.
// DropAngle removes the tag.
//
// # Text
//
// String renders "<value> <symbol>" or "<value> ± <uncertainty> <symbol>".
// Parse and ParseUncertain read that format back, with an optional bracketed
// prefix on the unit ("12 [k]m").
//
// # Error Handling
//
// Contract violations are returned synchronously as errors wrapping the
// sentinels in errors.go (ErrDimensionMismatch, ErrDivideByZero, ErrDomain,
// ErrInvalidRoot, ErrNegativeUncertainty, ErrInvalidUnit, ErrInvalidDimension,
// ErrUnitMismatch). Messages name the offending dimensions or unit symbols.
// Match them with errors.Is.
package quantity
