package quantity

import (
	"math"

	"github.com/dmitrymomot/physkit/pkg/dimension"
)

// SI base units, the radian and coherent derived units.
var (
	Unitless = MustUnit("", dimension.Dimensionless, 1)
	Radian   = MustUnit("rad", dimension.Angle, 1)
	Degree   = MustUnit("deg", dimension.Angle, math.Pi/180)

	Metre    = MustUnit("m", dimension.Length, 1)
	Second   = MustUnit("s", dimension.Time, 1)
	Kilogram = MustUnit("kg", dimension.Mass, 1)
	Kelvin   = MustUnit("K", dimension.Temperature, 1)
	Ampere   = MustUnit("A", dimension.Current, 1)
	Mole     = MustUnit("mol", dimension.Substance, 1)
	Candela  = MustUnit("cd", dimension.Luminosity, 1)

	Gram       = MustUnit("g", dimension.Mass, 1e-3)
	Kilometre  = Metre.WithPrefix(Kilo)
	Centimetre = Metre.WithPrefix(Centi)
	Millimetre = Metre.WithPrefix(Milli)

	SquareMetre           = MustUnit("m^2", dimension.Area, 1)
	CubicMetre            = MustUnit("m^3", dimension.Volume, 1)
	Hertz                 = MustUnit("Hz", dimension.Frequency, 1)
	MetrePerSecond        = MustUnit("m/s", dimension.Velocity, 1)
	MetrePerSecondSquared = MustUnit("m/s^2", dimension.Acceleration, 1)
	RadianPerSecond       = MustUnit("rad/s", dimension.AngularVelocity, 1)
	Newton                = MustUnit("N", dimension.Force, 1)
	NewtonSecond          = MustUnit("N*s", dimension.Momentum, 1)
	Joule                 = MustUnit("J", dimension.Energy, 1)
	Watt                  = MustUnit("W", dimension.Power, 1)
	Pascal                = MustUnit("Pa", dimension.Pressure, 1)
	Coulomb               = MustUnit("C", dimension.Charge, 1)
	Volt                  = MustUnit("V", dimension.Voltage, 1)
)

// builtinUnits lists the units registered by name and symbol.
var builtinUnits = []struct {
	name string
	unit Unit
}{
	{"radian", Radian},
	{"degree", Degree},
	{"metre", Metre},
	{"meter", Metre},
	{"second", Second},
	{"kilogram", Kilogram},
	{"kelvin", Kelvin},
	{"ampere", Ampere},
	{"mole", Mole},
	{"candela", Candela},
	{"gram", Gram},
	{"kilometre", Kilometre},
	{"centimetre", Centimetre},
	{"millimetre", Millimetre},
	{"square metre", SquareMetre},
	{"cubic metre", CubicMetre},
	{"hertz", Hertz},
	{"metre per second", MetrePerSecond},
	{"metre per second squared", MetrePerSecondSquared},
	{"radian per second", RadianPerSecond},
	{"newton", Newton},
	{"newton second", NewtonSecond},
	{"joule", Joule},
	{"watt", Watt},
	{"pascal", Pascal},
	{"coulomb", Coulomb},
	{"volt", Volt},
}
