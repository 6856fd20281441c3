package quantity

import (
	"errors"

	"github.com/dmitrymomot/physkit/pkg/dimension"
)

var (
	// ErrDimensionMismatch is returned when an operation needs equal dimensions.
	ErrDimensionMismatch = errors.New("quantity: dimension mismatch")

	// ErrInvalidUnit is returned for a unit with a non-positive or non-finite multiplier.
	ErrInvalidUnit = errors.New("quantity: unit multiplier must be positive and finite")

	// ErrInvalidRoot aliases dimension.ErrInvalidRoot so callers can match it from this package.
	ErrInvalidRoot = dimension.ErrInvalidRoot

	// ErrExponentOverflow aliases dimension.ErrExponentOverflow.
	ErrExponentOverflow = dimension.ErrExponentOverflow

	// ErrDivideByZero is returned when dividing by a zero value or inverting a zero uncertainty.
	ErrDivideByZero = errors.New("quantity: division by zero")

	// ErrDomain is returned when a function is evaluated outside its real domain.
	ErrDomain = errors.New("quantity: argument outside function domain")

	// ErrNegativeUncertainty is returned when an uncertainty is negative or NaN.
	ErrNegativeUncertainty = errors.New("quantity: uncertainty must not be negative")

	// ErrInvalidDimension is returned when a value does not have the dimension a kind requires.
	ErrInvalidDimension = errors.New("quantity: invalid dimension")

	// ErrUnitMismatch is returned when parsed text names a unit that does not fit the target dimension.
	ErrUnitMismatch = errors.New("quantity: unit does not match dimension")

	// ErrUnknownUnit is returned when a unit symbol or name is not registered.
	ErrUnknownUnit = errors.New("quantity: unknown unit")

	// ErrInvalidFormat is returned when text cannot be parsed as a measurement.
	ErrInvalidFormat = errors.New("quantity: invalid measurement format")
)
