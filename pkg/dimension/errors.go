package dimension

import "errors"

var (
	// ErrInvalidRoot is returned when a root degree does not evenly divide every exponent.
	ErrInvalidRoot = errors.New("dimension: exponent not divisible by root degree")

	// ErrExponentOverflow is returned when a power would push an exponent past MaxExponent.
	ErrExponentOverflow = errors.New("dimension: exponent overflow")
)
