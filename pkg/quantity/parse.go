package quantity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/physkit/pkg/dimension"
)

// Parse reads "<value> [uncertainty] <unit>" into a measurement of dimension
// dim, discarding any uncertainty. See ParseUncertain.
func Parse(s string, dim dimension.Dimension) (Measurement, error) {
	x, err := ParseUncertain(s, dim)
	if err != nil {
		return Measurement{}, err
	}
	return x.Measurement(), nil
}

// ParseUncertain reads whitespace-separated "<value> [uncertainty] <unit>".
// A "±" (or "+/-") token may precede the uncertainty; a missing uncertainty
// is zero.
//
// The unit may start with a bracketed prefix code such as "[k]m" or "[m]s",
// which scales both value and uncertainty. The rest must be either the SI
// base symbol of dim (as rendered by Dimension.String) or the symbol of a
// registered unit of dimension dim. Anything else fails with ErrUnitMismatch.
func ParseUncertain(s string, dim dimension.Dimension) (Uncertain, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Uncertain{}, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Uncertain{}, fmt.Errorf("%w: value %q", ErrInvalidFormat, fields[0])
	}
	rest := fields[1:]

	var uncertainty float64
	switch {
	case len(rest) > 0 && isPlusMinus(rest[0]):
		if len(rest) < 2 {
			return Uncertain{}, fmt.Errorf("%w: missing uncertainty after %q", ErrInvalidFormat, rest[0])
		}
		if uncertainty, err = strconv.ParseFloat(rest[1], 64); err != nil {
			return Uncertain{}, fmt.Errorf("%w: uncertainty %q", ErrInvalidFormat, rest[1])
		}
		rest = rest[2:]
	case len(rest) > 0:
		if u, err := strconv.ParseFloat(rest[0], 64); err == nil {
			uncertainty = u
			rest = rest[1:]
		}
	}

	multiplier, err := resolveUnit(strings.Join(rest, " "), dim)
	if err != nil {
		return Uncertain{}, err
	}
	return UncertainFromCanonical(value*multiplier, uncertainty*multiplier, dim)
}

func isPlusMinus(tok string) bool {
	return tok == "±" || tok == "+/-" || tok == "+-"
}

// resolveUnit returns the canonical multiplier for a unit token of dimension dim.
func resolveUnit(token string, dim dimension.Dimension) (float64, error) {
	factor := 1.0
	if strings.HasPrefix(token, "[") {
		end := strings.Index(token, "]")
		if end < 0 {
			return 0, fmt.Errorf("%w: unterminated prefix in %q", ErrInvalidFormat, token)
		}
		p, ok := LookupPrefix(token[1:end])
		if !ok {
			return 0, fmt.Errorf("%w: unknown prefix %q", ErrInvalidFormat, token[1:end])
		}
		factor = p.Factor
		token = strings.TrimSpace(token[end+1:])
	}

	if token == dim.String() {
		return factor, nil
	}
	if u, ok := LookupUnit(token); ok && u.dim == dim {
		return factor * u.Multiplier(), nil
	}
	return 0, fmt.Errorf("%w: %q is not a unit of %q", ErrUnitMismatch, token, dim)
}
