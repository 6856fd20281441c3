package quantity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/physkit/pkg/dimension"
	"github.com/dmitrymomot/physkit/pkg/quantity"
)

func TestMeasurementString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   quantity.Measurement
		want string
	}{
		{name: "length", in: quantity.New(5, quantity.Metre), want: "5 m"},
		{name: "converted", in: quantity.New(1.5, quantity.Kilometre), want: "1500 m"},
		{name: "dimensionless", in: quantity.Scalar(2.5), want: "2.5"},
		{name: "zero", in: quantity.Scalar(0), want: "0"},
		{name: "derived", in: quantity.New(3, quantity.Newton), want: "3 kg m s^-2"},
		{name: "large", in: quantity.New(12345, quantity.Metre), want: "1.2345e+04 m"},
		{name: "small", in: quantity.New(0.00001, quantity.Second), want: "1e-05 s"},
		{name: "negative", in: quantity.New(-0.25, quantity.Second), want: "-0.25 s"},
		{name: "angle", in: quantity.New(1.5, quantity.Radian), want: "1.5 rad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestMeasurementFormatIn(t *testing.T) {
	t.Parallel()

	s, err := quantity.New(1500, quantity.Metre).FormatIn(quantity.Kilometre)
	require.NoError(t, err)
	assert.Equal(t, "1.5 km", s)

	_, err = quantity.New(1500, quantity.Metre).FormatIn(quantity.Second)
	require.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestUncertainString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v, u float64
		unit quantity.Unit
		want string
	}{
		{name: "aligned decimals", v: 12.3, u: 0.1, unit: quantity.Metre, want: "12.3 ± 0.1 m"},
		{name: "integer uncertainty", v: 50, u: 7.0710678, unit: quantity.Unitless, want: "50 ± 7"},
		{name: "rounds value", v: 9.81234, u: 0.02, unit: quantity.MetrePerSecondSquared, want: "9.81 ± 0.02 m s^-2"},
		{name: "exact", v: 5, u: 0, unit: quantity.Metre, want: "5 m"},
		{name: "scientific value", v: 12346, u: 12, unit: quantity.Second, want: "1.235e+04 ± 1e+01 s"},
		{name: "scientific uncertainty", v: 0.5, u: 0.00002, unit: quantity.Unitless, want: "5.0000e-01 ± 2e-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x := mustUncertain(t, tt.v, tt.u, tt.unit)
			assert.Equal(t, tt.want, x.String())
		})
	}

	x := mustUncertain(t, 1.25, 0.01, quantity.Kilometre)
	s, err := x.FormatIn(quantity.Kilometre)
	require.NoError(t, err)
	assert.Equal(t, "1.25 ± 0.01 km", s)

	_, err = x.FormatIn(quantity.Second)
	require.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		dim       dimension.Dimension
		wantValue float64
		wantUnc   float64
		wantErr   error
	}{
		{name: "base symbol", in: "5 m", dim: dimension.Length, wantValue: 5},
		{name: "prefix", in: "5 [k]m", dim: dimension.Length, wantValue: 5000},
		{name: "prefix scales uncertainty", in: "1.5 0.1 [k]m", dim: dimension.Length, wantValue: 1500, wantUnc: 100},
		{name: "plus minus", in: "2 ± 0.5 s", dim: dimension.Time, wantValue: 2, wantUnc: 0.5},
		{name: "ascii plus minus", in: "2 +/- 0.5 s", dim: dimension.Time, wantValue: 2, wantUnc: 0.5},
		{name: "registered unit", in: "3 N", dim: dimension.Force, wantValue: 3},
		{name: "base symbols of derived", in: "3 kg m s^-2", dim: dimension.Force, wantValue: 3},
		{name: "prefixed registered unit", in: "2 [m]N", dim: dimension.Force, wantValue: 0.002},
		{name: "catalog unit", in: "36 km/h", dim: dimension.Velocity, wantValue: 10},
		{name: "degrees", in: "180 deg", dim: dimension.Angle, wantValue: math.Pi},
		{name: "dimensionless", in: "0.25", dim: dimension.Dimensionless, wantValue: 0.25},
		{name: "dimensionless with uncertainty", in: "0.25 0.01", dim: dimension.Dimensionless, wantValue: 0.25, wantUnc: 0.01},
		{name: "scientific", in: "1.2345e+04 m", dim: dimension.Length, wantValue: 12345},
		{name: "extra whitespace", in: "  7\t\tm \n", dim: dimension.Length, wantValue: 7},

		{name: "wrong unit", in: "3 s", dim: dimension.Length, wantErr: quantity.ErrUnitMismatch},
		{name: "registered unit of other dimension", in: "3 N", dim: dimension.Energy, wantErr: quantity.ErrUnitMismatch},
		{name: "missing unit", in: "3", dim: dimension.Length, wantErr: quantity.ErrUnitMismatch},
		{name: "bad value", in: "abc m", dim: dimension.Length, wantErr: quantity.ErrInvalidFormat},
		{name: "empty", in: "  ", dim: dimension.Length, wantErr: quantity.ErrInvalidFormat},
		{name: "unknown prefix", in: "1 [q]m", dim: dimension.Length, wantErr: quantity.ErrInvalidFormat},
		{name: "unterminated prefix", in: "1 [km", dim: dimension.Length, wantErr: quantity.ErrInvalidFormat},
		{name: "dangling plus minus", in: "1 ±", dim: dimension.Length, wantErr: quantity.ErrInvalidFormat},
		{name: "negative uncertainty", in: "1 -0.1 m", dim: dimension.Length, wantErr: quantity.ErrNegativeUncertainty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := quantity.ParseUncertain(tt.in, tt.dim)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantValue, got.Value(), 1e-12)
			assert.InDelta(t, tt.wantUnc, got.Uncertainty(), 1e-12)
			assert.Equal(t, tt.dim, got.Dimension())
		})
	}
}

func TestPrintParseRoundTrip(t *testing.T) {
	t.Parallel()

	values := []quantity.Measurement{
		quantity.New(5, quantity.Metre),
		quantity.New(1/3.0, quantity.Kilometre),
		quantity.New(-2.5e-9, quantity.Second),
		quantity.New(6.02214076e23, quantity.Mole),
		quantity.New(9.81, quantity.MetrePerSecondSquared),
		quantity.New(42, quantity.Degree),
		quantity.New(1, quantity.Volt),
		quantity.Scalar(math.Pi),
	}

	for _, m := range values {
		got, err := quantity.Parse(m.String(), m.Dimension())
		require.NoError(t, err, m.String())
		assert.True(t, got.Equal(m), "%s parsed as %s", m, got)
	}
}
