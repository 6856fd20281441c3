package quantity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/physkit/pkg/dimension"
	"github.com/dmitrymomot/physkit/pkg/quantity"
)

func TestNewUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		multiplier float64
		wantErr    bool
	}{
		{name: "positive", multiplier: 0.3048},
		{name: "one", multiplier: 1},
		{name: "zero", multiplier: 0, wantErr: true},
		{name: "negative", multiplier: -1, wantErr: true},
		{name: "nan", multiplier: math.NaN(), wantErr: true},
		{name: "infinite", multiplier: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := quantity.NewUnit("x", dimension.Length, tt.multiplier)
			if tt.wantErr {
				require.ErrorIs(t, err, quantity.ErrInvalidUnit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.multiplier, u.Multiplier())
			assert.Equal(t, dimension.Length, u.Dimension())
			assert.Equal(t, "x", u.Symbol())
		})
	}

	assert.Panics(t, func() { quantity.MustUnit("bad", dimension.Length, 0) })
}

func TestUnitComposition(t *testing.T) {
	t.Parallel()

	nm := quantity.Newton.Mul(quantity.Metre)
	assert.Equal(t, dimension.Energy, nm.Dimension())
	assert.Equal(t, 1.0, nm.Multiplier())
	assert.Equal(t, "N*m", nm.Symbol())

	hour, err := quantity.UnitByName("hour")
	require.NoError(t, err)
	kmh := quantity.Kilometre.Div(hour)
	assert.Equal(t, dimension.Velocity, kmh.Dimension())
	assert.InEpsilon(t, 1/3.6, kmh.Multiplier(), 1e-15)
	assert.Equal(t, "km/h", kmh.Symbol())

	s2, err := quantity.Second.Pow(2)
	require.NoError(t, err)
	assert.Equal(t, "m/s^2", quantity.Metre.Div(s2).Symbol())
	assert.Equal(t, "s^-1", quantity.Unitless.Div(quantity.Second).Symbol())
	assert.Equal(t, "m/(N*s)", quantity.Metre.Div(quantity.Newton.Mul(quantity.Second)).Symbol())

	inv := quantity.Second.Inv()
	assert.Equal(t, dimension.Frequency, inv.Dimension())
	assert.Equal(t, "s^-1", inv.Symbol())
	assert.True(t, inv.Equal(quantity.Hertz))

	cc, err := quantity.Centimetre.Pow(3)
	require.NoError(t, err)
	assert.Equal(t, dimension.Volume, cc.Dimension())
	assert.InEpsilon(t, 1e-6, cc.Multiplier(), 1e-12)
}

func TestUnitRoot(t *testing.T) {
	t.Parallel()

	km2, err := quantity.Kilometre.Pow(2)
	require.NoError(t, err)
	side, err := km2.Root(2)
	require.NoError(t, err)
	assert.Equal(t, dimension.Length, side.Dimension())
	assert.InEpsilon(t, 1000, side.Multiplier(), 1e-12)

	_, err = quantity.Metre.Root(2)
	require.ErrorIs(t, err, quantity.ErrInvalidRoot)
}

func TestUnitWithPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "km", quantity.Kilometre.Symbol())
	assert.Equal(t, 1000.0, quantity.Kilometre.Multiplier())
	assert.Equal(t, "mm", quantity.Millimetre.Symbol())
	assert.Equal(t, 1e-3, quantity.Millimetre.Multiplier())

	mN := quantity.Newton.WithPrefix(quantity.Milli)
	assert.Equal(t, "mN", mN.Symbol())
	assert.Equal(t, dimension.Force, mN.Dimension())
}

func TestUnitMultiplierRange(t *testing.T) {
	t.Parallel()

	ym := quantity.Metre.WithPrefix(quantity.Yocto)
	_, err := ym.Pow(14)
	require.ErrorIs(t, err, quantity.ErrInvalidUnit)

	_, err = quantity.Metre.WithPrefix(quantity.Yotta).Pow(14)
	require.ErrorIs(t, err, quantity.ErrInvalidUnit)

	tiny := ym.Mul(ym).Mul(ym).Mul(ym).Mul(ym).Mul(ym).Mul(ym).Mul(ym).Mul(ym).Mul(ym).Mul(ym).Mul(ym).Mul(ym).Mul(ym)
	assert.Equal(t, 0.0, tiny.Multiplier())
	assert.False(t, tiny.Valid())
	assert.False(t, tiny.Equal(quantity.Unitless))

	assert.True(t, quantity.Metre.Valid())
	assert.True(t, quantity.Unit{}.Valid())
}

func TestZeroUnitIsUnitless(t *testing.T) {
	t.Parallel()

	var u quantity.Unit
	assert.Equal(t, 1.0, u.Multiplier())
	assert.True(t, u.Equal(quantity.Unitless))
	assert.True(t, quantity.New(3, u).Equal(quantity.Scalar(3)))
}

func TestConversionFactor(t *testing.T) {
	t.Parallel()

	f, err := quantity.ConversionFactor(quantity.Kilometre, quantity.Metre)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, f)

	f, err = quantity.ConversionFactor(quantity.Metre, quantity.Kilometre)
	require.NoError(t, err)
	assert.Equal(t, 0.001, f)

	f, err = quantity.ConversionFactor(quantity.Degree, quantity.Radian)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Pi/180, f, 1e-15)

	f, err = quantity.ConversionFactor(quantity.Metre, quantity.Second)
	require.ErrorIs(t, err, quantity.ErrDimensionMismatch)
	assert.False(t, math.IsNaN(f))
	assert.Contains(t, err.Error(), `"m" vs "s"`)
}

func TestLookupPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   string
		factor float64
		ok     bool
	}{
		{"k", 1e3, true},
		{"M", 1e6, true},
		{"m", 1e-3, true},
		{"u", 1e-6, true},
		{"µ", 1e-6, true},
		{"da", 10, true},
		{"n", 1e-9, true},
		{"x", 0, false},
		{"K", 0, false},
	}

	for _, tt := range tests {
		p, ok := quantity.LookupPrefix(tt.code)
		assert.Equal(t, tt.ok, ok, tt.code)
		assert.Equal(t, tt.factor, p.Factor, tt.code)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	n, ok := quantity.LookupUnit("N")
	require.True(t, ok)
	assert.True(t, n.Equal(quantity.Newton))

	kmh, ok := quantity.LookupUnit("km/h")
	require.True(t, ok)
	assert.Equal(t, dimension.Velocity, kmh.Dimension())
	assert.InEpsilon(t, 1/3.6, kmh.Multiplier(), 1e-15)

	_, ok = quantity.LookupUnit("furlong")
	assert.False(t, ok)

	byName, err := quantity.UnitByName("NEWTON")
	require.NoError(t, err)
	assert.Equal(t, "N", byName.Symbol())

	ev, err := quantity.UnitByName("ElectronVolt")
	require.NoError(t, err)
	assert.Equal(t, dimension.Energy, ev.Dimension())
	assert.Equal(t, 1.602176634e-19, ev.Multiplier())

	litre, err := quantity.UnitByName("litre")
	require.NoError(t, err)
	assert.Equal(t, dimension.Volume, litre.Dimension())

	_, err = quantity.UnitByName("furlong")
	require.ErrorIs(t, err, quantity.ErrUnknownUnit)
}

func TestKind(t *testing.T) {
	t.Parallel()

	require.NoError(t, quantity.KindForce.Validate(dimension.Force))

	err := quantity.KindForce.Validate(dimension.Length)
	require.ErrorIs(t, err, quantity.ErrInvalidDimension)
	assert.Contains(t, err.Error(), "force")

	m, err := quantity.KindLength.Measure(3, quantity.Kilometre)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, m.Value())

	_, err = quantity.KindLength.Measure(3, quantity.Second)
	require.ErrorIs(t, err, quantity.ErrInvalidDimension)
}
