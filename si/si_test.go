// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikecarlton/dim"
	"github.com/mikecarlton/dim/format"
)

func TestEndToEnd(t *testing.T) {
	facet := DefaultFacet()

	assert.Equal(t, "5 m", format.Format(facet, Meters(5)))

	length, err := format.ParseAs[Meter](facet, "5 m")
	require.NoError(t, err)
	assert.True(t, length.Equal(Meters(5)))

	force, err := format.ParseAs[Newton](facet, "5 kg*m/s^2")
	require.NoError(t, err)
	assert.True(t, force.Equal(Newtons(5)))

	weight, err := format.ParseAs[Newton](facet, "2 kg*g0")
	require.NoError(t, err)
	assert.InEpsilon(t, 2*9.80665, weight.Value(), 1e-12)

	_, err = Meters(5).Dynamic().Add(Seconds(3).Dynamic())
	assert.ErrorIs(t, err, dim.ErrIncommensurable)

	_, err = dim.Pow(Meters(1), 1).Root(2)
	assert.ErrorIs(t, err, dim.ErrRootNotRepresentable)
}

func TestDefaultFacetShared(t *testing.T) {
	assert.Same(t, DefaultFacet(), DefaultFacet())
	assert.Same(t, System, DefaultFacet().System())
}

func TestInputTables(t *testing.T) {
	facet := DefaultFacet()

	for name, table := range INPUTS {
		for symbol, scale := range table.Scales {
			t.Run(fmt.Sprintf("%s/%s", name, symbol), func(t *testing.T) {
				q, err := facet.Parse("2 " + symbol)
				require.NoError(t, err)
				assert.Equal(t, table.Dimension, q.Unit().Dimension())
				assert.InEpsilon(t, 2*scale, q.Value(), 1e-12)
			})
		}
	}
}

func TestNewBuilderExtends(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.AddInput(format.NewFormatter("league", Q(4828.032, LengthDim))))
	assert.ErrorIs(t, b.AddInput(format.NewFormatter("ft", Q(1, LengthDim))), format.ErrDuplicateSymbol)

	facet, err := b.Build()
	require.NoError(t, err)
	q, err := format.ParseAs[Meter](facet, "20000 league")
	require.NoError(t, err)
	assert.InDelta(t, 96560640, q.Value(), 1e-3)

	_, err = DefaultFacet().Parse("1 league")
	assert.ErrorIs(t, err, format.ErrSymbolNotFound)
}

func TestConversions(t *testing.T) {
	assert.Equal(t, 12.0, dim.Ratio(Foot, Inch))
	assert.Equal(t, 3.0, dim.Ratio(Yard, Foot))
	assert.InDelta(t, 5280.0, dim.Ratio(Mile, Foot), 1e-9)
	assert.Equal(t, 60.0, dim.Ratio(Hour, Minute))
	assert.InDelta(t, 1000.0, dim.Ratio(Liter, dim.New[CubicMeter](1e-6)), 1e-9)

	mph, err := dim.DivAs[MeterPerSecond](Mile, Hour)
	require.NoError(t, err)
	assert.InDelta(t, Mph.Value(), mph.Value(), 1e-12)

	weight, err := dim.MulAs[Newton](PoundMass, StandardGravity)
	require.NoError(t, err)
	assert.InDelta(t, PoundForce.Value(), weight.Value(), 1e-9)
}

func TestTemperature(t *testing.T) {
	assert.InDelta(t, 273.15, Celsius(0).Value(), 1e-12)
	assert.InDelta(t, 273.15, Fahrenheit(32).Value(), 1e-12)
	assert.InDelta(t, 273.15, Rankine(491.67).Value(), 1e-12)
	assert.InDelta(t, -40, ToFahrenheit(Celsius(-40)), 1e-12)
	assert.InDelta(t, 100, ToCelsius(Fahrenheit(212)), 1e-12)
}

func TestTrig(t *testing.T) {
	assert.InDelta(t, 1, Sin(Degree.Scale(90)), 1e-15)
	assert.InDelta(t, 0.5, Cos(Degree.Scale(60)), 1e-15)
	assert.InDelta(t, 1, Tan(Degree.Scale(45)), 1e-15)
	assert.InDelta(t, math.Pi/2, Asin(1).Value(), 1e-15)
	assert.InDelta(t, math.Pi, Acos(-1).Value(), 1e-15)
	assert.InDelta(t, math.Pi/4, Atan(1).Value(), 1e-15)
	assert.InDelta(t, 3*math.Pi/4, Atan2(Meters(1), Meters(-1)).Value(), 1e-15)
	assert.True(t, Asin(2).IsBad())
}

func TestSystemSymbols(t *testing.T) {
	tests := []struct {
		symbol string
		scale  float64
	}{
		{"kg", 1},
		{"g", 1e-3},
		{"mg", 1e-6},
		{"km", 1e3},
		{"µm", 1e-6},
		{"daN", 10},
		{"cd", 1},
		{"kHz", 1e3},
		{"mL", 1e-6},
		{"keV", 1.602176634e-16},
	}

	for _, test := range tests {
		t.Run(test.symbol, func(t *testing.T) {
			q, ok := System.LookupSymbol(test.symbol)
			require.True(t, ok)
			assert.InEpsilon(t, test.scale, q.Value(), 1e-12)
		})
	}

	_, ok := System.LookupSymbol("ft")
	assert.False(t, ok)
}

func TestSpecializedRender(t *testing.T) {
	facet := DefaultFacet()

	assert.Equal(t, "3 Bq", format.Format(facet, dim.New[Becquerel](3)))
	assert.Equal(t, "3 Hz", format.Format(facet, Hertzes(3)))
	assert.Equal(t, "3 Sv", format.Format(facet, dim.New[Sievert](3)))
	assert.Equal(t, "3 Gy", format.Format(facet, dim.New[Gray](3)))
	assert.Equal(t, "3 Ω", format.Format(facet, Ohms(3)))
	assert.Equal(t, "3 N*m/rad", format.Format(facet, dim.New[NewtonMeterPerRadian](3)))
	assert.Equal(t, "3 J", format.Format(facet, Joules(3)))
}
