// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikecarlton/dim"
	"github.com/mikecarlton/dim/format"
	"github.com/mikecarlton/dim/si"
)

func TestFormat(t *testing.T) {
	facet := si.DefaultFacet()

	tests := []struct {
		input    dim.DynamicQuantity
		expected string
	}{
		{si.Meters(5).Dynamic(), "5 m"},
		{si.Newtons(5).Dynamic(), "5 N"},
		{dim.New[si.CubicMeter](0.002).Dynamic(), "2 L"},
		{dim.New[si.Hertz](50).Dynamic(), "50 Hz"},
		{dim.New[si.Becquerel](50).Dynamic(), "50 Bq"},
		{dim.New[si.Gray](2).Dynamic(), "2 Gy"},
		{dim.New[si.Sievert](2).Dynamic(), "2 Sv"},
		{si.Kelvins(300).Dynamic(), "300 K"},
		{dim.Mul(si.Meters(1), si.Seconds(2)), "2 m*s"},
		{dim.Div(si.Kilograms(3), si.Seconds(1)), "3 kg/s"},
		{dim.FromScalar(si.System, 7), "7"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, facet.Format(test.input))
		})
	}

	assert.Equal(t, "5 m", format.Format(facet, si.Meters(5)))
	assert.Equal(t, format.FormattedQuantity{Value: 5, Symbol: "Bq"}, format.Render(facet, dim.New[si.Becquerel](5)))

	// a dynamic frequency has no unit name, so the vector default applies
	assert.Equal(t, "5 Hz", facet.Format(si.Q(5, si.FrequencyDim)))
}

func TestParse(t *testing.T) {
	facet := si.DefaultFacet()

	length, err := format.ParseAs[si.Meter](facet, "5 m")
	require.NoError(t, err)
	assert.True(t, length.Equal(si.Meters(5)))

	force, err := format.ParseAs[si.Newton](facet, "5 kg*m/s^2")
	require.NoError(t, err)
	assert.True(t, force.Equal(si.Newtons(5)))

	tests := []struct {
		input    string
		expected dim.DynamicQuantity
	}{
		{"5 ft", si.Meters(1.524).Dynamic()},
		{"  12.5e3 mm ", si.Meters(12.5).Dynamic()},
		{"90 km/h", dim.New[si.MeterPerSecond](25).Dynamic()},
		{"3 kN*m/rad", dim.New[si.NewtonMeterPerRadian](3000).Dynamic()},
		{"2 L", dim.New[si.CubicMeter](0.002).Dynamic()},
		{"1 mi/h", dim.New[si.MeterPerSecond](0.44704).Dynamic()},
		{"4", dim.FromScalar(si.System, 4)},
		{"-1 s^-1", dim.New[si.Hertz](-1).Dynamic()},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			q, err := facet.Parse(test.input)
			require.NoError(t, err)
			assert.True(t, dim.UnitsMatch(test.expected.Unit(), q.Unit()), "%v", q)
			assert.InDelta(t, test.expected.Value(), q.Value(), 1e-9)
		})
	}
}

func TestParseErrors(t *testing.T) {
	facet := si.DefaultFacet()

	tests := []struct {
		input    string
		expected error
	}{
		{"", format.ErrMalformedInput},
		{"abc", format.ErrMalformedInput},
		{"m 5", format.ErrMalformedInput},
		{"5 furlong", format.ErrSymbolNotFound},
		{"5 m extra", format.ErrMalformedInput},
		{"5 m 6 s", format.ErrMalformedInput},
		{"5 degC/s", format.ErrMalformedInput},
		{"5 m**s", format.ErrMalformedInput},
		{"5_", format.ErrMalformedInput},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := facet.Parse(test.input)
			assert.ErrorIs(t, err, test.expected)
		})
	}

	_, err := format.ParseAs[si.Meter](facet, "5 s")
	assert.ErrorIs(t, err, dim.ErrIncommensurable)
}

func TestTemperature(t *testing.T) {
	facet := si.DefaultFacet()

	tests := []struct {
		input  string
		kelvin float64
	}{
		{"0 degC", 273.15},
		{"100 °C", 373.15},
		{"32 degF", 273.15},
		{"212 °F", 373.15},
		{"-40 degF", 233.15},
		{"491.67 degR", 273.15},
		{"300 K", 300},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			temperature, err := format.ParseAs[si.Kelvin](facet, test.input)
			require.NoError(t, err)
			assert.InDelta(t, test.kelvin, temperature.Value(), 1e-9)
		})
	}

	fq, err := facet.RenderAs(si.Celsius(21.5).Dynamic(), "degC")
	require.NoError(t, err)
	assert.InDelta(t, 21.5, fq.Value, 1e-9)
	assert.Equal(t, "degC", fq.Symbol)

	fq, err = facet.RenderAs(si.Celsius(-40).Dynamic(), "degF")
	require.NoError(t, err)
	assert.InDelta(t, -40, fq.Value, 1e-9)
}

func TestRenderAs(t *testing.T) {
	facet := si.DefaultFacet()

	fq, err := facet.RenderAs(si.Meters(1609.344).Dynamic(), "mi")
	require.NoError(t, err)
	assert.Equal(t, "1 mi", fq.String())

	fq, err = facet.RenderAs(dim.New[si.MeterPerSecond](10).Dynamic(), "km/h")
	require.NoError(t, err)
	assert.InDelta(t, 36, fq.Value, 1e-9)

	fq, err = facet.RenderAs(si.Newtons(1).Dynamic(), "kg*m/s^2")
	require.NoError(t, err)
	assert.Equal(t, "1 kg*m/s^2", fq.String())

	_, err = facet.RenderAs(si.Meters(1).Dynamic(), "s")
	assert.ErrorIs(t, err, dim.ErrIncommensurable)

	_, err = facet.RenderAs(si.Meters(1).Dynamic(), "parsec")
	assert.ErrorIs(t, err, format.ErrSymbolNotFound)
}

func TestToQuantityAs(t *testing.T) {
	facet := si.DefaultFacet()

	length, err := format.ToQuantityAs[si.Meter](facet, format.FormattedQuantity{Value: 5, Symbol: "ft"})
	require.NoError(t, err)
	assert.InDelta(t, 1.524, length.Value(), 1e-12)

	speed, err := format.ToQuantityAs[si.MeterPerSecond](facet, format.FormattedQuantity{Value: 36, Symbol: "km/h"})
	require.NoError(t, err)
	assert.InDelta(t, 10, speed.Value(), 1e-12)

	duration, err := format.ToQuantityAs[si.Second](facet, format.FormattedQuantity{Value: 5, Symbol: "ft"})
	assert.ErrorIs(t, err, dim.ErrIncommensurable)
	assert.True(t, duration.IsBad())

	_, err = format.ToQuantityAs[si.Meter](facet, format.FormattedQuantity{Value: 5, Symbol: "parsec"})
	assert.ErrorIs(t, err, format.ErrSymbolNotFound)
}

// parse(render(q)) gives q back for every default output symbol.
func TestRoundTrip(t *testing.T) {
	facet := si.DefaultFacet()

	for _, f := range si.OUTPUTS {
		for _, v := range []float64{1, -2.5, 1234.5678, 3e-9} {
			q := dim.NewDynamic(v*f.Scale.Value(), f.Unit())
			text := facet.Format(q)

			t.Run(text, func(t *testing.T) {
				back, err := facet.Parse(text)
				require.NoError(t, err)
				assert.True(t, dim.UnitsMatch(q.Unit(), back.Unit()))
				if f.Scale.Value() == 1 {
					assert.Equal(t, q.Value(), back.Value())
				} else {
					assert.InEpsilon(t, q.Value(), back.Value(), 1e-14)
				}
			})
		}
	}

	for _, q := range []dim.DynamicQuantity{
		si.Meters(0.1).Dynamic(),
		dim.Mul(si.Meters(3), si.Seconds(7)),
		dim.Pow(si.Seconds(2), -2),
		si.Amperes(2).Dynamic().Div(dim.Pow(si.Meters(1), 2)),
	} {
		text := facet.Format(q)
		back, err := facet.Parse(text)
		require.NoError(t, err, text)
		assert.True(t, q.Equal(back), "%s: %v", text, back)
	}
}
