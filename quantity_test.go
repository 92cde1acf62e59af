// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package dim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikecarlton/dim"
	"github.com/mikecarlton/dim/si"
)

func TestQuantityArithmetic(t *testing.T) {
	a := si.Meters(5)
	b := si.Meters(3)

	assert.Equal(t, 8.0, a.Add(b).Value())
	assert.Equal(t, 2.0, a.Sub(b).Value())
	assert.Equal(t, -5.0, a.Neg().Value())
	assert.Equal(t, 5.0, a.Neg().Abs().Value())
	assert.Equal(t, 10.0, a.Scale(2).Value())
	assert.Equal(t, 2.5, a.Per(2).Value())
	assert.True(t, b.Less(a))
	assert.True(t, a.Greater(b))
	assert.True(t, a.LessEqual(a))
	assert.True(t, a.GreaterEqual(a))
	assert.True(t, a.Equal(si.Meters(5)))
	assert.Equal(t, 5.0/3.0, dim.Ratio(a, b))
}

func TestMulDiv(t *testing.T) {
	force, err := dim.MulAs[si.Newton](si.Kilograms(2), dim.New[si.MeterPerSecondSquared](3))
	require.NoError(t, err)
	assert.Equal(t, 6.0, force.Value())

	speed, err := dim.DivAs[si.MeterPerSecond](si.Meters(100), si.Seconds(4))
	require.NoError(t, err)
	assert.Equal(t, 25.0, speed.Value())

	q := dim.Mul(si.Meters(2), si.Meters(3))
	assert.Equal(t, si.AreaDim, q.Unit().Dimension())
	assert.Equal(t, 6.0, q.Value())

	_, err = dim.DivAs[si.MeterPerSecond](si.Seconds(4), si.Meters(100))
	assert.ErrorIs(t, err, dim.ErrIncommensurable)
}

func TestIncommensurable(t *testing.T) {
	_, err := si.Meters(5).Dynamic().Add(si.Seconds(3).Dynamic())
	require.Error(t, err)
	assert.ErrorIs(t, err, dim.ErrIncommensurable)

	var ie *dim.IncommensurableError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, si.TimeDim, ie.Observed.Dimension())
	assert.Equal(t, si.LengthDim, ie.Expected.Dimension())
	assert.Contains(t, err.Error(), "unit dimensions (s) should be m")

	_, err = si.Meters(5).Dynamic().Sub(si.Seconds(3).Dynamic())
	assert.ErrorIs(t, err, dim.ErrIncommensurable)
}

func TestBadQuantity(t *testing.T) {
	bad := dim.Bad[si.Meter]()
	good := si.Meters(1)

	assert.True(t, bad.IsBad())
	assert.False(t, good.IsBad())

	assert.True(t, bad.Add(good).IsBad())
	assert.True(t, good.Sub(bad).IsBad())
	assert.True(t, bad.Abs().IsBad())
	assert.True(t, bad.Scale(0).IsBad())
	assert.True(t, dim.Mul(bad, si.Seconds(2)).IsBad())
	assert.True(t, dim.Pow(bad, 0).IsBad())

	root, err := dim.Sqrt(dim.MustAs[si.SquareMeter](dim.Mul(bad, good)))
	require.NoError(t, err)
	assert.True(t, root.IsBad())

	for name, cmp := range map[string]func(a, b si.Length) bool{
		"Equal":        si.Length.Equal,
		"Less":         si.Length.Less,
		"LessEqual":    si.Length.LessEqual,
		"Greater":      si.Length.Greater,
		"GreaterEqual": si.Length.GreaterEqual,
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, cmp(bad, good))
			assert.False(t, cmp(good, bad))
			assert.False(t, cmp(bad, bad))
		})
	}

	converted, err := dim.As[si.Meter](bad.Dynamic())
	require.NoError(t, err)
	assert.True(t, converted.IsBad())
}

func TestSqrtNegative(t *testing.T) {
	root, err := dim.Sqrt(dim.New[si.SquareMeter](-4))
	require.NoError(t, err)
	assert.True(t, root.IsBad())
}

func TestRoot(t *testing.T) {
	root, err := dim.Sqrt(dim.New[si.SquareMeter](9))
	require.NoError(t, err)
	side, err := dim.As[si.Meter](root)
	require.NoError(t, err)
	assert.Equal(t, 3.0, side.Value())

	cube, err := dim.Root(dim.New[si.CubicMeter](8), 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, cube.Value(), 1e-12)

	_, err = dim.Root(si.Meters(4), 2)
	assert.ErrorIs(t, err, dim.ErrRootNotRepresentable)

	_, err = dim.Pow(si.Meters(4), 1).Root(2)
	assert.ErrorIs(t, err, dim.ErrRootNotRepresentable)
}

func TestRatPow(t *testing.T) {
	volume, err := dim.RatPow(dim.New[si.SquareMeter](4), 3, 2)
	require.NoError(t, err)
	assert.Equal(t, si.VolumeDim, volume.Unit().Dimension())
	assert.InDelta(t, 8.0, volume.Value(), 1e-12)

	unit, err := si.System.Unit(si.AreaDim).RatPow(3, 2)
	require.NoError(t, err)
	assert.Equal(t, si.VolumeDim, unit.Dimension())
	assert.Same(t, si.System, unit.System())

	negative, err := dim.RatPow(dim.New[si.SquareMeter](-4), 1, 2)
	require.NoError(t, err)
	assert.True(t, negative.IsBad())

	squared, err := dim.New[si.Meter](-3).Dynamic().RatPow(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, squared.Value())

	bad, err := dim.RatPow(si.Meters(4), 3, 2)
	assert.ErrorIs(t, err, dim.ErrRootNotRepresentable)
	assert.True(t, bad.IsBad())
}

func TestPow(t *testing.T) {
	q := dim.Pow(si.Meters(2), 3)
	assert.Equal(t, si.VolumeDim, q.Unit().Dimension())
	assert.Equal(t, 8.0, q.Value())

	inv := dim.Pow(si.Seconds(2), -1)
	assert.Equal(t, si.FrequencyDim, inv.Unit().Dimension())
	assert.Equal(t, 0.5, inv.Value())
}

func TestStaticDynamicRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -2.5, 1e-300, 6.02214076e23} {
		q := si.Newtons(v)
		back, err := dim.As[si.Newton](dim.ToDynamic(q))
		require.NoError(t, err)
		assert.True(t, q.Equal(back))
	}

	_, err := dim.As[si.Newton](si.Joules(1).Dynamic())
	assert.ErrorIs(t, err, dim.ErrIncommensurable)

	assert.Panics(t, func() { dim.MustAs[si.Meter](si.Seconds(1).Dynamic()) })
}

func TestUnitsMatch(t *testing.T) {
	assert.True(t, dim.UnitsMatch(dim.UnitOf[si.Hertz](), dim.UnitOf[si.Becquerel]()))
	assert.True(t, dim.UnitsMatch(dim.UnitOf[si.Joule](), si.Unit(si.EnergyDim)))
	assert.False(t, dim.UnitsMatch(dim.UnitOf[si.Joule](), dim.UnitOf[si.NewtonMeterPerRadian]()))

	other := dim.NewSystem(dim.SystemDef{Name: "other"})
	assert.False(t, dim.UnitsMatch(si.Unit(si.LengthDim), other.Unit(si.LengthDim)))
	assert.True(t, other.Unit(si.LengthDim).Mul(si.Unit(si.LengthDim)).System() == other)
}

func TestScalar(t *testing.T) {
	x, err := dim.ToScalar(dim.Div(si.Meters(6), si.Meters(3)))
	require.NoError(t, err)
	assert.Equal(t, 2.0, x)

	_, err = dim.ToScalar(si.Meters(6).Dynamic())
	assert.ErrorIs(t, err, dim.ErrIncommensurable)

	q := dim.FromScalar(si.System, 3)
	assert.True(t, q.IsDimensionless())
	n, err := dim.As[si.Number](q)
	require.NoError(t, err)
	assert.Equal(t, 3.0, n.Value())

	scaled := si.Meters(2).Dynamic().Mul(dim.Scalar(4))
	assert.True(t, scaled.Equal(si.Meters(8).Dynamic()))
}

func TestQuantityString(t *testing.T) {
	tests := []struct {
		input    dim.DynamicQuantity
		expected string
	}{
		{si.Meters(5).Dynamic(), "5 m"},
		{si.Newtons(5).Dynamic(), "5 N"},
		{dim.Div(si.Meters(3), si.Seconds(1)), "3 m/s"},
		{dim.Div(si.Dimensionless(2), si.Seconds(1)), "2 Hz"},
		{dim.Mul(si.Meters(1), si.Seconds(1)), "1 m*s"},
		{dim.FromScalar(si.System, 0.5), "0.5"},
		{si.Kilograms(1).Dynamic().Mul(dim.Pow(si.Seconds(1), -1)), "1 kg/s"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.input.String())
		})
	}

	assert.Equal(t, "5 m", si.Meters(5).String())
	assert.Equal(t, "NaN m", dim.Bad[si.Meter]().String())
	assert.True(t, math.IsNaN(dim.Bad[si.Meter]().Value()))
}
