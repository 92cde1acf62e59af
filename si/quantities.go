// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si

import (
	"math"

	"github.com/mikecarlton/dim"
)

func Dimensionless(v float64) Scalar { return dim.New[Number](v) }
func Meters(v float64) Length        { return dim.New[Meter](v) }
func Seconds(v float64) Time         { return dim.New[Second](v) }
func Kilograms(v float64) Mass       { return dim.New[Kilogram](v) }
func Radians(v float64) Angle        { return dim.New[Radian](v) }
func Kelvins(v float64) Temperature  { return dim.New[Kelvin](v) }
func Moles(v float64) Amount         { return dim.New[Mole](v) }
func Amperes(v float64) Current      { return dim.New[Ampere](v) }
func Candelas(v float64) Luminosity  { return dim.New[Candela](v) }
func Hertzes(v float64) Frequency    { return dim.New[Hertz](v) }
func Newtons(v float64) Force        { return dim.New[Newton](v) }
func Pascals(v float64) Pressure     { return dim.New[Pascal](v) }
func Joules(v float64) Energy        { return dim.New[Joule](v) }
func Watts(v float64) Power          { return dim.New[Watt](v) }
func Coulombs(v float64) Charge      { return dim.New[Coulomb](v) }
func Volts(v float64) Voltage        { return dim.New[Volt](v) }
func Ohms(v float64) Resistance      { return dim.New[Ohm](v) }

// Common units, in canonical SI.
var (
	Millimeter   = Meters(1e-3)
	Centimeter   = Meters(1e-2)
	Kilometer    = Meters(1e3)
	Inch         = Meters(0.0254)
	Foot         = Meters(0.3048)
	Yard         = Meters(0.9144)
	Mile         = Meters(1609.344)
	NauticalMile = Meters(1852)

	Minute = Seconds(60)
	Hour   = Seconds(3600)
	Day    = Seconds(86400)

	Gram      = Kilograms(1e-3)
	Tonne     = Kilograms(1e3)
	PoundMass = Kilograms(0.45359237)
	Ounce     = Kilograms(0.028349523125)
	Slug      = Kilograms(14.593902937)

	Degree     = Radians(math.Pi / 180)
	Arcminute  = Radians(math.Pi / 180 / 60)
	Arcsecond  = Radians(math.Pi / 180 / 3600)
	Revolution = Radians(2 * math.Pi)

	PoundForce = Newtons(4.4482216152605)
	Dyne       = Newtons(1e-5)

	Atmosphere = Pascals(101325)
	Bar        = Pascals(1e5)
	Psi        = Pascals(6894.757293168)
	Torr       = Pascals(101325.0 / 760)

	Calorie      = Joules(4.184)
	Kilocalorie  = Joules(4184)
	Erg          = Joules(1e-7)
	BTU          = Joules(1055.05585262)
	KilowattHour = Joules(3.6e6)
	ElectronVolt = Joules(1.602176634e-19)

	Horsepower = Watts(745.69987158227)

	Liter  = dim.New[CubicMeter](1e-3)
	Gallon = dim.New[CubicMeter](3.785411784e-3)

	Acre    = dim.New[SquareMeter](4046.8564224)
	Hectare = dim.New[SquareMeter](1e4)

	Knot = dim.New[MeterPerSecond](1852.0 / 3600)
	Mph  = dim.New[MeterPerSecond](1609.344 / 3600)
	Kph  = dim.New[MeterPerSecond](1000.0 / 3600)

	StandardGravity = dim.New[MeterPerSecondSquared](9.80665)
)

const (
	// CelsiusOffset is 0 °C in kelvin.
	CelsiusOffset = 273.15
	// FahrenheitOffset is 0 °F in kelvin.
	FahrenheitOffset = 459.67 * 5.0 / 9.0
)

// Celsius is the temperature c °C.
func Celsius(c float64) Temperature {
	return Kelvins(c + CelsiusOffset)
}

// Fahrenheit is the temperature f °F.
func Fahrenheit(f float64) Temperature {
	return Kelvins((f + 459.67) * 5 / 9)
}

// Rankine is the temperature r °R.
func Rankine(r float64) Temperature {
	return Kelvins(r * 5 / 9)
}

func ToCelsius(t Temperature) float64 {
	return t.Value() - CelsiusOffset
}

func ToFahrenheit(t Temperature) float64 {
	return t.Value()*9/5 - 459.67
}

func Sin(a Angle) float64 {
	return math.Sin(a.Value())
}

func Cos(a Angle) float64 {
	return math.Cos(a.Value())
}

func Tan(a Angle) float64 {
	return math.Tan(a.Value())
}

// Asin is bad for x outside [-1, 1].
func Asin(x float64) Angle {
	return Radians(math.Asin(x))
}

func Acos(x float64) Angle {
	return Radians(math.Acos(x))
}

func Atan(x float64) Angle {
	return Radians(math.Atan(x))
}

// Atan2 takes any two quantities of the same unit.
func Atan2[U dim.Unit](y, x dim.Quantity[U]) Angle {
	return Radians(math.Atan2(y.Value(), x.Value()))
}
