// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package si is the International System of Units: unit types, common
// conversions and the default symbol tables.
package si

import (
	"github.com/mikecarlton/dim"
	"github.com/mikecarlton/dim/dimension"
)

func of(pairs ...int) dimension.Vector {
	return dimension.Of(pairs...)
}

const (
	length      = int(dimension.Length)
	time        = int(dimension.Time)
	mass        = int(dimension.Mass)
	angle       = int(dimension.Angle)
	temperature = int(dimension.Temperature)
	amount      = int(dimension.Amount)
	current     = int(dimension.Current)
	luminosity  = int(dimension.Luminosity)
)

// Dimension vectors of the SI quantities.
var (
	DimensionlessDim = dimension.Dimensionless

	LengthDim      = of(length, 1)
	TimeDim        = of(time, 1)
	MassDim        = of(mass, 1)
	AngleDim       = of(angle, 1)
	TemperatureDim = of(temperature, 1)
	AmountDim      = of(amount, 1)
	CurrentDim     = of(current, 1)
	LuminosityDim  = of(luminosity, 1)

	SolidAngleDim         = of(angle, 2)
	FrequencyDim          = of(time, -1)
	AreaDim               = of(length, 2)
	VolumeDim             = of(length, 3)
	SpeedDim              = of(length, 1, time, -1)
	AccelerationDim       = of(length, 1, time, -2)
	AngularRateDim        = of(angle, 1, time, -1)
	AngularAccelDim       = of(angle, 1, time, -2)
	FlowRateDim           = of(length, 3, time, -1)
	DensityDim            = of(mass, 1, length, -3)
	ForceDim              = of(mass, 1, length, 1, time, -2)
	PressureDim           = of(mass, 1, length, -1, time, -2)
	EnergyDim             = of(mass, 1, length, 2, time, -2)
	TorqueDim             = of(mass, 1, length, 2, time, -2, angle, -1)
	PowerDim              = of(mass, 1, length, 2, time, -3)
	ChargeDim             = of(current, 1, time, 1)
	VoltageDim            = of(mass, 1, length, 2, time, -3, current, -1)
	CapacitanceDim        = of(mass, -1, length, -2, time, 4, current, 2)
	ResistanceDim         = of(mass, 1, length, 2, time, -3, current, -2)
	ConductanceDim        = of(mass, -1, length, -2, time, 3, current, 2)
	MagneticFluxDim       = of(mass, 1, length, 2, time, -2, current, -1)
	MagneticFieldDim      = of(mass, 1, time, -2, current, -1)
	InductanceDim         = of(mass, 1, length, 2, time, -2, current, -2)
	LuminousFluxDim       = of(luminosity, 1, angle, 2)
	IlluminanceDim        = of(luminosity, 1, angle, 2, length, -2)
	AbsorbedDoseDim       = of(length, 2, time, -2)
	CatalyticActivityDim  = of(amount, 1, time, -1)
	DynamicViscosityDim   = of(mass, 1, length, -1, time, -1)
	KinematicViscosityDim = of(length, 2, time, -1)
)

var prefixes = map[string]float64{
	"y": 1e-24, "z": 1e-21, "a": 1e-18, "f": 1e-15, "p": 1e-12,
	"n": 1e-9, "u": 1e-6, "µ": 1e-6, "m": 1e-3, "c": 1e-2, "d": 1e-1,
	"da": 1e1, "h": 1e2, "k": 1e3, "M": 1e6, "G": 1e9,
	"T": 1e12, "P": 1e15, "E": 1e18, "Z": 1e21, "Y": 1e24,
}

func symbol(scale float64, v dimension.Vector) dim.Symbol {
	return dim.Symbol{Scale: scale, Dimension: v}
}

// the base symbols the expression parser knows, each of which takes a prefix
var symbols = map[string]dim.Symbol{
	"m":   symbol(1, LengthDim),
	"s":   symbol(1, TimeDim),
	"g":   symbol(1e-3, MassDim),
	"kg":  symbol(1, MassDim),
	"rad": symbol(1, AngleDim),
	"K":   symbol(1, TemperatureDim),
	"mol": symbol(1, AmountDim),
	"A":   symbol(1, CurrentDim),
	"cd":  symbol(1, LuminosityDim),

	"sr":  symbol(1, SolidAngleDim),
	"Hz":  symbol(1, FrequencyDim),
	"N":   symbol(1, ForceDim),
	"Pa":  symbol(1, PressureDim),
	"J":   symbol(1, EnergyDim),
	"W":   symbol(1, PowerDim),
	"C":   symbol(1, ChargeDim),
	"V":   symbol(1, VoltageDim),
	"F":   symbol(1, CapacitanceDim),
	"Ω":   symbol(1, ResistanceDim),
	"ohm": symbol(1, ResistanceDim),
	"S":   symbol(1, ConductanceDim),
	"Wb":  symbol(1, MagneticFluxDim),
	"T":   symbol(1, MagneticFieldDim),
	"H":   symbol(1, InductanceDim),
	"lm":  symbol(1, LuminousFluxDim),
	"lx":  symbol(1, IlluminanceDim),
	"Bq":  symbol(1, FrequencyDim),
	"Gy":  symbol(1, AbsorbedDoseDim),
	"Sv":  symbol(1, AbsorbedDoseDim),
	"kat": symbol(1, CatalyticActivityDim),
	"Pl":  symbol(1, DynamicViscosityDim),
	"St":  symbol(1e-4, KinematicViscosityDim),
	"L":   symbol(1e-3, VolumeDim),
	"eV":  symbol(1.602176634e-19, EnergyDim),
	"bar": symbol(1e5, PressureDim),
}

// specialized symbols name a whole vector when rendering without a formatter
var specialized = map[dimension.Vector]string{
	ForceDim:             "N",
	PressureDim:          "Pa",
	EnergyDim:            "J",
	PowerDim:             "W",
	ChargeDim:            "C",
	VoltageDim:           "V",
	CapacitanceDim:       "F",
	ResistanceDim:        "Ω",
	ConductanceDim:       "S",
	MagneticFluxDim:      "Wb",
	MagneticFieldDim:     "T",
	InductanceDim:        "H",
	FrequencyDim:         "Hz",
	SolidAngleDim:        "sr",
	LuminousFluxDim:      "lm",
	IlluminanceDim:       "lx",
	CatalyticActivityDim: "kat",
	DynamicViscosityDim:  "Pl",
}

// System is the SI system of measurement.
var System = dim.NewSystem(dim.SystemDef{
	Name: "SI",
	BaseSymbols: [dimension.NumBase]string{
		dimension.Length:      "m",
		dimension.Time:        "s",
		dimension.Mass:        "kg",
		dimension.Angle:       "rad",
		dimension.Temperature: "K",
		dimension.Amount:      "mol",
		dimension.Current:     "A",
		dimension.Luminosity:  "cd",
	},
	Specialized: specialized,
	Symbols:     symbols,
	Prefixes:    prefixes,
})

// Unit returns the SI unit of v.
func Unit(v dimension.Vector) dim.DynamicUnit {
	return System.Unit(v)
}

// Q is a quantity of vector v in canonical SI units.
func Q(value float64, v dimension.Vector) dim.DynamicQuantity {
	return dim.NewDynamic(value, System.Unit(v))
}
