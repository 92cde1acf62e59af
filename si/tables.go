// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si

import (
	"math"

	"github.com/mikecarlton/dim/dimension"
	"github.com/mikecarlton/dim/format"
)

func entry(symbol string, scale float64, v dimension.Vector) format.Formatter {
	return format.NewFormatter(symbol, Q(scale, v))
}

func entries(v dimension.Vector, table map[string]float64) []format.Formatter {
	result := make([]format.Formatter, 0, len(table))
	for symbol, scale := range table {
		result = append(result, entry(symbol, scale, v))
	}
	return result
}

const degree = math.Pi / 180

// INPUTS are the symbols read by the default facet, per quantity.
var INPUTS = map[string]struct {
	Dimension dimension.Vector
	Scales    map[string]float64
}{
	"length": {LengthDim, map[string]float64{
		"m": 1, "km": 1e3, "cm": 1e-2, "mm": 1e-3, "µm": 1e-6, "um": 1e-6, "nm": 1e-9,
		"in": 0.0254, "ft": 0.3048, "yd": 0.9144, "mi": 1609.344, "nmi": 1852,
	}},
	"time": {TimeDim, map[string]float64{
		"s": 1, "ms": 1e-3, "µs": 1e-6, "us": 1e-6, "ns": 1e-9,
		"min": 60, "h": 3600, "hr": 3600, "day": 86400, "wk": 604800,
	}},
	"mass": {MassDim, map[string]float64{
		"kg": 1, "g": 1e-3, "mg": 1e-6, "t": 1e3,
		"lb": 0.45359237, "lbm": 0.45359237, "oz": 0.028349523125, "slug": 14.593902937,
	}},
	"angle": {AngleDim, map[string]float64{
		"rad": 1, "mrad": 1e-3, "deg": degree, "°": degree,
		"arcmin": degree / 60, "arcsec": degree / 3600, "rev": 2 * math.Pi,
	}},
	"solid angle": {SolidAngleDim, map[string]float64{
		"sr": 1,
	}},
	"frequency": {FrequencyDim, map[string]float64{
		"Hz": 1, "kHz": 1e3, "MHz": 1e6, "GHz": 1e9,
	}},
	"force": {ForceDim, map[string]float64{
		"N": 1, "kN": 1e3, "lbf": 4.4482216152605, "dyn": 1e-5,
	}},
	"pressure": {PressureDim, map[string]float64{
		"Pa": 1, "kPa": 1e3, "MPa": 1e6, "bar": 1e5, "mbar": 100,
		"atm": 101325, "psi": 6894.757293168, "torr": 101325.0 / 760,
	}},
	"energy": {EnergyDim, map[string]float64{
		"J": 1, "kJ": 1e3, "MJ": 1e6, "cal": 4.184, "kcal": 4184,
		"eV": 1.602176634e-19, "erg": 1e-7, "BTU": 1055.05585262,
		"Wh": 3600, "kWh": 3.6e6,
	}},
	"power": {PowerDim, map[string]float64{
		"W": 1, "kW": 1e3, "MW": 1e6, "hp": 745.69987158227,
	}},
	"area": {AreaDim, map[string]float64{
		"m^2": 1, "cm^2": 1e-4, "km^2": 1e6, "in^2": 0.0254 * 0.0254, "ft^2": 0.3048 * 0.3048,
		"acre": 4046.8564224, "ha": 1e4,
	}},
	"volume": {VolumeDim, map[string]float64{
		"m^3": 1, "L": 1e-3, "mL": 1e-6, "cm^3": 1e-6, "gal": 3.785411784e-3,
		"in^3": 0.0254 * 0.0254 * 0.0254, "ft^3": 0.3048 * 0.3048 * 0.3048,
	}},
	"flow rate": {FlowRateDim, map[string]float64{
		"m^3/s": 1, "L/s": 1e-3, "L/min": 1e-3 / 60, "gpm": 3.785411784e-3 / 60,
	}},
	"speed": {SpeedDim, map[string]float64{
		"m/s": 1, "km/h": 1 / 3.6, "kph": 1 / 3.6, "mph": 1609.344 / 3600,
		"kn": 1852.0 / 3600, "ft/s": 0.3048,
	}},
	"acceleration": {AccelerationDim, map[string]float64{
		"m/s^2": 1, "ft/s^2": 0.3048, "g0": 9.80665,
	}},
	"angular rate": {AngularRateDim, map[string]float64{
		"rad/s": 1, "deg/s": degree, "rpm": 2 * math.Pi / 60,
	}},
	"angular acceleration": {AngularAccelDim, map[string]float64{
		"rad/s^2": 1, "deg/s^2": degree,
	}},
	"torque": {TorqueDim, map[string]float64{
		"N*m/rad": 1, "lbf*ft/rad": 4.4482216152605 * 0.3048,
	}},
	"density": {DensityDim, map[string]float64{
		"kg/m^3": 1, "g/cm^3": 1e3, "kg/L": 1e3,
	}},
	"current": {CurrentDim, map[string]float64{
		"A": 1, "mA": 1e-3,
	}},
	"charge": {ChargeDim, map[string]float64{
		"C": 1, "mAh": 3.6, "Ah": 3600,
	}},
	"voltage": {VoltageDim, map[string]float64{
		"V": 1, "mV": 1e-3, "kV": 1e3,
	}},
	"resistance": {ResistanceDim, map[string]float64{
		"Ω": 1, "ohm": 1, "kΩ": 1e3, "MΩ": 1e6,
	}},
	"amount": {AmountDim, map[string]float64{
		"mol": 1, "mmol": 1e-3,
	}},
}

// temperature symbols are affine
func temperatures() []format.Formatter {
	kelvin := Q(1, TemperatureDim)
	rankine := Q(5.0/9.0, TemperatureDim)
	affine := func(symbol string, scale float64, offset float64) format.Formatter {
		return format.Formatter{Symbol: symbol, Scale: Q(scale, TemperatureDim), Offset: offset}
	}

	return []format.Formatter{
		format.NewFormatter("K", kelvin),
		affine("degC", 1, CelsiusOffset),
		affine("°C", 1, CelsiusOffset),
		affine("degF", 5.0/9.0, FahrenheitOffset),
		affine("°F", 5.0/9.0, FahrenheitOffset),
		format.NewFormatter("degR", rankine),
		format.NewFormatter("°R", rankine),
	}
}

// OUTPUTS are the default display symbols, one per vector.
var OUTPUTS = []format.Formatter{
	entry("m", 1, LengthDim),
	entry("s", 1, TimeDim),
	entry("kg", 1, MassDim),
	entry("rad", 1, AngleDim),
	entry("sr", 1, SolidAngleDim),
	entry("K", 1, TemperatureDim),
	entry("mol", 1, AmountDim),
	entry("A", 1, CurrentDim),
	entry("cd", 1, LuminosityDim),
	entry("Hz", 1, FrequencyDim),
	entry("N", 1, ForceDim),
	entry("Pa", 1, PressureDim),
	entry("J", 1, EnergyDim),
	entry("W", 1, PowerDim),
	entry("C", 1, ChargeDim),
	entry("V", 1, VoltageDim),
	entry("F", 1, CapacitanceDim),
	entry("Ω", 1, ResistanceDim),
	entry("S", 1, ConductanceDim),
	entry("Wb", 1, MagneticFluxDim),
	entry("T", 1, MagneticFieldDim),
	entry("H", 1, InductanceDim),
	entry("lm", 1, LuminousFluxDim),
	entry("lx", 1, IlluminanceDim),
	entry("Gy", 1, AbsorbedDoseDim),
	entry("kat", 1, CatalyticActivityDim),
	entry("Pl", 1, DynamicViscosityDim),
	entry("St", 1e-4, KinematicViscosityDim),
	entry("m^2", 1, AreaDim),
	entry("L", 1e-3, VolumeDim),
	entry("L/s", 1e-3, FlowRateDim),
	entry("m/s", 1, SpeedDim),
	entry("m/s^2", 1, AccelerationDim),
	entry("rad/s", 1, AngularRateDim),
	entry("rad/s^2", 1, AngularAccelDim),
	entry("N*m/rad", 1, TorqueDim),
	entry("kg/m^3", 1, DensityDim),
}

// SPECIALIZED outputs apply to one unit type and win over OUTPUTS.
var SPECIALIZED = map[string]format.Formatter{
	Becquerel{}.Name(): entry("Bq", 1, FrequencyDim),
	Sievert{}.Name():   entry("Sv", 1, AbsorbedDoseDim),
}
