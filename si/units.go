// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si

import (
	"github.com/mikecarlton/dim"
	"github.com/mikecarlton/dim/dimension"
)

// siUnit supplies System for the unit tags below.
type siUnit struct{}

func (siUnit) System() *dim.System { return System }

// base units
type (
	Number   struct{ siUnit }
	Meter    struct{ siUnit }
	Second   struct{ siUnit }
	Kilogram struct{ siUnit }
	Radian   struct{ siUnit }
	Kelvin   struct{ siUnit }
	Mole     struct{ siUnit }
	Ampere   struct{ siUnit }
	Candela  struct{ siUnit }
)

func (Number) Name() string   { return "number" }
func (Meter) Name() string    { return "meter" }
func (Second) Name() string   { return "second" }
func (Kilogram) Name() string { return "kilogram" }
func (Radian) Name() string   { return "radian" }
func (Kelvin) Name() string   { return "kelvin" }
func (Mole) Name() string     { return "mole" }
func (Ampere) Name() string   { return "ampere" }
func (Candela) Name() string  { return "candela" }

func (Number) Dimension() dimension.Vector   { return DimensionlessDim }
func (Meter) Dimension() dimension.Vector    { return LengthDim }
func (Second) Dimension() dimension.Vector   { return TimeDim }
func (Kilogram) Dimension() dimension.Vector { return MassDim }
func (Radian) Dimension() dimension.Vector   { return AngleDim }
func (Kelvin) Dimension() dimension.Vector   { return TemperatureDim }
func (Mole) Dimension() dimension.Vector     { return AmountDim }
func (Ampere) Dimension() dimension.Vector   { return CurrentDim }
func (Candela) Dimension() dimension.Vector  { return LuminosityDim }

// derived units with special names
type (
	Steradian  struct{ siUnit }
	Hertz      struct{ siUnit }
	Becquerel  struct{ siUnit }
	Newton     struct{ siUnit }
	Pascal     struct{ siUnit }
	Joule      struct{ siUnit }
	Watt       struct{ siUnit }
	Coulomb    struct{ siUnit }
	Volt       struct{ siUnit }
	Farad      struct{ siUnit }
	Ohm        struct{ siUnit }
	Siemens    struct{ siUnit }
	Weber      struct{ siUnit }
	Tesla      struct{ siUnit }
	Henry      struct{ siUnit }
	Lumen      struct{ siUnit }
	Lux        struct{ siUnit }
	Gray       struct{ siUnit }
	Sievert    struct{ siUnit }
	Katal      struct{ siUnit }
	Poiseuille struct{ siUnit }
)

func (Steradian) Name() string  { return "steradian" }
func (Hertz) Name() string      { return "hertz" }
func (Becquerel) Name() string  { return "becquerel" }
func (Newton) Name() string     { return "newton" }
func (Pascal) Name() string     { return "pascal" }
func (Joule) Name() string      { return "joule" }
func (Watt) Name() string       { return "watt" }
func (Coulomb) Name() string    { return "coulomb" }
func (Volt) Name() string       { return "volt" }
func (Farad) Name() string      { return "farad" }
func (Ohm) Name() string        { return "ohm" }
func (Siemens) Name() string    { return "siemens" }
func (Weber) Name() string      { return "weber" }
func (Tesla) Name() string      { return "tesla" }
func (Henry) Name() string      { return "henry" }
func (Lumen) Name() string      { return "lumen" }
func (Lux) Name() string        { return "lux" }
func (Gray) Name() string       { return "gray" }
func (Sievert) Name() string    { return "sievert" }
func (Katal) Name() string      { return "katal" }
func (Poiseuille) Name() string { return "poiseuille" }

func (Steradian) Dimension() dimension.Vector  { return SolidAngleDim }
func (Hertz) Dimension() dimension.Vector      { return FrequencyDim }
func (Becquerel) Dimension() dimension.Vector  { return FrequencyDim }
func (Newton) Dimension() dimension.Vector     { return ForceDim }
func (Pascal) Dimension() dimension.Vector     { return PressureDim }
func (Joule) Dimension() dimension.Vector      { return EnergyDim }
func (Watt) Dimension() dimension.Vector       { return PowerDim }
func (Coulomb) Dimension() dimension.Vector    { return ChargeDim }
func (Volt) Dimension() dimension.Vector       { return VoltageDim }
func (Farad) Dimension() dimension.Vector      { return CapacitanceDim }
func (Ohm) Dimension() dimension.Vector        { return ResistanceDim }
func (Siemens) Dimension() dimension.Vector    { return ConductanceDim }
func (Weber) Dimension() dimension.Vector      { return MagneticFluxDim }
func (Tesla) Dimension() dimension.Vector      { return MagneticFieldDim }
func (Henry) Dimension() dimension.Vector      { return InductanceDim }
func (Lumen) Dimension() dimension.Vector      { return LuminousFluxDim }
func (Lux) Dimension() dimension.Vector        { return IlluminanceDim }
func (Gray) Dimension() dimension.Vector       { return AbsorbedDoseDim }
func (Sievert) Dimension() dimension.Vector    { return AbsorbedDoseDim }
func (Katal) Dimension() dimension.Vector      { return CatalyticActivityDim }
func (Poiseuille) Dimension() dimension.Vector { return DynamicViscosityDim }

// compound units
type (
	SquareMeter            struct{ siUnit }
	CubicMeter             struct{ siUnit }
	MeterPerSecond         struct{ siUnit }
	MeterPerSecondSquared  struct{ siUnit }
	RadianPerSecond        struct{ siUnit }
	RadianPerSecondSquared struct{ siUnit }
	CubicMeterPerSecond    struct{ siUnit }
	KilogramPerCubicMeter  struct{ siUnit }
	NewtonMeterPerRadian   struct{ siUnit }
	SquareMeterPerSecond   struct{ siUnit }
)

func (SquareMeter) Name() string            { return "square meter" }
func (CubicMeter) Name() string             { return "cubic meter" }
func (MeterPerSecond) Name() string         { return "meter per second" }
func (MeterPerSecondSquared) Name() string  { return "meter per second squared" }
func (RadianPerSecond) Name() string        { return "radian per second" }
func (RadianPerSecondSquared) Name() string { return "radian per second squared" }
func (CubicMeterPerSecond) Name() string    { return "cubic meter per second" }
func (KilogramPerCubicMeter) Name() string  { return "kilogram per cubic meter" }
func (NewtonMeterPerRadian) Name() string   { return "newton meter per radian" }
func (SquareMeterPerSecond) Name() string   { return "square meter per second" }

func (SquareMeter) Dimension() dimension.Vector            { return AreaDim }
func (CubicMeter) Dimension() dimension.Vector             { return VolumeDim }
func (MeterPerSecond) Dimension() dimension.Vector         { return SpeedDim }
func (MeterPerSecondSquared) Dimension() dimension.Vector  { return AccelerationDim }
func (RadianPerSecond) Dimension() dimension.Vector        { return AngularRateDim }
func (RadianPerSecondSquared) Dimension() dimension.Vector { return AngularAccelDim }
func (CubicMeterPerSecond) Dimension() dimension.Vector    { return FlowRateDim }
func (KilogramPerCubicMeter) Dimension() dimension.Vector  { return DensityDim }
func (NewtonMeterPerRadian) Dimension() dimension.Vector   { return TorqueDim }
func (SquareMeterPerSecond) Dimension() dimension.Vector   { return KinematicViscosityDim }

// quantity types
type (
	Scalar             = dim.Quantity[Number]
	Length             = dim.Quantity[Meter]
	Time               = dim.Quantity[Second]
	Mass               = dim.Quantity[Kilogram]
	Angle              = dim.Quantity[Radian]
	Temperature        = dim.Quantity[Kelvin]
	Amount             = dim.Quantity[Mole]
	Current            = dim.Quantity[Ampere]
	Luminosity         = dim.Quantity[Candela]
	SolidAngle         = dim.Quantity[Steradian]
	Frequency          = dim.Quantity[Hertz]
	Radioactivity      = dim.Quantity[Becquerel]
	Force              = dim.Quantity[Newton]
	Pressure           = dim.Quantity[Pascal]
	Energy             = dim.Quantity[Joule]
	Power              = dim.Quantity[Watt]
	Charge             = dim.Quantity[Coulomb]
	Voltage            = dim.Quantity[Volt]
	Capacitance        = dim.Quantity[Farad]
	Resistance         = dim.Quantity[Ohm]
	Conductance        = dim.Quantity[Siemens]
	MagneticFlux       = dim.Quantity[Weber]
	MagneticField      = dim.Quantity[Tesla]
	Inductance         = dim.Quantity[Henry]
	LuminousFlux       = dim.Quantity[Lumen]
	Illuminance        = dim.Quantity[Lux]
	AbsorbedDose       = dim.Quantity[Gray]
	DoseEquivalent     = dim.Quantity[Sievert]
	CatalyticActivity  = dim.Quantity[Katal]
	DynamicViscosity   = dim.Quantity[Poiseuille]
	Area               = dim.Quantity[SquareMeter]
	Volume             = dim.Quantity[CubicMeter]
	Speed              = dim.Quantity[MeterPerSecond]
	Acceleration       = dim.Quantity[MeterPerSecondSquared]
	AngularRate        = dim.Quantity[RadianPerSecond]
	AngularAccel       = dim.Quantity[RadianPerSecondSquared]
	FlowRate           = dim.Quantity[CubicMeterPerSecond]
	Density            = dim.Quantity[KilogramPerCubicMeter]
	Torque             = dim.Quantity[NewtonMeterPerRadian]
	KinematicViscosity = dim.Quantity[SquareMeterPerSecond]
)
