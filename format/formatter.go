// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package format

import (
	"math"
	"strconv"

	"github.com/mikecarlton/dim"
	"github.com/shopspring/decimal"
)

// Formatter converts between canonical quantities and the scalar shown next
// to Symbol:
//
//	display   = (canonical - Offset) / Scale
//	canonical = display * Scale + Offset
//
// Offset is in canonical units and is zero except for affine units such as
// degrees Celsius.
type Formatter struct {
	Symbol string
	Scale  dim.DynamicQuantity
	Offset float64
}

func NewFormatter(symbol string, scale dim.DynamicQuantity) Formatter {
	return Formatter{Symbol: symbol, Scale: scale}
}

// NewAffineFormatter checks that offset has the unit of scale.
func NewAffineFormatter(symbol string, scale, offset dim.DynamicQuantity) (Formatter, error) {
	if !dim.UnitsMatch(scale.Unit(), offset.Unit()) {
		return Formatter{}, &dim.IncommensurableError{Op: "offset " + symbol, Observed: offset.Unit(), Expected: scale.Unit()}
	}
	return Formatter{Symbol: symbol, Scale: scale, Offset: offset.Value()}, nil
}

func (f Formatter) Unit() dim.DynamicUnit {
	return f.Scale.Unit()
}

// IsAffine reports a non-zero offset.
func (f Formatter) IsAffine() bool {
	return f.Offset != 0
}

// Output converts q for display with f. q must have f's unit.
func (f Formatter) Output(q dim.DynamicQuantity) (FormattedQuantity, error) {
	if !dim.UnitsMatch(q.Unit(), f.Unit()) {
		return FormattedQuantity{}, &dim.IncommensurableError{Op: "output " + f.Symbol, Observed: q.Unit(), Expected: f.Unit()}
	}
	return FormattedQuantity{Value: (q.Value() - f.Offset) / f.Scale.Value(), Symbol: f.Symbol}, nil
}

// Input converts a displayed scalar to a canonical quantity.
func (f Formatter) Input(value float64) dim.DynamicQuantity {
	return dim.NewDynamic(value*f.Scale.Value()+f.Offset, f.Unit())
}

// FormattedQuantity is a displayed scalar and its symbol, e.g. {5, "m"}.
type FormattedQuantity struct {
	Value  float64
	Symbol string
}

// String uses the shortest representation that reads back exactly.
func (fq FormattedQuantity) String() string {
	return withSymbol(strconv.FormatFloat(fq.Value, 'g', -1, 64), fq.Symbol)
}

// Text rounds to precision decimal places and trims trailing zeros.
func (fq FormattedQuantity) Text(precision int32) string {
	if math.IsNaN(fq.Value) || math.IsInf(fq.Value, 0) {
		return fq.String()
	}
	return withSymbol(decimal.NewFromFloat(fq.Value).Round(precision).String(), fq.Symbol)
}

func withSymbol(number, symbol string) string {
	if symbol == "" {
		return number
	}
	return number + " " + symbol
}
