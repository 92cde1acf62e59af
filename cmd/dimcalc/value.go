// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"math"

	"github.com/mikecarlton/dim"
	"github.com/mikecarlton/dim/format"
)

// Value is a stack entry: a quantity plus the symbol it was last converted
// to for display, if any.
type Value struct {
	quantity dim.DynamicQuantity
	symbol   string
}

func (v Value) hasUnits() bool {
	return !v.quantity.IsDimensionless()
}

func (v Value) render(facet *format.Facet) format.FormattedQuantity {
	if v.symbol != "" {
		if fq, err := facet.RenderAs(v.quantity, v.symbol); err == nil {
			return fq
		}
	}
	return facet.Render(v.quantity)
}

func (v Value) text(facet *format.Facet, precision int32) string {
	return v.render(facet).Text(precision)
}

var ALIASES = map[string]string{
	".":   "*",
	"•":   "*",
	"dup": "d",
	"pop": "p",
	"**":  "pow",
}

var BINARYOP = map[string]func(left, right Value) (Value, error){
	"+": func(left, right Value) (Value, error) {
		q, err := left.quantity.Add(right.quantity)
		return Value{quantity: q, symbol: left.symbol}, err
	},
	"-": func(left, right Value) (Value, error) {
		q, err := left.quantity.Sub(right.quantity)
		return Value{quantity: q, symbol: left.symbol}, err
	},
	"*": func(left, right Value) (Value, error) {
		return Value{quantity: left.quantity.Mul(right.quantity)}, nil
	},
	"/": func(left, right Value) (Value, error) {
		return Value{quantity: left.quantity.Div(right.quantity)}, nil
	},
	"pow": func(left, right Value) (Value, error) {
		n, err := integral(right)
		if err != nil {
			return Value{}, err
		}
		return Value{quantity: left.quantity.Pow(n)}, nil
	},
	"root": func(left, right Value) (Value, error) {
		n, err := integral(right)
		if err != nil {
			return Value{}, err
		}
		q, err := left.quantity.Root(n)
		return Value{quantity: q}, err
	},
}

var UNARYOP = map[string]func(v Value) (Value, error){
	"chs": func(v Value) (Value, error) {
		return Value{quantity: v.quantity.Neg(), symbol: v.symbol}, nil
	},
	"abs": func(v Value) (Value, error) {
		return Value{quantity: v.quantity.Abs(), symbol: v.symbol}, nil
	},
	"r": func(v Value) (Value, error) {
		return Value{quantity: v.quantity.Inverse()}, nil
	},
	"sqrt": func(v Value) (Value, error) {
		q, err := v.quantity.Root(2)
		return Value{quantity: q}, err
	},
}

// largest exponent accepted by pow and root
const maxExponent = math.MaxInt32

// integral returns the exponent held by v, which must be a dimensionless integer.
func integral(v Value) (int, error) {
	x := v.quantity.Value()
	if v.hasUnits() || x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, fmt.Errorf("exponent must be a dimensionless integer, got %s", v.quantity)
	}
	if math.Abs(x) > maxExponent {
		return 0, fmt.Errorf("exponent %s is out of range", v.quantity)
	}
	return int(x), nil
}

// apply tags a dimensionless value with f, or converts a value with units to
// display in f.
func (v Value) apply(f format.Formatter) (Value, error) {
	if !v.hasUnits() {
		return Value{quantity: f.Input(v.quantity.Value()), symbol: f.Symbol}, nil
	}

	if _, err := f.Output(v.quantity); err != nil {
		return Value{}, fmt.Errorf("cannot convert to %s: %w", f.Symbol, err)
	}
	return Value{quantity: v.quantity, symbol: f.Symbol}, nil
}

// strip drops the units, keeping the number as displayed.
func (v Value) strip(facet *format.Facet) Value {
	return Value{quantity: dim.FromScalar(facet.System(), v.render(facet).Value)}
}
