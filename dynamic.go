// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package dim

import (
	"math"
	"strconv"
)

// DynamicQuantity is a scalar in canonical units paired with a unit known only
// at runtime. Arithmetic mirrors Quantity; mismatched Add/Sub return an error.
type DynamicQuantity struct {
	value float64
	unit  DynamicUnit
}

func NewDynamic(value float64, unit DynamicUnit) DynamicQuantity {
	return DynamicQuantity{value: value, unit: unit}
}

// Scalar is a dimensionless quantity that combines with any system.
func Scalar(value float64) DynamicQuantity {
	return DynamicQuantity{value: value}
}

// BadDynamic is the invalid quantity of unit u.
func BadDynamic(unit DynamicUnit) DynamicQuantity {
	return DynamicQuantity{value: math.NaN(), unit: unit}
}

// Value is the raw scalar in canonical units.
func (q DynamicQuantity) Value() float64 {
	return q.value
}

func (q DynamicQuantity) Unit() DynamicUnit {
	return q.unit
}

func (q DynamicQuantity) IsBad() bool {
	return math.IsNaN(q.value)
}

func (q DynamicQuantity) IsDimensionless() bool {
	return q.unit.IsDimensionless()
}

func (q DynamicQuantity) Add(other DynamicQuantity) (DynamicQuantity, error) {
	if !q.unit.Matches(other.unit) {
		return BadDynamic(q.unit), incommensurable("add", other.unit, q.unit)
	}
	return DynamicQuantity{value: q.value + other.value, unit: q.unit.merge(other.unit)}, nil
}

func (q DynamicQuantity) Sub(other DynamicQuantity) (DynamicQuantity, error) {
	if !q.unit.Matches(other.unit) {
		return BadDynamic(q.unit), incommensurable("subtract", other.unit, q.unit)
	}
	return DynamicQuantity{value: q.value - other.value, unit: q.unit.merge(other.unit)}, nil
}

// Mul multiplies values and units. Quantities from different systems give
// a bad quantity.
func (q DynamicQuantity) Mul(other DynamicQuantity) DynamicQuantity {
	unit := q.unit.Mul(other.unit)
	if !sameSystem(q.unit.system, other.unit.system) {
		return BadDynamic(unit)
	}
	return DynamicQuantity{value: q.value * other.value, unit: unit}
}

func (q DynamicQuantity) Div(other DynamicQuantity) DynamicQuantity {
	unit := q.unit.Div(other.unit)
	if !sameSystem(q.unit.system, other.unit.system) {
		return BadDynamic(unit)
	}
	return DynamicQuantity{value: q.value / other.value, unit: unit}
}

// Scale multiplies by a dimensionless factor.
func (q DynamicQuantity) Scale(factor float64) DynamicQuantity {
	return DynamicQuantity{value: q.value * factor, unit: q.unit}
}

func (q DynamicQuantity) Neg() DynamicQuantity {
	return DynamicQuantity{value: -q.value, unit: q.unit}
}

func (q DynamicQuantity) Abs() DynamicQuantity {
	return DynamicQuantity{value: math.Abs(q.value), unit: q.unit}
}

func (q DynamicQuantity) Inverse() DynamicQuantity {
	return DynamicQuantity{value: 1 / q.value, unit: q.unit.Inverse()}
}

func (q DynamicQuantity) Pow(n int) DynamicQuantity {
	return DynamicQuantity{value: powInt(q.value, n), unit: q.unit.Pow(n)}
}

// Root takes the n-th root. Every exponent of the unit must be divisible by n.
func (q DynamicQuantity) Root(n int) (DynamicQuantity, error) {
	unit, err := q.unit.Root(n)
	if err != nil {
		return BadDynamic(q.unit), err
	}
	return DynamicQuantity{value: rootFloat(q.value, n), unit: unit}, nil
}

// RatPow raises q to the rational power num/den. A negative scalar with a
// fractional power gives a bad quantity.
func (q DynamicQuantity) RatPow(num, den int) (DynamicQuantity, error) {
	unit, err := q.unit.RatPow(num, den)
	if err != nil {
		return BadDynamic(q.unit), err
	}
	return DynamicQuantity{value: ratPowFloat(q.value, num, den), unit: unit}, nil
}

func (q DynamicQuantity) Sqrt() (DynamicQuantity, error) {
	return q.Root(2)
}

// Equal is false for mismatched units and for bad quantities.
func (q DynamicQuantity) Equal(other DynamicQuantity) bool {
	return q.unit.Matches(other.unit) && q.value == other.value
}

// Less, LessEqual, Greater and GreaterEqual are false for mismatched units
// and whenever either side is bad.
func (q DynamicQuantity) Less(other DynamicQuantity) bool {
	return q.unit.Matches(other.unit) && q.value < other.value
}

func (q DynamicQuantity) LessEqual(other DynamicQuantity) bool {
	return q.unit.Matches(other.unit) && q.value <= other.value
}

func (q DynamicQuantity) Greater(other DynamicQuantity) bool {
	return q.unit.Matches(other.unit) && q.value > other.value
}

func (q DynamicQuantity) GreaterEqual(other DynamicQuantity) bool {
	return q.unit.Matches(other.unit) && q.value >= other.value
}

// String renders the canonical value and default symbol, e.g. "9.81 m/s^2".
func (q DynamicQuantity) String() string {
	return render(q.value, q.unit)
}

func render(value float64, unit DynamicUnit) string {
	result := strconv.FormatFloat(value, 'g', -1, 64)
	if symbol := unit.String(); symbol != "" {
		result += " " + symbol
	}
	return result
}

func powInt(x float64, n int) float64 {
	if math.IsNaN(x) {
		return x
	}
	switch n {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	case -1:
		return 1 / x
	}
	return math.Pow(x, float64(n))
}

func rootFloat(x float64, n int) float64 {
	switch n {
	case 1:
		return x
	case 2:
		return math.Sqrt(x)
	case 3:
		if x < 0 {
			return math.NaN()
		}
		return math.Cbrt(x)
	}
	if x < 0 {
		return math.NaN()
	}
	return math.Pow(x, 1/float64(n))
}

func ratPowFloat(x float64, num, den int) float64 {
	if den == 1 {
		return powInt(x, num)
	}
	if x < 0 {
		return math.NaN()
	}
	return math.Pow(x, float64(num)/float64(den))
}
