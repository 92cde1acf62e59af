// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package dim

import (
	"math"
)

// Quantity is a float64 in canonical units tagged with the static unit U.
// Add, Sub and the comparisons only accept the same U, so mixing meters and
// seconds does not compile.
type Quantity[U Unit] struct {
	value float64
}

// New tags value, already in canonical units, with U.
func New[U Unit](value float64) Quantity[U] {
	return Quantity[U]{value: value}
}

// Bad is the "no measurement" quantity of unit U.
func Bad[U Unit]() Quantity[U] {
	return Quantity[U]{value: math.NaN()}
}

// Value is the raw scalar in canonical units.
func (q Quantity[U]) Value() float64 {
	return q.value
}

func (q Quantity[U]) IsBad() bool {
	return math.IsNaN(q.value)
}

func (q Quantity[U]) Unit() DynamicUnit {
	return UnitOf[U]()
}

func (q Quantity[U]) Add(other Quantity[U]) Quantity[U] {
	return Quantity[U]{value: q.value + other.value}
}

func (q Quantity[U]) Sub(other Quantity[U]) Quantity[U] {
	return Quantity[U]{value: q.value - other.value}
}

func (q Quantity[U]) Neg() Quantity[U] {
	return Quantity[U]{value: -q.value}
}

func (q Quantity[U]) Abs() Quantity[U] {
	return Quantity[U]{value: math.Abs(q.value)}
}

// Scale multiplies by a dimensionless factor.
func (q Quantity[U]) Scale(factor float64) Quantity[U] {
	return Quantity[U]{value: q.value * factor}
}

// Per divides by a dimensionless factor.
func (q Quantity[U]) Per(divisor float64) Quantity[U] {
	return Quantity[U]{value: q.value / divisor}
}

// Comparisons are false whenever either side is bad.

func (q Quantity[U]) Equal(other Quantity[U]) bool {
	return q.value == other.value
}

func (q Quantity[U]) Less(other Quantity[U]) bool {
	return q.value < other.value
}

func (q Quantity[U]) LessEqual(other Quantity[U]) bool {
	return q.value <= other.value
}

func (q Quantity[U]) Greater(other Quantity[U]) bool {
	return q.value > other.value
}

func (q Quantity[U]) GreaterEqual(other Quantity[U]) bool {
	return q.value >= other.value
}

// Dynamic drops the static tag; it always succeeds.
func (q Quantity[U]) Dynamic() DynamicQuantity {
	return DynamicQuantity{value: q.value, unit: UnitOf[U]()}
}

func (q Quantity[U]) String() string {
	return render(q.value, UnitOf[U]())
}

// ToDynamic is the function form of Quantity.Dynamic.
func ToDynamic[U Unit](q Quantity[U]) DynamicQuantity {
	return q.Dynamic()
}

// As checks that dq has U's dimension and system and re-tags it statically.
// A bad dq of the right unit converts to a bad Quantity without error.
func As[U Unit](dq DynamicQuantity) (Quantity[U], error) {
	want := UnitOf[U]()
	if !dq.unit.Matches(want) {
		return Bad[U](), incommensurable("convert", dq.unit, want)
	}
	return Quantity[U]{value: dq.value}, nil
}

// MustAs is As for units known to match; it panics otherwise.
func MustAs[U Unit](dq DynamicQuantity) Quantity[U] {
	q, err := As[U](dq)
	if err != nil {
		panic(err)
	}
	return q
}

// Mul multiplies quantities of any units.
func Mul[A, B Unit](a Quantity[A], b Quantity[B]) DynamicQuantity {
	return a.Dynamic().Mul(b.Dynamic())
}

// Div divides quantities of any units.
func Div[A, B Unit](a Quantity[A], b Quantity[B]) DynamicQuantity {
	return a.Dynamic().Div(b.Dynamic())
}

// MulAs multiplies and checks that the product has unit R,
// e.g. MulAs[si.Newton](mass, acceleration).
func MulAs[R, A, B Unit](a Quantity[A], b Quantity[B]) (Quantity[R], error) {
	return As[R](Mul(a, b))
}

// DivAs divides and checks that the quotient has unit R.
func DivAs[R, A, B Unit](a Quantity[A], b Quantity[B]) (Quantity[R], error) {
	return As[R](Div(a, b))
}

// Pow raises q to the integer power n.
func Pow[U Unit](q Quantity[U], n int) DynamicQuantity {
	return q.Dynamic().Pow(n)
}

// Root takes the n-th root, failing with ErrRootNotRepresentable when U's
// exponents are not divisible by n. A negative scalar gives a bad quantity.
func Root[U Unit](q Quantity[U], n int) (DynamicQuantity, error) {
	return q.Dynamic().Root(n)
}

// RatPow raises q to num/den, e.g. RatPow(area, 3, 2) is a volume. It fails
// with ErrRootNotRepresentable when an exponent of U times num is not
// divisible by den.
func RatPow[U Unit](q Quantity[U], num, den int) (DynamicQuantity, error) {
	return q.Dynamic().RatPow(num, den)
}

func Sqrt[U Unit](q Quantity[U]) (DynamicQuantity, error) {
	return Root(q, 2)
}

// Ratio divides two quantities of the same unit, giving a plain number.
func Ratio[U Unit](a, b Quantity[U]) float64 {
	return a.value / b.value
}

// ToScalar unwraps a dimensionless quantity.
func ToScalar(dq DynamicQuantity) (float64, error) {
	if !dq.IsDimensionless() {
		return math.NaN(), incommensurable("to scalar", dq.unit, DynamicUnit{system: dq.unit.system})
	}
	return dq.value, nil
}

// FromScalar is the dimensionless quantity x of system sys.
func FromScalar(sys *System, x float64) DynamicQuantity {
	return DynamicQuantity{value: x, unit: DynamicUnit{system: sys}}
}
