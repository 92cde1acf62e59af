// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package dimension implements the exponent vectors that describe the
// physical dimension of a unit relative to the base dimensions of a system.
package dimension

import (
	"errors"
	"fmt"
	"strings"
)

// Base is one axis of measurement (Length, Time, Mass, ...).
type Base int

const (
	Length Base = iota
	Time
	Mass
	Angle
	Temperature
	Amount
	Current
	Luminosity
	NumBase
)

var BASENAME = [NumBase]string{
	Length:      "length",
	Time:        "time",
	Mass:        "mass",
	Angle:       "angle",
	Temperature: "temperature",
	Amount:      "amount",
	Current:     "current",
	Luminosity:  "luminosity",
}

func (b Base) String() string {
	if b < 0 || b >= NumBase {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return BASENAME[b]
}

// ErrRootNotRepresentable is returned when a root would leave a fractional exponent.
var ErrRootNotRepresentable = errors.New("dimension: root not representable")

// ErrInvalidRoot is returned for a zero or negative root.
var ErrInvalidRoot = errors.New("dimension: root must be positive")

// Vector holds one integer exponent per base dimension. The zero value is
// dimensionless. Vectors are comparable and may be used as map keys.
type Vector [NumBase]int

// Dimensionless is the identity for Mul.
var Dimensionless = Vector{}

// Of builds a vector from (base, exponent) pairs, e.g. Of(Length, 1, Time, -2).
func Of(pairs ...int) Vector {
	if len(pairs)%2 != 0 {
		panic("dimension.Of: odd number of arguments")
	}
	var v Vector
	for i := 0; i < len(pairs); i += 2 {
		v[pairs[i]] += pairs[i+1]
	}
	return v
}

func (v Vector) Get(b Base) int {
	return v[b]
}

func (v Vector) IsDimensionless() bool {
	return v == Dimensionless
}

// Mul adds exponents.
func (v Vector) Mul(other Vector) Vector {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

// Div subtracts exponents.
func (v Vector) Div(other Vector) Vector {
	for i := range v {
		v[i] -= other[i]
	}
	return v
}

func (v Vector) Inverse() Vector {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

// Pow scales every exponent by n.
func (v Vector) Pow(n int) Vector {
	for i := range v {
		v[i] *= n
	}
	return v
}

// Root divides every exponent by n. Every exponent must be divisible by n.
func (v Vector) Root(n int) (Vector, error) {
	if n <= 0 {
		return Vector{}, fmt.Errorf("%w: %d", ErrInvalidRoot, n)
	}
	for i := range v {
		if v[i]%n != 0 {
			return Vector{}, fmt.Errorf("%w: %s exponent %d is not divisible by %d",
				ErrRootNotRepresentable, Base(i), v[i], n)
		}
	}
	for i := range v {
		v[i] /= n
	}
	return v, nil
}

// RatPow raises to num/den; num*exponent must be divisible by den for every base.
func (v Vector) RatPow(num, den int) (Vector, error) {
	if den <= 0 {
		return Vector{}, fmt.Errorf("%w: %d", ErrInvalidRoot, den)
	}
	for i := range v {
		if v[i]*num%den != 0 {
			return Vector{}, fmt.Errorf("%w: %s exponent %d*%d is not divisible by %d",
				ErrRootNotRepresentable, Base(i), v[i], num, den)
		}
	}
	for i := range v {
		v[i] = v[i] * num / den
	}
	return v, nil
}

// String gives a symbol-free description, e.g. "length^1 time^-2".
func (v Vector) String() string {
	if v.IsDimensionless() {
		return "dimensionless"
	}
	var parts []string
	for i, exp := range v {
		if exp != 0 {
			parts = append(parts, fmt.Sprintf("%s^%d", Base(i), exp))
		}
	}
	return strings.Join(parts, " ")
}

// Less orders vectors lexicographically; used to keep tables sorted.
func (v Vector) Less(other Vector) bool {
	for i := range v {
		if v[i] != other[i] {
			return v[i] < other[i]
		}
	}
	return false
}
