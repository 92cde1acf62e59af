// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package dim

import (
	"github.com/mikecarlton/dim/dimension"
)

// Unit is implemented by the zero-size tag types that parameterize Quantity.
// Methods must work on the zero value.
type Unit interface {
	// Name identifies the unit for specialized output formatting, e.g. "hertz".
	Name() string
	Dimension() dimension.Vector
	System() *System
}

// UnitOf returns the runtime description of the tag type U.
func UnitOf[U Unit]() DynamicUnit {
	var u U
	return DynamicUnit{dims: u.Dimension(), system: u.System(), name: u.Name()}
}

// DynamicUnit is a dimension vector and system known only at runtime. The
// zero value is dimensionless in no particular system, which matches any
// system.
type DynamicUnit struct {
	dims   dimension.Vector
	system *System
	name   string
}

// NewDynamicUnit binds v to sys.
func NewDynamicUnit(sys *System, v dimension.Vector) DynamicUnit {
	return DynamicUnit{dims: v, system: sys}
}

func (u DynamicUnit) Dimension() dimension.Vector {
	return u.dims
}

func (u DynamicUnit) System() *System {
	return u.system
}

// Name is the tag name if u came from a static unit, otherwise "".
func (u DynamicUnit) Name() string {
	return u.name
}

func (u DynamicUnit) IsDimensionless() bool {
	return u.dims.IsDimensionless()
}

// Matches reports whether u and other describe the same dimension in the same
// system. A nil system matches any system.
func (u DynamicUnit) Matches(other DynamicUnit) bool {
	return u.dims == other.dims && sameSystem(u.system, other.system)
}

// UnitsMatch reports whether a and b are commensurable.
func UnitsMatch(a, b DynamicUnit) bool {
	return a.Matches(b)
}

func sameSystem(a, b *System) bool {
	return a == nil || b == nil || a == b
}

func pickSystem(a, b *System) *System {
	if a != nil {
		return a
	}
	return b
}

// merge keeps u but takes other's system when u has none.
func (u DynamicUnit) merge(other DynamicUnit) DynamicUnit {
	u.system = pickSystem(u.system, other.system)
	return u
}

func (u DynamicUnit) Mul(other DynamicUnit) DynamicUnit {
	return DynamicUnit{dims: u.dims.Mul(other.dims), system: pickSystem(u.system, other.system)}
}

func (u DynamicUnit) Div(other DynamicUnit) DynamicUnit {
	return DynamicUnit{dims: u.dims.Div(other.dims), system: pickSystem(u.system, other.system)}
}

func (u DynamicUnit) Inverse() DynamicUnit {
	return DynamicUnit{dims: u.dims.Inverse(), system: u.system}
}

func (u DynamicUnit) Pow(n int) DynamicUnit {
	return DynamicUnit{dims: u.dims.Pow(n), system: u.system}
}

func (u DynamicUnit) Root(n int) (DynamicUnit, error) {
	dims, err := u.dims.Root(n)
	if err != nil {
		return DynamicUnit{}, err
	}
	return DynamicUnit{dims: dims, system: u.system}, nil
}

// RatPow raises u to num/den; every exponent times num must be divisible by
// den.
func (u DynamicUnit) RatPow(num, den int) (DynamicUnit, error) {
	dims, err := u.dims.RatPow(num, den)
	if err != nil {
		return DynamicUnit{}, err
	}
	return DynamicUnit{dims: dims, system: u.system}, nil
}

// String renders the unit with its system's default symbol.
func (u DynamicUnit) String() string {
	if u.system == nil {
		if u.dims.IsDimensionless() {
			return ""
		}
		return u.dims.String()
	}
	return u.system.Render(u.dims)
}
