// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package dim

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikecarlton/dim/dimension"
)

// Symbol is a base symbol known to a system, e.g. "N" = 1 * kg*m/s^2.
type Symbol struct {
	Scale     float64
	Dimension dimension.Vector
}

// SystemDef describes a system of measurement for NewSystem.
type SystemDef struct {
	Name string

	// BaseSymbols is used to compose a symbol for any vector.
	BaseSymbols [dimension.NumBase]string

	// Specialized names a whole vector, e.g. force -> "N".
	Specialized map[dimension.Vector]string

	// Symbols and Prefixes drive the compound expression parser. A prefix
	// scales any entry of Symbols ("k" + "m").
	Symbols  map[string]Symbol
	Prefixes map[string]float64
}

// System binds base dimension symbols and symbol resolution policy. A System
// is immutable after NewSystem and safe for concurrent use.
type System struct {
	name        string
	base        [dimension.NumBase]string
	specialized map[dimension.Vector]string
	symbols     map[string]Symbol
	prefixes    map[string]float64
	prefixLens  []int // distinct prefix lengths, longest first
}

func NewSystem(def SystemDef) *System {
	s := &System{
		name:        def.Name,
		base:        def.BaseSymbols,
		specialized: make(map[dimension.Vector]string, len(def.Specialized)),
		symbols:     make(map[string]Symbol, len(def.Symbols)),
		prefixes:    make(map[string]float64, len(def.Prefixes)),
	}
	for k, v := range def.Specialized {
		s.specialized[k] = v
	}
	for k, v := range def.Symbols {
		s.symbols[k] = v
	}
	seen := map[int]bool{}
	for k, v := range def.Prefixes {
		s.prefixes[k] = v
		if !seen[len(k)] {
			seen[len(k)] = true
			s.prefixLens = append(s.prefixLens, len(k))
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(s.prefixLens)))

	return s
}

func (s *System) Name() string {
	return s.name
}

func (s *System) String() string {
	return s.name
}

// SymbolFor returns the symbol of one base dimension.
func (s *System) SymbolFor(b dimension.Base) string {
	return s.base[b]
}

// SpecializedSymbol returns the named symbol for v, or "" if there is none.
func (s *System) SpecializedSymbol(v dimension.Vector) string {
	return s.specialized[v]
}

// Unit returns the runtime unit of v in this system.
func (s *System) Unit(v dimension.Vector) DynamicUnit {
	return DynamicUnit{dims: v, system: s}
}

func (s *System) Dimensionless() DynamicUnit {
	return s.Unit(dimension.Dimensionless)
}

// LookupSymbol resolves a single base symbol, with an optional prefix, into
// a scaled quantity. An exact match wins over a prefixed one, so "cd" is a
// candela and not a centi-day.
func (s *System) LookupSymbol(symbol string) (DynamicQuantity, bool) {
	if q, ok := s.ExactSymbol(symbol); ok {
		return q, true
	}
	return s.PrefixedSymbol(symbol)
}

// ExactSymbol resolves a symbol of the system table without prefixes.
func (s *System) ExactSymbol(symbol string) (DynamicQuantity, bool) {
	sym, ok := s.symbols[symbol]
	if !ok {
		return DynamicQuantity{}, false
	}
	return NewDynamic(sym.Scale, s.Unit(sym.Dimension)), true
}

// PrefixedSymbol resolves prefix + symbol, e.g. "km" or "daN". Longer
// prefixes are tried first.
func (s *System) PrefixedSymbol(symbol string) (DynamicQuantity, bool) {
	for _, n := range s.prefixLens {
		if len(symbol) <= n {
			continue
		}
		factor, ok := s.prefixes[symbol[:n]]
		if !ok {
			continue
		}
		if sym, ok := s.symbols[symbol[n:]]; ok {
			return NewDynamic(factor*sym.Scale, s.Unit(sym.Dimension)), true
		}
	}
	return DynamicQuantity{}, false
}

// Symbols lists the system table, sorted.
func (s *System) Symbols() []string {
	result := make([]string, 0, len(s.symbols))
	for k := range s.symbols {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

// order in which base symbols are composed, e.g. "kg*m/s^2"
var RENDERORDER = []dimension.Base{
	dimension.Angle,
	dimension.Mass,
	dimension.Length,
	dimension.Temperature,
	dimension.Amount,
	dimension.Current,
	dimension.Luminosity,
	dimension.Time,
}

// Render gives the default symbol for v: the specialized symbol if the system
// has one, otherwise a composition of base symbols that the expression parser
// reads back to v.
func (s *System) Render(v dimension.Vector) string {
	if symbol := s.SpecializedSymbol(v); symbol != "" {
		return symbol
	}
	return s.Compose(v)
}

// Compose builds a symbol from base symbols only.
func (s *System) Compose(v dimension.Vector) string {
	var numerator, denominator []string
	for _, b := range RENDERORDER {
		power := v.Get(b)
		if power > 0 {
			numerator = append(numerator, exponentiated(s.SymbolFor(b), power))
		} else if power < 0 {
			denominator = append(denominator, exponentiated(s.SymbolFor(b), -power))
		}
	}

	if len(numerator) == 0 {
		// no numerator: write negative exponents, "s^-1"
		parts := make([]string, 0, len(denominator))
		for _, b := range RENDERORDER {
			if power := v.Get(b); power < 0 {
				parts = append(parts, fmt.Sprintf("%s^%d", s.SymbolFor(b), power))
			}
		}
		return strings.Join(parts, "*")
	}

	result := strings.Join(numerator, "*")
	for _, part := range denominator {
		result += "/" + part
	}

	return result
}

func exponentiated(symbol string, power int) string {
	if power == 1 {
		return symbol
	}
	return fmt.Sprintf("%s^%d", symbol, power)
}
