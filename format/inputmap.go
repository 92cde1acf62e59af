// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package format

import (
	"sort"

	"github.com/mikecarlton/dim"
	"github.com/mikecarlton/dim/dimension"
)

// InputMap holds the input formatters of one unit, keyed by symbol.
type InputMap struct {
	unit     dim.DynamicUnit
	bySymbol map[string]Formatter
	symbols  []string
}

// NewInputMap rejects formatters of another unit and duplicate symbols.
func NewInputMap(unit dim.DynamicUnit, formatters ...Formatter) (*InputMap, error) {
	m := &InputMap{unit: unit, bySymbol: make(map[string]Formatter, len(formatters))}
	for _, f := range formatters {
		if !dim.UnitsMatch(f.Unit(), unit) {
			return nil, &dim.IncommensurableError{Op: "input " + f.Symbol, Observed: f.Unit(), Expected: unit}
		}
		if _, ok := m.bySymbol[f.Symbol]; ok {
			return nil, duplicate(f.Symbol)
		}
		m.bySymbol[f.Symbol] = f
		m.symbols = append(m.symbols, f.Symbol)
	}
	sort.Strings(m.symbols)

	return m, nil
}

func (m *InputMap) Unit() dim.DynamicUnit {
	return m.unit
}

func (m *InputMap) Lookup(symbol string) (Formatter, bool) {
	f, ok := m.bySymbol[symbol]
	return f, ok
}

// Symbols is sorted.
func (m *InputMap) Symbols() []string {
	return append([]string(nil), m.symbols...)
}

func (m *InputMap) Len() int {
	return len(m.symbols)
}

// ToQuantity converts by exact symbol match only.
func (m *InputMap) ToQuantity(fq FormattedQuantity) (dim.DynamicQuantity, error) {
	f, ok := m.bySymbol[fq.Symbol]
	if !ok {
		return dim.BadDynamic(m.unit), notFound(fq.Symbol, 0, fq.Symbol)
	}
	return f.Input(fq.Value), nil
}

// InputGroup aggregates the input maps of a system, one per dimension vector.
// A symbol appears in at most one map.
type InputGroup struct {
	system  *dim.System
	maps    map[dimension.Vector]*InputMap
	order   []dimension.Vector
	symbols map[string]Formatter
}

// NewInputGroup rejects two maps for one vector and a symbol in two maps.
func NewInputGroup(system *dim.System, maps ...*InputMap) (*InputGroup, error) {
	g := &InputGroup{
		system:  system,
		maps:    make(map[dimension.Vector]*InputMap, len(maps)),
		symbols: make(map[string]Formatter),
	}
	for _, m := range maps {
		v := m.unit.Dimension()
		if _, ok := g.maps[v]; ok {
			return nil, duplicate(v.String())
		}
		g.maps[v] = m
		g.order = append(g.order, v)
		for symbol, f := range m.bySymbol {
			if _, ok := g.symbols[symbol]; ok {
				return nil, duplicate(symbol)
			}
			g.symbols[symbol] = f
		}
	}
	sort.Slice(g.order, func(i, j int) bool { return g.order[i].Less(g.order[j]) })

	return g, nil
}

func (g *InputGroup) System() *dim.System {
	return g.system
}

// Map returns the input map for v.
func (g *InputGroup) Map(v dimension.Vector) (*InputMap, bool) {
	m, ok := g.maps[v]
	return m, ok
}

// Maps are ordered by dimension vector.
func (g *InputGroup) Maps() []*InputMap {
	result := make([]*InputMap, len(g.order))
	for i, v := range g.order {
		result[i] = g.maps[v]
	}
	return result
}

// Lookup finds symbol in any map.
func (g *InputGroup) Lookup(symbol string) (Formatter, bool) {
	f, ok := g.symbols[symbol]
	return f, ok
}

// Resolve turns a symbol into a formatter: an exact match in the group, else
// a compound expression over system and group symbols.
func (g *InputGroup) Resolve(symbol string) (Formatter, error) {
	if f, ok := g.symbols[symbol]; ok {
		return f, nil
	}
	scale, err := ParseExpression(symbol, g.atom)
	if err != nil {
		return Formatter{}, err
	}
	if scale.Unit().System() == nil {
		scale = dim.NewDynamic(scale.Value(), dim.NewDynamicUnit(g.system, scale.Unit().Dimension()))
	}
	return Formatter{Symbol: symbol, Scale: scale}, nil
}

// atom resolves one base symbol of an expression: system table, then input
// symbols, then a prefixed system symbol. Affine symbols are not allowed in
// compound expressions.
func (g *InputGroup) atom(symbol string) (dim.DynamicQuantity, bool, error) {
	if g.system != nil {
		if q, ok := g.system.ExactSymbol(symbol); ok {
			return q, true, nil
		}
	}
	if f, ok := g.symbols[symbol]; ok {
		if f.IsAffine() {
			return dim.DynamicQuantity{}, true, ErrMalformedInput
		}
		return f.Scale, true, nil
	}
	if g.system != nil {
		if q, ok := g.system.PrefixedSymbol(symbol); ok {
			return q, true, nil
		}
	}
	return dim.DynamicQuantity{}, false, nil
}

// ToQuantity converts fq by exact symbol or by compound expression.
func (g *InputGroup) ToQuantity(fq FormattedQuantity) (dim.DynamicQuantity, error) {
	f, err := g.Resolve(fq.Symbol)
	if err != nil {
		return dim.BadDynamic(dim.DynamicUnit{}), err
	}
	return f.Input(fq.Value), nil
}
