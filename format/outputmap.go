// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package format

import (
	"github.com/mikecarlton/dim"
	"github.com/mikecarlton/dim/dimension"
)

// OutputMap picks the formatter used to display a unit: a specialized one
// registered for the unit's name wins over the default one for its vector.
type OutputMap struct {
	defaults    map[dimension.Vector]Formatter
	specialized map[string]Formatter
}

// NewOutputMap copies its arguments. Specialized entries are keyed by
// Unit.Name.
func NewOutputMap(defaults []Formatter, specialized map[string]Formatter) (*OutputMap, error) {
	m := &OutputMap{
		defaults:    make(map[dimension.Vector]Formatter, len(defaults)),
		specialized: make(map[string]Formatter, len(specialized)),
	}
	for _, f := range defaults {
		v := f.Unit().Dimension()
		if _, ok := m.defaults[v]; ok {
			return nil, duplicate(f.Symbol)
		}
		m.defaults[v] = f
	}
	for name, f := range specialized {
		m.specialized[name] = f
	}
	return m, nil
}

// Lookup returns the most specific formatter for u.
func (m *OutputMap) Lookup(u dim.DynamicUnit) (Formatter, bool) {
	if name := u.Name(); name != "" {
		if f, ok := m.specialized[name]; ok && dim.UnitsMatch(f.Unit(), u) {
			return f, true
		}
	}
	f, ok := m.defaults[u.Dimension()]
	if ok && !dim.UnitsMatch(f.Unit(), u) {
		return Formatter{}, false
	}
	return f, ok
}

// Output formats q with its most specific formatter. ok is false when none
// is registered.
func (m *OutputMap) Output(q dim.DynamicQuantity) (fq FormattedQuantity, ok bool) {
	f, ok := m.Lookup(q.Unit())
	if !ok {
		return FormattedQuantity{}, false
	}
	fq, err := f.Output(q)
	return fq, err == nil
}

func (m *OutputMap) Len() int {
	return len(m.defaults) + len(m.specialized)
}
