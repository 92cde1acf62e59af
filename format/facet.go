// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package format converts quantities to and from text such as "12.3 kg*m/s^2".
//
// A Facet holds the input and output format maps of one system. It is built
// once with a Builder, is immutable afterwards and is passed explicitly to
// the code that reads or writes quantities.
package format

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mikecarlton/dim"
	"github.com/mikecarlton/dim/dimension"
	"github.com/mikecarlton/dim/internal/enumerable"
)

// Builder collects formatters for a Facet. Add* rejects a symbol (or, for
// default outputs, a vector) that is already registered; Replace* overrides.
// A Builder is not safe for concurrent use.
type Builder struct {
	system      *dim.System
	inputs      map[string]Formatter
	defaults    map[dimension.Vector]Formatter
	specialized map[string]Formatter
}

func NewBuilder(system *dim.System) *Builder {
	return &Builder{
		system:      system,
		inputs:      map[string]Formatter{},
		defaults:    map[dimension.Vector]Formatter{},
		specialized: map[string]Formatter{},
	}
}

// Clone copies the builder so a shared default can be extended.
func (b *Builder) Clone() *Builder {
	c := NewBuilder(b.system)
	for k, v := range b.inputs {
		c.inputs[k] = v
	}
	for k, v := range b.defaults {
		c.defaults[k] = v
	}
	for k, v := range b.specialized {
		c.specialized[k] = v
	}
	return c
}

func (b *Builder) System() *dim.System {
	return b.system
}

func (b *Builder) check(f Formatter) error {
	if f.Symbol == "" || strings.IndexFunc(f.Symbol, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: symbol %q", ErrMalformedInput, f.Symbol)
	}
	if sys := f.Unit().System(); sys != nil && sys != b.system {
		return &dim.IncommensurableError{Op: "register " + f.Symbol, Observed: f.Unit(), Expected: b.system.Unit(f.Unit().Dimension())}
	}
	return nil
}

// AddInput registers input symbols.
func (b *Builder) AddInput(formatters ...Formatter) error {
	for _, f := range formatters {
		if err := b.check(f); err != nil {
			return err
		}
		if _, ok := b.inputs[f.Symbol]; ok {
			return duplicate(f.Symbol)
		}
		b.inputs[f.Symbol] = f
	}
	return nil
}

// ReplaceInput registers input symbols, overriding existing ones.
func (b *Builder) ReplaceInput(formatters ...Formatter) error {
	for _, f := range formatters {
		if err := b.check(f); err != nil {
			return err
		}
		b.inputs[f.Symbol] = f
	}
	return nil
}

// AddOutput registers the default output formatter for f's vector.
func (b *Builder) AddOutput(f Formatter) error {
	if err := b.check(f); err != nil {
		return err
	}
	if _, ok := b.defaults[f.Unit().Dimension()]; ok {
		return duplicate(f.Symbol)
	}
	b.defaults[f.Unit().Dimension()] = f
	return nil
}

func (b *Builder) ReplaceOutput(f Formatter) error {
	if err := b.check(f); err != nil {
		return err
	}
	b.defaults[f.Unit().Dimension()] = f
	return nil
}

// AddSpecializedOutput registers the output formatter for the unit named
// unitName (see dim.Unit), taking precedence over the vector default.
func (b *Builder) AddSpecializedOutput(unitName string, f Formatter) error {
	if err := b.check(f); err != nil {
		return err
	}
	if _, ok := b.specialized[unitName]; ok {
		return duplicate(unitName)
	}
	b.specialized[unitName] = f
	return nil
}

func (b *Builder) ReplaceSpecializedOutput(unitName string, f Formatter) error {
	if err := b.check(f); err != nil {
		return err
	}
	b.specialized[unitName] = f
	return nil
}

// RemoveInput drops input symbols; an unknown symbol is ErrSymbolNotFound
// and leaves the builder unchanged.
func (b *Builder) RemoveInput(symbols ...string) error {
	for _, symbol := range symbols {
		if _, ok := b.inputs[symbol]; !ok {
			return notFound(symbol, 0, symbol)
		}
	}
	for _, symbol := range symbols {
		delete(b.inputs, symbol)
	}
	return nil
}

// RemoveOutput drops the default output formatter for v, so Render falls
// back to the system's symbol.
func (b *Builder) RemoveOutput(v dimension.Vector) error {
	if _, ok := b.defaults[v]; !ok {
		return notFound(v.String(), 0, v.String())
	}
	delete(b.defaults, v)
	return nil
}

func (b *Builder) RemoveSpecializedOutput(unitName string) error {
	if _, ok := b.specialized[unitName]; !ok {
		return notFound(unitName, 0, unitName)
	}
	delete(b.specialized, unitName)
	return nil
}

// Build publishes the registered formatters as an immutable Facet.
func (b *Builder) Build() (*Facet, error) {
	byVector := map[dimension.Vector][]Formatter{}
	for _, symbol := range enumerable.SortedKeys(b.inputs) {
		f := b.inputs[symbol]
		v := f.Unit().Dimension()
		byVector[v] = append(byVector[v], f)
	}

	maps := make([]*InputMap, 0, len(byVector))
	for v, formatters := range byVector {
		m, err := NewInputMap(b.system.Unit(v), formatters...)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	inputs, err := NewInputGroup(b.system, maps...)
	if err != nil {
		return nil, err
	}

	defaults := make([]Formatter, 0, len(b.defaults))
	for _, f := range b.defaults {
		defaults = append(defaults, f)
	}
	outputs, err := NewOutputMap(defaults, b.specialized)
	if err != nil {
		return nil, err
	}

	return &Facet{system: b.system, inputs: inputs, outputs: outputs}, nil
}

// Parse reads a quantity using the symbols registered so far, e.g. the scale
// "0.3048 m" of a new symbol "ft".
func (b *Builder) Parse(text string) (dim.DynamicQuantity, error) {
	facet, err := b.Build()
	if err != nil {
		return dim.DynamicQuantity{}, err
	}
	return facet.Parse(text)
}

// Facet selects formatters for one system. It is safe for concurrent use.
type Facet struct {
	system  *dim.System
	inputs  *InputGroup
	outputs *OutputMap
}

func (f *Facet) System() *dim.System {
	return f.system
}

func (f *Facet) Inputs() *InputGroup {
	return f.inputs
}

func (f *Facet) Outputs() *OutputMap {
	return f.outputs
}

// Render picks the most specific output formatter for q, falling back to
// the canonical value and the system's default symbol.
func (f *Facet) Render(q dim.DynamicQuantity) FormattedQuantity {
	if fq, ok := f.outputs.Output(q); ok {
		return fq
	}
	return FormattedQuantity{Value: q.Value(), Symbol: q.Unit().String()}
}

// RenderAs displays q in the given symbol or expression, e.g. "ft" or "km/h".
func (f *Facet) RenderAs(q dim.DynamicQuantity, symbol string) (FormattedQuantity, error) {
	formatter, err := f.inputs.Resolve(symbol)
	if err != nil {
		return FormattedQuantity{}, err
	}
	return formatter.Output(q)
}

// Format is Render(q).String().
func (f *Facet) Format(q dim.DynamicQuantity) string {
	return f.Render(q).String()
}

// ToQuantity converts a displayed value back to a canonical quantity.
func (f *Facet) ToQuantity(fq FormattedQuantity) (dim.DynamicQuantity, error) {
	return f.inputs.ToQuantity(fq)
}

// Parse reads exactly one quantity from text; anything but trailing
// whitespace after it is malformed.
func (f *Facet) Parse(text string) (dim.DynamicQuantity, error) {
	s := f.NewScanner(strings.NewReader(text))
	q, err := s.Next()
	if err == io.EOF {
		return q, malformed(text, 0, "no quantity")
	}
	if err != nil {
		return q, err
	}
	if rest := s.Rest(); strings.TrimSpace(rest) != "" {
		return dim.BadDynamic(q.Unit()), malformed(text, len(text)-len(rest), "trailing %q", rest)
	}
	return q, nil
}

// Render is Facet.Render for a static quantity; specialized formatters for U
// apply.
func Render[U dim.Unit](f *Facet, q dim.Quantity[U]) FormattedQuantity {
	return f.Render(q.Dynamic())
}

func Format[U dim.Unit](f *Facet, q dim.Quantity[U]) string {
	return Render(f, q).String()
}

// ToQuantityAs converts fq and checks it has unit U.
func ToQuantityAs[U dim.Unit](f *Facet, fq FormattedQuantity) (dim.Quantity[U], error) {
	q, err := f.ToQuantity(fq)
	if err != nil {
		return dim.Bad[U](), err
	}
	return dim.As[U](q)
}

// ParseAs reads one quantity of unit U from text.
func ParseAs[U dim.Unit](f *Facet, text string) (dim.Quantity[U], error) {
	q, err := f.Parse(text)
	if err != nil {
		return dim.Bad[U](), err
	}
	return dim.As[U](q)
}
