// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si

import (
	"sync"

	"github.com/mikecarlton/dim/format"
	"github.com/mikecarlton/dim/internal/enumerable"
)

// NewBuilder returns a builder loaded with the default SI tables, ready to be
// extended before Build.
func NewBuilder() (*format.Builder, error) {
	b := format.NewBuilder(System)

	for _, name := range enumerable.SortedKeys(INPUTS) {
		table := INPUTS[name]
		if err := b.AddInput(entries(table.Dimension, table.Scales)...); err != nil {
			return nil, err
		}
	}
	if err := b.AddInput(temperatures()...); err != nil {
		return nil, err
	}

	for _, f := range OUTPUTS {
		if err := b.AddOutput(f); err != nil {
			return nil, err
		}
	}
	for _, name := range enumerable.SortedKeys(SPECIALIZED) {
		if err := b.AddSpecializedOutput(name, SPECIALIZED[name]); err != nil {
			return nil, err
		}
	}

	return b, nil
}

var (
	defaultOnce  sync.Once
	defaultFacet *format.Facet
)

// DefaultFacet is the shared facet built from the default tables. The tables
// are static, so a failure is a programming error and panics.
func DefaultFacet() *format.Facet {
	defaultOnce.Do(func() {
		b, err := NewBuilder()
		if err == nil {
			defaultFacet, err = b.Build()
		}
		if err != nil {
			panic(err)
		}
	})
	return defaultFacet
}
