// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package format

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// Table is a caller supplied list of symbols, read from YAML:
//
//	input:
//	  - symbol: furlong
//	    scale: 201.168 m
//	  - symbol: degC
//	    scale: 1 K
//	    offset: 273.15 K
//	output:
//	  - symbol: km/h
//	    scale: 1 km/h
//
// Scales and offsets are quantities in the syntax Facet.Parse reads; they may
// use symbols defined earlier in the same table.
type Table struct {
	Input  []TableEntry `yaml:"input"`
	Output []TableEntry `yaml:"output"`
}

type TableEntry struct {
	Symbol string `yaml:"symbol"`
	Scale  string `yaml:"scale"`
	Offset string `yaml:"offset,omitempty"`
	// Unit restricts an output entry to the unit of that name (see dim.Unit).
	Unit string `yaml:"unit,omitempty"`
}

// LoadTable decodes a YAML table.
func LoadTable(r io.Reader) (*Table, error) {
	var table Table

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&table); err != nil {
		if err == io.EOF {
			return &table, nil
		}
		return nil, fmt.Errorf("failed to decode symbol table YAML: %w", err)
	}

	return &table, nil
}

// LoadTableFile decodes the YAML table at path.
func LoadTableFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open symbol table: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return LoadTable(file)
}

// Formatter parses the entry's scale and offset with b's symbols.
func (e TableEntry) Formatter(b *Builder) (Formatter, error) {
	scale, err := b.Parse(e.Scale)
	if err != nil {
		return Formatter{}, fmt.Errorf("symbol %q: scale: %w", e.Symbol, err)
	}
	if e.Offset == "" {
		return NewFormatter(e.Symbol, scale), nil
	}
	offset, err := b.Parse(e.Offset)
	if err != nil {
		return Formatter{}, fmt.Errorf("symbol %q: offset: %w", e.Symbol, err)
	}
	return NewAffineFormatter(e.Symbol, scale, offset)
}

// AddTable registers every entry of t, rejecting duplicates.
func (b *Builder) AddTable(t *Table) error {
	return b.addTable(t, false)
}

// ReplaceTable registers every entry of t, overriding existing symbols.
func (b *Builder) ReplaceTable(t *Table) error {
	return b.addTable(t, true)
}

func (b *Builder) addTable(t *Table, replace bool) error {
	for _, entry := range t.Input {
		f, err := entry.Formatter(b)
		if err != nil {
			return err
		}
		if replace {
			err = b.ReplaceInput(f)
		} else {
			err = b.AddInput(f)
		}
		if err != nil {
			return err
		}
	}

	for _, entry := range t.Output {
		f, err := entry.Formatter(b)
		if err != nil {
			return err
		}
		switch {
		case entry.Unit != "" && replace:
			err = b.ReplaceSpecializedOutput(entry.Unit, f)
		case entry.Unit != "":
			err = b.AddSpecializedOutput(entry.Unit, f)
		case replace:
			err = b.ReplaceOutput(f)
		default:
			err = b.AddOutput(f)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
