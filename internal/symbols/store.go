// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package symbols persists user-defined input symbols in SQLite.
package symbols

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mikecarlton/dim"
	"github.com/mikecarlton/dim/dimension"
	"github.com/mikecarlton/dim/format"
)

var ErrNotFound = errors.New("symbols: no such symbol")

// Definition is one stored symbol; Scale and Offset are canonical values in
// the system the symbol is loaded into.
type Definition struct {
	Symbol    string
	Scale     float64
	Offset    float64
	Dimension dimension.Vector
	CreatedAt time.Time
}

// FromFormatter captures f for storage.
func FromFormatter(f format.Formatter) Definition {
	return Definition{
		Symbol:    f.Symbol,
		Scale:     f.Scale.Value(),
		Offset:    f.Offset,
		Dimension: f.Unit().Dimension(),
	}
}

// Formatter rebuilds the input formatter in sys.
func (d Definition) Formatter(sys *dim.System) format.Formatter {
	return format.Formatter{
		Symbol: d.Symbol,
		Scale:  dim.NewDynamic(d.Scale, sys.Unit(d.Dimension)),
		Offset: d.Offset,
	}
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the symbol database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS symbols (
		symbol TEXT PRIMARY KEY,
		scale REAL NOT NULL,
		zero_offset REAL NOT NULL DEFAULT 0,
		dimension TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Define saves d, replacing any earlier definition of the same symbol.
func (s *Store) Define(d Definition) error {
	query := `
	INSERT OR REPLACE INTO symbols (symbol, scale, zero_offset, dimension)
	VALUES (?, ?, ?, ?)
	`

	_, err := s.db.Exec(query, d.Symbol, d.Scale, d.Offset, encodeVector(d.Dimension))
	return err
}

// Remove deletes symbol.
func (s *Store) Remove(symbol string) error {
	result, err := s.db.Exec(`DELETE FROM symbols WHERE symbol = ?`, symbol)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, symbol)
	}
	return nil
}

// Get returns the definition of symbol.
func (s *Store) Get(symbol string) (Definition, error) {
	query := `
	SELECT symbol, scale, zero_offset, dimension, created_at
	FROM symbols
	WHERE symbol = ?
	`

	d, err := scanDefinition(s.db.QueryRow(query, symbol))
	if err == sql.ErrNoRows {
		return Definition{}, fmt.Errorf("%w: %q", ErrNotFound, symbol)
	}
	return d, err
}

// All returns every definition ordered by symbol.
func (s *Store) All() ([]Definition, error) {
	query := `
	SELECT symbol, scale, zero_offset, dimension, created_at
	FROM symbols
	ORDER BY symbol
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var definitions []Definition
	for rows.Next() {
		d, err := scanDefinition(rows)
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, d)
	}
	return definitions, rows.Err()
}

// Load adds every stored symbol to b.
func (s *Store) Load(b *format.Builder) error {
	definitions, err := s.All()
	if err != nil {
		return err
	}

	for _, d := range definitions {
		if err := b.AddInput(d.Formatter(b.System())); err != nil {
			return fmt.Errorf("stored symbol %q: %w", d.Symbol, err)
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDefinition(row scanner) (Definition, error) {
	var d Definition
	var encoded string
	if err := row.Scan(&d.Symbol, &d.Scale, &d.Offset, &encoded, &d.CreatedAt); err != nil {
		return Definition{}, err
	}

	v, err := decodeVector(encoded)
	if err != nil {
		return Definition{}, fmt.Errorf("symbol %q: %w", d.Symbol, err)
	}
	d.Dimension = v
	return d, nil
}

// vectors are stored as comma separated exponents in base order
func encodeVector(v dimension.Vector) string {
	parts := make([]string, len(v))
	for i, power := range v {
		parts[i] = strconv.Itoa(power)
	}
	return strings.Join(parts, ",")
}

func decodeVector(s string) (dimension.Vector, error) {
	var v dimension.Vector
	parts := strings.Split(s, ",")
	if len(parts) != len(v) {
		return v, fmt.Errorf("malformed dimension %q", s)
	}
	for i, part := range parts {
		power, err := strconv.Atoi(part)
		if err != nil {
			return v, fmt.Errorf("malformed dimension %q: %w", s, err)
		}
		v[i] = power
	}
	return v, nil
}
