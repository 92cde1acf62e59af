// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package format

import (
	"errors"
	"fmt"
)

var (
	ErrSymbolNotFound  = errors.New("format: symbol not found")
	ErrMalformedInput  = errors.New("format: malformed input")
	ErrDuplicateSymbol = errors.New("format: duplicate symbol")
)

// ParseError reports where parsing of Input stopped. Err is ErrMalformedInput,
// ErrSymbolNotFound or an error from package dim.
type ParseError struct {
	Input string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", e.Err, e.Input, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func malformed(input string, pos int, format string, args ...any) error {
	return &ParseError{Input: input, Pos: pos, Err: fmt.Errorf("%w: "+format, append([]any{ErrMalformedInput}, args...)...)}
}

func notFound(input string, pos int, symbol string) error {
	return &ParseError{Input: input, Pos: pos, Err: fmt.Errorf("%w: %q", ErrSymbolNotFound, symbol)}
}

func duplicate(symbol string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateSymbol, symbol)
}
