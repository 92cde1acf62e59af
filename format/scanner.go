// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package format

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/mikecarlton/dim"
)

var errMissingSymbol = errors.New("missing symbol after separator")

type scanState int

const (
	stateIdle scanState = iota
	stateNumber
	stateSymbol
	stateResolved
	stateFailed
)

var STATENAME = map[scanState]string{
	stateIdle:     "idle",
	stateNumber:   "number",
	stateSymbol:   "symbol",
	stateResolved: "resolved",
	stateFailed:   "failed",
}

func (s scanState) String() string {
	return STATENAME[s]
}

// Scanner reads "<number> <symbol-expression>" quantities one at a time from
// a stream. Each call consumes a single quantity and the separator after the
// number, never the delimiter after the symbol, so reads can be mixed with
// other parsing of the same reader. After an error the next call starts over.
type Scanner struct {
	facet *Facet
	r     *bufio.Reader
	state scanState
}

// NewScanner reads from r, reusing it when it is already a *bufio.Reader.
func (f *Facet) NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{facet: f, r: br}
}

// Next reads and resolves one quantity. It returns io.EOF when only
// whitespace remains.
func (s *Scanner) Next() (dim.DynamicQuantity, error) {
	fq, err := s.Scan()
	if err != nil {
		return dim.BadDynamic(dim.DynamicUnit{}), err
	}
	q, err := s.facet.ToQuantity(fq)
	if err != nil {
		s.state = stateFailed
		return q, err
	}
	s.state = stateResolved
	return q, nil
}

// Scan reads one quantity without resolving its symbol.
func (s *Scanner) Scan() (FormattedQuantity, error) {
	s.state = stateIdle
	if !s.skipSpace() {
		return FormattedQuantity{}, io.EOF
	}

	s.state = stateNumber
	text, value, ok := readNumber(s.r)
	if !ok {
		s.state = stateFailed
		text += s.skipToken()
		return FormattedQuantity{}, malformed(text, len(text), "expected a number")
	}

	symbol, err := s.scanSeparator()
	if err != nil {
		s.state = stateFailed
		return FormattedQuantity{}, malformed(text+symbol, len(text), "%v", err)
	}
	if s.state == stateSymbol {
		symbol = s.scanSymbol()
	}
	return FormattedQuantity{Value: value, Symbol: symbol}, nil
}

// State is the state reached by the last call.
func (s *Scanner) State() string {
	return s.state.String()
}

// Rest consumes and returns the unread input.
func (s *Scanner) Rest() string {
	b, _ := io.ReadAll(s.r)
	return string(b)
}

// skipSpace reports whether input remains.
func (s *Scanner) skipSpace() bool {
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			return false
		}
		if !unicode.IsSpace(r) {
			_ = s.r.UnreadRune()
			return true
		}
	}
}

// skipToken consumes up to the next whitespace so a failed read makes
// progress.
func (s *Scanner) skipToken() string {
	var sb strings.Builder
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			return sb.String()
		}
		if unicode.IsSpace(r) {
			_ = s.r.UnreadRune()
			return sb.String()
		}
		sb.WriteRune(r)
	}
}

// scanSeparator moves to stateSymbol when a symbol follows the number,
// otherwise the quantity is dimensionless and the state is left alone.
func (s *Scanner) scanSeparator() (string, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return "", nil
	}

	switch {
	case unicode.IsSpace(r):
		if !s.skipSpace() {
			return "", nil
		}
		if next := s.peekRune(); !startsSymbol(next) {
			return "", nil
		}
	case r == '_' || r == '*':
		if next := s.peekRune(); !startsSymbol(next) {
			return string(r), errMissingSymbol
		}
	case startsSymbol(r):
		_ = s.r.UnreadRune()
	default:
		_ = s.r.UnreadRune()
		return "", nil
	}

	s.state = stateSymbol
	return "", nil
}

func (s *Scanner) peekRune() rune {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return 0
	}
	_ = s.r.UnreadRune()
	return r
}

// scanSymbol takes the longest run of symbol expression characters. A sign
// is part of the symbol only as an exponent sign, "s^-1" or "s^(-1)".
func (s *Scanner) scanSymbol() string {
	var runes []rune
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			break
		}
		if !inSymbol(r, runes) {
			_ = s.r.UnreadRune()
			break
		}
		runes = append(runes, r)
	}
	return string(runes)
}

func startsSymbol(r rune) bool {
	return isSymbolRune(r) || r == '('
}

func inSymbol(r rune, before []rune) bool {
	switch {
	case isSymbolRune(r), unicode.IsDigit(r):
		return true
	}
	switch r {
	case '*', '/', '^', '(', ')', '_':
		return true
	case '+', '-':
		n := len(before)
		return n > 0 && before[n-1] == '^' ||
			n > 1 && before[n-1] == '(' && before[n-2] == '^'
	}
	return false
}
