// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package format

import (
	"errors"
	"strconv"
	"unicode"

	"github.com/mikecarlton/dim"
)

// AtomFunc resolves one base symbol of an expression. found is false for an
// unknown symbol; err rejects a known one.
type AtomFunc func(symbol string) (q dim.DynamicQuantity, found bool, err error)

// ParseExpression evaluates a compound unit expression such as "kg*m/s^2".
//
//	expr     = term { op term }
//	op       = "*" | "/" | "_" | " "
//	term     = factor [ "^" exponent ]
//	factor   = symbol | "(" expr ")"
//	exponent = [ "+" | "-" ] digits | "(" [ "+" | "-" ] digits ")"
//
// "^" binds tighter than the other operators, which are left associative with
// equal precedence, so "kg*m/s/s" is "kg*m/s^2". An empty expression is the
// dimensionless 1.
func ParseExpression(expr string, atom AtomFunc) (dim.DynamicQuantity, error) {
	p := &exprParser{input: expr, runes: []rune(expr), atom: atom}
	p.skipSpace()
	if p.done() {
		return dim.Scalar(1), nil
	}

	q, err := p.expr()
	if err != nil {
		return dim.DynamicQuantity{}, err
	}
	p.skipSpace()
	if !p.done() {
		return dim.DynamicQuantity{}, malformed(p.input, p.pos, "unexpected %q", p.runes[p.pos])
	}
	return q, nil
}

type exprParser struct {
	input string
	runes []rune
	pos   int
	atom  AtomFunc
}

func (p *exprParser) done() bool {
	return p.pos >= len(p.runes)
}

func (p *exprParser) peek() rune {
	if p.done() {
		return 0
	}
	return p.runes[p.pos]
}

func (p *exprParser) skipSpace() bool {
	start := p.pos
	for !p.done() && unicode.IsSpace(p.runes[p.pos]) {
		p.pos++
	}
	return p.pos > start
}

func (p *exprParser) expr() (dim.DynamicQuantity, error) {
	q, err := p.term()
	if err != nil {
		return q, err
	}

	for {
		spaced := p.skipSpace()
		if p.done() || p.peek() == ')' {
			return q, nil
		}

		op := '*'
		switch r := p.peek(); r {
		case '*', '/', '_':
			op = r
			p.pos++
			p.skipSpace()
		default:
			if !spaced {
				return q, malformed(p.input, p.pos, "unexpected %q", r)
			}
		}

		rhs, err := p.term()
		if err != nil {
			return q, err
		}
		if op == '/' {
			q = q.Div(rhs)
		} else {
			q = q.Mul(rhs)
		}
	}
}

func (p *exprParser) term() (dim.DynamicQuantity, error) {
	q, err := p.factor()
	if err != nil {
		return q, err
	}
	if p.peek() != '^' {
		return q, nil
	}
	p.pos++

	n, err := p.exponent()
	if err != nil {
		return q, err
	}
	return q.Pow(n), nil
}

func (p *exprParser) factor() (dim.DynamicQuantity, error) {
	if p.done() {
		return dim.DynamicQuantity{}, malformed(p.input, p.pos, "missing symbol")
	}
	if p.peek() == '(' {
		p.pos++
		p.skipSpace()
		q, err := p.expr()
		if err != nil {
			return q, err
		}
		if p.peek() != ')' {
			return q, malformed(p.input, p.pos, "missing )")
		}
		p.pos++
		return q, nil
	}

	start := p.pos
	for !p.done() && (isSymbolRune(p.peek()) || p.pos > start && unicode.IsDigit(p.peek())) {
		p.pos++
	}
	if p.pos == start {
		return dim.DynamicQuantity{}, malformed(p.input, p.pos, "unexpected %q", p.peek())
	}

	symbol := string(p.runes[start:p.pos])
	q, found, err := p.atom(symbol)
	if err != nil {
		if errors.Is(err, ErrMalformedInput) {
			return q, malformed(p.input, start, "%q cannot be combined", symbol)
		}
		return q, &ParseError{Input: p.input, Pos: start, Err: err}
	}
	if !found {
		return q, notFound(p.input, start, symbol)
	}
	return q, nil
}

func (p *exprParser) exponent() (int, error) {
	paren := p.peek() == '('
	if paren {
		p.pos++
	}

	start := p.pos
	if r := p.peek(); r == '+' || r == '-' {
		p.pos++
	}
	digits := p.pos
	for !p.done() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	if p.pos == digits {
		return 0, malformed(p.input, p.pos, "exponent must be an integer")
	}
	n, err := strconv.Atoi(string(p.runes[start:p.pos]))
	if err != nil {
		return 0, malformed(p.input, start, "exponent: %v", err)
	}

	if paren {
		if p.peek() != ')' {
			return 0, malformed(p.input, p.pos, "missing )")
		}
		p.pos++
	}
	return n, nil
}

// isSymbolRune matches the characters that start a base symbol: letters and
// a few signs used by unit symbols (°, %, '). Digits may follow, as in "g0".
func isSymbolRune(r rune) bool {
	return unicode.IsLetter(r) || r == '°' || r == '%' || r == '\''
}
