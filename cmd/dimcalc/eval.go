// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mikecarlton/dim/format"
)

// calculator evaluates RPN arguments against a facet.
type calculator struct {
	facet     *format.Facet
	precision int32
	trace     func(arg string, s *Stack)
	stack     *Stack
}

func newCalculator(facet *format.Facet, precision int32) *calculator {
	return &calculator{facet: facet, precision: precision, stack: newStack()}
}

func resolveAlias(arg string) string {
	if alias, ok := ALIASES[arg]; ok {
		return alias
	}
	return arg
}

// startsNumber reports whether arg begins like a number, so "-" alone is an
// operator but "-3" and ".5m" are quantities.
func startsNumber(arg string) bool {
	s := strings.TrimLeft(arg, "+-")
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r) || r == '.'
}

func (c *calculator) eval(arg string) error {
	op := resolveAlias(arg)

	if strings.HasPrefix(arg, "@") {
		op = resolveAlias(arg[1:])
		if _, ok := BINARYOP[op]; !ok {
			return fmt.Errorf("unrecognized reduction '%s'", arg)
		}
		return c.stack.reduce(op)
	}
	if _, ok := BINARYOP[op]; ok {
		return c.stack.binaryOp(op)
	}
	if _, ok := UNARYOP[op]; ok {
		return c.stack.unaryOp(op)
	}
	if fn, ok := STACKOP[op]; ok {
		return fn(c.stack)
	}
	if op == "n" {
		value, err := c.stack.pop()
		if err != nil {
			return fmt.Errorf("not enough arguments for '%s'", op)
		}
		c.stack.push(value.strip(c.facet))
		return nil
	}

	if startsNumber(arg) {
		q, err := c.facet.Parse(arg)
		if err != nil {
			return err
		}
		c.stack.push(Value{quantity: q, symbol: c.symbolOf(arg)})
		return nil
	}

	f, err := c.facet.Inputs().Resolve(arg)
	if err != nil {
		return fmt.Errorf("unrecognized argument '%s': %w", arg, err)
	}
	return c.stack.apply(f)
}

// symbolOf keeps the symbol typed with a number so it displays as entered.
func (c *calculator) symbolOf(arg string) string {
	fq, err := c.facet.NewScanner(strings.NewReader(arg)).Scan()
	if err != nil {
		return ""
	}
	return fq.Symbol
}

func (c *calculator) run(args []string) error {
	for _, arg := range args {
		if err := c.eval(arg); err != nil {
			return err
		}
		slog.Debug("evaluated", "arg", arg, "depth", c.stack.size())
		if c.trace != nil {
			c.trace(arg, c.stack)
		}
	}
	return nil
}
