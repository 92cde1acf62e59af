// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mikecarlton/dim/format"
	"github.com/mikecarlton/dim/internal/enumerable"
)

var errEmpty = errors.New("stack is empty")

type Stack struct {
	values []Value
}

func newStack() *Stack {
	return &Stack{values: []Value{}}
}

var STACKOP = map[string]func(*Stack) error{
	"x": func(s *Stack) error { return s.exchange() },
	"d": func(s *Stack) error { return s.dup() },
	"p": func(s *Stack) error {
		if _, err := s.pop(); err != nil {
			return fmt.Errorf("stack is empty for '%s'", "pop")
		}
		return nil
	},
}

func (s *Stack) binaryOp(op string) error {
	if len(s.values) < 2 {
		return fmt.Errorf("not enough arguments for binary operation '%s'", op)
	}
	right, _ := s.pop()
	left, _ := s.pop()

	result, err := BINARYOP[op](left, right)
	if err != nil {
		return fmt.Errorf("'%s': %w", op, err)
	}
	s.push(result)
	return nil
}

func (s *Stack) unaryOp(op string) error {
	value, err := s.pop()
	if err != nil {
		return fmt.Errorf("not enough arguments for unary operation '%s'", op)
	}

	result, err := UNARYOP[op](value)
	if err != nil {
		return fmt.Errorf("'%s': %w", op, err)
	}
	s.push(result)
	return nil
}

func (s *Stack) apply(f format.Formatter) error {
	value, err := s.pop()
	if err != nil {
		return fmt.Errorf("not enough arguments for '%s'", f.Symbol)
	}

	result, err := value.apply(f)
	if err != nil {
		return err
	}
	s.push(result)
	return nil
}

func (s *Stack) reduce(op string) error {
	if len(s.values) < 2 {
		return fmt.Errorf("not enough arguments for reduction operation '@%s'", op)
	}

	// bottom to top, left to right
	result, err := enumerable.Reduce(s.values, BINARYOP[op])
	if err != nil {
		return fmt.Errorf("'@%s': %w", op, err)
	}

	s.values = []Value{result}
	return nil
}

func (s *Stack) push(v Value) {
	s.values = append(s.values, v)
}

func (s *Stack) pop() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, errEmpty
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]

	return v, nil
}

func (s *Stack) peek() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, errEmpty
	}

	return s.values[len(s.values)-1], nil
}

func (s *Stack) dup() error {
	top, err := s.peek()
	if err != nil {
		return fmt.Errorf("stack is empty for '%s'", "duplicate")
	}

	s.values = append(s.values, top)
	return nil
}

func (s *Stack) exchange() error {
	if len(s.values) < 2 {
		return fmt.Errorf("not enough arguments for '%s'", "exchange")
	}

	s.values[len(s.values)-1], s.values[len(s.values)-2] = s.values[len(s.values)-2], s.values[len(s.values)-1]
	return nil
}

func (s *Stack) size() int {
	return len(s.values)
}

func (s *Stack) oneline(facet *format.Facet, precision int32) string {
	texts := enumerable.Map(s.values, func(v Value) string { return v.text(facet, precision) })
	return strings.Join(texts, " ")
}

// ColumnWidths tracks integer and fractional part widths for alignment
type ColumnWidths struct {
	integerWidth    int // width of integer part (before decimal point)
	fractionalWidth int // width of fractional part (including decimal point)
}

// splitNumber splits "100.5" into "100" and ".5"
func splitNumber(str string) (string, string) {
	if i := strings.IndexByte(str, '.'); i >= 0 {
		return str[:i], str[i:]
	}
	return str, ""
}

// print writes the stack top first, one value per line, with the decimal
// points aligned.
func (s *Stack) print(w io.Writer, facet *format.Facet, precision int32) {
	rendered := enumerable.Map(s.values, func(v Value) format.FormattedQuantity { return v.render(facet) })
	numbers := enumerable.Map(rendered, func(fq format.FormattedQuantity) string {
		return format.FormattedQuantity{Value: fq.Value}.Text(precision)
	})

	var widths ColumnWidths
	for _, number := range numbers {
		intPart, fracPart := splitNumber(number)
		widths.integerWidth = max(widths.integerWidth, len(intPart))
		widths.fractionalWidth = max(widths.fractionalWidth, len(fracPart))
	}

	for i := len(rendered) - 1; i >= 0; i-- {
		intPart, fracPart := splitNumber(numbers[i])
		line := fmt.Sprintf("%*s%s", widths.integerWidth, intPart, fracPart)
		if rendered[i].Symbol != "" {
			line += strings.Repeat(" ", widths.fractionalWidth-len(fracPart))
			line += " " + rendered[i].Symbol
		}
		fmt.Fprintln(w, line)
	}
}
