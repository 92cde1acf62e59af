// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package format

import (
	"bufio"
	"strconv"
	"strings"
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// peekByte returns the next unread byte, or 0 at end of input.
func peekByte(r *bufio.Reader, n int) byte {
	b, _ := r.Peek(n + 1)
	if len(b) <= n {
		return 0
	}
	return b[n]
}

// readNumber consumes a float literal: optional sign, digits with an optional
// decimal point, optional exponent. The exponent is only taken when digits
// follow, so "5eV" leaves "eV" unread.
func readNumber(r *bufio.Reader) (text string, value float64, ok bool) {
	var sb strings.Builder
	take := func() {
		b, _ := r.ReadByte()
		sb.WriteByte(b)
	}

	if c := peekByte(r, 0); c == '+' || c == '-' {
		take()
	}
	digits := 0
	for isDigit(peekByte(r, 0)) {
		take()
		digits++
	}
	if peekByte(r, 0) == '.' {
		take()
		for isDigit(peekByte(r, 0)) {
			take()
			digits++
		}
	}
	if digits == 0 {
		return sb.String(), 0, false
	}

	if c := peekByte(r, 0); c == 'e' || c == 'E' {
		next := peekByte(r, 1)
		if isDigit(next) || (next == '+' || next == '-') && isDigit(peekByte(r, 2)) {
			take()
			if next == '+' || next == '-' {
				take()
			}
			for isDigit(peekByte(r, 0)) {
				take()
			}
		}
	}

	text = sb.String()
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// out of range; ParseFloat still returns ±Inf or 0
		return text, value, false
	}
	return text, value, true
}
