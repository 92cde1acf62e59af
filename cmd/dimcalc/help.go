// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func heredoc(text string) string {
	lines := strings.Split(strings.Trim(text, " \t\n"), "\n")

	// Find the minimum leading whitespace for non-empty lines after the first
	minIndent := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) != "" {
			leading := len(line) - len(strings.TrimLeft(line, " \t"))
			if minIndent == -1 || leading < minIndent {
				minIndent = leading
			}
		}
	}

	for i, line := range lines[1:] {
		if minIndent > 0 && len(line) >= minIndent {
			lines[i+1] = line[minIndent:]
		}
	}

	return strings.Join(lines, "\n")
}

func newUnitsHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "Describe numbers, operators and unit symbols",
		Args:  cobra.NoArgs,
		// no configuration needed
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), heredoc(`
				Quantities:
				  A number optionally followed by a unit expression: 5 m, 5m, 5_m, 5*m,
				  '12.3 kg*m/s^2', '-2.5e-3 s^-1', '20 °C'

				Unit expressions:
				  Symbols joined by * or / (left to right, equal precedence), with
				  integer powers (m^2, s^-1, m^(-2)) and parentheses: (kg*m)/s^2
				  SI symbols take a prefix: km, mA, kN*m, µs
				  Offset symbols (degC, degF, °C, °F) may not appear in compounds

				Stack Operations:
				  x: exchange top 2 elements of the stack
				  d: duplicate top element of the stack (aliased as dup)
				  p: pop top element off of the stack (aliased as pop)

				Binary operations (prepend with '@' to reduce the stack):
				  + -  (operands must have the same dimension)
				  *    (aliased as . and •)
				  /
				  pow  (aliased as **, integer dimensionless exponent)
				  root (integer dimensionless index)

				Unary operations:
				  n     (number: remove any units, keeping the displayed value)
				  chs   (change sign)
				  abs   (absolute value)
				  sqrt  (square root)
				  r     (reciprocal)

				Units:
				  A unit symbol applies to the top of the stack if it has no units,
				  otherwise the top of the stack is displayed in that unit.
				  Run 'dimcalc symbols' for the known symbols.`))
		},
	}
}
