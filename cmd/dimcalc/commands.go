// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mikecarlton/dim/format"
	"github.com/mikecarlton/dim/internal/enumerable"
	"github.com/mikecarlton/dim/internal/symbols"
)

var errNoDatabase = errors.New("no symbol database configured")

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <quantity> <symbol>",
		Short: "Display a quantity in another symbol",
		Example: heredoc(`
			dimcalc convert '5 ft' m
			dimcalc convert '100 km/h' mi/h`),
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			q, err := a.facet.Parse(args[0])
			if err != nil {
				return err
			}
			fq, err := a.facet.RenderAs(q, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, fq.Text(a.cfg.Precision))
			return nil
		},
	}
}

func newDefineCmd(a *app) *cobra.Command {
	var offset string

	cmd := &cobra.Command{
		Use:   "define <symbol> <quantity>",
		Short: "Save a new input symbol",
		Long: heredoc(`
			Save <symbol> as an input symbol equal to <quantity>. The definition
			is kept in the symbol database and available to later runs.`),
		Example: heredoc(`
			dimcalc define furlong '201.168 m'
			dimcalc define degRe '1.25 K' --offset '273.15 K'`),
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if a.store == nil {
				return errNoDatabase
			}
			symbol := args[0]

			scale, err := a.facet.Parse(args[1])
			if err != nil {
				return err
			}
			f := format.NewFormatter(symbol, scale)
			if offset != "" {
				zero, err := a.facet.Parse(offset)
				if err != nil {
					return fmt.Errorf("offset: %w", err)
				}
				if f, err = format.NewAffineFormatter(symbol, scale, zero); err != nil {
					return err
				}
			}

			if _, ok := a.facet.System().ExactSymbol(symbol); ok {
				return fmt.Errorf("%w: %q is a %s symbol", format.ErrDuplicateSymbol, symbol, a.facet.System())
			}
			b := a.builder.Clone()
			_, err = a.store.Get(symbol)
			switch {
			case err == nil:
				err = b.ReplaceInput(f)
			case errors.Is(err, symbols.ErrNotFound):
				err = b.AddInput(f)
			}
			if err != nil {
				return err
			}
			if _, err := b.Build(); err != nil {
				return err
			}

			if err := a.store.Define(symbols.FromFormatter(f)); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s = %s\n", symbol, a.facet.Render(scale).Text(a.cfg.Precision))
			return nil
		},
	}
	cmd.Flags().StringVar(&offset, "offset", "", "quantity at which the new symbol reads zero")
	return cmd
}

func newUndefineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "undefine <symbol>",
		Short: "Remove a saved input symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if a.store == nil {
				return errNoDatabase
			}
			return a.store.Remove(args[0])
		},
	}
}

func newSymbolsCmd(a *app) *cobra.Command {
	var dimension string

	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List the input symbols, grouped by dimension",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			maps := a.facet.Inputs().Maps()
			if dimension != "" {
				f, err := a.facet.Inputs().Resolve(dimension)
				if err != nil {
					return err
				}
				maps = enumerable.Filter(maps, func(m *format.InputMap) bool {
					return m.Unit().Matches(f.Unit())
				})
			}

			for _, m := range maps {
				name := m.Unit().String()
				if name == "" {
					name = "1"
				}
				fmt.Fprintf(a.out, "%s (%s): %s\n", name, m.Unit().Dimension(), strings.Join(m.Symbols(), " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dimension, "dimension", "d", "", "only list symbols with the dimension of this unit expression")
	return cmd
}
