// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mikecarlton/dim/format"
	"github.com/mikecarlton/dim/internal/config"
	"github.com/mikecarlton/dim/internal/symbols"
	"github.com/mikecarlton/dim/si"
)

// app is the state shared by the commands once configuration is loaded.
type app struct {
	cfgFile string
	verbose bool

	viper   *viper.Viper
	cfg     config.Config
	builder *format.Builder
	facet   *format.Facet
	store   *symbols.Store

	out    io.Writer
	errOut io.Writer
}

func newApp(out, errOut io.Writer) *app {
	return &app{viper: config.New(), out: out, errOut: errOut}
}

// execute runs the command line args. The symbol database is closed on every
// path, including a failed setup or command.
func (a *app) execute(args []string) (err error) {
	defer func() {
		err = errors.Join(err, a.close())
	}()

	cmd := a.rootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dimcalc [flags] ARGUMENTS...",
		Short: "RPN calculator for quantities with physical units",
		Long: heredoc(`
			dimcalc evaluates its arguments as a reverse polish program over
			quantities with physical units and prints the resulting stack.
			Run 'dimcalc units' for the operators and symbols.`),
		Example: heredoc(`
			dimcalc 5 ft 3 in + m
			dimcalc '60 mi/h' 2 h '*' km
			dimcalc 100 degF degC`),
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.calculate(args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)
	// negative numbers and "-" are arguments once evaluation starts
	cmd.Flags().SetInterspersed(false)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.dimcalc.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.Int32P(config.KeyPrecision, "p", config.DefaultPrecision, "display precision for floating point numbers")
	flags.BoolP(config.KeyTrace, "t", false, "trace operations")
	flags.String(config.KeySymbols, "", "YAML table of additional symbols")
	flags.String(config.KeyDatabase, config.DefaultDatabase(), "database of defined symbols (empty to disable)")
	for _, key := range []string{config.KeyPrecision, config.KeyTrace, config.KeySymbols, config.KeyDatabase} {
		_ = a.viper.BindPFlag(key, flags.Lookup(key))
	}

	cmd.AddCommand(
		newConvertCmd(a),
		newDefineCmd(a),
		newUndefineCmd(a),
		newSymbolsCmd(a),
		newUnitsHelpCmd(),
	)
	return cmd
}

func (a *app) setup() error {
	a.setupLogging()

	if err := config.Read(a.viper, a.cfgFile); err != nil {
		return err
	}
	if used := a.viper.ConfigFileUsed(); used != "" {
		slog.Debug("using config file", "file", used)
	}

	cfg, err := config.Load(a.viper)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.builder, err = si.NewBuilder(); err != nil {
		return err
	}
	if cfg.Database != "" {
		if a.store, err = symbols.Open(cfg.Database); err != nil {
			return err
		}
	}
	if cfg.Symbols != "" {
		table, err := format.LoadTableFile(cfg.Symbols)
		if err != nil {
			return err
		}
		if err := a.builder.AddTable(table); err != nil {
			return fmt.Errorf("%s: %w", cfg.Symbols, err)
		}
		slog.Debug("loaded symbol table", "file", cfg.Symbols, "input", len(table.Input), "output", len(table.Output))
	}
	if a.store != nil {
		if err := a.store.Load(a.builder); err != nil {
			return err
		}
		slog.Debug("loaded symbol database", "file", cfg.Database)
	}

	a.facet, err = a.builder.Build()
	return err
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

func (a *app) setupLogging() {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func (a *app) calculate(args []string) error {
	c := newCalculator(a.facet, a.cfg.Precision)
	if a.cfg.Trace {
		c.trace = func(arg string, s *Stack) {
			fmt.Fprintf(a.errOut, "%-10s %s\n", arg, s.oneline(a.facet, a.cfg.Precision))
		}
	}

	if err := c.run(args); err != nil {
		return err
	}
	c.stack.print(a.out, a.facet, a.cfg.Precision)
	return nil
}
