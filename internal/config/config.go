// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package config loads dimcalc settings from a YAML file and DIMCALC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyPrecision = "precision"
	KeySymbols   = "symbols"
	KeyDatabase  = "database"
	KeyTrace     = "trace"

	DefaultPrecision = 4
)

type Config struct {
	Precision int32  // digits after the decimal point when displaying
	Symbols   string // optional YAML symbol table
	Database  string // sqlite file of user-defined symbols, empty to disable
	Trace     bool
}

// DefaultDatabase is the symbol database under ~/data, next to the other
// calculator data files.
func DefaultDatabase() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "data", "dim-symbols.sqlite3")
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPrecision, DefaultPrecision)
	v.SetDefault(KeySymbols, "")
	v.SetDefault(KeyDatabase, DefaultDatabase())
	v.SetDefault(KeyTrace, false)

	v.SetEnvPrefix("dimcalc")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads path, or $HOME/.dimcalc.yaml when path is empty. A missing
// default file is not an error.
func Read(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".dimcalc")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load decodes the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	precision := v.GetInt(KeyPrecision)
	if precision < 0 || precision > 17 {
		return Config{}, fmt.Errorf("config: precision %d out of range 0..17", precision)
	}

	return Config{
		Precision: int32(precision),
		Symbols:   v.GetString(KeySymbols),
		Database:  v.GetString(KeyDatabase),
		Trace:     v.GetBool(KeyTrace),
	}, nil
}
