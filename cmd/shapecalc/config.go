// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// maxPrecision bounds the number of fraction digits the CLI prints.
const maxPrecision = 10

// Config controls number formatting and the right-triangle tolerance.
type Config struct {
	Locale         string  `env:"SHAPECALC_LOCALE"          envDefault:"en"`
	Precision      int     `env:"SHAPECALC_PRECISION"       envDefault:"2"`
	RightTolerance float64 `env:"SHAPECALC_RIGHT_TOLERANCE" envDefault:"0.01"`
}

// LoadConfigFromEnv parses Config from the environment and validates it.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", maxPrecision, c.Precision)
	}
	if math.IsNaN(c.RightTolerance) || math.IsInf(c.RightTolerance, 0) || c.RightTolerance < 0 {
		return errors.New("tolerance must be a finite non-negative number")
	}

	return nil
}
