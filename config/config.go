// SPDX-License-Identifier: MIT

// Package config loads the YAML settings shared by the harmonic tools and
// converts them into the option values the library packages accept.
//
// Example file:
//
//	base_sequence: [1, 2, 4, 8, 7, 5]
//	multiplier: 432
//	arithmetic: unreduced   # or reduced
//	determinant: auto       # or cofactor, elimination
//	log:
//	  level: info
//	  development: false
//
// Omitted keys keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/harmonic/fraction"
	"github.com/katalvlaran/harmonic/matrix"
	"github.com/katalvlaran/harmonic/sequence"
)

// Arithmetic names accepted in the arithmetic key.
const (
	ArithmeticUnreduced = "unreduced"
	ArithmeticReduced   = "reduced"
)

const defaultMultiplier = 432

// DefaultYAML is the documented default configuration.
const DefaultYAML = `# harmonic configuration
base_sequence: [1, 2, 4, 8, 7, 5]

# Numerator factor of the scale transform.
multiplier: 432

# unreduced keeps numerators and denominators as computed; reduced divides by the GCD.
arithmetic: unreduced

# auto uses cofactor expansion up to 9×9 and elimination above.
determinant: auto

log:
  level: info
  development: false
`

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// LogConfig selects the zap logger profile.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Config models the YAML file.
type Config struct {
	BaseSequence []int64   `yaml:"base_sequence"`
	Multiplier   int64     `yaml:"multiplier"`
	Arithmetic   string    `yaml:"arithmetic"`
	Determinant  string    `yaml:"determinant"`
	Log          LogConfig `yaml:"log"`
}

// Default returns the configuration described by DefaultYAML.
func Default() Config {
	return Config{
		BaseSequence: sequence.Default().Values(),
		Multiplier:   defaultMultiplier,
		Arithmetic:   ArithmeticUnreduced,
		Determinant:  matrix.Auto.String(),
		Log:          LogConfig{Level: zapcore.InfoLevel.String()},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default, normalizes and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) normalize() {
	c.Arithmetic = strings.ToLower(strings.TrimSpace(c.Arithmetic))
	c.Determinant = strings.ToLower(strings.TrimSpace(c.Determinant))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Arithmetic == "" {
		c.Arithmetic = ArithmeticUnreduced
	}
	if c.Determinant == "" {
		c.Determinant = matrix.Auto.String()
	}
	if c.Log.Level == "" {
		c.Log.Level = zapcore.InfoLevel.String()
	}
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if len(c.BaseSequence) == 0 {
		return fmt.Errorf("base_sequence must be non-empty: %w", ErrInvalid)
	}
	if c.Multiplier == 0 {
		return fmt.Errorf("multiplier must be non-zero: %w", ErrInvalid)
	}
	if _, err := c.arithmetic(); err != nil {
		return err
	}
	if _, err := matrix.ParseStrategy(c.Determinant); err != nil {
		return fmt.Errorf("determinant %q: %w", c.Determinant, ErrInvalid)
	}
	var lvl zapcore.Level
	if err := lvl.Set(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}

	return nil
}

// Base returns the configured lookup sequence.
func (c Config) Base() (sequence.Base, error) {
	return sequence.New(c.BaseSequence...)
}

// MatrixOptions converts the arithmetic and determinant keys.
func (c Config) MatrixOptions() ([]matrix.Option, error) {
	ar, err := c.arithmetic()
	if err != nil {
		return nil, err
	}
	s, err := matrix.ParseStrategy(c.Determinant)
	if err != nil {
		return nil, fmt.Errorf("determinant %q: %w", c.Determinant, ErrInvalid)
	}

	return []matrix.Option{matrix.WithArithmetic(ar), matrix.WithDeterminant(s)}, nil
}

// Logger builds a JSON zap logger at the configured level, using the
// development profile when log.development is set.
func (c Config) Logger() (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(c.Log.Level); err != nil {
		return nil, fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Encoding = "json"
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = true

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}

	return l, nil
}

// YAML renders c back to YAML.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c Config) arithmetic() (fraction.Arithmetic, error) {
	switch c.Arithmetic {
	case ArithmeticUnreduced, "":
		return fraction.Unreduced, nil
	case ArithmeticReduced:
		return fraction.Reduced, nil
	default:
		return nil, fmt.Errorf("arithmetic %q: %w", c.Arithmetic, ErrInvalid)
	}
}
