// Package config holds the parameters of an example program. Programs embed
// their YAML at build time; nothing is read from disk or the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"j5.nz/nostd/std/logger"
)

// Radix selects the output number base. Only hexadecimal is implemented.
type Radix int

const (
	Hex Radix = iota
)

func (r Radix) String() string {
	switch r {
	case Hex:
		return "hex"
	}
	return fmt.Sprintf("Radix(%d)", int(r))
}

func (r *Radix) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "hex", "16":
		*r = Hex
		return nil
	}
	return fmt.Errorf("line %d: unsupported radix %q", value.Line, s)
}

func (r Radix) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// Config represents one program's settings
type Config struct {
	TermLimit int          `yaml:"term_limit"`
	Radix     Radix        `yaml:"radix"`
	Width     int          `yaml:"width"` // bits in the generator's integer type
	LogLevel  logger.Level `yaml:"log_level"`
}

// Default returns the settings of the 25-term Fibonacci program.
func Default() Config {
	return Config{
		TermLimit: 25,
		Radix:     Hex,
		Width:     64,
		LogLevel:  logger.OffLevel,
	}
}

// Parse overlays data onto Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TermLimit < 0 {
		return fmt.Errorf("invalid config: term_limit %d is negative", c.TermLimit)
	}
	if c.Radix != Hex {
		return fmt.Errorf("invalid config: radix %v", c.Radix)
	}
	switch c.Width {
	case 8, 16, 32, 64:
	default:
		return fmt.Errorf("invalid config: width %d (want 8, 16, 32 or 64)", c.Width)
	}
	level, err := logger.ParseLevel(string(c.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.LogLevel = level
	return nil
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
