// Package config loads driver settings from defaults, an optional YAML file,
// a .env file and the process environment, in that order of precedence
// (later wins).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/cpkit/scanner"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full driver configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Scanner ScannerConfig `yaml:"scanner"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// ScannerConfig maps onto scanner options.
type ScannerConfig struct {
	// RangePolicy is strict or unchecked.
	RangePolicy string `yaml:"range_policy"`
	// MaxLineSize is the longest accepted input line in bytes.
	MaxLineSize int `yaml:"max_line_size"`
}

// Default returns the configuration used when nothing else is supplied.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Scanner: ScannerConfig{
			RangePolicy: scanner.RangeStrict.String(),
			MaxLineSize: scanner.DefaultMaxLineSize,
		},
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format %q: want text or json", c.Log.Format))
	}
	if _, err := scanner.ParseRangePolicy(c.Scanner.RangePolicy); err != nil {
		errs = append(errs, err)
	}
	if c.Scanner.MaxLineSize <= 0 {
		errs = append(errs, fmt.Errorf("max line size %d: must be positive", c.Scanner.MaxLineSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// SlogLevel parses Level into a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, err)
	}

	return lvl, nil
}

// Options converts the scanner settings into scanner options.
// Call Validate first; Options returns the same errors it would.
func (s ScannerConfig) Options() ([]scanner.Option, error) {
	policy, err := scanner.ParseRangePolicy(s.RangePolicy)
	if err != nil {
		return nil, err
	}
	if s.MaxLineSize <= 0 {
		return nil, fmt.Errorf("%w: max line size %d", ErrInvalidConfig, s.MaxLineSize)
	}

	return []scanner.Option{
		scanner.WithRangePolicy(policy),
		scanner.WithMaxLineSize(s.MaxLineSize),
	}, nil
}
