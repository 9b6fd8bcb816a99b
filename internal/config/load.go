package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvLogLevel    = "CPKIT_LOG_LEVEL"
	EnvLogFormat   = "CPKIT_LOG_FORMAT"
	EnvRangePolicy = "CPKIT_RANGE_POLICY"
	EnvMaxLineSize = "CPKIT_MAX_LINE_SIZE"
)

// LoadDotEnv loads environment variables from a .env file.
// ENV_PATH, when set, replaces defaultPath. A missing defaultPath is never
// an error. A file named by ENV_PATH that cannot be loaded is an error only
// in local mode (env "local" or empty); elsewhere the process environment
// is used as is.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	explicit := envPath != ""
	if !explicit {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			slog.Debug("No .env file, using process environment", "path", envPath)
			return nil
		}
		if env == "local" || env == "" {
			return fmt.Errorf("config: load %s: %w", envPath, err)
		}
		slog.Debug("Skipping .env", "path", envPath, "error", err)
	}

	return nil
}

// Decode reads YAML from r on top of Default. Unknown keys are rejected.
// An empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode yaml: %w", err)
	}

	return cfg, nil
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment overrides. The result is
// validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if cfg, err = Decode(f); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overrides fields from lookup, which has the os.LookupEnv signature.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvRangePolicy); ok {
		c.Scanner.RangePolicy = v
	}
	if v, ok := lookup(EnvMaxLineSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvMaxLineSize, v, err)
		}
		c.Scanner.MaxLineSize = n
	}

	return nil
}
