// Package config loads the lambdabasics YAML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lguimbarda/lambda-basics/internal/telemetry"
)

// Config holds every setting the CLI reads from file. Flags override it.
type Config struct {
	WarmUpCycles    int    `yaml:"warm_up_cycles"`
	ExecutionCycles int    `yaml:"execution_cycles"`
	LogLevel        string `yaml:"log_level"`
	ResultsDB       string `yaml:"results_db"`
	PointsDB        string `yaml:"points_db"`
	// MetricsExporter is "none" or "stdout".
	MetricsExporter string `yaml:"metrics_exporter"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WarmUpCycles:    200,
		ExecutionCycles: 100,
		LogLevel:        "info",
		MetricsExporter: telemetry.ExporterNone,
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.WarmUpCycles <= 0 {
		errs = append(errs, fmt.Errorf("warm_up_cycles must be positive, got %d", c.WarmUpCycles))
	}
	if c.ExecutionCycles <= 0 {
		errs = append(errs, fmt.Errorf("execution_cycles must be positive, got %d", c.ExecutionCycles))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	switch c.MetricsExporter {
	case telemetry.ExporterNone, telemetry.ExporterStdout:
	default:
		errs = append(errs, fmt.Errorf("metrics_exporter must be %q or %q, got %q",
			telemetry.ExporterNone, telemetry.ExporterStdout, c.MetricsExporter))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
