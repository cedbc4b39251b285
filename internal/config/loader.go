package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thruflo/sieve/internal/logging"
	"github.com/thruflo/sieve/internal/primetable"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultMax      uint64 = 1_000_000
	DefaultGridRows        = 10
	DefaultGridCols        = 10
	DefaultLogLevel        = "warn"
)

// Dir is the directory, relative to the working directory, holding sieve files.
const Dir = ".sieve"

// DefaultGrid returns the 10x10 grid shown at startup.
func DefaultGrid() Grid {
	return Grid{
		Rows: DefaultGridRows,
		Cols: DefaultGridCols,
	}
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Max:      DefaultMax,
		Grid:     DefaultGrid(),
		LogLevel: DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Path returns the config file location under basePath.
func Path(basePath string) string {
	return filepath.Join(basePath, Dir, "config.yaml")
}

// LoadConfig reads and parses .sieve/config.yaml from the given base path.
// If the file doesn't exist, returns default config.
// Applies defaults for any missing fields.
func LoadConfig(basePath string) (*Config, error) {
	data, err := os.ReadFile(Path(basePath))
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WriteConfig writes cfg as YAML to .sieve/config.yaml under basePath,
// creating the directory if needed.
func WriteConfig(basePath string, cfg *Config) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := Path(basePath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Max > primetable.MaxN {
		return ValidationError{Field: "max", Message: fmt.Sprintf("must not exceed %d", primetable.MaxN)}
	}
	if err := ValidateGrid(cfg.Grid); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: err.Error()}
	}
	return nil
}

// ValidateGrid checks that grid dimensions are positive.
func ValidateGrid(g Grid) error {
	if g.Rows <= 0 {
		return ValidationError{Field: "grid.rows", Message: "must be positive"}
	}
	if g.Cols <= 0 {
		return ValidationError{Field: "grid.cols", Message: "must be positive"}
	}
	return nil
}

// ParseMax parses a maximum candidate value given as text.
// Empty, non-numeric, negative and out-of-range values are rejected rather
// than replaced by a fallback.
func ParseMax(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ValidationError{Field: "max", Message: "required value is empty"}
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ValidationError{Field: "max", Message: fmt.Sprintf("%q is not a non-negative integer", s)}
	}
	if v > primetable.MaxN {
		return 0, ValidationError{Field: "max", Message: fmt.Sprintf("must not exceed %d", primetable.MaxN)}
	}
	return v, nil
}
