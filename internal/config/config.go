// ABOUTME: Configuration loader for the pump head calculator
// ABOUTME: Loads settings from .env and environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/markalston/pump-head/internal/hydraulics"
)

type Config struct {
	// Source files
	CatalogPath    string // pump catalog (.csv or .xlsx)
	CapacitiesPath string // STP capacity options (.xlsx or .csv)

	// Calculation
	Coefficients hydraulics.Coefficients
	BarScale     float64 // metres represented by one bar block (default 2)

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string // TUI log destination, empty discards
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first; variables already set in the environment win.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an error.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	defaults := hydraulics.DefaultCoefficients()

	var err error
	cfg := &Config{
		CatalogPath:    getEnv("PUMP_HEAD_CATALOG", "pumps.csv"),
		CapacitiesPath: getEnv("PUMP_HEAD_CAPACITIES", "stp_output_summary.xlsx"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		LogFile:        os.Getenv("PUMP_HEAD_LOG_FILE"),
	}

	// Numeric settings are parsed strictly: a typo in a coefficient must not
	// silently fall back to the default.
	for _, f := range []struct {
		key    string
		target *float64
		def    float64
	}{
		{"PUMP_HEAD_PRESSURE_FACTOR", &cfg.Coefficients.PressureHeadPerKgCm2, defaults.PressureHeadPerKgCm2},
		{"PUMP_HEAD_FLOW_FRICTION", &cfg.Coefficients.FlowFrictionCoeff, defaults.FlowFrictionCoeff},
		{"PUMP_HEAD_PIPE_FRICTION", &cfg.Coefficients.PipeFrictionPerM, defaults.PipeFrictionPerM},
		{"PUMP_HEAD_PIPE_FACTOR", &cfg.Coefficients.PipeFrictionFactor, defaults.PipeFrictionFactor},
		{"PUMP_HEAD_BAR_SCALE", &cfg.BarScale, 2},
	} {
		if *f.target, err = getEnvFloat(f.key, f.def); err != nil {
			return nil, err
		}
	}

	if err := cfg.Coefficients.Validate(); err != nil {
		return nil, fmt.Errorf("invalid coefficients: %w", err)
	}
	if cfg.BarScale <= 0 {
		return nil, fmt.Errorf("PUMP_HEAD_BAR_SCALE must be positive, got %v", cfg.BarScale)
	}
	return cfg, nil
}

// CustomCoefficients reports whether any friction coefficient differs from the defaults.
func (c *Config) CustomCoefficients() bool {
	return c.Coefficients != hydraulics.DefaultCoefficients()
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, value)
	}
	return v, nil
}
