// ABOUTME: Tests for the root command and global flag handling
// ABOUTME: Verifies environment variable and flag configuration

package cmd

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PUMP_HEAD_CATALOG", "")
	t.Setenv("PUMP_HEAD_CAPACITIES", "")
	catalogPath, capacitiesPath = "", ""

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CatalogPath != "pumps.csv" {
		t.Errorf("expected default catalog pumps.csv, got %s", cfg.CatalogPath)
	}
	if cfg.CapacitiesPath != "stp_output_summary.xlsx" {
		t.Errorf("expected default capacities stp_output_summary.xlsx, got %s", cfg.CapacitiesPath)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PUMP_HEAD_CATALOG", "/data/pumps.xlsx")
	catalogPath = ""

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CatalogPath != "/data/pumps.xlsx" {
		t.Errorf("expected /data/pumps.xlsx, got %s", cfg.CatalogPath)
	}
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	t.Setenv("PUMP_HEAD_CATALOG", "/data/pumps.xlsx")
	t.Setenv("PUMP_HEAD_CAPACITIES", "/data/stp.xlsx")
	catalogPath = "/flag/pumps.csv"
	capacitiesPath = "/flag/stp.csv"
	defer func() { catalogPath, capacitiesPath = "", "" }()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CatalogPath != "/flag/pumps.csv" {
		t.Errorf("expected flag to override env, got %s", cfg.CatalogPath)
	}
	if cfg.CapacitiesPath != "/flag/stp.csv" {
		t.Errorf("expected flag to override env, got %s", cfg.CapacitiesPath)
	}
}

func TestLoadConfig_InvalidCoefficient(t *testing.T) {
	t.Setenv("PUMP_HEAD_FLOW_FRICTION", "lots")

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for non-numeric coefficient")
	}
}

func TestLogConfig_UsesConfiguredLogger(t *testing.T) {
	t.Setenv("PUMP_HEAD_FLOW_FRICTION", "0.12")

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("loading config should not log, got %q", buf.String())
	}

	logConfig(cfg)
	if !strings.Contains(buf.String(), "Using custom friction coefficients") {
		t.Errorf("expected custom coefficient notice, got %q", buf.String())
	}
}

func TestJSONOutput(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()

	if !IsJSONOutput() {
		t.Error("expected IsJSONOutput to return true")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"calculate": false, "catalog": false, "capacities": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}
