package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInit_JSONFormat(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	Init("info", "json", &buf)
	slog.Info("catalog loaded", "pumps", 3)

	out := buf.String()
	if !strings.Contains(out, `"msg":"catalog loaded"`) || !strings.Contains(out, `"pumps":3`) {
		t.Errorf("expected JSON log line, got %q", out)
	}
}

func TestInit_LevelFilters(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	Init("warn", "text", &buf)
	slog.Info("hidden")
	slog.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestInitTUI_WritesToFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "logs", "pump-head.log")
	closeFn, err := InitTUI(path, "info", "text")
	if err != nil {
		t.Fatalf("InitTUI failed: %v", err)
	}
	slog.Info("calculation complete")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "calculation complete") {
		t.Errorf("expected log line in file, got %q", data)
	}
}

func TestInitTUI_EmptyPathDiscards(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	closeFn, err := InitTUI("", "info", "text")
	if err != nil {
		t.Fatalf("InitTUI failed: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close should be a no-op, got %v", err)
	}
}
