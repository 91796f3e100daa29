// ABOUTME: Structured logging configuration using log/slog.
// ABOUTME: Routes logs to stderr for commands and to a file (or nowhere) under the TUI.

package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Init configures the default slog logger.
// level: debug, info, warn, error (default: info)
// format: text, json (default: text)
func Init(level, format string, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// InitCLI logs to stderr so stdout stays clean for command output.
func InitCLI(level, format string) {
	Init(level, format, os.Stderr)
}

// InitTUI keeps logs off the terminal while the alt screen is active. With
// an empty path logs are discarded. The returned function closes the file.
func InitTUI(path, level, format string) (func() error, error) {
	if path == "" {
		Init(level, format, io.Discard)
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	Init(level, format, f)
	return f.Close, nil
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
