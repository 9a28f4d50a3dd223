package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a new structured logger based on configuration.
// Logs go to stderr because stdout carries the account states.
func (c *LoggerConfig) NewLogger() *slog.Logger {
	return c.newLogger(os.Stderr)
}

func (c *LoggerConfig) newLogger(w io.Writer) *slog.Logger {
	level := parseLogLevel(c.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug || level == slog.LevelError,
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
