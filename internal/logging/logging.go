// Package logging configures the zerolog logger used across alescout.
// The terminal belongs to the UI, so records always go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.Nop()

// Init opens path for appending and routes the global logger to it.
// The returned closer must be closed on shutdown.
func Init(path string, level string) (io.Closer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	SetOutput(f, level)
	return f, nil
}

// SetOutput points the global logger at w
func SetOutput(w io.Writer, level string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log = zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config level name onto a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Component returns a child logger tagged with the component name
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
