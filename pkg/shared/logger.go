package shared

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a timestamped zerolog logger writing to w at level.
// An empty level selects DefaultLogLevel.
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	trimmed := strings.ToLower(strings.TrimSpace(level))
	if trimmed == "" {
		trimmed = DefaultLogLevel
	}

	parsed, err := zerolog.ParseLevel(trimmed)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return zerolog.New(w).
		Level(parsed).
		With().
		Timestamp().
		Logger(), nil
}

// NewConsoleLogger is NewLogger with human readable output, for examples.
func NewConsoleLogger(w io.Writer, level string) (zerolog.Logger, error) {
	return NewLogger(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}, level)
}
