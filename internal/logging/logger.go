package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Component names attached to every log line
const (
	ComponentApp   = "app"
	ComponentStore = "store"
	ComponentUI    = "ui"
	ComponentStyle = "style"
)

// DefaultLevel is used when the configured level is empty or unknown
const DefaultLevel = zerolog.InfoLevel

// New returns a timestamped logger writing to writer at the given level
func New(writer io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole returns a human readable logger on stderr
func NewConsole(level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	return New(consoleWriter, level)
}

// ParseLevel maps a level name to a zerolog level, falling back to DefaultLevel
func ParseLevel(name string) zerolog.Level {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return DefaultLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}

// For returns a child logger tagged with the component name
func For(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
