package config

import (
	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/sudipshil9862/team-do/internal/logging"
)

// Settings keys for Fyne preferences
const (
	KeyWindowWidth    = "window_width"
	KeyWindowHeight   = "window_height"
	KeyStylesheetPath = "stylesheet_path"
	KeyLogLevel       = "log_level"
)

// Default values
const (
	DefaultWindowWidth  = 400
	DefaultWindowHeight = 300
	DefaultLogLevel     = "info"

	MinWindowWidth  = 200
	MinWindowHeight = 150
)

// LogLevelOptions lists the log levels offered in the preferences dialog
var LogLevelOptions = []string{"debug", "info", "warn", "error"}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetWindowSize returns the initial window size, also used when the list empties
func (s *Settings) GetWindowSize() fyne.Size {
	width := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	return fyne.NewSize(float32(width), float32(height))
}

// SetWindowSize stores the initial window size
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, width)
	s.app.Preferences().SetInt(KeyWindowHeight, height)
}

// GetStylesheetPath returns the external style sheet path; empty means the embedded sheet
func (s *Settings) GetStylesheetPath() string {
	return s.app.Preferences().String(KeyStylesheetPath)
}

// SetStylesheetPath sets the external style sheet path
func (s *Settings) SetStylesheetPath(path string) {
	s.app.Preferences().SetString(KeyStylesheetPath, path)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() zerolog.Level {
	name := s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
	return logging.ParseLevel(name)
}

// SetLogLevel sets the log level; unknown names are stored as the default
func (s *Settings) SetLogLevel(name string) {
	level := logging.ParseLevel(name)
	s.app.Preferences().SetString(KeyLogLevel, level.String())
}
