package tui

import (
	"github.com/Veraticus/tonematch/internal/capture"
	"github.com/Veraticus/tonematch/internal/engine"
	"github.com/Veraticus/tonematch/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Classifier   engine.Classifier
	Capture      *capture.Controller
	InitialImage string
	Width        int
	Height       int
	ShowAll      bool
	ShowHelp     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  80,
		Height: 24,
	}
}

// WithClassifier sets the tone classifier.
func WithClassifier(classifier engine.Classifier) Option {
	return func(c *Config) {
		c.Classifier = classifier
	}
}

// WithCapture sets the capture controller. Without one, only image files
// can be analyzed.
func WithCapture(controller *capture.Controller) Option {
	return func(c *Config) {
		c.Capture = controller
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithInitialImage analyzes path as soon as the UI starts.
func WithInitialImage(path string) Option {
	return func(c *Config) {
		c.InitialImage = path
	}
}

// WithShowAll starts with every palette visible instead of only the
// recommended ones.
func WithShowAll(enabled bool) Option {
	return func(c *Config) {
		c.ShowAll = enabled
	}
}
