// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/tonematch/internal/common"
)

// Config is the resolved application configuration.
type Config struct {
	Logging    LoggingConfig
	Classifier ClassifierConfig
	UI         UIConfig
	Capture    CaptureConfig
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string
	Format string
	// File receives logs while the interactive UI owns the terminal.
	File string
}

// ClassifierConfig selects the classifier implementation.
type ClassifierConfig struct {
	Provider string
	Gemini   GeminiConfig
	Delay    time.Duration
}

// GeminiConfig holds Gemini API settings.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// CaptureConfig controls image acquisition.
type CaptureConfig struct {
	Camera       CameraConfig
	MaxFileBytes int64
}

// CameraConfig describes the external capture program.
type CameraConfig struct {
	Command  string
	Device   string
	Args     []string
	Disabled bool
}

// UIConfig controls the interactive interface.
type UIConfig struct {
	Theme   string
	ShowAll bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("classifier.provider", "random")
	v.SetDefault("classifier.delay", "1500ms")
	v.SetDefault("classifier.gemini.model", "gemini-2.5-flash")
	v.SetDefault("capture.max_file_bytes", 10<<20)
	v.SetDefault("capture.camera.command", "ffmpeg")
	v.SetDefault("capture.camera.device", "/dev/video0")
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.show_all", false)
}

// Load reads the configuration from v. Values follow viper's precedence;
// GEMINI_API_KEY is used when no key is configured.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
		Classifier: ClassifierConfig{
			Provider: strings.ToLower(v.GetString("classifier.provider")),
			Delay:    v.GetDuration("classifier.delay"),
			Gemini: GeminiConfig{
				APIKey: v.GetString("classifier.gemini.api_key"),
				Model:  v.GetString("classifier.gemini.model"),
			},
		},
		Capture: CaptureConfig{
			MaxFileBytes: v.GetInt64("capture.max_file_bytes"),
			Camera: CameraConfig{
				Command:  v.GetString("capture.camera.command"),
				Device:   v.GetString("capture.camera.device"),
				Args:     v.GetStringSlice("capture.camera.args"),
				Disabled: v.GetBool("capture.camera.disabled"),
			},
		},
		UI: UIConfig{
			Theme:   v.GetString("ui.theme"),
			ShowAll: v.GetBool("ui.show_all"),
		},
	}

	if cfg.Classifier.Gemini.APIKey == "" {
		cfg.Classifier.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	switch c.Classifier.Provider {
	case "random", "":
	case "gemini":
		if c.Classifier.Gemini.APIKey == "" {
			return fmt.Errorf("%w: classifier.gemini.api_key (or GEMINI_API_KEY) is required for the gemini provider", common.ErrMissingConfig)
		}
	default:
		return fmt.Errorf("%w: unknown classifier provider %q", common.ErrInvalidConfig, c.Classifier.Provider)
	}

	if c.Classifier.Delay < 0 {
		return fmt.Errorf("%w: classifier.delay must not be negative", common.ErrInvalidConfig)
	}
	if c.Capture.MaxFileBytes < 0 {
		return fmt.Errorf("%w: capture.max_file_bytes must not be negative", common.ErrInvalidConfig)
	}
	return nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
