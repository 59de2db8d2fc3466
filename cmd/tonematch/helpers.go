package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/tonematch/internal/capture"
	"github.com/Veraticus/tonematch/internal/classifier"
	"github.com/Veraticus/tonematch/internal/common"
	"github.com/Veraticus/tonematch/internal/config"
)

// envKeyReplacer maps nested keys such as capture.camera.device to
// TONEMATCH_CAPTURE_CAMERA_DEVICE.
var envKeyReplacer = strings.NewReplacer(".", "_")

func setupLogging(w io.Writer) error {
	return common.SetupLogger(w, viper.GetString("logging.level"), viper.GetString("logging.format"))
}

// loadConfig resolves the typed configuration from viper.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// initClassifier creates the configured classifier.
func initClassifier(ctx context.Context, cfg config.Config) (classifier.Classifier, error) {
	c, err := classifier.New(ctx, classifier.Config{
		Provider: cfg.Classifier.Provider,
		Delay:    cfg.Classifier.Delay,
		Gemini: classifier.GeminiConfig{
			APIKey: cfg.Classifier.Gemini.APIKey,
			Model:  cfg.Classifier.Gemini.Model,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier: %w", err)
	}
	return c, nil
}

// initCapture creates the capture controller. A disabled camera leaves the
// controller file-only.
func initCapture(cfg config.Config) *capture.Controller {
	var camera capture.Camera
	if !cfg.Capture.Camera.Disabled {
		camera = capture.NewCommandCamera(
			cfg.Capture.Camera.Command,
			cfg.Capture.Camera.Device,
			cfg.Capture.Camera.Args,
		)
	}

	var opts []capture.Option
	if cfg.Capture.MaxFileBytes > 0 {
		opts = append(opts, capture.WithMaxFileBytes(cfg.Capture.MaxFileBytes))
	}
	return capture.NewController(camera, opts...)
}

// openLogFile opens the log file used while the interactive UI owns the
// terminal. Without one, logs are discarded.
func openLogFile(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}
