package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tonematch/internal/common"
	"github.com/Veraticus/tonematch/internal/config"
	"github.com/Veraticus/tonematch/internal/engine"
	"github.com/Veraticus/tonematch/internal/tui"
	"github.com/Veraticus/tonematch/internal/tui/themes"
)

func uiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui [image]",
		Short: "Open the interactive interface",
		Long: `Open the interactive interface. Pick a photo with 'f', or use your camera
with 'c'. When an image path is given it is analyzed right away.

Examples:
  tonematch ui
  tonematch ui ~/Pictures/selfie.jpg`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUI,
	}
	return cmd
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs would corrupt the alternate screen.
	logWriter, closeLog, err := openLogFile(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to close log file: %v\n", closeErr)
		}
	}()
	if err := setupLogging(logWriter); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	ctx := cmd.Context()
	cls, err := initClassifier(ctx, cfg)
	if err != nil {
		return err
	}

	common.LogInfo("Starting interactive UI", common.Fields{"classifier": cfg.Classifier.Provider, "theme": cfg.UI.Theme})
	return tui.Run(ctx, uiOptions(cfg, cls, args)...)
}

func uiOptions(cfg config.Config, cls engine.Classifier, args []string) []tui.Option {
	opts := []tui.Option{
		tui.WithClassifier(cls),
		tui.WithCapture(initCapture(cfg)),
		tui.WithTheme(themes.GetTheme(cfg.UI.Theme)),
		tui.WithShowAll(cfg.UI.ShowAll),
	}
	if len(args) > 0 {
		opts = append(opts, tui.WithInitialImage(args[0]))
	}
	return opts
}
