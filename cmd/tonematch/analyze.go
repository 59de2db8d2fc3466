package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/tonematch/internal/capture"
	"github.com/Veraticus/tonematch/internal/cli"
	"github.com/Veraticus/tonematch/internal/common"
	"github.com/Veraticus/tonematch/internal/engine"
	"github.com/Veraticus/tonematch/internal/model"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one photo and print your palettes",
		Long: `Analyze a single photo, from a file or the camera, and print the skin tone,
undertone and recommended seasonal palettes.

Examples:
  tonematch analyze --file selfie.jpg
  tonematch analyze --camera
  tonematch analyze --file selfie.png --json
  tonematch analyze --file selfie.png --all`,
		Args: cobra.NoArgs,
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("file", "f", "", "Image file to analyze")
	cmd.Flags().BoolP("camera", "c", false, "Capture a photo with the camera")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	cmd.Flags().BoolP("all", "a", false, "Show every palette, not only the recommended ones")
	cmd.MarkFlagsMutuallyExclusive("file", "camera")
	cmd.MarkFlagsOneRequired("file", "camera")

	return cmd
}

type analyzeOptions struct {
	file      string
	useCamera bool
	jsonOut   bool
	showAll   bool
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	opts := analyzeOptions{}
	opts.file, _ = cmd.Flags().GetString("file")
	opts.useCamera, _ = cmd.Flags().GetBool("camera")
	opts.jsonOut, _ = cmd.Flags().GetBool("json")
	opts.showAll, _ = cmd.Flags().GetBool("all")
	if !cmd.Flags().Changed("all") {
		opts.showAll = viper.GetBool("ui.show_all")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cls, err := initClassifier(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	controller := initCapture(cfg)
	defer func() {
		if closeErr := controller.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to release camera", nil)
		}
	}()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx = handler.HandleInterrupts(ctx, opts.useCamera)

	snap, err := analyze(ctx, cmd.ErrOrStderr(), cls, controller, opts)
	if handler.WasInterrupted() {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.jsonOut {
		return cli.WriteJSON(cmd.OutOrStdout(), snap)
	}
	return cli.RenderSnapshot(cmd.OutOrStdout(), snap, opts.showAll)
}

// analyze acquires one image and runs it through the pipeline. Progress is
// written to status unless JSON output is requested.
func analyze(ctx context.Context, status io.Writer, cls engine.Classifier, controller *capture.Controller, opts analyzeOptions) (engine.Snapshot, error) {
	if opts.jsonOut {
		status = nil
	}

	img, err := acquire(ctx, status, controller, opts)
	if err != nil {
		return engine.Snapshot{}, err
	}

	spinner := cli.StartSpinner(status, fmt.Sprintf("Analyzing %s...", img.Name))
	snap, err := engine.New().Analyze(ctx, cls, img)
	spinner.Stop()
	if err != nil {
		return snap, err
	}

	slog.Debug("Analysis complete",
		"image", img.Name,
		"tone", snap.Record.Tone,
		"undertone", snap.Record.Undertone,
		"confidence", snap.Record.Confidence)
	return snap, nil
}

func acquire(ctx context.Context, status io.Writer, controller *capture.Controller, opts analyzeOptions) (model.Image, error) {
	if !opts.useCamera {
		if opts.file == "" {
			return model.Image{}, common.ErrNoImage
		}
		return controller.AcquireFile(ctx, opts.file)
	}

	if !controller.HasCamera() {
		return model.Image{}, fmt.Errorf("%w: camera is disabled in the configuration", common.ErrCameraUnavailable)
	}

	spinner := cli.StartSpinner(status, cli.CameraIcon+" Capturing from camera...")
	defer spinner.Stop()

	if err := controller.OpenCamera(ctx); err != nil {
		return model.Image{}, err
	}
	return controller.CaptureFrame(ctx)
}
