// Package main provides a demo program for the TUI. It runs fully offline
// with a simulated camera and the random classifier.
package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"time"

	"github.com/Veraticus/tonematch/internal/capture"
	"github.com/Veraticus/tonematch/internal/classifier"
	"github.com/Veraticus/tonematch/internal/tui"
	"github.com/Veraticus/tonematch/internal/tui/themes"
)

func main() {
	frame, err := demoFrame(320, 240)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error creating demo frame: %v\n", err)
		os.Exit(1)
	}

	theme := "default"
	if len(os.Args) > 1 {
		theme = os.Args[1]
	}

	err = tui.Run(context.Background(),
		tui.WithClassifier(classifier.NewRandomClassifier(classifier.WithDelay(2*time.Second))),
		tui.WithCapture(capture.NewController(capture.NewMockCamera(frame))),
		tui.WithTheme(themes.GetTheme(theme)),
		tui.WithSize(120, 40),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// demoFrame renders a warm vertical gradient standing in for a camera still.
func demoFrame(width, height int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		shade := uint8(40 * y / height)
		c := color.RGBA{R: 0xeb - shade, G: 0xc8 - shade, B: 0xa4 - shade, A: 0xff}
		for x := range width {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
