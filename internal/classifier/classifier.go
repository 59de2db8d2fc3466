// Package classifier provides undertone classifiers for captured photos.
// Every implementation satisfies the same Classifier contract, so the
// randomized reference stub can be swapped for a vision model without
// touching the pipeline.
package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/tonematch/internal/model"
)

// Classifier produces a tone record for an image. Implementations may block
// and must honor context cancellation.
type Classifier interface {
	Classify(ctx context.Context, img model.Image) (model.ToneRecord, error)
}

// Provider names accepted by New.
const (
	ProviderRandom = "random"
	ProviderGemini = "gemini"
)

// Config selects and configures a classifier.
type Config struct {
	Provider string
	Gemini   GeminiConfig
	Delay    time.Duration
}

// New creates a classifier based on the provided configuration.
func New(ctx context.Context, cfg Config) (Classifier, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderRandom, "":
		return NewRandomClassifier(WithDelay(cfg.Delay)), nil
	case ProviderGemini:
		return NewGeminiClassifier(ctx, cfg.Gemini)
	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", cfg.Provider)
	}
}
