package classifier

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Veraticus/tonematch/internal/common"
	"github.com/Veraticus/tonematch/internal/model"
)

const (
	// DefaultDelay is the simulated processing time of the random classifier.
	DefaultDelay = 1500 * time.Millisecond

	// MinConfidence and MaxConfidence bound the random classifier's confidence.
	MinConfidence = 75
	MaxConfidence = 95
)

// RandomClassifier is the reference stub. It waits a fixed delay and then
// picks a catalog entry uniformly at random. Results are not repeatable across
// calls even for the same image.
type RandomClassifier struct {
	rng     *rand.Rand
	catalog []model.ToneSwatch
	delay   time.Duration
	mu      sync.Mutex
}

// RandomOption configures a RandomClassifier.
type RandomOption func(*RandomClassifier)

// WithDelay sets the simulated latency. Zero keeps the default; a negative
// value disables waiting.
func WithDelay(d time.Duration) RandomOption {
	return func(c *RandomClassifier) {
		switch {
		case d < 0:
			c.delay = 0
		case d > 0:
			c.delay = d
		}
	}
}

// WithSource sets the random source, mainly for deterministic tests.
func WithSource(src rand.Source) RandomOption {
	return func(c *RandomClassifier) {
		c.rng = rand.New(src)
	}
}

// WithCatalog replaces the tone catalog. An empty catalog is ignored.
func WithCatalog(catalog []model.ToneSwatch) RandomOption {
	return func(c *RandomClassifier) {
		if len(catalog) > 0 {
			c.catalog = catalog
		}
	}
}

// NewRandomClassifier creates the reference random classifier.
func NewRandomClassifier(opts ...RandomOption) *RandomClassifier {
	c := &RandomClassifier{
		catalog: model.SkinTones,
		delay:   DefaultDelay,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Delay returns the simulated latency.
func (c *RandomClassifier) Delay() time.Duration {
	return c.delay
}

// Classify waits for the simulated delay and returns a random tone record.
func (c *RandomClassifier) Classify(ctx context.Context, img model.Image) (model.ToneRecord, error) {
	if img.IsEmpty() {
		return model.ToneRecord{}, fmt.Errorf("%w: no image data", common.ErrInvalidInput)
	}

	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return model.ToneRecord{}, fmt.Errorf("%w: %w", common.ErrClassificationFailed, ctx.Err())
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return model.ToneRecord{}, fmt.Errorf("%w: %w", common.ErrClassificationFailed, err)
	}

	c.mu.Lock()
	entry := c.catalog[c.rng.IntN(len(c.catalog))]
	confidence := MinConfidence + c.rng.IntN(MaxConfidence-MinConfidence+1)
	c.mu.Unlock()

	return model.ToneRecord{
		Tone:       entry.Name,
		Undertone:  entry.Undertone,
		Confidence: confidence,
	}, nil
}
