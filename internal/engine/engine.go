// Package engine implements the analysis pipeline that turns a captured photo
// into a tone record and seasonal palette recommendations.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Veraticus/tonematch/internal/common"
	"github.com/Veraticus/tonematch/internal/model"
	"github.com/Veraticus/tonematch/internal/palette"
)

// State represents the pipeline state.
type State int

// Pipeline states.
const (
	StateIdle State = iota
	StateAnalyzing
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnalyzing:
		return "analyzing"
	case StateResolved:
		return "resolved"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Classifier defines the contract for tone classification.
type Classifier interface {
	Classify(ctx context.Context, img model.Image) (model.ToneRecord, error)
}

// ImageInfo describes the photo under analysis without holding its bytes.
type ImageInfo struct {
	Name   string
	Format string
	Source model.ImageSource
	Width  int
	Height int
}

// Snapshot is an immutable view of the pipeline. A new snapshot replaces the
// previous one on every transition.
type Snapshot struct {
	Err             error
	Image           *ImageInfo
	Record          *model.ToneRecord
	Recommendations *model.RecommendationSet
	ErrorMessage    string
	State           State
	Generation      uint64
}

// HasError reports whether the last attempt failed.
func (s Snapshot) HasError() bool {
	return s.ErrorMessage != ""
}

// Engine is the pipeline state machine. It is safe for concurrent use so
// classification results may be delivered from any goroutine.
type Engine struct {
	snapshot Snapshot
	mu       sync.Mutex
}

// New creates an engine in the idle state.
func New() *Engine {
	return &Engine{snapshot: Snapshot{State: StateIdle}}
}

// Snapshot returns the current snapshot.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot
}

// Begin starts a new analysis generation for img and returns its id. Any
// analysis still running becomes stale. An empty image is rejected with
// ErrNoImage and leaves the state untouched.
func (e *Engine) Begin(img model.Image) (uint64, error) {
	if img.IsEmpty() {
		return 0, common.ErrNoImage
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.snapshot.State == StateAnalyzing {
		slog.Debug("Superseding running analysis", "generation", e.snapshot.Generation)
	}

	gen := e.snapshot.Generation + 1
	e.snapshot = Snapshot{
		State:      StateAnalyzing,
		Generation: gen,
		Image: &ImageInfo{
			Name:   img.Name,
			Format: img.Format,
			Source: img.Source,
			Width:  img.Width,
			Height: img.Height,
		},
	}
	return gen, nil
}

// Complete settles generation gen with the classifier outcome. It reports
// whether the result was applied; results for anything but the current
// analyzing generation are dropped.
func (e *Engine) Complete(gen uint64, record model.ToneRecord, err error) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.snapshot.Generation || e.snapshot.State != StateAnalyzing {
		slog.Debug("Dropping stale analysis result", "generation", gen, "current", e.snapshot.Generation)
		return false
	}

	if err == nil {
		if validateErr := record.Validate(); validateErr != nil {
			err = fmt.Errorf("%w: %w", common.ErrClassificationFailed, validateErr)
		}
	}

	if err != nil {
		e.snapshot = e.failed(err)
		return true
	}

	recs := palette.Recommend(record.Undertone)
	e.snapshot = Snapshot{
		State:           StateResolved,
		Generation:      gen,
		Image:           e.snapshot.Image,
		Record:          &record,
		Recommendations: &recs,
	}
	slog.Debug("Analysis resolved",
		"generation", gen,
		"tone", record.Tone,
		"undertone", record.Undertone,
		"confidence", record.Confidence)
	return true
}

// Fail records an acquisition failure. ErrNoImage means nothing was
// acquired and is ignored. Any other error returns the pipeline to idle with
// the error message and makes running analyses stale.
func (e *Engine) Fail(err error) bool {
	if err == nil || errors.Is(err, common.ErrNoImage) {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.snapshot.Generation++
	e.snapshot = e.failed(err)
	e.snapshot.Image = nil
	return true
}

// Reset discards the current result and returns to idle.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.snapshot = Snapshot{
		State:      StateIdle,
		Generation: e.snapshot.Generation + 1,
	}
}

// failed must be called with the lock held.
func (e *Engine) failed(err error) Snapshot {
	common.LogError(err, "Analysis failed", common.Fields{"generation": e.snapshot.Generation})
	return Snapshot{
		State:        StateIdle,
		Generation:   e.snapshot.Generation,
		Image:        e.snapshot.Image,
		Err:          err,
		ErrorMessage: common.UserMessage(err),
	}
}

// Analyze runs one full analysis of img with c and returns the settled
// snapshot. The returned error is the classification failure, if any.
func (e *Engine) Analyze(ctx context.Context, c Classifier, img model.Image) (Snapshot, error) {
	gen, err := e.Begin(img)
	if err != nil {
		return e.Snapshot(), err
	}

	record, err := c.Classify(ctx, img)
	e.Complete(gen, record, err)

	snap := e.Snapshot()
	if snap.Generation == gen && snap.Err != nil {
		return snap, snap.Err
	}
	return snap, nil
}
