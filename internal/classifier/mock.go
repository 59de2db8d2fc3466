package classifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Veraticus/tonematch/internal/common"
	"github.com/Veraticus/tonematch/internal/model"
)

// MockClassifier is a test implementation of the Classifier interface.
// It returns a fixed record, or fails with Err when set.
type MockClassifier struct {
	Err    error
	calls  []model.Image
	Record model.ToneRecord
	Delay  time.Duration
	mu     sync.Mutex
}

// NewMockClassifier creates a mock that always returns record.
func NewMockClassifier(record model.ToneRecord) *MockClassifier {
	return &MockClassifier{Record: record}
}

// NewFailingClassifier creates a mock that always fails with err.
func NewFailingClassifier(err error) *MockClassifier {
	return &MockClassifier{Err: err}
}

// Classify records the call and returns the configured result.
func (m *MockClassifier) Classify(ctx context.Context, img model.Image) (model.ToneRecord, error) {
	m.mu.Lock()
	m.calls = append(m.calls, img)
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return model.ToneRecord{}, fmt.Errorf("%w: %w", common.ErrClassificationFailed, ctx.Err())
		case <-time.After(m.Delay):
		}
	}

	if m.Err != nil {
		return model.ToneRecord{}, m.Err
	}
	if img.IsEmpty() {
		return model.ToneRecord{}, fmt.Errorf("%w: no image data", common.ErrInvalidInput)
	}
	return m.Record, nil
}

// CallCount returns how many times Classify was invoked.
func (m *MockClassifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the images passed to Classify.
func (m *MockClassifier) Calls() []model.Image {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]model.Image, len(m.calls))
	copy(calls, m.calls)
	return calls
}
