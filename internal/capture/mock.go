package capture

import (
	"context"
	"sync"

	"github.com/Veraticus/tonematch/internal/common"
)

// MockCamera is a test camera that returns a fixed frame and tracks how many
// feeds are open.
type MockCamera struct {
	OpenErr    error
	CaptureErr error
	Frame      []byte
	opened     int
	closed     int
	mu         sync.Mutex
}

// NewMockCamera creates a mock camera returning frame on every capture.
func NewMockCamera(frame []byte) *MockCamera {
	return &MockCamera{Frame: frame}
}

// Open opens a mock feed, or fails with OpenErr.
func (m *MockCamera) Open(_ context.Context) (Feed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	m.opened++
	return &mockFeed{camera: m}, nil
}

// Opened returns how many feeds were opened.
func (m *MockCamera) Opened() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opened
}

// Closed returns how many feeds were closed.
func (m *MockCamera) Closed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Live returns the number of feeds currently open.
func (m *MockCamera) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opened - m.closed
}

type mockFeed struct {
	camera *MockCamera
	closed bool
}

func (f *mockFeed) Capture(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.camera.mu.Lock()
	defer f.camera.mu.Unlock()

	if f.closed {
		return nil, common.ErrCameraClosed
	}
	if f.camera.CaptureErr != nil {
		return nil, f.camera.CaptureErr
	}
	return f.camera.Frame, nil
}

func (f *mockFeed) Close() error {
	f.camera.mu.Lock()
	defer f.camera.mu.Unlock()

	if !f.closed {
		f.closed = true
		f.camera.closed++
	}
	return nil
}
