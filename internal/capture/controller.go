// Package capture acquires face photos from image files or a camera.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Veraticus/tonematch/internal/common"
	"github.com/Veraticus/tonematch/internal/config"
	"github.com/Veraticus/tonematch/internal/imaging"
	"github.com/Veraticus/tonematch/internal/model"
)

// DefaultMaxFileBytes caps the size of image files accepted from disk.
const DefaultMaxFileBytes int64 = 10 << 20

// Controller acquires images from exactly one of two paths per call: a file
// on disk or a still from the camera. It owns at most one open camera feed.
type Controller struct {
	camera       Camera
	feed         *ownedFeed
	maxFileBytes int64
	mu           sync.Mutex
}

// Option configures a Controller.
type Option func(*Controller)

// WithMaxFileBytes limits the size of image files. Non-positive values keep
// the default.
func WithMaxFileBytes(n int64) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxFileBytes = n
		}
	}
}

// NewController creates a controller. camera may be nil, in which case only
// file acquisition is available.
func NewController(camera Camera, opts ...Option) *Controller {
	c := &Controller{
		camera:       camera,
		maxFileBytes: DefaultMaxFileBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasCamera reports whether a camera is configured.
func (c *Controller) HasCamera() bool {
	return c.camera != nil
}

// CameraActive reports whether a camera feed is currently open.
func (c *Controller) CameraActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feed != nil
}

// AcquireFile reads and decodes an image file. An empty path returns
// ErrNoImage. Any open camera feed is released first.
func (c *Controller) AcquireFile(ctx context.Context, path string) (model.Image, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return model.Image{}, common.ErrNoImage
	}

	if err := c.CancelCamera(); err != nil {
		common.LogError(err, "Failed to release camera feed", nil)
	}

	if err := ctx.Err(); err != nil {
		return model.Image{}, fmt.Errorf("%w: %w", common.ErrAcquisitionFailed, err)
	}

	path = config.ExpandPath(path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Image{}, fmt.Errorf("%w: image file not found: %s", common.ErrAcquisitionFailed, path)
		}
		return model.Image{}, fmt.Errorf("%w: failed to stat image file: %w", common.ErrAcquisitionFailed, err)
	}
	if info.IsDir() {
		return model.Image{}, fmt.Errorf("%w: path is a directory, not a file: %s", common.ErrAcquisitionFailed, path)
	}
	if info.Size() > c.maxFileBytes {
		return model.Image{}, fmt.Errorf("%w: image file is %d bytes, limit is %d", common.ErrAcquisitionFailed, info.Size(), c.maxFileBytes)
	}

	file, err := os.Open(path) // #nosec G304 - user-selected image path
	if err != nil {
		return model.Image{}, fmt.Errorf("%w: failed to open image file: %w", common.ErrAcquisitionFailed, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close image file", common.Fields{"path": path})
		}
	}()

	data, err := io.ReadAll(io.LimitReader(file, c.maxFileBytes+1))
	if err != nil {
		return model.Image{}, fmt.Errorf("%w: failed to read image file: %w", common.ErrAcquisitionFailed, err)
	}

	img, err := imaging.Decode(data, filepath.Base(path), model.SourceFile)
	if err != nil {
		return model.Image{}, fmt.Errorf("%w: %w", common.ErrAcquisitionFailed, err)
	}

	common.LogDebug("Image acquired from file", common.Fields{
		"path":   path,
		"format": img.Format,
		"width":  img.Width,
		"height": img.Height,
	})
	return img, nil
}

// OpenCamera opens the live camera feed. Only one feed may be open at a time.
func (c *Controller) OpenCamera(ctx context.Context) error {
	if c.camera == nil {
		return fmt.Errorf("%w: %w: no camera configured", common.ErrAcquisitionFailed, common.ErrCameraUnavailable)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.feed != nil {
		return fmt.Errorf("%w: %w", common.ErrAcquisitionFailed, common.ErrCameraBusy)
	}

	feed, err := c.camera.Open(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrCameraUnavailable) {
			err = fmt.Errorf("%w: %w", common.ErrCameraUnavailable, err)
		}
		return fmt.Errorf("%w: %w", common.ErrAcquisitionFailed, err)
	}

	c.feed = &ownedFeed{Feed: feed}
	slog.Debug("Camera feed opened")
	return nil
}

// CaptureFrame grabs one still from the open feed and closes the feed,
// whether or not the capture succeeded.
func (c *Controller) CaptureFrame(ctx context.Context) (model.Image, error) {
	c.mu.Lock()
	feed := c.feed
	c.mu.Unlock()

	if feed == nil {
		return model.Image{}, fmt.Errorf("%w: %w", common.ErrAcquisitionFailed, common.ErrCameraClosed)
	}
	defer func() {
		if err := c.release(feed); err != nil {
			common.LogError(err, "Failed to close camera feed", nil)
		}
	}()

	data, err := feed.Capture(ctx)
	if err != nil {
		return model.Image{}, fmt.Errorf("%w: %w", common.ErrAcquisitionFailed, err)
	}
	if len(data) == 0 {
		return model.Image{}, common.ErrNoImage
	}

	img, err := imaging.Decode(data, "camera capture", model.SourceCamera)
	if err != nil {
		return model.Image{}, fmt.Errorf("%w: %w", common.ErrAcquisitionFailed, err)
	}

	common.LogDebug("Image captured from camera", common.Fields{
		"format": img.Format,
		"width":  img.Width,
		"height": img.Height,
	})
	return img, nil
}

// CancelCamera closes the open feed, if any.
func (c *Controller) CancelCamera() error {
	c.mu.Lock()
	feed := c.feed
	c.mu.Unlock()

	if feed == nil {
		return nil
	}
	return c.release(feed)
}

// Close releases every resource held by the controller.
func (c *Controller) Close() error {
	return c.CancelCamera()
}

func (c *Controller) release(feed *ownedFeed) error {
	c.mu.Lock()
	if c.feed == feed {
		c.feed = nil
	}
	c.mu.Unlock()
	return feed.Close()
}

// ownedFeed makes Close idempotent so every exit path can release the feed.
type ownedFeed struct {
	Feed
	err  error
	once sync.Once
}

func (f *ownedFeed) Close() error {
	f.once.Do(func() {
		f.err = f.Feed.Close()
		if f.err == nil {
			slog.Debug("Camera feed closed")
		}
	})
	return f.err
}
