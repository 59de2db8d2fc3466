package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/tonematch/internal/common"
)

// Camera opens live feeds from a capture device.
type Camera interface {
	Open(ctx context.Context) (Feed, error)
}

// Feed is an open camera feed. Callers own it exclusively and must Close it.
type Feed interface {
	// Capture grabs a single encoded still frame.
	Capture(ctx context.Context) ([]byte, error)
	Close() error
}

// WithFeed opens a feed, hands it to fn and always closes it afterwards.
func WithFeed(ctx context.Context, camera Camera, fn func(Feed) error) (err error) {
	if camera == nil {
		return fmt.Errorf("%w: no camera configured", common.ErrCameraUnavailable)
	}

	feed, err := camera.Open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := feed.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close camera feed: %w", closeErr)
		}
	}()

	return fn(feed)
}

// Default capture command: one MJPEG frame from a V4L2 device on stdout.
const (
	DefaultCameraCommand = "ffmpeg"
	DefaultCameraDevice  = "/dev/video0"
	devicePlaceholder    = "{device}"
)

// DefaultCameraArgs returns the arguments used with DefaultCameraCommand.
func DefaultCameraArgs() []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-f", "v4l2", "-i", devicePlaceholder,
		"-frames:v", "1",
		"-f", "image2pipe", "-vcodec", "mjpeg", "-",
	}
}

// CommandCamera captures stills by running an external program that writes
// one JPEG frame to stdout. The string {device} in Args is replaced with
// Device.
type CommandCamera struct {
	Command string
	Device  string
	Args    []string
	Timeout time.Duration
}

// NewCommandCamera creates a camera with defaults filled in.
func NewCommandCamera(command, device string, args []string) *CommandCamera {
	if command == "" {
		command = DefaultCameraCommand
	}
	if device == "" {
		device = DefaultCameraDevice
	}
	if len(args) == 0 {
		args = DefaultCameraArgs()
	}
	return &CommandCamera{
		Command: command,
		Device:  device,
		Args:    args,
		Timeout: 15 * time.Second,
	}
}

// Open checks that the capture program and device are present.
func (c *CommandCamera) Open(_ context.Context) (Feed, error) {
	if _, err := exec.LookPath(c.Command); err != nil {
		return nil, fmt.Errorf("%w: capture program %s not found", common.ErrCameraUnavailable, c.Command)
	}

	if strings.HasPrefix(c.Device, "/dev/") {
		if err := checkDevice(c.Device); err != nil {
			return nil, err
		}
	}

	return &commandFeed{camera: c}, nil
}

// checkDevice verifies that the device node exists and can be opened.
func checkDevice(device string) error {
	f, err := os.Open(device)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", common.ErrCameraUnavailable, device, err)
		if errors.Is(err, fs.ErrPermission) {
			return common.NewUserError(
				fmt.Sprintf("Camera access was denied. Check the permissions on %s", device), err)
		}
		return err
	}
	return f.Close()
}

func (c *CommandCamera) args() []string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = strings.ReplaceAll(arg, devicePlaceholder, c.Device)
	}
	return args
}

type commandFeed struct {
	camera *CommandCamera
	mu     sync.Mutex
	closed bool
}

func (f *commandFeed) Capture(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	closed := f.closed
	f.mu.Unlock()
	if closed {
		return nil, common.ErrCameraClosed
	}

	cmdCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && f.camera.Timeout > 0 {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, f.camera.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(cmdCtx, f.camera.Command, f.camera.args()...) // #nosec G204 - configured capture program
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s", common.ErrCameraUnavailable, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("%w: failed to execute %s: %w", common.ErrCameraUnavailable, f.camera.Command, err)
	}

	return stdout.Bytes(), nil
}

func (f *commandFeed) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}
