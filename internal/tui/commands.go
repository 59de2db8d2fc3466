package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/tonematch/internal/model"
)

const (
	acquireTimeout  = 30 * time.Second
	classifyTimeout = 2 * time.Minute
)

// acquireFile reads and decodes an image file.
func (m Model) acquireFile(path string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, acquireTimeout)
		defer cancel()

		img, err := m.capture.AcquireFile(ctx, path)
		return imageAcquiredMsg{img: img, err: err, seq: seq}
	}
}

// openCamera opens the camera feed.
func (m Model) openCamera() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, acquireTimeout)
		defer cancel()

		return cameraOpenedMsg{err: m.capture.OpenCamera(ctx)}
	}
}

// captureFrame grabs a still from the open feed.
func (m Model) captureFrame(seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, acquireTimeout)
		defer cancel()

		img, err := m.capture.CaptureFrame(ctx)
		return imageAcquiredMsg{img: img, err: err, seq: seq}
	}
}

// classify runs the classifier for one generation. ctx is owned by the
// model and cancelled when the analysis is superseded.
func (m Model) classify(ctx context.Context, generation uint64, img model.Image) tea.Cmd {
	classifier := m.classifier
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
		defer cancel()

		record, err := classifier.Classify(ctx, img)
		return analysisDoneMsg{
			generation: generation,
			record:     record,
			err:        err,
		}
	}
}

// showStatus displays a transient status message.
func showStatus(text string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text}
	}
}
