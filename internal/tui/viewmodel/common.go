// Package viewmodel defines the data structures for TUI rendering.
package viewmodel

// AppState represents the overall application state.
type AppState int

const (
	// StateIdle indicates no photo has been analyzed yet, or the last attempt failed.
	StateIdle AppState = iota
	// StateEnteringPath indicates the user is typing an image path.
	StateEnteringPath
	// StateCameraLive indicates the camera feed is open and waiting for a capture.
	StateCameraLive
	// StateAnalyzing indicates a classification is running.
	StateAnalyzing
	// StateResolved indicates results are on screen.
	StateResolved
)

// AppView represents the entire application view model.
type AppView struct {
	Result        *ResultView
	Capture       CaptureView
	Error         string
	StatusMessage string
	KeyBindings   []KeyBinding
	State         AppState
	Width         int
	Height        int
	ShowHelp      bool
	ShowAll       bool
}

// CaptureView describes the acquisition controls.
type CaptureView struct {
	PathInput       string
	ImageName       string
	ImageSource     string
	ImageSize       string
	CameraAvailable bool
	CameraActive    bool
}

// KeyBinding represents a keyboard shortcut.
type KeyBinding struct {
	Key         string
	Description string
	IsActive    bool
}

// IsBusy returns true while a classification is running.
func (av AppView) IsBusy() bool {
	return av.State == StateAnalyzing
}

// HasError returns true if the application has an error to show.
func (av AppView) HasError() bool {
	return av.Error != ""
}

// HasResult returns true if results are available.
func (av AppView) HasResult() bool {
	return av.Result != nil
}

// GetActiveKeyBindings returns only the currently active key bindings.
func (av AppView) GetActiveKeyBindings() []KeyBinding {
	var active []KeyBinding
	for _, kb := range av.KeyBindings {
		if kb.IsActive {
			active = append(active, kb)
		}
	}
	return active
}
