package tui

import "github.com/Veraticus/tonematch/internal/model"

// Acquisition messages.
// imageAcquiredMsg carries the outcome of acquisition seq. Only the latest
// acquisition is applied.
type imageAcquiredMsg struct {
	err error
	img model.Image
	seq uint64
}

type cameraOpenedMsg struct {
	err error
}

// Analysis messages.
type analysisDoneMsg struct {
	err        error
	record     model.ToneRecord
	generation uint64
}

// statusMsg shows a transient message in the status bar.
type statusMsg struct {
	text string
}
