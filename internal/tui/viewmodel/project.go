package viewmodel

import (
	"github.com/Veraticus/tonematch/internal/engine"
	"github.com/Veraticus/tonematch/internal/model"
	"github.com/Veraticus/tonematch/internal/palette"
)

// Options carries UI state that lives outside the engine.
type Options struct {
	PathInput       string
	StatusMessage   string
	Width           int
	Height          int
	EnteringPath    bool
	CameraAvailable bool
	CameraActive    bool
	ShowAll         bool
	ShowHelp        bool
}

// Project builds the view model from an engine snapshot. It has no side
// effects; the same inputs always produce the same view.
func Project(snap engine.Snapshot, opts Options) AppView {
	view := AppView{
		State:         projectState(snap, opts),
		Error:         snap.ErrorMessage,
		StatusMessage: opts.StatusMessage,
		Width:         opts.Width,
		Height:        opts.Height,
		ShowHelp:      opts.ShowHelp,
		ShowAll:       opts.ShowAll,
		Capture: CaptureView{
			PathInput:       opts.PathInput,
			CameraAvailable: opts.CameraAvailable,
			CameraActive:    opts.CameraActive,
		},
	}

	if snap.Image != nil {
		view.Capture.ImageName = snap.Image.Name
		view.Capture.ImageSource = string(snap.Image.Source)
		view.Capture.ImageSize = FormatDimensions(snap.Image.Width, snap.Image.Height)
	}

	if snap.State == engine.StateResolved && snap.Record != nil && snap.Recommendations != nil {
		result := projectResult(*snap.Record, *snap.Recommendations, opts.ShowAll)
		view.Result = &result
	}

	view.KeyBindings = keyBindings(view)
	return view
}

func projectState(snap engine.Snapshot, opts Options) AppState {
	switch {
	case snap.State == engine.StateAnalyzing:
		return StateAnalyzing
	case opts.EnteringPath:
		return StateEnteringPath
	case opts.CameraActive:
		return StateCameraLive
	case snap.State == engine.StateResolved:
		return StateResolved
	default:
		return StateIdle
	}
}

func projectResult(record model.ToneRecord, set model.RecommendationSet, showAll bool) ResultView {
	toneHex := palette.SkinToneColor(record.Tone)
	result := ResultView{
		Tone:            record.Tone,
		Undertone:       record.Undertone.Title(),
		Confidence:      FormatConfidence(record.Confidence),
		ConfidenceValue: record.Confidence,
		ToneSwatch:      swatch(toneHex),
	}

	palettes := palette.RecommendedPalettes(set)
	if showAll {
		palettes = set.All
	} else {
		result.Hidden = len(set.All) - len(palettes)
	}

	result.Palettes = make([]PaletteView, 0, len(palettes))
	for _, p := range palettes {
		pv := PaletteView{
			Name:        string(p.Name),
			Description: p.Description,
			Recommended: set.IsRecommended(p.Name),
			Swatches:    make([]SwatchView, 0, len(p.Colors)),
		}
		for _, hex := range p.Colors {
			pv.Swatches = append(pv.Swatches, swatch(hex))
		}
		result.Palettes = append(result.Palettes, pv)
	}
	return result
}

func swatch(hex string) SwatchView {
	return SwatchView{Hex: hex, TextColor: palette.ContrastColor(hex)}
}

func keyBindings(view AppView) []KeyBinding {
	idle := view.State == StateIdle || view.State == StateResolved
	return []KeyBinding{
		{Key: "f", Description: "open image file", IsActive: idle},
		{Key: "c", Description: "use camera", IsActive: idle && view.Capture.CameraAvailable},
		{Key: "space", Description: "capture", IsActive: view.State == StateCameraLive},
		{Key: "enter", Description: "analyze file", IsActive: view.State == StateEnteringPath},
		{Key: "esc", Description: "cancel", IsActive: view.State == StateCameraLive || view.State == StateEnteringPath},
		{Key: "a", Description: "toggle all palettes", IsActive: view.State == StateResolved},
		{Key: "r", Description: "start over", IsActive: view.State == StateResolved || view.HasError()},
		{Key: "?", Description: "help", IsActive: view.State != StateEnteringPath},
		{Key: "q", Description: "quit", IsActive: view.State != StateEnteringPath},
	}
}
