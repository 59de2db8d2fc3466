package viewmodel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tonematch/internal/engine"
	"github.com/Veraticus/tonematch/internal/model"
	"github.com/Veraticus/tonematch/internal/palette"
)

func resolved(record model.ToneRecord) engine.Snapshot {
	recs := palette.Recommend(record.Undertone)
	return engine.Snapshot{
		State:           engine.StateResolved,
		Generation:      1,
		Record:          &record,
		Recommendations: &recs,
		Image: &engine.ImageInfo{
			Name:   "face.jpg",
			Format: "jpeg",
			Source: model.SourceFile,
			Width:  640,
			Height: 480,
		},
	}
}

func TestProject_Resolved(t *testing.T) {
	snap := resolved(model.ToneRecord{Tone: "Medium", Undertone: model.UndertoneWarm, Confidence: 88})

	view := Project(snap, Options{Width: 100, Height: 40})

	assert.Equal(t, StateResolved, view.State)
	assert.False(t, view.HasError())
	require.True(t, view.HasResult())

	r := view.Result
	assert.Equal(t, "Medium", r.Tone)
	assert.Equal(t, "Warm", r.Undertone)
	assert.Equal(t, "88%", r.Confidence)
	assert.Equal(t, 88, r.ConfidenceValue)
	assert.Equal(t, SwatchView{Hex: "#ebc8a4", TextColor: "#000000"}, r.ToneSwatch)

	assert.Equal(t, []string{"Spring", "Autumn"}, r.RecommendedNames())
	require.Len(t, r.Palettes, 2)
	assert.Equal(t, 2, r.Hidden)
	for _, p := range r.Palettes {
		assert.True(t, p.Recommended)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Swatches)
		for _, s := range p.Swatches {
			assert.Equal(t, palette.ContrastColor(s.Hex), s.TextColor)
		}
	}

	assert.Equal(t, "face.jpg", view.Capture.ImageName)
	assert.Equal(t, "file", view.Capture.ImageSource)
	assert.Equal(t, "640×480", view.Capture.ImageSize)
}

func TestProject_ShowAll(t *testing.T) {
	snap := resolved(model.ToneRecord{Tone: "Deep", Undertone: model.UndertoneCool, Confidence: 91})

	view := Project(snap, Options{ShowAll: true})
	require.NotNil(t, view.Result)

	var names []string
	var flags []bool
	for _, p := range view.Result.Palettes {
		names = append(names, p.Name)
		flags = append(flags, p.Recommended)
	}
	assert.Equal(t, []string{"Spring", "Summer", "Autumn", "Winter"}, names)
	assert.Equal(t, []bool{false, true, false, true}, flags)
	assert.Zero(t, view.Result.Hidden)
}

func TestProject_Neutral(t *testing.T) {
	snap := resolved(model.ToneRecord{Tone: "Dark", Undertone: model.UndertoneNeutral, Confidence: 75})

	view := Project(snap, Options{})
	require.NotNil(t, view.Result)
	assert.Equal(t, []string{"Spring", "Summer", "Autumn", "Winter"}, view.Result.RecommendedNames())
	assert.Zero(t, view.Result.Hidden)
	assert.Equal(t, "#ffffff", view.Result.ToneSwatch.TextColor)
}

func TestProject_States(t *testing.T) {
	tests := []struct {
		snap engine.Snapshot
		name string
		opts Options
		want AppState
	}{
		{name: "idle", snap: engine.Snapshot{}, want: StateIdle},
		{name: "entering path", snap: engine.Snapshot{}, opts: Options{EnteringPath: true, PathInput: "~/me.jpg"}, want: StateEnteringPath},
		{name: "camera live", snap: engine.Snapshot{}, opts: Options{CameraActive: true, CameraAvailable: true}, want: StateCameraLive},
		{name: "analyzing", snap: engine.Snapshot{State: engine.StateAnalyzing}, want: StateAnalyzing},
		{name: "analyzing wins over path entry", snap: engine.Snapshot{State: engine.StateAnalyzing}, opts: Options{EnteringPath: true}, want: StateAnalyzing},
		{name: "resolved", snap: resolved(model.ToneRecord{Tone: "Tan", Undertone: model.UndertoneWarm, Confidence: 80}), want: StateResolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Project(tt.snap, tt.opts)
			assert.Equal(t, tt.want, view.State)
			assert.Equal(t, tt.want == StateAnalyzing, view.IsBusy())
		})
	}
}

func TestProject_Error(t *testing.T) {
	snap := engine.Snapshot{
		State:        engine.StateIdle,
		Err:          errors.New("boom"),
		ErrorMessage: "Analysis failed: boom",
	}

	view := Project(snap, Options{})
	assert.Equal(t, StateIdle, view.State)
	assert.True(t, view.HasError())
	assert.Equal(t, "Analysis failed: boom", view.Error)
	assert.Nil(t, view.Result)
}

func TestProject_IsPure(t *testing.T) {
	snap := resolved(model.ToneRecord{Tone: "Medium", Undertone: model.UndertoneWarm, Confidence: 88})
	opts := Options{ShowAll: true, Width: 80}

	first := Project(snap, opts)
	first.Result.Palettes[0].Swatches[0].Hex = "#123456"

	second := Project(snap, opts)
	assert.NotEqual(t, "#123456", second.Result.Palettes[0].Swatches[0].Hex)
	assert.Equal(t, "#FF5733", snap.Recommendations.All[0].Colors[0])
}

func TestProject_KeyBindings(t *testing.T) {
	active := func(view AppView) []string {
		var keys []string
		for _, kb := range view.GetActiveKeyBindings() {
			keys = append(keys, kb.Key)
		}
		return keys
	}

	idle := Project(engine.Snapshot{}, Options{CameraAvailable: true})
	assert.Equal(t, []string{"f", "c", "?", "q"}, active(idle))

	noCamera := Project(engine.Snapshot{}, Options{})
	assert.Equal(t, []string{"f", "?", "q"}, active(noCamera))

	live := Project(engine.Snapshot{}, Options{CameraAvailable: true, CameraActive: true})
	assert.Equal(t, []string{"space", "esc", "?", "q"}, active(live))

	path := Project(engine.Snapshot{}, Options{EnteringPath: true})
	assert.Equal(t, []string{"enter", "esc"}, active(path))

	done := Project(resolved(model.ToneRecord{Tone: "Tan", Undertone: model.UndertoneWarm, Confidence: 80}), Options{})
	assert.Equal(t, []string{"f", "a", "r", "?", "q"}, active(done))
}

func TestAppState_String(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		state AppState
	}{
		{name: "idle", state: StateIdle, want: "Idle"},
		{name: "entering path", state: StateEnteringPath, want: "EnteringPath"},
		{name: "camera", state: StateCameraLive, want: "CameraLive"},
		{name: "analyzing", state: StateAnalyzing, want: "Analyzing"},
		{name: "resolved", state: StateResolved, want: "Resolved"},
		{name: "unknown", state: AppState(42), want: "Unknown(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "75%", FormatConfidence(75))
	assert.Equal(t, "", FormatDimensions(0, 10))
	assert.Equal(t, "1920×1080", FormatDimensions(1920, 1080))

	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "a long...", TruncateString("a long filename.jpg", 9))
	assert.Equal(t, "..", TruncateString("abcdef", 2))
	assert.Equal(t, "", TruncateString("abc", 0))
}
