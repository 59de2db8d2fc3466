package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tonematch/internal/classifier"
	"github.com/Veraticus/tonematch/internal/engine"
	"github.com/Veraticus/tonematch/internal/model"
	tuitest "github.com/Veraticus/tonematch/internal/tui/testing"
)

func resolvedSnapshot(t *testing.T, undertone model.Undertone) engine.Snapshot {
	t.Helper()

	img := model.Image{
		Name:   "face.jpg",
		Format: "jpeg",
		Source: model.SourceFile,
		Data:   []byte{0xff, 0xd8},
		Width:  640,
		Height: 480,
	}
	record := model.ToneRecord{Tone: "Medium", Undertone: undertone, Confidence: 88}

	snap, err := engine.New().Analyze(context.Background(), classifier.NewMockClassifier(record), img)
	require.NoError(t, err)
	require.Equal(t, engine.StateResolved, snap.State)
	return snap
}

func TestNewReport(t *testing.T) {
	snap := resolvedSnapshot(t, model.UndertoneWarm)

	report, err := NewReport(snap)
	require.NoError(t, err)

	assert.Equal(t, "Medium", report.Tone)
	assert.Equal(t, "#ebc8a4", report.ToneHex)
	assert.Equal(t, model.UndertoneWarm, report.Undertone)
	assert.Equal(t, 88, report.Confidence)
	assert.Equal(t, []model.Season{model.SeasonSpring, model.SeasonAutumn}, report.Recommended)
	assert.Len(t, report.Palettes, 4)
	require.NotNil(t, report.Image)
	assert.Equal(t, "face.jpg", report.Image.Name)
	assert.Equal(t, model.SourceFile, report.Image.Source)
}

func TestNewReport_NoResult(t *testing.T) {
	tests := []struct {
		snap engine.Snapshot
		name string
	}{
		{name: "idle", snap: engine.New().Snapshot()},
		{name: "failed", snap: func() engine.Snapshot {
			e := engine.New()
			_, _ = e.Analyze(context.Background(),
				classifier.NewFailingClassifier(errors.New("boom")),
				model.Image{Name: "x.png", Data: []byte{1}})
			return e.Snapshot()
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReport(tt.snap)
			assert.ErrorIs(t, err, ErrNoResult)

			var buf bytes.Buffer
			assert.ErrorIs(t, WriteJSON(&buf, tt.snap), ErrNoResult)
			assert.ErrorIs(t, RenderSnapshot(&buf, tt.snap, false), ErrNoResult)
			assert.Empty(t, buf.String())
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, resolvedSnapshot(t, model.UndertoneCool)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "cool", decoded["undertone"])
	assert.Equal(t, "Medium", decoded["tone"])
	assert.InDelta(t, 88, decoded["confidence"], 0)
	assert.Equal(t, []any{"Summer", "Winter"}, decoded["recommended"])

	palettes, ok := decoded["palettes"].([]any)
	require.True(t, ok)
	require.Len(t, palettes, 4)
	first, ok := palettes[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Spring", first["name"])
	assert.Len(t, first["colors"], 5)
}

func TestRenderSnapshot(t *testing.T) {
	tests := []struct {
		name        string
		undertone   model.Undertone
		expected    []string
		notExpected []string
		showAll     bool
	}{
		{
			name:        "warm shows recommended only",
			undertone:   model.UndertoneWarm,
			expected:    []string{"Skin tone", "Medium", "Undertone", "Warm", "88%", "Recommended for you: Spring, Autumn", "#FF5733", "2 more palette(s) hidden"},
			notExpected: []string{"Summer", "#1B4F72"},
		},
		{
			name:        "cool with all palettes",
			undertone:   model.UndertoneCool,
			showAll:     true,
			expected:    []string{"Cool", "Recommended for you: Summer, Winter", "Spring", "Summer", "Autumn", "Winter"},
			notExpected: []string{"hidden"},
		},
		{
			name:        "neutral recommends everything",
			undertone:   model.UndertoneNeutral,
			expected:    []string{"Neutral", "Recommended for you: Spring, Summer, Autumn, Winter"},
			notExpected: []string{"hidden"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderSnapshot(&buf, resolvedSnapshot(t, tt.undertone), tt.showAll))

			out := tuitest.StripANSI(buf.String())
			assert.Contains(t, out, "face.jpg · 640×480")
			for _, want := range tt.expected {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notExpected {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderPalettes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPalettes(&buf, ""))
	out := tuitest.StripANSI(buf.String())

	assert.True(t, tuitest.ContainsInOrder(out, "Seasonal palettes", "Spring", "Summer", "Autumn", "Winter"))
	assert.NotContains(t, out, "recommended")

	buf.Reset()
	require.NoError(t, RenderPalettes(&buf, model.UndertoneWarm))
	out = tuitest.StripANSI(buf.String())

	assert.Contains(t, out, "Seasonal palettes for warm undertones")
	assert.True(t, tuitest.ContainsInOrder(out, "Spring", "recommended", "Summer", "Autumn", "recommended", "Winter"))
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("recommended")))
}
