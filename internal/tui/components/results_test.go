package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tonematch/internal/engine"
	"github.com/Veraticus/tonematch/internal/model"
	"github.com/Veraticus/tonematch/internal/palette"
	tuitesting "github.com/Veraticus/tonematch/internal/tui/testing"
	"github.com/Veraticus/tonematch/internal/tui/themes"
	"github.com/Veraticus/tonematch/internal/tui/viewmodel"
)

func resultView(t *testing.T, undertone model.Undertone, showAll bool) viewmodel.ResultView {
	t.Helper()
	record := model.ToneRecord{Tone: "Medium Dark", Undertone: undertone, Confidence: 83}
	recs := palette.Recommend(undertone)
	view := viewmodel.Project(engine.Snapshot{
		State:           engine.StateResolved,
		Record:          &record,
		Recommendations: &recs,
	}, viewmodel.Options{ShowAll: showAll})
	require.NotNil(t, view.Result)
	return *view.Result
}

func TestResultsPanel_View(t *testing.T) {
	panel := NewResultsPanel(themes.Default)
	panel.Resize(100)

	out := tuitesting.StripANSI(panel.View(resultView(t, model.UndertoneWarm, false)))

	assert.Contains(t, out, "Medium Dark")
	assert.Contains(t, out, "Warm")
	assert.Contains(t, out, "83%")
	assert.Contains(t, out, "Recommended for you: Spring, Autumn")
	assert.True(t, tuitesting.ContainsInOrder(out, "Spring", "#FF5733", "Autumn", "#BA4A00"))
	assert.NotContains(t, out, "Winter")
	assert.Contains(t, out, "2 more palette(s) hidden")
}

func TestResultsPanel_ShowAll(t *testing.T) {
	panel := NewResultsPanel(themes.CatppuccinMocha)

	out := tuitesting.StripANSI(panel.View(resultView(t, model.UndertoneCool, true)))

	assert.True(t, tuitesting.ContainsInOrder(out, "Spring", "Summer", "recommended", "Autumn", "Winter", "recommended"))
	assert.NotContains(t, out, "hidden")
}

func TestRenderSwatch(t *testing.T) {
	out := RenderSwatch(themes.Default, viewmodel.SwatchView{Hex: "#17202A", TextColor: "#ffffff"}, "#17202A")
	assert.Contains(t, tuitesting.StripANSI(out), "#17202A")
}

func TestPathInput(t *testing.T) {
	p := NewPathInput(themes.Default)
	assert.False(t, p.Focused())

	p.Focus()
	assert.True(t, p.Focused())

	for _, msg := range tuitesting.Type("~/me.jpg") {
		p, _ = p.Update(msg)
	}
	assert.Equal(t, "~/me.jpg", p.Value())
	assert.Contains(t, tuitesting.StripANSI(p.View()), "~/me.jpg")

	p.Reset()
	p.Blur()
	assert.Empty(t, p.Value())
	assert.False(t, p.Focused())
}
