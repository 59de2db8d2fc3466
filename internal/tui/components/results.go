// Package components holds the reusable pieces of the interactive UI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/tonematch/internal/tui/themes"
	"github.com/Veraticus/tonematch/internal/tui/viewmodel"
)

// ResultsPanel renders a resolved analysis.
type ResultsPanel struct {
	theme      themes.Theme
	confidence progress.Model
	width      int
}

// NewResultsPanel creates a results panel.
func NewResultsPanel(theme themes.Theme) ResultsPanel {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Primary)),
		progress.WithoutPercentage(),
	)
	bar.Width = 20

	return ResultsPanel{
		theme:      theme,
		confidence: bar,
		width:      80,
	}
}

// Resize sets the available width.
func (p *ResultsPanel) Resize(width int) {
	p.width = width
	p.confidence.Width = max(10, min(width/4, 30))
}

// View renders the result.
func (p ResultsPanel) View(result viewmodel.ResultView) string {
	sections := []string{
		p.renderTone(result),
		"",
		p.renderPalettesTitle(result),
	}

	for _, pv := range result.Palettes {
		sections = append(sections, p.renderPalette(pv), "")
	}

	if result.Hidden > 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(p.theme.Muted).
			Render(fmt.Sprintf("%d more palette(s) hidden. Press 'a' to compare all.", result.Hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p ResultsPanel) renderTone(result viewmodel.ResultView) string {
	label := lipgloss.NewStyle().Foreground(p.theme.Muted).Width(12)

	swatch := RenderSwatch(p.theme, result.ToneSwatch, "      ")

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Center,
			label.Render("Skin tone"),
			p.theme.Bold.Render(result.Tone),
			"  ",
			swatch,
		),
		lipgloss.JoinHorizontal(lipgloss.Center,
			label.Render("Undertone"),
			p.theme.Bold.Render(result.Undertone),
		),
		lipgloss.JoinHorizontal(lipgloss.Center,
			label.Render("Confidence"),
			p.confidence.ViewAs(float64(result.ConfidenceValue)/100),
			" ",
			p.theme.Normal.Render(result.Confidence),
		),
	}

	return p.theme.RoundedBox.Render(strings.Join(lines, "\n"))
}

func (p ResultsPanel) renderPalettesTitle(result viewmodel.ResultView) string {
	names := result.RecommendedNames()
	if len(names) == 0 {
		return p.theme.Subtitle.Render("Seasonal palettes")
	}
	return p.theme.Subtitle.Render("Recommended for you: " + strings.Join(names, ", "))
}

func (p ResultsPanel) renderPalette(pv viewmodel.PaletteView) string {
	header := p.theme.Bold.Render(pv.Name)
	if pv.Recommended {
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, " ", p.theme.Badge.Render("recommended"))
	}

	chips := make([]string, 0, len(pv.Swatches))
	for _, s := range pv.Swatches {
		chips = append(chips, RenderSwatch(p.theme, s, s.Hex))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		lipgloss.NewStyle().Foreground(p.theme.Muted).Render(pv.Description),
		lipgloss.JoinHorizontal(lipgloss.Top, chips...),
	)
}

// RenderSwatch renders label on the swatch color using its contrast color.
func RenderSwatch(theme themes.Theme, s viewmodel.SwatchView, label string) string {
	return theme.Swatch.
		Background(lipgloss.Color(s.Hex)).
		Foreground(lipgloss.Color(s.TextColor)).
		Render(label)
}
