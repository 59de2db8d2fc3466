package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/tonematch/internal/tui/viewmodel"
)

// render renders the main screen for view.
func (m Model) render(view viewmodel.AppView) string {
	sections := []string{m.renderHeader()}

	switch view.State {
	case viewmodel.StateEnteringPath:
		sections = append(sections, m.pathInput.View())
	case viewmodel.StateCameraLive:
		sections = append(sections, m.renderCamera())
	case viewmodel.StateAnalyzing:
		sections = append(sections, m.renderAnalyzing(view))
	case viewmodel.StateResolved:
		sections = append(sections, m.renderImageInfo(view))
		if view.Result != nil {
			sections = append(sections, m.results.View(*view.Result))
		}
	default:
		sections = append(sections, m.renderWelcome(view))
	}

	if view.HasError() {
		sections = append(sections, m.renderError(view.Error))
	}

	return m.wrapWithBorder(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
		view,
	)
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.MarginBottom(0).Render("tonematch"),
		m.theme.Subtitle.Render("Seasonal color palettes for your skin tone"),
	)
}

func (m Model) renderWelcome(view viewmodel.AppView) string {
	lines := []string{
		m.theme.Normal.Render("Press " + m.keyHint("f") + " to analyze a photo from a file."),
	}
	if view.Capture.CameraAvailable {
		lines = append(lines, m.theme.Normal.Render("Press "+m.keyHint("c")+" to take one with your camera."))
	}
	lines = append(lines,
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Use a well-lit, front-facing photo for the best results."),
	)
	return m.theme.Box.Render(strings.Join(lines, "\n"))
}

func (m Model) renderCamera() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.StatusSuccess.Render("● Camera live"),
		"",
		m.theme.Normal.Render("Face the camera, then press "+m.keyHint("Space")+" to capture."),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Esc closes the camera."),
	)
	return m.theme.RoundedBox.Render(content)
}

func (m Model) renderAnalyzing(view viewmodel.AppView) string {
	name := view.Capture.ImageName
	if name == "" {
		name = "photo"
	}

	content := lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.spinner.View(),
		" ",
		m.theme.Subtitle.MarginBottom(0).Render("Analyzing "+viewmodel.TruncateString(name, 40)+"..."),
	)
	return m.theme.Box.Render(content)
}

func (m Model) renderImageInfo(view viewmodel.AppView) string {
	if view.Capture.ImageName == "" {
		return ""
	}

	parts := []string{view.Capture.ImageName}
	if view.Capture.ImageSize != "" {
		parts = append(parts, view.Capture.ImageSize)
	}
	if view.Capture.ImageSource != "" {
		parts = append(parts, view.Capture.ImageSource)
	}

	return lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render("Photo: " + strings.Join(parts, " · "))
}

func (m Model) renderError(message string) string {
	return m.theme.Box.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.StatusError.Render("Something went wrong"),
			m.theme.Normal.Render(message),
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Try another photo, or press 'r' to start over."),
		),
	)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("tonematch - Help")

	helpModel := m.help
	helpModel.ShowAll = true

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			Width(min(90, max(m.width-4, 20))).
			Render(
				lipgloss.JoinVertical(
					lipgloss.Left,
					title,
					helpModel.View(m.keymap),
					"",
					footer,
				),
			),
	)
}

// wrapWithBorder adds a border and status bar around content.
func (m Model) wrapWithBorder(content string, view viewmodel.AppView) string {
	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		"",
		m.renderStatusBar(view),
	)

	return m.theme.BorderedBox.
		Width(max(m.width-2, 20)).
		Render(fullContent)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar(view viewmodel.AppView) string {
	left := m.theme.StatusInfo.Render(view.State.String())

	var center string
	if view.StatusMessage != "" {
		center = m.theme.Normal.Render(view.StatusMessage)
	}

	var hints []string
	for _, kb := range view.GetActiveKeyBindings() {
		hints = append(hints, fmt.Sprintf("%s %s", kb.Key, kb.Description))
	}
	right := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, " • "))

	parts := []string{left}
	if center != "" {
		parts = append(parts, center)
	}
	parts = append(parts, right)
	return strings.Join(parts, "  ")
}

func (m Model) keyHint(k string) string {
	return lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render(k)
}
