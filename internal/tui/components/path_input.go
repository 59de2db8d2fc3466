package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/tonematch/internal/tui/themes"
)

// PathInput is the image path prompt.
type PathInput struct {
	theme themes.Theme
	input textinput.Model
}

// NewPathInput creates an unfocused path prompt.
func NewPathInput(theme themes.Theme) PathInput {
	input := textinput.New()
	input.Placeholder = "~/Pictures/me.jpg"
	input.CharLimit = 4096
	input.Width = 50
	input.Prompt = "> "
	input.PromptStyle = lipgloss.NewStyle().Foreground(theme.Primary)

	return PathInput{theme: theme, input: input}
}

// Focus focuses the prompt and returns the cursor blink command.
func (p *PathInput) Focus() tea.Cmd {
	return p.input.Focus()
}

// Blur unfocuses the prompt.
func (p *PathInput) Blur() {
	p.input.Blur()
}

// Focused reports whether the prompt is accepting input.
func (p PathInput) Focused() bool {
	return p.input.Focused()
}

// Reset clears the prompt.
func (p *PathInput) Reset() {
	p.input.Reset()
}

// Value returns the typed path.
func (p PathInput) Value() string {
	return p.input.Value()
}

// SetValue replaces the typed path.
func (p *PathInput) SetValue(s string) {
	p.input.SetValue(s)
}

// Resize sets the visible width of the prompt.
func (p *PathInput) Resize(width int) {
	p.input.Width = max(20, width-8)
}

// Update handles messages.
func (p PathInput) Update(msg tea.Msg) (PathInput, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the prompt.
func (p PathInput) View() string {
	return p.theme.Box.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			p.theme.Subtitle.Render("Image path:"),
			p.input.View(),
			lipgloss.NewStyle().Foreground(p.theme.Muted).Render("Enter to analyze, Esc to cancel"),
		),
	)
}
