// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (soft coral).
	PrimaryColor = lipgloss.Color("#E07A5F")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#81B29A") // Sage
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#F2CC8F") // Sand
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#D64545") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#9DB4C0") // Mist
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#777777") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444")).
			Padding(0, 1)

	// LabelStyle aligns the field labels of a report.
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(12)

	// BadgeStyle marks recommended palettes.
	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(SuccessColor).
			Padding(0, 1)

	// SwatchStyle is the base style for color chips.
	SwatchStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	PaletteIcon = "🎨"
	CameraIcon  = "📷"
	StarIcon    = "★"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the palette icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(PaletteIcon + " " + title)
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}

// RenderSwatch renders label on background hex using fg for the text.
func RenderSwatch(hex, fg, label string) string {
	return SwatchStyle.
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Render(label)
}
