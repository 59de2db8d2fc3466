// Package themes defines the color themes of the interactive UI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	Swatch        lipgloss.Style
	Badge         lipgloss.Style
	Name          string
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Success       lipgloss.Color
	Error         lipgloss.Color
	Info          lipgloss.Color
}

// colors is the base palette a theme is derived from.
type colors struct {
	primary    string
	foreground string
	subtle     string
	muted      string
	border     string
	success    string
	onSuccess  string
	errorColor string
	info       string
}

func newTheme(name string, c colors) Theme {
	fg := lipgloss.Color(c.foreground)
	border := lipgloss.Color(c.border)

	return Theme{
		Name:       name,
		Primary:    lipgloss.Color(c.primary),
		Muted:      lipgloss.Color(c.muted),
		Border:     border,
		Foreground: fg,
		Success:    lipgloss.Color(c.success),
		Error:      lipgloss.Color(c.errorColor),
		Info:       lipgloss.Color(c.info),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.primary)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.subtle)).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().Foreground(fg),
		Bold:   lipgloss.NewStyle().Bold(true).Foreground(fg),

		Box: lipgloss.NewStyle().Padding(1, 2),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(1, 2),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),

		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color(c.success)).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.errorColor)).Bold(true),
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.info)).Bold(true),

		// Swatches carry their own colors; only spacing is themed.
		Swatch: lipgloss.NewStyle().Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(c.success)).
			Foreground(lipgloss.Color(c.onSuccess)).
			Bold(true).
			Padding(0, 1),
	}
}

// Default is the default theme.
var Default = newTheme("default", colors{
	primary:    "#e07a5f",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	muted:      "#737373",
	border:     "#404040",
	success:    "#81b29a",
	onSuccess:  "#1a1a1a",
	errorColor: "#ef4444",
	info:       "#9db4c0",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme("catppuccin-mocha", colors{
	primary:    "#cba6f7",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	muted:      "#6c7086",
	border:     "#45475a",
	success:    "#a6e3a1",
	onSuccess:  "#1e1e2e",
	errorColor: "#f38ba8",
	info:       "#89dceb",
})

// Light suits terminals with a light background.
var Light = newTheme("light", colors{
	primary:    "#b5523b",
	foreground: "#1f2328",
	subtle:     "#57606a",
	muted:      "#8c959f",
	border:     "#d0d7de",
	success:    "#2a7a52",
	onSuccess:  "#ffffff",
	errorColor: "#cf222e",
	info:       "#0969da",
})

var byName = map[string]Theme{
	Default.Name:         Default,
	CatppuccinMocha.Name: CatppuccinMocha,
	Light.Name:           Light,
}

// Names lists the selectable theme names.
func Names() []string {
	return []string{Default.Name, CatppuccinMocha.Name, Light.Name}
}

// GetTheme returns a theme by name. Unknown names fall back to Default.
func GetTheme(name string) Theme {
	if t, ok := byName[name]; ok {
		return t
	}
	return Default
}
