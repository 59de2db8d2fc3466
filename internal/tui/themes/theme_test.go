package themes

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "default", want: "default"},
		{name: "catppuccin-mocha", want: "catppuccin-mocha"},
		{name: "light", want: "light"},
		{name: "", want: "default"},
		{name: "neon", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetTheme(tt.name).Name)
		})
	}
}

func TestNamesResolve(t *testing.T) {
	for _, name := range Names() {
		assert.Equal(t, name, GetTheme(name).Name)
	}
}

func TestThemeStylesUseColors(t *testing.T) {
	for _, name := range Names() {
		theme := GetTheme(name)
		assert.Equal(t, lipgloss.TerminalColor(theme.Primary), theme.Title.GetForeground(), name)
		assert.Equal(t, lipgloss.TerminalColor(theme.Success), theme.Badge.GetBackground(), name)
		assert.Equal(t, lipgloss.TerminalColor(theme.Border), theme.BorderedBox.GetBorderTopForeground(), name)
	}
}
