package viewmodel

import (
	"fmt"
	"strings"
)

// String returns a string representation of the app state.
func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateEnteringPath:
		return "EnteringPath"
	case StateCameraLive:
		return "CameraLive"
	case StateAnalyzing:
		return "Analyzing"
	case StateResolved:
		return "Resolved"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// FormatConfidence formats a confidence percentage for display.
func FormatConfidence(confidence int) string {
	return fmt.Sprintf("%d%%", confidence)
}

// FormatDimensions formats image dimensions, or returns "" when unknown.
func FormatDimensions(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return fmt.Sprintf("%d×%d", width, height)
}

// TruncateString truncates a string to the specified length with ellipsis.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	return string(runes[:maxLen-3]) + "..."
}
