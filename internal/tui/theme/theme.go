// Package theme provides color theming for the admin console.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	Background lipgloss.AdaptiveColor
	Surface    lipgloss.AdaptiveColor
	Overlay    lipgloss.AdaptiveColor

	Text          lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	TextHighlight lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// Tag chips on project rows
	Tag lipgloss.AdaptiveColor

	// Unread contact highlight
	Unread lipgloss.AdaptiveColor
}

// StudioTheme is the default folio color scheme.
var StudioTheme = Theme{
	Primary:   lipgloss.AdaptiveColor{Light: "#1E5FAA", Dark: "#3B82F6"}, // Blue
	Secondary: lipgloss.AdaptiveColor{Light: "#6B3FA0", Dark: "#9B59B6"}, // Purple
	Accent:    lipgloss.AdaptiveColor{Light: "#0D8A5E", Dark: "#10B981"}, // Emerald

	Background: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0D0D0D"},
	Surface:    lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#1A1A1A"},
	Overlay:    lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#2D2D2D"},

	Text:          lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E5E5E5"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#6B6B6B"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},

	Success: lipgloss.AdaptiveColor{Light: "#008000", Dark: "#00FF41"},
	Warning: lipgloss.AdaptiveColor{Light: "#CC5500", Dark: "#FF6B35"},
	Error:   lipgloss.AdaptiveColor{Light: "#CC0033", Dark: "#FF0040"},
	Info:    lipgloss.AdaptiveColor{Light: "#0088CC", Dark: "#00D4FF"},

	Tag:    lipgloss.AdaptiveColor{Light: "#B87A00", Dark: "#F59E0B"},
	Unread: lipgloss.AdaptiveColor{Light: "#C41E7A", Dark: "#EC4899"},
}

// Current is the active theme.
var Current = StudioTheme
