package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/studio-ormeau/folio/internal/tui/theme"
)

// Styles contains the reusable Lipgloss styles for the console chrome.
type Styles struct {
	Container lipgloss.Style

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderTab   lipgloss.Style
	ActiveTab   lipgloss.Style

	Footer lipgloss.Style

	StatusOK lipgloss.Style

	ErrorBanner lipgloss.Style
}

// DefaultStyles creates the default style set from the active theme.
func DefaultStyles() Styles {
	t := theme.Current
	return Styles{
		Container: lipgloss.NewStyle().Padding(0, 1),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Overlay).
			Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		HeaderTab: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(t.TextHighlight).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(0, 1),

		StatusOK: lipgloss.NewStyle().Foreground(t.Success),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true).
			Padding(0, 1),
	}
}
