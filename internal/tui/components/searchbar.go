// Package components holds shared widgets for the admin console views.
package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studio-ormeau/folio/internal/tui/theme"
)

// SearchBar is an input component for narrowing resource lists.
type SearchBar struct {
	input textinput.Model
}

// NewSearchBar creates a new search bar component.
func NewSearchBar(placeholder string) *SearchBar {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.Width = 50

	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Current.Text)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Current.TextMuted)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Current.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Current.Primary)

	return &SearchBar{input: ti}
}

// HandleKey passes a key message to the underlying textinput. The
// returned command must be executed by the parent for cursor blink.
func (sb *SearchBar) HandleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	sb.input, cmd = sb.input.Update(msg)
	return cmd
}

// Focus sets focus on the search bar.
func (sb *SearchBar) Focus() {
	sb.input.Focus()
}

// Blur removes focus from the search bar.
func (sb *SearchBar) Blur() {
	sb.input.Blur()
}

// Focused returns true if the search bar has focus.
func (sb *SearchBar) Focused() bool {
	return sb.input.Focused()
}

// Value returns the current search query.
func (sb *SearchBar) Value() string {
	return sb.input.Value()
}

// Clear clears the search query.
func (sb *SearchBar) Clear() {
	sb.input.Reset()
}

// SetWidth sets the width of the search bar.
func (sb *SearchBar) SetWidth(w int) {
	if w > 4 {
		sb.input.Width = w - 4
	}
}

// View renders the search bar.
func (sb *SearchBar) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Accent).
		Padding(0, 1)
	return boxStyle.Render(sb.input.View())
}
