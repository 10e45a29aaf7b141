package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/studio-ormeau/folio/internal/tui/theme"
)

// ConfirmDialog is a simple yes/no confirmation dialog. Destructive
// actions route through it before the REST call fires.
type ConfirmDialog struct {
	title    string
	message  string
	selected bool // false = no, true = yes
}

// NewConfirmDialog creates a new confirmation dialog defaulting to "No".
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{title: title, message: message}
}

// SetMessage replaces the dialog body, used when the dialog is reused
// for different records.
func (c *ConfirmDialog) SetMessage(title, message string) {
	c.title = title
	c.message = message
	c.selected = false
}

// SelectNo resets the selection to "No".
func (c *ConfirmDialog) SelectNo() {
	c.selected = false
}

// IsYesSelected returns whether "Yes" is selected.
func (c *ConfirmDialog) IsYesSelected() bool {
	return c.selected
}

// Toggle switches between Yes and No.
func (c *ConfirmDialog) Toggle() {
	c.selected = !c.selected
}

// View renders the confirmation dialog.
func (c *ConfirmDialog) View() string {
	button := lipgloss.NewStyle().Foreground(theme.Current.TextMuted).Padding(0, 2)
	active := button.
		Background(theme.Current.Warning).
		Foreground(theme.Current.Background).
		Bold(true)

	yes, no := button, active
	if c.selected {
		yes, no = active, button
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		"[ ", yes.Render("Yes"), " ] [ ", no.Render("No"), " ]",
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Primary).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render(c.title),
			"",
			c.message,
			"",
			buttons,
		))
}

// CenteredView renders the dialog centered in the given area.
func (c *ConfirmDialog) CenteredView(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, c.View())
}
