package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studio-ormeau/folio/internal/tui/theme"
)

// LoginView collects admin credentials.
type LoginView struct {
	username textinput.Model
	password textinput.Model
	focus    int // 0 = username, 1 = password

	busy    bool
	errText string

	width  int
	height int
}

// NewLoginView creates the login screen.
func NewLoginView() *LoginView {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 80
	username.Width = 32
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return &LoginView{username: username, password: password}
}

// Reset clears both fields and any error.
func (v *LoginView) Reset() {
	v.username.Reset()
	v.password.Reset()
	v.username.Focus()
	v.password.Blur()
	v.focus = 0
	v.busy = false
	v.errText = ""
}

// Credentials returns the entered username and password.
func (v *LoginView) Credentials() (string, string) {
	return strings.TrimSpace(v.username.Value()), v.password.Value()
}

// SetBusy marks a login attempt in flight, locking input.
func (v *LoginView) SetBusy(busy bool) {
	v.busy = busy
}

// Busy reports whether a login attempt is in flight.
func (v *LoginView) Busy() bool {
	return v.busy
}

// SetError shows a failure line under the form.
func (v *LoginView) SetError(text string) {
	v.busy = false
	v.errText = text
}

// SetSize updates the rendering area.
func (v *LoginView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Update handles a key press. It returns true when the user submitted
// the form with both fields filled.
func (v *LoginView) Update(msg tea.KeyMsg) (submit bool, cmd tea.Cmd) {
	if v.busy {
		return false, nil
	}

	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		v.focus = 1 - v.focus
		if v.focus == 0 {
			v.username.Focus()
			v.password.Blur()
		} else {
			v.password.Focus()
			v.username.Blur()
		}
		return false, nil

	case "enter":
		if v.focus == 0 {
			v.focus = 1
			v.password.Focus()
			v.username.Blur()
			return false, nil
		}
		username, password := v.Credentials()
		if username == "" || password == "" {
			v.errText = "Enter both username and password"
			return false, nil
		}
		v.errText = ""
		return true, nil
	}

	if v.focus == 0 {
		v.username, cmd = v.username.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return false, cmd
}

// View renders the login screen.
func (v *LoginView) View() string {
	t := theme.Current
	title := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render("folio admin")
	label := lipgloss.NewStyle().Foreground(t.TextMuted)

	status := label.Render("enter to log in, ctrl+c to quit")
	if v.busy {
		status = lipgloss.NewStyle().Foreground(t.Info).Render("Logging in...")
	} else if v.errText != "" {
		status = lipgloss.NewStyle().Foreground(t.Error).Render(v.errText)
	}

	form := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		label.Render("Username"),
		v.username.View(),
		"",
		label.Render("Password"),
		v.password.View(),
		"",
		status,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Render(form)

	if v.width == 0 {
		return box
	}
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, box)
}
